// Package receipt рисует QR-квитанции заказов.
package receipt

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// QREncoder кодирует ссылку на заказ в PNG.
type QREncoder struct {
	BaseURL string
	Size    int
}

func NewQREncoder(baseURL string) *QREncoder {
	return &QREncoder{BaseURL: strings.TrimRight(baseURL, "/"), Size: 256}
}

// Link возвращает ссылку, которая зашита в QR.
func (e *QREncoder) Link(order *entity.Order) string {
	return fmt.Sprintf("%s/orders/%s", e.BaseURL, order.ID)
}

func (e *QREncoder) Encode(order *entity.Order) ([]byte, error) {
	png, err := qrcode.Encode(e.Link(order), qrcode.Medium, e.Size)
	if err != nil {
		return nil, fmt.Errorf("encode receipt for order %s: %w", order.ID, err)
	}
	return png, nil
}

var _ port.ReceiptEncoder = (*QREncoder)(nil)
