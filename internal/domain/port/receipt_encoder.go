package port

import "boketto-bot/internal/domain/entity"

// ReceiptEncoder рисует квитанцию заказа (PNG)
type ReceiptEncoder interface {
	Encode(order *entity.Order) ([]byte, error)
}
