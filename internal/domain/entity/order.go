package entity

import "time"

// OrderStatus: статус заказа.
type OrderStatus string

const (
	OrderPlaced OrderStatus = "placed"
)

// Order: снимок корзины на момент оформления.
type Order struct {
	ID        string      `json:"id"`
	UserID    int64       `json:"user_id"`
	Items     []CartItem  `json:"items"`
	ItemCount int         `json:"item_count"`
	Total     int         `json:"total"`
	Status    OrderStatus `json:"status"`
	Receipt   []byte      `json:"-"` // PNG с QR-кодом
	CreatedAt time.Time   `json:"created_at"`
}
