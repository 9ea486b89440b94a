package port

import (
	"context"

	"boketto-bot/internal/domain/entity"
)

// OrderRepository интерфейс хранилища заказов
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error

	// Get возвращает заказ или entity.ErrNotFound
	Get(ctx context.Context, orderID string) (*entity.Order, error)

	// ListByUser возвращает заказы пользователя, новые первыми
	ListByUser(ctx context.Context, userID int64) ([]entity.Order, error)
}
