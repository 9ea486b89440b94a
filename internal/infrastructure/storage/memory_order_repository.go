package storage

import (
	"context"
	"slices"
	"sync"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// MemoryOrderRepository in-memory хранилище заказов
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
	byUser map[int64][]string
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]entity.Order),
		byUser: make(map[int64][]string),
	}
}

func (r *MemoryOrderRepository) Save(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; !exists {
		r.byUser[order.UserID] = append(r.byUser[order.UserID], order.ID)
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *MemoryOrderRepository) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &order, nil
}

func (r *MemoryOrderRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byUser[userID]
	out := make([]entity.Order, 0, len(ids))
	for _, id := range slices.Backward(ids) {
		out = append(out, r.orders[id])
	}
	return out, nil
}

var _ port.OrderRepository = (*MemoryOrderRepository)(nil)
