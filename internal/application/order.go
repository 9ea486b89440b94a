package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
	"boketto-bot/internal/metrics"
)

// OrderService оформляет корзину в заказ.
type OrderService struct {
	sessions *SessionService
	orders   port.OrderRepository
	receipt  port.ReceiptEncoder
	log      *zap.Logger

	newID func() string
	now   func() time.Time
}

// NewOrderService создаёт сервис заказов. receipt может быть nil: заказ оформится без QR-кода.
func NewOrderService(sessions *SessionService, orders port.OrderRepository, receipt port.ReceiptEncoder, log *zap.Logger) *OrderService {
	return &OrderService{
		sessions: sessions,
		orders:   orders,
		receipt:  receipt,
		log:      log.Named("order"),
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Checkout превращает корзину в заказ и очищает её. Пустая корзина: entity.ErrEmptyCart.
func (s *OrderService) Checkout(ctx context.Context, userID, chatID int64) (*entity.Order, error) {
	var order *entity.Order
	_, err := s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		if len(session.Cart) == 0 {
			return entity.ErrEmptyCart
		}

		order = &entity.Order{
			ID:        s.newID(),
			UserID:    userID,
			Items:     append([]entity.CartItem(nil), session.Cart...),
			ItemCount: entity.TotalItemCount(session.Cart),
			Total:     entity.TotalPrice(session.Cart),
			Status:    entity.OrderPlaced,
			CreatedAt: s.now(),
		}

		if s.receipt != nil {
			png, err := s.receipt.Encode(order)
			if err != nil {
				// Заказ важнее квитанции.
				s.log.Warn("receipt encoding failed", zap.String("order_id", order.ID), zap.Error(err))
			} else {
				order.Receipt = png
			}
		}

		if err := s.orders.Save(ctx, order); err != nil {
			return err
		}
		session.Cart = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersPlacedTotal.Inc()
	metrics.OrderValue.Observe(float64(order.Total))
	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("items", order.ItemCount),
		zap.Int("total", order.Total),
	)
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	return s.orders.Get(ctx, orderID)
}

// History возвращает заказы пользователя, новые первыми.
func (s *OrderService) History(ctx context.Context, userID int64) ([]entity.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
