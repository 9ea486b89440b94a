package app

import (
	"context"

	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/metrics"
)

// CartSummary: содержимое корзины с итогами и прогрессом цели.
type CartSummary struct {
	Items    entity.Cart
	Count    int
	Total    int
	Progress entity.GoalProgress
}

func summarize(session *entity.Session) CartSummary {
	return CartSummary{
		Items:    session.Cart,
		Count:    entity.TotalItemCount(session.Cart),
		Total:    entity.TotalPrice(session.Cart),
		Progress: entity.Progress(session.Goal, session.Cart),
	}
}

type CartService struct {
	sessions *SessionService
	catalog  *CatalogService
	log      *zap.Logger
}

func NewCartService(sessions *SessionService, catalog *CatalogService, log *zap.Logger) *CartService {
	return &CartService{sessions: sessions, catalog: catalog, log: log.Named("cart")}
}

// Add добавляет блюдо по ID. Неизвестное блюдо: entity.ErrNotFound, корзина не меняется.
func (s *CartService) Add(ctx context.Context, userID, chatID int64, dishID string) (CartSummary, error) {
	dish, err := s.catalog.Dish(dishID)
	if err != nil {
		return CartSummary{}, err
	}

	session, err := s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		session.Cart = entity.AddToCart(session.Cart, dish)
		return nil
	})
	if err != nil {
		return CartSummary{}, err
	}

	metrics.CartOperationsTotal.WithLabelValues("add").Inc()
	s.log.Debug("dish added", zap.Int64("user_id", userID), zap.String("dish_id", dishID))
	return summarize(session), nil
}

// Update меняет количество позиции на delta.
func (s *CartService) Update(ctx context.Context, userID, chatID int64, dishID string, delta int) (CartSummary, error) {
	session, err := s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		session.Cart = entity.UpdateQuantity(session.Cart, dishID, delta)
		return nil
	})
	if err != nil {
		return CartSummary{}, err
	}

	op := "increment"
	if delta < 0 {
		op = "decrement"
	}
	metrics.CartOperationsTotal.WithLabelValues(op).Inc()
	return summarize(session), nil
}

func (s *CartService) Summary(ctx context.Context, userID, chatID int64) (CartSummary, error) {
	session, err := s.sessions.Get(ctx, userID, chatID)
	if err != nil {
		return CartSummary{}, err
	}
	return summarize(session), nil
}

func (s *CartService) Clear(ctx context.Context, userID, chatID int64) error {
	_, err := s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		session.Cart = nil
		return nil
	})
	if err == nil {
		metrics.CartOperationsTotal.WithLabelValues("clear").Inc()
	}
	return err
}
