package recommender

import (
	"context"
	"errors"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// Unavailable используется, когда ключ LLM не настроен.
type Unavailable struct{}

// Suggest всегда возвращает ошибку.
func (Unavailable) Suggest(ctx context.Context, goalKcal int) ([]entity.Suggestion, error) {
	return nil, errors.New("recommendation backend is not configured")
}

var _ port.Recommender = Unavailable{}
