package port

import (
	"context"

	"boketto-bot/internal/domain/entity"
)

// Recommender интерфейс внешнего сервиса рекомендаций
type Recommender interface {
	// Suggest предлагает блюда под цель по калориям
	Suggest(ctx context.Context, goalKcal int) ([]entity.Suggestion, error)
}
