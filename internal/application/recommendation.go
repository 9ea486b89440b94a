package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
	"boketto-bot/internal/metrics"
)

// RecommendationService запрашивает у внешнего сервиса блюда под цель пользователя.
type RecommendationService struct {
	goals       *GoalService
	recommender port.Recommender
	log         *zap.Logger
}

func NewRecommendationService(goals *GoalService, recommender port.Recommender, log *zap.Logger) *RecommendationService {
	return &RecommendationService{goals: goals, recommender: recommender, log: log.Named("recommendation")}
}

// Suggest возвращает варианты под текущую цель по калориям.
// Любой сбой внешнего сервиса превращается в entity.ErrRecommendationUnavailable.
func (s *RecommendationService) Suggest(ctx context.Context, userID, chatID int64) ([]entity.Suggestion, error) {
	goal, err := s.goals.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.recommender.Suggest(ctx, goal.Kcal)
	if err == nil && len(suggestions) == 0 {
		err = errors.New("empty suggestion list")
	}
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues("error").Inc()
		s.log.Warn("recommendation failed", zap.Int64("user_id", userID), zap.Int("goal_kcal", goal.Kcal), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", entity.ErrRecommendationUnavailable, err)
	}

	metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	return suggestions, nil
}
