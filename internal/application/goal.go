package app

import (
	"context"
	"errors"

	"boketto-bot/internal/domain/entity"
)

var ErrInvalidKcal = errors.New("kcal goal must be positive")

type GoalService struct {
	sessions *SessionService
}

func NewGoalService(sessions *SessionService) *GoalService {
	return &GoalService{sessions: sessions}
}

func (s *GoalService) Get(ctx context.Context, userID, chatID int64) (entity.Goal, error) {
	session, err := s.sessions.Get(ctx, userID, chatID)
	if err != nil {
		return entity.Goal{}, err
	}
	return session.Goal, nil
}

func (s *GoalService) update(ctx context.Context, userID, chatID int64, fn func(*entity.Goal) error) (entity.Goal, error) {
	session, err := s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		return fn(&session.Goal)
	})
	if err != nil {
		return entity.Goal{}, err
	}
	return session.Goal, nil
}

// SetPreset меняет только выбранный пресет; калории и макросы остаются.
func (s *GoalService) SetPreset(ctx context.Context, userID, chatID int64, p entity.GoalPreset) (entity.Goal, error) {
	return s.update(ctx, userID, chatID, func(g *entity.Goal) error {
		g.Preset = p
		return nil
	})
}

func (s *GoalService) SetKcal(ctx context.Context, userID, chatID int64, kcal int) (entity.Goal, error) {
	return s.update(ctx, userID, chatID, func(g *entity.Goal) error {
		if kcal <= 0 {
			return ErrInvalidKcal
		}
		g.Kcal = kcal
		return nil
	})
}

func (s *GoalService) Reset(ctx context.Context, userID, chatID int64) (entity.Goal, error) {
	return s.update(ctx, userID, chatID, func(g *entity.Goal) error {
		*g = entity.DefaultGoal()
		return nil
	})
}
