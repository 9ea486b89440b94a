package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
)

func TestRecommendationService_UsesGoalKcal(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	rec := &stubRecommender{suggestions: []entity.Suggestion{{Name: "Dal Khichdi", Reason: "light", Macros: "P12 C60 F8"}}}
	svc := NewRecommendationService(env.goals, rec, zap.NewNop())

	_, err := env.goals.SetKcal(ctx, 1, 10, 700)
	require.NoError(t, err)

	got, err := svc.Suggest(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 700, rec.gotKcal)
	require.Len(t, got, 1)
	require.Equal(t, "Dal Khichdi", got[0].Name)
}

func TestRecommendationService_Unavailable(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for name, rec := range map[string]*stubRecommender{
		"backend error": {err: errBoom},
		"empty list":    {},
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewRecommendationService(env.goals, rec, zap.NewNop())
			_, err := svc.Suggest(ctx, 1, 10)
			require.ErrorIs(t, err, entity.ErrRecommendationUnavailable)
		})
	}
}
