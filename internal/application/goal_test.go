package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"boketto-bot/internal/domain/entity"
)

func TestGoalService(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	goal, err := env.goals.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.DefaultGoal(), goal)

	goal, err = env.goals.SetPreset(ctx, 1, 10, entity.GoalHighProtein)
	require.NoError(t, err)
	require.Equal(t, entity.GoalHighProtein, goal.Preset)
	require.Equal(t, 622, goal.Kcal)

	goal, err = env.goals.SetKcal(ctx, 1, 10, 800)
	require.NoError(t, err)
	require.Equal(t, 800, goal.Kcal)

	_, err = env.goals.SetKcal(ctx, 1, 10, 0)
	require.ErrorIs(t, err, ErrInvalidKcal)
	goal, err = env.goals.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 800, goal.Kcal)

	goal, err = env.goals.Reset(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.DefaultGoal(), goal)
}
