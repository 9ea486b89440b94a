package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"boketto-bot/internal/domain/entity"
)

func TestCartService_AddAndUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.Add(ctx, 1, 10, "1")
	require.NoError(t, err)
	_, err = env.cart.Add(ctx, 1, 10, "2")
	require.NoError(t, err)
	summary, err := env.cart.Add(ctx, 1, 10, "1")
	require.NoError(t, err)

	require.Equal(t, 3, summary.Count)
	require.Equal(t, 240*2+320, summary.Total)
	require.Equal(t, "1", summary.Items[0].ID)
	require.Equal(t, 2, summary.Items[0].Quantity)

	summary, err = env.cart.Update(ctx, 1, 10, "2", -1)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	require.Equal(t, 480, summary.Total)
}

func TestCartService_AddUnknownDish(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.cart.Add(ctx, 1, 10, "42")
	require.ErrorIs(t, err, entity.ErrNotFound)

	summary, err := env.cart.Summary(ctx, 1, 10)
	require.NoError(t, err)
	require.Zero(t, summary.Count)
}

func TestCartService_SummaryProgress(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	summary, err := env.cart.Add(ctx, 1, 10, "4")
	require.NoError(t, err)
	require.Equal(t, 380, summary.Progress.Consumed.Kcal)
	require.Equal(t, 622-380, summary.Progress.RemainingKcal)

	require.NoError(t, env.cart.Clear(ctx, 1, 10))
	summary, err = env.cart.Summary(ctx, 1, 10)
	require.NoError(t, err)
	require.Empty(t, summary.Items)
	require.Equal(t, 622, summary.Progress.RemainingKcal)
}
