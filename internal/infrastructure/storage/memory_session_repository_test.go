package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"boketto-bot/internal/domain/entity"
)

func TestMemorySessionRepository_GetCreatesSession(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StepHungerSelect, s.Step)
	require.Equal(t, int64(10), s.ChatID)
}

func TestMemorySessionRepository_SaveStoresCopy(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	s.SetStep(entity.StepHome)
	s.Cart = entity.AddToCart(s.Cart, entity.Dish{ID: "1", Price: 240})
	require.NoError(t, repo.Save(ctx, s))

	s.Cart[0].Quantity = 99

	got, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StepHome, got.Step)
	require.Equal(t, 1, got.Cart[0].Quantity)
	require.False(t, got.UpdatedAt.IsZero())
}

func TestMemorySessionRepository_Delete(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, _ := repo.Get(ctx, 1, 10)
	s.SetStep(entity.StepHome)
	require.NoError(t, repo.Save(ctx, s))
	require.NoError(t, repo.Delete(ctx, 1))

	got, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StepHungerSelect, got.Step)
}
