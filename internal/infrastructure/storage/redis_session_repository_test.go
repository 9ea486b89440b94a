package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"boketto-bot/internal/domain/entity"
)

func newRedisRepo(t *testing.T, ttl time.Duration) (*RedisSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionRepository(client, ttl), mr
}

func TestRedisSessionRepository_RoundTrip(t *testing.T) {
	repo, mr := newRedisRepo(t, time.Hour)
	ctx := context.Background()

	s, err := repo.Get(ctx, 7, 70)
	require.NoError(t, err)
	require.Equal(t, entity.StepHungerSelect, s.Step)
	require.True(t, mr.Exists("boketto:session:7"))

	s.SetStep(entity.StepHome)
	s.Hunger = entity.HungerHigh
	s.Filter.Category = entity.CategoryLowKcal
	s.Cart = entity.AddToCart(s.Cart, entity.Dish{ID: "4", Name: "Quinoa Veggie Bowl", Price: 290})
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, 7, 70)
	require.NoError(t, err)
	require.Equal(t, entity.StepHome, got.Step)
	require.Equal(t, entity.HungerHigh, got.Hunger)
	require.Equal(t, entity.CategoryLowKcal, got.Filter.Category)
	require.Len(t, got.Cart, 1)
	require.Equal(t, 290, entity.TotalPrice(got.Cart))
}

func TestRedisSessionRepository_TTL(t *testing.T) {
	repo, mr := newRedisRepo(t, time.Minute)
	ctx := context.Background()

	s, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	s.SetStep(entity.StepHome)
	require.NoError(t, repo.Save(ctx, s))
	require.Equal(t, time.Minute, mr.TTL("boketto:session:1"))

	mr.FastForward(2 * time.Minute)

	got, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StepHungerSelect, got.Step)
}

func TestRedisSessionRepository_Delete(t *testing.T) {
	repo, mr := newRedisRepo(t, 0)
	ctx := context.Background()

	_, err := repo.Get(ctx, 3, 30)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, 3))
	require.False(t, mr.Exists("boketto:session:3"))
}

func TestRedisSessionRepository_CorruptValue(t *testing.T) {
	repo, mr := newRedisRepo(t, 0)
	require.NoError(t, mr.Set("boketto:session:5", "{not json"))

	_, err := repo.Get(context.Background(), 5, 50)
	require.Error(t, err)
}
