package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
)

func newTestOrderService(env *testEnv, receipt stubReceipt) *OrderService {
	svc := NewOrderService(env.sessions, env.orders, receipt, zap.NewNop())
	n := 0
	svc.newID = func() string {
		n++
		return "order-" + string(rune('0'+n))
	}
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC) }
	return svc
}

func TestOrderService_Checkout(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	svc := newTestOrderService(env, stubReceipt{})

	_, err := env.cart.Add(ctx, 1, 10, "1")
	require.NoError(t, err)
	_, err = env.cart.Add(ctx, 1, 10, "1")
	require.NoError(t, err)
	_, err = env.cart.Add(ctx, 1, 10, "4")
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, "order-1", order.ID)
	require.Equal(t, 3, order.ItemCount)
	require.Equal(t, 240*2+290, order.Total)
	require.Equal(t, entity.OrderPlaced, order.Status)
	require.Equal(t, []byte("png:order-1"), order.Receipt)

	summary, err := env.cart.Summary(ctx, 1, 10)
	require.NoError(t, err)
	require.Empty(t, summary.Items)

	stored, err := svc.Get(ctx, "order-1")
	require.NoError(t, err)
	require.Equal(t, order.Total, stored.Total)
}

func TestOrderService_EmptyCart(t *testing.T) {
	env := newTestEnv()
	svc := newTestOrderService(env, stubReceipt{})

	_, err := svc.Checkout(context.Background(), 1, 10)
	require.ErrorIs(t, err, entity.ErrEmptyCart)
}

func TestOrderService_ReceiptFailureStillPlacesOrder(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	svc := newTestOrderService(env, stubReceipt{err: errBoom})

	_, err := env.cart.Add(ctx, 1, 10, "2")
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, 1, 10)
	require.NoError(t, err)
	require.Nil(t, order.Receipt)
}

func TestOrderService_History(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	svc := newTestOrderService(env, stubReceipt{})

	for _, id := range []string{"1", "3"} {
		_, err := env.cart.Add(ctx, 1, 10, id)
		require.NoError(t, err)
		_, err = svc.Checkout(ctx, 1, 10)
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "order-2", history[0].ID)
	require.Equal(t, "order-1", history[1].ID)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrNotFound)
}
