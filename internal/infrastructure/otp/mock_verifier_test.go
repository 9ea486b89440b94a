package otp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"boketto-bot/internal/domain/entity"
)

func TestMockVerifier(t *testing.T) {
	v := NewMockVerifier("1234", "0000")
	ctx := context.Background()

	returning, err := v.Verify(ctx, "me@example.com", "1234")
	require.NoError(t, err)
	require.False(t, returning)

	returning, err = v.Verify(ctx, "me@example.com", "0000")
	require.NoError(t, err)
	require.True(t, returning)

	_, err = v.Verify(ctx, "me@example.com", "9999")
	require.ErrorIs(t, err, entity.ErrInvalidCode)

	_, err = v.Verify(ctx, "me@example.com", "123")
	require.ErrorIs(t, err, entity.ErrMalformedCode)
}
