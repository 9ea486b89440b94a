package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boketto-bot/internal/domain/entity"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "1234", cfg.OTPCode)
	require.Equal(t, "0000", cfg.OTPReturningCode)
	require.Equal(t, 168*time.Hour, cfg.SessionTTL)
	require.Equal(t, 15*time.Second, cfg.SortMenuIdle)
	require.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SORT_MENU_IDLE", "300ms")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, 300*time.Millisecond, cfg.SortMenuIdle)
}

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("SESSION_TTL", "forever")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_SameOTPCodes(t *testing.T) {
	cfg := &Config{TelegramToken: "t", OTPCode: "1111", OTPReturningCode: "1111"}
	require.Error(t, cfg.Validate())
}

func TestValidate_OTPCodeFormat(t *testing.T) {
	for name, cfg := range map[string]*Config{
		"five digits":     {TelegramToken: "t", OTPCode: "12345", OTPReturningCode: "0000"},
		"letters":         {TelegramToken: "t", OTPCode: "1234", OTPReturningCode: "abcd"},
		"empty returning": {TelegramToken: "t", OTPCode: "1234", OTPReturningCode: ""},
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, cfg.Validate(), entity.ErrMalformedCode)
		})
	}
}

func TestLoad_RejectsMalformedOTPCode(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("OTP_CODE", "12345")

	_, err := Load()
	require.ErrorIs(t, err, entity.ErrMalformedCode)
}
