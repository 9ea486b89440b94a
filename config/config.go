package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"boketto-bot/internal/domain/entity"
)

type Config struct {
	TelegramToken string
	Debug         bool
	LogDir        string

	// Redis; пустой адрес: сессии в памяти
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	// LLM для рекомендаций; пустой ключ: рекомендации недоступны
	LLMAPIURL string
	LLMAPIKey string
	LLMModel  string

	// Заглушка OTP
	OTPCode          string
	OTPReturningCode string

	OrderBaseURL string
	MetricsAddr  string
	SortMenuIdle time.Duration
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		Debug:            getEnv("DEBUG", "false") == "true",
		LogDir:           getEnv("LOG_DIR", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		LLMAPIURL:        getEnv("LLM_API_URL", "https://api.openai.com/v1/chat/completions"),
		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o-mini"),
		OTPCode:          getEnv("OTP_CODE", "1234"),
		OTPReturningCode: getEnv("OTP_RETURNING_CODE", "0000"),
		OrderBaseURL:     getEnv("ORDER_BASE_URL", "https://boketto.app"),
		MetricsAddr:      getEnv("METRICS_ADDR", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.SortMenuIdle, err = time.ParseDuration(getEnv("SORT_MENU_IDLE", "15s")); err != nil {
		return nil, fmt.Errorf("SORT_MENU_IDLE: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if err := entity.ValidateCode(c.OTPCode); err != nil {
		return fmt.Errorf("OTP_CODE: %w", err)
	}
	if err := entity.ValidateCode(c.OTPReturningCode); err != nil {
		return fmt.Errorf("OTP_RETURNING_CODE: %w", err)
	}
	if c.OTPCode == c.OTPReturningCode {
		return fmt.Errorf("OTP_CODE and OTP_RETURNING_CODE must differ")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
