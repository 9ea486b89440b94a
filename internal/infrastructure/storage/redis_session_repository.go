package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

const sessionKeyPrefix = "boketto:session:"

// RedisSessionRepository хранит сессии в Redis в виде JSON с TTL.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository создаёт хранилище. ttl <= 0: без истечения.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return sessionKeyPrefix + strconv.FormatInt(userID, 10)
}

// Get читает сессию, создаёт новую если ключа нет
func (r *RedisSessionRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		session := entity.NewSession(userID, chatID)
		if err := r.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session %d: %w", userID, err)
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %d: %w", userID, err)
	}
	return &session, nil
}

// Save записывает сессию и продлевает TTL
func (r *RedisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", session.UserID, err)
	}

	if err := r.client.Set(ctx, sessionKey(session.UserID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %d: %w", session.UserID, err)
	}
	return nil
}

// Delete удаляет сессию
func (r *RedisSessionRepository) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del session %d: %w", userID, err)
	}
	return nil
}

var _ port.SessionRepository = (*RedisSessionRepository)(nil)
