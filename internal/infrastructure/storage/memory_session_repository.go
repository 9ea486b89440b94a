package storage

import (
	"context"
	"sync"
	"time"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессий
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.Session
}

// NewMemorySessionRepository создаёт новое in-memory хранилище
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[int64]*entity.Session),
	}
}

// Get возвращает копию сессии по ID, создаёт новую если не найдена
func (r *MemorySessionRepository) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	r.mu.RLock()
	session, exists := r.sessions[userID]
	r.mu.RUnlock()

	if exists {
		return session.Clone(), nil
	}

	newSession := entity.NewSession(userID, chatID)

	r.mu.Lock()
	// Между RUnlock и Lock сессию мог создать таймер мастера.
	if existing, ok := r.sessions[userID]; ok {
		r.mu.Unlock()
		return existing.Clone(), nil
	}
	r.sessions[userID] = newSession.Clone()
	r.mu.Unlock()

	return newSession, nil
}

// Save сохраняет копию сессии
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	stored := session.Clone()
	stored.UpdatedAt = time.Now()

	r.mu.Lock()
	r.sessions[session.UserID] = stored
	r.mu.Unlock()

	return nil
}

// Delete удаляет сессию
func (r *MemorySessionRepository) Delete(ctx context.Context, userID int64) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
