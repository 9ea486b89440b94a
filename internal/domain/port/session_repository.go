package port

import (
	"context"

	"boketto-bot/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	// Get возвращает сессию по ID пользователя, создаёт новую если не найдена
	Get(ctx context.Context, userID, chatID int64) (*entity.Session, error)

	// Save сохраняет сессию
	Save(ctx context.Context, session *entity.Session) error

	// Delete удаляет сессию (следующий Get начнёт с нуля)
	Delete(ctx context.Context, userID int64) error
}
