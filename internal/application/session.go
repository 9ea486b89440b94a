package app

import (
	"context"
	"sync"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// SessionService сериализует изменения сессии одного пользователя:
// обработчики сообщений и таймеры мастера не перетирают друг друга.
type SessionService struct {
	repo  port.SessionRepository
	locks sync.Map // userID -> *sync.Mutex
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) lock(userID int64) func() {
	m, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *SessionService) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.repo.Get(ctx, userID, chatID)
}

// Update загружает сессию, применяет fn и сохраняет результат. Если fn вернула ошибку,
// сессия не сохраняется.
func (s *SessionService) Update(ctx context.Context, userID, chatID int64, fn func(*entity.Session) error) (*entity.Session, error) {
	return s.UpdateThen(ctx, userID, chatID, fn, nil)
}

// UpdateThen как Update, но после сохранения вызывает then, не отпуская блокировку пользователя.
// Следующее изменение той же сессии увидит всё, что сделал then.
func (s *SessionService) UpdateThen(ctx context.Context, userID, chatID int64, fn func(*entity.Session) error, then func(*entity.Session)) (*entity.Session, error) {
	unlock := s.lock(userID)
	defer unlock()

	session, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return session, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	if then != nil {
		then(session)
	}
	return session, nil
}

func (s *SessionService) SetStep(ctx context.Context, userID, chatID int64, step entity.Step) (*entity.Session, error) {
	return s.Update(ctx, userID, chatID, func(session *entity.Session) error {
		session.SetStep(step)
		return nil
	})
}

// Reset удаляет сессию: следующий Get начнёт с выбора уровня голода.
func (s *SessionService) Reset(ctx context.Context, userID int64) error {
	unlock := s.lock(userID)
	defer unlock()
	return s.repo.Delete(ctx, userID)
}
