package app

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
	"boketto-bot/internal/metrics"
)

// errStaleTimer: таймер сработал, но сессия уже ушла с шага, который его поставил.
var errStaleTimer = errors.New("stale wizard timer")

// StepListener получает сессию после каждого перехода мастера, включая переходы по таймеру.
type StepListener func(session *entity.Session, from entity.Step)

// WizardService ведёт пользователя по шагам онбординга и входа.
type WizardService struct {
	sessions  *SessionService
	verifier  port.CodeVerifier
	scheduler port.Scheduler
	log       *zap.Logger
	listener  StepListener
}

func NewWizardService(sessions *SessionService, verifier port.CodeVerifier, scheduler port.Scheduler, log *zap.Logger) *WizardService {
	return &WizardService{
		sessions:  sessions,
		verifier:  verifier,
		scheduler: scheduler,
		log:       log.Named("wizard"),
	}
}

// OnAdvance задаёт слушателя переходов. Вызывать до начала обработки сообщений.
func (s *WizardService) OnAdvance(fn StepListener) {
	s.listener = fn
}

func timerKey(userID int64) string {
	return "wizard:" + strconv.FormatInt(userID, 10)
}

// Current возвращает текущий шаг.
func (s *WizardService) Current(ctx context.Context, userID, chatID int64) (entity.Step, error) {
	session, err := s.sessions.Get(ctx, userID, chatID)
	if err != nil {
		return "", err
	}
	return session.Step, nil
}

// dispatch применяет событие к сессии. apply выполняется до смены шага и может изменить сессию.
func (s *WizardService) dispatch(ctx context.Context, userID, chatID int64, e entity.Event, apply func(*entity.Session, entity.Step) error) (*entity.Session, error) {
	var from entity.Step
	return s.sessions.UpdateThen(ctx, userID, chatID, func(session *entity.Session) error {
		from = session.Step
		next, err := entity.Transition(session.Step, e)
		if err != nil {
			return err
		}
		if apply != nil {
			if err := apply(session, next); err != nil {
				return err
			}
		}
		session.SetStep(next)
		return nil
	}, func(session *entity.Session) {
		s.advanced(session, from)
	})
}

// advanced планирует автопереход для нового шага и уведомляет слушателя.
// Вызывается под блокировкой пользователя: таймер и экран всегда соответствуют сохранённому шагу.
func (s *WizardService) advanced(session *entity.Session, from entity.Step) {
	metrics.WizardTransitionsTotal.WithLabelValues(string(from), string(session.Step)).Inc()
	s.log.Debug("wizard step changed",
		zap.Int64("user_id", session.UserID),
		zap.String("from", string(from)),
		zap.String("to", string(session.Step)),
	)

	key := timerKey(session.UserID)
	if delay, ok := entity.AutoAdvance(session.Step); ok {
		userID, chatID, step := session.UserID, session.ChatID, session.Step
		s.scheduler.Schedule(key, delay, func() {
			s.timerElapsed(userID, chatID, step)
		})
	} else {
		s.scheduler.Cancel(key)
	}

	if s.listener != nil {
		s.listener(session, from)
	}
}

func (s *WizardService) timerElapsed(userID, chatID int64, expected entity.Step) {
	ctx := context.Background()
	_, err := s.dispatch(ctx, userID, chatID, entity.Event{Kind: entity.EventTimerElapsed}, func(session *entity.Session, next entity.Step) error {
		if session.Step != expected {
			return errStaleTimer
		}
		switch expected {
		case entity.StepMatching:
			// Цепочка входа нового пользователя завершена: сохраняем профиль.
			session.CommitDraft()
			session.LoggedIn = true
		case entity.StepWelcome:
			session.LoggedIn = true
		}
		return nil
	})
	if err != nil {
		s.log.Debug("wizard timer ignored", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// SelectHunger фиксирует уровень голода и запускает подготовку меню.
func (s *WizardService) SelectHunger(ctx context.Context, userID, chatID int64, level string) (*entity.Session, error) {
	e := entity.Event{Kind: entity.EventHungerSelected, Value: level}
	return s.dispatch(ctx, userID, chatID, e, func(session *entity.Session, _ entity.Step) error {
		session.Hunger, _ = entity.ParseHungerLevel(level)
		return nil
	})
}

// OpenLogin открывает ввод контакта.
func (s *WizardService) OpenLogin(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.dispatch(ctx, userID, chatID, entity.Event{Kind: entity.EventOpenLogin}, func(session *entity.Session, _ entity.Step) error {
		session.ResetLogin()
		return nil
	})
}

// SubmitContact принимает телефон или почту.
func (s *WizardService) SubmitContact(ctx context.Context, userID, chatID int64, contact string) (*entity.Session, error) {
	contact = strings.TrimSpace(contact)
	e := entity.Event{Kind: entity.EventContactSubmitted, Value: contact}
	return s.dispatch(ctx, userID, chatID, e, func(session *entity.Session, _ entity.Step) error {
		session.Contact = contact
		return nil
	})
}

// SubmitCode проверяет код. ErrMalformedCode и ErrInvalidCode оставляют мастер на OtpVerify.
func (s *WizardService) SubmitCode(ctx context.Context, userID, chatID int64, code string) (*entity.Session, error) {
	session, err := s.sessions.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if session.Step != entity.StepOtpVerify {
		return session, entity.ErrInvalidTransition
	}

	code = strings.TrimSpace(code)
	if err := entity.ValidateCode(code); err != nil {
		return session, err
	}

	returning, err := s.verifier.Verify(ctx, session.Contact, code)
	if err != nil {
		s.log.Info("verification code rejected", zap.Int64("user_id", userID), zap.Error(err))
		return session, err
	}

	e := entity.Event{Kind: entity.EventCodeVerified, Returning: returning}
	// Вход засчитывается только в конце цепочки; Close до этого ничего не сохраняет.
	return s.dispatch(ctx, userID, chatID, e, func(session *entity.Session, _ entity.Step) error {
		if !returning {
			session.Draft = entity.DefaultProfile()
		}
		return nil
	})
}

// CompleteProfile сохраняет имя в черновик и переходит к предпочтениям.
func (s *WizardService) CompleteProfile(ctx context.Context, userID, chatID int64, name string) (*entity.Session, error) {
	name = strings.TrimSpace(name)
	e := entity.Event{Kind: entity.EventProfileCompleted}
	return s.dispatch(ctx, userID, chatID, e, func(session *entity.Session, _ entity.Step) error {
		session.Draft.Name = name
		return nil
	})
}

// TogglePreference отмечает ингредиент на шаге предпочтений.
func (s *WizardService) TogglePreference(ctx context.Context, userID, chatID int64, pref string) (*entity.Session, error) {
	return s.sessions.Update(ctx, userID, chatID, func(session *entity.Session) error {
		if session.Step != entity.StepIngredientPrefs {
			return entity.ErrInvalidTransition
		}
		session.TogglePreference(pref)
		return nil
	})
}

// Continue переходит дальше с Profile или IngredientPrefs.
func (s *WizardService) Continue(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.dispatch(ctx, userID, chatID, entity.Event{Kind: entity.EventContinue}, nil)
}

// Skip сразу возвращает на главный экран; незаполненные поля профиля остаются пустыми.
func (s *WizardService) Skip(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.dispatch(ctx, userID, chatID, entity.Event{Kind: entity.EventSkip}, func(session *entity.Session, _ entity.Step) error {
		if session.Step == entity.StepProfile {
			session.Draft = entity.DefaultProfile()
		} else {
			session.Draft.Preferences = nil
		}
		session.CommitDraft()
		session.LoggedIn = true
		session.Contact = ""
		return nil
	})
}

// Close бросает цепочку входа и возвращает на главный экран без сохранения черновика.
func (s *WizardService) Close(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.dispatch(ctx, userID, chatID, entity.Event{Kind: entity.EventClose}, func(session *entity.Session, _ entity.Step) error {
		session.ResetLogin()
		return nil
	})
}

// Teardown отменяет таймер пользователя, например при /start.
func (s *WizardService) Teardown(userID int64) {
	s.scheduler.Cancel(timerKey(userID))
}
