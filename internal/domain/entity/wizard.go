package entity

import (
	"strings"
	"time"
)

// Step: текущий экран мастера онбординга/входа.
type Step string

const (
	StepHungerSelect    Step = "hunger_select"    // Выбор уровня голода
	StepPreparing       Step = "preparing"        // Подготовка меню (таймер)
	StepHome            Step = "home"             // Главный экран с каталогом
	StepIdentify        Step = "identify"         // Ввод телефона/почты
	StepOtpVerify       Step = "otp_verify"       // Ввод 4-значного кода
	StepProfile         Step = "profile"          // Заполнение профиля
	StepIngredientPrefs Step = "ingredient_prefs" // Предпочтения по ингредиентам
	StepUnderstanding   Step = "understanding"    // "Изучаем вкусы" (таймер)
	StepMatching        Step = "matching"         // "Подбираем блюда" (таймер)
	StepWelcome         Step = "welcome"          // Приветствие вернувшегося (таймер)
)

// EventKind: тип события, которое двигает мастер.
type EventKind string

const (
	EventHungerSelected   EventKind = "hunger_selected"
	EventTimerElapsed     EventKind = "timer_elapsed"
	EventOpenLogin        EventKind = "open_login"
	EventContactSubmitted EventKind = "contact_submitted"
	EventCodeVerified     EventKind = "code_verified"
	EventProfileCompleted EventKind = "profile_completed"
	EventContinue         EventKind = "continue"
	EventSkip             EventKind = "skip"
	EventClose            EventKind = "close"
)

// Event: пользовательское действие или срабатывание таймера.
type Event struct {
	Kind      EventKind
	Value     string // уровень голода или контакт
	Returning bool   // для EventCodeVerified: код означает вернувшегося пользователя
}

// HungerLevel: заявленный уровень голода.
type HungerLevel string

const (
	HungerHigh   HungerLevel = "High"
	HungerMedium HungerLevel = "Medium"
	HungerLow    HungerLevel = "Low"
)

// HungerLevels в порядке показа.
var HungerLevels = []HungerLevel{HungerHigh, HungerMedium, HungerLow}

// ParseHungerLevel разбирает уровень без учёта регистра.
func ParseHungerLevel(s string) (HungerLevel, bool) {
	for _, l := range HungerLevels {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, true
		}
	}
	return "", false
}

// Задержки автоматических переходов.
const (
	PreparingDelay     = 2 * time.Second
	UnderstandingDelay = time.Second
	MatchingDelay      = time.Second
	WelcomeDelay       = 1500 * time.Millisecond
)

// AutoAdvance возвращает задержку таймера для шага, если шаг завершается по таймеру.
func AutoAdvance(s Step) (time.Duration, bool) {
	switch s {
	case StepPreparing:
		return PreparingDelay, true
	case StepUnderstanding:
		return UnderstandingDelay, true
	case StepMatching:
		return MatchingDelay, true
	case StepWelcome:
		return WelcomeDelay, true
	}
	return 0, false
}

// InLoginChain сообщает, относится ли шаг к цепочке входа, которую можно закрыть.
func (s Step) InLoginChain() bool {
	switch s {
	case StepIdentify, StepOtpVerify, StepProfile, StepIngredientPrefs,
		StepUnderstanding, StepMatching, StepWelcome:
		return true
	}
	return false
}

// Transition вычисляет следующий шаг. При ошибке возвращается текущий шаг.
func Transition(s Step, e Event) (Step, error) {
	if e.Kind == EventClose {
		if s.InLoginChain() {
			return StepHome, nil
		}
		return s, ErrInvalidTransition
	}

	switch s {
	case StepHungerSelect:
		if e.Kind == EventHungerSelected {
			if _, ok := ParseHungerLevel(e.Value); ok {
				return StepPreparing, nil
			}
		}
	case StepPreparing:
		if e.Kind == EventTimerElapsed {
			return StepHome, nil
		}
	case StepHome:
		if e.Kind == EventOpenLogin {
			return StepIdentify, nil
		}
	case StepIdentify:
		if e.Kind == EventContactSubmitted {
			if strings.TrimSpace(e.Value) == "" {
				return s, ErrEmptyContact
			}
			return StepOtpVerify, nil
		}
	case StepOtpVerify:
		if e.Kind == EventCodeVerified {
			if e.Returning {
				return StepWelcome, nil
			}
			return StepProfile, nil
		}
	case StepProfile:
		switch e.Kind {
		case EventProfileCompleted, EventContinue:
			return StepIngredientPrefs, nil
		case EventSkip:
			return StepHome, nil
		}
	case StepIngredientPrefs:
		switch e.Kind {
		case EventContinue:
			return StepUnderstanding, nil
		case EventSkip:
			return StepHome, nil
		}
	case StepUnderstanding:
		if e.Kind == EventTimerElapsed {
			return StepMatching, nil
		}
	case StepMatching, StepWelcome:
		if e.Kind == EventTimerElapsed {
			return StepHome, nil
		}
	}
	return s, ErrInvalidTransition
}

// ValidateCode проверяет формат кода: ровно 4 цифры.
func ValidateCode(code string) error {
	if len(code) != 4 {
		return ErrMalformedCode
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrMalformedCode
		}
	}
	return nil
}
