package entity

import "time"

// Profile: данные, собранные мастером входа.
type Profile struct {
	Name        string   `json:"name"`
	Preferences []string `json:"preferences,omitempty"`
}

// DefaultProfile: пустой профиль, который применяется при "Skip".
func DefaultProfile() Profile {
	return Profile{}
}

// Session хранит всё состояние пользователя бота: шаг мастера, фильтры, корзину, цель.
type Session struct {
	UserID         int64       `json:"user_id"`  // Telegram User ID
	ChatID         int64       `json:"chat_id"`  // Telegram Chat ID
	Step           Step        `json:"step"`     // Текущий шаг мастера
	Hunger         HungerLevel `json:"hunger"`   // Уровень голода, выбирается один раз
	Filter         FilterState `json:"filter"`   // Поиск/фильтры каталога
	Cart           Cart        `json:"cart"`     // Корзина
	Goal           Goal        `json:"goal"`     // Цель на ужин
	Profile        Profile     `json:"profile"`  // Профиль после входа
	Draft          Profile     `json:"draft"`    // Профиль, который заполняется в мастере
	LoggedIn       bool        `json:"logged_in"`
	Contact        string      `json:"contact,omitempty"` // Контакт, введённый на шаге Identify
	SelectedDishID string      `json:"selected_dish_id,omitempty"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewSession создаёт сессию с начальным шагом HungerSelect.
func NewSession(userID, chatID int64) *Session {
	return &Session{
		UserID: userID,
		ChatID: chatID,
		Step:   StepHungerSelect,
		Filter: DefaultFilter(),
		Goal:   DefaultGoal(),
	}
}

// SetStep обновляет шаг мастера
func (s *Session) SetStep(step Step) {
	s.Step = step
}

// ResetLogin сбрасывает незавершённый вход: частичные данные не сохраняются.
func (s *Session) ResetLogin() {
	s.Contact = ""
	s.Draft = DefaultProfile()
}

// CommitDraft переносит заполненный в мастере профиль в сессию.
func (s *Session) CommitDraft() {
	s.Profile = s.Draft
	s.Draft = DefaultProfile()
}

// Clone возвращает независимую копию сессии.
func (s *Session) Clone() *Session {
	c := *s
	c.Cart = append(Cart(nil), s.Cart...)
	c.Profile.Preferences = append([]string(nil), s.Profile.Preferences...)
	c.Draft.Preferences = append([]string(nil), s.Draft.Preferences...)
	return &c
}

// IngredientOptions: варианты на шаге предпочтений по ингредиентам.
var IngredientOptions = []string{"Paneer", "Tofu", "Chicken", "Broccoli", "Quinoa", "Onion", "Garlic", "Mushroom"}

// TogglePreference добавляет или убирает предпочтение в черновике профиля.
func (s *Session) TogglePreference(pref string) {
	for i, p := range s.Draft.Preferences {
		if p == pref {
			s.Draft.Preferences = append(s.Draft.Preferences[:i:i], s.Draft.Preferences[i+1:]...)
			return
		}
	}
	s.Draft.Preferences = append(s.Draft.Preferences, pref)
}
