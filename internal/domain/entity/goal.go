package entity

import "strings"

// GoalPreset: готовый профиль цели на ужин.
type GoalPreset string

const (
	GoalBalanced    GoalPreset = "Balanced"
	GoalLowFat      GoalPreset = "Low fat"
	GoalLowCarbs    GoalPreset = "Low carbs"
	GoalHighProtein GoalPreset = "High Protein"
)

// GoalPresets в порядке показа.
var GoalPresets = []GoalPreset{GoalBalanced, GoalLowFat, GoalLowCarbs, GoalHighProtein}

// ParseGoalPreset разбирает пресет без учёта регистра.
func ParseGoalPreset(s string) (GoalPreset, bool) {
	for _, p := range GoalPresets {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, true
		}
	}
	return "", false
}

// Goal: цель на ужин: калории и макросы в граммах.
type Goal struct {
	Preset  GoalPreset `json:"preset"`
	Kcal    int        `json:"kcal"`
	Protein int        `json:"protein"`
	Carbs   int        `json:"carbs"`
	Fat     int        `json:"fat"`
}

// DefaultGoal: значения, к которым возвращает кнопка "Reset".
func DefaultGoal() Goal {
	return Goal{Preset: GoalBalanced, Kcal: 622, Protein: 25, Carbs: 90, Fat: 18}
}

// GoalProgress: сколько цели уже набрано корзиной.
type GoalProgress struct {
	Goal          Goal
	Consumed      Macros
	RemainingKcal int
}

// Progress считает прогресс цели по содержимому корзины.
func Progress(g Goal, cart Cart) GoalProgress {
	consumed := TotalMacros(cart)
	return GoalProgress{
		Goal:          g,
		Consumed:      consumed,
		RemainingKcal: max(0, g.Kcal-consumed.Kcal),
	}
}

// Percent: доля набранных калорий, не больше 100.
func (p GoalProgress) Percent() int {
	if p.Goal.Kcal <= 0 {
		return 0
	}
	return min(100, p.Consumed.Kcal*100/p.Goal.Kcal)
}
