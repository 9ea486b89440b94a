package entity

// Suggestion: вариант блюда от сервиса рекомендаций.
type Suggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Macros string `json:"macros"`
}
