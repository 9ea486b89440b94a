package entity

import "errors"

// Все ошибки движка восстановимы: обработчик показывает сообщение, пользователь повторяет действие.
var (
	ErrNotFound                  = errors.New("not found")
	ErrInvalidCode               = errors.New("invalid verification code")
	ErrMalformedCode             = errors.New("verification code must be exactly 4 digits")
	ErrEmptyContact              = errors.New("contact is empty")
	ErrInvalidTransition         = errors.New("invalid wizard transition")
	ErrRecommendationUnavailable = errors.New("recommendation unavailable")
	ErrEmptyCart                 = errors.New("cart is empty")
)
