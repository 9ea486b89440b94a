// Package otp содержит заглушку проверки одноразового кода входа.
package otp

import (
	"context"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/domain/port"
)

// MockVerifier принимает два фиксированных кода: для нового и для вернувшегося пользователя.
// Блокировки после неудачных попыток нет.
type MockVerifier struct {
	NewUserCode   string
	ReturningCode string
}

// NewMockVerifier создаёт верификатор с заданными кодами.
func NewMockVerifier(newUserCode, returningCode string) *MockVerifier {
	return &MockVerifier{NewUserCode: newUserCode, ReturningCode: returningCode}
}

// Verify проверяет код
func (v *MockVerifier) Verify(ctx context.Context, contact, code string) (bool, error) {
	if err := entity.ValidateCode(code); err != nil {
		return false, err
	}

	switch {
	case v.ReturningCode != "" && code == v.ReturningCode:
		return true, nil
	case code == v.NewUserCode:
		return false, nil
	}
	return false, entity.ErrInvalidCode
}

var _ port.CodeVerifier = (*MockVerifier)(nil)
