package port

import "context"

// CodeVerifier проверяет одноразовый код входа.
type CodeVerifier interface {
	// Verify возвращает returning=true для вернувшегося пользователя.
	// Неверный код: entity.ErrInvalidCode.
	Verify(ctx context.Context, contact, code string) (returning bool, err error)
}
