// Package apperr содержит доменные ошибки, общие для слоёв repo, service и handlers.
package apperr

import "errors"

var (
	// ErrValidation — не заполнено обязательное поле или передано недопустимое значение.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound — запрошенная сущность отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrForbidden — пользователь не владеет ресурсом.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict — операция противоречит текущему состоянию (например, обмен уже закрыт).
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized — запрос без действующей аутентификации.
	ErrUnauthorized = errors.New("unauthorized")
)
