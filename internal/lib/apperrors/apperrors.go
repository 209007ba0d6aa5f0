// Package apperrors определяет ошибки уровня бизнес-логики.
// Сервисы возвращают их без изменений, а HTTP-слой транслирует
// в соответствующие статус-коды.
package apperrors

import "errors"

var (
	// ErrEmailTaken — пользователь с таким email уже существует.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials — неверный email или пароль.
	// Один и тот же текст для обоих случаев, чтобы исключить перебор email.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен не прошёл проверку подписи, повреждён или истёк.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound — пользователь с таким идентификатором не найден.
	ErrUserNotFound = errors.New("user not found")

	// ErrDocumentNotFound — документ с таким идентификатором не найден.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrAccessDenied — аутентифицированный пользователь не владелец и не admin.
	ErrAccessDenied = errors.New("you do not have permission to access this document")

	// ErrOnlyAdminDelete — удалять документы может только администратор.
	ErrOnlyAdminDelete = errors.New("only administrators can delete documents")
)
