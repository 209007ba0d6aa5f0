// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и метки времени.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей. Хранятся в нижнем регистре.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	FullName     string    // Полное имя пользователя
	Email        string    // Электронная почта (уникальная, используется для входа)
	PasswordHash string    // Хэш пароля пользователя
	Role         string    // Роль пользователя, admin или user
	CreatedAt    time.Time // Дата создания учётной записи
	UpdatedAt    time.Time // Дата последнего изменения
}

// PublicUser — представление пользователя для ответов API.
// Никогда не содержит хэш пароля.
type PublicUser struct {
	UID      string `json:"uid"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Public возвращает безопасное представление пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		UID:      u.UID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// Requester описывает аутентифицированного пользователя,
// восстановленного из проверенного JWT.
type Requester struct {
	UID   string
	Email string
	Role  string
}

// RegisteredInfo — событие о регистрации пользователя,
// публикуемое в очередь для отправки приветственного письма.
type RegisteredInfo struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
