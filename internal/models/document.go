// Package models содержит доменные структуры, описывающие документ,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Document представляет собой текстовый документ пользователя.
// Поле Owner заполняется при чтении из хранилища данными владельца.
type Document struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	OwnerUID  string      `json:"owner_uid"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Owner     *PublicUser `json:"owner,omitempty"`
}

// DummyDocument используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Document.
type DummyDocument struct {
	Title   string `json:"title" validate:"required,max=255"` // Заголовок, не более 255 символов
	Content string `json:"content" validate:"required"`       // Содержимое документа
}
