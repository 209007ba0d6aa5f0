// Package authz содержит политику доступа к документам.
//
// Решение о доступе принимается единственной чистой функцией Decide,
// которую вызывают все методы сервиса документов. Разрозненных проверок
// роли по коду сервиса нет — вся таблица доступа собрана в одном месте.
package authz

import "github.com/magabrotheeeer/document-manager/internal/models"

// Operation — операция над документом, для которой запрашивается решение.
type Operation int

const (
	// OpRead — чтение документа.
	OpRead Operation = iota
	// OpUpdate — изменение заголовка или содержимого.
	OpUpdate
	// OpDelete — безвозвратное удаление.
	OpDelete
)

// Decide возвращает true, если пользователю с ролью role разрешена
// операция op над документом, владение которым описывает isOwner.
//
// Таблица доступа:
//
//	операция | владелец | admin | прочие
//	read     | да       | да    | нет
//	update   | да       | да    | нет
//	delete   | нет      | да    | нет
//
// Владелец намеренно не может удалить собственный документ —
// это поведение продукта, а не ошибка.
func Decide(role string, isOwner bool, op Operation) bool {
	if role == models.RoleAdmin {
		return true
	}
	switch op {
	case OpRead, OpUpdate:
		return isOwner
	case OpDelete:
		return false
	default:
		return false
	}
}
