// Package authz содержит единую проверку владения ресурсом.
//
// Все сервисы, работающие с принадлежащими пользователю записями
// (тренировки, цели, плейлисты), применяют AssertOwned перед чтением
// или изменением записи.
package authz

import "errors"

// ErrNotOwned возвращается, когда ресурс принадлежит другому пользователю.
// Наружу такая ошибка всегда транслируется как "не найдено", чтобы не
// раскрывать существование чужих записей.
var ErrNotOwned = errors.New("resource is not owned by caller")

// AssertOwned проверяет, что владелец ресурса совпадает с вызывающим.
func AssertOwned(ownerID, callerID int64) error {
	if ownerID != callerID {
		return ErrNotOwned
	}
	return nil
}
