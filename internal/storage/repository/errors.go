package repository

import "errors"

// Сигнальные ошибки хранилища. Обработчики транслируют их в HTTP-статусы:
// ErrNotFound — 404, ErrAlreadyExists — 400.
var (
	// ErrNotFound возвращается, если запрошенная запись отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists возвращается при нарушении ограничения уникальности.
	ErrAlreadyExists = errors.New("record already exists")
)
