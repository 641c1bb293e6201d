// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hasher создает bcrypt-хэш пароля для безопасного хранения и сравнивает
// сохранённый хэш с введённым паролем.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher хеширует пароли по bcrypt с настраиваемым фактором стоимости.
//
// Стоимость задаётся конфигурацией и может подниматься без миграции формата:
// параметры алгоритма зашиты в сам хэш.
type Hasher struct {
	cost int
}

// New создает Hasher с указанным фактором стоимости bcrypt.
// Значение вне допустимого диапазона заменяется на bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash принимает пароль пользователя и возвращает его bcrypt-хэш.
//
// Соль генерируется заново при каждом вызове, поэтому два хэша одного
// пароля не совпадают.
func (h *Hasher) Hash(password string) (string, error) {
	const op = "password.Hash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Compare сравнивает bcrypt-хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func (h *Hasher) Compare(originalHash, externalPassword string) error {
	const op = "password.Compare"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
