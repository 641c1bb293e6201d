// Package jwt реализует выпуск и проверку JWT токенов доступа.
//
// Claims хранит стандартные зарегистрированные поля токена; субъектом (sub)
// выступает имя пользователя, которому выдан токен.
package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims описывает полезную нагрузку токена доступа.
type Claims struct {
	jwt.RegisteredClaims // Встроенные стандартные claims JWT (Subject, ExpiresAt, IssuedAt и пр.)
}

// Username возвращает субъект токена — имя пользователя.
func (c *Claims) Username() string {
	return c.Subject
}
