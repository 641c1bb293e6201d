// Package models содержит доменные структуры приложения: пользователей,
// тренировки, цели, песни, плейлисты и категории тренировок, а также
// вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не попадает в JSON-ответ.
type User struct {
	ID           int64     `json:"id"`       // Уникальный числовой идентификатор
	Username     string    `json:"username"` // Имя пользователя (уникальное)
	Email        string    `json:"email"`    // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`        // Хэш пароля пользователя
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterRequest — входные данные для регистрации нового пользователя.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
