package models

import "time"

// Goal представляет фитнес-цель пользователя.
// Deadline может быть nil — это означает бессрочную цель.
type Goal struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"-"`
	GoalType     string     `json:"goal_type"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// GoalRequest используется для приёма данных цели из JSON-запроса.
// Дедлайн приходит строкой в формате 2006-01-02 и парсится вручную.
type GoalRequest struct {
	GoalType     string  `json:"goal_type" validate:"required,min=1,max=100"`
	TargetValue  float64 `json:"target_value" validate:"required,gt=0"`
	CurrentValue float64 `json:"current_value" validate:"gte=0"`
	Deadline     string  `json:"deadline,omitempty"`
}
