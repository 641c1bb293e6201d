package models

import "time"

// Workout представляет одну записанную тренировку пользователя.
type Workout struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"-"` // Владелец записи, наружу не отдается
	WorkoutType    string    `json:"workout_type"`
	Duration       float64   `json:"duration"` // Длительность в минутах
	CaloriesBurned float64   `json:"calories_burned"`
	Date           time.Time `json:"date"`
}

// WorkoutRequest используется для приёма данных тренировки из JSON-запроса.
type WorkoutRequest struct {
	WorkoutType    string  `json:"workout_type" validate:"required,min=1,max=100"`
	Duration       float64 `json:"duration" validate:"required,gt=0"`
	CaloriesBurned float64 `json:"calories_burned" validate:"gte=0"`
}
