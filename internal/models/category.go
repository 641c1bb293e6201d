package models

// Category представляет категорию тренировок. Категории глобальные
// и доступны всем аутентифицированным пользователям.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryRequest используется для приёма данных категории из JSON-запроса.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}
