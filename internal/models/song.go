package models

// Song представляет песню в общей библиотеке. Песни глобальные,
// проверка владения к ним не применяется.
type Song struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Duration   float64 `json:"duration"` // Длительность в секундах
	StorageKey string  `json:"storage_key,omitempty"`
}

// SongRequest — метаданные песни из multipart-формы загрузки.
type SongRequest struct {
	Title    string  `validate:"required,min=1,max=200"`
	Artist   string  `validate:"required,min=1,max=200"`
	Duration float64 `validate:"gte=0"`
}
