package models

// Playlist представляет пользовательский плейлист.
type Playlist struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PlaylistWithSongs — плейлист вместе с его песнями, отдаётся при чтении.
type PlaylistWithSongs struct {
	Playlist
	Songs []*Song `json:"songs"`
}

// PlaylistRequest используется для приёма данных плейлиста из JSON-запроса.
type PlaylistRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// AddSongRequest — запрос на добавление песни в плейлист.
type AddSongRequest struct {
	SongID int64 `json:"song_id" validate:"required,gt=0"`
}
