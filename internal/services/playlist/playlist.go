// Package services содержит бизнес-логику для управления плейлистами
// и их содержимым. Плейлист принадлежит пользователю, песни в нём —
// ссылки на записи общей библиотеки.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/authz"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// PlaylistRepository определяет методы для работы с плейлистами в хранилище.
type PlaylistRepository interface {
	// CreatePlaylist добавляет новый плейлист и возвращает его ID.
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (int64, error)
	// GetPlaylist возвращает плейлист по ID.
	GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error)
	// UpdatePlaylist обновляет данные плейлиста и возвращает обновлённую запись.
	UpdatePlaylist(ctx context.Context, id int64, playlist models.Playlist) (*models.Playlist, error)
	// RemovePlaylist удаляет плейлист по ID и возвращает количество удалённых записей.
	RemovePlaylist(ctx context.Context, id int64) (int64, error)
	// ListPlaylists возвращает список плейлистов пользователя с пагинацией.
	ListPlaylists(ctx context.Context, userID int64, limit, offset int) ([]*models.Playlist, error)
	// AddPlaylistSong связывает песню с плейлистом.
	AddPlaylistSong(ctx context.Context, playlistID, songID int64) error
	// RemovePlaylistSong удаляет песню из плейлиста.
	RemovePlaylistSong(ctx context.Context, playlistID, songID int64) (int64, error)
	// ListPlaylistSongs возвращает песни плейлиста.
	ListPlaylistSongs(ctx context.Context, playlistID int64) ([]*models.Song, error)
	// GetSong возвращает песню общей библиотеки по ID.
	GetSong(ctx context.Context, id int64) (*models.Song, error)
}

// PlaylistService реализует бизнес-логику работы с плейлистами.
type PlaylistService struct {
	repo PlaylistRepository
	log  *slog.Logger
}

// NewPlaylistService создает новый экземпляр PlaylistService.
func NewPlaylistService(repo PlaylistRepository, log *slog.Logger) *PlaylistService {
	return &PlaylistService{
		repo: repo,
		log:  log,
	}
}

// owned возвращает плейлист после проверки владения.
// Чужой плейлист неотличим от несуществующего.
func (s *PlaylistService) owned(ctx context.Context, callerID, id int64) (*models.Playlist, error) {
	playlist, err := s.repo.GetPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwned(playlist.UserID, callerID); err != nil {
		return nil, repository.ErrNotFound
	}
	return playlist, nil
}

// Create создает новый плейлист для пользователя и возвращает его ID.
func (s *PlaylistService) Create(ctx context.Context, callerID int64, req models.PlaylistRequest) (int64, error) {
	playlist := models.Playlist{
		UserID:      callerID,
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := s.repo.CreatePlaylist(ctx, playlist)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new playlist", slog.Int64("id", id))
	return id, nil
}

// Read возвращает плейлист вместе с его песнями после проверки владения.
func (s *PlaylistService) Read(ctx context.Context, callerID, id int64) (*models.PlaylistWithSongs, error) {
	playlist, err := s.owned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	songs, err := s.repo.ListPlaylistSongs(ctx, id)
	if err != nil {
		return nil, err
	}
	if songs == nil {
		songs = []*models.Song{}
	}
	return &models.PlaylistWithSongs{Playlist: *playlist, Songs: songs}, nil
}

// Update перезаписывает изменяемые поля плейлиста после проверки владения.
func (s *PlaylistService) Update(ctx context.Context, callerID, id int64, req models.PlaylistRequest) (*models.Playlist, error) {
	if _, err := s.owned(ctx, callerID, id); err != nil {
		return nil, err
	}
	updated := models.Playlist{
		Name:        req.Name,
		Description: req.Description,
	}
	return s.repo.UpdatePlaylist(ctx, id, updated)
}

// Remove удаляет плейлист после проверки владения.
// Связи с песнями удаляются каскадом, сами песни остаются в библиотеке.
func (s *PlaylistService) Remove(ctx context.Context, callerID, id int64) error {
	if _, err := s.owned(ctx, callerID, id); err != nil {
		return err
	}
	count, err := s.repo.RemovePlaylist(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List возвращает плейлисты пользователя в порядке вставки.
func (s *PlaylistService) List(ctx context.Context, callerID int64, limit, offset int) ([]*models.Playlist, error) {
	return s.repo.ListPlaylists(ctx, callerID, limit, offset)
}

// AddSong добавляет песню библиотеки в плейлист пользователя.
// Плейлист проверяется на владение, песня — на существование.
func (s *PlaylistService) AddSong(ctx context.Context, callerID, playlistID, songID int64) error {
	if _, err := s.owned(ctx, callerID, playlistID); err != nil {
		return err
	}
	if _, err := s.repo.GetSong(ctx, songID); err != nil {
		return err
	}
	return s.repo.AddPlaylistSong(ctx, playlistID, songID)
}

// RemoveSong удаляет песню из плейлиста пользователя.
func (s *PlaylistService) RemoveSong(ctx context.Context, callerID, playlistID, songID int64) error {
	if _, err := s.owned(ctx, callerID, playlistID); err != nil {
		return err
	}
	count, err := s.repo.RemovePlaylistSong(ctx, playlistID, songID)
	if err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return nil
}
