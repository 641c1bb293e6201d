// Package services содержит бизнес-логику общей библиотеки песен:
// загрузку файла в объектное хранилище с записью метаданных в базу
// и выдачу полного списка библиотеки через кеш.
package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// cacheKeySongs — ключ кеша для полного списка песен библиотеки.
const cacheKeySongs = "songs:all"

// cacheTTL — время жизни закешированного списка.
const cacheTTL = 5 * time.Minute

// SongRepository определяет методы для работы с песнями в хранилище.
type SongRepository interface {
	// CreateSong добавляет метаданные песни и возвращает её ID.
	CreateSong(ctx context.Context, song models.Song) (int64, error)
	// GetSong возвращает песню по ID.
	GetSong(ctx context.Context, id int64) (*models.Song, error)
	// ListSongs возвращает все песни библиотеки.
	ListSongs(ctx context.Context) ([]*models.Song, error)
}

// FileStore сохраняет бинарные файлы песен и возвращает ключ объекта.
type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Cache описывает кеш для списка песен.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// SongService реализует бизнес-логику общей библиотеки песен.
type SongService struct {
	repo  SongRepository
	files FileStore
	cache Cache
	log   *slog.Logger
}

// NewSongService создает новый экземпляр SongService.
func NewSongService(repo SongRepository, files FileStore, cache Cache, log *slog.Logger) *SongService {
	return &SongService{
		repo:  repo,
		files: files,
		cache: cache,
		log:   log,
	}
}

// Upload сохраняет файл песни в объектное хранилище, затем записывает
// метаданные в базу и сбрасывает кеш списка. Возвращает ID новой песни.
func (s *SongService) Upload(ctx context.Context, req models.SongRequest, filename string, data io.Reader) (int64, error) {
	key, err := s.files.Save(ctx, filename, data)
	if err != nil {
		return 0, err
	}
	song := models.Song{
		Title:      req.Title,
		Artist:     req.Artist,
		Duration:   req.Duration,
		StorageKey: key,
	}
	id, err := s.repo.CreateSong(ctx, song)
	if err != nil {
		return 0, err
	}
	if err := s.cache.Invalidate(ctx, cacheKeySongs); err != nil {
		s.log.Warn("failed to invalidate songs cache", sl.Err(err))
	}
	s.log.Info("uploaded new song", slog.Int64("id", id), slog.String("storage_key", key))
	return id, nil
}

// Read возвращает песню библиотеки по ID.
func (s *SongService) Read(ctx context.Context, id int64) (*models.Song, error) {
	return s.repo.GetSong(ctx, id)
}

// List возвращает полный список песен библиотеки.
// Список глобальный и меняется редко, поэтому кешируется целиком.
func (s *SongService) List(ctx context.Context) ([]*models.Song, error) {
	var cached []*models.Song
	found, err := s.cache.Get(ctx, cacheKeySongs, &cached)
	if err != nil {
		s.log.Warn("failed to read songs cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	songs, err := s.repo.ListSongs(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKeySongs, songs, cacheTTL); err != nil {
		s.log.Warn("failed to write songs cache", sl.Err(err))
	}
	return songs, nil
}
