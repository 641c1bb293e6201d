package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// CreateSong вставляет новую песню в общую библиотеку и возвращает её ID.
func (s *Storage) CreateSong(ctx context.Context, song models.Song) (int64, error) {
	const op = "storage.CreateSong"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO songs (title, artist, duration, storage_key)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		song.Title, song.Artist, song.Duration, song.StorageKey).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetSong возвращает песню по её ID.
func (s *Storage) GetSong(ctx context.Context, id int64) (*models.Song, error) {
	const op = "storage.GetSong"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, artist, duration, COALESCE(storage_key, '')
			  FROM songs
			  WHERE id = $1`
	var result models.Song
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.Title, &result.Artist,
		&result.Duration, &result.StorageKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListSongs возвращает все песни библиотеки в порядке вставки.
func (s *Storage) ListSongs(ctx context.Context) ([]*models.Song, error) {
	const op = "storage.ListSongs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, artist, duration, COALESCE(storage_key, '')
			  FROM songs
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Song
	for rows.Next() {
		var item models.Song
		if err := rows.Scan(&item.ID, &item.Title, &item.Artist,
			&item.Duration, &item.StorageKey); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
