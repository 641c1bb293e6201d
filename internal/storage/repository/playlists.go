package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// CreatePlaylist вставляет новый плейлист и возвращает его ID.
func (s *Storage) CreatePlaylist(ctx context.Context, playlist models.Playlist) (int64, error) {
	const op = "storage.CreatePlaylist"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO playlists (user_id, name, description)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		playlist.UserID, playlist.Name, playlist.Description).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetPlaylist возвращает плейлист по его ID вместе с владельцем записи.
func (s *Storage) GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error) {
	const op = "storage.GetPlaylist"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, COALESCE(description, '')
			  FROM playlists
			  WHERE id = $1`
	var result models.Playlist
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.UserID, &result.Name, &result.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdatePlaylist обновляет изменяемые поля плейлиста и возвращает обновлённую запись.
func (s *Storage) UpdatePlaylist(ctx context.Context, id int64, playlist models.Playlist) (*models.Playlist, error) {
	const op = "storage.UpdatePlaylist"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE playlists
			  SET name = $1, description = $2
			  WHERE id = $3
			  RETURNING id, user_id, name, COALESCE(description, '')`
	var result models.Playlist
	row := s.DB.QueryRowContext(ctx, query, playlist.Name, playlist.Description, id)
	if err := row.Scan(&result.ID, &result.UserID, &result.Name, &result.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// RemovePlaylist удаляет плейлист по ID и возвращает количество удалённых строк.
// Связанные строки playlist_songs удаляются каскадом на стороне базы.
func (s *Storage) RemovePlaylist(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemovePlaylist"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM playlists WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// ListPlaylists возвращает плейлисты пользователя в порядке вставки с пагинацией.
func (s *Storage) ListPlaylists(ctx context.Context, userID int64, limit, offset int) ([]*models.Playlist, error) {
	const op = "storage.ListPlaylists"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, COALESCE(description, '')
			  FROM playlists
			  WHERE user_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Playlist
	for rows.Next() {
		var item models.Playlist
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AddPlaylistSong связывает песню с плейлистом.
// Повторное добавление той же песни транслируется в ErrAlreadyExists.
func (s *Storage) AddPlaylistSong(ctx context.Context, playlistID, songID int64) error {
	const op = "storage.AddPlaylistSong"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO playlist_songs (playlist_id, song_id) VALUES ($1, $2)`
	if _, err := s.DB.ExecContext(ctx, query, playlistID, songID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RemovePlaylistSong удаляет песню из плейлиста и возвращает количество удалённых строк.
func (s *Storage) RemovePlaylistSong(ctx context.Context, playlistID, songID int64) (int64, error) {
	const op = "storage.RemovePlaylistSong"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`
	result, err := s.DB.ExecContext(ctx, query, playlistID, songID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// ListPlaylistSongs возвращает песни плейлиста в порядке добавления.
func (s *Storage) ListPlaylistSongs(ctx context.Context, playlistID int64) ([]*models.Song, error) {
	const op = "storage.ListPlaylistSongs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.id, s.title, s.artist, s.duration, COALESCE(s.storage_key, '')
			  FROM playlist_songs ps
			  JOIN songs s ON s.id = ps.song_id
			  WHERE ps.playlist_id = $1
			  ORDER BY s.id`
	rows, err := s.DB.QueryContext(ctx, query, playlistID)
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
