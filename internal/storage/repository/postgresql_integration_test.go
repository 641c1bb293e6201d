package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

func TestStorage_RegisterUser_Unique(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	id, err := storage.RegisterUser(ctx, models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// Дубликат имени пользователя
	_, err = storage.RegisterUser(ctx, models.User{
		Username:     "testuser",
		Email:        "other@example.com",
		PasswordHash: "hashedpassword",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Дубликат email
	_, err = storage.RegisterUser(ctx, models.User{
		Username:     "otheruser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestStorage_GetUserByUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userID := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")

	user, err := storage.GetUserByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "hashedpassword", user.PasswordHash)

	_, err = storage.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	byID, err := storage.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "testuser", byID.Username)

	_, err = storage.GetUserByID(context.Background(), userID+1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_WorkoutCRUD(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	userID := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")

	id := factory.CreateWorkout(t, userID, "running", 30, 250)

	got, err := storage.GetWorkout(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "running", got.WorkoutType)
	assert.Equal(t, userID, got.UserID)

	updated, err := storage.UpdateWorkout(ctx, id, models.Workout{
		WorkoutType:    "cycling",
		Duration:       45,
		CaloriesBurned: 400,
	})
	require.NoError(t, err)
	assert.Equal(t, "cycling", updated.WorkoutType)
	assert.Equal(t, userID, updated.UserID)

	count, err := storage.RemoveWorkout(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = storage.GetWorkout(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_ListWorkouts_InsertionOrder(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userID := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")
	otherID := factory.CreateUser(t, "otheruser", "other@example.com", "hashedpassword")

	first := factory.CreateWorkout(t, userID, "running", 30, 250)
	second := factory.CreateWorkout(t, userID, "cycling", 45, 400)
	factory.CreateWorkout(t, otherID, "swimming", 60, 500)

	got, err := storage.ListWorkouts(context.Background(), userID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, second, got[1].ID)
}

func TestStorage_PlaylistSongs(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	userID := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword")
	playlistID := factory.CreatePlaylist(t, userID, "running mix")
	songID := factory.CreateSong(t, "Song A", "Artist A", 180)

	require.NoError(t, storage.AddPlaylistSong(ctx, playlistID, songID))

	// Повторное добавление той же песни — конфликт
	err := storage.AddPlaylistSong(ctx, playlistID, songID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	songs, err := storage.ListPlaylistSongs(ctx, playlistID)
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "Song A", songs[0].Title)

	// Удаление плейлиста не трогает песни библиотеки
	count, err := storage.RemovePlaylist(ctx, playlistID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	song, err := storage.GetSong(ctx, songID)
	require.NoError(t, err)
	assert.Equal(t, "Song A", song.Title)
}

func TestStorage_Categories(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	_, err := storage.CreateCategory(ctx, models.Category{Name: "cardio", Description: "aerobic"})
	require.NoError(t, err)

	_, err = storage.CreateCategory(ctx, models.Category{Name: "cardio"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	categories, err := storage.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "cardio", categories[0].Name)
}
