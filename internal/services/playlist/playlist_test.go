package services_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	services "github.com/magabrotheeeer/fitness-tracker/internal/services/playlist"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// Мок для PlaylistRepository
type PlaylistRepoMock struct {
	mock.Mock
}

func (m *PlaylistRepoMock) CreatePlaylist(ctx context.Context, playlist models.Playlist) (int64, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PlaylistRepoMock) GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *PlaylistRepoMock) UpdatePlaylist(ctx context.Context, id int64, playlist models.Playlist) (*models.Playlist, error) {
	args := m.Called(ctx, id, playlist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Playlist), args.Error(1)
}

func (m *PlaylistRepoMock) RemovePlaylist(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PlaylistRepoMock) ListPlaylists(ctx context.Context, userID int64, limit, offset int) ([]*models.Playlist, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Playlist), args.Error(1)
}

func (m *PlaylistRepoMock) AddPlaylistSong(ctx context.Context, playlistID, songID int64) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *PlaylistRepoMock) RemovePlaylistSong(ctx context.Context, playlistID, songID int64) (int64, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PlaylistRepoMock) ListPlaylistSongs(ctx context.Context, playlistID int64) ([]*models.Song, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Song), args.Error(1)
}

func (m *PlaylistRepoMock) GetSong(ctx context.Context, id int64) (*models.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestPlaylistService_Read_WithSongs(t *testing.T) {
	repo := new(PlaylistRepoMock)
	svc := services.NewPlaylistService(repo, testLogger())

	repo.On("GetPlaylist", mock.Anything, int64(3)).
		Return(&models.Playlist{ID: 3, UserID: 1, Name: "running mix"}, nil).Once()
	repo.On("ListPlaylistSongs", mock.Anything, int64(3)).
		Return([]*models.Song{{ID: 7, Title: "Song A"}}, nil).Once()

	res, err := svc.Read(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "running mix", res.Name)
	assert.Len(t, res.Songs, 1)
	repo.AssertExpectations(t)
}

func TestPlaylistService_Read_EmptyPlaylistHasEmptySlice(t *testing.T) {
	repo := new(PlaylistRepoMock)
	svc := services.NewPlaylistService(repo, testLogger())

	repo.On("GetPlaylist", mock.Anything, int64(3)).
		Return(&models.Playlist{ID: 3, UserID: 1, Name: "empty"}, nil).Once()
	repo.On("ListPlaylistSongs", mock.Anything, int64(3)).
		Return(nil, nil).Once()

	res, err := svc.Read(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.NotNil(t, res.Songs)
	assert.Empty(t, res.Songs)
	repo.AssertExpectations(t)
}

func TestPlaylistService_Read_OtherUser(t *testing.T) {
	repo := new(PlaylistRepoMock)
	svc := services.NewPlaylistService(repo, testLogger())

	repo.On("GetPlaylist", mock.Anything, int64(3)).
		Return(&models.Playlist{ID: 3, UserID: 1, Name: "running mix"}, nil).Once()

	res, err := svc.Read(context.Background(), 2, 3)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestPlaylistService_AddSong(t *testing.T) {
	tests := []struct {
		name       string
		callerID   int64
		setupMocks func(r *PlaylistRepoMock)
		wantErr    error
	}{
		{
			name:     "song added to own playlist",
			callerID: 1,
			setupMocks: func(r *PlaylistRepoMock) {
				r.On("GetPlaylist", mock.Anything, int64(3)).
					Return(&models.Playlist{ID: 3, UserID: 1}, nil).Once()
				r.On("GetSong", mock.Anything, int64(7)).
					Return(&models.Song{ID: 7}, nil).Once()
				r.On("AddPlaylistSong", mock.Anything, int64(3), int64(7)).
					Return(nil).Once()
			},
		},
		{
			name:     "foreign playlist looks absent",
			callerID: 2,
			setupMocks: func(r *PlaylistRepoMock) {
				r.On("GetPlaylist", mock.Anything, int64(3)).
					Return(&models.Playlist{ID: 3, UserID: 1}, nil).Once()
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name:     "missing song",
			callerID: 1,
			setupMocks: func(r *PlaylistRepoMock) {
				r.On("GetPlaylist", mock.Anything, int64(3)).
					Return(&models.Playlist{ID: 3, UserID: 1}, nil).Once()
				r.On("GetSong", mock.Anything, int64(7)).
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name:     "duplicate song in playlist",
			callerID: 1,
			setupMocks: func(r *PlaylistRepoMock) {
				r.On("GetPlaylist", mock.Anything, int64(3)).
					Return(&models.Playlist{ID: 3, UserID: 1}, nil).Once()
				r.On("GetSong", mock.Anything, int64(7)).
					Return(&models.Song{ID: 7}, nil).Once()
				r.On("AddPlaylistSong", mock.Anything, int64(3), int64(7)).
					Return(repository.ErrAlreadyExists).Once()
			},
			wantErr: repository.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(PlaylistRepoMock)
			tt.setupMocks(repo)
			svc := services.NewPlaylistService(repo, testLogger())

			err := svc.AddSong(context.Background(), tt.callerID, 3, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestPlaylistService_RemoveSong_NotInPlaylist(t *testing.T) {
	repo := new(PlaylistRepoMock)
	svc := services.NewPlaylistService(repo, testLogger())

	repo.On("GetPlaylist", mock.Anything, int64(3)).
		Return(&models.Playlist{ID: 3, UserID: 1}, nil).Once()
	repo.On("RemovePlaylistSong", mock.Anything, int64(3), int64(7)).
		Return(int64(0), nil).Once()

	assert.ErrorIs(t, svc.RemoveSong(context.Background(), 1, 3, 7), repository.ErrNotFound)
	repo.AssertExpectations(t)
}
