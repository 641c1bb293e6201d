package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	services "github.com/magabrotheeeer/fitness-tracker/internal/services/song"
)

// Мок для SongRepository
type SongRepoMock struct {
	mock.Mock
}

func (m *SongRepoMock) CreateSong(ctx context.Context, song models.Song) (int64, error) {
	args := m.Called(ctx, song)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SongRepoMock) GetSong(ctx context.Context, id int64) (*models.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *SongRepoMock) ListSongs(ctx context.Context) ([]*models.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Song), args.Error(1)
}

// Мок для FileStore
type FileStoreMock struct {
	mock.Mock
}

func (m *FileStoreMock) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

// fakeCache хранит значения в памяти, имитируя Redis.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSongService_Upload(t *testing.T) {
	repo := new(SongRepoMock)
	files := new(FileStoreMock)
	cache := newFakeCache()
	svc := services.NewSongService(repo, files, cache, testLogger())

	// Заполняем кеш, чтобы проверить его сброс после загрузки.
	require.NoError(t, cache.Set(context.Background(), "songs:all", []*models.Song{}, time.Minute))

	files.On("Save", mock.Anything, "track.mp3", mock.Anything).
		Return("songs/uuid/track.mp3", nil).Once()
	repo.On("CreateSong", mock.Anything, mock.MatchedBy(func(s models.Song) bool {
		return s.Title == "Song A" && s.StorageKey == "songs/uuid/track.mp3"
	})).Return(int64(7), nil).Once()

	id, err := svc.Upload(context.Background(), models.SongRequest{
		Title:    "Song A",
		Artist:   "Artist A",
		Duration: 180,
	}, "track.mp3", bytes.NewBufferString("binary data"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	_, cached := cache.data["songs:all"]
	assert.False(t, cached, "songs cache should be invalidated after upload")
	repo.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestSongService_Upload_FileStoreError(t *testing.T) {
	repo := new(SongRepoMock)
	files := new(FileStoreMock)
	svc := services.NewSongService(repo, files, newFakeCache(), testLogger())

	files.On("Save", mock.Anything, "track.mp3", mock.Anything).
		Return("", errors.New("bucket unavailable")).Once()

	id, err := svc.Upload(context.Background(), models.SongRequest{
		Title:  "Song A",
		Artist: "Artist A",
	}, "track.mp3", bytes.NewBufferString("binary data"))

	assert.Error(t, err)
	assert.Zero(t, id)
	repo.AssertNotCalled(t, "CreateSong", mock.Anything, mock.Anything)
	files.AssertExpectations(t)
}

func TestSongService_List_CacheMissThenHit(t *testing.T) {
	repo := new(SongRepoMock)
	files := new(FileStoreMock)
	cache := newFakeCache()
	svc := services.NewSongService(repo, files, cache, testLogger())

	songs := []*models.Song{
		{ID: 1, Title: "Song A", Artist: "Artist A"},
		{ID: 2, Title: "Song B", Artist: "Artist B"},
	}
	repo.On("ListSongs", mock.Anything).Return(songs, nil).Once()

	// Первый вызов идёт в базу и наполняет кеш.
	res, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 2)

	// Второй вызов обслуживается из кеша: репозиторий больше не вызывается.
	res, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "Song A", res[0].Title)
	repo.AssertExpectations(t)
}
