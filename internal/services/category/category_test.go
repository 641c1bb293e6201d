package services_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	services "github.com/magabrotheeeer/fitness-tracker/internal/services/category"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// Мок для CategoryRepository
type CategoryRepoMock struct {
	mock.Mock
}

func (m *CategoryRepoMock) CreateCategory(ctx context.Context, category models.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CategoryRepoMock) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
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

func TestCategoryService_Create(t *testing.T) {
	repo := new(CategoryRepoMock)
	cache := newFakeCache()
	svc := services.NewCategoryService(repo, cache, testLogger())

	require.NoError(t, cache.Set(context.Background(), "categories:all", []*models.Category{}, time.Minute))

	repo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c models.Category) bool {
		return c.Name == "cardio"
	})).Return(int64(2), nil).Once()

	id, err := svc.Create(context.Background(), models.CategoryRequest{Name: "cardio"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	_, cached := cache.data["categories:all"]
	assert.False(t, cached, "categories cache should be invalidated after create")
	repo.AssertExpectations(t)
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	repo := new(CategoryRepoMock)
	svc := services.NewCategoryService(repo, newFakeCache(), testLogger())

	repo.On("CreateCategory", mock.Anything, mock.Anything).
		Return(int64(0), repository.ErrAlreadyExists).Once()

	id, err := svc.Create(context.Background(), models.CategoryRequest{Name: "cardio"})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	assert.Zero(t, id)
	repo.AssertExpectations(t)
}

func TestCategoryService_List_UsesCache(t *testing.T) {
	repo := new(CategoryRepoMock)
	svc := services.NewCategoryService(repo, newFakeCache(), testLogger())

	categories := []*models.Category{
		{ID: 1, Name: "cardio"},
		{ID: 2, Name: "strength"},
	}
	repo.On("ListCategories", mock.Anything).Return(categories, nil).Once()

	res, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 2)

	res, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "cardio", res[0].Name)
	repo.AssertExpectations(t)
}
