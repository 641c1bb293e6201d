// Package services содержит бизнес-логику глобального справочника
// категорий тренировок.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// cacheKeyCategories — ключ кеша для полного списка категорий.
const cacheKeyCategories = "categories:all"

// cacheTTL — время жизни закешированного списка.
const cacheTTL = 5 * time.Minute

// CategoryRepository определяет методы для работы с категориями в хранилище.
type CategoryRepository interface {
	// CreateCategory добавляет новую категорию и возвращает её ID.
	CreateCategory(ctx context.Context, category models.Category) (int64, error)
	// ListCategories возвращает все категории.
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

// Cache описывает кеш для списка категорий.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// CategoryService реализует бизнес-логику справочника категорий.
type CategoryService struct {
	repo  CategoryRepository
	cache Cache
	log   *slog.Logger
}

// NewCategoryService создает новый экземпляр CategoryService.
func NewCategoryService(repo CategoryRepository, cache Cache, log *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create добавляет новую категорию тренировок и сбрасывает кеш списка.
// Дубликат имени пробрасывается как repository.ErrAlreadyExists.
func (s *CategoryService) Create(ctx context.Context, req models.CategoryRequest) (int64, error) {
	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return 0, err
	}
	if err := s.cache.Invalidate(ctx, cacheKeyCategories); err != nil {
		s.log.Warn("failed to invalidate categories cache", sl.Err(err))
	}
	s.log.Info("created new category", slog.Int64("id", id))
	return id, nil
}

// List возвращает полный список категорий тренировок.
// Справочник глобальный и меняется редко, поэтому кешируется целиком.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	var cached []*models.Category
	found, err := s.cache.Get(ctx, cacheKeyCategories, &cached)
	if err != nil {
		s.log.Warn("failed to read categories cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKeyCategories, categories, cacheTTL); err != nil {
		s.log.Warn("failed to write categories cache", sl.Err(err))
	}
	return categories, nil
}
