// Package services содержит бизнес-логику для управления тренировками.
//
// Каждая операция над конкретной записью проходит через единую проверку
// владения: чужая запись неотличима от несуществующей.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/authz"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// WorkoutRepository определяет методы для работы с тренировками в хранилище.
type WorkoutRepository interface {
	// CreateWorkout добавляет новую тренировку и возвращает её ID.
	CreateWorkout(ctx context.Context, workout models.Workout) (int64, error)
	// GetWorkout возвращает тренировку по ID.
	GetWorkout(ctx context.Context, id int64) (*models.Workout, error)
	// UpdateWorkout обновляет данные тренировки и возвращает обновлённую запись.
	UpdateWorkout(ctx context.Context, id int64, workout models.Workout) (*models.Workout, error)
	// RemoveWorkout удаляет тренировку по ID и возвращает количество удалённых записей.
	RemoveWorkout(ctx context.Context, id int64) (int64, error)
	// ListWorkouts возвращает список тренировок пользователя с пагинацией.
	ListWorkouts(ctx context.Context, userID int64, limit, offset int) ([]*models.Workout, error)
}

// WorkoutService реализует бизнес-логику работы с тренировками.
type WorkoutService struct {
	repo WorkoutRepository
	log  *slog.Logger
}

// NewWorkoutService создает новый экземпляр WorkoutService.
func NewWorkoutService(repo WorkoutRepository, log *slog.Logger) *WorkoutService {
	return &WorkoutService{
		repo: repo,
		log:  log,
	}
}

// Create создает новую тренировку для пользователя и возвращает её ID.
func (s *WorkoutService) Create(ctx context.Context, callerID int64, req models.WorkoutRequest) (int64, error) {
	workout := models.Workout{
		UserID:         callerID,
		WorkoutType:    req.WorkoutType,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
	}
	id, err := s.repo.CreateWorkout(ctx, workout)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new workout", slog.Int64("id", id))
	return id, nil
}

// Read возвращает тренировку по ID после проверки владения.
func (s *WorkoutService) Read(ctx context.Context, callerID, id int64) (*models.Workout, error) {
	workout, err := s.repo.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwned(workout.UserID, callerID); err != nil {
		return nil, repository.ErrNotFound
	}
	return workout, nil
}

// Update перезаписывает изменяемые поля тренировки после проверки владения.
func (s *WorkoutService) Update(ctx context.Context, callerID, id int64, req models.WorkoutRequest) (*models.Workout, error) {
	workout, err := s.repo.GetWorkout(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwned(workout.UserID, callerID); err != nil {
		return nil, repository.ErrNotFound
	}
	updated := models.Workout{
		WorkoutType:    req.WorkoutType,
		Duration:       req.Duration,
		CaloriesBurned: req.CaloriesBurned,
	}
	return s.repo.UpdateWorkout(ctx, id, updated)
}

// Remove удаляет тренировку после проверки владения.
func (s *WorkoutService) Remove(ctx context.Context, callerID, id int64) error {
	workout, err := s.repo.GetWorkout(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.AssertOwned(workout.UserID, callerID); err != nil {
		return repository.ErrNotFound
	}
	count, err := s.repo.RemoveWorkout(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List возвращает тренировки пользователя в порядке вставки.
func (s *WorkoutService) List(ctx context.Context, callerID int64, limit, offset int) ([]*models.Workout, error) {
	return s.repo.ListWorkouts(ctx, callerID, limit, offset)
}
