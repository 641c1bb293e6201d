// Package services содержит бизнес-логику для управления фитнес-целями.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/authz"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// ErrInvalidDeadline возвращается, если дедлайн цели не соответствует
// формату 2006-01-02.
var ErrInvalidDeadline = errors.New("invalid deadline format")

// GoalRepository определяет методы для работы с целями в хранилище.
type GoalRepository interface {
	// CreateGoal добавляет новую цель и возвращает её ID.
	CreateGoal(ctx context.Context, goal models.Goal) (int64, error)
	// GetGoal возвращает цель по ID.
	GetGoal(ctx context.Context, id int64) (*models.Goal, error)
	// UpdateGoal обновляет данные цели и возвращает обновлённую запись.
	UpdateGoal(ctx context.Context, id int64, goal models.Goal) (*models.Goal, error)
	// RemoveGoal удаляет цель по ID и возвращает количество удалённых записей.
	RemoveGoal(ctx context.Context, id int64) (int64, error)
	// ListGoals возвращает список целей пользователя с пагинацией.
	ListGoals(ctx context.Context, userID int64, limit, offset int) ([]*models.Goal, error)
}

// GoalService реализует бизнес-логику работы с целями пользователя.
type GoalService struct {
	repo GoalRepository
	log  *slog.Logger
}

// NewGoalService создает новый экземпляр GoalService.
func NewGoalService(repo GoalRepository, log *slog.Logger) *GoalService {
	return &GoalService{
		repo: repo,
		log:  log,
	}
}

func parseDeadline(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidDeadline
	}
	return &t, nil
}

// Create создает новую цель для пользователя и возвращает её ID.
func (s *GoalService) Create(ctx context.Context, callerID int64, req models.GoalRequest) (int64, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return 0, err
	}
	goal := models.Goal{
		UserID:       callerID,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Deadline:     deadline,
	}
	id, err := s.repo.CreateGoal(ctx, goal)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new goal", slog.Int64("id", id))
	return id, nil
}

// Read возвращает цель по ID после проверки владения.
func (s *GoalService) Read(ctx context.Context, callerID, id int64) (*models.Goal, error) {
	goal, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwned(goal.UserID, callerID); err != nil {
		return nil, repository.ErrNotFound
	}
	return goal, nil
}

// Update перезаписывает изменяемые поля цели после проверки владения.
func (s *GoalService) Update(ctx context.Context, callerID, id int64, req models.GoalRequest) (*models.Goal, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}
	goal, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.AssertOwned(goal.UserID, callerID); err != nil {
		return nil, repository.ErrNotFound
	}
	updated := models.Goal{
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Deadline:     deadline,
	}
	return s.repo.UpdateGoal(ctx, id, updated)
}

// Remove удаляет цель после проверки владения.
func (s *GoalService) Remove(ctx context.Context, callerID, id int64) error {
	goal, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.AssertOwned(goal.UserID, callerID); err != nil {
		return repository.ErrNotFound
	}
	count, err := s.repo.RemoveGoal(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List возвращает цели пользователя в порядке вставки.
func (s *GoalService) List(ctx context.Context, callerID int64, limit, offset int) ([]*models.Goal, error) {
	return s.repo.ListGoals(ctx, callerID, limit, offset)
}
