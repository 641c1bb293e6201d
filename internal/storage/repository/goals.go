package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// CreateGoal вставляет новую цель пользователя и возвращает её ID.
func (s *Storage) CreateGoal(ctx context.Context, goal models.Goal) (int64, error) {
	const op = "storage.CreateGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO user_goals (user_id, goal_type, target_value, current_value, deadline)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		goal.UserID, goal.GoalType, goal.TargetValue, goal.CurrentValue, goal.Deadline).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetGoal возвращает цель по её ID вместе с владельцем записи.
func (s *Storage) GetGoal(ctx context.Context, id int64) (*models.Goal, error) {
	const op = "storage.GetGoal"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, goal_type, target_value, current_value, deadline
			  FROM user_goals
			  WHERE id = $1`
	var result models.Goal
	var deadline sql.NullTime
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.UserID, &result.GoalType,
		&result.TargetValue, &result.CurrentValue, &deadline); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if deadline.Valid {
		result.Deadline = &deadline.Time
	}
	return &result, nil
}

// UpdateGoal обновляет изменяемые поля цели и возвращает обновлённую запись.
func (s *Storage) UpdateGoal(ctx context.Context, id int64, goal models.Goal) (*models.Goal, error) {
	const op = "storage.UpdateGoal"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_goals
			  SET goal_type = $1, target_value = $2, current_value = $3, deadline = $4
			  WHERE id = $5
			  RETURNING id, user_id, goal_type, target_value, current_value, deadline`
	var result models.Goal
	var deadline sql.NullTime
	row := s.DB.QueryRowContext(ctx, query,
		goal.GoalType, goal.TargetValue, goal.CurrentValue, goal.Deadline, id)
	if err := row.Scan(&result.ID, &result.UserID, &result.GoalType,
		&result.TargetValue, &result.CurrentValue, &deadline); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if deadline.Valid {
		result.Deadline = &deadline.Time
	}
	return &result, nil
}

// RemoveGoal удаляет цель по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveGoal(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemoveGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM user_goals WHERE id = $1`
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

// ListGoals возвращает цели пользователя в порядке вставки с пагинацией.
func (s *Storage) ListGoals(ctx context.Context, userID int64, limit, offset int) ([]*models.Goal, error) {
	const op = "storage.ListGoals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, goal_type, target_value, current_value, deadline
			  FROM user_goals
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

	var result []*models.Goal
	for rows.Next() {
		var item models.Goal
		var deadline sql.NullTime
		if err := rows.Scan(&item.ID, &item.UserID, &item.GoalType,
			&item.TargetValue, &item.CurrentValue, &deadline); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if deadline.Valid {
			item.Deadline = &deadline.Time
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
