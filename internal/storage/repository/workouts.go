package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// CreateWorkout вставляет новую запись тренировки и возвращает её ID.
func (s *Storage) CreateWorkout(ctx context.Context, workout models.Workout) (int64, error) {
	const op = "storage.CreateWorkout"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO workouts (user_id, workout_type, duration, calories_burned)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		workout.UserID, workout.WorkoutType, workout.Duration, workout.CaloriesBurned).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetWorkout возвращает тренировку по её ID вместе с владельцем записи.
func (s *Storage) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	const op = "storage.GetWorkout"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, workout_type, duration, calories_burned, date
			  FROM workouts
			  WHERE id = $1`
	var result models.Workout
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.UserID, &result.WorkoutType,
		&result.Duration, &result.CaloriesBurned, &result.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateWorkout обновляет изменяемые поля тренировки и возвращает обновлённую запись.
func (s *Storage) UpdateWorkout(ctx context.Context, id int64, workout models.Workout) (*models.Workout, error) {
	const op = "storage.UpdateWorkout"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE workouts
			  SET workout_type = $1, duration = $2, calories_burned = $3
			  WHERE id = $4
			  RETURNING id, user_id, workout_type, duration, calories_burned, date`
	var result models.Workout
	row := s.DB.QueryRowContext(ctx, query,
		workout.WorkoutType, workout.Duration, workout.CaloriesBurned, id)
	if err := row.Scan(&result.ID, &result.UserID, &result.WorkoutType,
		&result.Duration, &result.CaloriesBurned, &result.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// RemoveWorkout удаляет тренировку по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveWorkout(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemoveWorkout"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM workouts WHERE id = $1`
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

// ListWorkouts возвращает тренировки пользователя в порядке вставки с пагинацией.
func (s *Storage) ListWorkouts(ctx context.Context, userID int64, limit, offset int) ([]*models.Workout, error) {
	const op = "storage.ListWorkouts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, workout_type, duration, calories_burned, date
			  FROM workouts
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

	var result []*models.Workout
	for rows.Next() {
		var item models.Workout
		if err := rows.Scan(&item.ID, &item.UserID, &item.WorkoutType,
			&item.Duration, &item.CaloriesBurned, &item.Date); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
