package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitspace/internal/models/db_models"
)

type WorkoutRepository interface {
	Insert(ctx context.Context, entry *db_models.WorkoutHistory) error
	// ListByUserID returns the user's workouts most recent first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutHistory, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{
		db: db,
	}
}

func (r *workoutRepository) Insert(ctx context.Context, entry *db_models.WorkoutHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *workoutRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutHistory, error) {
	var entries []db_models.WorkoutHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
