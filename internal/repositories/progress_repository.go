package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitspace/internal/models/db_models"
)

type ProgressRepository interface {
	Insert(ctx context.Context, entry *db_models.ProgressEntry) error
	// ListByUserID returns the user's measurements oldest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

func (r *progressRepository) Insert(ctx context.Context, entry *db_models.ProgressEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *progressRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
	var entries []db_models.ProgressEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
