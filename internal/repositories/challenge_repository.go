package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitspace/internal/models/db_models"
)

type ChallengeRepository interface {
	Insert(ctx context.Context, challenge *db_models.Challenge) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Challenge, error)
	// FindByIDForUser only resolves challenges owned by userID.
	FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*db_models.Challenge, error)
	Update(ctx context.Context, challenge *db_models.Challenge) error
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{
		db: db,
	}
}

func (r *challengeRepository) Insert(ctx context.Context, challenge *db_models.Challenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

func (r *challengeRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Challenge, error) {
	var challenges []db_models.Challenge
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}

	return challenges, nil
}

func (r *challengeRepository) FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*db_models.Challenge, error) {
	var challenge db_models.Challenge
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&challenge).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &challenge, nil
}

func (r *challengeRepository) Update(ctx context.Context, challenge *db_models.Challenge) error {
	return r.db.WithContext(ctx).Save(challenge).Error
}
