package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitspace/internal/models/db_models"
)

type PlanRepository interface {
	// SaveActivePlan deactivates every existing plan for userID and inserts
	// the new payload as the single active one, inside one transaction.
	// Concurrent readers see either the old active plan or the new one.
	SaveActivePlan(ctx context.Context, userID uuid.UUID, payload datatypes.JSON) (*db_models.Plan, error)
	GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{
		db: db,
	}
}

func (r *planRepository) SaveActivePlan(ctx context.Context, userID uuid.UUID, payload datatypes.JSON) (*db_models.Plan, error) {
	plan := &db_models.Plan{
		UserID:   userID,
		PlanData: payload,
		IsActive: true,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Plan{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(plan).Error
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

func (r *planRepository) GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}
