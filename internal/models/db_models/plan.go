package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Plan holds one generated fitness+diet plan. The payload is stored verbatim
// as produced by the provider; only its top-level keys were validated.
// At most one plan per user has IsActive set.
type Plan struct {
	BaseModel
	UserID   uuid.UUID      `gorm:"type:uuid;index"`
	PlanData datatypes.JSON `gorm:"type:jsonb"`
	IsActive bool           `gorm:"default:true;index"`
}
