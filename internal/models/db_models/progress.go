package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressEntry is an immutable weight measurement. History queries order
// these oldest first.
type ProgressEntry struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	RecordedAt time.Time `gorm:"index"`
	Weight     float64
}

func (p *ProgressEntry) BeforeCreate(tx *gorm.DB) error {
	if err := p.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if p.RecordedAt.IsZero() {
		p.RecordedAt = time.Now()
	}
	return nil
}
