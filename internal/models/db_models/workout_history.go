package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutHistory rows are immutable; retrieval is most recent first.
type WorkoutHistory struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;index"`
	WorkoutName     string
	DurationMinutes int
	RecordedAt      time.Time `gorm:"index"`
}

func (w *WorkoutHistory) BeforeCreate(tx *gorm.DB) error {
	if err := w.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if w.RecordedAt.IsZero() {
		w.RecordedAt = time.Now()
	}
	return nil
}
