package response_models

import (
	"time"

	"github.com/google/uuid"

	"fitspace/internal/models/db_models"
)

type ProgressResponse struct {
	ID         uuid.UUID `json:"id"`
	RecordedAt time.Time `json:"date"`
	Weight     float64   `json:"weight"`
}

func ProgressFromModel(p *db_models.ProgressEntry) ProgressResponse {
	return ProgressResponse{ID: p.ID, RecordedAt: p.RecordedAt, Weight: p.Weight}
}

type WorkoutResponse struct {
	ID              uuid.UUID `json:"id"`
	WorkoutName     string    `json:"workout_name"`
	DurationMinutes int       `json:"duration_minutes"`
	RecordedAt      time.Time `json:"date"`
}

func WorkoutFromModel(w *db_models.WorkoutHistory) WorkoutResponse {
	return WorkoutResponse{
		ID:              w.ID,
		WorkoutName:     w.WorkoutName,
		DurationMinutes: w.DurationMinutes,
		RecordedAt:      w.RecordedAt,
	}
}

type ChallengeResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Goal      float64   `json:"goal"`
	Current   float64   `json:"current"`
	Unit      string    `json:"unit"`
	Completed bool      `json:"completed"`
	CreatedAt int64     `json:"created_at"`
}

func ChallengeFromModel(c *db_models.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:        c.ID,
		Type:      string(c.Type),
		Title:     c.Title,
		Goal:      c.Goal,
		Current:   c.Current,
		Unit:      c.Unit,
		Completed: c.Completed,
		CreatedAt: c.CreatedAt,
	}
}
