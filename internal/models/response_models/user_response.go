package response_models

import (
	"github.com/google/uuid"

	"fitspace/internal/models/db_models"
)

type UserResponse struct {
	ID                uuid.UUID      `json:"id"`
	Email             string         `json:"email"`
	Name              string         `json:"name"`
	Role              string         `json:"role"`
	Gender            *string        `json:"gender"`
	Age               *int           `json:"age"`
	Height            *float64       `json:"height"`
	CurrentGoal       *string        `json:"current_goal"`
	IsProfileComplete bool           `json:"is_profile_complete"`
	Settings          map[string]any `json:"settings"`
	CreatedAt         int64          `json:"created_at"`
	UpdatedAt         int64          `json:"updated_at"`
}

func UserFromModel(u *db_models.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              string(u.Role),
		Gender:            u.Gender,
		Age:               u.Age,
		Height:            u.Height,
		CurrentGoal:       u.CurrentGoal,
		IsProfileComplete: u.IsProfileComplete,
		Settings:          u.Settings,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
