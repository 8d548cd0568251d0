package request_models

// UpdateProfileRequest carries a partial profile update. Nil fields are left
// untouched on the stored user.
type UpdateProfileRequest struct {
	Name        *string        `json:"name"`
	Gender      *string        `json:"gender" binding:"omitempty,oneof=male female other"`
	Age         *int           `json:"age" binding:"omitempty,gt=0"`
	Height      *float64       `json:"height" binding:"omitempty,gt=0"`
	CurrentGoal *string        `json:"current_goal" binding:"omitempty,oneof=gain_mass get_ripped maintain diet_only"`
	Settings    map[string]any `json:"settings"`
}

type AddProgressRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

type AddWorkoutRequest struct {
	WorkoutName     string `json:"workout_name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}

type CreateChallengeRequest struct {
	Type  string  `json:"type" binding:"required,oneof=water steps workout sleep"`
	Title string  `json:"title" binding:"required"`
	Goal  float64 `json:"goal" binding:"required,gt=0"`
	Unit  string  `json:"unit" binding:"required"`
}

type GeneratePlanRequest struct {
	Goal string `json:"goal" binding:"required,oneof=gain_mass get_ripped maintain diet_only"`
}
