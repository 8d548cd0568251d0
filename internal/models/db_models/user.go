package db_models

import (
	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleUser    UserRole = "user"
	RolePremium UserRole = "premium"
	RoleAdmin   UserRole = "admin"
)

type GoalType string

const (
	GoalGainMass  GoalType = "gain_mass"
	GoalGetRipped GoalType = "get_ripped"
	GoalMaintain  GoalType = "maintain"
	GoalDietOnly  GoalType = "diet_only"
)

type User struct {
	BaseModel
	Name         string
	Email        string   `gorm:"uniqueIndex"`
	PasswordHash string
	Role         UserRole `gorm:"type:varchar(16);default:'user'"`

	// Profile fields stay nil until the user fills them in.
	Gender      *string
	Age         *int
	Height      *float64
	CurrentGoal *string

	// One-way latch: flipped to true once all profile fields are set,
	// never flipped back.
	IsProfileComplete bool `gorm:"default:false"`

	Settings datatypes.JSONMap `gorm:"type:jsonb;default:'{}'"`

	Progress       []ProgressEntry  `gorm:"constraint:OnDelete:CASCADE"`
	WorkoutHistory []WorkoutHistory `gorm:"constraint:OnDelete:CASCADE"`
	Challenges     []Challenge      `gorm:"constraint:OnDelete:CASCADE"`
	Plans          []Plan           `gorm:"constraint:OnDelete:CASCADE"`
}
