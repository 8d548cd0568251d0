package db_models

import (
	"github.com/google/uuid"
)

type ChallengeType string

const (
	ChallengeWater   ChallengeType = "water"
	ChallengeSteps   ChallengeType = "steps"
	ChallengeWorkout ChallengeType = "workout"
	ChallengeSleep   ChallengeType = "sleep"
)

type Challenge struct {
	BaseModel
	UserID    uuid.UUID     `gorm:"type:uuid;index"`
	Type      ChallengeType `gorm:"type:varchar(16)"`
	Title     string
	Goal      float64
	Current   float64 `gorm:"default:0"`
	Unit      string
	Completed bool `gorm:"default:false"`
}
