package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fitspace/internal/repositories"
	"fitspace/pkg/aiclient"
	"fitspace/pkg/utils"
)

type PlanServiceInterface interface {
	// GeneratePlan runs the full pipeline: prompt from stored profile,
	// provider call, validation, atomic replace of the active plan.
	GeneratePlan(ctx context.Context, userID string, goal string) (map[string]any, error)
	GetCurrentPlan(ctx context.Context, userID string) (map[string]any, error)
	BuildChatConfig(ctx context.Context, userID string) (*ChatConfig, error)
}

// ChatConfig seeds a client-side coach chat session around the active plan.
type ChatConfig struct {
	Model             string  `json:"model"`
	SystemInstruction string  `json:"systemInstruction"`
	Temperature       float32 `json:"temperature"`
}

type PlanService struct {
	userRepo     repositories.UserRepository
	progressRepo repositories.ProgressRepository
	planRepo     repositories.PlanRepository
	provider     aiclient.PlanProvider
	logger       *zap.Logger
}

func NewPlanService(
	userRepo repositories.UserRepository,
	progressRepo repositories.ProgressRepository,
	planRepo repositories.PlanRepository,
	provider aiclient.PlanProvider,
	logger *zap.Logger,
) PlanServiceInterface {
	return &PlanService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		planRepo:     planRepo,
		provider:     provider,
		logger:       logger,
	}
}

func (s *PlanService) GeneratePlan(ctx context.Context, userID string, goal string) (map[string]any, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	// Precondition: no provider call and no store write for an incomplete
	// profile.
	if !user.IsProfileComplete {
		return nil, utils.ErrProfileIncomplete
	}

	entries, err := s.progressRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	var lastWeight *float64
	if len(entries) > 0 {
		lastWeight = &entries[len(entries)-1].Weight
	}

	prompt := aiclient.BuildPlanPrompt(user, lastWeight, goal)

	// The provider round-trip happens before the plan transaction opens, so
	// no database lock is held across the network call.
	text, err := s.provider.GenerateJSON(ctx, prompt)
	if err != nil {
		s.logger.Warn("plan generation failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	payload, err := aiclient.ParsePlanPayload(text)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, utils.ErrMalformedAIResponse
	}

	if _, err := s.planRepo.SaveActivePlan(ctx, user.ID, datatypes.JSON(raw)); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("plan generated",
		zap.String("user_id", userID),
		zap.String("goal", goal))

	return payload, nil
}

func (s *PlanService) GetCurrentPlan(ctx context.Context, userID string) (map[string]any, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	plan, err := s.planRepo.GetCurrentPlan(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	var payload map[string]any
	if err := json.Unmarshal(plan.PlanData, &payload); err != nil {
		return nil, utils.ErrMalformedAIResponse
	}

	return payload, nil
}

func (s *PlanService) BuildChatConfig(ctx context.Context, userID string) (*ChatConfig, error) {
	payload, err := s.GetCurrentPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	instruction, err := aiclient.BuildChatSystemInstruction(payload)
	if err != nil {
		return nil, err
	}

	return &ChatConfig{
		Model:             s.provider.ModelName(),
		SystemInstruction: instruction,
		Temperature:       0.8,
	}, nil
}
