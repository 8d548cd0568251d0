package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fitspace/internal/models/db_models"
	"fitspace/pkg/utils"
)

const validPlanText = `{
  "fitnessPlan": {"id": "f1", "name": "Недельный план", "exercises": [], "durationWeeks": 1},
  "dietPlan": {"id": "d1", "caloriesPerDay": 2500, "recipes": []},
  "requiredEquipment": [],
  "shoppingList": [{"name": "Овсянка", "amount": "500 г"}]
}`

func completeTestUser() *db_models.User {
	gender := "female"
	age := 28
	height := 167.0
	goal := "get_ripped"
	u := &db_models.User{
		Name:              "Anna",
		Email:             "anna@example.com",
		Gender:            &gender,
		Age:               &age,
		Height:            &height,
		CurrentGoal:       &goal,
		IsProfileComplete: true,
	}
	u.ID = uuid.New()
	return u
}

func newPlanServiceForTest(
	userRepo *mockUserRepo,
	progressRepo *mockProgressRepo,
	planRepo *mockPlanRepo,
	provider *mockProvider,
) PlanServiceInterface {
	return NewPlanService(userRepo, progressRepo, planRepo, provider, zap.NewNop())
}

func TestGeneratePlan_ProfileIncomplete(t *testing.T) {
	user := completeTestUser()
	user.IsProfileComplete = false

	providerCalled := false
	saveCalled := false

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{},
		&mockPlanRepo{
			SaveActivePlanFunc: func(ctx context.Context, userID uuid.UUID, payload datatypes.JSON) (*db_models.Plan, error) {
				saveCalled = true
				return nil, nil
			},
		},
		&mockProvider{
			GenerateJSONFunc: func(ctx context.Context, prompt string) (string, error) {
				providerCalled = true
				return validPlanText, nil
			},
		},
	)

	_, err := svc.GeneratePlan(context.Background(), user.ID.String(), "get_ripped")

	assert.True(t, errors.Is(err, utils.ErrProfileIncomplete))
	assert.False(t, providerCalled, "provider must not be called for an incomplete profile")
	assert.False(t, saveCalled, "nothing must be persisted for an incomplete profile")
}

func TestGeneratePlan_UserNotFound(t *testing.T) {
	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return nil, nil
			},
		},
		&mockProgressRepo{},
		&mockPlanRepo{},
		&mockProvider{},
	)

	_, err := svc.GeneratePlan(context.Background(), uuid.NewString(), "maintain")

	assert.True(t, errors.Is(err, utils.ErrUserNotFound))
}

func TestGeneratePlan_Success(t *testing.T) {
	user := completeTestUser()

	var savedPayload datatypes.JSON
	var promptSeen string

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{
			ListByUserIDFunc: func(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
				return []db_models.ProgressEntry{
					{Weight: 70.0},
					{Weight: 68.5}, // most recent, ascending order
				}, nil
			},
		},
		&mockPlanRepo{
			SaveActivePlanFunc: func(ctx context.Context, userID uuid.UUID, payload datatypes.JSON) (*db_models.Plan, error) {
				require.Equal(t, user.ID, userID)
				savedPayload = payload
				return &db_models.Plan{UserID: userID, PlanData: payload, IsActive: true}, nil
			},
		},
		&mockProvider{
			GenerateJSONFunc: func(ctx context.Context, prompt string) (string, error) {
				promptSeen = prompt
				return "```json\n" + validPlanText + "\n```", nil
			},
		},
	)

	payload, err := svc.GeneratePlan(context.Background(), user.ID.String(), "get_ripped")
	require.NoError(t, err)

	// Last progress entry ends up in the prompt.
	assert.Contains(t, promptSeen, "68.5 кг")

	// Returned payload is the parsed provider output, field names untouched.
	assert.Contains(t, payload, "fitnessPlan")
	assert.Contains(t, payload, "shoppingList")

	// And the persisted payload round-trips to the same tree.
	assert.NotEmpty(t, savedPayload)
}

func TestGeneratePlan_SchemaViolationPersistsNothing(t *testing.T) {
	user := completeTestUser()
	saveCalled := false

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{
			ListByUserIDFunc: func(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
				return nil, nil
			},
		},
		&mockPlanRepo{
			SaveActivePlanFunc: func(ctx context.Context, userID uuid.UUID, payload datatypes.JSON) (*db_models.Plan, error) {
				saveCalled = true
				return nil, nil
			},
		},
		&mockProvider{
			GenerateJSONFunc: func(ctx context.Context, prompt string) (string, error) {
				return `{"fitnessPlan": {}, "dietPlan": {}, "requiredEquipment": []}`, nil
			},
		},
	)

	_, err := svc.GeneratePlan(context.Background(), user.ID.String(), "maintain")

	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
	assert.False(t, saveCalled, "schema violation must not be persisted")
}

func TestGeneratePlan_ProviderFailurePropagates(t *testing.T) {
	user := completeTestUser()

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{
			ListByUserIDFunc: func(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
				return nil, nil
			},
		},
		&mockPlanRepo{},
		&mockProvider{
			GenerateJSONFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", utils.ErrEmptyAIResponse
			},
		},
	)

	_, err := svc.GeneratePlan(context.Background(), user.ID.String(), "maintain")

	assert.True(t, errors.Is(err, utils.ErrEmptyAIResponse))
}

func TestGetCurrentPlan_NoPlan(t *testing.T) {
	user := completeTestUser()

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{},
		&mockPlanRepo{
			GetCurrentPlanFunc: func(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error) {
				return nil, nil
			},
		},
		&mockProvider{},
	)

	_, err := svc.GetCurrentPlan(context.Background(), user.ID.String())

	assert.True(t, errors.Is(err, utils.ErrPlanNotFound))
}

func TestGetCurrentPlan_ReturnsPayload(t *testing.T) {
	user := completeTestUser()

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{},
		&mockPlanRepo{
			GetCurrentPlanFunc: func(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error) {
				return &db_models.Plan{
					UserID:   userID,
					PlanData: datatypes.JSON([]byte(`{"fitnessPlan":{},"dietPlan":{},"requiredEquipment":[],"shoppingList":[]}`)),
					IsActive: true,
				}, nil
			},
		},
		&mockProvider{},
	)

	payload, err := svc.GetCurrentPlan(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Contains(t, payload, "dietPlan")
}

func TestBuildChatConfig(t *testing.T) {
	user := completeTestUser()

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{},
		&mockPlanRepo{
			GetCurrentPlanFunc: func(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error) {
				return &db_models.Plan{
					PlanData: datatypes.JSON([]byte(`{"fitnessPlan":{"name":"План недели"},"dietPlan":{},"requiredEquipment":[],"shoppingList":[]}`)),
					IsActive: true,
				}, nil
			},
		},
		&mockProvider{model: "gemini-1.5-pro"},
	)

	config, err := svc.BuildChatConfig(context.Background(), user.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "gemini-1.5-pro", config.Model)
	assert.Equal(t, float32(0.8), config.Temperature)
	assert.Contains(t, config.SystemInstruction, "План недели")
}

func TestBuildChatConfig_NoPlan(t *testing.T) {
	user := completeTestUser()

	svc := newPlanServiceForTest(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{},
		&mockPlanRepo{
			GetCurrentPlanFunc: func(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error) {
				return nil, nil
			},
		},
		&mockProvider{},
	)

	_, err := svc.BuildChatConfig(context.Background(), user.ID.String())

	assert.True(t, errors.Is(err, utils.ErrPlanNotFound))
}
