package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fitspace/internal/models/db_models"
)

type mockUserRepo struct {
	InsertFunc                func(ctx context.Context, user *db_models.User) error
	FindByIDFunc              func(ctx context.Context, id string) (*db_models.User, error)
	FindByEmailFunc           func(ctx context.Context, email string) (*db_models.User, error)
	UpdateFunc                func(ctx context.Context, user *db_models.User) error
	UpdatePasswordByEmailFunc func(ctx context.Context, email, passwordHash string) error
}

func (m *mockUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	return m.InsertFunc(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return m.FindByEmailFunc(ctx, email)
}
func (m *mockUserRepo) Update(ctx context.Context, user *db_models.User) error {
	return m.UpdateFunc(ctx, user)
}
func (m *mockUserRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return m.UpdatePasswordByEmailFunc(ctx, email, passwordHash)
}

type mockProgressRepo struct {
	InsertFunc       func(ctx context.Context, entry *db_models.ProgressEntry) error
	ListByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error)
}

func (m *mockProgressRepo) Insert(ctx context.Context, entry *db_models.ProgressEntry) error {
	return m.InsertFunc(ctx, entry)
}
func (m *mockProgressRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.ProgressEntry, error) {
	return m.ListByUserIDFunc(ctx, userID)
}

type mockWorkoutRepo struct {
	InsertFunc       func(ctx context.Context, entry *db_models.WorkoutHistory) error
	ListByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutHistory, error)
}

func (m *mockWorkoutRepo) Insert(ctx context.Context, entry *db_models.WorkoutHistory) error {
	return m.InsertFunc(ctx, entry)
}
func (m *mockWorkoutRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.WorkoutHistory, error) {
	return m.ListByUserIDFunc(ctx, userID)
}

type mockChallengeRepo struct {
	InsertFunc          func(ctx context.Context, challenge *db_models.Challenge) error
	ListByUserIDFunc    func(ctx context.Context, userID uuid.UUID) ([]db_models.Challenge, error)
	FindByIDForUserFunc func(ctx context.Context, id string, userID uuid.UUID) (*db_models.Challenge, error)
	UpdateFunc          func(ctx context.Context, challenge *db_models.Challenge) error
}

func (m *mockChallengeRepo) Insert(ctx context.Context, challenge *db_models.Challenge) error {
	return m.InsertFunc(ctx, challenge)
}
func (m *mockChallengeRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Challenge, error) {
	return m.ListByUserIDFunc(ctx, userID)
}
func (m *mockChallengeRepo) FindByIDForUser(ctx context.Context, id string, userID uuid.UUID) (*db_models.Challenge, error) {
	return m.FindByIDForUserFunc(ctx, id, userID)
}
func (m *mockChallengeRepo) Update(ctx context.Context, challenge *db_models.Challenge) error {
	return m.UpdateFunc(ctx, challenge)
}

type mockPlanRepo struct {
	SaveActivePlanFunc func(ctx context.Context, userID uuid.UUID, payload datatypes.JSON) (*db_models.Plan, error)
	GetCurrentPlanFunc func(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error)
}

func (m *mockPlanRepo) SaveActivePlan(ctx context.Context, userID uuid.UUID, payload datatypes.JSON) (*db_models.Plan, error) {
	return m.SaveActivePlanFunc(ctx, userID, payload)
}
func (m *mockPlanRepo) GetCurrentPlan(ctx context.Context, userID uuid.UUID) (*db_models.Plan, error) {
	return m.GetCurrentPlanFunc(ctx, userID)
}

type mockProvider struct {
	GenerateJSONFunc func(ctx context.Context, prompt string) (string, error)
	model            string
}

func (m *mockProvider) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return m.GenerateJSONFunc(ctx, prompt)
}
func (m *mockProvider) ModelName() string {
	if m.model == "" {
		return "gemini-1.5-flash"
	}
	return m.model
}
func (m *mockProvider) Close() error { return nil }

type mockMailService struct {
	SendPasswordResetMailFunc func(to, otpCode string) error
}

func (m *mockMailService) SendPasswordResetMail(to, otpCode string) error {
	return m.SendPasswordResetMailFunc(to, otpCode)
}
