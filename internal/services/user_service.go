package services

import (
	"context"

	"gorm.io/datatypes"

	"fitspace/internal/models/db_models"
	"fitspace/internal/models/request_models"
	"fitspace/internal/repositories"
	"fitspace/pkg/utils"
)

type UserServiceInterface interface {
	GetMe(ctx context.Context, userID string) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*db_models.User, error)
	UpgradeToPremium(ctx context.Context, userID string) (*db_models.User, error)
	AddProgress(ctx context.Context, userID string, request request_models.AddProgressRequest) (*db_models.ProgressEntry, error)
	GetProgress(ctx context.Context, userID string) ([]db_models.ProgressEntry, error)
	AddWorkout(ctx context.Context, userID string, request request_models.AddWorkoutRequest) (*db_models.WorkoutHistory, error)
	GetWorkoutHistory(ctx context.Context, userID string) ([]db_models.WorkoutHistory, error)
}

type UserService struct {
	userRepo     repositories.UserRepository
	progressRepo repositories.ProgressRepository
	workoutRepo  repositories.WorkoutRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	progressRepo repositories.ProgressRepository,
	workoutRepo repositories.WorkoutRepository,
) UserServiceInterface {
	return &UserService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		workoutRepo:  workoutRepo,
	}
}

func (s *UserService) GetMe(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies only the fields present in the request, then
// recomputes the profile-complete latch. The latch only moves false->true;
// clearing a profile field afterwards does not reset it.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Gender != nil {
		user.Gender = request.Gender
	}
	if request.Age != nil {
		user.Age = request.Age
	}
	if request.Height != nil {
		user.Height = request.Height
	}
	if request.CurrentGoal != nil {
		user.CurrentGoal = request.CurrentGoal
	}
	if request.Settings != nil {
		user.Settings = datatypes.JSONMap(request.Settings)
	}

	if !user.IsProfileComplete && profileComplete(user) {
		user.IsProfileComplete = true
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

func profileComplete(user *db_models.User) bool {
	return user.Gender != nil && *user.Gender != "" &&
		user.Age != nil && *user.Age > 0 &&
		user.Height != nil && *user.Height > 0 &&
		user.CurrentGoal != nil && *user.CurrentGoal != ""
}

// UpgradeToPremium is idempotent: upgrading an already-premium user succeeds
// with no further effect.
func (s *UserService) UpgradeToPremium(ctx context.Context, userID string) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	user.Role = db_models.RolePremium
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return user, nil
}

func (s *UserService) AddProgress(ctx context.Context, userID string, request request_models.AddProgressRequest) (*db_models.ProgressEntry, error) {
	user, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &db_models.ProgressEntry{
		UserID: user.ID,
		Weight: request.Weight,
	}
	if err := s.progressRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return entry, nil
}

func (s *UserService) GetProgress(ctx context.Context, userID string) ([]db_models.ProgressEntry, error) {
	user, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.progressRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *UserService) AddWorkout(ctx context.Context, userID string, request request_models.AddWorkoutRequest) (*db_models.WorkoutHistory, error) {
	user, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := &db_models.WorkoutHistory{
		UserID:          user.ID,
		WorkoutName:     request.WorkoutName,
		DurationMinutes: request.DurationMinutes,
	}
	if err := s.workoutRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return entry, nil
}

func (s *UserService) GetWorkoutHistory(ctx context.Context, userID string) ([]db_models.WorkoutHistory, error) {
	user, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.workoutRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}
