package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitspace/internal/models/db_models"
	"fitspace/internal/models/request_models"
	"fitspace/pkg/utils"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func newUserServiceWithUser(user *db_models.User) UserServiceInterface {
	return NewUserService(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				if user != nil && id == user.ID.String() {
					return user, nil
				}
				return nil, nil
			},
			UpdateFunc: func(ctx context.Context, u *db_models.User) error {
				return nil
			},
		},
		&mockProgressRepo{},
		&mockWorkoutRepo{},
	)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc := newUserServiceWithUser(nil)

	_, err := svc.UpdateProfile(context.Background(), uuid.NewString(), request_models.UpdateProfileRequest{})

	assert.True(t, errors.Is(err, utils.ErrUserNotFound))
}

func TestUpdateProfile_PartialUpdateLeavesOtherFields(t *testing.T) {
	user := &db_models.User{Name: "Ivan", Gender: strPtr("male")}
	user.ID = uuid.New()
	svc := newUserServiceWithUser(user)

	updated, err := svc.UpdateProfile(context.Background(), user.ID.String(), request_models.UpdateProfileRequest{
		Age: intPtr(33),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ivan", updated.Name)
	require.NotNil(t, updated.Gender)
	assert.Equal(t, "male", *updated.Gender)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 33, *updated.Age)
}

func TestUpdateProfile_CompletesProfileOnLastField(t *testing.T) {
	user := &db_models.User{
		Gender: strPtr("male"),
		Age:    intPtr(30),
		Height: floatPtr(180),
	}
	user.ID = uuid.New()
	svc := newUserServiceWithUser(user)

	updated, err := svc.UpdateProfile(context.Background(), user.ID.String(), request_models.UpdateProfileRequest{
		CurrentGoal: strPtr("gain_mass"),
	})
	require.NoError(t, err)

	assert.True(t, updated.IsProfileComplete)
}

func TestUpdateProfile_IncompleteProfileStaysIncomplete(t *testing.T) {
	user := &db_models.User{Gender: strPtr("female")}
	user.ID = uuid.New()
	svc := newUserServiceWithUser(user)

	updated, err := svc.UpdateProfile(context.Background(), user.ID.String(), request_models.UpdateProfileRequest{
		Age: intPtr(25),
	})
	require.NoError(t, err)

	assert.False(t, updated.IsProfileComplete)
}

// Documents current behavior: the profile-complete flag is a one-way latch.
// Clearing a required field after completion does not reset it.
func TestUpdateProfile_LatchNeverResets(t *testing.T) {
	user := &db_models.User{
		Gender:            strPtr("male"),
		Age:               intPtr(30),
		Height:            floatPtr(180),
		CurrentGoal:       strPtr("maintain"),
		IsProfileComplete: true,
	}
	user.ID = uuid.New()
	svc := newUserServiceWithUser(user)

	updated, err := svc.UpdateProfile(context.Background(), user.ID.String(), request_models.UpdateProfileRequest{
		Gender: strPtr(""),
	})
	require.NoError(t, err)

	assert.True(t, updated.IsProfileComplete, "latch must not flip back to false")
}

func TestUpgradeToPremium(t *testing.T) {
	user := &db_models.User{Role: db_models.RoleUser}
	user.ID = uuid.New()
	svc := newUserServiceWithUser(user)

	updated, err := svc.UpgradeToPremium(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, db_models.RolePremium, updated.Role)

	// Idempotent: a second upgrade succeeds with no further effect.
	again, err := svc.UpgradeToPremium(context.Background(), user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, db_models.RolePremium, again.Role)
}

func TestUpgradeToPremium_NotFound(t *testing.T) {
	svc := newUserServiceWithUser(nil)

	_, err := svc.UpgradeToPremium(context.Background(), uuid.NewString())

	assert.True(t, errors.Is(err, utils.ErrUserNotFound))
}

func TestAddProgress_AttachesToUser(t *testing.T) {
	user := &db_models.User{}
	user.ID = uuid.New()

	var inserted *db_models.ProgressEntry
	svc := NewUserService(
		&mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		},
		&mockProgressRepo{
			InsertFunc: func(ctx context.Context, entry *db_models.ProgressEntry) error {
				inserted = entry
				return nil
			},
		},
		&mockWorkoutRepo{},
	)

	entry, err := svc.AddProgress(context.Background(), user.ID.String(), request_models.AddProgressRequest{Weight: 82.3})
	require.NoError(t, err)

	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, 82.3, entry.Weight)
	assert.Same(t, entry, inserted)
}
