package services

import (
	"context"

	"github.com/google/uuid"

	"fitspace/internal/models/db_models"
	"fitspace/internal/models/request_models"
	"fitspace/internal/repositories"
	"fitspace/pkg/utils"
)

type ChallengeServiceInterface interface {
	List(ctx context.Context, userID string) ([]db_models.Challenge, error)
	Create(ctx context.Context, userID string, request request_models.CreateChallengeRequest) (*db_models.Challenge, error)
	Toggle(ctx context.Context, userID string, challengeID string) (*db_models.Challenge, error)
}

type ChallengeService struct {
	challengeRepo repositories.ChallengeRepository
}

func NewChallengeService(challengeRepo repositories.ChallengeRepository) ChallengeServiceInterface {
	return &ChallengeService{
		challengeRepo: challengeRepo,
	}
}

func (s *ChallengeService) List(ctx context.Context, userID string) ([]db_models.Challenge, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	challenges, err := s.challengeRepo.ListByUserID(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return challenges, nil
}

func (s *ChallengeService) Create(ctx context.Context, userID string, request request_models.CreateChallengeRequest) (*db_models.Challenge, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	challenge := &db_models.Challenge{
		UserID: uid,
		Type:   db_models.ChallengeType(request.Type),
		Title:  request.Title,
		Goal:   request.Goal,
		Unit:   request.Unit,
	}
	if err := s.challengeRepo.Insert(ctx, challenge); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return challenge, nil
}

// Toggle flips the completed flag of a challenge owned by userID.
func (s *ChallengeService) Toggle(ctx context.Context, userID string, challengeID string) (*db_models.Challenge, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	challenge, err := s.challengeRepo.FindByIDForUser(ctx, challengeID, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if challenge == nil {
		return nil, utils.ErrChallengeNotFound
	}

	challenge.Completed = !challenge.Completed
	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return challenge, nil
}
