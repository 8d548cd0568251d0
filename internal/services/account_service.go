package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"fitspace/internal/models/db_models"
	"fitspace/internal/models/request_models"
	"fitspace/internal/repositories"
	mem "fitspace/pkg/memcache"
	"fitspace/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	userRepo    repositories.UserRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	logger      *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:    userRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		logger:      logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
		Settings: datatypes.JSONMap{
			"theme":         "dark",
			"notifications": true,
		},
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("account created", zap.String("email", request.Email))
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

// ForgotPassword mails a single-use OTP. A missing account is not an error:
// the endpoint's response never reveals whether the email exists.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	code, err := utils.GenerateOtpCode(6)
	if err != nil {
		return err
	}
	a.resetTokens.Set(code, user.Email, resetTokenTTL)

	if err := a.mailService.SendPasswordResetMail(user.Email, code); err != nil {
		a.logger.Warn("reset mail failed", zap.String("email", email), zap.Error(err))
		return err
	}

	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.userRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("password reset", zap.String("email", email))
	return nil
}
