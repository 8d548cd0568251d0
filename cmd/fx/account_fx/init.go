package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitspace/internal/api/controllers"
	"fitspace/internal/repositories"
	"fitspace/internal/services"
	mem "fitspace/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo,
	provideResetTokenStore,
	provideAccountService,
	controllers.NewAccountController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}

func provideAccountService(
	userRepo repositories.UserRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, mailService, resetTokens, logger)
}
