package challenge_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitspace/internal/api/controllers"
	"fitspace/internal/repositories"
	"fitspace/internal/services"
)

var Module = fx.Provide(
	provideChallengeRepo,
	provideChallengeService,
	controllers.NewChallengeController)

func provideChallengeRepo(db *gorm.DB) repositories.ChallengeRepository {
	return repositories.NewChallengeRepository(db)
}

func provideChallengeService(challengeRepo repositories.ChallengeRepository) services.ChallengeServiceInterface {
	return services.NewChallengeService(challengeRepo)
}
