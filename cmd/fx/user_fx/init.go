package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitspace/internal/api/controllers"
	"fitspace/internal/repositories"
	"fitspace/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo,
	provideWorkoutRepo,
	provideUserService,
	controllers.NewUserController)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutRepository {
	return repositories.NewWorkoutRepository(db)
}

func provideUserService(
	userRepo repositories.UserRepository,
	progressRepo repositories.ProgressRepository,
	workoutRepo repositories.WorkoutRepository,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, progressRepo, workoutRepo)
}
