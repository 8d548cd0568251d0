package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"fitspace/cmd/fx/account_fx"
	"fitspace/cmd/fx/ai_fx"
	"fitspace/cmd/fx/challenge_fx"
	"fitspace/cmd/fx/db_fx"
	"fitspace/cmd/fx/mail_fx"
	"fitspace/cmd/fx/user_fx"
	"fitspace/internal/api/controllers"
	"fitspace/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		user_fx.Module,
		challenge_fx.Module,
		ai_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	challengeController *controllers.ChallengeController,
	planController *controllers.PlanController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, userController, challengeController, planController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	userController *controllers.UserController,
	challengeController *controllers.ChallengeController,
	planController *controllers.PlanController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.POST("/forgot-password", accountController.ForgotPassword)
	accountsGroup.POST("/reset-password", accountController.ResetPassword)

	usersGroup := r.Group("/users", middleware.JWTAuthMiddleware())
	usersGroup.GET("/me", userController.GetMe)
	usersGroup.PUT("/me", userController.UpdateProfile)
	usersGroup.POST("/me/premium", userController.UpgradeToPremium)
	usersGroup.GET("/me/progress", userController.GetProgress)
	usersGroup.POST("/me/progress", userController.AddProgress)
	usersGroup.GET("/me/workout-history", userController.GetWorkoutHistory)
	usersGroup.POST("/me/workout-history", userController.AddWorkout)
	usersGroup.GET("/me/challenges", challengeController.List)
	usersGroup.POST("/me/challenges", challengeController.Create)
	usersGroup.POST("/me/challenges/:id/toggle", challengeController.Toggle)

	aiGroup := r.Group("/ai", middleware.JWTAuthMiddleware())
	aiGroup.POST("/generate-plan", planController.GeneratePlan)
	aiGroup.POST("/chat-config", middleware.RoleMiddleware("premium"), planController.GetChatConfig)

	plansGroup := r.Group("/plans", middleware.JWTAuthMiddleware())
	plansGroup.GET("/current", planController.GetCurrentPlan)
}
