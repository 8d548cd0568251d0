package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitspace/internal/api/controllers"
	"fitspace/internal/repositories"
	"fitspace/internal/services"
	"fitspace/pkg/aiclient"
)

var Module = fx.Provide(
	ProvidePlanProvider,
	providePlanRepo,
	providePlanService,
	controllers.NewPlanController)

// ProvidePlanProvider builds the one shared AI client from environment
// variables. Credentials and transport settings live on the client; it is
// never re-created per request.
func ProvidePlanProvider(lc fx.Lifecycle) (aiclient.PlanProvider, error) {
	cfg := getProviderConfig()

	log.Printf("Initializing %s plan provider with model: %s", cfg.Provider, cfg.Model)

	provider, err := aiclient.New(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(provider.Close))

	return provider, nil
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	userRepo repositories.UserRepository,
	progressRepo repositories.ProgressRepository,
	planRepo repositories.PlanRepository,
	provider aiclient.PlanProvider,
	logger *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(userRepo, progressRepo, planRepo, provider, logger)
}

func getProviderConfig() aiclient.Config {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return aiclient.Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
