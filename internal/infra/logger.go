package infra

import (
	"os"

	"go.uber.org/zap"
)

// InitLogger builds the process-wide zap logger. Development config when
// APP_ENV is not "production".
func InitLogger() *zap.Logger {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	return logger
}
