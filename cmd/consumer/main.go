package main

import (
	"os"

	"go-workforce/internal/app"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	production := os.Getenv("APP_ENV") == "production"
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "logs/consumer.log"
	}
	logger, err := logging.NewLogger(production, logFile)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
