package main

import (
	"flag"

	"go-leave-approval/internal/app"
	"go-leave-approval/internal/config"
	"go-leave-approval/internal/shared/apperror"
	applogger "go-leave-approval/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger := applogger.New(cfg.Logger.Level, cfg.Logger.Format)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
