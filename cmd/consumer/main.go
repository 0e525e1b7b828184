package main

import (
	"fmt"
	"os"

	"github.com/naveen224793-boop/assignment3/internal/app"
	"github.com/naveen224793-boop/assignment3/internal/config"
	"github.com/naveen224793-boop/assignment3/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.Install(cfg.IsDevelopment(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := app.RunConsumer(cfg); err != nil {
		log.Fatal("run consumer failed", zap.Error(err))
	}
}
