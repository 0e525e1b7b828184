package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/naveen224793-boop/assignment3/internal/app"
	"github.com/naveen224793-boop/assignment3/internal/bootstrap"
	"github.com/naveen224793-boop/assignment3/internal/config"
	"github.com/naveen224793-boop/assignment3/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const connectHint = "check the connection string, credentials and that this host is on the database network allow-list"

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

	if err := cfg.RequireStore(); err != nil {
		var missing *config.MissingEnvError
		if errors.As(err, &missing) {
			log.Fatal("record store connection string missing",
				zap.String("variable", missing.Name),
				zap.String("example", missing.Example),
				zap.String("hint", "set it in the environment or in a .env file; see .env.example"),
			)
		}
		log.Fatal("invalid configuration", zap.Error(err))
	}

	repo, closeStore, err := app.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatal("record store connection failed",
			zap.String("driver", cfg.Store.Driver),
			zap.Error(err),
			zap.String("hint", connectHint),
		)
	}
	log.Info("record store connected",
		zap.String("driver", cfg.Store.Driver),
		zap.String("database", cfg.Store.Database),
	)

	publisher, closePublisher := app.NewEventPublisher(cfg)
	if cfg.Kafka.Enabled() {
		log.Info("lifecycle events enabled", zap.String("topic", cfg.Kafka.Topic))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// build dependency + routes
	app.BuildApp(r, cfg, app.Dependencies{
		Repository: repo,
		Publisher:  publisher,
		Logger:     log,
	})

	auditLogger := bootstrap.NewStdoutAuditLogger()
	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    cfg.ListQueryTimeout + 10*time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		auditLogger,
		closePublisher,
		closeStore,
	)
	if err != nil {
		log.Fatal("http server failed", zap.String("port", cfg.Port), zap.Error(err))
	}
}
