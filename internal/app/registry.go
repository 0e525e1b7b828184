package app

import (
	"github.com/naveen224793-boop/assignment3/internal/config"
	"github.com/naveen224793-boop/assignment3/internal/employee"
	"github.com/naveen224793-boop/assignment3/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(router *gin.Engine, cfg config.Config, deps Dependencies, logger *zap.Logger) {
	// --- Services ---
	employeeService := employee.NewService(deps.Repository, employee.ServiceOptions{
		Publisher:   deps.Publisher,
		ListTimeout: cfg.ListQueryTimeout,
	}, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	if cfg.RateLimit.Enabled() {
		api.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
	}
	{
		employee.RegisterRoutes(api, employeeHandler)
	}

	registerHealth(router, employeeService)
	registerFrontend(router, cfg.StaticDir)
}
