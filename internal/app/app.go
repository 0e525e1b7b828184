package app

import (
	"fmt"
	"net/http"

	"github.com/naveen224793-boop/assignment3/internal/config"
	"github.com/naveen224793-boop/assignment3/internal/employee"
	"github.com/naveen224793-boop/assignment3/internal/middleware"
	"github.com/naveen224793-boop/assignment3/internal/shared/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Dependencies struct {
	Repository employee.Repository
	// Publisher may be nil; lifecycle events are then dropped.
	Publisher employee.EventPublisher
	Logger    *zap.Logger
}

// BuildApp installs the global middleware and every route on router.
func BuildApp(router *gin.Engine, cfg config.Config, deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}

	router.Use(
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			logger.Error("panic recovered", zap.Any("panic", recovered))
			response.Abort(c, http.StatusInternalServerError, "Internal server error", fmt.Errorf("%v", recovered))
		}),
		middleware.RequestID(),
		middleware.ContextLogger(logger.Named("http")),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
			ExposeHeaders:   []string{middleware.HeaderRequestID},
		}),
	)

	registerModules(router, cfg, deps, logger)
}
