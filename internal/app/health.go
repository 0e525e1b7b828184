package app

import (
	"context"
	"net/http"
	"time"

	"github.com/naveen224793-boop/assignment3/internal/shared/apperror"
	"github.com/naveen224793-boop/assignment3/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func registerHealth(router *gin.Engine, store pinger) {
	router.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			response.Error(c, apperror.ErrStoreUnavailable.HTTPStatus, apperror.ErrStoreUnavailable.Message, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
