package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naveen224793-boop/assignment3/internal/middleware"
	"github.com/naveen224793-boop/assignment3/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRequestID(t *testing.T) {
	r := setupRouter(middleware.RequestID())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = contextutil.GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("echoes caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := w.Header().Get(middleware.HeaderRequestID)
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, seen)
	})
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := setupRouter(middleware.RequestID(), middleware.ContextLogger(logger))
	r.GET("/ok", func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("inside handler")
		c.Status(http.StatusOK)
	})
	r.GET("/fail", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.HeaderRequestID, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	inside := logs.FilterMessage("inside handler").All()
	if assert.Len(t, inside, 1) {
		assert.Equal(t, "rid-1", inside[0].ContextMap()["request_id"])
	}

	access := logs.FilterMessage("request completed").All()
	if assert.Len(t, access, 1) {
		assert.Equal(t, zapcore.InfoLevel, access[0].Level)
		assert.Equal(t, int64(http.StatusOK), access[0].ContextMap()["status"])
		assert.Equal(t, "/ok", access[0].ContextMap()["path"])
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	failed := logs.FilterMessage("request completed").FilterField(zap.Int("status", http.StatusInternalServerError)).All()
	if assert.Len(t, failed, 1) {
		assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	}
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter(middleware.RateLimitByIP(1, 2))
	r.GET("/api/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"success":false,"message":"Too many requests"}`, w.Body.String())
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}
