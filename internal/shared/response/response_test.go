package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naveen224793-boop/assignment3/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newContext()

	response.Success(c, http.StatusCreated, "Employee created successfully", gin.H{"_id": "1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Employee created successfully","data":{"_id":"1"}}`, w.Body.String())
}

func TestError(t *testing.T) {
	t.Run("client error omits error text", func(t *testing.T) {
		c, w := newContext()
		response.Error(c, http.StatusNotFound, "Employee not found", nil)
		assert.JSONEq(t, `{"success":false,"message":"Employee not found"}`, w.Body.String())
	})

	t.Run("server error carries error text", func(t *testing.T) {
		c, w := newContext()
		response.Error(c, http.StatusInternalServerError, "Error fetching employees", errors.New("timeout"))
		assert.JSONEq(t, `{"success":false,"message":"Error fetching employees","error":"timeout"}`, w.Body.String())
	})

	t.Run("abort stops the chain", func(t *testing.T) {
		c, w := newContext()
		response.Abort(c, http.StatusTooManyRequests, "Too many requests", nil)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}
