package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the {success, message, data} wrapper used by every endpoint
// except the employee list, which answers with a bare array.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. The raw error text is exposed only when
// err is non-nil, which handlers do for 5xx responses.
func Error(c *gin.Context, status int, message string, err error) {
	env := Envelope{
		Success: false,
		Message: message,
	}
	if err != nil {
		env.Error = err.Error()
	}
	c.JSON(status, env)
}

// Abort is Error followed by c.Abort, for middleware.
func Abort(c *gin.Context, status int, message string, err error) {
	Error(c, status, message, err)
	c.Abort()
}
