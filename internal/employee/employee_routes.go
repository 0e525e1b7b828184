package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee resource under r. Update addresses its
// target through the body, so PUT has no :id segment.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, middlewares ...gin.HandlerFunc) {
	employees := r.Group("/employeelist")
	employees.Use(middlewares...)
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PUT("", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}
