package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
)

// RegisterRoutes maps /tasks/:id/subtasks under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	subtasks := rg.Group("/tasks/:id/subtasks", mw.Auth(), mw.RateLimit())
	{
		subtasks.POST("", h.Add)
		subtasks.GET("", h.List)
		subtasks.PATCH("/:subtaskId", h.Toggle)
		subtasks.DELETE("/:subtaskId", h.Delete)
	}
}
