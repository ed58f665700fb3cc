package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
)

// RegisterRoutes maps /preferences under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	prefs := rg.Group("/preferences", mw.Auth(), mw.RateLimit())
	{
		prefs.GET("", h.Get)
		prefs.PUT("", h.Set)
	}
}
