package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
)

// RegisterRoutes maps the /ai endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth(), mw.RateLimit())
	{
		ai.POST("/suggest", h.Suggest)
		ai.POST("/parseTask", h.ParseTask)
		ai.POST("/createFromText", h.CreateFromText)
		ai.POST("/resolve", h.Resolve)
		ai.POST("/createFromSuggestion", h.CreateFromSuggestion)
	}
}
