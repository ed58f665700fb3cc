package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/scheduling"
	"smart-task-scheduler/pkg/log"
)

// Handler is the scheduling HTTP delivery layer.
type Handler interface {
	Suggest(c *gin.Context)
	ParseTask(c *gin.Context)
	CreateFromText(c *gin.Context)
	Resolve(c *gin.Context)
	CreateFromSuggestion(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  scheduling.UseCase
	loc *time.Location
}

// New creates the scheduling HTTP handler. Dates and wall-clock datetimes
// without an offset are read in loc.
func New(l log.Logger, uc scheduling.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{l: l, uc: uc, loc: loc}
}
