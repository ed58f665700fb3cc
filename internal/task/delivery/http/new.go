package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/task"
	"smart-task-scheduler/pkg/log"
)

// Handler is the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	UpdateStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	loc *time.Location
}

// New creates the task HTTP handler. Wall-clock datetimes without an offset
// are read in loc.
func New(l log.Logger, uc task.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{l: l, uc: uc, loc: loc}
}
