package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/subtask"
	"smart-task-scheduler/pkg/log"
)

// Handler is the subtask HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc subtask.UseCase
}

func New(l log.Logger, uc subtask.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
