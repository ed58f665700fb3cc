package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/preference"
	"smart-task-scheduler/pkg/log"
)

// Handler is the preference HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Set(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc preference.UseCase
}

// New creates a new HTTP handler for the preference domain.
func New(l log.Logger, uc preference.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
