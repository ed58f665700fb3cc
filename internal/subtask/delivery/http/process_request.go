package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/subtask"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processAddReq binds the add body and the parent task id.
func (h *handler) processAddReq(c *gin.Context) (model.Scope, subtask.AddInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, subtask.AddInput{}, err
	}
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, subtask.AddInput{}, validationError(err.Error())
	}
	return sc, req.toInput(c.Param("id")), nil
}

func (h *handler) processItemReq(c *gin.Context) (model.Scope, subtask.ItemInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, subtask.ItemInput{}, err
	}
	return sc, subtask.ItemInput{TaskID: c.Param("id"), ID: c.Param("subtaskId")}, nil
}
