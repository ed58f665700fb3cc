package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/task"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processCreateReq binds the create body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, task.CreateDirectInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.CreateDirectInput{}, err
	}
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, task.CreateDirectInput{}, bindError(err)
	}
	in, err := req.toInput(h.loc)
	return sc, in, err
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (model.Scope, task.ListInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.ListInput{}, err
	}
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, task.ListInput{}, bindError(err)
	}
	in, err := req.toInput(h.loc)
	return sc, in, err
}

// processUpdateReq binds the update body and the id path param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, task.UpdateInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.UpdateInput{}, err
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, task.UpdateInput{}, bindError(err)
	}
	req.ID = c.Param("id")
	in, err := req.toInput(h.loc)
	return sc, in, err
}

func (h *handler) processUpdateStatusReq(c *gin.Context) (model.Scope, task.UpdateStatusInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.UpdateStatusInput{}, err
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, task.UpdateStatusInput{}, bindError(err)
	}
	req.ID = c.Param("id")
	return sc, req.toInput(), nil
}
