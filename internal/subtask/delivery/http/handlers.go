package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

// Add godoc
// @Summary     Add a subtask
// @Tags        Subtasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Param       body      body   addReq true "Subtask"
// @Success     201 {object} response.Resp{data=subtaskResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/tasks/{id}/subtasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	st, err := h.uc.Add(ctx, sc, in)
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newSubtaskResp(st))
}

// List godoc
// @Summary     List a task's subtasks
// @Tags        Subtasks
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     404 {object} response.Resp "Task not found"
// @Router      /api/v1/tasks/{id}/subtasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	subtasks, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(subtasks))
}

// Toggle godoc
// @Summary     Toggle a subtask's done flag
// @Tags        Subtasks
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Param       subtaskId path   string true "Subtask ID"
// @Success     200 {object} response.Resp{data=subtaskResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/subtasks/{subtaskId} [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	st, err := h.uc.Toggle(ctx, sc, in)
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSubtaskResp(st))
}

// Delete godoc
// @Summary     Delete a subtask
// @Tags        Subtasks
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Param       subtaskId path   string true "Subtask ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/subtasks/{subtaskId} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, in, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, in); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
