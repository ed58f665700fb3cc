package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

// Create godoc
// @Summary     Create a task at an exact time
// @Description Commits the task when the interval is free. An overlap returns 409 with the conflicting tasks and the attempted task, which the client feeds into /ai/resolve.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user ID"
// @Param       body      body   createReq true "Task"
// @Success     201 {object} response.Resp{data=taskEnvelope}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     409 {object} response.Resp{data=ConflictResp} "Time conflict"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.CreateDirect(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateDirect: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	RenderCommit(c, res, true, h.loc)
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks ordered by scheduled start, unscheduled last.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true  "Caller user ID"
// @Param       status    query  string false "TODO, IN_PROGRESS or COMPLETED"
// @Param       from      query  string false "Scheduled start lower bound"
// @Param       to        query  string false "Scheduled start upper bound (exclusive)"
// @Param       limit     query  int    false "Page size (default: 20, max: 100)"
// @Param       offset    query  int    false "Page offset"
// @Success     200 {object} response.Resp{data=listResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp{data=taskEnvelope}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskEnvelope{Task: NewTaskResp(t, h.loc)})
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Changing scheduledStart or durationMinutes moves the task and re-checks it against busy time.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user ID"
// @Param       id        path   string    true "Task ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=taskEnvelope}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp{data=ConflictResp} "Time conflict"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	RenderCommit(c, res, false, h.loc)
}

// UpdateStatus godoc
// @Summary     Change a task's status
// @Description Completed tasks no longer block time. Reopening a completed task conflicts when its slot was taken.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string          true "Caller user ID"
// @Param       id        path   string          true "Task ID"
// @Param       body      body   updateStatusReq true "New status"
// @Success     200 {object} response.Resp{data=taskEnvelope}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp{data=ConflictResp} "Slot taken while the task was completed"
// @Router      /api/v1/tasks/{id}/status [PUT]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.UpdateStatus(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	RenderCommit(c, res, false, h.loc)
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
