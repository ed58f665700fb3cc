package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/scheduling"
	taskHTTP "smart-task-scheduler/internal/task/delivery/http"
	"smart-task-scheduler/pkg/response"
)

const conflictMessage = "requested time overlaps existing tasks"

// Suggest godoc
// @Summary     Suggest free slots
// @Description Ranks free slots for a search constraint. Pages past the end return an empty list. A day search beyond page 1 without lockedDate fails with PAGINATION_CONSTRAINT_VIOLATION.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        true "Caller user ID"
// @Param       body      body   constraintReq true "Search constraint"
// @Success     200 {object} response.Resp{data=suggestResp}
// @Failure     400 {object} response.Resp "VALIDATION or PAGINATION_CONSTRAINT_VIOLATION"
// @Router      /api/v1/ai/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Suggest(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSuggestResp(out, h.loc))
}

// ParseTask godoc
// @Summary     Parse a free-text task
// @Description Parses the text and reports whether it names a free exact time (complete), overlaps busy time (conflict) or needs a slot (partial, with suggestions). Nothing is saved.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Caller user ID"
// @Param       body      body   parseReq true "Text"
// @Success     200 {object} response.Resp{data=parseResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Router      /api/v1/ai/parseTask [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ParseText(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.ParseText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newParseResp(out, h.loc))
}

// CreateFromText godoc
// @Summary     Create a task from free text
// @Description Commits a complete, free draft (201). An overlap returns 409 with the conflicts; a partial draft returns 200 with suggestions and saves nothing.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Caller user ID"
// @Param       body      body   parseReq true "Text"
// @Success     200 {object} response.Resp{data=parseResp} "Partial"
// @Success     201 {object} response.Resp{data=parseResp} "Committed"
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     409 {object} response.Resp{data=parseResp} "Time conflict"
// @Router      /api/v1/ai/createFromText [POST]
func (h *handler) CreateFromText(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CreateFromText(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	body := newParseResp(out, h.loc)
	switch out.Status() {
	case scheduling.StatusCommitted:
		response.Created(c, body)
	case scheduling.StatusConflict:
		response.Conflict(c, conflictMessage, body)
	default:
		response.OK(c, body)
	}
}

// Resolve godoc
// @Summary     Resolve a partial or conflicting task
// @Description Locks a constraint for the chosen strategy and returns its first page, or pages through a constraint returned earlier (navigate next/prev, or page).
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller user ID"
// @Param       body      body   resolveReq true "Draft and strategy or constraint"
// @Success     200 {object} response.Resp{data=resolveResp}
// @Failure     400 {object} response.Resp "VALIDATION or PAGINATION_CONSTRAINT_VIOLATION"
// @Router      /api/v1/ai/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Resolve(ctx, sc, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newResolveResp(out, h.loc))
}

// CreateFromSuggestion godoc
// @Summary     Commit a suggested slot
// @Description Re-checks the slot and commits it. With taskId the existing task is moved instead. A slot taken since it was suggested returns 409.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string                  true "Caller user ID"
// @Param       body      body   createFromSuggestionReq true "Picked slot"
// @Success     200 {object} response.Resp "Rescheduled"
// @Success     201 {object} response.Resp "Created"
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     409 {object} response.Resp{data=taskHTTP.ConflictResp} "Time conflict"
// @Router      /api/v1/ai/createFromSuggestion [POST]
func (h *handler) CreateFromSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processCreateFromSuggestionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CreateFromSuggestion(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromSuggestion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	taskHTTP.RenderCommit(c, out.Result, input.TaskID == "", h.loc)
}
