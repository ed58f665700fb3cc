package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

// Get godoc
// @Summary     Get scheduling preferences
// @Description Returns the caller's onboarding answers, or the defaults with exists=false.
// @Tags        Preferences
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Success     200 {object} response.Resp{data=getResp}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/preferences [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newGetResp(out))
}

// Set godoc
// @Summary     Store scheduling preferences
// @Description One-time write. A second call returns 409.
// @Tags        Preferences
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user ID"
// @Param       body      body   setReq true "Onboarding answers"
// @Success     201 {object} response.Resp{data=preferencesResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     409 {object} response.Resp "Already set"
// @Router      /api/v1/preferences [PUT]
func (h *handler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Set(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Set: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newPreferencesResp(p))
}
