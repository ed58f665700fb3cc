package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	pkgErrors "smart-task-scheduler/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processSetReq binds the onboarding answers.
func (h *handler) processSetReq(c *gin.Context) (model.Scope, setReq, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, setReq{}, err
	}
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()).WithKind(KindValidation)
	}
	return sc, req, nil
}
