package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/scheduling"
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

func (h *handler) processSuggestReq(c *gin.Context) (model.Scope, scheduling.SuggestInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, scheduling.SuggestInput{}, err
	}
	var req constraintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, scheduling.SuggestInput{}, bindError(err)
	}
	constraint, err := req.toConstraint(h.loc)
	return sc, scheduling.SuggestInput{Constraint: constraint}, err
}

func (h *handler) processParseReq(c *gin.Context) (model.Scope, scheduling.ParseTextInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, scheduling.ParseTextInput{}, err
	}
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, scheduling.ParseTextInput{}, bindError(err)
	}
	return sc, req.toInput(), nil
}

func (h *handler) processResolveReq(c *gin.Context) (model.Scope, scheduling.ResolveInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, scheduling.ResolveInput{}, err
	}
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, scheduling.ResolveInput{}, bindError(err)
	}
	in, err := req.toInput(h.loc)
	return sc, in, err
}

func (h *handler) processCreateFromSuggestionReq(c *gin.Context) (model.Scope, task.CreateFromSuggestionInput, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, task.CreateFromSuggestionInput{}, err
	}
	var req createFromSuggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return sc, task.CreateFromSuggestionInput{}, bindError(err)
	}
	in, err := req.toInput(h.loc)
	return sc, in, err
}
