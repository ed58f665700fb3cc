package scheduling

import (
	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/ranking"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/task"
)

// Status summarizes where a free-text attempt stopped.
type Status string

const (
	StatusComplete  Status = "complete"
	StatusPartial   Status = "partial"
	StatusConflict  Status = "conflict"
	StatusCommitted Status = "committed"
)

// Navigation moves through the pages of a locked constraint.
type Navigation string

const (
	NavigateNext Navigation = "next"
	NavigatePrev Navigation = "prev"
)

// --- UseCase Inputs ---

type SuggestInput struct {
	Constraint model.SearchConstraint
}

// ParseTextInput is a free-text request. Page and PageSize apply to the
// suggestions returned for a partial draft.
type ParseTextInput struct {
	Text     string
	Page     int
	PageSize int
}

// ResolveInput starts a search for Strategy, or continues Constraint when the
// client echoes one back. Page jumps directly; Navigate steps one page.
type ResolveInput struct {
	Draft      model.TaskDraft
	Strategy   model.Strategy
	Constraint *model.SearchConstraint
	Navigate   Navigation
	Page       int
	PageSize   int
}

// --- UseCase Outputs ---

// SuggestOutput is one page plus the normalized constraint that produced it.
type SuggestOutput struct {
	Constraint model.SearchConstraint
	Page       ranking.Page
}

// ParseOutput describes a free-text attempt. Suggestions is set for partial
// drafts and Task once CreateFromText has committed.
type ParseOutput struct {
	Session     resolver.Session
	Missing     []string
	Suggestions *SuggestOutput
	Task        *model.Task
}

func (o ParseOutput) Status() Status {
	switch o.Session.State {
	case resolver.StateComplete:
		return StatusComplete
	case resolver.StateCommitted:
		return StatusCommitted
	case resolver.StatePartial:
		return StatusPartial
	default:
		return StatusConflict
	}
}

type ResolveOutput struct {
	Session     resolver.Session
	Suggestions SuggestOutput
}

type CreateFromSuggestionOutput struct {
	Session resolver.Session
	Result  task.CommitResult
}
