package task

import (
	"time"

	"smart-task-scheduler/internal/model"
)

// CommitOutcome tells whether a commit persisted or lost to busy time.
type CommitOutcome string

const (
	OutcomeCommitted CommitOutcome = "committed"
	OutcomeConflict  CommitOutcome = "conflict"
)

// CommitResult is the result of any write that places a task on the calendar.
// A conflict is a normal result, not an error.
type CommitResult struct {
	Outcome  CommitOutcome
	Task     model.Task
	Conflict *model.ConflictReport
}

func (r CommitResult) Committed() bool { return r.Outcome == OutcomeCommitted }

// --- UseCase Inputs ---

// CreateDirectInput commits a task at an exact interval.
type CreateDirectInput struct {
	Draft model.TaskDraft
}

// CreateFromSuggestionInput commits the slot picked from a suggestion page.
// TaskID, when set, reschedules that task instead of creating one.
type CreateFromSuggestionInput struct {
	TaskID string
	Draft  model.TaskDraft
	Start  time.Time
	End    time.Time
}

type ListInput struct {
	Status model.Status
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// UpdateInput is a partial update. A non-nil Start moves the task and is
// re-validated against busy time.
type UpdateInput struct {
	ID              string
	Title           string
	Description     string
	TaskType        model.TaskType
	Priority        model.Priority
	DueDate         *time.Time
	Start           *time.Time
	DurationMinutes int
}

type UpdateStatusInput struct {
	ID     string
	Status model.Status
}

// BusyInput asks for everything that blocks time in [From, To).
type BusyInput struct {
	From time.Time
	To   time.Time
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}
