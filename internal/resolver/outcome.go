package resolver

import "smart-task-scheduler/internal/model"

// Outcome is the classification of a creation attempt: Complete, Partial or
// Conflict.
type Outcome interface {
	isOutcome()
}

// Complete means the exact interval is known and free.
type Complete struct {
	Draft    model.TaskDraft
	Interval model.Interval
}

// Partial means no exact interval is known; Constraint holds the best-known
// search parameters.
type Partial struct {
	Draft      model.TaskDraft
	Constraint model.SearchConstraint
}

// Conflict means the exact interval overlaps existing busy time.
type Conflict struct {
	Report model.ConflictReport
}

func (Complete) isOutcome() {}
func (Partial) isOutcome()  {}
func (Conflict) isOutcome() {}
