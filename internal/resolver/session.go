package resolver

import (
	"fmt"
	"time"

	"smart-task-scheduler/internal/model"
)

// State is a step of the resolution flow.
type State string

const (
	StateIdle      State = "IDLE"
	StateParsing   State = "PARSING"
	StateComplete  State = "COMPLETE"
	StatePartial   State = "PARTIAL"
	StateConflict  State = "CONFLICT"
	StateResolving State = "RESOLVING"
	StateCommitted State = "COMMITTED"
	StateAbandoned State = "ABANDONED"
)

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateCommitted || s == StateAbandoned
}

// Session is the resolution state of one creation attempt. It is a plain
// value: every transition returns a new Session and the server keeps nothing
// between requests. Clients carry Draft and Constraint themselves.
type Session struct {
	State      State
	Draft      model.TaskDraft
	Constraint *model.SearchConstraint
	Conflict   *model.ConflictReport
	Selected   *model.Interval
	Committed  *model.Interval
}

func NewSession() Session {
	return Session{State: StateIdle}
}

// Resume rebuilds a RESOLVING session from what the client sent back.
func Resume(draft model.TaskDraft, c *model.SearchConstraint) Session {
	s := Session{State: StateResolving, Draft: draft}
	if c != nil {
		cc := *c
		s.Constraint = &cc
	}
	return s
}

func (s Session) illegal(op string) error {
	return fmt.Errorf("%w: %s from %s", ErrIllegalTransition, op, s.State)
}

// Begin starts parsing a draft.
func (s Session) Begin(draft model.TaskDraft) (Session, error) {
	if s.State != StateIdle {
		return s, s.illegal("begin")
	}
	return Session{State: StateParsing, Draft: draft}, nil
}

// Classify applies an Outcome produced by Engine.Classify.
func (s Session) Classify(o Outcome) (Session, error) {
	if s.State != StateParsing {
		return s, s.illegal("classify")
	}
	switch o := o.(type) {
	case Complete:
		s.State = StateComplete
		s.Draft = o.Draft
	case Partial:
		s.State = StatePartial
		s.Draft = o.Draft
		c := o.Constraint
		s.Constraint = &c
	case Conflict:
		s.State = StateConflict
		s.Draft = o.Report.Attempted
		r := o.Report
		s.Conflict = &r
	default:
		return s, s.illegal("classify")
	}
	return s, nil
}

// Resolve enters RESOLVING after a partial or conflicting attempt.
func (s Session) Resolve() (Session, error) {
	if s.State != StatePartial && s.State != StateConflict {
		return s, s.illegal("resolve")
	}
	s.State = StateResolving
	return s, nil
}

// SelectStrategy locks a fresh constraint for strategy on page 1.
func (s Session) SelectStrategy(strategy model.Strategy, now time.Time, loc *time.Location) (Session, error) {
	if s.State != StateResolving {
		return s, s.illegal("select strategy")
	}
	c := LockFor(strategy, s.Draft, now, loc)
	s.Constraint = &c
	return s, nil
}

// NextPage advances the locked constraint by one page.
func (s Session) NextPage() (Session, error) {
	return s.turn(1)
}

// PrevPage steps back one page, never below page 1.
func (s Session) PrevPage() (Session, error) {
	return s.turn(-1)
}

func (s Session) turn(delta int) (Session, error) {
	if s.State != StateResolving || s.Constraint == nil {
		return s, s.illegal("paginate")
	}
	page := max(s.Constraint.Page, 1) + delta
	c := s.Constraint.WithPage(max(page, 1))
	s.Constraint = &c
	return s, nil
}

// Select records the slot the user picked. The slot still has to pass
// re-validation before Commit.
func (s Session) Select(iv model.Interval) (Session, error) {
	if s.State != StateResolving || !iv.Valid() {
		return s, s.illegal("select")
	}
	s.Selected = &iv
	return s, nil
}

// Commit records the persisted interval.
func (s Session) Commit(iv model.Interval) (Session, error) {
	if s.State != StateComplete && s.State != StateResolving {
		return s, s.illegal("commit")
	}
	s.State = StateCommitted
	s.Committed = &iv
	s.Conflict = nil
	return s, nil
}

// Reject handles a commit that lost against busy time added after the
// suggestion was shown. The constraint is kept so the client can re-search.
func (s Session) Reject(report model.ConflictReport) (Session, error) {
	if s.State != StateComplete && s.State != StateResolving {
		return s, s.illegal("reject")
	}
	s.State = StateResolving
	s.Conflict = &report
	s.Selected = nil
	return s, nil
}

// Abandon discards the attempt. Nothing has been persisted.
func (s Session) Abandon() (Session, error) {
	if s.State.Terminal() || s.State == StateIdle {
		return s, s.illegal("abandon")
	}
	return Session{State: StateAbandoned, Draft: s.Draft}, nil
}
