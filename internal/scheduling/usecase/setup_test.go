package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/parser"
	prefRepo "smart-task-scheduler/internal/preference/repository/sqlstore"
	prefUC "smart-task-scheduler/internal/preference/usecase"
	"smart-task-scheduler/internal/ranking"
	"smart-task-scheduler/internal/resolver"
	"smart-task-scheduler/internal/slotgen"
	"smart-task-scheduler/internal/task"
	taskRepo "smart-task-scheduler/internal/task/repository/sqlstore"
	taskUC "smart-task-scheduler/internal/task/usecase"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/sqldb"
)

var testScope = model.Scope{UserID: "u1"}

// Sunday 2025-07-20 08:00 UTC.
var now = at(20, 8, 0)

func at(d, h, m int) time.Time {
	return time.Date(2025, 7, d, h, m, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

type fixture struct {
	uc    *implUseCase
	tasks task.UseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := sqldb.Open(context.Background(), sqldb.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := log.NewNop()
	clock := func() time.Time { return now }
	tasks := taskUC.New(l, taskRepo.New(db, l), nil, taskUC.CalendarOptions{}, nil, time.UTC)
	prefs := prefUC.New(prefRepo.New(db, l), l, model.Preferences{}, 0)
	engine := resolver.NewEngine(
		slotgen.New(slotgen.DefaultConfig()),
		ranking.NewScorer(ranking.DefaultWeights()),
		resolver.DefaultLimits(),
		clock,
	)
	p := parser.New(datemath.NewParserIn(time.UTC), time.Monday, clock)

	uc := New(l, engine, p, prefs, tasks, nil).(*implUseCase)
	return fixture{uc: uc, tasks: tasks}
}

// standup books [10:00, 11:00) on 2025-07-23.
func (f fixture) standup(t *testing.T) {
	t.Helper()
	start := at(23, 10, 0)
	res, err := f.tasks.CreateDirect(context.Background(), testScope, task.CreateDirectInput{Draft: model.TaskDraft{
		Title:           "Standup",
		DurationMinutes: 60,
		Start:           &start,
	}})
	require.NoError(t, err)
	require.True(t, res.Committed())
}

func starts(ss []model.Suggestion) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = s.ScheduledStart
	}
	return out
}
