package sqlstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-scheduler/internal/model"
	repo "smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/sqldb"
)

func at(d, h, m int) time.Time {
	return time.Date(2025, 7, d, h, m, 0, 0, time.UTC)
}

func newRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := sqldb.Open(context.Background(), sqldb.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db, log.NewNop())
}

func createOpt(id string, start time.Time, minutes int) repo.CreateTaskOptions {
	return repo.CreateTaskOptions{
		ID:              id,
		UserID:          "u1",
		Title:           "Task " + id,
		TaskType:        model.TaskTypeMeeting,
		Priority:        model.PriorityMedium,
		DurationMinutes: minutes,
		Start:           start,
		End:             start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestCreateIfFree(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	created, blocking, err := r.CreateIfFree(ctx, createOpt("a", at(23, 10, 0), 60))
	require.NoError(t, err)
	require.Empty(t, blocking)
	assert.Equal(t, "a", created.ID)
	assert.Equal(t, model.StatusTodo, created.Status)
	require.NotNil(t, created.ScheduledStart)
	assert.True(t, created.ScheduledStart.Equal(at(23, 10, 0)))

	// Touching intervals do not overlap.
	_, blocking, err = r.CreateIfFree(ctx, createOpt("b", at(23, 11, 0), 30))
	require.NoError(t, err)
	assert.Empty(t, blocking)
	_, blocking, err = r.CreateIfFree(ctx, createOpt("c", at(23, 9, 0), 60))
	require.NoError(t, err)
	assert.Empty(t, blocking)

	// One minute of overlap blocks.
	got, blocking, err := r.CreateIfFree(ctx, createOpt("d", at(23, 10, 59), 30))
	require.NoError(t, err)
	assert.Empty(t, got.ID)
	require.Len(t, blocking, 2)
	assert.Equal(t, "a", blocking[0].ID)
	assert.Equal(t, "b", blocking[1].ID)

	missing, err := r.GetTask(ctx, repo.GetTaskOptions{ID: "d", UserID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestCreateIfFreeIgnoresCompletedAndOtherUsers(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	_, _, err := r.CreateIfFree(ctx, createOpt("a", at(23, 10, 0), 60))
	require.NoError(t, err)
	_, _, err = r.UpdateStatusIfFree(ctx, repo.UpdateStatusOptions{ID: "a", UserID: "u1", Status: model.StatusCompleted})
	require.NoError(t, err)

	_, blocking, err := r.CreateIfFree(ctx, createOpt("b", at(23, 10, 0), 60))
	require.NoError(t, err)
	assert.Empty(t, blocking)

	other := createOpt("c", at(23, 10, 0), 60)
	other.UserID = "u2"
	_, blocking, err = r.CreateIfFree(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, blocking)
}

func TestUpdateStatusIfFreeReopen(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	_, _, err := r.CreateIfFree(ctx, createOpt("a", at(23, 10, 0), 60))
	require.NoError(t, err)
	done, blocking, err := r.UpdateStatusIfFree(ctx, repo.UpdateStatusOptions{ID: "a", UserID: "u1", Status: model.StatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, blocking)
	assert.Equal(t, model.StatusCompleted, done.Status)

	_, _, err = r.CreateIfFree(ctx, createOpt("b", at(23, 10, 30), 60))
	require.NoError(t, err)

	// a's slot is taken by b now, so a stays COMPLETED.
	reopened, blocking, err := r.UpdateStatusIfFree(ctx, repo.UpdateStatusOptions{ID: "a", UserID: "u1", Status: model.StatusTodo})
	require.NoError(t, err)
	assert.Empty(t, reopened.ID)
	require.Len(t, blocking, 1)
	assert.Equal(t, "b", blocking[0].ID)

	still, err := r.GetTask(ctx, repo.GetTaskOptions{ID: "a", UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, still.Status)

	// Open to open never checks overlap.
	moved, blocking, err := r.UpdateStatusIfFree(ctx, repo.UpdateStatusOptions{ID: "b", UserID: "u1", Status: model.StatusInProgress})
	require.NoError(t, err)
	assert.Empty(t, blocking)
	assert.Equal(t, model.StatusInProgress, moved.Status)

	missing, blocking, err := r.UpdateStatusIfFree(ctx, repo.UpdateStatusOptions{ID: "zz", UserID: "u1", Status: model.StatusTodo})
	require.NoError(t, err)
	assert.Empty(t, blocking)
	assert.Empty(t, missing.ID)
}

func TestCreateIfFreeConcurrent(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	const n = 12
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		committed []model.Task
	)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every attempt overlaps every other one.
			start := at(24, 10, 0).Add(time.Duration(i) * time.Minute)
			got, blocking, err := r.CreateIfFree(ctx, createOpt(fmt.Sprintf("t%02d", i), start, 60))
			if err != nil {
				t.Errorf("CreateIfFree: %v", err)
				return
			}
			if len(blocking) == 0 {
				mu.Lock()
				committed = append(committed, got)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Len(t, committed, 1)
	tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, tasks, 1)
}

func TestRescheduleIfFree(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	_, _, err := r.CreateIfFree(ctx, createOpt("a", at(23, 10, 0), 60))
	require.NoError(t, err)
	_, _, err = r.CreateIfFree(ctx, createOpt("b", at(23, 12, 0), 60))
	require.NoError(t, err)

	move := func(id string, start time.Time) repo.RescheduleTaskOptions {
		return repo.RescheduleTaskOptions{
			ID: id, UserID: "u1", Title: "moved", TaskType: model.TaskTypeStudies, Priority: model.PriorityHigh,
			DurationMinutes: 60, Start: start, End: start.Add(time.Hour),
		}
	}

	// Moving onto itself (overlapping its old slot) is allowed.
	got, blocking, err := r.RescheduleIfFree(ctx, move("a", at(23, 10, 30)))
	require.NoError(t, err)
	assert.Empty(t, blocking)
	assert.Equal(t, "moved", got.Title)
	assert.True(t, got.ScheduledStart.Equal(at(23, 10, 30)))

	_, blocking, err = r.RescheduleIfFree(ctx, move("a", at(23, 11, 30)))
	require.NoError(t, err)
	require.Len(t, blocking, 1)
	assert.Equal(t, "b", blocking[0].ID)

	got, blocking, err = r.RescheduleIfFree(ctx, move("nope", at(24, 9, 0)))
	require.NoError(t, err)
	assert.Empty(t, blocking)
	assert.Empty(t, got.ID)
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	for i, d := range []int{25, 23, 24} {
		_, _, err := r.CreateIfFree(ctx, createOpt(fmt.Sprintf("t%d", i), at(d, 9, 0), 30))
		require.NoError(t, err)
	}

	tasks, total, err := r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "t2", tasks[1].ID)

	from, to := at(24, 0, 0), at(25, 0, 0)
	tasks, total, err = r.ListTasks(ctx, repo.ListTasksOptions{UserID: "u1", From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "t2", tasks[0].ID)

	scheduled, err := r.ListScheduled(ctx, repo.ListScheduledOptions{UserID: "u1", From: at(23, 9, 15), To: at(25, 9, 0)})
	require.NoError(t, err)
	require.Len(t, scheduled, 2)
	assert.Equal(t, "t1", scheduled[0].ID)

	ok, err := r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: "t1", UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.DeleteTask(ctx, repo.DeleteTaskOptions{ID: "t1", UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, ok)
}
