package sqlstore

import (
	"database/sql"
	"strings"
	"time"

	"smart-task-scheduler/internal/model"
	repo "smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/sqldb"
)

const taskColumns = `id, user_id, title, task_type, description, status, priority, duration_minutes,
	due_date, scheduled_start, scheduled_end, calendar_event_id, created_at, updated_at`

// conflictQuery selects open tasks intersecting [start, end). Half-open:
// touching endpoints do not match.
const conflictQuery = `SELECT ` + taskColumns + ` FROM tasks
	WHERE user_id = ? AND status <> ?
	AND scheduled_start IS NOT NULL AND scheduled_end IS NOT NULL
	AND scheduled_start < ? AND scheduled_end > ?`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t                      model.Task
		due, start, end        sql.NullInt64
		createdAt, updatedAt   int64
		taskType, status, prio string
	)
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &taskType, &t.Description, &status, &prio, &t.DurationMinutes,
		&due, &start, &end, &t.CalendarEventID, &createdAt, &updatedAt)
	if err != nil {
		return model.Task{}, err
	}
	t.TaskType = model.TaskType(taskType)
	t.Status = model.Status(status)
	t.Priority = model.Priority(prio)
	t.DueDate = sqldb.FromUnix(due)
	t.ScheduledStart = sqldb.FromUnix(start)
	t.ScheduledEnd = sqldb.FromUnix(end)
	t.CreatedAt = time.Unix(createdAt, 0).UTC()
	t.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return t, nil
}

func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	defer rows.Close()
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// buildListFilter builds the WHERE clause + args shared by the list and count
// queries.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.From != nil {
		conditions = append(conditions, "scheduled_start >= ?")
		args = append(args, opt.From.Unix())
	}
	if opt.To != nil {
		conditions = append(conditions, "scheduled_start < ?")
		args = append(args, opt.To.Unix())
	}
	return strings.Join(conditions, " AND "), args
}
