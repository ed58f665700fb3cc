package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smart-task-scheduler/internal/model"
	repo "smart-task-scheduler/internal/task/repository"
	"smart-task-scheduler/pkg/sqldb"
)

// conflicts runs inside tx after the user's lock is held.
func (r *implRepository) conflicts(ctx context.Context, tx *sql.Tx, userID, excludeID string, iv model.Interval) ([]model.Task, error) {
	query := conflictQuery
	args := []any{userID, string(model.StatusCompleted), iv.End.Unix(), iv.Start.Unix()}
	if excludeID != "" {
		query += " AND id <> ?"
		args = append(args, excludeID)
	}
	rows, err := tx.QueryContext(ctx, r.db.Rebind(query+" ORDER BY scheduled_start, id"), args...)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

// CreateIfFree inserts the task unless its interval overlaps an open task.
func (r *implRepository) CreateIfFree(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, []model.Task, error) {
	iv := model.Interval{Start: opt.Start, End: opt.End}
	var blocking []model.Task

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.LockKey(ctx, tx, opt.UserID); err != nil {
			return err
		}
		found, err := r.conflicts(ctx, tx, opt.UserID, "", iv)
		if err != nil {
			return fmt.Errorf("overlap check: %w", err)
		}
		if len(found) > 0 {
			blocking = found
			return nil
		}

		now := r.now().Unix()
		_, err = tx.ExecContext(ctx, r.db.Rebind(`
			INSERT INTO tasks (`+taskColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?)`),
			opt.ID, opt.UserID, opt.Title, string(opt.TaskType), opt.Description, string(model.StatusTodo),
			string(opt.Priority), opt.DurationMinutes, sqldb.Unix(opt.DueDate), opt.Start.Unix(), opt.End.Unix(), now, now)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIfFree"), err)
		if sqldb.IsUniqueViolation(err) {
			return model.Task{}, nil, repo.ErrDuplicateID
		}
		return model.Task{}, nil, repo.ErrFailedToInsert
	}
	if len(blocking) > 0 {
		return model.Task{}, blocking, nil
	}
	t, err := r.GetTask(ctx, repo.GetTaskOptions{ID: opt.ID, UserID: opt.UserID})
	return t, nil, err
}

// RescheduleIfFree moves the task unless the new interval overlaps another
// open task. It returns a zero Task when the task does not exist.
func (r *implRepository) RescheduleIfFree(ctx context.Context, opt repo.RescheduleTaskOptions) (model.Task, []model.Task, error) {
	iv := model.Interval{Start: opt.Start, End: opt.End}
	var (
		blocking []model.Task
		updated  bool
	)

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.LockKey(ctx, tx, opt.UserID); err != nil {
			return err
		}
		found, err := r.conflicts(ctx, tx, opt.UserID, opt.ID, iv)
		if err != nil {
			return fmt.Errorf("overlap check: %w", err)
		}
		if len(found) > 0 {
			blocking = found
			return nil
		}

		res, err := tx.ExecContext(ctx, r.db.Rebind(`
			UPDATE tasks
			SET title = ?, task_type = ?, description = ?, priority = ?, duration_minutes = ?,
				due_date = ?, scheduled_start = ?, scheduled_end = ?, updated_at = ?
			WHERE id = ? AND user_id = ?`),
			opt.Title, string(opt.TaskType), opt.Description, string(opt.Priority), opt.DurationMinutes,
			sqldb.Unix(opt.DueDate), opt.Start.Unix(), opt.End.Unix(), r.now().Unix(), opt.ID, opt.UserID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		updated = n > 0
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RescheduleIfFree"), err)
		return model.Task{}, nil, repo.ErrFailedToUpdate
	}
	if len(blocking) > 0 {
		return model.Task{}, blocking, nil
	}
	if !updated {
		return model.Task{}, nil, nil
	}
	t, err := r.GetTask(ctx, repo.GetTaskOptions{ID: opt.ID, UserID: opt.UserID})
	return t, nil, err
}

// GetTask returns a zero Task when not found.
func (r *implRepository) GetTask(ctx context.Context, opt repo.GetTaskOptions) (model.Task, error) {
	row := r.db.QueryRowContext(ctx,
		r.db.Rebind(`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ? LIMIT 1`),
		opt.ID, opt.UserID)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of the user's tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	if err := r.db.QueryRowContext(ctx, r.db.Rebind("SELECT COUNT(*) FROM tasks WHERE "+where), args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := "SELECT " + taskColumns + " FROM tasks WHERE " + where +
		" ORDER BY scheduled_start IS NULL, scheduled_start, created_at, id"
	if opt.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opt.Limit, max(opt.Offset, 0))
	}
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// ListScheduled returns open tasks intersecting [From, To).
func (r *implRepository) ListScheduled(ctx context.Context, opt repo.ListScheduledOptions) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, r.db.Rebind(conflictQuery+" ORDER BY scheduled_start, id"),
		opt.UserID, string(model.StatusCompleted), opt.To.Unix(), opt.From.Unix())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListScheduled"), err)
		return nil, repo.ErrFailedToList
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListScheduled"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask returns a zero Task when the task does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE tasks SET title = ?, task_type = ?, description = ?, priority = ?, due_date = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`),
		opt.Title, string(opt.TaskType), opt.Description, string(opt.Priority), sqldb.Unix(opt.DueDate),
		r.now().Unix(), opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetTask(ctx, repo.GetTaskOptions{ID: opt.ID, UserID: opt.UserID})
}

// UpdateStatusIfFree changes the status. Reopening a COMPLETED task puts its
// interval back into play, so that case re-runs the overlap check under the
// user's lock. It returns a zero Task when the task does not exist.
func (r *implRepository) UpdateStatusIfFree(ctx context.Context, opt repo.UpdateStatusOptions) (model.Task, []model.Task, error) {
	var (
		blocking []model.Task
		found    bool
	)

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.db.LockKey(ctx, tx, opt.UserID); err != nil {
			return err
		}
		current, err := scanTask(tx.QueryRowContext(ctx,
			r.db.Rebind(`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ? LIMIT 1`),
			opt.ID, opt.UserID))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		if current.Status == model.StatusCompleted && opt.Status != model.StatusCompleted &&
			current.ScheduledStart != nil && current.ScheduledEnd != nil {
			iv := model.Interval{Start: *current.ScheduledStart, End: *current.ScheduledEnd}
			overlap, err := r.conflicts(ctx, tx, opt.UserID, opt.ID, iv)
			if err != nil {
				return fmt.Errorf("overlap check: %w", err)
			}
			if len(overlap) > 0 {
				blocking = overlap
				return nil
			}
		}

		_, err = tx.ExecContext(ctx, r.db.Rebind(`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?`),
			string(opt.Status), r.now().Unix(), opt.ID, opt.UserID)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateStatusIfFree"), err)
		return model.Task{}, nil, repo.ErrFailedToUpdate
	}
	if len(blocking) > 0 {
		return model.Task{}, blocking, nil
	}
	if !found {
		return model.Task{}, nil, nil
	}
	t, err := r.GetTask(ctx, repo.GetTaskOptions{ID: opt.ID, UserID: opt.UserID})
	return t, nil, err
}

func (r *implRepository) SetCalendarEventID(ctx context.Context, opt repo.SetCalendarEventOptions) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE tasks SET calendar_event_id = ? WHERE id = ? AND user_id = ?`),
		opt.CalendarEventID, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTask reports whether a row was removed.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM tasks WHERE id = ? AND user_id = ?`), opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
