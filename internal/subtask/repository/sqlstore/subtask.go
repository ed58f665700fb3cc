package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smart-task-scheduler/internal/model"
	repo "smart-task-scheduler/internal/subtask/repository"
)

const subtaskColumns = `id, task_id, user_id, title, description, is_done, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSubtask(s scanner) (model.Subtask, error) {
	var (
		st      model.Subtask
		created int64
	)
	if err := s.Scan(&st.ID, &st.TaskID, &st.UserID, &st.Title, &st.Description, &st.Done, &created); err != nil {
		return model.Subtask{}, err
	}
	st.CreatedAt = time.Unix(created, 0).UTC()
	return st, nil
}

func (r *implRepository) get(ctx context.Context, tx *sql.Tx, opt repo.GetSubtaskOptions) (model.Subtask, error) {
	st, err := scanSubtask(tx.QueryRowContext(ctx,
		r.db.Rebind(`SELECT `+subtaskColumns+` FROM subtasks WHERE id = ? AND task_id = ? AND user_id = ? LIMIT 1`),
		opt.ID, opt.TaskID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Subtask{}, nil
	}
	return st, err
}

// CreateSubtask inserts the row. The task_id foreign key rejects orphans.
func (r *implRepository) CreateSubtask(ctx context.Context, opt repo.CreateSubtaskOptions) (model.Subtask, error) {
	st := model.Subtask{
		ID:          opt.ID,
		TaskID:      opt.TaskID,
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		CreatedAt:   r.now().UTC().Truncate(time.Second),
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`INSERT INTO subtasks (`+subtaskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		st.ID, st.TaskID, st.UserID, st.Title, st.Description, false, st.CreatedAt.Unix())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSubtask"), err)
		return model.Subtask{}, repo.ErrFailedToInsert
	}
	return st, nil
}

func (r *implRepository) ListSubtasks(ctx context.Context, opt repo.ListSubtasksOptions) ([]model.Subtask, error) {
	rows, err := r.db.QueryContext(ctx,
		r.db.Rebind(`SELECT `+subtaskColumns+` FROM subtasks WHERE task_id = ? AND user_id = ? ORDER BY created_at, id`),
		opt.TaskID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSubtasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	subtasks := []model.Subtask{}
	for rows.Next() {
		st, err := scanSubtask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListSubtasks"), err)
			return nil, repo.ErrFailedToList
		}
		subtasks = append(subtasks, st)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListSubtasks"), err)
		return nil, repo.ErrFailedToList
	}
	return subtasks, nil
}

// ToggleSubtask flips is_done and reads the row back in one transaction.
func (r *implRepository) ToggleSubtask(ctx context.Context, opt repo.GetSubtaskOptions) (model.Subtask, error) {
	var st model.Subtask
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			r.db.Rebind(`UPDATE subtasks SET is_done = NOT is_done WHERE id = ? AND task_id = ? AND user_id = ?`),
			opt.ID, opt.TaskID, opt.UserID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil || n == 0 {
			return err
		}
		st, err = r.get(ctx, tx, opt)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ToggleSubtask"), err)
		return model.Subtask{}, repo.ErrFailedToUpdate
	}
	return st, nil
}

// DeleteSubtask reports whether a row was removed.
func (r *implRepository) DeleteSubtask(ctx context.Context, opt repo.GetSubtaskOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		r.db.Rebind(`DELETE FROM subtasks WHERE id = ? AND task_id = ? AND user_id = ?`),
		opt.ID, opt.TaskID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSubtask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
