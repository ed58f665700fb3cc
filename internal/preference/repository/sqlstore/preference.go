package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"smart-task-scheduler/internal/model"
	repo "smart-task-scheduler/internal/preference/repository"
	"smart-task-scheduler/pkg/sqldb"
)

// CreatePreferences inserts the user's row. The primary key on user_id makes
// the write one-time even under concurrent requests.
func (r *implRepository) CreatePreferences(ctx context.Context, opt repo.CreatePreferencesOptions) (model.Preferences, error) {
	p := opt.Preferences
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now().UTC()
	}
	enc, err := encode(p)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreatePreferences"), err)
		return model.Preferences{}, repo.ErrFailedToInsert
	}

	_, err = r.db.ExecContext(ctx, r.db.Rebind(`INSERT INTO preferences (`+preferenceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`), enc.args()...)
	if err != nil {
		if sqldb.IsUniqueViolation(err) {
			return model.Preferences{}, repo.ErrAlreadyExists
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePreferences"), err)
		return model.Preferences{}, repo.ErrFailedToInsert
	}
	return r.GetPreferences(ctx, repo.GetPreferencesOptions{UserID: p.UserID})
}

// GetPreferences returns zero Preferences when the user has none.
func (r *implRepository) GetPreferences(ctx context.Context, opt repo.GetPreferencesOptions) (model.Preferences, error) {
	var row row
	err := r.db.QueryRowContext(ctx,
		r.db.Rebind(`SELECT `+preferenceColumns+` FROM preferences WHERE user_id = ? LIMIT 1`),
		opt.UserID).Scan(row.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Preferences{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPreferences"), err)
		return model.Preferences{}, repo.ErrFailedToGet
	}

	p, err := decode(row)
	if err != nil {
		r.l.Errorf(ctx, "%s decode user=%s: %v", r.dsn("GetPreferences"), opt.UserID, err)
		return model.Preferences{}, repo.ErrCorruptRecord
	}
	return p, nil
}
