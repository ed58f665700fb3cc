package repository

import "smart-task-scheduler/internal/model"

// CreatePreferencesOptions holds a validated preferences row.
type CreatePreferencesOptions struct {
	Preferences model.Preferences
}

type GetPreferencesOptions struct {
	UserID string
}
