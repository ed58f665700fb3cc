package repository

import (
	"context"

	"smart-task-scheduler/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreatePreferences returns ErrAlreadyExists when the user already has a row.
	CreatePreferences(ctx context.Context, opt CreatePreferencesOptions) (model.Preferences, error)
	// GetPreferences returns zero Preferences (UserID == "") when none are stored.
	GetPreferences(ctx context.Context, opt GetPreferencesOptions) (model.Preferences, error)
}
