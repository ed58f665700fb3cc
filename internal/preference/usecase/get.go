package usecase

import (
	"context"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/preference"
	repo "smart-task-scheduler/internal/preference/repository"
)

// Get returns the stored preferences, or the defaults with Exists false.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (preference.GetOutput, error) {
	if p, ok := uc.cache.Get(sc.UserID); ok {
		return preference.GetOutput{Exists: true, Preferences: p}, nil
	}

	p, err := uc.repo.GetPreferences(ctx, repo.GetPreferencesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetPreferences: %v", err)
		return preference.GetOutput{}, err
	}
	if p.UserID == "" {
		d := uc.defaults
		d.UserID = sc.UserID
		return preference.GetOutput{Exists: false, Preferences: d}, nil
	}

	uc.cache.Add(sc.UserID, p)
	return preference.GetOutput{Exists: true, Preferences: p}, nil
}
