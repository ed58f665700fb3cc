package usecase

import (
	"context"
	"errors"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/preference"
	repo "smart-task-scheduler/internal/preference/repository"
)

// Set validates and stores the preferences. They can be written only once.
func (uc *implUseCase) Set(ctx context.Context, sc model.Scope, input preference.SetInput) (model.Preferences, error) {
	p, err := toPreferences(input)
	if err != nil {
		return model.Preferences{}, err
	}
	p.UserID = sc.UserID

	if uc.cache.Contains(sc.UserID) {
		return model.Preferences{}, preference.ErrAlreadySet
	}

	stored, err := uc.repo.CreatePreferences(ctx, repo.CreatePreferencesOptions{Preferences: p})
	if errors.Is(err, repo.ErrAlreadyExists) {
		return model.Preferences{}, preference.ErrAlreadySet
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Set CreatePreferences: %v", err)
		return model.Preferences{}, err
	}

	uc.cache.Add(sc.UserID, stored)
	uc.l.Infof(ctx, "uc.Set: preferences stored for user=%s", sc.UserID)
	return stored, nil
}
