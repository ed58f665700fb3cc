package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"smart-task-scheduler/internal/model"
	"smart-task-scheduler/internal/preference"
	"smart-task-scheduler/internal/preference/repository"
	"smart-task-scheduler/pkg/log"
)

const defaultCacheSize = 4096

// implUseCase is the private implementation of preference.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	cache    *lru.Cache[string, model.Preferences]
	defaults model.Preferences
}

// New creates a preference UseCase. defaults is returned, with the caller's
// user ID, to users who have not completed onboarding. Stored preferences
// never change, so they are cached without expiry.
func New(repo repository.Repository, l log.Logger, defaults model.Preferences, cacheSize int) preference.UseCase {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, model.Preferences](cacheSize)
	if err != nil {
		panic(err)
	}
	return &implUseCase{
		repo:     repo,
		l:        l,
		cache:    cache,
		defaults: defaults,
	}
}
