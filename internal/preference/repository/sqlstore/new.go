package sqlstore

import (
	"fmt"
	"time"

	"smart-task-scheduler/internal/preference/repository"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/sqldb"
)

type implRepository struct {
	db  *sqldb.DB
	l   log.Logger
	now func() time.Time
}

// New creates a database/sql backed Repository for the preference domain.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("preference/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("preference/repository/sqlstore.%s", method)
}
