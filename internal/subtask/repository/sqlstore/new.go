package sqlstore

import (
	"fmt"
	"time"

	"smart-task-scheduler/internal/subtask/repository"
	"smart-task-scheduler/pkg/log"
	"smart-task-scheduler/pkg/sqldb"
)

type implRepository struct {
	db  *sqldb.DB
	l   log.Logger
	now func() time.Time
}

// New creates a database/sql backed subtask Repository.
func New(db *sqldb.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("subtask/repository/sqlstore: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("subtask/repository/sqlstore.%s", method)
}
