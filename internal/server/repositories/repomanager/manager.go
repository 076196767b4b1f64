// Package repomanager bundles the repositories behind a single constructor
// so the rest of the server never cares which backend is in play.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/departments"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/entries"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Departments() departments.Repository
	Entries() entries.Repository
	Close() error
}
