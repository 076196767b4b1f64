package repomanager

import (
	"context"
	"database/sql"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/departments"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/entries"
)

// InMemoryRepositoryManager wires the mutex-guarded repositories together.
// Data does not survive a restart; used by tests and the no-database mode.
type InMemoryRepositoryManager struct {
	departments departments.Repository
	entries     entries.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Departments() departments.Repository {
	return m.departments
}

func (m *InMemoryRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	depts := departments.NewInMemoryRepository()
	return &InMemoryRepositoryManager{
		departments: depts,
		entries:     entries.NewInMemoryRepository(depts),
	}
}
