// Package departments provides access to department credential records.
// Records are provisioned once and read-only at runtime, so every
// implementation must be safe for unbounded concurrent readers.
package departments

import (
	"context"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
)

type Repository interface {
	// Create stores a new department record and returns it with the
	// assigned id. Used by provisioning only, never by the server core.
	Create(ctx context.Context, dept *models.Department) (*models.Department, error)

	// GetByEmail returns the department with the given email or
	// common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Department, error)

	// GetAll lists every department, ordered by id.
	GetAll(ctx context.Context) ([]models.Department, error)
}
