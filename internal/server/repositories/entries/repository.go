// Package entries provides access to submitted data entries. Insert is the
// system-wide serialization point: implementations must hand out strictly
// increasing, never-reused ids no matter how many sessions insert
// concurrently, and reads must never observe a partially written entry.
package entries

import (
	"context"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
)

type Repository interface {
	// Insert durably appends one entry and returns it with the assigned id
	// and creation time. Concurrent inserts are totally ordered by id.
	Insert(ctx context.Context, entry *models.DataEntry) (*models.DataEntry, error)

	// ReadAll returns every entry joined with its department display name,
	// ordered by id, as a snapshot of some point in the insert order.
	ReadAll(ctx context.Context) ([]models.ExportRow, error)

	// Recent returns previews of the latest limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.ExportRow, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int64, error)
}
