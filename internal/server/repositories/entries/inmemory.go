package entries

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/departments"
)

// InMemoryRepository keeps entries in a mutex-guarded slice. The mutex is
// the serialization point: id assignment and the append happen under one
// critical section, and reads copy the slice so they never see a partial
// entry. It backs the unit tests and the database-free dev mode.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries []models.DataEntry
	depts   departments.Repository
}

func NewInMemoryRepository(depts departments.Repository) *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, depts: depts}
}

func (r *InMemoryRepository) Insert(ctx context.Context, entry *models.DataEntry) (*models.DataEntry, error) {
	// Referential integrity: the department must exist at insert time.
	if _, err := r.departmentName(ctx, entry.DepartmentID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	entry.CreatedAt = time.Now()
	r.nextID++
	r.entries = append(r.entries, *entry)

	return entry, nil
}

func (r *InMemoryRepository) ReadAll(ctx context.Context) ([]models.ExportRow, error) {
	r.mu.RLock()
	snapshot := make([]models.DataEntry, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.RUnlock()

	result := make([]models.ExportRow, 0, len(snapshot))
	for _, e := range snapshot {
		name, err := r.departmentName(ctx, e.DepartmentID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.ExportRow{
			ID:         e.ID,
			Department: name,
			EntryType:  e.EntryType,
			Content:    e.Content,
			CreatedAt:  e.CreatedAt,
		})
	}

	return result, nil
}

func (r *InMemoryRepository) Recent(ctx context.Context, limit int) ([]models.ExportRow, error) {
	all, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if limit > len(all) {
		limit = len(all)
	}

	result := make([]models.ExportRow, 0, limit)
	for i := len(all) - 1; i >= len(all)-limit; i-- {
		result = append(result, all[i])
	}

	return result, nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entries)), nil
}

func (r *InMemoryRepository) departmentName(ctx context.Context, deptID int64) (string, error) {
	depts, err := r.depts.GetAll(ctx)
	if err != nil {
		return "", err
	}
	for _, d := range depts {
		if d.ID == deptID {
			return d.Name, nil
		}
	}
	return "", fmt.Errorf("unknown department id %d", deptID)
}
