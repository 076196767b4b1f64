package departments

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
)

// InMemoryRepository keeps departments in a mutex-guarded map. It backs the
// unit tests and the database-free dev mode.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byEmail map[string]*models.Department
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byEmail: make(map[string]*models.Department)}
}

func (r *InMemoryRepository) Create(ctx context.Context, dept *models.Department) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(dept.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrInternal
	}

	stored := *dept
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++
	r.byEmail[key] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dept, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrNotFound
	}

	out := *dept
	return &out, nil
}

func (r *InMemoryRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Department, 0, len(r.byEmail))
	for _, d := range r.byEmail {
		result = append(result, *d)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}
