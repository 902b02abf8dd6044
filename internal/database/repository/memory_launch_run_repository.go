package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/gifting-campaign-service/internal/models"
)

// MemoryLaunchRunRepository keeps launch runs in process memory. It backs the
// service when no database is configured, and the tests.
type MemoryLaunchRunRepository struct {
	mu   sync.RWMutex
	runs map[string]*models.LaunchRun
	keys map[string]string
}

func NewMemoryLaunchRunRepository() *MemoryLaunchRunRepository {
	return &MemoryLaunchRunRepository{
		runs: make(map[string]*models.LaunchRun),
		keys: make(map[string]string),
	}
}

// Create stores a new run, enforcing idempotency key uniqueness
func (r *MemoryLaunchRunRepository) Create(run *models.LaunchRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.keys[run.IdempotencyKey]; exists {
		return fmt.Errorf("idempotency key %s already exists", run.IdempotencyKey)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	now := time.Now()
	run.CreatedAt = now
	run.UpdatedAt = now

	stored := *run
	r.runs[run.ID] = &stored
	r.keys[run.IdempotencyKey] = run.ID
	return nil
}

// Update replaces a stored run
func (r *MemoryLaunchRunRepository) Update(run *models.LaunchRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; !exists {
		return ErrLaunchRunNotFound
	}
	run.UpdatedAt = time.Now()
	stored := *run
	r.runs[run.ID] = &stored
	return nil
}

// GetByID returns a copy of the run with id
func (r *MemoryLaunchRunRepository) GetByID(id string) (*models.LaunchRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, exists := r.runs[id]
	if !exists {
		return nil, ErrLaunchRunNotFound
	}
	out := *run
	return &out, nil
}

// GetByIdempotencyKey returns a copy of the run bound to key
func (r *MemoryLaunchRunRepository) GetByIdempotencyKey(key string) (*models.LaunchRun, error) {
	r.mu.RLock()
	id, exists := r.keys[key]
	r.mu.RUnlock()
	if !exists {
		return nil, ErrLaunchRunNotFound
	}
	return r.GetByID(id)
}

// ListByOrganization returns runs for an organization, newest first
func (r *MemoryLaunchRunRepository) ListByOrganization(organizationID string, limit, offset int) ([]*models.LaunchRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var runs []*models.LaunchRun
	for _, run := range r.runs {
		if run.OrganizationID == organizationID {
			out := *run
			runs = append(runs, &out)
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	if offset >= len(runs) {
		return []*models.LaunchRun{}, nil
	}
	runs = runs[offset:]
	if limit > 0 && limit < len(runs) {
		runs = runs[:limit]
	}
	return runs, nil
}
