package repository

import (
	"errors"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"

	"gorm.io/gorm"
)

// ErrLaunchRunNotFound is returned when no run matches the lookup
var ErrLaunchRunNotFound = errors.New("launch run not found")

type LaunchRunRepository struct {
	db *gorm.DB
}

func NewLaunchRunRepository(db *gorm.DB) *LaunchRunRepository {
	return &LaunchRunRepository{db: db}
}

// Create creates a new launch run
func (r *LaunchRunRepository) Create(run *models.LaunchRun) error {
	return r.db.Create(run).Error
}

// Update saves every field of a launch run
func (r *LaunchRunRepository) Update(run *models.LaunchRun) error {
	return r.db.Save(run).Error
}

// GetByID retrieves a launch run by ID
func (r *LaunchRunRepository) GetByID(id string) (*models.LaunchRun, error) {
	var run models.LaunchRun
	err := r.db.First(&run, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLaunchRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetByIdempotencyKey retrieves the run bound to an idempotency key
func (r *LaunchRunRepository) GetByIdempotencyKey(key string) (*models.LaunchRun, error) {
	var run models.LaunchRun
	err := r.db.Where("idempotency_key = ?", key).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLaunchRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListByOrganization retrieves runs for an organization, newest first
func (r *LaunchRunRepository) ListByOrganization(organizationID string, limit, offset int) ([]*models.LaunchRun, error) {
	var runs []*models.LaunchRun
	err := r.db.Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	return runs, err
}
