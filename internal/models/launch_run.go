package models

import (
	"time"
)

// LaunchRun persists one orchestration run and its outcome
type LaunchRun struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	IdempotencyKey string      `json:"idempotency_key" gorm:"type:varchar(255);not null;uniqueIndex"`
	OrganizationID string      `json:"organization_id" gorm:"type:varchar(255);not null;index"`
	Variant        FlowVariant `json:"variant" gorm:"type:varchar(30);not null;index"`
	State          RunState    `json:"state" gorm:"type:varchar(30);not null;index;default:'NOT_STARTED'"`
	CampaignID     string      `json:"campaign_id,omitempty" gorm:"type:varchar(255);index"`
	CampaignName   string      `json:"campaign_name" gorm:"type:varchar(255)"`
	FailedStep     StepID      `json:"failed_step,omitempty" gorm:"type:varchar(10)"`
	Error          string      `json:"error,omitempty" gorm:"type:text"`
	Result         JSON        `json:"result,omitempty" gorm:"type:jsonb" swaggertype:"object"`

	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the LaunchRun model
func (LaunchRun) TableName() string {
	return "launch_runs"
}

// LaunchRequest is the body accepted by the launch, draft and booth endpoints
type LaunchRequest struct {
	Snapshot DesignerSnapshot `json:"snapshot" binding:"required"`
}

// LaunchRunResponse is the API view of a LaunchRun
type LaunchRunResponse struct {
	ID             string      `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	IdempotencyKey string      `json:"idempotency_key"`
	OrganizationID string      `json:"organization_id" example:"org_1"`
	Variant        FlowVariant `json:"variant" example:"standard"`
	State          RunState    `json:"state" example:"LAUNCHED"`
	CampaignID     string      `json:"campaign_id,omitempty" example:"cmp_123"`
	CampaignName   string      `json:"campaign_name" example:"Q3 pipeline push"`
	FailedStep     StepID      `json:"failed_step,omitempty"`
	Error          string      `json:"error,omitempty"`
	Result         *FlowResult `json:"result,omitempty"`
	StartedAt      string      `json:"started_at,omitempty" example:"2025-01-09T10:30:00Z"`
	FinishedAt     string      `json:"finished_at,omitempty" example:"2025-01-09T10:30:05Z"`
	CreatedAt      string      `json:"created_at" example:"2025-01-09T10:30:00Z"`
}

// LaunchJob is the queue message asking a worker to execute a run
type LaunchJob struct {
	Type           string           `json:"type"`
	RunID          string           `json:"run_id"`
	OrganizationID string           `json:"organization_id"`
	AuthToken      string           `json:"auth_token"`
	Variant        FlowVariant      `json:"variant"`
	Snapshot       DesignerSnapshot `json:"snapshot"`
}
