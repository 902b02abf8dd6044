package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/gifting-campaign-service/internal/database/repository"
	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/backend"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/campaign"
	"github.com/sirupsen/logrus"
)

// LaunchJobType tags queue messages carrying a LaunchJob
const LaunchJobType = "campaign_launch"

var (
	// ErrAsyncUnavailable is returned by Enqueue when no message queue is configured
	ErrAsyncUnavailable = errors.New("async launches require a message queue")
	// ErrIdempotencyConflict is returned when a key is reused by another organization
	ErrIdempotencyConflict = errors.New("idempotency key already used by another organization")
)

// LaunchRunStore persists launch runs
type LaunchRunStore interface {
	Create(run *models.LaunchRun) error
	Update(run *models.LaunchRun) error
	GetByID(id string) (*models.LaunchRun, error)
	GetByIdempotencyKey(key string) (*models.LaunchRun, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*models.LaunchRun, error)
}

// FlowRunner executes one orchestration flow
type FlowRunner interface {
	Execute(ctx context.Context, variant models.FlowVariant, opts campaign.RunOptions, snapshot models.DesignerSnapshot) *models.FlowResult
}

// JobPublisher hands launch jobs to a worker queue
type JobPublisher interface {
	PublishJSON(ctx context.Context, queueName string, payload interface{}) error
}

// ErrorReporter forwards failed runs to error tracking
type ErrorReporter func(err error, tags map[string]string)

// LaunchInput describes one launch, draft or booth submission
type LaunchInput struct {
	OrganizationID string
	AuthToken      string
	// IdempotencyKey dedupes double submissions; empty generates a fresh key
	IdempotencyKey string
	Variant        models.FlowVariant
	Snapshot       models.DesignerSnapshot
}

// LaunchService runs campaign flows and records each run
type LaunchService struct {
	store     LaunchRunStore
	runner    FlowRunner
	sseHub    *SSEHub
	publisher JobPublisher
	queue     string
	report    ErrorReporter

	// Non-terminal runs untouched for this long are considered abandoned
	staleAfter time.Duration

	claimMu sync.Mutex
}

func NewLaunchService(store LaunchRunStore, runner FlowRunner, sseHub *SSEHub) *LaunchService {
	return &LaunchService{
		store:  store,
		runner: runner,
		sseHub: sseHub,
	}
}

// SetPublisher enables async launches through queueName
func (s *LaunchService) SetPublisher(publisher JobPublisher, queueName string) {
	s.publisher = publisher
	s.queue = queueName
}

// SetErrorReporter sets the hook called for every FAILED run
func (s *LaunchService) SetErrorReporter(report ErrorReporter) {
	s.report = report
}

// SetStaleRunAfter lets a key whose run has been stuck in a non-terminal state
// for longer than after be retried; 0 replays such runs forever
func (s *LaunchService) SetStaleRunAfter(after time.Duration) {
	s.staleAfter = after
}

// AsyncEnabled reports whether Enqueue can be used
func (s *LaunchService) AsyncEnabled() bool {
	return s.publisher != nil
}

// Launch executes the flow synchronously. A submission whose idempotency key
// already names a run returns that run with replayed set and executes nothing.
func (s *LaunchService) Launch(ctx context.Context, in LaunchInput) (run *models.LaunchRun, replayed bool, err error) {
	run, replayed, err = s.claim(&in)
	if err != nil || replayed {
		return run, replayed, err
	}

	s.execute(ctx, run, in.AuthToken, in.Snapshot)
	return run, false, nil
}

// Enqueue records the run and publishes it for a worker
func (s *LaunchService) Enqueue(ctx context.Context, in LaunchInput) (*models.LaunchRun, bool, error) {
	if s.publisher == nil {
		return nil, false, ErrAsyncUnavailable
	}

	run, replayed, err := s.claim(&in)
	if err != nil || replayed {
		return run, replayed, err
	}

	job := models.LaunchJob{
		Type:           LaunchJobType,
		RunID:          run.ID,
		OrganizationID: run.OrganizationID,
		AuthToken:      in.AuthToken,
		Variant:        run.Variant,
		Snapshot:       in.Snapshot,
	}
	if err := s.publisher.PublishJSON(ctx, s.queue, job); err != nil {
		s.complete(run, &models.FlowResult{
			State: models.RunFailed,
			Error: err.Error(),
			Steps: []models.StepResult{},
		})
		return run, false, fmt.Errorf("failed to enqueue launch: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":          run.ID,
		"organization_id": run.OrganizationID,
		"variant":         run.Variant,
	}).Info("Launch run queued")
	return run, false, nil
}

// HandleJob executes a queued run. Redelivered jobs for runs that already
// started are ignored.
func (s *LaunchService) HandleJob(ctx context.Context, job models.LaunchJob) error {
	run, err := s.store.GetByID(job.RunID)
	if err != nil {
		return fmt.Errorf("failed to load launch run %s: %w", job.RunID, err)
	}
	if run.State != models.RunNotStarted {
		logrus.WithField("run_id", run.ID).Warnf("Skipping launch job for run in state %s", run.State)
		return nil
	}

	s.execute(ctx, run, job.AuthToken, job.Snapshot)
	return nil
}

// GetRun returns a run by id. Runs of other organizations are reported as not found.
func (s *LaunchService) GetRun(id, organizationID string) (*models.LaunchRun, error) {
	run, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if organizationID == "" || run.OrganizationID != organizationID {
		return nil, repository.ErrLaunchRunNotFound
	}
	return run, nil
}

// ListRuns returns an organization's runs, newest first
func (s *LaunchService) ListRuns(organizationID string, limit, offset int) ([]*models.LaunchRun, error) {
	return s.store.ListByOrganization(organizationID, limit, offset)
}

// ToResponse converts a LaunchRun to its API view
func (s *LaunchService) ToResponse(run *models.LaunchRun) *models.LaunchRunResponse {
	resp := &models.LaunchRunResponse{
		ID:             run.ID,
		IdempotencyKey: run.IdempotencyKey,
		OrganizationID: run.OrganizationID,
		Variant:        run.Variant,
		State:          run.State,
		CampaignID:     run.CampaignID,
		CampaignName:   run.CampaignName,
		FailedStep:     run.FailedStep,
		Error:          run.Error,
		Result:         models.DecodeFlowResult(run.Result),
		CreatedAt:      run.CreatedAt.Format(time.RFC3339),
	}
	if run.StartedAt != nil {
		resp.StartedAt = run.StartedAt.Format(time.RFC3339)
	}
	if run.FinishedAt != nil {
		resp.FinishedAt = run.FinishedAt.Format(time.RFC3339)
	}
	return resp
}

// claim binds the submission to a run. A run that previously FAILED or was
// abandoned is reset and retried under the same key, reusing any campaign it
// already created.
func (s *LaunchService) claim(in *LaunchInput) (*models.LaunchRun, bool, error) {
	s.claimMu.Lock()
	defer s.claimMu.Unlock()

	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" {
		key = uuid.NewString()
	}
	in.IdempotencyKey = key

	existing, err := s.store.GetByIdempotencyKey(key)
	switch {
	case err == nil:
		if existing.OrganizationID != in.OrganizationID {
			return nil, false, ErrIdempotencyConflict
		}
		stale := s.abandoned(existing)
		previous := existing.State
		if existing.State != models.RunFailed && !stale {
			return existing, true, nil
		}
		if in.Snapshot.CampaignID == "" {
			in.Snapshot.CampaignID = existing.CampaignID
		}
		existing.Variant = in.Variant
		existing.State = models.RunNotStarted
		existing.CampaignName = in.Snapshot.CampaignName
		existing.FailedStep = ""
		existing.Error = ""
		existing.Result = nil
		existing.StartedAt = nil
		existing.FinishedAt = nil
		if err := s.store.Update(existing); err != nil {
			return nil, false, fmt.Errorf("failed to reset launch run: %w", err)
		}
		if stale {
			logrus.WithField("run_id", existing.ID).Warnf("Retrying launch run abandoned in state %s", previous)
		} else {
			logrus.WithField("run_id", existing.ID).Info("Retrying failed launch run")
		}
		return existing, false, nil
	case !errors.Is(err, repository.ErrLaunchRunNotFound):
		return nil, false, fmt.Errorf("failed to look up idempotency key: %w", err)
	}

	run := &models.LaunchRun{
		IdempotencyKey: key,
		OrganizationID: in.OrganizationID,
		Variant:        in.Variant,
		State:          models.RunNotStarted,
		CampaignID:     in.Snapshot.CampaignID,
		CampaignName:   in.Snapshot.CampaignName,
	}
	if err := s.store.Create(run); err != nil {
		// Another instance claimed the key first
		if existing, getErr := s.store.GetByIdempotencyKey(key); getErr == nil {
			return existing, true, nil
		}
		return nil, false, fmt.Errorf("failed to create launch run: %w", err)
	}
	return run, false, nil
}

// abandoned reports whether run stopped making progress before reaching a
// terminal state, as happens when the process running it crashes
func (s *LaunchService) abandoned(run *models.LaunchRun) bool {
	// a queued run that no worker has picked up yet is waiting, not abandoned
	if s.staleAfter <= 0 || run.State.IsTerminal() || run.StartedAt == nil {
		return false
	}
	return time.Since(run.UpdatedAt) > s.staleAfter
}

func (s *LaunchService) execute(ctx context.Context, run *models.LaunchRun, authToken string, snapshot models.DesignerSnapshot) *models.FlowResult {
	startedAt := time.Now()
	run.StartedAt = &startedAt

	opts := campaign.RunOptions{
		Session: backend.Session{
			OrganizationID: run.OrganizationID,
			AuthToken:      authToken,
		},
		IdempotencyKey: run.IdempotencyKey,
		Progress: func(p campaign.Progress) {
			s.onProgress(run, p)
		},
	}

	result := s.runner.Execute(ctx, run.Variant, opts, snapshot)
	s.complete(run, result)
	return result
}

// onProgress streams progress and persists non-terminal state changes so a
// crashed run still shows where it stopped
func (s *LaunchService) onProgress(run *models.LaunchRun, p campaign.Progress) {
	if s.sseHub != nil {
		s.sseHub.BroadcastProgress(run, p)
	}

	changed := false
	if p.Step == nil && p.State != run.State && !p.State.IsTerminal() {
		run.State = p.State
		changed = true
	}
	if p.Step != nil && p.Step.Step == models.StepCreateCampaign {
		if id, ok := p.Step.Data["campaignId"].(string); ok && id != run.CampaignID {
			run.CampaignID = id
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := s.store.Update(run); err != nil {
		logrus.WithField("run_id", run.ID).Warnf("Failed to persist run progress: %v", err)
	}
}

func (s *LaunchService) complete(run *models.LaunchRun, result *models.FlowResult) {
	finishedAt := time.Now()
	run.State = result.State
	if result.CampaignID != "" {
		run.CampaignID = result.CampaignID
	}
	run.FailedStep = result.Step
	run.Error = result.Error
	run.Result = result.ToJSON()
	run.FinishedAt = &finishedAt

	entry := logrus.WithFields(logrus.Fields{
		"run_id":          run.ID,
		"organization_id": run.OrganizationID,
		"variant":         run.Variant,
		"campaign_id":     run.CampaignID,
	})
	if err := s.store.Update(run); err != nil {
		entry.Errorf("Failed to save launch run result: %v", err)
	}
	if s.sseHub != nil {
		s.sseHub.BroadcastResult(run, result)
	}

	if result.State == models.RunFailed {
		entry.WithField("step", result.Step).Errorf("Launch run failed: %s", result.Error)
		if s.report != nil {
			s.report(errors.New(result.Error), map[string]string{
				"run_id":          run.ID,
				"organization_id": run.OrganizationID,
				"variant":         string(run.Variant),
				"step":            string(result.Step),
			})
		}
		return
	}
	entry.Infof("Launch run finished in state %s", result.State)
}
