package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/backend"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Progress is reported to the observer on every state change and step result
type Progress struct {
	State     models.RunState    `json:"state"`
	Step      *models.StepResult `json:"step,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// ProgressFunc observes a run; it is called from the run's goroutine only
type ProgressFunc func(Progress)

// RunOptions carries per-run inputs that are not part of the draft
type RunOptions struct {
	Session        backend.Session
	IdempotencyKey string
	// Selection is the synchronized gift selection; nil syncs it from the snapshot
	Selection *models.GiftSelection
	Progress  ProgressFunc
}

// Orchestrator composes the step functions into the launch flows
type Orchestrator struct {
	steps          *Steps
	parallelConfig bool
}

// NewOrchestrator creates an orchestrator. With parallelConfig the independent
// configuration steps (landing page, gift card, event link, email templates)
// run concurrently; the create, details, recipients and launch spine is always serial.
func NewOrchestrator(steps *Steps, parallelConfig bool) *Orchestrator {
	return &Orchestrator{steps: steps, parallelConfig: parallelConfig}
}

// ExecuteCompleteCampaignFlow creates, configures and launches a campaign.
// A failed launch after successful configuration yields a partial success
// carrying the campaign id.
func (o *Orchestrator) ExecuteCompleteCampaignFlow(ctx context.Context, opts RunOptions, snapshot models.DesignerSnapshot) *models.FlowResult {
	return o.execute(ctx, models.FlowStandard, opts, snapshot)
}

// SaveDraft creates and configures a campaign and records the gift selection
// intent without assigning gifts to recipients
func (o *Orchestrator) SaveDraft(ctx context.Context, opts RunOptions, snapshot models.DesignerSnapshot) *models.FlowResult {
	return o.execute(ctx, models.FlowDraft, opts, snapshot)
}

// ExecuteBoothGiveawayFlow launches a booth giveaway. Launch failure fails the
// whole flow: without the claim link a booth campaign has nothing to offer.
func (o *Orchestrator) ExecuteBoothGiveawayFlow(ctx context.Context, opts RunOptions, snapshot models.DesignerSnapshot) *models.FlowResult {
	return o.execute(ctx, models.FlowBooth, opts, snapshot)
}

// Execute dispatches to the flow named by variant
func (o *Orchestrator) Execute(ctx context.Context, variant models.FlowVariant, opts RunOptions, snapshot models.DesignerSnapshot) *models.FlowResult {
	return o.execute(ctx, variant, opts, snapshot)
}

func (o *Orchestrator) execute(ctx context.Context, variant models.FlowVariant, opts RunOptions, snapshot models.DesignerSnapshot) (result *models.FlowResult) {
	// The snapshot is captured here and only this copy is read from now on
	snap := snapshot.Clone()

	var selection models.GiftSelection
	if opts.Selection != nil {
		selection = *opts.Selection
		selection.Gifts = append([]models.Gift(nil), opts.Selection.Gifts...)
	} else {
		selection = SyncGiftSelection(snap)
	}
	if selection.Mode == "" {
		selection.SetMode(ResolveGiftMode(snap))
	}
	if selection.PerRecipientMax == 0 {
		selection.PerRecipientMax = snap.PerRecipientMax
	}

	run := newFlowRun(variant, opts.Progress, snap.CampaignName)
	defer func() {
		if recovered := recover(); recovered != nil {
			result = run.fail(stepError(run.current, fmt.Errorf("panic: %v", recovered)))
		}
	}()

	session := opts.Session

	// Step 1: create, or reuse a campaign referenced by the draft
	run.transition(models.RunCreating)
	run.current = models.StepCreateCampaign
	campaignID := snap.CampaignID
	if campaignID != "" {
		run.record(models.Skipped(models.StepCreateCampaign, "Updating existing campaign"))
	} else {
		id, err := o.steps.CreateCampaign(ctx, session, CreateCampaignInput{
			Name:        snap.CampaignName,
			Description: snap.Description,
			Goal:        snap.Goal,
			Source:      snap.Source,
		}, opts.IdempotencyKey)
		if err != nil {
			return run.fail(err)
		}
		campaignID = id
		run.record(models.Ok(models.StepCreateCampaign, models.JSON{"campaignId": campaignID}))
	}
	run.result.CampaignID = campaignID
	run.log = run.log.WithField("campaign_id", campaignID)

	// Step 2: details, the last critical step before launch
	run.transition(models.RunConfiguring)
	run.current = models.StepUpdateDetails
	recipientCount := snap.ResolveRecipientCount()
	if variant == models.FlowBooth {
		recipientCount = snap.BoothCapacity
	}
	details, err := o.steps.UpdateCampaignDetails(ctx, session, campaignID, DetailsInput{
		Snapshot:        snap,
		Mode:            selection.Mode,
		RecipientCount:  recipientCount,
		PerRecipientMax: selection.PerRecipientMax,
	})
	run.record(details)
	if err != nil {
		return run.fail(err)
	}

	// Steps 3 onward are non-critical
	motion := snap.Motion
	if variant == models.FlowBooth {
		motion = BoothGiveawayMotion
	}
	run.current = models.StepUpdateMotion
	run.record(o.steps.UpdateMotion(ctx, session, campaignID, motion))

	run.current = models.StepAddRecipients
	run.record(o.steps.AddRecipients(ctx, session, campaignID, snap.ContactIDs()))

	for _, configured := range o.configure(ctx, session, campaignID, snap) {
		run.record(configured)
	}

	run.current = models.StepGiftSelection
	if variant == models.FlowDraft {
		run.record(o.steps.PersistGiftSelectionIntent(ctx, session, campaignID, selection, snap))
		run.transition(models.RunSaved)
		run.result.Success = true
		run.result.Draft = true
		run.result.Message = "Campaign saved as draft"
		return run.finish()
	}

	run.transition(models.RunSelectingGifts)
	run.record(o.steps.ExecuteGiftSelection(ctx, session, campaignID, selection, snap))

	run.transition(models.RunLaunching)
	run.current = models.StepRunCampaign
	if variant == models.FlowBooth {
		link, message, err := o.steps.RunBoothCampaign(ctx, session, campaignID)
		if err != nil {
			return run.fail(err)
		}
		run.record(models.Ok(models.StepRunCampaign, models.JSON{"boothGiveawayCTALink": link}))
		run.transition(models.RunLaunched)
		run.result.Success = true
		run.result.Launched = true
		run.result.BoothGiveawayCTALink = link
		run.result.Message = message
		return run.finish()
	}

	if err := o.steps.RunCampaign(ctx, session, campaignID); err != nil {
		return run.partial(err)
	}
	run.record(models.Ok(models.StepRunCampaign, nil))
	run.transition(models.RunLaunched)
	run.result.Success = true
	run.result.Launched = true
	run.result.Message = "Campaign launched"
	return run.finish()
}

// configure runs the independent configuration steps, returning their results
// in step order. Each step owns its own result slot so one step's failure or
// latency has no effect on its siblings' outcomes.
func (o *Orchestrator) configure(ctx context.Context, session backend.Session, campaignID string, snap models.DesignerSnapshot) []models.StepResult {
	tasks := []struct {
		step models.StepID
		run  func() models.StepResult
	}{
		{models.StepUpdateLandingPage, func() models.StepResult {
			return o.steps.UpdateLandingPageConfig(ctx, session, campaignID, snap.LandingPageConfig)
		}},
		{models.StepUpdateGiftCard, func() models.StepResult {
			return o.steps.UpdateGiftCard(ctx, session, campaignID, snap.OutcomeCard)
		}},
		{models.StepUpdateEventLink, func() models.StepResult {
			return o.steps.UpdateEventWithCampaignID(ctx, session, campaignID, snap.Goal, snap.EventID)
		}},
		{models.StepUpdateEmailTemplates, func() models.StepResult {
			return o.steps.UpdateEmailTemplates(ctx, session, campaignID, snap.EmailTemplates)
		}},
	}
	results := make([]models.StepResult, len(tasks))

	runTask := func(i int) {
		defer func() {
			if recovered := recover(); recovered != nil {
				results[i] = models.Warning(tasks[i].step, fmt.Sprintf("panic: %v", recovered))
			}
		}()
		results[i] = tasks[i].run()
	}

	if !o.parallelConfig {
		for i := range tasks {
			runTask(i)
		}
		return results
	}

	var g errgroup.Group
	for i := range tasks {
		i := i
		g.Go(func() error {
			runTask(i)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// flowRun accumulates the state and report of one execution
type flowRun struct {
	result   *models.FlowResult
	progress ProgressFunc
	current  models.StepID
	log      *logrus.Entry
}

func newFlowRun(variant models.FlowVariant, progress ProgressFunc, campaignName string) *flowRun {
	return &flowRun{
		result: &models.FlowResult{
			State: models.RunNotStarted,
			Steps: []models.StepResult{},
		},
		progress: progress,
		current:  models.StepCreateCampaign,
		log: logrus.WithFields(logrus.Fields{
			"variant":       variant,
			"campaign_name": campaignName,
		}),
	}
}

func (r *flowRun) transition(state models.RunState) {
	if !r.result.State.CanTransition(state) {
		r.log.Warnf("Unexpected run transition %s -> %s", r.result.State, state)
	}
	r.result.State = state
	r.log.Debugf("Run state %s", state)
	r.notify(Progress{State: state})
}

func (r *flowRun) record(step models.StepResult) {
	r.result.Steps = append(r.result.Steps, step)
	r.notify(Progress{State: r.result.State, Step: &step})
}

func (r *flowRun) notify(p Progress) {
	if r.progress == nil {
		return
	}
	p.Timestamp = time.Now()
	defer func() {
		if recovered := recover(); recovered != nil {
			r.log.Warnf("Progress observer panicked: %v", recovered)
		}
	}()
	r.progress(p)
}

// fail aborts the run, classifying err by its step marker
func (r *flowRun) fail(err error) *models.FlowResult {
	step, ok := StepOf(err)
	if !ok {
		step = r.current
	}
	if _, recorded := r.result.StepResult(step); !recorded {
		r.record(models.Fatal(step, err))
	}

	r.log.WithField("step", step).Errorf("Campaign flow failed: %v", err)
	r.transition(models.RunFailed)
	r.result.Success = false
	r.result.Launched = false
	r.result.Error = err.Error()
	r.result.Step = step
	return r.result
}

// partial ends a standard run whose launch failed after configuration
func (r *flowRun) partial(err error) *models.FlowResult {
	r.record(models.Warning(models.StepRunCampaign, err.Error()))
	r.log.Warnf("Campaign configured but launch failed: %v", err)
	r.transition(models.RunPartial)
	r.result.Success = false
	r.result.PartialSuccess = true
	r.result.Error = err.Error()
	r.result.Step = models.StepRunCampaign
	r.result.Message = "Campaign created but not launched"
	return r.result
}

func (r *flowRun) finish() *models.FlowResult {
	r.log.WithField("warnings", len(r.result.Warnings())).Infof("Campaign flow finished in state %s", r.result.State)
	return r.result
}
