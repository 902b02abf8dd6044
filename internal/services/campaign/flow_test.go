package campaign

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runOpts() RunOptions {
	return RunOptions{Session: testSession(), IdempotencyKey: "key_1"}
}

func TestExecuteCompleteCampaignFlow_Success(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		f := newFakeBackend(t)
		f.eventCampaignIDs = []string{"cmp_old"}

		result := f.orchestrator(parallel).ExecuteCompleteCampaignFlow(context.Background(), runOpts(), fullSnapshot())

		require.True(t, result.Success, "parallel=%v: %s", parallel, result.Error)
		assert.True(t, result.Launched)
		assert.False(t, result.PartialSuccess)
		assert.Equal(t, testCampaignID, result.CampaignID)
		assert.Equal(t, models.RunLaunched, result.State)
		assert.Empty(t, result.Warnings())

		for _, step := range []models.StepID{
			models.StepCreateCampaign, models.StepUpdateDetails, models.StepUpdateMotion,
			models.StepAddRecipients, models.StepUpdateLandingPage, models.StepUpdateGiftCard,
			models.StepUpdateEventLink, models.StepUpdateEmailTemplates, models.StepGiftSelection,
			models.StepRunCampaign,
		} {
			recorded, ok := result.StepResult(step)
			require.True(t, ok, "step %s not recorded", step)
			assert.Equal(t, models.StepOK, recorded.Outcome, "step %s", step)
		}

		creates := f.callsTo(http.MethodPost, campaignPath(""))
		require.Len(t, creates, 1)
		assert.Equal(t, "key_1", creates[0].Header.Get("Idempotency-Key"))
		assert.Equal(t, "Bearer tok_123", creates[0].Header.Get("Authorization"))
		assert.Equal(t, GoalDriveEvent, creates[0].Body["goal"])

		recipients := f.callsTo(http.MethodPost, campaignPath("/recipients"))
		require.Len(t, recipients, 1)
		assert.Equal(t, []interface{}{"c1", "c2"}, recipients[0].Body["contactIds"])

		single := f.callsTo(http.MethodPost, campaignPath("/gifts/single-gift"))
		require.Len(t, single, 1)
		assert.Equal(t, "cat_1", single[0].Body["catalogId"])
		assert.Equal(t, []interface{}{"g1"}, single[0].Body["selectedGift"])

		assert.Equal(t, []string{"cmp_old", testCampaignID}, f.eventCampaignIDs)
		assert.True(t, f.called(http.MethodPost, campaignPath("/run")))
	}
}

func TestExecuteCompleteCampaignFlow_DetailsFailureShortCircuits(t *testing.T) {
	f := newFakeBackend(t)
	f.failOn(http.MethodPut, campaignPath(""), http.StatusInternalServerError)

	result := f.orchestrator(true).ExecuteCompleteCampaignFlow(context.Background(), runOpts(), fullSnapshot())

	assert.False(t, result.Success)
	assert.False(t, result.PartialSuccess)
	assert.Equal(t, models.RunFailed, result.State)
	assert.Equal(t, models.StepUpdateDetails, result.Step)
	assert.Contains(t, result.Error, "backend unavailable")
	assert.Equal(t, testCampaignID, result.CampaignID)

	assert.False(t, f.called(http.MethodPost, campaignPath("/recipients")))
	assert.False(t, f.called(http.MethodPut, campaignPath("/motion")))
	assert.False(t, f.called(http.MethodPost, campaignPath("/run")))

	details, ok := result.StepResult(models.StepUpdateDetails)
	require.True(t, ok)
	assert.Equal(t, models.StepFatal, details.Outcome)
}

func TestExecuteCompleteCampaignFlow_CreateFailure(t *testing.T) {
	f := newFakeBackend(t)
	f.failOn(http.MethodPost, campaignPath(""), http.StatusBadRequest)

	result := f.orchestrator(false).ExecuteCompleteCampaignFlow(context.Background(), runOpts(), fullSnapshot())

	assert.False(t, result.Success)
	assert.Equal(t, models.StepCreateCampaign, result.Step)
	assert.Empty(t, result.CampaignID)
	assert.False(t, f.called(http.MethodPut, campaignPath("")))
}

func TestExecuteCompleteCampaignFlow_RunFailureIsPartialSuccess(t *testing.T) {
	f := newFakeBackend(t)
	f.failOn(http.MethodPost, campaignPath("/run"), http.StatusBadGateway)

	result := f.orchestrator(true).ExecuteCompleteCampaignFlow(context.Background(), runOpts(), fullSnapshot())

	assert.False(t, result.Success)
	assert.False(t, result.Launched)
	assert.True(t, result.PartialSuccess)
	assert.Equal(t, testCampaignID, result.CampaignID)
	assert.Equal(t, models.RunPartial, result.State)
	assert.Equal(t, models.StepRunCampaign, result.Step)
}

func TestExecuteCompleteCampaignFlow_NonCriticalFailuresBecomeWarnings(t *testing.T) {
	f := newFakeBackend(t)
	f.failOn(http.MethodPost, campaignPath("/recipients"), http.StatusInternalServerError)
	f.failOn(http.MethodPut, campaignPath("/gift-card"), http.StatusInternalServerError)
	f.failOn(http.MethodPatch, eventPath(), http.StatusInternalServerError)

	result := f.orchestrator(true).ExecuteCompleteCampaignFlow(context.Background(), runOpts(), fullSnapshot())

	require.True(t, result.Success)
	assert.True(t, result.Launched)
	assert.Len(t, result.Warnings(), 3)

	// Siblings of the failed configuration steps are unaffected
	landing, _ := result.StepResult(models.StepUpdateLandingPage)
	assert.Equal(t, models.StepOK, landing.Outcome)
	templates, _ := result.StepResult(models.StepUpdateEmailTemplates)
	assert.Equal(t, models.StepOK, templates.Outcome)
	giftCard, _ := result.StepResult(models.StepUpdateGiftCard)
	assert.Equal(t, models.StepWarning, giftCard.Outcome)
}

func TestExecuteCompleteCampaignFlow_ExistingCampaignSkipsCreate(t *testing.T) {
	f := newFakeBackend(t)
	snap := fullSnapshot()
	snap.CampaignID = testCampaignID

	result := f.orchestrator(false).ExecuteCompleteCampaignFlow(context.Background(), runOpts(), snap)

	require.True(t, result.Success)
	assert.False(t, f.called(http.MethodPost, campaignPath("")))
	created, ok := result.StepResult(models.StepCreateCampaign)
	require.True(t, ok)
	assert.Equal(t, models.StepSkipped, created.Outcome)
}

func TestExecuteCompleteCampaignFlow_ReportsProgress(t *testing.T) {
	f := newFakeBackend(t)

	var mu sync.Mutex
	var states []models.RunState
	steps := 0
	opts := runOpts()
	opts.Progress = func(p Progress) {
		mu.Lock()
		defer mu.Unlock()
		if p.Step != nil {
			steps++
			return
		}
		states = append(states, p.State)
	}

	result := f.orchestrator(true).ExecuteCompleteCampaignFlow(context.Background(), opts, fullSnapshot())

	require.True(t, result.Success)
	assert.Equal(t, []models.RunState{
		models.RunCreating,
		models.RunConfiguring,
		models.RunSelectingGifts,
		models.RunLaunching,
		models.RunLaunched,
	}, states)
	assert.Equal(t, len(result.Steps), steps)
}

func TestExecuteCompleteCampaignFlow_DoesNotMutateSnapshot(t *testing.T) {
	f := newFakeBackend(t)
	snap := fullSnapshot()
	snap.SelectedGiftMode = "multi"
	snap.SelectedGifts = []models.Gift{{ID: "g2"}, {ID: "g3"}}

	f.orchestrator(false).ExecuteCompleteCampaignFlow(context.Background(), runOpts(), snap)

	require.NotNil(t, snap.SelectedGift)
	assert.Equal(t, "g1", snap.SelectedGift.ID)
	assert.Len(t, snap.SelectedGifts, 2)
	assert.Empty(t, snap.CampaignID)
}

func TestExecuteBoothGiveawayFlow_Success(t *testing.T) {
	f := newFakeBackend(t)
	snap := fullSnapshot()
	snap.BoothCapacity = 150
	snap.Motion = "event_follow_up"

	result := f.orchestrator(true).ExecuteBoothGiveawayFlow(context.Background(), runOpts(), snap)

	require.True(t, result.Success, result.Error)
	assert.True(t, result.Launched)
	assert.Equal(t, testClaimLink, result.BoothGiveawayCTALink)
	assert.Equal(t, "Booth giveaway is live", result.Message)

	motion := f.callsTo(http.MethodPut, campaignPath("/motion"))
	require.Len(t, motion, 1)
	assert.Equal(t, BoothGiveawayMotion, motion[0].Body["motion"])

	details := f.callsTo(http.MethodPut, campaignPath(""))
	require.Len(t, details, 1)
	assert.EqualValues(t, 150, details[0].Body["recipientCount"])

	assert.False(t, f.called(http.MethodPost, campaignPath("/run")))
}

func TestExecuteBoothGiveawayFlow_RunFailureIsFatal(t *testing.T) {
	f := newFakeBackend(t)
	f.failOn(http.MethodPut, "/v1/organizations/"+testOrg+"/campaignsNew/"+testCampaignID+"/run", http.StatusInternalServerError)

	result := f.orchestrator(true).ExecuteBoothGiveawayFlow(context.Background(), runOpts(), fullSnapshot())

	assert.False(t, result.Success)
	assert.False(t, result.PartialSuccess)
	assert.Equal(t, models.RunFailed, result.State)
	assert.Equal(t, models.StepRunCampaign, result.Step)
	assert.Empty(t, result.BoothGiveawayCTALink)
}

func TestSaveDraft(t *testing.T) {
	f := newFakeBackend(t)

	result := f.orchestrator(false).SaveDraft(context.Background(), runOpts(), fullSnapshot())

	require.True(t, result.Success)
	assert.True(t, result.Draft)
	assert.False(t, result.Launched)
	assert.Equal(t, models.RunSaved, result.State)
	assert.Equal(t, testCampaignID, result.CampaignID)

	assert.False(t, f.called(http.MethodPost, campaignPath("/run")))
	assert.False(t, f.called(http.MethodPost, campaignPath("/gifts/single-gift")))

	updates := f.callsTo(http.MethodPut, campaignPath(""))
	require.Len(t, updates, 2)
	intent := updates[1].Body
	assert.Equal(t, "draft", intent["status"])
	selection, ok := intent["giftSelection"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, string(models.GiftModeManual), selection["mode"])
}

func TestExecute_ObserverPanicDoesNotAbortRun(t *testing.T) {
	f := newFakeBackend(t)
	opts := runOpts()
	opts.Progress = func(p Progress) {
		if p.State == models.RunSelectingGifts {
			panic("observer exploded")
		}
	}

	result := f.orchestrator(false).Execute(context.Background(), models.FlowStandard, opts, fullSnapshot())

	assert.True(t, result.Success)
	assert.True(t, f.called(http.MethodPost, campaignPath("/run")))
}
