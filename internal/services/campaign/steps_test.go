package campaign

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEventWithCampaignID_Idempotent(t *testing.T) {
	f := newFakeBackend(t)
	f.eventCampaignIDs = []string{"cmp_old"}
	steps := f.steps()

	first := steps.UpdateEventWithCampaignID(context.Background(), testSession(), testCampaignID, "drive-event", testEventID)
	second := steps.UpdateEventWithCampaignID(context.Background(), testSession(), testCampaignID, "drive-event", testEventID)

	assert.Equal(t, models.StepOK, first.Outcome)
	assert.Equal(t, models.StepOK, second.Outcome)
	assert.Equal(t, []string{"cmp_old", testCampaignID}, f.eventCampaignIDs)
}

func TestUpdateEventWithCampaignID_NotApplicable(t *testing.T) {
	f := newFakeBackend(t)
	steps := f.steps()

	tests := []struct {
		name    string
		goal    string
		eventID string
	}{
		{"other goal", "delight-customers", testEventID},
		{"no event selected", "drive-event", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := steps.UpdateEventWithCampaignID(context.Background(), testSession(), testCampaignID, tt.goal, tt.eventID)
			assert.Equal(t, models.StepSkipped, result.Outcome)
			assert.Equal(t, ReasonEventNotApplicable, result.Message)
		})
	}
	assert.False(t, f.called(http.MethodGet, eventPath()))
	assert.False(t, f.called(http.MethodPatch, eventPath()))
}

func TestUpdateEventWithCampaignID_UnreadableEvent(t *testing.T) {
	f := newFakeBackend(t)
	f.eventCampaignIDs = []string{"cmp_old"}
	f.failOn(http.MethodGet, eventPath(), http.StatusNotFound)

	result := f.steps().UpdateEventWithCampaignID(context.Background(), testSession(), testCampaignID, GoalDriveEvent, testEventID)

	assert.Equal(t, models.StepOK, result.Outcome)
	assert.Equal(t, []string{testCampaignID}, f.eventCampaignIDs)
}

func TestAddRecipients_SkipsEmptyList(t *testing.T) {
	f := newFakeBackend(t)

	result := f.steps().AddRecipients(context.Background(), testSession(), testCampaignID, nil)

	assert.Equal(t, models.StepSkipped, result.Outcome)
	assert.False(t, f.called(http.MethodPost, campaignPath("/recipients")))
}

func TestCreateCampaign_MissingID(t *testing.T) {
	f := newFakeBackend(t)
	// Any successful response without an id
	f.failOn(http.MethodPost, campaignPath(""), http.StatusOK)

	_, err := f.steps().CreateCampaign(context.Background(), testSession(), CreateCampaignInput{Name: "x"}, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCampaignID))
	step, ok := StepOf(err)
	require.True(t, ok)
	assert.Equal(t, models.StepCreateCampaign, step)
}

func TestCreateCampaign_APIError(t *testing.T) {
	f := newFakeBackend(t)
	f.failOn(http.MethodPost, campaignPath(""), http.StatusUnprocessableEntity)

	_, err := f.steps().CreateCampaign(context.Background(), testSession(), CreateCampaignInput{Name: "x"}, "")

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "backend unavailable", apiErr.Message)
}

func TestExecuteGiftSelection_RoutesByMode(t *testing.T) {
	tests := []struct {
		name     string
		snapshot models.DesignerSnapshot
		path     string
		method   string
	}{
		{
			name:     "manual",
			snapshot: models.DesignerSnapshot{SelectedGift: &models.Gift{ID: "g1", CatalogID: "cat_1"}},
			path:     campaignPath("/gifts/single-gift"),
			method:   http.MethodPost,
		},
		{
			name:     "multi",
			snapshot: models.DesignerSnapshot{SelectedGifts: []models.Gift{{ID: "g1", CatalogID: "cat_1"}, {ID: "g2"}}},
			path:     campaignPath("/gifts/recipients-choice"),
			method:   http.MethodPut,
		},
		{
			name:     "hyper personalize",
			snapshot: models.DesignerSnapshot{HyperPersonalization: true, PerRecipientMax: 40},
			path:     campaignPath("/gifts/smart-match"),
			method:   http.MethodPut,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeBackend(t)
			selection := SyncGiftSelection(tt.snapshot)

			result := f.steps().ExecuteGiftSelection(context.Background(), testSession(), testCampaignID, selection, tt.snapshot)

			assert.Equal(t, models.StepOK, result.Outcome)
			assert.True(t, f.called(tt.method, tt.path))
		})
	}
}

func TestExecuteGiftSelection_NothingSelected(t *testing.T) {
	f := newFakeBackend(t)
	snapshot := models.DesignerSnapshot{}

	result := f.steps().ExecuteGiftSelection(context.Background(), testSession(), testCampaignID, SyncGiftSelection(snapshot), snapshot)

	assert.Equal(t, models.StepSkipped, result.Outcome)
	assert.Equal(t, ReasonNoGiftSelected, result.Message)
}

func TestComputeBudget(t *testing.T) {
	hyper := ComputeBudget(models.GiftModeHyperPersonalize, 999, 10, 25, 12)
	assert.Equal(t, 300.0, hyper.Total)
	assert.Equal(t, 25.0, hyper.PerRecipient)

	manual := ComputeBudget(models.GiftModeManual, 999, 10, 25, 12)
	assert.Equal(t, 999.0, manual.Total)
	assert.Equal(t, 10.0, manual.PerRecipient)
}

func TestRunBoothCampaign_MissingLink(t *testing.T) {
	f := newFakeBackend(t)
	// A 200 from the fail table carries no claim link
	f.failOn(http.MethodPut, "/v1/organizations/"+testOrg+"/campaignsNew/"+testCampaignID+"/run", http.StatusOK)

	_, _, err := f.steps().RunBoothCampaign(context.Background(), testSession(), testCampaignID)

	require.Error(t, err)
	step, _ := StepOf(err)
	assert.Equal(t, models.StepRunCampaign, step)
}

func TestAppendUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, appendUnique([]string{"a", "", "a"}, "b"))
	assert.Equal(t, []string{"a", "b"}, appendUnique([]string{"a", "b"}, "b"))
	assert.Equal(t, []string{"b"}, appendUnique(nil, "b"))
}
