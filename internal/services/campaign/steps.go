package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/config"
	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/backend"
	"github.com/sirupsen/logrus"
)

// Skip reasons reported by steps with nothing to do
const (
	ReasonNoMotion           = "No motion selected"
	ReasonNoRecipients       = "No recipients to add"
	ReasonNoLandingPage      = "No landing page configuration"
	ReasonNoGiftCard         = "No gift card configured"
	ReasonNoEmailTemplates   = "No email templates configured"
	ReasonEventNotApplicable = "Not applicable for this campaign type"
	ReasonNoGiftSelected     = "No gift selected"
)

// Steps performs the atomic backend operations of a campaign launch.
// Each method issues exactly one logical backend call.
type Steps struct {
	client *backend.Client
}

// NewSteps creates the step functions over a backend client
func NewSteps(client *backend.Client) *Steps {
	return &Steps{client: client}
}

// CreateCampaignInput is the payload of the create step
type CreateCampaignInput struct {
	Name        string
	Description string
	Goal        string
	Source      string
}

// CreateCampaign creates the campaign and returns its id. It is the one step
// whose failure always aborts the flow.
func (s *Steps) CreateCampaign(ctx context.Context, session backend.Session, in CreateCampaignInput, idempotencyKey string) (string, error) {
	source := in.Source
	if source == "" {
		source = "campaign-designer"
	}

	resp, err := s.client.Do(ctx, session, backend.Request{
		Route: config.RouteCreateCampaign,
		Body: map[string]interface{}{
			"name":        in.Name,
			"description": in.Description,
			"goal":        MapGoal(in.Goal),
			"source":      source,
		},
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return "", stepError(models.StepCreateCampaign, err)
	}

	campaignID := backend.FirstString(resp.Body, "campaign_id", "campaignId", "_id", "id")
	if campaignID == "" {
		return "", stepError(models.StepCreateCampaign, ErrNoCampaignID)
	}
	return campaignID, nil
}

// DetailsInput is the full-field update applied after creation
type DetailsInput struct {
	Snapshot        models.DesignerSnapshot
	Mode            models.GiftMode
	RecipientCount  int
	PerRecipientMax float64
}

// BudgetBreakdown is the budget sent with the details update
type BudgetBreakdown struct {
	Total        float64 `json:"total"`
	PerRecipient float64 `json:"perRecipient"`
	Currency     string  `json:"currency"`
}

// ComputeBudget derives the budget for mode. Hyper-personalized campaigns
// spend up to perRecipientMax for each recipient; other modes take the
// draft's total as entered.
func ComputeBudget(mode models.GiftMode, budgetTotal, giftCost, perRecipientMax float64, recipientCount int) BudgetBreakdown {
	if mode == models.GiftModeHyperPersonalize {
		return BudgetBreakdown{
			Total:        perRecipientMax * float64(recipientCount),
			PerRecipient: perRecipientMax,
			Currency:     "USD",
		}
	}
	return BudgetBreakdown{Total: budgetTotal, PerRecipient: giftCost, Currency: "USD"}
}

// UpdateCampaignDetails performs the idempotent full-field update. Its success
// is required for the flow to proceed.
func (s *Steps) UpdateCampaignDetails(ctx context.Context, session backend.Session, campaignID string, in DetailsInput) (models.StepResult, error) {
	snap := in.Snapshot
	budget := ComputeBudget(in.Mode, snap.BudgetTotal, snap.GiftCost, in.PerRecipientMax, in.RecipientCount)

	body := map[string]interface{}{
		"name":              snap.CampaignName,
		"description":       snap.Description,
		"goal":              MapGoal(snap.Goal),
		"budget":            budget,
		"giftSelectionMode": in.Mode,
		"recipientCount":    in.RecipientCount,
	}
	if snap.ContactListID != "" {
		body["contactListId"] = snap.ContactListID
	}
	if snap.StartByDate != nil {
		body["startByDate"] = snap.StartByDate.UTC().Format(time.RFC3339)
	}
	if snap.DeliveryByDate != nil {
		body["deliveryByDate"] = snap.DeliveryByDate.UTC().Format(time.RFC3339)
	}
	if snap.CTALink != "" {
		body["ctaLink"] = snap.CTALink
	}

	_, err := s.client.Do(ctx, session, backend.Request{
		Route:  config.RouteUpdateCampaign,
		Params: map[string]string{"campaign_id": campaignID},
		Body:   body,
	})
	if err != nil {
		return models.Fatal(models.StepUpdateDetails, err), stepError(models.StepUpdateDetails, err)
	}

	return models.Ok(models.StepUpdateDetails, models.JSON{
		"recipientCount": in.RecipientCount,
		"budgetTotal":    budget.Total,
	}), nil
}

// UpdateMotion sets the campaign's motion tag; never fatal
func (s *Steps) UpdateMotion(ctx context.Context, session backend.Session, campaignID, motion string) models.StepResult {
	if motion == "" {
		return models.Skipped(models.StepUpdateMotion, ReasonNoMotion)
	}

	_, err := s.client.Do(ctx, session, backend.Request{
		Route:  config.RouteUpdateMotion,
		Params: map[string]string{"campaign_id": campaignID},
		Body:   map[string]interface{}{"motion": motion},
	})
	if err != nil {
		return s.warn(models.StepUpdateMotion, campaignID, err)
	}
	return models.Ok(models.StepUpdateMotion, models.JSON{"motion": motion})
}

// AddRecipients attaches contacts to the campaign. Failure is downgraded to a
// warning; recipient attachment never aborts a launch.
func (s *Steps) AddRecipients(ctx context.Context, session backend.Session, campaignID string, contactIDs []string) models.StepResult {
	if len(contactIDs) == 0 {
		return models.Skipped(models.StepAddRecipients, ReasonNoRecipients)
	}

	_, err := s.client.Do(ctx, session, backend.Request{
		Route:  config.RouteAddRecipients,
		Params: map[string]string{"campaign_id": campaignID},
		Body:   map[string]interface{}{"contactIds": contactIDs},
	})
	if err != nil {
		return s.warn(models.StepAddRecipients, campaignID, err)
	}
	return models.Ok(models.StepAddRecipients, models.JSON{"added": len(contactIDs)})
}

// UpdateLandingPageConfig stores the landing page configuration when present
func (s *Steps) UpdateLandingPageConfig(ctx context.Context, session backend.Session, campaignID string, cfg models.JSON) models.StepResult {
	return s.passThrough(ctx, session, models.StepUpdateLandingPage, config.RouteUpdateLandingPageConfig,
		campaignID, "landingPageConfig", cfg, ReasonNoLandingPage)
}

// UpdateGiftCard stores the outcome card when present
func (s *Steps) UpdateGiftCard(ctx context.Context, session backend.Session, campaignID string, card models.JSON) models.StepResult {
	return s.passThrough(ctx, session, models.StepUpdateGiftCard, config.RouteUpdateGiftCard,
		campaignID, "giftCard", card, ReasonNoGiftCard)
}

// UpdateEmailTemplates stores the email templates when present
func (s *Steps) UpdateEmailTemplates(ctx context.Context, session backend.Session, campaignID string, templates models.JSON) models.StepResult {
	return s.passThrough(ctx, session, models.StepUpdateEmailTemplates, config.RouteUpdateEmailTemplates,
		campaignID, "emailTemplates", templates, ReasonNoEmailTemplates)
}

func (s *Steps) passThrough(ctx context.Context, session backend.Session, step models.StepID, route, campaignID, field string, value models.JSON, skipReason string) models.StepResult {
	if len(value) == 0 {
		return models.Skipped(step, skipReason)
	}

	_, err := s.client.Do(ctx, session, backend.Request{
		Route:  route,
		Params: map[string]string{"campaign_id": campaignID},
		Body:   map[string]interface{}{field: value},
	})
	if err != nil {
		return s.warn(step, campaignID, err)
	}
	return models.Ok(step, nil)
}

// UpdateEventWithCampaignID links the campaign to its event. It reads the
// event's campaignIds, adds campaignID if absent and writes the whole array
// back, so repeating it never duplicates an entry. An unreadable event is
// treated as having no linked campaigns.
func (s *Steps) UpdateEventWithCampaignID(ctx context.Context, session backend.Session, campaignID, goal, eventID string) models.StepResult {
	if !IsEventGoal(goal) || eventID == "" {
		return models.Skipped(models.StepUpdateEventLink, ReasonEventNotApplicable)
	}

	params := map[string]string{"event_id": eventID}

	var existing []string
	resp, err := s.client.Do(ctx, session, backend.Request{Route: config.RouteGetEvent, Params: params})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"event_id":    eventID,
			"campaign_id": campaignID,
		}).Warnf("Failed to read event, assuming no linked campaigns: %v", err)
	} else {
		existing = eventCampaignIDs(resp.Body)
	}

	campaignIDs := appendUnique(existing, campaignID)

	_, err = s.client.Do(ctx, session, backend.Request{
		Route:  config.RoutePatchEvent,
		Params: params,
		Body:   map[string]interface{}{"campaignIds": campaignIDs},
	})
	if err != nil {
		return s.warn(models.StepUpdateEventLink, campaignID, err)
	}
	return models.Ok(models.StepUpdateEventLink, models.JSON{"campaignIds": toInterfaces(campaignIDs)})
}

func eventCampaignIDs(body map[string]interface{}) []string {
	if ids := backend.GetStringSlice(body, "campaignIds"); ids != nil {
		return ids
	}
	if data := backend.GetMap(body, "data"); data != nil {
		if ids := backend.GetStringSlice(data, "campaignIds"); ids != nil {
			return ids
		}
		if event := backend.GetMap(data, "event"); event != nil {
			return backend.GetStringSlice(event, "campaignIds")
		}
	}
	return nil
}

// appendUnique returns ids de-duplicated with id added once
func appendUnique(ids []string, id string) []string {
	seen := make(map[string]bool, len(ids)+1)
	out := make([]string, 0, len(ids)+1)
	for _, existing := range append(append([]string(nil), ids...), id) {
		if existing == "" || seen[existing] {
			continue
		}
		seen[existing] = true
		out = append(out, existing)
	}
	return out
}

// ExecuteGiftSelection assigns gifts through the endpoint of the resolved mode;
// never fatal
func (s *Steps) ExecuteGiftSelection(ctx context.Context, session backend.Session, campaignID string, selection models.GiftSelection, snapshot models.DesignerSnapshot) models.StepResult {
	mode := selection.Mode
	if mode == "" {
		mode = ResolveGiftMode(snapshot)
	}

	assignment := resolveGiftAssignment(mode, selection, snapshot)
	if mode != models.GiftModeHyperPersonalize && len(assignment.SelectedGift) == 0 && assignment.CatalogID == "" {
		return models.Skipped(models.StepGiftSelection, ReasonNoGiftSelected)
	}

	route := config.RouteGiftsSingleGift
	switch mode {
	case models.GiftModeHyperPersonalize:
		route = config.RouteGiftsSmartMatch
	case models.GiftModeMulti:
		route = config.RouteGiftsRecipientsChoice
	}

	_, err := s.client.Do(ctx, session, backend.Request{
		Route:  route,
		Params: map[string]string{"campaign_id": campaignID},
		Body:   assignment,
	})
	if err != nil {
		return s.warn(models.StepGiftSelection, campaignID, err)
	}
	return models.Ok(models.StepGiftSelection, models.JSON{
		"mode":         string(mode),
		"catalogId":    assignment.CatalogID,
		"selectedGift": toInterfaces(assignment.SelectedGift),
	})
}

// PersistGiftSelectionIntent records the gift choice on the campaign without
// assigning gifts to recipients; used when saving drafts
func (s *Steps) PersistGiftSelectionIntent(ctx context.Context, session backend.Session, campaignID string, selection models.GiftSelection, snapshot models.DesignerSnapshot) models.StepResult {
	mode := selection.Mode
	if mode == "" {
		mode = ResolveGiftMode(snapshot)
	}
	assignment := resolveGiftAssignment(mode, selection, snapshot)

	intent := map[string]interface{}{
		"mode":            mode,
		"catalogId":       assignment.CatalogID,
		"selectedGiftIds": assignment.SelectedGift,
	}
	if selection.PerRecipientMax > 0 {
		intent["perRecipientMax"] = selection.PerRecipientMax
	}

	_, err := s.client.Do(ctx, session, backend.Request{
		Route:  config.RouteUpdateCampaign,
		Params: map[string]string{"campaign_id": campaignID},
		Body:   map[string]interface{}{"giftSelection": intent, "status": "draft"},
	})
	if err != nil {
		return s.warn(models.StepGiftSelection, campaignID, err)
	}
	return models.Ok(models.StepGiftSelection, models.JSON{"mode": string(mode), "draft": true})
}

// RunCampaign launches a standard campaign
func (s *Steps) RunCampaign(ctx context.Context, session backend.Session, campaignID string) error {
	_, err := s.client.Do(ctx, session, backend.Request{
		Route:  config.RouteRunCampaign,
		Params: map[string]string{"campaign_id": campaignID},
	})
	if err != nil {
		return stepError(models.StepRunCampaign, err)
	}
	return nil
}

// RunBoothCampaign launches a booth giveaway and returns its claim link
func (s *Steps) RunBoothCampaign(ctx context.Context, session backend.Session, campaignID string) (string, string, error) {
	resp, err := s.client.Do(ctx, session, backend.Request{
		Route:  config.RouteRunBoothCampaign,
		Params: map[string]string{"campaign_id": campaignID},
	})
	if err != nil {
		return "", "", stepError(models.StepRunCampaign, err)
	}

	link := backend.FirstString(resp.Body, "boothGiveawayCTALink")
	if link == "" {
		return "", "", stepError(models.StepRunCampaign, fmt.Errorf("booth launch returned no claim link"))
	}
	return link, backend.FirstString(resp.Body, "message"), nil
}

func (s *Steps) warn(step models.StepID, campaignID string, err error) models.StepResult {
	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"step":        step,
	}).Warnf("%s failed, continuing: %v", step.Name(), err)
	return models.Warning(step, err.Error())
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
