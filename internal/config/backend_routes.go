package config

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// BackendRoute is one endpoint of the gifting backend REST API
type BackendRoute struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Route names used by the campaign steps and the touchpoint tracker
const (
	RouteCreateCampaign          = "create_campaign"
	RouteUpdateCampaign          = "update_campaign"
	RouteUpdateMotion            = "update_motion"
	RouteAddRecipients           = "add_recipients"
	RouteUpdateLandingPageConfig = "update_landing_page_config"
	RouteUpdateGiftCard          = "update_gift_card"
	RouteUpdateEmailTemplates    = "update_email_templates"
	RouteGiftsSmartMatch         = "gifts_smart_match"
	RouteGiftsRecipientsChoice   = "gifts_recipients_choice"
	RouteGiftsSingleGift         = "gifts_single_gift"
	RouteRunCampaign             = "run_campaign"
	RouteRunBoothCampaign        = "run_booth_campaign"
	RouteGetEvent                = "get_event"
	RoutePatchEvent              = "patch_event"
	RouteRecipientTimeline       = "recipient_timeline"
)

var backendRoutes = map[string]BackendRoute{
	// Campaign lifecycle
	RouteCreateCampaign: {http.MethodPost, "/v1/organizations/{org}/campaigns"},
	RouteUpdateCampaign: {http.MethodPut, "/v1/organizations/{org}/campaigns/{campaign_id}"},
	RouteRunCampaign:    {http.MethodPost, "/v1/organizations/{org}/campaigns/{campaign_id}/run"},
	RouteRunBoothCampaign: {
		http.MethodPut, "/v1/organizations/{org}/campaignsNew/{campaign_id}/run",
	},

	// Campaign-scoped configuration
	RouteUpdateMotion:            {http.MethodPut, "/v1/organizations/{org}/campaigns/{campaign_id}/motion"},
	RouteAddRecipients:           {http.MethodPost, "/v1/organizations/{org}/campaigns/{campaign_id}/recipients"},
	RouteUpdateLandingPageConfig: {http.MethodPut, "/v1/organizations/{org}/campaigns/{campaign_id}/landing-page-config"},
	RouteUpdateGiftCard:          {http.MethodPut, "/v1/organizations/{org}/campaigns/{campaign_id}/gift-card"},
	RouteUpdateEmailTemplates:    {http.MethodPut, "/v1/organizations/{org}/campaigns/{campaign_id}/email-templates"},

	// Gift catalog assignment, one per gift mode
	RouteGiftsSmartMatch:       {http.MethodPut, "/v1/organizations/{org}/campaigns/{campaign_id}/gifts/smart-match"},
	RouteGiftsRecipientsChoice: {http.MethodPut, "/v1/organizations/{org}/campaigns/{campaign_id}/gifts/recipients-choice"},
	RouteGiftsSingleGift:       {http.MethodPost, "/v1/organizations/{org}/campaigns/{campaign_id}/gifts/single-gift"},

	// Events
	RouteGetEvent:   {http.MethodGet, "/v1/organizations/{org}/events/{event_id}"},
	RoutePatchEvent: {http.MethodPatch, "/v1/organizations/{org}/events/{event_id}"},

	// Touchpoint ingestion
	RouteRecipientTimeline: {http.MethodPost, "/v1/recipient-timeline"},
}

// GetBackendRoute returns the route registered under name
func GetBackendRoute(name string) (BackendRoute, error) {
	route, exists := backendRoutes[name]
	if !exists {
		return BackendRoute{}, fmt.Errorf("backend route '%s' not found", name)
	}
	return route, nil
}

// RouteURL constructs the full URL for a named route, replacing {placeholders}
// with path-escaped values from params
func RouteURL(baseURL, name string, params map[string]string) (BackendRoute, string, error) {
	route, err := GetBackendRoute(name)
	if err != nil {
		return BackendRoute{}, "", err
	}

	path := route.Path
	for key, value := range params {
		path = strings.ReplaceAll(path, "{"+key+"}", url.PathEscape(value))
	}
	if strings.Contains(path, "{") {
		return BackendRoute{}, "", fmt.Errorf("backend route '%s' has unresolved placeholders: %s", name, path)
	}

	return route, strings.TrimRight(baseURL, "/") + path, nil
}
