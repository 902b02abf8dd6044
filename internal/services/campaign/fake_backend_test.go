package campaign

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/backend"
)

const (
	testOrg        = "org_1"
	testCampaignID = "cmp_1"
	testEventID    = "ev_1"
	testClaimLink  = "https://claim.example.com/b/cmp_1"
)

type recordedCall struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]interface{}
}

// fakeBackend is an in-process gifting API recording every call
type fakeBackend struct {
	mu               sync.Mutex
	calls            []recordedCall
	failures         map[string]int
	eventCampaignIDs []string
	server           *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{failures: map[string]int{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func campaignPath(suffix string) string {
	path := "/v1/organizations/" + testOrg + "/campaigns"
	if suffix != "" {
		path += "/" + testCampaignID + suffix
	}
	return path
}

func eventPath() string {
	return "/v1/organizations/" + testOrg + "/events/" + testEventID
}

// failOn makes method+path answer with status
func (f *fakeBackend) failOn(method, path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = status
}

func (f *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: body})
	status, failing := f.failures[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if failing {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"message": "backend unavailable"})
		return
	}

	var response interface{} = map[string]interface{}{"success": true}
	switch {
	case r.Method == http.MethodPost && r.URL.Path == campaignPath(""):
		response = map[string]interface{}{"data": map[string]interface{}{"campaign_id": testCampaignID}}
	case r.Method == http.MethodGet && r.URL.Path == eventPath():
		f.mu.Lock()
		response = map[string]interface{}{"campaignIds": f.eventCampaignIDs}
		f.mu.Unlock()
	case r.Method == http.MethodPatch && r.URL.Path == eventPath():
		var ids []string
		if raw, ok := body["campaignIds"].([]interface{}); ok {
			for _, id := range raw {
				ids = append(ids, id.(string))
			}
		}
		f.mu.Lock()
		f.eventCampaignIDs = ids
		f.mu.Unlock()
	case r.Method == http.MethodPut && strings.Contains(r.URL.Path, "/campaignsNew/"):
		response = map[string]interface{}{"boothGiveawayCTALink": testClaimLink, "message": "Booth giveaway is live"}
	}
	_ = json.NewEncoder(w).Encode(response)
}

func (f *fakeBackend) callsTo(method, path string) []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedCall
	for _, call := range f.calls {
		if call.Method == method && call.Path == path {
			out = append(out, call)
		}
	}
	return out
}

func (f *fakeBackend) called(method, path string) bool {
	return len(f.callsTo(method, path)) > 0
}

func (f *fakeBackend) steps() *Steps {
	return NewSteps(backend.NewClient(f.server.URL, 5*time.Second))
}

func (f *fakeBackend) orchestrator(parallel bool) *Orchestrator {
	return NewOrchestrator(f.steps(), parallel)
}

func testSession() backend.Session {
	return backend.Session{OrganizationID: testOrg, AuthToken: "tok_123"}
}

func fullSnapshot() models.DesignerSnapshot {
	return models.DesignerSnapshot{
		CampaignName: "Q3 pipeline push",
		Goal:         "drive-event",
		EventID:      testEventID,
		Motion:       "event_follow_up",
		BudgetTotal:  500,
		GiftCost:     50,
		SelectedContacts: []models.Contact{
			{ID: "c1"},
			{ID: "c2"},
			{Email: "no-id@example.com"},
		},
		SelectedGift:      &models.Gift{ID: "g1", CatalogID: "cat_1"},
		LandingPageConfig: models.JSON{"headline": "A gift for you"},
		OutcomeCard:       models.JSON{"title": "Thank you"},
		EmailTemplates:    models.JSON{"invite": "Hello {{name}}"},
	}
}
