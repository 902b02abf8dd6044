package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDo_ForwardsSessionAndBody(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
		gotHeader http.Header
		gotBody   map[string]interface{}
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotMethod = r.Method
		gotHeader = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"campaign_id":"cmp_1"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	resp, err := client.Do(context.Background(), Session{OrganizationID: "org_1", AuthToken: "tok"}, Request{
		Route:          config.RouteCreateCampaign,
		Body:           map[string]string{"name": "Q3"},
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1/organizations/org_1/campaigns", gotPath)
	assert.Equal(t, "Bearer tok", gotHeader.Get("Authorization"))
	assert.Equal(t, "key-1", gotHeader.Get("Idempotency-Key"))
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "Q3", gotBody["name"])

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cmp_1", FirstString(resp.Body, "campaignId", "campaign_id", "_id"))
}

func TestClientDo_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"budget exceeds limit"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Do(context.Background(), Session{OrganizationID: "org_1"}, Request{
		Route:  config.RouteRunCampaign,
		Params: map[string]string{"campaign_id": "cmp_1"},
	})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "budget exceeds limit", apiErr.Message)
}

func TestClientDo_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, 0).Do(context.Background(), Session{}, Request{Route: config.RouteRecipientTimeline})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Message, "bad gateway")
}

func TestClientDo_UnknownRoute(t *testing.T) {
	_, err := NewClient("http://localhost", 0).Do(context.Background(), Session{}, Request{Route: "missing"})
	assert.Error(t, err)
}

func TestExtractHelpers(t *testing.T) {
	body := map[string]interface{}{
		"id":      "",
		"tags":    []interface{}{"a", 1, "", "b"},
		"nested":  map[string]interface{}{"k": "v"},
		"numeric": 3.0,
	}
	assert.Equal(t, "", GetString(body, "numeric"))
	assert.Equal(t, []string{"a", "b"}, GetStringSlice(body, "tags"))
	assert.Equal(t, "v", GetString(GetMap(body, "nested"), "k"))
	assert.Nil(t, GetMap(body, "tags"))
	assert.Equal(t, "", FirstString(body, "id", "missing"))
}
