package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/config"
	"github.com/sirupsen/logrus"
)

// Session carries the caller identity forwarded to the gifting backend
type Session struct {
	OrganizationID string
	AuthToken      string
}

// Request describes one call against a named backend route
type Request struct {
	Route          string
	Params         map[string]string
	Body           interface{}
	IdempotencyKey string
}

// Response is a decoded backend response
type Response struct {
	StatusCode int
	Body       map[string]interface{}
	Raw        []byte
}

// APIError is returned for non-2xx backend responses
type APIError struct {
	Route      string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gifting API %s returned status %d: %s", e.Route, e.StatusCode, e.Message)
}

// Client wraps the gifting backend REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client; a zero timeout leaves requests unbounded
// except by the caller's context
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP creates a backend client around an existing http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// BaseURL returns the API base the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs req on behalf of session. The organization id is substituted for
// the {org} placeholder unless req.Params already sets it.
func (c *Client) Do(ctx context.Context, session Session, req Request) (*Response, error) {
	params := map[string]string{"org": session.OrganizationID}
	for key, value := range req.Params {
		params[key] = value
	}

	route, apiURL, err := config.RouteURL(c.baseURL, req.Route, params)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s request: %w", req.Route, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, route.Method, apiURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if session.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+session.AuthToken)
	}
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gifting API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"route":   req.Route,
		"method":  route.Method,
		"status":  resp.StatusCode,
		"latency": time.Since(start),
	}).Debug("Gifting API call completed")

	decoded := map[string]interface{}{}
	if len(bytes.TrimSpace(raw)) > 0 {
		// Non-object bodies are kept in Raw only
		_ = json.Unmarshal(raw, &decoded)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Route:      req.Route,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(decoded, raw),
		}
	}

	return &Response{StatusCode: resp.StatusCode, Body: decoded, Raw: raw}, nil
}

func errorMessage(body map[string]interface{}, raw []byte) string {
	for _, key := range []string{"message", "error"} {
		if msg := GetString(body, key); msg != "" {
			return msg
		}
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return "empty response"
}
