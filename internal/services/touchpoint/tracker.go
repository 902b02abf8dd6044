package touchpoint

import (
	"context"
	"sync"

	"github.com/onegreenvn/gifting-campaign-service/internal/config"
	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/backend"
	"github.com/sirupsen/logrus"
)

// BrowsingContext is what the recipient's browser tells us about itself
type BrowsingContext struct {
	UserAgent string
	Host      string
}

// ContextSource is read at emission time so every event captures its own context
type ContextSource func() BrowsingContext

// Tracker sends touchpoint events to the recipient timeline
type Tracker struct {
	client *backend.Client
	wg     sync.WaitGroup
}

// NewTracker creates a tracker posting to the timeline API behind client
func NewTracker(client *backend.Client) *Tracker {
	return &Tracker{client: client}
}

// LogTouchpoint enriches event with the browsing context and posts it. Failures
// are logged and reported through the return value only; it never panics.
func (t *Tracker) LogTouchpoint(ctx context.Context, source ContextSource, event models.TouchpointEvent) (delivered bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.Errorf("Touchpoint %s panicked: %v", event.TouchpointType, recovered)
			delivered = false
		}
	}()

	enriched := Enrich(event, readContext(source))

	_, err := t.client.Do(ctx, backend.Session{}, backend.Request{
		Route: config.RouteRecipientTimeline,
		Body:  enriched,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"touchpoint_type": event.TouchpointType,
			"recipient_id":    event.RecipientID,
			"campaign_id":     event.CampaignID,
		}).Warnf("Failed to log touchpoint: %v", err)
		return false
	}
	return true
}

// Emit logs event in the background. The caller never waits; the attempt
// itself always runs to completion (see Wait).
func (t *Tracker) Emit(ctx context.Context, source ContextSource, event models.TouchpointEvent) {
	// The context is read now, on the caller's goroutine
	browsing := readContext(source)
	ctx = context.WithoutCancel(ctx)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.LogTouchpoint(ctx, func() BrowsingContext { return browsing }, event)
	}()
}

func readContext(source ContextSource) (browsing BrowsingContext) {
	if source == nil {
		return browsing
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.Warnf("Reading browsing context panicked: %v", recovered)
			browsing = BrowsingContext{}
		}
	}()
	return source()
}

// Wait blocks until every emitted touchpoint has been attempted
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Enrich returns a copy of event whose touchpointData elements carry user agent,
// source host and device type. Metadata supplied by the caller always wins.
func Enrich(event models.TouchpointEvent, browsing BrowsingContext) models.TouchpointEvent {
	deviceType := GetDeviceType(browsing.UserAgent)

	enriched := event
	enriched.TouchpointData = make([]models.TouchpointData, len(event.TouchpointData))
	for i, item := range event.TouchpointData {
		metadata := models.TouchpointMetadata{}
		if item.Metadata != nil {
			metadata = *item.Metadata
		}
		if metadata.UserAgent == "" {
			metadata.UserAgent = browsing.UserAgent
		}
		if metadata.Source == "" {
			metadata.Source = browsing.Host
		}
		if metadata.DeviceType == "" {
			metadata.DeviceType = deviceType
		}

		data := item.Data
		if data == nil {
			data = map[string]interface{}{}
		}
		enriched.TouchpointData[i] = models.TouchpointData{Data: data, Metadata: &metadata}
	}
	return enriched
}

// Emitter binds a tracker to one browsing context source and exposes the
// typed touchpoint helpers
type Emitter struct {
	tracker *Tracker
	source  ContextSource
}

// For returns an emitter reading its browsing context from source
func (t *Tracker) For(source ContextSource) *Emitter {
	return &Emitter{tracker: t, source: source}
}

// Emit sends one touchpoint of kind in the background
func (e *Emitter) Emit(ctx context.Context, kind models.TouchpointType, recipientID, campaignID string, data map[string]interface{}) {
	e.tracker.Emit(ctx, e.source, newEvent(kind, recipientID, campaignID, data))
}

// Log sends one touchpoint of kind and waits for the attempt
func (e *Emitter) Log(ctx context.Context, kind models.TouchpointType, recipientID, campaignID string, data map[string]interface{}) bool {
	return e.tracker.LogTouchpoint(ctx, e.source, newEvent(kind, recipientID, campaignID, data))
}

func newEvent(kind models.TouchpointType, recipientID, campaignID string, data map[string]interface{}) models.TouchpointEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	return models.TouchpointEvent{
		RecipientID:    recipientID,
		CampaignID:     campaignID,
		TouchpointType: kind,
		TouchpointData: []models.TouchpointData{{Data: data}},
	}
}
