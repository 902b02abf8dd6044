package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/onegreenvn/gifting-campaign-service/internal/services/campaign"
	"github.com/sirupsen/logrus"
)

// Entity types streamed through the hub
const (
	EntityLaunchRun    = "launch_run"
	EntityOrganization = "organization"
)

// SSEHub manages Server-Sent Events connections for launch run progress
type SSEHub struct {
	// Key format: "entity_type:entity_id"
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

// RegisterClient registers a new SSE client for an entity
func (h *SSEHub) RegisterClient(entityType, entityID string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := fmt.Sprintf("%s:%s", entityType, entityID)
	clientChan := make(chan []byte, 32)

	if h.clients[key] == nil {
		h.clients[key] = make(map[chan []byte]bool)
	}
	h.clients[key][clientChan] = true

	logrus.Infof("SSE client registered for %s (total clients: %d)", key, len(h.clients[key]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(entityType, entityID string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := fmt.Sprintf("%s:%s", entityType, entityID)
	if h.clients[key] != nil {
		if _, ok := h.clients[key][clientChan]; ok {
			delete(h.clients[key], clientChan)
			close(clientChan)
		}

		if len(h.clients[key]) == 0 {
			delete(h.clients, key)
		}
	}

	logrus.Infof("SSE client unregistered for %s (remaining clients: %d)", key, len(h.clients[key]))
}

// RunEvent is the payload streamed for a launch run
type RunEvent struct {
	RunID          string             `json:"runId"`
	OrganizationID string             `json:"organizationId"`
	State          models.RunState    `json:"state"`
	Step           *models.StepResult `json:"step,omitempty"`
	Result         *models.FlowResult `json:"result,omitempty"`
	Timestamp      time.Time          `json:"timestamp"`
}

// BroadcastProgress sends a state change or step result to the run's subscribers
// and to subscribers of the run's organization
func (h *SSEHub) BroadcastProgress(run *models.LaunchRun, progress campaign.Progress) {
	h.broadcast(run, "progress", RunEvent{
		RunID:          run.ID,
		OrganizationID: run.OrganizationID,
		State:          progress.State,
		Step:           progress.Step,
		Timestamp:      progress.Timestamp,
	})
}

// BroadcastResult sends the final flow result of a run
func (h *SSEHub) BroadcastResult(run *models.LaunchRun, result *models.FlowResult) {
	h.broadcast(run, "result", RunEvent{
		RunID:          run.ID,
		OrganizationID: run.OrganizationID,
		State:          result.State,
		Result:         result,
		Timestamp:      time.Now(),
	})
}

func (h *SSEHub) broadcast(run *models.LaunchRun, event string, payload RunEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	runKey := fmt.Sprintf("%s:%s", EntityLaunchRun, run.ID)
	orgKey := fmt.Sprintf("%s:%s", EntityOrganization, run.OrganizationID)
	if len(h.clients[runKey]) == 0 && len(h.clients[orgKey]) == 0 {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logrus.Errorf("Failed to marshal %s event for SSE: %v", event, err)
		return
	}
	message := []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event, string(data)))

	h.broadcastToKeyLocked(runKey, message)
	h.broadcastToKeyLocked(orgKey, message)
}

// broadcastToKeyLocked sends message to clients of key (assumes lock is already held)
func (h *SSEHub) broadcastToKeyLocked(key string, message []byte) {
	for clientChan := range h.clients[key] {
		select {
		case clientChan <- message:
		default:
			logrus.Warnf("SSE client channel full, skipping: %s", key)
		}
	}
}

// GetClientCount returns the number of clients for a specific entity
func (h *SSEHub) GetClientCount(entityType, entityID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	key := fmt.Sprintf("%s:%s", entityType, entityID)
	if clients, exists := h.clients[key]; exists {
		return len(clients)
	}
	return 0
}

// SendHeartbeat sends a heartbeat message to keep connection alive
func (h *SSEHub) SendHeartbeat(entityType, entityID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	key := fmt.Sprintf("%s:%s", entityType, entityID)
	heartbeat := []byte(fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339)))
	for clientChan := range h.clients[key] {
		select {
		case clientChan <- heartbeat:
		default:
		}
	}
}
