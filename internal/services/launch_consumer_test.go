package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/onegreenvn/gifting-campaign-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessLaunchMessage(t *testing.T) {
	runner := &fakeRunner{result: launched}
	service, store, _ := newTestService(runner)
	publisher := &fakePublisher{}
	service.SetPublisher(publisher, "campaign_launches")
	consumer := NewLaunchConsumer(nil, service, "campaign_launches")

	run, _, err := service.Enqueue(context.Background(), launchInput("key-1"))
	require.NoError(t, err)
	body, err := json.Marshal(publisher.jobs[0])
	require.NoError(t, err)

	require.NoError(t, consumer.processLaunchMessage(body))
	stored, err := store.GetByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunLaunched, stored.State)
}

func TestProcessLaunchMessage_Rejects(t *testing.T) {
	service, _, _ := newTestService(&fakeRunner{result: launched})
	consumer := NewLaunchConsumer(nil, service, "campaign_launches")

	assert.Error(t, consumer.processLaunchMessage([]byte(`not json`)))
	assert.Error(t, consumer.processLaunchMessage([]byte(`{"type":"something_else","run_id":"r1"}`)))
	assert.Error(t, consumer.processLaunchMessage([]byte(`{"type":"campaign_launch"}`)))
}

func TestSSEHub_RegisterAndUnregister(t *testing.T) {
	hub := NewSSEHub()
	client := hub.RegisterClient(EntityLaunchRun, "run_1")
	assert.Equal(t, 1, hub.GetClientCount(EntityLaunchRun, "run_1"))

	hub.SendHeartbeat(EntityLaunchRun, "run_1")
	assert.Contains(t, string(<-client), ": heartbeat")

	hub.BroadcastResult(&models.LaunchRun{ID: "run_1", OrganizationID: "org_1"}, &models.FlowResult{State: models.RunSaved, Draft: true})
	assert.Contains(t, string(<-client), `"state":"SAVED"`)

	hub.UnregisterClient(EntityLaunchRun, "run_1", client)
	assert.Equal(t, 0, hub.GetClientCount(EntityLaunchRun, "run_1"))
	_, open := <-client
	assert.False(t, open)
}
