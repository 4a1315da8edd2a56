package services

import (
	"context"
	"testing"
	"time"

	"github.com/finovant/macaw/pkg/models"
	testdb "github.com/finovant/macaw/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	t.Run("creates event successfully", func(t *testing.T) {
		evt, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			PlanID:  p.ID,
			Channel: "plan:" + p.ID,
			Payload: `{"type":"plan_created","data":{}}`,
		})
		require.NoError(t, err)
		assert.Equal(t, "plan:"+p.ID, evt.Channel)
		assert.Positive(t, evt.ID)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{Channel: "plans"})
		assert.True(t, IsValidationError(err))

		_, err = eventService.CreateEvent(ctx, models.CreateEventRequest{PlanID: p.ID})
		assert.True(t, IsValidationError(err))
	})
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")
	channel := "plan:" + p.ID

	evt1, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		PlanID: p.ID, Channel: channel, Payload: `{"seq":1}`,
	})
	require.NoError(t, err)
	evt2, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
		PlanID: p.ID, Channel: channel, Payload: `{"seq":2}`,
	})
	require.NoError(t, err)

	t.Run("retrieves events after ID", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt2.ID, events[0].ID)
	})

	t.Run("retrieves all events when sinceID is 0", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("respects limit", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt1.ID, events[0].ID, "oldest first")
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, "plans", 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 0)
	})
}

func TestEventService_CleanupPlanEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")
	for i := 0; i < 3; i++ {
		_, err := eventService.CreateEvent(ctx, models.CreateEventRequest{
			PlanID: p.ID, Channel: "plan:" + p.ID, Payload: `{}`,
		})
		require.NoError(t, err)
	}

	n, err := eventService.CleanupPlanEvents(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	events, err := eventService.GetEventsSince(ctx, "plan:"+p.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 0)
}

func TestEventService_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	ctx := context.Background()

	p := createTestPlan(t, client, "Check invoice payment status")

	// Create an event directly with an old created_at (bypassing the service).
	old := time.Now().Add(-8 * time.Hour)
	_, err := client.Event.Create().
		SetPlanID(p.ID).
		SetChannel("plan:" + p.ID).
		SetPayload(`{}`).
		SetCreatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	_, err = eventService.CreateEvent(ctx, models.CreateEventRequest{
		PlanID: p.ID, Channel: "plan:" + p.ID, Payload: `{"fresh":true}`,
	})
	require.NoError(t, err)

	n, err := eventService.DeleteOlderThan(ctx, 6*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	events, err := eventService.GetEventsSince(ctx, "plan:"+p.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "fresh events survive the sweep")
}
