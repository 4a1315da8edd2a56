package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/finovant/macaw/ent"
)

// eventQuerier is the slice of services.EventService the adapter needs.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup
// mechanism. Rows whose stored payload fails to parse are skipped (logged);
// one corrupt envelope must not break a whole catchup.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	events, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, 0, len(events))
	for _, evt := range events {
		var payload map[string]any
		if err := json.Unmarshal([]byte(evt.Payload), &payload); err != nil {
			slog.Warn("Skipping unparseable stored event",
				"event_id", evt.ID, "channel", channel, "error", err)
			continue
		}
		result = append(result, CatchupEvent{ID: evt.ID, Payload: payload})
	}
	return result, nil
}
