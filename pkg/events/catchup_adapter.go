package events

import (
	"context"

	"github.com/moim-labs/moim/ent"
)

// eventQuerier is the subset of EventService the adapter needs.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error)
}

// EventServiceAdapter adapts the persistence-layer EventService to the
// CatchupQuerier interface so ConnectionManager never sees ent rows, only
// the bus's own CatchupEvent shape.
type EventServiceAdapter struct {
	querier eventQuerier
}

// NewEventServiceAdapter wraps an EventService (or anything with
// GetEventsSince) for catchup queries.
func NewEventServiceAdapter(querier eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{querier: querier}
}

// GetCatchupEvents implements CatchupQuerier by mapping event rows to
// CatchupEvents.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := a.querier.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	events := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, CatchupEvent{
			ID:      row.ID,
			Payload: row.Payload,
		})
	}
	return events, nil
}
