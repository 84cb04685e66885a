package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moim-labs/moim/pkg/schedule"
)

// EventLister is the slice of Client the provider needs.
type EventLister interface {
	ListEvents(ctx context.Context, token string, from, to time.Time) ([]Event, error)
}

// TokenProvider is the slice of TokenSource the provider needs.
type TokenProvider interface {
	Token(ctx context.Context, userID string) (string, error)
}

// Provider reads one user's events and derives availability. Agents cache
// the results per session; the provider itself is stateless.
type Provider struct {
	lister EventLister
	tokens TokenProvider
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

// NewProvider creates an availability provider.
func NewProvider(lister EventLister, tokens TokenProvider, loc *time.Location) *Provider {
	return &Provider{
		lister: lister,
		tokens: tokens,
		loc:    loc,
		now:    time.Now,
		logger: slog.Default().With("component", "availability"),
	}
}

// Events returns the user's raw events in [from, to). A user without usable
// credentials (missing, refresh-failed, or rejected token) yields an empty
// list — fully free downstream — rather than an error.
func (p *Provider) Events(ctx context.Context, userID string, from, to time.Time) ([]Event, error) {
	token, err := p.tokens.Token(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNoCredentials) {
			p.logger.Info("User has no calendar credentials, treating as fully free", "user_id", userID)
			return nil, nil
		}
		return nil, fmt.Errorf("get token for %s: %w", userID, err)
	}

	events, err := p.lister.ListEvents(ctx, token, from, to)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			p.logger.Warn("Calendar rejected token, treating user as fully free", "user_id", userID)
			return nil, nil
		}
		return nil, fmt.Errorf("list events for %s: %w", userID, err)
	}
	return events, nil
}

// BusySlots converts the user's events to merged busy intervals.
func (p *Provider) BusySlots(ctx context.Context, userID string, from, to time.Time) ([]schedule.TimeSlot, error) {
	events, err := p.Events(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return schedule.MergeBusy(BusyIntervals(events)), nil
}

// FreeSlots returns the user's free slots within working hours of [from, to).
func (p *Provider) FreeSlots(ctx context.Context, userID string, from, to time.Time, minDur time.Duration) ([]schedule.TimeSlot, error) {
	busy, err := p.BusySlots(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return schedule.FreeSlots(busy, from.In(p.loc), to.In(p.loc), minDur, p.now().In(p.loc)), nil
}

// BusyIntervals maps events to their busy spans. All-day events already
// carry civil-day bounds.
func BusyIntervals(events []Event) []schedule.TimeSlot {
	busy := make([]schedule.TimeSlot, 0, len(events))
	for _, ev := range events {
		if !ev.Start.Before(ev.End) {
			continue
		}
		busy = append(busy, schedule.TimeSlot{Start: ev.Start, End: ev.End})
	}
	return busy
}
