package calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/pkg/schedule"
)

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Token(context.Context, string) (string, error) { return f.token, f.err }

type fakeLister struct {
	events []Event
	err    error
}

func (f *fakeLister) ListEvents(context.Context, string, time.Time, time.Time) ([]Event, error) {
	return f.events, f.err
}

func TestProviderEvents(t *testing.T) {
	from := time.Date(2025, 12, 17, 0, 0, 0, 0, kst)
	to := from.AddDate(0, 0, 1)

	t.Run("no credentials means empty calendar", func(t *testing.T) {
		p := NewProvider(&fakeLister{err: errors.New("should not be called")},
			&fakeTokens{err: ErrNoCredentials}, kst)
		events, err := p.Events(context.Background(), "u1", from, to)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("rejected token means empty calendar", func(t *testing.T) {
		p := NewProvider(&fakeLister{err: fmt.Errorf("list: %w", ErrUnauthorized)},
			&fakeTokens{token: "stale"}, kst)
		events, err := p.Events(context.Background(), "u1", from, to)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		p := NewProvider(&fakeLister{err: errors.New("connection reset")},
			&fakeTokens{token: "tok"}, kst)
		_, err := p.Events(context.Background(), "u1", from, to)
		assert.Error(t, err)
	})
}

func TestProviderFreeSlots(t *testing.T) {
	day := time.Date(2025, 12, 17, 0, 0, 0, 0, kst)
	lister := &fakeLister{events: []Event{
		{ID: "e1", Summary: "점심", Start: day.Add(12 * time.Hour), End: day.Add(13 * time.Hour)},
		{ID: "e2", Summary: "회의", Start: day.Add(15 * time.Hour), End: day.Add(17 * time.Hour)},
	}}
	p := NewProvider(lister, &fakeTokens{token: "tok"}, kst)
	p.now = func() time.Time { return day.Add(-24 * time.Hour) }

	free, err := p.FreeSlots(context.Background(), "u1", day, day.AddDate(0, 0, 1), 2*time.Hour)
	require.NoError(t, err)
	require.Len(t, free, 3)
	assert.Equal(t, day.Add(9*time.Hour), free[0].Start)
	assert.Equal(t, day.Add(12*time.Hour), free[0].End)
	assert.Equal(t, day.Add(13*time.Hour), free[1].Start)
	assert.Equal(t, day.Add(15*time.Hour), free[1].End)
	assert.Equal(t, day.Add(17*time.Hour), free[2].Start)
	assert.Equal(t, day.Add(22*time.Hour), free[2].End)
}

func TestBusyIntervals(t *testing.T) {
	day := time.Date(2025, 12, 17, 0, 0, 0, 0, kst)
	events := []Event{
		{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
		{Start: day, End: day.AddDate(0, 0, 1), AllDay: true},
		{Start: day.Add(9 * time.Hour), End: day.Add(9 * time.Hour)}, // zero length, dropped
	}
	busy := BusyIntervals(events)
	require.Len(t, busy, 2)
	assert.Equal(t, schedule.TimeSlot{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)}, busy[0])
}
