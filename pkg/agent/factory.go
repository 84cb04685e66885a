package agent

import (
	"time"

	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/schedule"
)

// Factory mints PersonalAgents. It holds the long-lived dependencies so the
// engine and the chat orchestrator only supply per-session parameters.
type Factory struct {
	source      AvailabilitySource
	prose       ProseWriter
	masker      *masking.Service
	loc         *time.Location
	horizonDays int
}

// NewFactory creates an agent factory. horizonDays <= 0 selects
// DefaultHorizonDays.
func NewFactory(source AvailabilitySource, prose ProseWriter, masker *masking.Service, loc *time.Location, horizonDays int) *Factory {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return &Factory{
		source:      source,
		prose:       prose,
		masker:      masker,
		loc:         loc,
		horizonDays: horizonDays,
	}
}

// Agent creates the agent for one participant of one session. A zero window
// selects the factory's default horizon.
func (f *Factory) Agent(sessionID string, user Participant, window schedule.TimeSlot, durationMinutes int) *PersonalAgent {
	if window.IsZero() {
		window = f.Window(time.Now())
	}
	return New(sessionID, user, f.source, f.prose, f.masker, f.loc, window, durationMinutes)
}

// Window computes the availability window for a session: [today 00:00,
// today+horizonDays), stretched to cover any stated target day plus one day
// of slack so counters have room around it.
func (f *Factory) Window(now time.Time, targets ...time.Time) schedule.TimeSlot {
	now = now.In(f.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.loc)
	end := start.AddDate(0, 0, f.horizonDays)
	for _, t := range targets {
		if t.IsZero() {
			continue
		}
		if edge := t.In(f.loc).AddDate(0, 0, 2); edge.After(end) {
			end = time.Date(edge.Year(), edge.Month(), edge.Day(), 0, 0, 0, 0, f.loc)
		}
	}
	return schedule.TimeSlot{Start: start, End: end}
}

// Location returns the zone all of the factory's agents reason in.
func (f *Factory) Location() *time.Location {
	return f.loc
}
