// Package agent implements the per-participant decision kernel of the
// negotiation protocol. One PersonalAgent exists per (user, session); it
// caches the user's availability for the session horizon and produces
// PROPOSE/ACCEPT/COUNTER/NEED_HUMAN decisions against that cache.
//
// The decision is always chosen by code. The LLM writes prose only, with the
// already-made decision injected as fact, and every prose path has a
// deterministic Korean fallback — all negotiation scenarios must hold with
// the model unreachable.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

// DefaultHorizonDays bounds how far ahead an agent looks when the session
// carries no explicit time window.
const DefaultHorizonDays = 14

// AvailabilitySource supplies one user's raw calendar events.
// *calendar.Provider satisfies it; a user without usable credentials yields
// an empty list (fully free), never an error.
type AvailabilitySource interface {
	Events(ctx context.Context, userID string, from, to time.Time) ([]calendar.Event, error)
}

// ProseWriter is the completion slice the agent needs for prose generation.
// llm.Client satisfies it.
type ProseWriter interface {
	Complete(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error)
}

// Participant identifies one negotiation party.
type Participant struct {
	UserID      string
	DisplayName string
}

// PersonalAgent negotiates on behalf of one user within one session.
//
// An agent is driven from a single goroutine (the session executor or the
// chat orchestrator); it is not safe for concurrent use.
type PersonalAgent struct {
	user      Participant
	sessionID string

	source AvailabilitySource
	prose  ProseWriter
	masker *masking.Service
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger

	// horizon is the half-open window availability is cached for.
	horizon schedule.TimeSlot
	// durationMinutes is the session's meeting length; free slots shorter
	// than this are unusable and never cached.
	durationMinutes int

	loaded    bool
	rawEvents []calendar.Event
	busy      []schedule.TimeSlot
	free      []schedule.TimeSlot
}

// New creates an agent for one participant of one session. A zero window
// selects the default horizon [today 00:00, today+DefaultHorizonDays); a zero
// durationMinutes selects schedule.DefaultDurationMinutes.
func New(sessionID string, user Participant, source AvailabilitySource, prose ProseWriter, masker *masking.Service, loc *time.Location, window schedule.TimeSlot, durationMinutes int) *PersonalAgent {
	if durationMinutes <= 0 {
		durationMinutes = schedule.DefaultDurationMinutes
	}
	a := &PersonalAgent{
		user:            user,
		sessionID:       sessionID,
		source:          source,
		prose:           prose,
		masker:          masker,
		loc:             loc,
		now:             time.Now,
		durationMinutes: durationMinutes,
		logger: slog.Default().With(
			"component", "agent",
			"session_id", sessionID,
			"user_id", user.UserID),
	}
	a.horizon = window
	return a
}

// EnsureAvailability loads and caches the user's events for the horizon.
// Subsequent calls are no-ops; the cache is a consistent snapshot for the
// whole negotiation, so mid-session calendar edits are deliberately not seen.
func (a *PersonalAgent) EnsureAvailability(ctx context.Context) error {
	if a.loaded {
		return nil
	}

	now := a.now().In(a.loc)
	if a.horizon.IsZero() {
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)
		a.horizon = schedule.TimeSlot{Start: start, End: start.AddDate(0, 0, DefaultHorizonDays)}
	}

	events, err := a.source.Events(ctx, a.user.UserID, a.horizon.Start, a.horizon.End)
	if err != nil {
		return fmt.Errorf("load availability for %s: %w", a.user.UserID, err)
	}

	a.rawEvents = events
	a.busy = schedule.MergeBusy(calendar.BusyIntervals(events))
	a.free = schedule.FreeSlots(a.busy, a.horizon.Start, a.horizon.End, a.minDuration(), now)
	a.loaded = true

	a.logger.Info("Availability cached",
		"events", len(a.rawEvents),
		"busy_intervals", len(a.busy),
		"free_slots", len(a.free),
		"horizon_start", schedule.FormatDate(a.horizon.Start),
		"horizon_end", schedule.FormatDate(a.horizon.End))
	return nil
}

// User returns the participant this agent acts for.
func (a *PersonalAgent) User() Participant {
	return a.user
}

// FreeSlots returns the cached free slots. Callers must not modify the slice.
func (a *PersonalAgent) FreeSlots() []schedule.TimeSlot {
	return a.free
}

// BusySlots returns the cached merged busy intervals. Callers must not
// modify the slice.
func (a *PersonalAgent) BusySlots() []schedule.TimeSlot {
	return a.busy
}

// Events returns the cached raw events. Callers must not modify the slice.
func (a *PersonalAgent) Events() []calendar.Event {
	return a.rawEvents
}

// AvailabilityAt reports whether the proposal's target works for this user,
// with the blocking event attached when it does not. The engine aggregates
// these into disambiguation snapshots; the conflict detail is only ever
// shown to this agent's own user.
func (a *PersonalAgent) AvailabilityAt(ctx context.Context, p schedule.Proposal) (models.ParticipantAvailability, error) {
	if err := a.EnsureAvailability(ctx); err != nil {
		return models.ParticipantAvailability{}, err
	}
	check, err := a.checkProposal(p)
	if err != nil {
		return models.ParticipantAvailability{}, err
	}
	return models.ParticipantAvailability{
		UserID:       a.user.UserID,
		DisplayName:  a.user.DisplayName,
		IsAvailable:  check.ok,
		ConflictInfo: check.conflict,
	}, nil
}

// proposalCheck is the outcome of testing one proposal against the cache.
type proposalCheck struct {
	ok       bool
	target   schedule.TimeSlot
	conflict *models.ConflictInfo
}

// checkProposal tests the proposal against the cached availability. A
// single-day proposal is available iff a free slot contains its whole target
// slot; a multi-day proposal iff every covered civil day has no busy
// interval at all.
func (a *PersonalAgent) checkProposal(p schedule.Proposal) (proposalCheck, error) {
	if p.IsMultiDay() {
		span, err := p.NightsSpan(a.loc)
		if err != nil {
			return proposalCheck{}, err
		}
		for day := span.Start; day.Before(span.End); day = day.AddDate(0, 0, 1) {
			if schedule.DayBusy(a.busy, day) {
				return proposalCheck{target: span, conflict: a.conflictOn(schedule.TimeSlot{Start: day, End: day.AddDate(0, 0, 1)})}, nil
			}
		}
		return proposalCheck{ok: true, target: span}, nil
	}

	target, err := p.TargetSlot(a.loc)
	if err != nil {
		return proposalCheck{}, err
	}
	for _, s := range a.free {
		if s.ContainsSlot(target) {
			return proposalCheck{ok: true, target: target}, nil
		}
	}
	return proposalCheck{target: target, conflict: a.conflictOn(target)}, nil
}

// conflictOn returns the first cached event overlapping the window. A target
// can be unavailable without a named conflict (outside working hours, in the
// past); the conflict is then nil.
func (a *PersonalAgent) conflictOn(window schedule.TimeSlot) *models.ConflictInfo {
	for _, ev := range a.rawEvents {
		if ev.Start.Before(window.End) && ev.End.After(window.Start) {
			return &models.ConflictInfo{
				EventSummary: ev.Summary,
				Start:        ev.Start.In(a.loc).Format("2006-01-02 15:04"),
				End:          ev.End.In(a.loc).Format("2006-01-02 15:04"),
			}
		}
	}
	return nil
}

// conflictTitles collects the event names the masker must redact from prose.
func conflictTitles(infos ...*models.ConflictInfo) []string {
	var titles []string
	for _, info := range infos {
		if info != nil && info.EventSummary != "" {
			titles = append(titles, info.EventSummary)
		}
	}
	return titles
}

func (a *PersonalAgent) minDuration() time.Duration {
	return time.Duration(a.durationMinutes) * time.Minute
}
