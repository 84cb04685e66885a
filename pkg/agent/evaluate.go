package agent

import (
	"context"
	"time"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/schedule"
)

// EvaluateProposal decides this user's answer to another agent's proposal.
//
// The outcome is chosen entirely by the cached availability: a target any
// busy interval overlaps is countered, never accepted, regardless of what
// the model says. COUNTER picks the best alternative — same-day free slots
// ranked by |slot.Start − target|, then the globally nearest. No usable
// alternative, or any internal failure, escalates with NEED_HUMAN; the agent
// never silently accepts.
func (a *PersonalAgent) EvaluateProposal(ctx context.Context, p schedule.Proposal) Decision {
	if err := a.EnsureAvailability(ctx); err != nil {
		a.logger.Error("Availability load failed, escalating", "error", err)
		return a.needHuman(ctx, reasonCalendarUnavailable)
	}

	check, err := a.checkProposal(p)
	if err != nil {
		a.logger.Error("Proposal did not parse, escalating", "error", err, "date", p.Date, "time", p.Time)
		return a.needHuman(ctx, reasonBadProposal)
	}

	if check.ok {
		msg := a.writeProse(ctx, proseFacts{
			kind:     negotiationmessage.TypeAccept,
			proposal: &p,
		})
		return Decision{Type: negotiationmessage.TypeAccept, Proposal: &p, Message: msg}
	}

	alt, ok := a.bestAlternative(p, check.target)
	if !ok {
		a.logger.Warn("No alternative slot for counter, escalating",
			"date", p.Date, "time", p.Time)
		return a.needHuman(ctx, reasonNoAlternative)
	}

	a.logger.Info("Countering unavailable proposal",
		"proposed_date", p.Date, "proposed_time", p.Time,
		"counter_date", alt.Date, "counter_time", alt.Time)

	msg := a.writeProse(ctx, proseFacts{
		kind:           negotiationmessage.TypeCounter,
		proposal:       &alt,
		original:       &p,
		conflictTitles: conflictTitles(check.conflict),
	})
	return Decision{Type: negotiationmessage.TypeCounter, Proposal: &alt, Conflict: check.conflict, Message: msg}
}

// bestAlternative derives the counter-proposal for an unavailable target.
// The counter keeps the original's activity, location, and duration; only
// the slot moves.
func (a *PersonalAgent) bestAlternative(p schedule.Proposal, target schedule.TimeSlot) (schedule.Proposal, bool) {
	alt := p

	if p.IsMultiDay() {
		day, ok := a.nearestFreeSpan(target.Start, p.DurationNights)
		if !ok {
			return schedule.Proposal{}, false
		}
		alt.Date = schedule.FormatDate(day)
		return alt, true
	}

	sameDaySlots := make([]schedule.TimeSlot, 0, len(a.free))
	for _, s := range a.free {
		if sameDay(s.Start, target.Start) {
			sameDaySlots = append(sameDaySlots, s)
		}
	}

	best, ok := nearestByStart(sameDaySlots, target.Start, target.Start)
	if !ok {
		best, ok = nearestByStart(a.free, target.Start, target.Start)
	}
	if !ok {
		return schedule.Proposal{}, false
	}

	alt.Date = schedule.FormatDate(best.Start)
	alt.Time = schedule.FormatClock(best.Start)
	return alt, true
}

// nearestFreeSpan finds the nights+1-day run of busy-free days whose start is
// closest to targetDay, preferring the later candidate on ties.
func (a *PersonalAgent) nearestFreeSpan(targetDay time.Time, nights int) (time.Time, bool) {
	days := nights + 1
	var best time.Time
	var bestDist time.Duration
	found := false
	for day := a.horizon.Start; !day.AddDate(0, 0, days).After(a.horizon.End); day = day.AddDate(0, 0, 1) {
		if sameDay(day, targetDay) || !a.spanFree(day, days) {
			continue
		}
		dist := absDuration(day.Sub(targetDay))
		if !found || dist < bestDist || (dist == bestDist && day.After(best)) {
			best, bestDist, found = day, dist, true
		}
	}
	return best, found
}

// nearestByStart picks the slot whose start is closest to target, preferring
// the later one on ties. A slot starting exactly at skip is excluded so a
// counter can never restate the slot it is countering.
func nearestByStart(slots []schedule.TimeSlot, target, skip time.Time) (schedule.TimeSlot, bool) {
	var best schedule.TimeSlot
	var bestDist time.Duration
	found := false
	for _, s := range slots {
		if s.Start.Equal(skip) {
			continue
		}
		dist := absDuration(s.Start.Sub(target))
		if !found || dist < bestDist || (dist == bestDist && s.Start.After(best.Start)) {
			best, bestDist, found = s, dist, true
		}
	}
	return best, found
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
