package agent

import (
	"context"
	"strings"
	"time"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/schedule"
)

// ProposalRequest carries what the human actually asked for. Date and Time
// accept both normalized forms ("2025-12-17", "18:00") and Korean
// expressions ("내일", "오후 6시"); Utterance supplies the surrounding text
// for bare-hour AM/PM inference.
type ProposalRequest struct {
	Date            string
	Time            string
	Activity        string
	Location        string
	DurationMinutes int
	DurationNights  int
	Utterance       string
}

// MakeInitialProposal produces the opening PROPOSE for the session's
// initiator.
//
// The human's stated slot is authoritative: a concrete date+time is proposed
// verbatim even when it conflicts with the initiator's own calendar — the
// conflict is logged and attached for the owner, never auto-shifted. With a
// date only, the earliest free slot of that day is picked; with a time
// preference only, the first slot within two hours of the preferred hour;
// with neither, the first free slot. An initiator with no free slots in the
// whole horizon cannot negotiate and escalates immediately.
func (a *PersonalAgent) MakeInitialProposal(ctx context.Context, req ProposalRequest) Decision {
	if err := a.EnsureAvailability(ctx); err != nil {
		a.logger.Error("Availability load failed, escalating", "error", err)
		return a.needHuman(ctx, reasonCalendarUnavailable)
	}
	if len(a.free) == 0 {
		a.logger.Warn("Initiator has no free slots in horizon, escalating")
		return a.needHuman(ctx, a.reasonNoAvailability())
	}

	day, hasDate := a.resolveDate(req.Date)
	hour, minute, hasTime := a.resolveTime(req.Time, req.Utterance+" "+req.Activity)

	p := schedule.Proposal{
		Activity:        req.Activity,
		Location:        req.Location,
		DurationMinutes: req.DurationMinutes,
		DurationNights:  req.DurationNights,
	}

	if req.DurationNights > 0 {
		return a.proposeNights(ctx, p, day, hasDate)
	}

	switch {
	case hasDate && hasTime:
		p.Date = schedule.FormatDate(day)
		p.Time = schedule.FormatClock(time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, a.loc))
	case hasDate:
		start, ok := a.earliestStartOn(day)
		if !ok {
			// stated day fully booked — fall back to the nearest slot anywhere
			anchor := time.Date(day.Year(), day.Month(), day.Day(), schedule.WorkdayStartHour, 0, 0, 0, a.loc)
			slot, found := nearestByStart(a.free, anchor, time.Time{})
			if !found {
				return a.needHuman(ctx, a.reasonNoAvailability())
			}
			a.logger.Info("No free slot on stated date, proposing nearest alternative",
				"stated_date", schedule.FormatDate(day),
				"proposed", schedule.FormatDate(slot.Start))
			start = slot.Start
		}
		p.Date = schedule.FormatDate(start)
		p.Time = schedule.FormatClock(start)
	case hasTime:
		start, ok := a.startNearHour(hour, minute)
		if !ok {
			start = a.free[0].Start
		}
		p.Date = schedule.FormatDate(start)
		p.Time = schedule.FormatClock(start)
	default:
		start := a.free[0].Start
		p.Date = schedule.FormatDate(start)
		p.Time = schedule.FormatClock(start)
	}

	check, err := a.checkProposal(p)
	if err != nil {
		a.logger.Error("Initial proposal did not parse back", "error", err, "date", p.Date, "time", p.Time)
		return a.needHuman(ctx, reasonBadProposal)
	}
	if !check.ok {
		summary := ""
		if check.conflict != nil {
			summary = check.conflict.EventSummary
		}
		a.logger.Info("Stated slot conflicts with own calendar, keeping the user's choice",
			"date", p.Date, "time", p.Time, "conflict_summary", summary)
	}

	msg := a.writeProse(ctx, proseFacts{
		kind:           negotiationmessage.TypePropose,
		proposal:       &p,
		conflictTitles: conflictTitles(check.conflict),
	})
	return Decision{Type: negotiationmessage.TypePropose, Proposal: &p, Conflict: check.conflict, Message: msg}
}

// proposeNights anchors a multi-day proposal. A stated date is kept verbatim
// (same authority rule as single-day); without one, the earliest span of
// fully free days is used.
func (a *PersonalAgent) proposeNights(ctx context.Context, p schedule.Proposal, day time.Time, hasDate bool) Decision {
	if !hasDate {
		start, ok := a.earliestFreeSpan(p.DurationNights)
		if !ok {
			a.logger.Warn("No free span for multi-day proposal, escalating", "nights", p.DurationNights)
			return a.needHuman(ctx, a.reasonNoAvailability())
		}
		day = start
	}
	p.Date = schedule.FormatDate(day)
	p.Time = ""

	check, err := a.checkProposal(p)
	if err != nil {
		return a.needHuman(ctx, reasonBadProposal)
	}
	if !check.ok && check.conflict != nil {
		a.logger.Info("Stated span conflicts with own calendar, keeping the user's choice",
			"date", p.Date, "nights", p.DurationNights, "conflict_summary", check.conflict.EventSummary)
	}

	msg := a.writeProse(ctx, proseFacts{
		kind:           negotiationmessage.TypePropose,
		proposal:       &p,
		conflictTitles: conflictTitles(check.conflict),
	})
	return Decision{Type: negotiationmessage.TypePropose, Proposal: &p, Conflict: check.conflict, Message: msg}
}

// resolveDate accepts "2006-01-02" or a Korean date expression.
func (a *PersonalAgent) resolveDate(expr string) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}
	if d, err := schedule.ParseDate(expr, a.loc); err == nil {
		return d, true
	}
	if d, ok := schedule.ParseDateExpression(expr, a.now().In(a.loc)); ok {
		return d, true
	}
	a.logger.Warn("Unparseable date expression, ignoring", "expr", expr)
	return time.Time{}, false
}

// resolveTime accepts "15:04", bare hours, and Korean time expressions.
// Bare 12-hour figures get the contextual AM/PM rule.
func (a *PersonalAgent) resolveTime(expr, context string) (hour, minute int, ok bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, 0, false
	}
	evening := schedule.HasEveningContext(expr) || schedule.HasEveningContext(context)
	if h, m, ok := schedule.ParseTimeExpression(expr, evening); ok {
		return h, m, true
	}
	h, m, err := schedule.ParseClock(expr)
	if err != nil {
		a.logger.Warn("Unparseable time expression, ignoring", "expr", expr)
		return 0, 0, false
	}
	if !strings.Contains(expr, ":") && h >= 1 && h <= 12 {
		h = schedule.InferMeridiem(h, evening)
	}
	return h, m, true
}

// earliestStartOn returns the start of the first free slot on day's civil day.
func (a *PersonalAgent) earliestStartOn(day time.Time) (time.Time, bool) {
	for _, s := range a.free {
		if sameDay(s.Start, day) {
			return s.Start, true
		}
	}
	return time.Time{}, false
}

// startNearHour finds the first free slot that can host a meeting near the
// preferred hour: an exact on-the-hour start inside the slot when it fits,
// otherwise a slot already starting within two hours of it.
func (a *PersonalAgent) startNearHour(hour, minute int) (time.Time, bool) {
	dur := a.minDuration()
	for _, s := range a.free {
		exact := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), hour, minute, 0, 0, a.loc)
		if !exact.Before(s.Start) && !exact.Add(dur).After(s.End) {
			return exact, true
		}
		if diff := s.Start.Hour() - hour; diff >= -2 && diff <= 2 {
			return s.Start, true
		}
	}
	return time.Time{}, false
}

// earliestFreeSpan returns the first day in the horizon starting a run of
// nights+1 civil days with no busy interval.
func (a *PersonalAgent) earliestFreeSpan(nights int) (time.Time, bool) {
	days := nights + 1
	for day := a.horizon.Start; !day.AddDate(0, 0, days).After(a.horizon.End); day = day.AddDate(0, 0, 1) {
		if a.spanFree(day, days) {
			return day, true
		}
	}
	return time.Time{}, false
}

func (a *PersonalAgent) spanFree(start time.Time, days int) bool {
	for i := 0; i < days; i++ {
		if schedule.DayBusy(a.busy, start.AddDate(0, 0, i)) {
			return false
		}
	}
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
