// Package schedule implements the civil-time core of the coordinator:
// half-open time slots, busy-interval merging, working-hour free-slot
// computation, meeting proposals, and Korean date/time expression parsing.
//
// All slot arithmetic is done in a caller-supplied *time.Location; the
// service default is Asia/Seoul.
package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Working hours: free slots are only emitted inside [09:00, 22:00) of each
// civil day.
const (
	WorkdayStartHour = 9
	WorkdayEndHour   = 22
)

// DefaultDurationMinutes is used when a request or proposal carries no
// explicit duration.
const DefaultDurationMinutes = 120

// TimeSlot is a half-open interval [Start, End). Invariant: Start < End.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewTimeSlot validates the Start < End invariant.
func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, fmt.Errorf("invalid time slot: start %s is not before end %s", start, end)
	}
	return TimeSlot{Start: start, End: end}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Start.Before(o.End) && s.End.After(o.Start)
}

// ContainsInstant reports whether t falls inside [Start, End).
func (s TimeSlot) ContainsInstant(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

// ContainsSlot reports whether o lies entirely inside s.
func (s TimeSlot) ContainsSlot(o TimeSlot) bool {
	return !o.Start.Before(s.Start) && !o.End.After(s.End)
}

// Duration returns End - Start.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsZero reports whether the slot is the zero value.
func (s TimeSlot) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// MergeBusy coalesces overlapping or touching busy intervals.
// The input is not modified; the result is sorted by start.
func MergeBusy(busy []TimeSlot) []TimeSlot {
	if len(busy) == 0 {
		return nil
	}
	sorted := make([]TimeSlot, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	merged := []TimeSlot{sorted[0]}
	for _, b := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !b.Start.After(last.End) {
			if b.End.After(last.End) {
				last.End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// FreeSlots subtracts the busy intervals from [from, to), clipped to working
// hours per civil day, and returns the gaps of at least minDur, sorted by
// start. Slots starting at or before now are dropped on now's civil day.
func FreeSlots(busy []TimeSlot, from, to time.Time, minDur time.Duration, now time.Time) []TimeSlot {
	if !from.Before(to) {
		return nil
	}
	if minDur <= 0 {
		minDur = time.Minute
	}
	merged := MergeBusy(busy)
	loc := from.Location()

	var free []TimeSlot
	for day := startOfDay(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		winStart := time.Date(day.Year(), day.Month(), day.Day(), WorkdayStartHour, 0, 0, 0, loc)
		winEnd := time.Date(day.Year(), day.Month(), day.Day(), WorkdayEndHour, 0, 0, 0, loc)
		if winStart.Before(from) {
			winStart = from
		}
		if winEnd.After(to) {
			winEnd = to
		}
		if !winStart.Before(winEnd) {
			continue
		}

		cursor := winStart
		for _, b := range merged {
			if !b.End.After(cursor) {
				continue
			}
			if !b.Start.Before(winEnd) {
				break
			}
			if b.Start.After(cursor) {
				gapEnd := b.Start
				if gapEnd.After(winEnd) {
					gapEnd = winEnd
				}
				appendIfUsable(&free, TimeSlot{Start: cursor, End: gapEnd}, minDur, now)
			}
			if b.End.After(cursor) {
				cursor = b.End
			}
			if !cursor.Before(winEnd) {
				break
			}
		}
		if cursor.Before(winEnd) {
			appendIfUsable(&free, TimeSlot{Start: cursor, End: winEnd}, minDur, now)
		}
	}
	return free
}

func appendIfUsable(free *[]TimeSlot, s TimeSlot, minDur time.Duration, now time.Time) {
	if s.Duration() < minDur {
		return
	}
	if sameCivilDay(s.Start, now) && !s.Start.After(now) {
		return
	}
	*free = append(*free, s)
}

// DayBusy reports whether any busy interval touches the civil day containing t.
// Used for multi-day proposals where every covered day must be entirely free.
func DayBusy(busy []TimeSlot, t time.Time) bool {
	day := startOfDay(t)
	window := TimeSlot{Start: day, End: day.AddDate(0, 0, 1)}
	for _, b := range busy {
		if b.Overlaps(window) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameCivilDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
