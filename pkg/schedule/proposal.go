package schedule

import (
	"fmt"
	"time"
)

// Proposal is one concrete meeting suggestion exchanged between agents.
// Date is "2006-01-02"; Time is "15:04" and is unused when DurationNights > 0
// (a multi-day proposal spans whole civil days).
type Proposal struct {
	Date            string `json:"date"`
	Time            string `json:"time,omitempty"`
	Location        string `json:"location,omitempty"`
	Activity        string `json:"activity,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	DurationNights  int    `json:"duration_nights,omitempty"`
}

// IsMultiDay reports whether the proposal denotes an overnight span.
func (p Proposal) IsMultiDay() bool {
	return p.DurationNights > 0
}

// SameSlot compares the (date, time) pair only. Deadlock detection keys on
// this: two counters with equal SameSlot are "the same demand".
func (p Proposal) SameSlot(o Proposal) bool {
	return p.Date == o.Date && p.Time == o.Time
}

// TargetSlot resolves a single-day proposal to a concrete half-open slot in
// loc, applying the default duration when none is set.
func (p Proposal) TargetSlot(loc *time.Location) (TimeSlot, error) {
	day, err := ParseDate(p.Date, loc)
	if err != nil {
		return TimeSlot{}, err
	}
	hour, minute, err := ParseClock(p.Time)
	if err != nil {
		return TimeSlot{}, err
	}
	dur := p.DurationMinutes
	if dur <= 0 {
		dur = DefaultDurationMinutes
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	return TimeSlot{Start: start, End: start.Add(time.Duration(dur) * time.Minute)}, nil
}

// NightsSpan resolves a multi-day proposal to the civil-day span
// [date 00:00, date+nights+1 00:00).
func (p Proposal) NightsSpan(loc *time.Location) (TimeSlot, error) {
	day, err := ParseDate(p.Date, loc)
	if err != nil {
		return TimeSlot{}, err
	}
	if p.DurationNights <= 0 {
		return TimeSlot{}, fmt.Errorf("proposal %s has no nights", p.Date)
	}
	return TimeSlot{Start: day, End: day.AddDate(0, 0, p.DurationNights+1)}, nil
}

// DisplayKorean renders the proposal target for user-facing prose,
// e.g. "12월 17일 18:00" or "12월 19일부터 2박".
func (p Proposal) DisplayKorean(loc *time.Location) string {
	day, err := ParseDate(p.Date, loc)
	if err != nil {
		return p.Date + " " + p.Time
	}
	if p.IsMultiDay() {
		return fmt.Sprintf("%d월 %d일부터 %d박", int(day.Month()), day.Day(), p.DurationNights)
	}
	if p.Time == "" {
		return fmt.Sprintf("%d월 %d일", int(day.Month()), day.Day())
	}
	return fmt.Sprintf("%d월 %d일 %s", int(day.Month()), day.Day(), p.Time)
}

// ParseDate parses "2006-01-02" in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// ParseClock parses "15:04" (also accepts "15:4" and bare "15").
func ParseClock(s string) (hour, minute int, err error) {
	if s == "" {
		return 0, 0, fmt.Errorf("empty time")
	}
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		if _, err2 := fmt.Sscanf(s, "%d", &hour); err2 != nil {
			return 0, 0, fmt.Errorf("parse time %q: %w", s, err)
		}
		minute = 0
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}
	return hour, minute, nil
}

// FormatDate renders t as "2006-01-02".
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClock renders t as "15:04".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
