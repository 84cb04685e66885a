package models

import (
	"time"

	"github.com/moim-labs/moim/ent"
)

// CreateCalendarEventRequest contains fields for recording a calendar write.
// SessionID is empty for personal (non-negotiated) schedules.
type CreateCalendarEventRequest struct {
	OwnerID       string    `json:"owner_id"`
	SessionID     string    `json:"session_id,omitempty"`
	GoogleEventID string    `json:"google_event_id"`
	Summary       string    `json:"summary"`
	Location      string    `json:"location,omitempty"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	HTMLLink      string    `json:"html_link,omitempty"`
}

// CalendarEventResponse wraps a CalendarEvent
type CalendarEventResponse struct {
	*ent.CalendarEvent
}
