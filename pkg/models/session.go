package models

import (
	"time"

	"github.com/moim-labs/moim/ent"
)

// CreateSessionRequest contains fields for creating a new negotiation session
type CreateSessionRequest struct {
	SessionID      string         `json:"session_id"`
	InitiatorID    string         `json:"initiator_id"`
	TargetID       string         `json:"target_id,omitempty"`
	ParticipantIDs []string       `json:"participant_ids"`
	Intent         string         `json:"intent"`
	TimeWindow     map[string]any `json:"time_window,omitempty"`
	Prefs          *SessionPrefs  `json:"prefs,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	Status         string     `json:"status,omitempty"`
	InitiatorID    string     `json:"initiator_id,omitempty"`
	ParticipantID  string     `json:"participant_id,omitempty"`
	ThreadID       string     `json:"thread_id,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// SessionResponse wraps a NegotiationSession with optional loaded edges
type SessionResponse struct {
	*ent.NegotiationSession
	// Messages can be accessed via NegotiationSession.Edges when loaded
}

// SessionListResponse contains paginated session list
type SessionListResponse struct {
	Sessions   []*ent.NegotiationSession `json:"sessions"`
	TotalCount int                       `json:"total_count"`
	Limit      int                       `json:"limit"`
	Offset     int                       `json:"offset"`
}
