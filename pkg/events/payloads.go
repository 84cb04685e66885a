package events

import (
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/models"
)

// BasePayload carries the fields every published event includes. The
// client routes incoming WS messages by `type` and, for transcript
// views, by `session_id`.
type BasePayload struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// A2AMessagePayload is the payload for a2a_message events: one bubble of
// the agent-to-agent transcript, mirroring its negotiation_messages row.
type A2AMessagePayload struct {
	BasePayload
	MessageID   string                  `json:"message_id"`
	ThreadID    string                  `json:"thread_id,omitempty"`
	SenderID    string                  `json:"sender_id"`
	SenderName  string                  `json:"sender_name"`
	ReceiverID  string                  `json:"receiver_id,omitempty"`
	MessageType negotiationmessage.Type `json:"message_type"` // PROPOSE, ACCEPT, COUNTER, INFO, ...
	Round       int                     `json:"round"`
	Message     string                  `json:"message"` // Korean prose surface

	// Structured half of the message, flattened onto the wire.
	// conflict_info is only present on copies sent to the calendar owner.
	Proposal                  *models.Proposal                 `json:"proposal,omitempty"`
	ConflictInfo              *models.ConflictInfo             `json:"conflict_info,omitempty"`
	MajorityRecommendation    *models.Proposal                 `json:"majority_recommendation,omitempty"`
	ParticipantAvailabilities []models.ParticipantAvailability `json:"participant_availabilities,omitempty"`
}

// SessionStatusPayload is the payload for session.status events.
// Published when a session transitions between lifecycle states.
type SessionStatusPayload struct {
	BasePayload
	Status       negotiationsession.Status `json:"status"` // pending, in_progress, pending_approval, completed, failed, needs_reschedule
	ThreadID     string                    `json:"thread_id,omitempty"`
	ErrorMessage string                    `json:"error_message,omitempty"` // present on failed / needs_reschedule
}

// NotificationPayload is the payload for notification events: a toast on
// one user's personal channel.
type NotificationPayload struct {
	BasePayload
	Title     string `json:"title"`
	Message   string `json:"message"`
	ThreadID  string `json:"thread_id,omitempty"`
	ChatLogID string `json:"chat_log_id,omitempty"` // deep-link target, e.g. an approval card
}

// NewMessagePayload is the payload for new_message events. Published on
// the recipient's channel when a chat log row lands in one of their
// conversations; replay comes from the chat log REST page, not the bus.
type NewMessagePayload struct {
	BasePayload
	ChatSessionID string              `json:"chat_session_id"`
	ChatLogID     string              `json:"chat_log_id"`
	MessageType   chatlog.MessageType `json:"message_type"`
	Preview       string              `json:"preview,omitempty"`
}

// SessionProgressPayload is the payload for session.progress transient
// events. Published to the global sessions channel once per negotiation
// round so dashboards can render a live round counter.
type SessionProgressPayload struct {
	BasePayload
	ThreadID     string `json:"thread_id,omitempty"`
	CurrentRound int    `json:"current_round"`
	MaxRounds    int    `json:"max_rounds"`
	StatusText   string `json:"status_text"` // short Korean progress line
}
