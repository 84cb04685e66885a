package models

import (
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
)

// CreateMessageRequest contains fields for appending a negotiation message
type CreateMessageRequest struct {
	MessageID  string                  `json:"message_id"`
	SessionID  string                  `json:"session_id"`
	SenderID   string                  `json:"sender_id"`
	ReceiverID string                  `json:"receiver_id,omitempty"`
	SenderName string                  `json:"sender_name"`
	Type       negotiationmessage.Type `json:"type"`
	Round      int                     `json:"round"`
	Prose      string                  `json:"prose"`
	Payload    *MessagePayload         `json:"payload,omitempty"`
}

// MessageResponse wraps a NegotiationMessage
type MessageResponse struct {
	*ent.NegotiationMessage
}

// TranscriptResponse contains the ordered transcript of one or more sessions
// sharing a thread.
type TranscriptResponse struct {
	Messages   []*ent.NegotiationMessage `json:"messages"`
	SessionIDs []string                  `json:"session_ids"`
}
