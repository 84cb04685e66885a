// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Delivery and replay model
// ════════════════════════════════════════════════════════════════
//
// Persistence and delivery are independent. A persistent event is
// INSERTed into the events table and pg_notify'd in the same
// transaction, so subscribers never observe a NOTIFY for a row that did
// not commit. Delivery to WebSocket clients is best-effort: a client
// that reconnects replays the gap with a catchup request carrying the
// last db_event_id it saw, and a client that arrives after a
// negotiation already finished reconstructs the transcript from the
// REST endpoints instead of the bus.
//
// Channels:
//
//	user:{user_id}  — personal stream: notifications, chat activity,
//	                  and live copies of negotiation messages the user
//	                  participates in.
//	session:{id}    — one negotiation session's transcript stream.
//	sessions        — global lifecycle feed for dashboards.
//
// A negotiation message is persisted once, on its session channel. The
// copies pushed to participant user channels are transient: a missed
// copy is recoverable from the session channel's catchup buffer or from
// the negotiation_messages table, never lost.
//
// ════════════════════════════════════════════════════════════════
package events

// Persistent event kinds (stored in DB + NOTIFY).
const (
	// Negotiation transcript stream — one event per NegotiationMessage row.
	EventTypeA2AMessage = "a2a_message"

	// Session lifecycle
	EventTypeSessionStatus = "session.status"

	// User-channel kinds
	EventTypeNotification = "notification" // UI toast
	EventTypeNewMessage   = "new_message"  // chat log row landed in a conversation
)

// Friend flow kinds. Reserved wire vocabulary for the client's contact
// screens; the server does not publish them itself.
const (
	EventTypeFriendRequest  = "friend_request"
	EventTypeFriendAccepted = "friend_accepted"
	EventTypeFriendRejected = "friend_rejected"
)

// Transient event kinds (NOTIFY only, no DB persistence).
const (
	// Round-by-round negotiation progress for the dashboard's live list.
	EventTypeSessionProgress = "session.progress"
)

// GlobalSessionsChannel is the channel for session-level lifecycle events.
// Dashboard views subscribe to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's transcript.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// UserChannel returns the channel name for a user's personal stream.
// Format: "user:{user_id}"
func UserChannel(userID string) string {
	return "user:" + userID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
