package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (progress ticks, user-channel transcript copies) are
// broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB

	// maxPayloadBytes caps a single NOTIFY payload; larger events are
	// replaced by a truncation envelope.
	maxPayloadBytes int
}

// defaultMaxPayloadBytes leaves headroom under PostgreSQL's hard NOTIFY
// limit of just under 8000 bytes.
const defaultMaxPayloadBytes = 7900

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db, maxPayloadBytes: defaultMaxPayloadBytes}
}

// SetMaxPayloadBytes overrides the NOTIFY payload cap. Values outside
// (0, 8000) are ignored; PostgreSQL rejects payloads at 8000 bytes.
func (p *EventPublisher) SetMaxPayloadBytes(n int) {
	if n > 0 && n < 8000 {
		p.maxPayloadBytes = n
	}
}

// --- Typed public methods ---

// PublishA2AMessage persists a negotiation transcript event on the session
// channel and fans out transient copies to each participant's user channel.
// The session channel is the durable stream: its rows back catchup replay.
// User-channel copies are best-effort; a missed copy is recoverable from the
// session channel or the negotiation_messages table.
// Returns the first error encountered (if any).
func (p *EventPublisher) PublishA2AMessage(ctx context.Context, sessionID string, participantIDs []string, payload A2AMessagePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal A2AMessagePayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish negotiation message to session channel",
			"session_id", sessionID, "message_id", payload.MessageID, "error", err)
		firstErr = err
	}

	for _, userID := range participantIDs {
		if err := p.notifyOnly(ctx, UserChannel(userID), payloadJSON); err != nil {
			slog.Warn("Failed to copy negotiation message to user channel",
				"session_id", sessionID, "user_id", userID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// PublishA2AMessageToUser broadcasts a transient transcript copy on a single
// user's channel. The negotiation engine uses this to deliver per-viewer
// variants of one message: the calendar owner's copy keeps conflict_info,
// everyone else's copy has it stripped. Nothing is persisted — the durable
// stream is the session channel plus the negotiation_messages table.
func (p *EventPublisher) PublishA2AMessageToUser(ctx context.Context, userID string, payload A2AMessagePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal A2AMessagePayload: %w", err)
	}
	return p.notifyOnly(ctx, UserChannel(userID), payloadJSON)
}

// PublishSessionStatus persists a session status event to the session channel
// and broadcasts a transient copy to the global sessions channel.
// Both publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishSessionStatus(ctx context.Context, sessionID string, payload SessionStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionStatusPayload: %w", err)
	}

	// Persist to session-specific channel
	var firstErr error
	if err := p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON); err != nil {
		slog.Warn("Failed to publish session status to session channel",
			"session_id", sessionID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to global sessions channel (transient — for dashboards)
	if err := p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish session status to global channel",
			"session_id", sessionID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishNotification persists and broadcasts a notification event on one
// user's channel. Persisted so a reconnecting client can catch up on toasts
// it missed; the TTL cleanup prunes old rows.
func (p *EventPublisher) PublishNotification(ctx context.Context, userID string, payload NotificationPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal NotificationPayload: %w", err)
	}
	return p.persistAndNotify(ctx, userID, UserChannel(userID), payloadJSON)
}

// PublishNewMessage persists and broadcasts a new_message event on the
// recipient's channel. Used when a chat log row lands in a conversation.
func (p *EventPublisher) PublishNewMessage(ctx context.Context, userID string, payload NewMessagePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal NewMessagePayload: %w", err)
	}
	return p.persistAndNotify(ctx, userID, UserChannel(userID), payloadJSON)
}

// PublishSessionProgress broadcasts a session.progress transient event (no DB
// persistence). Published to the global sessions channel once per round.
func (p *EventPublisher) PublishSessionProgress(ctx context.Context, payload SessionProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SessionProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, GlobalSessionsChannel, payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
// ownerKey is the events.session_id column value: the negotiation session for
// session-channel events, the user ID for user-channel events. Cleanup deletes
// by this key when a session's stream is retired.
func (p *EventPublisher) persistAndNotify(ctx context.Context, ownerKey, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		ownerKey, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID, p.maxPayloadBytes)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON), p.maxPayloadBytes)
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds the payload cap.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64, limit int) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes), limit)
}

// truncateIfNeeded returns the payload string as-is if it fits within the
// payload cap, otherwise returns a minimal truncation envelope with only
// routing fields.
func truncateIfNeeded(payloadStr string, limit int) (string, error) {
	if len(payloadStr) <= limit {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		MessageID string `json:"message_id"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"message_id": routing.MessageID,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
