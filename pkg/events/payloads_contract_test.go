package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
)

// TestSessionChannelPayloads_ContainSessionID is a contract test between the
// Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.session_id` in
// the JSON payload. ANY payload that is broadcast on a session-specific
// channel (session:{id}) MUST include a non-empty `session_id` field —
// otherwise the frontend silently drops it.
//
// All payload structs embed BasePayload which guarantees session_id is present.
// This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.SessionID
func TestSessionChannelPayloads_ContainSessionID(t *testing.T) {
	const testSessionID = "sess-contract-test"

	// Every payload type that flows through SessionChannel(sessionID).
	// If you add a new payload that goes through a session channel,
	// add it here — the test will fail if session_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "A2AMessagePayload",
			payload: A2AMessagePayload{
				BasePayload: BasePayload{
					Type:      EventTypeA2AMessage,
					SessionID: testSessionID,
					Timestamp: "2026-08-25T00:00:00Z",
				},
				MessageID:   "msg-1",
				SenderID:    "user-kim",
				SenderName:  "김철수",
				MessageType: negotiationmessage.TypePropose,
				Round:       1,
				Message:     "토요일은 어떠세요?",
			},
		},
		{
			name: "SessionStatusPayload",
			payload: SessionStatusPayload{
				BasePayload: BasePayload{
					Type:      EventTypeSessionStatus,
					SessionID: testSessionID,
					Timestamp: "2026-08-25T00:00:00Z",
				},
				Status: negotiationsession.StatusInProgress,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			sid, ok := parsed["session_id"]
			assert.True(t, ok,
				"%s JSON is missing \"session_id\" field — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testSessionID, sid,
				"%s session_id has wrong value", tt.name)
		})
	}
}

// TestUserChannelPayloads_ContainType verifies user-channel payloads.
// The frontend's personal stream handler switches on `type` alone (there
// may be no session at all), so every user-channel payload must carry it.
func TestUserChannelPayloads_ContainType(t *testing.T) {
	tests := []struct {
		name     string
		wantType string
		payload  any
	}{
		{
			name:     "NotificationPayload",
			wantType: EventTypeNotification,
			payload: NotificationPayload{
				BasePayload: BasePayload{
					Type:      EventTypeNotification,
					Timestamp: "2026-08-25T00:00:00Z",
				},
				Title:   "약속 확정",
				Message: "모든 참여자가 승인했습니다.",
			},
		},
		{
			name:     "NewMessagePayload",
			wantType: EventTypeNewMessage,
			payload: NewMessagePayload{
				BasePayload: BasePayload{
					Type:      EventTypeNewMessage,
					Timestamp: "2026-08-25T00:00:00Z",
				},
				ChatSessionID: "chat-1",
				ChatLogID:     "log-1",
				MessageType:   chatlog.MessageTypeAiResponse,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed))

			typ, ok := parsed["type"]
			assert.True(t, ok, "%s JSON is missing \"type\" field", tt.name)
			assert.Equal(t, tt.wantType, typ)
		})
	}
}

// TestSessionProgressPayload_ContainsSessionID verifies the session.progress
// payload. Although this goes to GlobalSessionsChannel (not a session channel),
// it still carries session_id for the dashboard to identify which session it
// belongs to.
func TestSessionProgressPayload_ContainsSessionID(t *testing.T) {
	payload := SessionProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeSessionProgress,
			SessionID: "sess-progress",
			Timestamp: "2026-08-25T00:00:00Z",
		},
		CurrentRound: 1,
		MaxRounds:    5,
		StatusText:   "1/5 라운드 협상 중",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	sid, ok := parsed["session_id"]
	assert.True(t, ok, "SessionProgressPayload is missing session_id")
	assert.Equal(t, "sess-progress", sid)
}
