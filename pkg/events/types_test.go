package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionChannel(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		want      string
	}{
		{
			name:      "formats session channel correctly",
			sessionID: "abc-123",
			want:      "session:abc-123",
		},
		{
			name:      "handles UUID format",
			sessionID: "550e8400-e29b-41d4-a716-446655440000",
			want:      "session:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:      "handles empty string",
			sessionID: "",
			want:      "session:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionChannel(tt.sessionID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserChannel(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		want   string
	}{
		{
			name:   "formats user channel correctly",
			userID: "user-kim",
			want:   "user:user-kim",
		},
		{
			name:   "handles UUID format",
			userID: "550e8400-e29b-41d4-a716-446655440000",
			want:   "user:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:   "handles empty string",
			userID: "",
			want:   "user:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserChannel(tt.userID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeA2AMessage,
		EventTypeSessionStatus,
		EventTypeNotification,
		EventTypeNewMessage,
		EventTypeFriendRequest,
		EventTypeFriendAccepted,
		EventTypeFriendRejected,
		EventTypeSessionProgress,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestChannelNamespacesAreDisjoint(t *testing.T) {
	// A session and a user sharing an ID must never share a channel.
	id := "550e8400-e29b-41d4-a716-446655440000"
	assert.NotEqual(t, SessionChannel(id), UserChannel(id))
	assert.NotEqual(t, GlobalSessionsChannel, SessionChannel(id))
	assert.NotEqual(t, GlobalSessionsChannel, UserChannel(id))
}

func TestGlobalSessionsChannel(t *testing.T) {
	assert.Equal(t, "sessions", GlobalSessionsChannel)
}
