package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/models"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{
				Type:      EventTypeA2AMessage,
				SessionID: "abc-123",
			},
			Message: "수요일 저녁 7시는 어떠세요?",
		})

		result, err := truncateIfNeeded(string(payload), defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeA2AMessage)
		assert.Contains(t, result, "abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longProse := make([]byte, 8000)
		for i := range longProse {
			longProse[i] = 'a'
		}
		payload, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{
				Type:      EventTypeA2AMessage,
				SessionID: "abc-123",
			},
			MessageID: "msg-123",
			Message:   string(longProse),
		})

		result, err := truncateIfNeeded(string(payload), defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionProgressPayload{
			BasePayload: BasePayload{
				Type: EventTypeSessionProgress,
			},
			CurrentRound: 2,
			MaxRounds:    5,
		})

		result, err := truncateIfNeeded(string(payload), defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longProse := make([]byte, 8000)
		for i := range longProse {
			longProse[i] = 'x'
		}
		payload, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{
				Type:      EventTypeA2AMessage,
				SessionID: "sess-789",
			},
			MessageID: "msg-456",
			Message:   string(longProse),
		})

		result, err := truncateIfNeeded(string(payload), defaultMaxPayloadBytes)
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeA2AMessage)
		assert.Contains(t, result, "msg-456")
		assert.Contains(t, result, "sess-789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to A2AMessagePayload, the base overhead grows and
		// the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{Type: "t"},
		})
		proseSize := 7900 - len(base) - 20
		prose := make([]byte, proseSize)
		for i := range prose {
			prose[i] = 'b'
		}
		payload, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{Type: "t"},
			Message:     string(prose),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload), defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}", defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})

	t.Run("custom limit truncates earlier", func(t *testing.T) {
		payload, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{
				Type:      EventTypeA2AMessage,
				SessionID: "sess-1",
			},
			MessageID: "msg-1",
			Message:   "4000바이트 제한에서는 잘리지 않을 짧은 메시지",
		})
		require.Greater(t, len(payload), 64)

		result, err := truncateIfNeeded(string(payload), 64)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{
				Type:      EventTypeA2AMessage,
				SessionID: "sess-1",
			},
			MessageID: "msg-1",
			Message:   "hello",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42, defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "msg-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longProse := make([]byte, 8000)
		for i := range longProse {
			longProse[i] = 'x'
		}
		payload, _ := json.Marshal(A2AMessagePayload{
			BasePayload: BasePayload{
				Type:      EventTypeA2AMessage,
				SessionID: "sess-789",
			},
			MessageID: "msg-456",
			Message:   string(longProse),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42, defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "msg-456")
	})

	t.Run("truncated payload without session_id keeps empty routing value", func(t *testing.T) {
		longBody := make([]byte, 8000)
		for i := range longBody {
			longBody[i] = 'x'
		}
		payload, _ := json.Marshal(NotificationPayload{
			BasePayload: BasePayload{
				Type: EventTypeNotification,
			},
			Message: string(longBody),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99, defaultMaxPayloadBytes)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
	assert.Equal(t, defaultMaxPayloadBytes, publisher.maxPayloadBytes)

	publisher.SetMaxPayloadBytes(4000)
	assert.Equal(t, 4000, publisher.maxPayloadBytes)

	// PostgreSQL rejects payloads at 8000 bytes; out-of-range values are ignored.
	publisher.SetMaxPayloadBytes(0)
	publisher.SetMaxPayloadBytes(9000)
	assert.Equal(t, 4000, publisher.maxPayloadBytes)
}

func TestA2AMessagePayload_JSON(t *testing.T) {
	payload := A2AMessagePayload{
		BasePayload: BasePayload{
			Type:      EventTypeA2AMessage,
			SessionID: "sess-123",
			Timestamp: "2026-08-25T12:00:00Z",
		},
		MessageID:   "msg-456",
		ThreadID:    "thread-1",
		SenderID:    "user-kim",
		SenderName:  "김철수",
		MessageType: negotiationmessage.TypePropose,
		Round:       1,
		Message:     "토요일 점심 12시는 어떠세요?",
		Proposal: &models.Proposal{
			Date:            "2026-08-29",
			Time:            "12:00",
			Activity:        "점심",
			DurationMinutes: 120,
		},
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded A2AMessagePayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeA2AMessage, decoded.Type)
	assert.Equal(t, "sess-123", decoded.SessionID)
	assert.Equal(t, "msg-456", decoded.MessageID)
	assert.Equal(t, "thread-1", decoded.ThreadID)
	assert.Equal(t, "김철수", decoded.SenderName)
	assert.Equal(t, negotiationmessage.TypePropose, decoded.MessageType)
	assert.Equal(t, 1, decoded.Round)
	assert.Equal(t, "토요일 점심 12시는 어떠세요?", decoded.Message)
	require.NotNil(t, decoded.Proposal)
	assert.Equal(t, "2026-08-29", decoded.Proposal.Date)
	assert.Equal(t, 120, decoded.Proposal.DurationMinutes)
	assert.Equal(t, "2026-08-25T12:00:00Z", decoded.Timestamp)
}

func TestA2AMessagePayload_OptionalFieldsOmitted(t *testing.T) {
	// An INFO step row carries neither a proposal nor conflict data; the
	// wire form must not include empty keys for them.
	payload := A2AMessagePayload{
		BasePayload: BasePayload{
			Type:      EventTypeA2AMessage,
			SessionID: "sess-123",
			Timestamp: "2026-08-25T12:00:00Z",
		},
		MessageID:   "msg-info",
		SenderID:    "user-kim",
		SenderName:  "김철수",
		MessageType: negotiationmessage.TypeInfo,
		Round:       1,
		Message:     "캘린더를 확인하고 있습니다...",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "proposal")
	assert.NotContains(t, string(data), "conflict_info")
	assert.NotContains(t, string(data), "majority_recommendation")
	assert.NotContains(t, string(data), "participant_availabilities")
	assert.NotContains(t, string(data), "receiver_id")
}

func TestSessionProgressPayload_JSON(t *testing.T) {
	payload := SessionProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeSessionProgress,
			SessionID: "sess-100",
			Timestamp: "2026-08-25T10:00:00Z",
		},
		ThreadID:     "thread-7",
		CurrentRound: 2,
		MaxRounds:    5,
		StatusText:   "2/5 라운드 협상 중",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded SessionProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeSessionProgress, decoded.Type)
	assert.Equal(t, "sess-100", decoded.SessionID)
	assert.Equal(t, "thread-7", decoded.ThreadID)
	assert.Equal(t, 2, decoded.CurrentRound)
	assert.Equal(t, 5, decoded.MaxRounds)
	assert.Equal(t, "2/5 라운드 협상 중", decoded.StatusText)
}

func TestNotificationPayload_JSON(t *testing.T) {
	payload := NotificationPayload{
		BasePayload: BasePayload{
			Type:      EventTypeNotification,
			Timestamp: "2026-08-25T10:00:00Z",
		},
		Title:     "일정 승인 요청",
		Message:   "김철수님이 토요일 점심 약속을 제안했습니다.",
		ThreadID:  "thread-7",
		ChatLogID: "log-42",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded NotificationPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeNotification, decoded.Type)
	assert.Equal(t, "일정 승인 요청", decoded.Title)
	assert.Equal(t, "thread-7", decoded.ThreadID)
	assert.Equal(t, "log-42", decoded.ChatLogID)
	// Notifications are user-channel events with no owning session.
	assert.NotContains(t, string(data), "session_id")
}
