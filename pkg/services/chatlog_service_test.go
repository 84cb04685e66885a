package services

import (
	"context"
	"testing"
	"time"

	"github.com/moim-labs/moim/pkg/models"
	testdb "github.com/moim-labs/moim/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatLogService_CreateChatLog(t *testing.T) {
	client := testdb.NewTestClient(t)
	logService := NewChatLogService(client.Client)
	chatSessionService := NewChatSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("appends a row and bumps the conversation", func(t *testing.T) {
		cs, err := chatSessionService.CreateChatSession(ctx, models.CreateChatSessionRequest{UserID: "user-alice"})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		log, err := logService.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:        "user-alice",
			ChatSessionID: cs.ID,
			RequestText:   "철수랑 내일 저녁 약속 잡아줘",
			MessageType:   "user_message",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, log.ID)
		require.NotNil(t, log.ChatSessionID)
		assert.Equal(t, cs.ID, *log.ChatSessionID)

		sessions, err := chatSessionService.ListChatSessions(ctx, "user-alice")
		require.NoError(t, err)
		require.NotEmpty(t, sessions)
		assert.Equal(t, cs.ID, sessions[0].ID)
		assert.True(t, sessions[0].UpdatedAt.After(cs.UpdatedAt))
	})

	t.Run("carries typed metadata", func(t *testing.T) {
		meta := models.ApprovalMetadata{
			ThreadID:   "thread-1",
			SessionIDs: []string{"session-1"},
		}

		log, err := logService.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       "user-alice",
			SessionID:    "session-1",
			ResponseText: "일정을 승인하시겠습니까?",
			MessageType:  "schedule_approval",
			Metadata:     meta.ToMap(),
		})
		require.NoError(t, err)

		parsed, err := models.ParseApprovalMetadata(log.Metadata)
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, "thread-1", parsed.ThreadID)
	})

	t.Run("validates input", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateChatLogRequest
		}{
			{name: "missing user_id", req: models.CreateChatLogRequest{MessageType: "user_message"}},
			{name: "missing message_type", req: models.CreateChatLogRequest{UserID: "user-alice"}},
			{name: "unknown message_type", req: models.CreateChatLogRequest{UserID: "user-alice", MessageType: "carrier_pigeon"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := logService.CreateChatLog(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestChatLogService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	logService := NewChatLogService(client.Client)
	chatSessionService := NewChatSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	cs, err := chatSessionService.CreateChatSession(ctx, models.CreateChatSessionRequest{UserID: "user-alice"})
	require.NoError(t, err)

	texts := []string{"첫 번째", "두 번째", "세 번째"}
	for _, text := range texts {
		_, err := logService.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:        "user-alice",
			ChatSessionID: cs.ID,
			RequestText:   text,
			MessageType:   "user_message",
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	t.Run("user history is newest first", func(t *testing.T) {
		page, err := logService.ListUserLogs(ctx, "user-alice", 2, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
		require.Len(t, page.Logs, 2)
		require.NotNil(t, page.Logs[0].RequestText)
		assert.Equal(t, "세 번째", *page.Logs[0].RequestText)
	})

	t.Run("conversation reads oldest first", func(t *testing.T) {
		page, err := logService.ListChatSessionLogs(ctx, cs.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, page.Logs, 3)
		require.NotNil(t, page.Logs[0].RequestText)
		assert.Equal(t, "첫 번째", *page.Logs[0].RequestText)
	})
}

func TestChatLogService_ApprovalScans(t *testing.T) {
	client := testdb.NewTestClient(t)
	logService := NewChatLogService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")
	seedUser(t, client.Client, "user-bob", "철수")

	sessionID := "session-approval"

	appendResponse := func(userID string, approved bool) {
		t.Helper()
		_, err := logService.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       userID,
			SessionID:    sessionID,
			ResponseText: "응답",
			MessageType:  "approval_response",
			Metadata:     map[string]any{"approved": approved},
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	t.Run("finds the latest approval card per user", func(t *testing.T) {
		_, err := logService.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       "user-alice",
			SessionID:    sessionID,
			ResponseText: "승인하시겠습니까? (1차)",
			MessageType:  "schedule_approval",
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		second, err := logService.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       "user-alice",
			SessionID:    sessionID,
			ResponseText: "승인하시겠습니까? (2차)",
			MessageType:  "schedule_approval",
		})
		require.NoError(t, err)

		card, err := logService.LatestApprovalCard(ctx, sessionID, "user-alice")
		require.NoError(t, err)
		assert.Equal(t, second.ID, card.ID)
	})

	t.Run("returns ErrNotFound when no card was dealt", func(t *testing.T) {
		_, err := logService.LatestApprovalCard(ctx, sessionID, "user-bob")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("keeps only the newest response per user", func(t *testing.T) {
		appendResponse("user-alice", false)
		appendResponse("user-alice", true)
		appendResponse("user-bob", true)

		latest, err := logService.LatestApprovalResponses(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, latest, 2)
		assert.Equal(t, true, latest["user-alice"].Metadata["approved"])
		assert.Equal(t, true, latest["user-bob"].Metadata["approved"])
	})

	t.Run("collects cards across sessions for fan-out", func(t *testing.T) {
		_, err := logService.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       "user-bob",
			SessionID:    "session-other",
			ResponseText: "승인하시겠습니까?",
			MessageType:  "schedule_approval",
		})
		require.NoError(t, err)

		cards, err := logService.ApprovalCardsForSessions(ctx, []string{sessionID, "session-other"})
		require.NoError(t, err)
		assert.Len(t, cards, 3)

		none, err := logService.ApprovalCardsForSessions(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("updates card metadata in place", func(t *testing.T) {
		card, err := logService.LatestApprovalCard(ctx, sessionID, "user-alice")
		require.NoError(t, err)

		err = logService.UpdateLogMetadata(ctx, card.ID, map[string]any{"buttons_disabled": true})
		require.NoError(t, err)

		updated, err := logService.LatestApprovalCard(ctx, sessionID, "user-alice")
		require.NoError(t, err)
		assert.Equal(t, true, updated.Metadata["buttons_disabled"])
	})
}
