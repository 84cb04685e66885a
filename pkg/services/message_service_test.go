package services

import (
	"context"
	"testing"
	"time"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/models"
	testdb "github.com/moim-labs/moim/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_CreateAndRetrieve(t *testing.T) {
	client := testdb.NewTestClient(t)
	messageService := NewMessageService(client.Client)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	session, err := sessionService.CreateSession(ctx, newSessionRequest("user-alice", "user-bob"))
	require.NoError(t, err)

	t.Run("appends and retrieves the transcript in order", func(t *testing.T) {
		msg1, err := messageService.CreateMessage(ctx, models.CreateMessageRequest{
			SessionID:  session.ID,
			SenderID:   "user-alice",
			ReceiverID: "user-bob",
			SenderName: "앨리스",
			Type:       negotiationmessage.TypePropose,
			Round:      1,
			Prose:      "9월 2일 저녁 7시 어떠세요?",
			Payload: &models.MessagePayload{
				Proposal: &models.Proposal{Date: "2026-09-02", Time: "19:00"},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, msg1.ID)
		assert.Equal(t, negotiationmessage.TypePropose, msg1.Type)
		require.NotNil(t, msg1.ReceiverID)
		assert.Equal(t, "user-bob", *msg1.ReceiverID)

		msg2, err := messageService.CreateMessage(ctx, models.CreateMessageRequest{
			SessionID:  session.ID,
			SenderID:   "user-bob",
			ReceiverID: "user-alice",
			SenderName: "밥",
			Type:       negotiationmessage.TypeAccept,
			Round:      1,
			Prose:      "좋아요, 그 시간 괜찮습니다.",
		})
		require.NoError(t, err)

		messages, err := messageService.GetSessionMessages(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, msg1.ID, messages[0].ID)
		assert.Equal(t, msg2.ID, messages[1].ID)

		// Structured half survives the round trip
		payload, err := models.ParseMessagePayload(messages[0].Payload)
		require.NoError(t, err)
		require.NotNil(t, payload)
		require.NotNil(t, payload.Proposal)
		assert.Equal(t, "2026-09-02", payload.Proposal.Date)
	})

	t.Run("retrieves one round for deadlock scans", func(t *testing.T) {
		_, err := messageService.CreateMessage(ctx, models.CreateMessageRequest{
			SessionID:  session.ID,
			SenderID:   "user-bob",
			SenderName: "밥",
			Type:       negotiationmessage.TypeReject,
			Round:      2,
			Prose:      "그날은 선약이 있어요.",
		})
		require.NoError(t, err)

		messages, err := messageService.GetRoundMessages(ctx, session.ID, 2)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, negotiationmessage.TypeReject, messages[0].Type)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateMessageRequest
		}{
			{
				name: "missing session_id",
				req:  models.CreateMessageRequest{SenderID: "u", SenderName: "n", Type: negotiationmessage.TypeInfo, Prose: "p"},
			},
			{
				name: "missing sender_id",
				req:  models.CreateMessageRequest{SessionID: "s", SenderName: "n", Type: negotiationmessage.TypeInfo, Prose: "p"},
			},
			{
				name: "missing sender_name",
				req:  models.CreateMessageRequest{SessionID: "s", SenderID: "u", Type: negotiationmessage.TypeInfo, Prose: "p"},
			},
			{
				name: "missing type",
				req:  models.CreateMessageRequest{SessionID: "s", SenderID: "u", SenderName: "n", Prose: "p"},
			},
			{
				name: "missing prose",
				req:  models.CreateMessageRequest{SessionID: "s", SenderID: "u", SenderName: "n", Type: negotiationmessage.TypeInfo},
			},
			{
				name: "negative round",
				req:  models.CreateMessageRequest{SessionID: "s", SenderID: "u", SenderName: "n", Type: negotiationmessage.TypeInfo, Prose: "p", Round: -1},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := messageService.CreateMessage(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestMessageService_GetThreadMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	messageService := NewMessageService(client.Client)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("merges transcripts across sessions in wall-clock order", func(t *testing.T) {
		first, err := sessionService.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)
		second, err := sessionService.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		_, err = messageService.CreateMessage(ctx, models.CreateMessageRequest{
			SessionID:  first.ID,
			SenderID:   "user-alice",
			SenderName: "앨리스",
			Type:       negotiationmessage.TypePropose,
			Round:      1,
			Prose:      "처음 제안",
		})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond) // Ensure different timestamps

		_, err = messageService.CreateMessage(ctx, models.CreateMessageRequest{
			SessionID:  second.ID,
			SenderID:   "user-alice",
			SenderName: "앨리스",
			Type:       negotiationmessage.TypePropose,
			Round:      1,
			Prose:      "재조율 제안",
		})
		require.NoError(t, err)

		messages, err := messageService.GetThreadMessages(ctx, []string{first.ID, second.ID})
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, first.ID, messages[0].SessionID)
		assert.Equal(t, second.ID, messages[1].SessionID)
	})

	t.Run("returns nothing for no sessions", func(t *testing.T) {
		messages, err := messageService.GetThreadMessages(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
