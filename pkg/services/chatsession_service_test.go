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

func TestChatSessionService_CreateChatSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewChatSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("creates container with default title", func(t *testing.T) {
		cs, err := service.CreateChatSession(ctx, models.CreateChatSessionRequest{
			UserID: "user-alice",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, cs.ID)
		assert.Equal(t, "user-alice", cs.UserID)
		assert.Equal(t, "새 대화", cs.Title)
	})

	t.Run("accepts explicit title", func(t *testing.T) {
		cs, err := service.CreateChatSession(ctx, models.CreateChatSessionRequest{
			UserID: "user-alice",
			Title:  "주말 약속",
		})
		require.NoError(t, err)
		assert.Equal(t, "주말 약속", cs.Title)
	})

	t.Run("requires user_id", func(t *testing.T) {
		_, err := service.CreateChatSession(ctx, models.CreateChatSessionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestChatSessionService_GetOrCreateChatSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewChatSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")
	seedUser(t, client.Client, "user-bob", "철수")

	t.Run("creates a fresh container for an empty id", func(t *testing.T) {
		cs, created, err := service.GetOrCreateChatSession(ctx, "user-alice", "")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "user-alice", cs.UserID)
	})

	t.Run("returns the existing container", func(t *testing.T) {
		cs, created, err := service.GetOrCreateChatSession(ctx, "user-alice", "")
		require.NoError(t, err)
		require.True(t, created)

		same, created, err := service.GetOrCreateChatSession(ctx, "user-alice", cs.ID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, cs.ID, same.ID)
	})

	t.Run("does not leak another user's container", func(t *testing.T) {
		cs, _, err := service.GetOrCreateChatSession(ctx, "user-alice", "")
		require.NoError(t, err)

		_, _, err = service.GetOrCreateChatSession(ctx, "user-bob", cs.ID)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestChatSessionService_ListAndTouch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewChatSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("lists most recently active first", func(t *testing.T) {
		first, err := service.CreateChatSession(ctx, models.CreateChatSessionRequest{UserID: "user-alice"})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		second, err := service.CreateChatSession(ctx, models.CreateChatSessionRequest{UserID: "user-alice"})
		require.NoError(t, err)

		sessions, err := service.ListChatSessions(ctx, "user-alice")
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, second.ID, sessions[0].ID)

		// Touching the older one moves it to the front
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, service.TouchChatSession(ctx, first.ID))

		sessions, err = service.ListChatSessions(ctx, "user-alice")
		require.NoError(t, err)
		assert.Equal(t, first.ID, sessions[0].ID)
	})

	t.Run("renames a conversation", func(t *testing.T) {
		cs, err := service.CreateChatSession(ctx, models.CreateChatSessionRequest{UserID: "user-alice"})
		require.NoError(t, err)

		err = service.UpdateChatSessionTitle(ctx, cs.ID, "회식 일정")
		require.NoError(t, err)

		sessions, err := service.ListChatSessions(ctx, "user-alice")
		require.NoError(t, err)
		for _, s := range sessions {
			if s.ID == cs.ID {
				assert.Equal(t, "회식 일정", s.Title)
			}
		}
	})

	t.Run("returns ErrNotFound for missing container", func(t *testing.T) {
		err := service.TouchChatSession(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}
