package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/models"
	testdb "github.com/moim-labs/moim/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("creates session in pending state", func(t *testing.T) {
		req := newSessionRequest("user-alice", "user-bob")
		req.TargetID = "user-bob"
		req.TimeWindow = map[string]any{"start": "2026-09-01", "end": "2026-09-14"}
		req.Prefs = &models.SessionPrefs{
			Summary:  "저녁 약속",
			ThreadID: "thread-1",
		}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.SessionID, session.ID)
		assert.Equal(t, "user-alice", session.InitiatorID)
		assert.Equal(t, []string{"user-alice", "user-bob"}, session.ParticipantIds)
		assert.Equal(t, req.Intent, session.Intent)
		assert.Equal(t, negotiationsession.StatusPending, session.Status)
		assert.Equal(t, "thread-1", session.PlacePref["thread_id"])
		assert.Equal(t, "2026-09-01", session.TimeWindow["start"])
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateSessionRequest
		}{
			{
				name: "missing session_id",
				req:  models.CreateSessionRequest{InitiatorID: "user-alice", ParticipantIDs: []string{"user-alice"}, Intent: "저녁"},
			},
			{
				name: "missing initiator_id",
				req:  models.CreateSessionRequest{SessionID: "sid", ParticipantIDs: []string{"user-alice"}, Intent: "저녁"},
			},
			{
				name: "missing participant_ids",
				req:  models.CreateSessionRequest{SessionID: "sid", InitiatorID: "user-alice", Intent: "저녁"},
			},
			{
				name: "missing intent",
				req:  models.CreateSessionRequest{SessionID: "sid", InitiatorID: "user-alice", ParticipantIDs: []string{"user-alice"}},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateSession(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects duplicate session_id", func(t *testing.T) {
		req := newSessionRequest("user-alice")

		_, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		// Try to create again with same ID
		_, err = service.CreateSession(ctx, req)
		require.Error(t, err)
		assert.Equal(t, ErrAlreadyExists, err)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("retrieves existing session", func(t *testing.T) {
		created, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		session, err := service.GetSession(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Equal(t, created.ID, session.ID)
		assert.Nil(t, session.Edges.Messages)
	})

	t.Run("loads transcript in order when requested", func(t *testing.T) {
		created, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		// Insert two turns out of order
		_, err = client.NegotiationMessage.Create().
			SetID(uuid.New().String()).
			SetSessionID(created.ID).
			SetSenderID("user-bob").
			SetSenderName("밥").
			SetType(negotiationmessage.TypeAccept).
			SetRound(1).
			SetProse("좋아요, 그 시간 괜찮습니다.").
			SetCreatedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		_, err = client.NegotiationMessage.Create().
			SetID(uuid.New().String()).
			SetSessionID(created.ID).
			SetSenderID("user-alice").
			SetSenderName("앨리스").
			SetType(negotiationmessage.TypePropose).
			SetRound(1).
			SetProse("9월 2일 저녁 7시 어떠세요?").
			SetCreatedAt(time.Now().Add(-time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		session, err := service.GetSession(ctx, created.ID, true)
		require.NoError(t, err)
		require.Len(t, session.Edges.Messages, 2)
		assert.Equal(t, negotiationmessage.TypePropose, session.Edges.Messages[0].Type)
		assert.Equal(t, negotiationmessage.TypeAccept, session.Edges.Messages[1].Type)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		_, err := service.GetSession(ctx, "nonexistent", false)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	// Create test sessions
	for i := 0; i < 5; i++ {
		_, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)
	}

	t.Run("lists all sessions", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.TotalCount, 5)
		assert.Len(t, result.Sessions, result.TotalCount)
	})

	t.Run("applies pagination", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			Limit:  2,
			Offset: 0,
		})
		require.NoError(t, err)
		assert.Len(t, result.Sessions, 2)
		assert.Equal(t, 2, result.Limit)
	})

	t.Run("filters by status", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			Status: string(negotiationsession.StatusPending),
		})
		require.NoError(t, err)
		for _, session := range result.Sessions {
			assert.Equal(t, negotiationsession.StatusPending, session.Status)
		}
	})

	t.Run("filters by participant", func(t *testing.T) {
		req := newSessionRequest("user-alice", "user-carol")
		created, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		result, err := service.ListSessions(ctx, models.SessionFilters{
			ParticipantID: "user-carol",
		})
		require.NoError(t, err)
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, created.ID, result.Sessions[0].ID)
	})

	t.Run("filters by thread", func(t *testing.T) {
		req := newSessionRequest("user-alice")
		req.Prefs = &models.SessionPrefs{ThreadID: "thread-filter"}
		created, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		result, err := service.ListSessions(ctx, models.SessionFilters{
			ThreadID: "thread-filter",
		})
		require.NoError(t, err)
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, created.ID, result.Sessions[0].ID)
	})

	t.Run("excludes soft-deleted by default", func(t *testing.T) {
		created, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		err = client.NegotiationSession.UpdateOneID(created.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// List should exclude it
		result, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		for _, session := range result.Sessions {
			assert.NotEqual(t, created.ID, session.ID)
		}

		// List with include_deleted should show it
		resultWithDeleted, err := service.ListSessions(ctx, models.SessionFilters{
			IncludeDeleted: true,
		})
		require.NoError(t, err)
		found := false
		for _, session := range resultWithDeleted.Sessions {
			if session.ID == created.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})
}

func TestSessionService_ListSessionsByThread(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("returns thread sessions oldest first", func(t *testing.T) {
		first := newSessionRequest("user-alice")
		first.Prefs = &models.SessionPrefs{ThreadID: "thread-abc"}
		createdFirst, err := service.CreateSession(ctx, first)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond) // Ensure different timestamps

		second := newSessionRequest("user-alice")
		second.Prefs = &models.SessionPrefs{ThreadID: "thread-abc"}
		createdSecond, err := service.CreateSession(ctx, second)
		require.NoError(t, err)

		other := newSessionRequest("user-alice")
		other.Prefs = &models.SessionPrefs{ThreadID: "thread-other"}
		_, err = service.CreateSession(ctx, other)
		require.NoError(t, err)

		sessions, err := service.ListSessionsByThread(ctx, "thread-abc")
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, createdFirst.ID, sessions[0].ID)
		assert.Equal(t, createdSecond.ID, sessions[1].ID)
	})

	t.Run("requires thread_id", func(t *testing.T) {
		_, err := service.ListSessionsByThread(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_UpdateSessionStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("walks the normal lifecycle", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		err = service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusInProgress)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusInProgress, updated.Status)
		assert.NotNil(t, updated.StartedAt)

		// Parking for approval clears the worker heartbeat
		err = service.Heartbeat(ctx, session.ID)
		require.NoError(t, err)

		err = service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusPendingApproval)
		require.NoError(t, err)

		updated, err = service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusPendingApproval, updated.Status)
		assert.Nil(t, updated.LastHeartbeatAt)

		err = service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusCompleted)
		require.NoError(t, err)

		updated, err = service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
	})

	t.Run("rejection reopens a session awaiting approval", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusInProgress))
		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusPendingApproval))

		err = service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusInProgress)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusInProgress, updated.Status)
	})

	t.Run("reschedule reopens a completed session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusCompleted))

		err = service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusInProgress)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusInProgress, updated.Status)
	})

	t.Run("rejects backward transitions", func(t *testing.T) {
		tests := []struct {
			name string
			from negotiationsession.Status
			to   negotiationsession.Status
		}{
			{name: "in_progress back to pending", from: negotiationsession.StatusInProgress, to: negotiationsession.StatusPending},
			{name: "pending_approval back to pending", from: negotiationsession.StatusPendingApproval, to: negotiationsession.StatusPending},
			{name: "completed back to pending", from: negotiationsession.StatusCompleted, to: negotiationsession.StatusPending},
			{name: "completed back to pending_approval", from: negotiationsession.StatusCompleted, to: negotiationsession.StatusPendingApproval},
			{name: "failed cannot reopen", from: negotiationsession.StatusFailed, to: negotiationsession.StatusInProgress},
			{name: "needs_reschedule cannot reopen", from: negotiationsession.StatusNeedsReschedule, to: negotiationsession.StatusInProgress},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
				require.NoError(t, err)

				err = client.NegotiationSession.UpdateOneID(session.ID).
					SetStatus(tt.from).
					Exec(ctx)
				require.NoError(t, err)

				err = service.UpdateSessionStatus(ctx, session.ID, tt.to)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTransition)
			})
		}
	})

	t.Run("writing the same status is a no-op", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusInProgress))
		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusInProgress))
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.UpdateSessionStatus(ctx, "nonexistent", negotiationsession.StatusCompleted)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_ResetForRecoordination(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("rearms a completed session with the new slot", func(t *testing.T) {
		req := newSessionRequest("user-alice", "user-bob")
		req.Prefs = &models.SessionPrefs{
			ThreadID:      "thread-reset",
			RequestedDate: "2026-09-01",
			AgreedDate:    "2026-09-01",
			AgreedTime:    "19:00",
		}
		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusCompleted))
		require.NoError(t, service.SetFinalEvent(ctx, session.ID, "gcal-event-1"))

		reset, err := service.ResetForRecoordination(ctx, []string{session.ID}, "2026-09-05", "점심")
		require.NoError(t, err)
		require.Len(t, reset, 1)

		got := reset[0]
		assert.Equal(t, negotiationsession.StatusInProgress, got.Status)
		assert.Nil(t, got.FinalEventID)
		assert.Nil(t, got.CompletedAt)
		assert.Nil(t, got.LastHeartbeatAt)

		prefs, err := models.ParseSessionPrefs(got.PlacePref)
		require.NoError(t, err)
		require.NotNil(t, prefs)
		assert.Equal(t, "2026-09-05", prefs.RequestedDate)
		assert.Equal(t, "점심", prefs.RequestedTime)
		assert.Empty(t, prefs.AgreedDate)
		assert.Empty(t, prefs.AgreedTime)
		assert.Equal(t, "thread-reset", prefs.ThreadID)
	})

	t.Run("rejects sessions that cannot reopen", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusFailed))

		_, err = service.ResetForRecoordination(ctx, []string{session.ID}, "2026-09-05", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("requires session_ids", func(t *testing.T) {
		_, err := service.ResetForRecoordination(ctx, nil, "2026-09-05", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_ReopenAfterRejection(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("reopens a parked session without scheduling it", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice", "user-bob"))
		require.NoError(t, err)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusInProgress))
		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusPendingApproval))

		reopened, err := service.ReopenAfterRejection(ctx, []string{session.ID})
		require.NoError(t, err)
		assert.Equal(t, []string{session.ID}, reopened)

		got, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusInProgress, got.Status)
		// Neither the pending poller nor the orphan sweep may pick the
		// session up while it waits for the user to name a new slot.
		assert.Nil(t, got.StartedAt)
		assert.Nil(t, got.LastHeartbeatAt)
	})

	t.Run("skips sessions that already left pending_approval", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, negotiationsession.StatusCompleted))

		reopened, err := service.ReopenAfterRejection(ctx, []string{session.ID})
		require.NoError(t, err)
		assert.Empty(t, reopened)

		got, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusCompleted, got.Status)
	})

	t.Run("requires session_ids", func(t *testing.T) {
		_, err := service.ReopenAfterRejection(ctx, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_FindOrphanedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("finds sessions with stale heartbeats", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		err = client.NegotiationSession.UpdateOneID(session.ID).
			SetStatus(negotiationsession.StatusInProgress).
			SetLastHeartbeatAt(time.Now().Add(-2 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		require.Len(t, orphaned, 1)
		assert.Equal(t, session.ID, orphaned[0].ID)
	})

	t.Run("skips parked sessions without a heartbeat", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		// Parked: in_progress but no worker is running it
		err = client.NegotiationSession.UpdateOneID(session.ID).
			SetStatus(negotiationsession.StatusInProgress).
			Exec(ctx)
		require.NoError(t, err)

		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		for _, s := range orphaned {
			assert.NotEqual(t, session.ID, s.ID)
		}
	})

	t.Run("skips fresh heartbeats", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		err = client.NegotiationSession.UpdateOneID(session.ID).
			SetStatus(negotiationsession.StatusInProgress).
			Exec(ctx)
		require.NoError(t, err)

		err = service.Heartbeat(ctx, session.ID)
		require.NoError(t, err)

		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		for _, s := range orphaned {
			assert.NotEqual(t, session.ID, s.ID)
		}
	})
}

func TestSessionService_SoftDeleteOldSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("soft deletes old completed sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		// Set completed 100 days ago
		err = client.NegotiationSession.UpdateOneID(session.ID).
			SetStatus(negotiationsession.StatusCompleted).
			SetCompletedAt(time.Now().Add(-100 * 24 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		// Soft delete old sessions (90 day retention)
		count, err := service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)

		// Verify soft deleted
		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, updated.DeletedAt)
	})

	t.Run("preserves recent sessions", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		err = client.NegotiationSession.UpdateOneID(session.ID).
			SetStatus(negotiationsession.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		_, err = service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Nil(t, updated.DeletedAt)
	})
}

func TestSessionService_RestoreSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("restores soft-deleted session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, newSessionRequest("user-alice"))
		require.NoError(t, err)

		err = client.NegotiationSession.UpdateOneID(session.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		err = service.RestoreSession(ctx, session.ID)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Nil(t, updated.DeletedAt)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.RestoreSession(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_SearchSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("matches session intent", func(t *testing.T) {
		req := newSessionRequest("user-alice")
		req.Intent = "다음주에 등산 모임 잡아줘"
		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		results, err := service.SearchSessions(ctx, "등산", 10)
		require.NoError(t, err)

		found := false
		for _, s := range results {
			if s.ID == session.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})

	t.Run("matches negotiation prose", func(t *testing.T) {
		req := newSessionRequest("user-alice")
		req.Intent = "회사 회식"
		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		_, err = client.NegotiationMessage.Create().
			SetID(uuid.New().String()).
			SetSessionID(session.ID).
			SetSenderID("user-bob").
			SetSenderName("밥").
			SetType(negotiationmessage.TypeCounter).
			SetRound(2).
			SetProse("수요일 말고 금요일 저녁은 어떠세요?").
			Save(ctx)
		require.NoError(t, err)

		results, err := service.SearchSessions(ctx, "금요일", 10)
		require.NoError(t, err)

		found := false
		for _, s := range results {
			if s.ID == session.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})

	t.Run("returns nothing for unmatched terms", func(t *testing.T) {
		results, err := service.SearchSessions(ctx, "스키장", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
