package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/services"
	testdb "github.com/moim-labs/moim/test/database"
)

// createTestUser seeds a user to own test sessions (initiator FK).
func createTestUser(ctx context.Context, t *testing.T, client *ent.Client) string {
	t.Helper()
	userID := uuid.New().String()
	_, err := client.User.Create().
		SetID(userID).
		SetName("김철수").
		SetEmail(userID + "@example.com").
		Save(ctx)
	require.NoError(t, err)
	return userID
}

// createTestSession creates a negotiation session in pending status.
func createTestSession(ctx context.Context, t *testing.T, client *ent.Client, initiatorID string) *ent.NegotiationSession {
	t.Helper()
	session, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(initiatorID).
		SetParticipantIds([]string{initiatorID}).
		SetIntent("내일 저녁에 밥 먹자").
		SetStatus(negotiationsession.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return session
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Hour, // Sweeps run explicitly in tests
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       30 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a pending session.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)
	session := createTestSession(ctx, t, client, userID)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil, nil)

	claimed, err := w.claimNextSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending session")
	assert.Equal(t, session.ID, claimed.ID)
	assert.Equal(t, negotiationsession.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.StartedAt)
	require.NotNil(t, claimed.LastHeartbeatAt, "claim must stamp the heartbeat")

	// Second claim should return ErrNoSessionsAvailable
	claimed2, err := w.claimNextSession(ctx)
	assert.ErrorIs(t, err, ErrNoSessionsAvailable)
	assert.Nil(t, claimed2, "no more pending sessions should be available")
}

// TestClaimOrderIsFIFO tests that pending sessions are claimed oldest first.
func TestClaimOrderIsFIFO(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)

	older, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(userID).
		SetParticipantIds([]string{userID}).
		SetIntent("첫 번째 요청").
		SetStatus(negotiationsession.StatusPending).
		SetCreatedAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	newer := createTestSession(ctx, t, client, userID)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil, nil)

	first, err := w.claimNextSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, first.ID, "oldest pending session should be claimed first")

	second, err := w.claimNextSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, second.ID)
}

// TestConcurrentClaimsDifferentSessions tests that concurrent workers claim different sessions.
func TestConcurrentClaimsDifferentSessions(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)

	sessionIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		s := createTestSession(ctx, t, client, userID)
		sessionIDs[s.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil, nil)
			session, err := w.claimNextSession(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if session != nil {
				mu.Lock()
				claimed = append(claimed, session.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil session without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 sessions should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 sessions should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "session %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}

	for _, id := range claimed {
		_, ok := sessionIDs[id]
		assert.True(t, ok, "claimed session %s was not in original set", id)
	}
}

// TestClaimSessionByID covers the direct dispatch claim: pending rows are
// claimed, reset rows (in_progress, no heartbeat) are adopted, and rows
// another worker is driving are refused.
func TestClaimSessionByID(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)
	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil, nil)

	t.Run("pending session is claimed", func(t *testing.T) {
		session := createTestSession(ctx, t, client, userID)

		claimed, err := w.claimSessionByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusInProgress, claimed.Status)
		require.NotNil(t, claimed.StartedAt)
		require.NotNil(t, claimed.LastHeartbeatAt)
	})

	t.Run("reset session is adopted", func(t *testing.T) {
		// A recoordination reset leaves the row in_progress with started_at
		// stamped and the heartbeat cleared.
		session, err := client.NegotiationSession.Create().
			SetID(uuid.New().String()).
			SetInitiatorID(userID).
			SetParticipantIds([]string{userID}).
			SetIntent("다시 잡아줘").
			SetStatus(negotiationsession.StatusInProgress).
			SetStartedAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		claimed, err := w.claimSessionByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusInProgress, claimed.Status)
		require.NotNil(t, claimed.LastHeartbeatAt, "adoption must stamp the heartbeat")

		// A second adoption attempt loses.
		_, err = w.claimSessionByID(ctx, session.ID)
		assert.ErrorIs(t, err, ErrAlreadyClaimed)
	})

	t.Run("running session is refused", func(t *testing.T) {
		session, err := client.NegotiationSession.Create().
			SetID(uuid.New().String()).
			SetInitiatorID(userID).
			SetParticipantIds([]string{userID}).
			SetIntent("이미 진행 중").
			SetStatus(negotiationsession.StatusInProgress).
			SetStartedAt(time.Now()).
			SetLastHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		_, err = w.claimSessionByID(ctx, session.ID)
		assert.ErrorIs(t, err, ErrAlreadyClaimed)
	})

	t.Run("unknown session is refused", func(t *testing.T) {
		_, err := w.claimSessionByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrAlreadyClaimed)
	})
}

// TestRecordResult covers the three outcome shapes the engine can hand back.
func TestRecordResult(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)
	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil, nil)

	claim := func(t *testing.T) *ent.NegotiationSession {
		t.Helper()
		session := createTestSession(ctx, t, client, userID)
		claimed, err := w.claimSessionByID(ctx, session.ID)
		require.NoError(t, err)
		return claimed
	}

	t.Run("pending_approval parks the session", func(t *testing.T) {
		session := claim(t)

		err := w.recordResult(ctx, session, &ExecutionResult{Status: negotiationsession.StatusPendingApproval})
		require.NoError(t, err)

		updated, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusPendingApproval, updated.Status)
		assert.Nil(t, updated.LastHeartbeatAt, "parked sessions carry no heartbeat")
		assert.Nil(t, updated.CompletedAt, "parked is not terminal")
	})

	t.Run("in_progress abort records error and nothing else", func(t *testing.T) {
		session := claim(t)

		err := w.recordResult(ctx, session, &ExecutionResult{
			Status: negotiationsession.StatusInProgress,
			Error:  errors.New("failed to append PROPOSE message: connection reset"),
		})
		require.NoError(t, err)

		updated, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusInProgress, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "failed to append")
		assert.Nil(t, updated.CompletedAt)
		// The stale heartbeat is what lets the orphan sweep find it later.
		assert.NotNil(t, updated.LastHeartbeatAt)
	})

	t.Run("terminal failure stamps everything", func(t *testing.T) {
		session := claim(t)

		err := w.recordResult(ctx, session, &ExecutionResult{
			Status: negotiationsession.StatusFailed,
			Error:  errors.New("negotiation timed out after 30s"),
		})
		require.NoError(t, err)

		updated, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusFailed, updated.Status)
		require.NotNil(t, updated.CompletedAt)
		assert.Nil(t, updated.LastHeartbeatAt)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
	})
}

// TestOrphanRecovery tests that orphaned sessions are detected and recovered.
func TestOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)

	staleBeat := time.Now().Add(-10 * time.Minute)

	// Crashed worker: in_progress with a stale heartbeat.
	crashed, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(userID).
		SetParticipantIds([]string{userID}).
		SetIntent("고아 세션").
		SetStatus(negotiationsession.StatusInProgress).
		SetStartedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	// Reset row nobody adopted: in_progress, stale started_at, no heartbeat.
	stranded, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(userID).
		SetParticipantIds([]string{userID}).
		SetIntent("유실된 재협의").
		SetStatus(negotiationsession.StatusInProgress).
		SetStartedAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	// Healthy run: fresh heartbeat, must be untouched.
	healthy, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(userID).
		SetParticipantIds([]string{userID}).
		SetIntent("정상 진행 중").
		SetStatus(negotiationsession.StatusInProgress).
		SetStartedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	// Parked for approval: no heartbeat by design, must be untouched.
	parked, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(userID).
		SetParticipantIds([]string{userID}).
		SetIntent("승인 대기 중").
		SetStatus(negotiationsession.StatusPendingApproval).
		SetStartedAt(staleBeat).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	pool := &WorkerPool{
		podID:    "test-pod",
		client:   client,
		config:   cfg,
		messages: services.NewMessageService(client),
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	for _, id := range []string{crashed.ID, stranded.ID} {
		updated, err := client.NegotiationSession.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusFailed, updated.Status, "session %s should be failed", id)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "orphaned")
		require.NotNil(t, updated.CompletedAt)
		assert.Nil(t, updated.LastHeartbeatAt)

		// The participants get a system row explaining the stop.
		notices, err := client.NegotiationMessage.Query().
			Where(negotiationmessage.SessionIDEQ(id)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, notices, 1)
		assert.Equal(t, "system", notices[0].SenderID)
		assert.Equal(t, negotiationmessage.TypeNeedHuman, notices[0].Type)
		assert.Equal(t, orphanNoticeProse, notices[0].Prose)
	}

	for _, id := range []string{healthy.ID, parked.ID} {
		updated, err := client.NegotiationSession.Get(ctx, id)
		require.NoError(t, err)
		assert.NotEqual(t, negotiationsession.StatusFailed, updated.Status, "session %s should be untouched", id)
	}

	pool.orphans.mu.Lock()
	assert.Equal(t, 2, pool.orphans.orphansRecovered)
	assert.False(t, pool.orphans.lastOrphanScan.IsZero())
	pool.orphans.mu.Unlock()
}

// TestOrphanRecoveryKeepsAbortError tests that a recorded abort reason
// survives the sweep instead of being replaced by the generic message.
func TestOrphanRecoveryKeepsAbortError(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)
	staleBeat := time.Now().Add(-10 * time.Minute)

	aborted, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(userID).
		SetParticipantIds([]string{userID}).
		SetIntent("중단된 세션").
		SetStatus(negotiationsession.StatusInProgress).
		SetStartedAt(staleBeat).
		SetLastHeartbeatAt(staleBeat).
		SetErrorMessage("failed to append COUNTER message: connection reset").
		Save(ctx)
	require.NoError(t, err)

	pool := &WorkerPool{
		podID:  "test-pod",
		client: client,
		config: intTestQueueConfig(),
	}

	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := client.NegotiationSession.Get(ctx, aborted.ID)
	require.NoError(t, err)
	assert.Equal(t, negotiationsession.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Equal(t, "failed to append COUNTER message: connection reset", *updated.ErrorMessage)
}

// mockExecutor counts executions and tracks which sessions were processed.
type mockExecutor struct {
	processed  atomic.Int64
	sessions   sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, session *ent.NegotiationSession) *ExecutionResult {
	m.processed.Add(1)
	if session != nil {
		m.sessions.Store(session.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{
				Status: negotiationsession.StatusFailed,
				Error:  ctx.Err(),
			}
		}
	} else {
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: negotiationsession.StatusFailed,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{
		Status: negotiationsession.StatusCompleted,
	}
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)
	for i := 0; i < 3; i++ {
		createTestSession(ctx, t, client, userID)
	}

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		"waiting for sessions to be processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	sessions, err := client.NegotiationSession.Query().
		Where(negotiationsession.StatusEQ(negotiationsession.StatusCompleted)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 3, "all 3 sessions should be completed")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)
}

// TestEnqueueDispatchesResetSession tests the direct dispatch lane: a
// recoordination reset re-enters in_progress, which the pending poller can
// never see — Enqueue is the only way it runs.
func TestEnqueueDispatchesResetSession(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)

	reset, err := client.NegotiationSession.Create().
		SetID(uuid.New().String()).
		SetInitiatorID(userID).
		SetParticipantIds([]string{userID}).
		SetIntent("다른 날로 다시 잡아줘").
		SetStatus(negotiationsession.StatusInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil)

	require.NoError(t, pool.Start(ctx))

	assert.True(t, pool.Enqueue(reset.ID))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for dispatched session to be processed",
		func() bool { return executor.processed.Load() >= 1 })

	pool.Stop()

	_, ran := executor.sessions.Load(reset.ID)
	assert.True(t, ran, "the reset session should have reached the executor")

	updated, err := client.NegotiationSession.Get(ctx, reset.ID)
	require.NoError(t, err)
	assert.Equal(t, negotiationsession.StatusCompleted, updated.Status)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)
	for i := 0; i < 5; i++ {
		createTestSession(ctx, t, client, userID)
	}

	// Use 2 workers matching MaxConcurrentSessions to avoid startup races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentSessions = 2
	cfg.PollInterval = 50 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for sessions in progress",
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentSessions) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int64(cfg.MaxConcurrentSessions), executor.inProgress.Load(),
		"should have exactly MaxConcurrentSessions in progress")

	dbInProgress, err := client.NegotiationSession.Query().
		Where(negotiationsession.StatusEQ(negotiationsession.StatusInProgress)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentSessions, dbInProgress, "DB should show MaxConcurrentSessions in_progress")

	// Release executions to complete
	close(releaseCh)

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for first batch to complete",
		func() bool { return executor.inProgress.Load() == 0 })

	// Workers should now claim the remaining sessions
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		"waiting for all sessions to be processed",
		func() bool { return executor.processed.Load() >= 5 })

	pool.Stop()

	completedCount, err := client.NegotiationSession.Query().
		Where(negotiationsession.StatusEQ(negotiationsession.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 sessions should complete")
}

// TestHeartbeatUpdates tests that heartbeats advance last_heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	userID := createTestUser(ctx, t, client)
	session := createTestSession(ctx, t, client, userID)

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond

	releaseCh := make(chan struct{})
	executor := &mockExecutor{releaseCh: releaseCh}
	pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil)

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for session to be claimed",
		func() bool {
			s, err := client.NegotiationSession.Get(ctx, session.ID)
			require.NoError(t, err)
			return s.Status == negotiationsession.StatusInProgress && s.LastHeartbeatAt != nil
		})

	s1, err := client.NegotiationSession.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, s1.LastHeartbeatAt)
	initialBeat := *s1.LastHeartbeatAt

	// Wait for at least one heartbeat tick (interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	s2, err := client.NegotiationSession.Get(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, negotiationsession.StatusInProgress, s2.Status, "session should still be in progress")
	require.NotNil(t, s2.LastHeartbeatAt)
	assert.True(t, s2.LastHeartbeatAt.After(initialBeat), "last_heartbeat_at should advance")

	close(releaseCh)
	pool.Stop()
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.NegotiationSession) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// SessionExecutor.Execute does not panic and is translated into a terminal
// failed status with the right cause.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		userID := createTestUser(ctx, t, client)
		session := createTestSession(ctx, t, client, userID)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for session to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		updated, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result after session timeout", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		userID := createTestUser(ctx, t, client)
		session := createTestSession(ctx, t, client, userID)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.SessionTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil)

		require.NoError(t, pool.Start(ctx))

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for session to be processed",
			func() bool { return executor.processed.Load() >= 1 })

		// Give the worker time to persist the terminal status
		time.Sleep(100 * time.Millisecond)
		pool.Stop()

		updated, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("nil result after cancellation", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		userID := createTestUser(ctx, t, client)
		session := createTestSession(ctx, t, client, userID)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.SessionTimeout = 30 * time.Second // Long timeout so cancellation wins

		executor := &nilExecutor{blockUntilCtxDone: true}
		pool := NewWorkerPool("test-pod", client, cfg, executor, nil, nil)

		require.NoError(t, pool.Start(ctx))

		// Wait until the executor is actually running — the cancel registry
		// entry exists by then.
		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for executor to start",
			func() bool { return executor.processed.Load() >= 1 })

		// Cancel via the pool (simulates API-triggered cancellation)
		require.True(t, pool.CancelSession(session.ID), "CancelSession should find the active session")

		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for session to reach terminal status",
			func() bool {
				s, err := client.NegotiationSession.Get(ctx, session.ID)
				require.NoError(t, err)
				return s.Status == negotiationsession.StatusFailed
			})

		pool.Stop()

		updated, err := client.NegotiationSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, negotiationsession.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "context canceled")
	})
}
