package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/event"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/events"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// eventCleanupGrace is how long terminal sessions keep their transient event
// rows, so WebSocket clients can still receive (and catch up on) the final
// events before they are deleted.
const eventCleanupGrace = 60 * time.Second

// Worker is a single queue worker that polls for and processes sessions.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor SessionExecutor
	bus      StatusPublisher
	pool     SessionRegistry
	dispatch <-chan string
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// SessionRegistry is the subset of WorkerPool used by Worker for session registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// StatusPublisher is the slice of the event bus the queue publishes on.
// *events.EventPublisher satisfies it.
type StatusPublisher interface {
	PublishSessionStatus(ctx context.Context, sessionID string, payload events.SessionStatusPayload) error
}

// NewWorker creates a new queue worker.
// bus may be nil (status events disabled).
// dispatch may be nil (direct dispatch disabled, polling only).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor SessionExecutor, pool SessionRegistry, bus StatusPublisher, dispatch <-chan string) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		bus:          bus,
		pool:         pool,
		dispatch:     dispatch,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.idle(ctx, w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.idle(ctx, time.Second) // Brief backoff on error
			}
		}
	}
}

// idle waits out the poll interval. A directly dispatched session cuts the
// wait short and is processed immediately.
func (w *Worker) idle(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-w.stopCh:
	case <-ctx.Done():
	case <-timer.C:
	case sessionID := <-w.dispatch:
		if err := w.processDispatched(ctx, sessionID); err != nil {
			if errors.Is(err, ErrAlreadyClaimed) || errors.Is(err, ErrAtCapacity) {
				return
			}
			slog.Error("Error processing dispatched session",
				"session_id", sessionID, "worker_id", w.id, "error", err)
		}
	}
}

// pollAndProcess checks capacity, claims a session, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	if err := w.checkCapacity(ctx); err != nil {
		return err
	}

	session, err := w.claimNextSession(ctx)
	if err != nil {
		return err
	}

	return w.process(ctx, session)
}

// processDispatched runs a session handed over by Enqueue. Dispatch is a
// hint, not a handoff of ownership — the claim below re-reads the row and
// decides whether this worker actually gets it.
func (w *Worker) processDispatched(ctx context.Context, sessionID string) error {
	if err := w.checkCapacity(ctx); err != nil {
		return err
	}

	session, err := w.claimSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}

	return w.process(ctx, session)
}

// checkCapacity enforces the global concurrent session limit (best-effort;
// racy with concurrent workers but bounded by WorkerCount and mitigated by
// poll jitter).
func (w *Worker) checkCapacity(ctx context.Context) error {
	// Rows without a heartbeat are parked or stranded, not being worked.
	activeCount, err := w.client.NegotiationSession.Query().
		Where(
			negotiationsession.StatusEQ(negotiationsession.StatusInProgress),
			negotiationsession.LastHeartbeatAtNotNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}
	return nil
}

// process runs a claimed session through the executor and records the outcome.
func (w *Worker) process(ctx context.Context, session *ent.NegotiationSession) error {
	log := slog.With("session_id", session.ID, "worker_id", w.id)
	log.Info("Session claimed")

	w.setStatus(WorkerStatusWorking, session.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Session context with timeout
	sessionCtx, cancelSession := context.WithTimeout(ctx, w.config.SessionTimeout)
	defer cancelSession()

	// Register cancel function for API-triggered cancellation
	w.pool.RegisterSession(session.ID, cancelSession)
	defer w.pool.UnregisterSession(session.ID)

	// Heartbeat keeps the claim alive for orphan detection
	heartbeatCtx, cancelHeartbeat := context.WithCancel(sessionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, session.ID)

	result := w.executor.Execute(sessionCtx, session)

	// Nil-guard: synthesize a safe result if the executor returned nil
	if result == nil {
		switch {
		case errors.Is(sessionCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: negotiationsession.StatusFailed,
				Error:  fmt.Errorf("negotiation timed out after %v", w.config.SessionTimeout),
			}
		case errors.Is(sessionCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: negotiationsession.StatusFailed,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: negotiationsession.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	cancelHeartbeat()

	// Record the outcome on a background context — sessionCtx may be done.
	if err := w.recordResult(context.Background(), session, result); err != nil {
		log.Error("Failed to record session result", "status", result.Status, "error", err)
		return err
	}

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	log.Info("Session processing complete", "status", result.Status)
	return nil
}

// claimNextSession atomically claims the next pending session using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextSession(ctx context.Context) (*ent.NegotiationSession, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	session, err := tx.NegotiationSession.Query().
		Where(
			negotiationsession.StatusEQ(negotiationsession.StatusPending),
			negotiationsession.DeletedAtIsNil(),
		).
		Order(ent.Asc(negotiationsession.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoSessionsAvailable
		}
		return nil, fmt.Errorf("failed to query pending session: %w", err)
	}

	// Claim: set in_progress, started_at, last_heartbeat_at
	now := time.Now()
	session, err = session.Update().
		SetStatus(negotiationsession.StatusInProgress).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return session, nil
}

// claimSessionByID claims a specific session for direct dispatch. Unlike the
// poller it also accepts rows a recoordination reset moved straight back to
// in_progress — those carry no heartbeat until a worker adopts them. A row
// another worker is already driving (heartbeat set) is left alone.
func (w *Worker) claimSessionByID(ctx context.Context, sessionID string) (*ent.NegotiationSession, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	session, err := tx.NegotiationSession.Query().
		Where(
			negotiationsession.IDEQ(sessionID),
			negotiationsession.DeletedAtIsNil(),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrAlreadyClaimed
		}
		return nil, fmt.Errorf("failed to load dispatched session: %w", err)
	}

	now := time.Now()
	switch {
	case session.Status == negotiationsession.StatusPending:
		session, err = session.Update().
			SetStatus(negotiationsession.StatusInProgress).
			SetStartedAt(now).
			SetLastHeartbeatAt(now).
			Save(ctx)
	case session.Status == negotiationsession.StatusInProgress && session.LastHeartbeatAt == nil:
		// Adopt a reset row. Stamping the heartbeat under the row lock is
		// what makes adoption exclusive.
		session, err = session.Update().
			SetLastHeartbeatAt(now).
			Save(ctx)
	default:
		return nil, ErrAlreadyClaimed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim dispatched session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return session, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.NegotiationSession.UpdateOneID(sessionID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "session_id", sessionID, "error", err)
			}
		}
	}
}

// recordResult writes the run's end state. The engine already persisted
// everything that matters during the run; what is left here depends on how
// it ended:
//
//   - pending_approval: the engine parked the whole thread and published the
//     status events. Re-stamp idempotently in case that write was lost, and
//     keep the event rows — the approval flow still streams on these channels.
//   - in_progress: the run aborted mid-round (a transcript append failed).
//     Record the error and leave the session where it stands; the orphan
//     sweep fails it once the heartbeat goes stale.
//   - completed, failed, needs_reschedule: stamp the terminal state, publish
//     it unless the engine already did, and schedule event-row cleanup.
func (w *Worker) recordResult(ctx context.Context, session *ent.NegotiationSession, result *ExecutionResult) error {
	switch result.Status {
	case negotiationsession.StatusPendingApproval:
		err := w.client.NegotiationSession.UpdateOneID(session.ID).
			SetStatus(negotiationsession.StatusPendingApproval).
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to park session for approval: %w", err)
		}
		return nil

	case negotiationsession.StatusInProgress:
		if result.Error == nil {
			return nil
		}
		err := w.client.NegotiationSession.UpdateOneID(session.ID).
			SetErrorMessage(result.Error.Error()).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to record abort error: %w", err)
		}
		return nil

	default:
		update := w.client.NegotiationSession.UpdateOneID(session.ID).
			SetStatus(result.Status).
			SetCompletedAt(time.Now()).
			ClearLastHeartbeatAt()
		if result.Error != nil {
			update = update.SetErrorMessage(result.Error.Error())
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update session terminal status: %w", err)
		}

		// needs_reschedule events come from the engine's escalation path
		// with the reason attached; failed is announced here.
		if result.Status != negotiationsession.StatusNeedsReschedule {
			w.publishSessionStatus(ctx, session.ID, result.Status, result.Error)
		}

		scheduleEventCleanup(w.client, session.ID)
		return nil
	}
}

// publishSessionStatus publishes a session status event for real-time
// WebSocket delivery. Non-blocking: errors are logged.
func (w *Worker) publishSessionStatus(ctx context.Context, sessionID string, status negotiationsession.Status, cause error) {
	if w.bus == nil {
		return
	}
	payload := events.SessionStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionStatus,
			SessionID: sessionID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status: status,
	}
	if cause != nil {
		payload.ErrorMessage = cause.Error()
	}
	if err := w.bus.PublishSessionStatus(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

// scheduleEventCleanup deletes a session's transient event rows after the
// grace period. Shared by workers and the orphan sweep.
func scheduleEventCleanup(client *ent.Client, sessionID string) {
	time.AfterFunc(eventCleanupGrace, func() {
		_, err := client.Event.Delete().
			Where(event.SessionIDEQ(sessionID)).
			Exec(context.Background())
		if err != nil {
			slog.Warn("Failed to cleanup session events after grace period",
				"session_id", sessionID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
