// Package queue provides session queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationsession"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no pending sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrAlreadyClaimed indicates a dispatched session was claimed by another
	// worker (or no longer exists) by the time this worker reached it.
	ErrAlreadyClaimed = errors.New("session already claimed")
)

// SessionExecutor is the interface for negotiation processing.
//
// The executor owns the ENTIRE negotiation internally:
//   - Runs the bounded round loop across every participant agent
//   - Persists and publishes each transcript message as it happens
//   - On unanimous agreement, parks the whole thread in pending_approval
//
// The executor writes results PROGRESSIVELY during execution, not at the end.
// The worker only handles: claiming, heartbeat, terminal status update, and event cleanup.
type SessionExecutor interface {
	Execute(ctx context.Context, session *ent.NegotiationSession) *ExecutionResult
}

// ExecutionResult is lightweight — just the end state of one run.
// All intermediate state (messages, prefs, thread-mate statuses) was already
// written to DB by the executor during processing.
//
// A non-terminal Status (in_progress) means the run aborted mid-round, e.g.
// a message append failed mid-stream; the worker records the error and
// leaves the session where it stands instead of forcing a terminal state.
type ExecutionResult struct {
	Status negotiationsession.Status // pending_approval, needs_reschedule, completed, failed, in_progress
	Error  error                     // Error details (if failed / aborted)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
