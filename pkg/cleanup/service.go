// Package cleanup enforces data retention in the background:
//   - soft-deletes negotiation sessions past the retention window
//   - removes orphaned event rows past their TTL
//
// Both operations are idempotent and safe to run from multiple pods; the
// database is the only coordination point.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/moim-labs/moim/pkg/config"
)

// SessionStore is the retention slice of the session service.
type SessionStore interface {
	SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error)
}

// EventStore is the retention slice of the event service. Per-session
// cleanup after terminal status handles the normal case; the TTL sweep is
// the safety net for rows whose AfterFunc never fired.
type EventStore interface {
	CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error)
}

// Service runs the periodic retention loop.
type Service struct {
	cfg      *config.RetentionConfig
	sessions SessionStore
	events   EventStore
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention service.
func NewService(cfg *config.RetentionConfig, sessions SessionStore, events EventStore) *Service {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		events:   events,
		logger:   slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background loop. One pass runs immediately so a pod
// restarted after long downtime catches up without waiting an interval.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"session_retention_days", s.cfg.SessionRetentionDays,
		"event_ttl", s.cfg.EventTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

// runAll executes one retention pass. Failures are logged and skipped; the
// next tick retries.
func (s *Service) runAll(ctx context.Context) {
	count, err := s.sessions.SoftDeleteOldSessions(ctx, s.cfg.SessionRetentionDays)
	if err != nil {
		s.logger.Error("Retention: soft-delete sessions failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: soft-deleted old sessions", "count", count)
	}

	count, err = s.events.CleanupOrphanedEvents(ctx, s.cfg.EventTTL)
	if err != nil {
		s.logger.Error("Retention: event cleanup failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: cleaned up orphaned events", "count", count)
	}
}
