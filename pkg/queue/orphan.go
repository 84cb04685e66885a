package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/ent/predicate"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/models"
)

// orphanNoticeProse is the system message left on a recovered session so the
// participants see why their negotiation stopped.
const orphanNoticeProse = "세션이 중단되어 협의를 종료했어요. 다시 요청해 주시면 처음부터 진행할게요."

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection scans for orphaned sessions: once at startup (sessions a
// previous instance left behind) and then periodically. All pods run this
// independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	if err := p.detectAndRecoverOrphans(ctx); err != nil {
		slog.Error("Startup orphan sweep failed", "error", err)
	}

	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// orphanedSince matches in_progress rows nobody is driving: a stale worker
// heartbeat (dead pod, or a run that aborted mid-round), or a recoordination
// reset that no worker ever adopted (those re-enter in_progress with the
// heartbeat cleared).
func orphanedSince(cutoff time.Time) predicate.NegotiationSession {
	return negotiationsession.Or(
		negotiationsession.And(
			negotiationsession.LastHeartbeatAtNotNil(),
			negotiationsession.LastHeartbeatAtLT(cutoff),
		),
		negotiationsession.And(
			negotiationsession.LastHeartbeatAtIsNil(),
			negotiationsession.StartedAtNotNil(),
			negotiationsession.StartedAtLT(cutoff),
		),
	)
}

// detectAndRecoverOrphans finds orphaned in_progress sessions and marks them
// as failed (terminal state).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.NegotiationSession.Query().
		Where(
			negotiationsession.StatusEQ(negotiationsession.StatusInProgress),
			negotiationsession.DeletedAtIsNil(),
			orphanedSince(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(orphans))

	recovered := 0
	for _, session := range orphans {
		ok, err := p.recoverOrphanedSession(ctx, session, cutoff)
		if err != nil {
			slog.Error("Failed to recover orphaned session",
				"session_id", session.ID,
				"error", err)
			continue
		}
		if ok {
			recovered++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedSession marks a single orphaned session as failed. The
// update re-checks the orphan condition so a session adopted between the
// scan and this write is left alone (returns false, nil).
func (p *WorkerPool) recoverOrphanedSession(ctx context.Context, session *ent.NegotiationSession, cutoff time.Time) (bool, error) {
	log := slog.With("session_id", session.ID)

	lastHeartbeat := "none"
	if session.LastHeartbeatAt != nil {
		lastHeartbeat = session.LastHeartbeatAt.Format(time.RFC3339)
	}

	update := p.client.NegotiationSession.Update().
		Where(
			negotiationsession.IDEQ(session.ID),
			negotiationsession.StatusEQ(negotiationsession.StatusInProgress),
			orphanedSince(cutoff),
		).
		SetStatus(negotiationsession.StatusFailed).
		SetCompletedAt(time.Now()).
		ClearLastHeartbeatAt()

	// A mid-round abort already recorded why the run stopped; keep that
	// over the generic heartbeat message.
	if session.ErrorMessage == nil || *session.ErrorMessage == "" {
		update.SetErrorMessage(fmt.Sprintf("orphaned: no worker heartbeat since %s", lastHeartbeat))
	}

	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark session as failed: %w", err)
	}
	if n == 0 {
		log.Info("Orphan candidate was picked up before recovery, skipping")
		return false, nil
	}

	p.appendOrphanNotice(ctx, session.ID)
	p.publishOrphanStatus(ctx, session.ID)
	scheduleEventCleanup(p.client, session.ID)

	log.Warn("Orphaned session marked as failed", "last_heartbeat", lastHeartbeat)
	return true, nil
}

// appendOrphanNotice leaves a system transcript row on the failed session.
// Best-effort — recovery already happened.
func (p *WorkerPool) appendOrphanNotice(ctx context.Context, sessionID string) {
	if p.messages == nil {
		return
	}
	_, err := p.messages.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID:  sessionID,
		SenderID:   "system",
		SenderName: "시스템",
		Type:       negotiationmessage.TypeNeedHuman,
		Round:      0,
		Prose:      orphanNoticeProse,
	})
	if err != nil {
		slog.Warn("Failed to append orphan notice", "session_id", sessionID, "error", err)
	}
}

// publishOrphanStatus announces the failure on the session's event channels.
func (p *WorkerPool) publishOrphanStatus(ctx context.Context, sessionID string) {
	if p.bus == nil {
		return
	}
	err := p.bus.PublishSessionStatus(ctx, sessionID, events.SessionStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionStatus,
			SessionID: sessionID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:       negotiationsession.StatusFailed,
		ErrorMessage: orphanNoticeProse,
	})
	if err != nil {
		slog.Warn("Failed to publish orphan status", "session_id", sessionID, "error", err)
	}
}
