package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/models"
)

// statusRank orders the lifecycle for the forward-only rule. Terminal
// side-exits share the top rank so nothing moves on from them.
var statusRank = map[negotiationsession.Status]int{
	negotiationsession.StatusPending:         0,
	negotiationsession.StatusInProgress:      1,
	negotiationsession.StatusPendingApproval: 2,
	negotiationsession.StatusCompleted:       3,
	negotiationsession.StatusFailed:          3,
	negotiationsession.StatusNeedsReschedule: 3,
}

// transitionAllowed enforces the session lifecycle: transitions move
// forward, except completed → in_progress (reschedule inside the same
// thread) and pending_approval → in_progress (any rejection). Writing the
// current status again is a no-op and always allowed.
func transitionAllowed(from, to negotiationsession.Status) bool {
	if from == to {
		return true
	}
	if to == negotiationsession.StatusInProgress &&
		(from == negotiationsession.StatusCompleted || from == negotiationsession.StatusPendingApproval) {
		return true
	}
	return statusRank[to] > statusRank[from]
}

// SessionService manages negotiation session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new negotiation session in pending state. The
// worker pool picks it up from there.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.NegotiationSession, error) {
	// Validate input
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.InitiatorID == "" {
		return nil, NewValidationError("initiator_id", "required")
	}
	if len(req.ParticipantIDs) < 1 {
		return nil, NewValidationError("participant_ids", "required")
	}
	if req.Intent == "" {
		return nil, NewValidationError("intent", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.NegotiationSession.Create().
		SetID(req.SessionID).
		SetInitiatorID(req.InitiatorID).
		SetParticipantIds(req.ParticipantIDs).
		SetIntent(req.Intent).
		SetStatus(negotiationsession.StatusPending).
		SetPlacePref(req.Prefs.ToMap())

	if req.TargetID != "" {
		builder.SetTargetID(req.TargetID)
	}
	if req.TimeWindow != nil {
		builder.SetTimeWindow(req.TimeWindow)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID, optionally with its transcript.
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withMessages bool) (*ent.NegotiationSession, error) {
	query := s.client.NegotiationSession.Query().
		Where(negotiationsession.IDEQ(sessionID))

	if withMessages {
		query = query.WithMessages(func(q *ent.NegotiationMessageQuery) {
			q.Order(ent.Asc(negotiationmessage.FieldCreatedAt))
		})
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ListSessions lists sessions with filtering and pagination
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.NegotiationSession.Query()

	// Apply filters
	if filters.Status != "" {
		query = query.Where(negotiationsession.StatusEQ(negotiationsession.Status(filters.Status)))
	}
	if filters.InitiatorID != "" {
		query = query.Where(negotiationsession.InitiatorIDEQ(filters.InitiatorID))
	}
	if filters.ParticipantID != "" {
		pid := filters.ParticipantID
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(negotiationsession.FieldParticipantIds, pid))
		})
	}
	if filters.ThreadID != "" {
		tid := filters.ThreadID
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(negotiationsession.FieldPlacePref, tid, sqljson.Path("thread_id")))
		})
	}
	if filters.CreatedAfter != nil {
		query = query.Where(negotiationsession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(negotiationsession.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(negotiationsession.DeletedAtIsNil())
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(negotiationsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListSessionsByThread returns all sessions sharing a thread_id, oldest
// first. Thread reads union these sessions' transcripts.
func (s *SessionService) ListSessionsByThread(ctx context.Context, threadID string) ([]*ent.NegotiationSession, error) {
	if threadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}

	sessions, err := s.client.NegotiationSession.Query().
		Where(negotiationsession.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(negotiationsession.FieldPlacePref, threadID, sqljson.Path("thread_id")))
		}).
		Order(ent.Asc(negotiationsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread sessions: %w", err)
	}

	return sessions, nil
}

// UpdateSessionStatus moves a session along its lifecycle, enforcing the
// forward-only rule. Terminal statuses stamp completed_at; entering
// in_progress stamps started_at; parking or terminating clears the
// heartbeat. The row is locked so concurrent writers serialize on the
// guard instead of racing past it.
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID string, status negotiationsession.Status) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.NegotiationSession.Query().
		Where(negotiationsession.IDEQ(sessionID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load session for status update: %w", err)
	}

	if !transitionAllowed(current.Status, status) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, status)
	}

	update := tx.NegotiationSession.UpdateOneID(sessionID).
		SetStatus(status)

	switch status {
	case negotiationsession.StatusInProgress:
		update.SetStartedAt(time.Now())
	case negotiationsession.StatusCompleted,
		negotiationsession.StatusFailed,
		negotiationsession.StatusNeedsReschedule:
		update.SetCompletedAt(time.Now()).ClearLastHeartbeatAt()
	case negotiationsession.StatusPendingApproval:
		update.ClearLastHeartbeatAt()
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}

	return nil
}

// UpdateSessionPrefs replaces the session's place_pref bag.
func (s *SessionService) UpdateSessionPrefs(ctx context.Context, sessionID string, prefs *models.SessionPrefs) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NegotiationSession.UpdateOneID(sessionID).
		SetPlacePref(prefs.ToMap()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session prefs: %w", err)
	}
	return nil
}

// SetFinalEvent records the calendar event a completed session produced.
func (s *SessionService) SetFinalEvent(ctx context.Context, sessionID, eventID string) error {
	err := s.client.NegotiationSession.UpdateOneID(sessionID).
		SetFinalEventID(eventID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set final event: %w", err)
	}
	return nil
}

// SetErrorMessage records why a session failed.
func (s *SessionService) SetErrorMessage(ctx context.Context, sessionID, message string) error {
	err := s.client.NegotiationSession.UpdateOneID(sessionID).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set error message: %w", err)
	}
	return nil
}

// Heartbeat stamps last_heartbeat_at. Workers call this while a session
// runs; orphan detection treats a stale stamp as a dead worker.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	err := s.client.NegotiationSession.UpdateOneID(sessionID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

// ResetForRecoordination rearms the thread's sessions with a new requested
// slot. Sessions re-enter in_progress (the two permitted backward arcs end
// there) with heartbeats cleared; the caller hands them straight to the
// worker pool since the pending poller will not see them.
func (s *SessionService) ResetForRecoordination(ctx context.Context, sessionIDs []string, date, timeOfDay string) ([]*ent.NegotiationSession, error) {
	if len(sessionIDs) == 0 {
		return nil, NewValidationError("session_ids", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	reset := make([]*ent.NegotiationSession, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		session, err := tx.NegotiationSession.Query().
			Where(negotiationsession.IDEQ(id)).
			ForUpdate().
			Only(writeCtx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load session %s: %w", id, err)
		}

		if !transitionAllowed(session.Status, negotiationsession.StatusInProgress) {
			return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, session.Status, negotiationsession.StatusInProgress)
		}

		prefs, err := models.ParseSessionPrefs(session.PlacePref)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prefs for %s: %w", id, err)
		}
		if prefs == nil {
			prefs = &models.SessionPrefs{}
		}
		if date != "" {
			prefs.RequestedDate = date
		}
		if timeOfDay != "" {
			prefs.RequestedTime = timeOfDay
		}
		prefs.AgreedDate = ""
		prefs.AgreedTime = ""

		session, err = tx.NegotiationSession.UpdateOneID(id).
			SetStatus(negotiationsession.StatusInProgress).
			SetPlacePref(prefs.ToMap()).
			SetStartedAt(time.Now()).
			ClearLastHeartbeatAt().
			ClearFinalEventID().
			ClearCompletedAt().
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to reset session %s: %w", id, err)
		}
		reset = append(reset, session)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit recoordination reset: %w", err)
	}

	return reset, nil
}

// ReopenAfterRejection moves rejected sessions back to in_progress without
// scheduling them. Unlike ResetForRecoordination it clears started_at: the
// rows are waiting for the user to name a new slot, so neither the pending
// poller nor the orphan sweep may touch them in the meantime. Sessions that
// already left pending_approval are skipped — a concurrent approval that
// completed the thread wins.
func (s *SessionService) ReopenAfterRejection(ctx context.Context, sessionIDs []string) ([]string, error) {
	if len(sessionIDs) == 0 {
		return nil, NewValidationError("session_ids", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	reopened := make([]string, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		session, err := tx.NegotiationSession.Query().
			Where(negotiationsession.IDEQ(id)).
			ForUpdate().
			Only(writeCtx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load session %s: %w", id, err)
		}
		if session.Status != negotiationsession.StatusPendingApproval {
			continue
		}

		err = tx.NegotiationSession.UpdateOneID(id).
			SetStatus(negotiationsession.StatusInProgress).
			ClearStartedAt().
			ClearLastHeartbeatAt().
			Exec(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to reopen session %s: %w", id, err)
		}
		reopened = append(reopened, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection reopen: %w", err)
	}

	return reopened, nil
}

// FindOrphanedSessions finds in_progress sessions whose worker heartbeat
// went stale. Parked sessions (heartbeat cleared) are not orphans.
func (s *SessionService) FindOrphanedSessions(ctx context.Context, threshold time.Duration) ([]*ent.NegotiationSession, error) {
	cutoff := time.Now().Add(-threshold)

	sessions, err := s.client.NegotiationSession.Query().
		Where(
			negotiationsession.StatusEQ(negotiationsession.StatusInProgress),
			negotiationsession.LastHeartbeatAtNotNil(),
			negotiationsession.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}

	return sessions, nil
}

// SoftDeleteOldSessions soft deletes terminal sessions older than the
// retention period.
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.NegotiationSession.Update().
		Where(
			negotiationsession.StatusIn(
				negotiationsession.StatusCompleted,
				negotiationsession.StatusFailed,
				negotiationsession.StatusNeedsReschedule,
			),
			negotiationsession.CompletedAtLT(cutoff),
			negotiationsession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}

	return count, nil
}

// RestoreSession restores a soft-deleted session
func (s *SessionService) RestoreSession(ctx context.Context, sessionID string) error {
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.NegotiationSession.UpdateOneID(sessionID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	return nil
}

// SearchSessions performs full-text search over session intent and
// negotiation prose. Uses the 'simple' text search configuration: Korean
// has no stemmer in stock PostgreSQL and english stemming mangles it.
func (s *SessionService) SearchSessions(ctx context.Context, query string, limit int) ([]*ent.NegotiationSession, error) {
	if limit <= 0 {
		limit = 20
	}

	sessions, err := s.client.NegotiationSession.Query().
		Where(negotiationsession.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('simple', intent) @@ plainto_tsquery('simple', $1)", query),
				sql.ExprP("EXISTS (SELECT 1 FROM negotiation_messages nm WHERE nm.session_id = a2a_sessions.session_id AND to_tsvector('simple', nm.prose) @@ plainto_tsquery('simple', $2))", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(negotiationsession.FieldCreatedAt)).
		All(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}

	return sessions, nil
}
