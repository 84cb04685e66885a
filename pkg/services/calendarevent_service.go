package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/calendarevent"
	"github.com/moim-labs/moim/pkg/models"
)

// CalendarEventService keeps a local mirror of every calendar write. The
// partial unique index on (owner_id, session_id) makes finalization
// idempotent: a second write for the same pair surfaces ErrAlreadyExists.
type CalendarEventService struct {
	client *ent.Client
}

// NewCalendarEventService creates a new CalendarEventService
func NewCalendarEventService(client *ent.Client) *CalendarEventService {
	return &CalendarEventService{client: client}
}

// RecordCalendarEvent mirrors a successful calendar write.
func (s *CalendarEventService) RecordCalendarEvent(httpCtx context.Context, req models.CreateCalendarEventRequest) (*ent.CalendarEvent, error) {
	// Validate input
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}
	if req.GoogleEventID == "" {
		return nil, NewValidationError("google_event_id", "required")
	}
	if req.Summary == "" {
		return nil, NewValidationError("summary", "required")
	}
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return nil, NewValidationError("start_at", "start and end required")
	}
	if !req.EndAt.After(req.StartAt) {
		return nil, NewValidationError("end_at", "must be after start_at")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.CalendarEvent.Create().
		SetID(uuid.New().String()).
		SetOwnerID(req.OwnerID).
		SetGoogleEventID(req.GoogleEventID).
		SetSummary(req.Summary).
		SetStartAt(req.StartAt).
		SetEndAt(req.EndAt).
		SetCreatedAt(time.Now())

	if req.SessionID != "" {
		builder.SetSessionID(req.SessionID)
	}
	if req.Location != "" {
		builder.SetLocation(req.Location)
	}
	if req.HTMLLink != "" {
		builder.SetHTMLLink(req.HTMLLink)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record calendar event: %w", err)
	}

	return evt, nil
}

// GetSessionEvents returns the confirmed mirror rows a negotiation
// produced, one per participant whose write succeeded.
func (s *CalendarEventService) GetSessionEvents(ctx context.Context, sessionID string) ([]*ent.CalendarEvent, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	events, err := s.client.CalendarEvent.Query().
		Where(
			calendarevent.SessionIDEQ(sessionID),
			calendarevent.StatusEQ(calendarevent.StatusConfirmed),
		).
		Order(ent.Asc(calendarevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session events: %w", err)
	}

	return events, nil
}

// ListOwnerEvents returns a user's mirror rows overlapping a window
func (s *CalendarEventService) ListOwnerEvents(ctx context.Context, ownerID string, from, to time.Time) ([]*ent.CalendarEvent, error) {
	if ownerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}

	events, err := s.client.CalendarEvent.Query().
		Where(
			calendarevent.OwnerIDEQ(ownerID),
			calendarevent.StatusEQ(calendarevent.StatusConfirmed),
			calendarevent.StartAtLT(to),
			calendarevent.EndAtGT(from),
		).
		Order(ent.Asc(calendarevent.FieldStartAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner events: %w", err)
	}

	return events, nil
}

// MarkCancelled flips a mirror row to cancelled after the upstream calendar
// delete succeeded. The row is kept for audit.
func (s *CalendarEventService) MarkCancelled(ctx context.Context, id string) error {
	err := s.client.CalendarEvent.UpdateOneID(id).
		SetStatus(calendarevent.StatusCancelled).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark calendar event cancelled: %w", err)
	}
	return nil
}
