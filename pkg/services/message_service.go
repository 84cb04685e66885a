package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/models"
)

// MessageService manages the negotiation transcript. Messages are
// append-only; there is no update or delete path.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// CreateMessage appends a negotiation turn to the transcript.
func (s *MessageService) CreateMessage(_ context.Context, req models.CreateMessageRequest) (*ent.NegotiationMessage, error) {
	// Validate input
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.SenderID == "" {
		return nil, NewValidationError("sender_id", "required")
	}
	if req.SenderName == "" {
		return nil, NewValidationError("sender_name", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if req.Prose == "" {
		return nil, NewValidationError("prose", "required")
	}
	if req.Round < 0 {
		return nil, NewValidationError("round", "must not be negative")
	}

	// Use background context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messageID := req.MessageID
	if messageID == "" {
		messageID = uuid.New().String()
	}

	builder := s.client.NegotiationMessage.Create().
		SetID(messageID).
		SetSessionID(req.SessionID).
		SetSenderID(req.SenderID).
		SetSenderName(req.SenderName).
		SetType(req.Type).
		SetRound(req.Round).
		SetProse(req.Prose).
		SetCreatedAt(time.Now())

	if req.ReceiverID != "" {
		builder.SetReceiverID(req.ReceiverID)
	}
	if req.Payload != nil {
		builder.SetPayload(req.Payload.ToMap())
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

// GetSessionMessages retrieves a session's full transcript in order
func (s *MessageService) GetSessionMessages(ctx context.Context, sessionID string) ([]*ent.NegotiationMessage, error) {
	messages, err := s.client.NegotiationMessage.Query().
		Where(negotiationmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(negotiationmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session messages: %w", err)
	}

	return messages, nil
}

// GetThreadMessages retrieves the merged transcript of every session in a
// thread, in wall-clock order. Reschedules append sessions to a thread, so
// the merge reads as one continuous conversation.
func (s *MessageService) GetThreadMessages(ctx context.Context, sessionIDs []string) ([]*ent.NegotiationMessage, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	messages, err := s.client.NegotiationMessage.Query().
		Where(negotiationmessage.SessionIDIn(sessionIDs...)).
		Order(ent.Asc(negotiationmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread messages: %w", err)
	}

	return messages, nil
}

// GetRoundMessages retrieves one round of a session's transcript. Deadlock
// detection scans recent rounds for accept-free stalemates.
func (s *MessageService) GetRoundMessages(ctx context.Context, sessionID string, round int) ([]*ent.NegotiationMessage, error) {
	messages, err := s.client.NegotiationMessage.Query().
		Where(
			negotiationmessage.SessionIDEQ(sessionID),
			negotiationmessage.RoundEQ(round),
		).
		Order(ent.Asc(negotiationmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get round messages: %w", err)
	}

	return messages, nil
}
