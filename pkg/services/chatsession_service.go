package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatsession"
	"github.com/moim-labs/moim/pkg/models"
)

// ChatSessionService manages per-user conversation containers
type ChatSessionService struct {
	client *ent.Client
}

// NewChatSessionService creates a new ChatSessionService
func NewChatSessionService(client *ent.Client) *ChatSessionService {
	return &ChatSessionService{client: client}
}

// CreateChatSession creates a conversation container for a user
func (s *ChatSessionService) CreateChatSession(httpCtx context.Context, req models.CreateChatSessionRequest) (*ent.ChatSession, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID)
	if req.Title != "" {
		builder.SetTitle(req.Title)
	}

	cs, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	return cs, nil
}

// GetOrCreateChatSession resolves the container a chat message lands in.
// An empty ID starts a fresh conversation. Returns (session, created, error)
// where created indicates whether a new container was made. A container
// belonging to another user is reported as missing rather than leaked.
func (s *ChatSessionService) GetOrCreateChatSession(httpCtx context.Context, userID, chatSessionID string) (*ent.ChatSession, bool, error) {
	if userID == "" {
		return nil, false, NewValidationError("user_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if chatSessionID != "" {
		existing, err := s.client.ChatSession.Query().
			Where(
				chatsession.IDEQ(chatSessionID),
				chatsession.UserIDEQ(userID),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, false, ErrNotFound
			}
			return nil, false, fmt.Errorf("failed to query chat session: %w", err)
		}
		return existing, false, nil
	}

	cs, err := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create chat session: %w", err)
	}

	return cs, true, nil
}

// ListChatSessions returns a user's conversations, most recently active first
func (s *ChatSessionService) ListChatSessions(ctx context.Context, userID string) ([]*ent.ChatSession, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	sessions, err := s.client.ChatSession.Query().
		Where(chatsession.UserIDEQ(userID)).
		Order(ent.Desc(chatsession.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	return sessions, nil
}

// UpdateChatSessionTitle renames a conversation. The orchestrator titles new
// containers after the first user message.
func (s *ChatSessionService) UpdateChatSessionTitle(ctx context.Context, chatSessionID, title string) error {
	if title == "" {
		return NewValidationError("title", "required")
	}

	err := s.client.ChatSession.UpdateOneID(chatSessionID).
		SetTitle(title).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update chat session title: %w", err)
	}
	return nil
}

// TouchChatSession bumps updated_at so activity ordering tracks appends
func (s *ChatSessionService) TouchChatSession(ctx context.Context, chatSessionID string) error {
	err := s.client.ChatSession.UpdateOneID(chatSessionID).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch chat session: %w", err)
	}
	return nil
}
