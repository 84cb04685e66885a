package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/pkg/models"
)

// ChatLogService manages the per-user chat history. Rows are appended by
// the orchestrator and by negotiation fan-out; only their metadata bag is
// ever updated afterwards (approval cards flip buttons_disabled in place).
type ChatLogService struct {
	client *ent.Client
}

// NewChatLogService creates a new ChatLogService
func NewChatLogService(client *ent.Client) *ChatLogService {
	return &ChatLogService{client: client}
}

// CreateChatLog appends one row to a user's chat view and bumps the parent
// conversation's activity timestamp.
func (s *ChatLogService) CreateChatLog(httpCtx context.Context, req models.CreateChatLogRequest) (*ent.ChatLog, error) {
	// Validate input
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.MessageType == "" {
		return nil, NewValidationError("message_type", "required")
	}
	messageType := chatlog.MessageType(req.MessageType)
	if err := chatlog.MessageTypeValidator(messageType); err != nil {
		return nil, NewValidationError("message_type", "invalid value")
	}

	// Use background context with timeout. Fan-out rows are written after
	// the originating HTTP request may have gone away.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.ChatLog.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetMessageType(messageType).
		SetCreatedAt(time.Now())

	if req.FriendID != "" {
		builder.SetFriendID(req.FriendID)
	}
	if req.SessionID != "" {
		builder.SetSessionID(req.SessionID)
	}
	if req.ChatSessionID != "" {
		builder.SetChatSessionID(req.ChatSessionID)
	}
	if req.RequestText != "" {
		builder.SetRequestText(req.RequestText)
	}
	if req.ResponseText != "" {
		builder.SetResponseText(req.ResponseText)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	log, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat log: %w", err)
	}

	if req.ChatSessionID != "" {
		err = tx.ChatSession.UpdateOneID(req.ChatSessionID).
			SetUpdatedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to touch chat session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit chat log: %w", err)
	}

	return log, nil
}

// ListUserLogs returns one page of a user's chat history, newest first
func (s *ChatLogService) ListUserLogs(ctx context.Context, userID string, limit, offset int) (*models.ChatLogListResponse, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	query := s.client.ChatLog.Query().
		Where(chatlog.UserIDEQ(userID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count chat logs: %w", err)
	}

	if limit <= 0 {
		limit = 50 // Default
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(chatlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat logs: %w", err)
	}

	return &models.ChatLogListResponse{
		Logs:       logs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListChatSessionLogs returns one conversation's rows oldest first, the
// order a chat view renders them.
func (s *ChatLogService) ListChatSessionLogs(ctx context.Context, chatSessionID string, limit, offset int) (*models.ChatLogListResponse, error) {
	if chatSessionID == "" {
		return nil, NewValidationError("chat_session_id", "required")
	}

	query := s.client.ChatLog.Query().
		Where(chatlog.ChatSessionIDEQ(chatSessionID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count chat logs: %w", err)
	}

	if limit <= 0 {
		limit = 50 // Default
	}
	if offset < 0 {
		offset = 0
	}

	logs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(chatlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat session logs: %w", err)
	}

	return &models.ChatLogListResponse{
		Logs:       logs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// LatestApprovalCard finds the approval card most recently dealt to a user
// for a session. Approval responses update this row's metadata in place.
func (s *ChatLogService) LatestApprovalCard(ctx context.Context, sessionID, userID string) (*ent.ChatLog, error) {
	card, err := s.client.ChatLog.Query().
		Where(
			chatlog.SessionIDEQ(sessionID),
			chatlog.UserIDEQ(userID),
			chatlog.MessageTypeEQ(chatlog.MessageTypeScheduleApproval),
		).
		Order(ent.Desc(chatlog.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get approval card: %w", err)
	}
	return card, nil
}

// ApprovalCardsForSessions returns every approval card across the given
// sessions. Rejection fan-out disables the buttons on all of them.
func (s *ChatLogService) ApprovalCardsForSessions(ctx context.Context, sessionIDs []string) ([]*ent.ChatLog, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	cards, err := s.client.ChatLog.Query().
		Where(
			chatlog.SessionIDIn(sessionIDs...),
			chatlog.MessageTypeEQ(chatlog.MessageTypeScheduleApproval),
		).
		Order(ent.Asc(chatlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval cards: %w", err)
	}
	return cards, nil
}

// LatestApprovalResponses scans a session's approval_response rows and keeps
// the newest per user. Approval aggregation always reads this fresh instead
// of trusting any approved_by list cached in metadata: a stale snapshot must
// never finalize a meeting.
func (s *ChatLogService) LatestApprovalResponses(ctx context.Context, sessionID string) (map[string]*ent.ChatLog, error) {
	rows, err := s.client.ChatLog.Query().
		Where(
			chatlog.SessionIDEQ(sessionID),
			chatlog.MessageTypeEQ(chatlog.MessageTypeApprovalResponse),
		).
		Order(ent.Desc(chatlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval responses: %w", err)
	}

	latest := make(map[string]*ent.ChatLog, len(rows))
	for _, row := range rows {
		if _, seen := latest[row.UserID]; !seen {
			latest[row.UserID] = row
		}
	}
	return latest, nil
}

// UpdateLogMetadata replaces a chat log row's metadata bag
func (s *ChatLogService) UpdateLogMetadata(ctx context.Context, chatLogID string, metadata map[string]any) error {
	err := s.client.ChatLog.UpdateOneID(chatLogID).
		SetMetadata(metadata).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update chat log metadata: %w", err)
	}
	return nil
}
