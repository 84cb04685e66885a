// Package models contains request/response models and business domain types.
package models

import "github.com/moim-labs/moim/ent"

// ChatMessageRequest is the body of POST /api/chat/messages. UserID comes
// from the X-User-ID header, not the body.
type ChatMessageRequest struct {
	ChatSessionID string   `json:"chat_session_id,omitempty"`
	Message       string   `json:"message"`
	FriendIDs     []string `json:"friend_ids,omitempty"`
}

// ChatReply is the orchestrator's answer to one user utterance.
type ChatReply struct {
	Response      string         `json:"response"`
	MessageType   string         `json:"message_type"`
	ChatSessionID string         `json:"chat_session_id,omitempty"`
	SessionIDs    []string       `json:"session_ids,omitempty"`
	ThreadID      string         `json:"thread_id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// CreateChatLogRequest contains fields for appending a chat log entry
type CreateChatLogRequest struct {
	UserID        string         `json:"user_id"`
	FriendID      string         `json:"friend_id,omitempty"`
	SessionID     string         `json:"session_id,omitempty"`
	ChatSessionID string         `json:"chat_session_id,omitempty"`
	RequestText   string         `json:"request_text,omitempty"`
	ResponseText  string         `json:"response_text,omitempty"`
	MessageType   string         `json:"message_type"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// CreateChatSessionRequest contains fields for creating a chat container
type CreateChatSessionRequest struct {
	UserID string `json:"user_id"`
	Title  string `json:"title,omitempty"`
}

// ChatLogListResponse contains one page of a user's chat history
type ChatLogListResponse struct {
	Logs       []*ent.ChatLog `json:"logs"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
