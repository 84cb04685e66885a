package api

import (
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/moim-labs/moim/pkg/chat"
	"github.com/moim-labs/moim/pkg/models"
)

const (
	// maxChatMessageBytes bounds one utterance. The orchestrator reads the
	// whole text several times per turn; runaway payloads stop here.
	maxChatMessageBytes = 10_000

	defaultChatPageSize = 50
	maxChatPageSize     = 200
)

// sendChatMessageHandler handles POST /api/chat/messages.
// Runs the utterance through the orchestrator synchronously: slot-filling
// questions come back in this response, agent negotiations are enqueued and
// stream over /ws.
func (s *Server) sendChatMessageHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if s.orchestrator == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat is not available")
	}

	var req models.ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if len(req.Message) > maxChatMessageBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "message exceeds maximum length of 10,000 bytes")
	}

	reply, err := s.orchestrator.HandleMessage(c.Request().Context(), chat.HandleInput{
		UserID:        userID,
		ChatSessionID: req.ChatSessionID,
		Text:          req.Message,
		FriendIDs:     req.FriendIDs,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, reply)
}

// listChatMessagesHandler handles GET /api/chat/messages.
// With chat_session_id it pages one conversation, otherwise the user's
// whole feed. Both return newest first.
func (s *Server) listChatMessagesHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if s.chatLogs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat history is not available")
	}

	limit := defaultChatPageSize
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxChatPageSize {
			limit = n
		}
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	var page *models.ChatLogListResponse
	if chatSessionID := c.QueryParam("chat_session_id"); chatSessionID != "" {
		page, err = s.chatLogs.ListChatSessionLogs(c.Request().Context(), chatSessionID, limit, offset)
	} else {
		page, err = s.chatLogs.ListUserLogs(c.Request().Context(), userID, limit, offset)
	}
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, page)
}

// createChatSessionHandler handles POST /api/chat/sessions.
func (s *Server) createChatSessionHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if s.chatSessions == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat sessions are not available")
	}

	var req CreateChatSessionBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.chatSessions.CreateChatSession(c.Request().Context(), models.CreateChatSessionRequest{
		UserID: userID,
		Title:  strings.TrimSpace(req.Title),
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listChatSessionsHandler handles GET /api/chat/sessions.
func (s *Server) listChatSessionsHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if s.chatSessions == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "chat sessions are not available")
	}

	list, err := s.chatSessions.ListChatSessions(c.Request().Context(), userID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ChatSessionListResponse{
		ChatSessions: list,
		TotalCount:   len(list),
	})
}
