package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/pkg/models"
)

// threadMessagesHandler handles GET /api/threads/:thread_id/messages.
// Returns the union transcript of every session sharing the thread, in
// created_at order, with calendar detail redacted for the caller.
func (s *Server) threadMessagesHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	threadID := c.Param("thread_id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	sessions, err := s.sessions.ListSessionsByThread(c.Request().Context(), threadID)
	if err != nil {
		return mapServiceError(err)
	}
	if len(sessions) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "thread not found")
	}

	sessionIDs := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		sessionIDs = append(sessionIDs, sess.ID)
	}

	messages, err := s.transcripts.GetThreadMessages(c.Request().Context(), sessionIDs)
	if err != nil {
		return mapServiceError(err)
	}
	redactTranscript(messages, userID)

	return c.JSON(http.StatusOK, &models.TranscriptResponse{
		Messages:   messages,
		SessionIDs: sessionIDs,
	})
}

// redactTranscript strips calendar detail the viewer must not see: a
// message's conflict_info survives only on the sender's own rows, and
// availability-snapshot entries keep their conflict only for the entry's
// owner. Unreadable payloads are dropped rather than served raw.
func redactTranscript(messages []*ent.NegotiationMessage, viewerID string) {
	for _, m := range messages {
		if len(m.Payload) == 0 {
			continue
		}
		payload, err := models.ParseMessagePayload(m.Payload)
		if err != nil {
			slog.Warn("Dropping unreadable message payload from transcript",
				"message_id", m.ID, "error", err)
			m.Payload = nil
			continue
		}
		if m.SenderID != viewerID {
			payload.ConflictInfo = nil
		}
		for i := range payload.ParticipantAvailabilities {
			if payload.ParticipantAvailabilities[i].UserID != viewerID {
				payload.ParticipantAvailabilities[i].ConflictInfo = nil
			}
		}
		m.Payload = payload.ToMap()
	}
}
