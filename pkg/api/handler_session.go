package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/models"
)

const (
	defaultSessionPageSize = 25
	maxSessionPageSize     = 100
	minSearchQueryLength   = 2
)

// getSessionHandler handles GET /api/sessions/:id.
// include_messages=true loads the session transcript alongside.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	withMessages := c.QueryParam("include_messages") == "true"

	session, err := s.sessions.GetSession(c.Request().Context(), sessionID, withMessages)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, session)
}

// listSessionsHandler handles GET /api/sessions.
// Defaults to the caller's own sessions, newest first. thread_id narrows to
// one negotiation thread; search runs a full-text query over transcripts.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	limit := defaultSessionPageSize
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxSessionPageSize {
			limit = n
		}
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	if query := c.QueryParam("search"); query != "" {
		if len([]rune(query)) < minSearchQueryLength {
			return echo.NewHTTPError(http.StatusBadRequest, "search query must be at least 2 characters")
		}
		found, err := s.sessions.SearchSessions(c.Request().Context(), query, limit)
		if err != nil {
			return mapServiceError(err)
		}
		return c.JSON(http.StatusOK, &models.SessionListResponse{
			Sessions:   found,
			TotalCount: len(found),
			Limit:      limit,
		})
	}

	filters := models.SessionFilters{
		ParticipantID: userID,
		Limit:         limit,
		Offset:        offset,
	}
	if v := c.QueryParam("status"); v != "" {
		if err := negotiationsession.StatusValidator(negotiationsession.Status(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = v
	}
	if v := c.QueryParam("thread_id"); v != "" {
		filters.ThreadID = v
	}
	if v := c.QueryParam("initiator_id"); v != "" {
		filters.InitiatorID = v
	}
	if v := c.QueryParam("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_after: must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.QueryParam("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_before: must be RFC3339")
		}
		filters.CreatedBefore = &t
	}

	result, err := s.sessions.ListSessions(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, result)
}
