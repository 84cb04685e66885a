package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/pkg/models"
)

type fakeTranscripts struct {
	msgs   []*ent.NegotiationMessage
	gotIDs []string
	err    error
}

func (f *fakeTranscripts) GetThreadMessages(_ context.Context, sessionIDs []string) ([]*ent.NegotiationMessage, error) {
	f.gotIDs = sessionIDs
	return f.msgs, f.err
}

func threadTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.GET("/api/threads/:thread_id/messages", s.threadMessagesHandler)
	return e
}

func threadGet(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("X-User-ID", "u-me")
	return req
}

func payloadWithConflicts() map[string]any {
	p := &models.MessagePayload{
		Proposal: &models.Proposal{Date: "2025-12-19", Time: "19:00", Activity: "저녁"},
		ConflictInfo: &models.ConflictInfo{
			EventSummary: "치과 예약",
			Start:        "2025-12-19 18:00",
			End:          "2025-12-19 19:00",
		},
		ParticipantAvailabilities: []models.ParticipantAvailability{
			{UserID: "u-me", DisplayName: "철수", IsAvailable: false,
				ConflictInfo: &models.ConflictInfo{EventSummary: "팀 회의"}},
			{UserID: "u-yh", DisplayName: "영희", IsAvailable: false,
				ConflictInfo: &models.ConflictInfo{EventSummary: "치과 예약"}},
		},
	}
	return p.ToMap()
}

func TestThreadMessagesHandler(t *testing.T) {
	t.Run("missing thread id returns 400", func(t *testing.T) {
		s := &Server{}
		e := echo.New()
		c := e.NewContext(threadGet("/api/threads//messages"), httptest.NewRecorder())

		err := s.threadMessagesHandler(c)
		assertHTTPError(t, err, http.StatusBadRequest, "thread id")
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		s := &Server{}
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/threads/th-1/messages", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		err := s.threadMessagesHandler(c)
		assertHTTPError(t, err, http.StatusUnauthorized, "X-User-ID")
	})

	t.Run("unknown thread returns 404", func(t *testing.T) {
		s := &Server{
			sessions:    &fakeSessionReader{byThread: map[string][]*ent.NegotiationSession{}},
			transcripts: &fakeTranscripts{},
		}
		e := threadTestEcho(s)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, threadGet("/api/threads/th-404/messages"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("merges every session of the thread", func(t *testing.T) {
		transcripts := &fakeTranscripts{msgs: []*ent.NegotiationMessage{
			{ID: "m-1", SessionID: "sess-1", SenderID: "agent:u-me", Prose: "12월 19일 저녁 어때요?"},
			{ID: "m-2", SessionID: "sess-2", SenderID: "agent:u-yh", Prose: "좋아요!"},
		}}
		s := &Server{
			sessions: &fakeSessionReader{byThread: map[string][]*ent.NegotiationSession{
				"th-1": {{ID: "sess-1"}, {ID: "sess-2"}},
			}},
			transcripts: transcripts,
		}
		e := threadTestEcho(s)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, threadGet("/api/threads/th-1/messages"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"sess-1", "sess-2"}, transcripts.gotIDs)

		var resp models.TranscriptResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"sess-1", "sess-2"}, resp.SessionIDs)
		require.Len(t, resp.Messages, 2)
		assert.Equal(t, "m-1", resp.Messages[0].ID)
	})

	t.Run("redacts other participants' calendar detail", func(t *testing.T) {
		transcripts := &fakeTranscripts{msgs: []*ent.NegotiationMessage{
			{ID: "m-mine", SessionID: "sess-1", SenderID: "u-me", Payload: payloadWithConflicts()},
			{ID: "m-theirs", SessionID: "sess-1", SenderID: "u-yh", Payload: payloadWithConflicts()},
		}}
		s := &Server{
			sessions: &fakeSessionReader{byThread: map[string][]*ent.NegotiationSession{
				"th-1": {{ID: "sess-1"}},
			}},
			transcripts: transcripts,
		}
		e := threadTestEcho(s)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, threadGet("/api/threads/th-1/messages"))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.TranscriptResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Messages, 2)

		mine, err := models.ParseMessagePayload(resp.Messages[0].Payload)
		require.NoError(t, err)
		require.NotNil(t, mine.ConflictInfo, "sender keeps their own conflict")
		assert.Equal(t, "치과 예약", mine.ConflictInfo.EventSummary)

		theirs, err := models.ParseMessagePayload(resp.Messages[1].Payload)
		require.NoError(t, err)
		assert.Nil(t, theirs.ConflictInfo, "another sender's conflict is hidden")
		assert.NotNil(t, theirs.Proposal, "proposal survives redaction")
	})
}

func TestRedactTranscript(t *testing.T) {
	t.Run("snapshot entries keep conflicts only for their owner", func(t *testing.T) {
		msg := &ent.NegotiationMessage{ID: "m-1", SenderID: "u-yh", Payload: payloadWithConflicts()}

		redactTranscript([]*ent.NegotiationMessage{msg}, "u-me")

		payload, err := models.ParseMessagePayload(msg.Payload)
		require.NoError(t, err)
		require.Len(t, payload.ParticipantAvailabilities, 2)

		for _, entry := range payload.ParticipantAvailabilities {
			if entry.UserID == "u-me" {
				require.NotNil(t, entry.ConflictInfo)
				assert.Equal(t, "팀 회의", entry.ConflictInfo.EventSummary)
			} else {
				assert.Nil(t, entry.ConflictInfo)
				assert.False(t, entry.IsAvailable, "availability flag survives redaction")
			}
		}
	})

	t.Run("empty payloads pass through untouched", func(t *testing.T) {
		msg := &ent.NegotiationMessage{ID: "m-1", SenderID: "u-yh"}

		redactTranscript([]*ent.NegotiationMessage{msg}, "u-me")

		assert.Empty(t, msg.Payload)
	})

	t.Run("unreadable payload is dropped, not served raw", func(t *testing.T) {
		msg := &ent.NegotiationMessage{
			ID:       "m-1",
			SenderID: "u-yh",
			Payload:  map[string]any{"proposal": "not-an-object"},
		}

		redactTranscript([]*ent.NegotiationMessage{msg}, "u-me")

		assert.Nil(t, msg.Payload)
	})
}
