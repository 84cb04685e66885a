package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/models"
)

const (
	statusWait = 30 * time.Second
	statusTick = 100 * time.Millisecond
)

func (app *TestApp) postJSON(t *testing.T, userID, path string, body, out any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Less(t, resp.StatusCode, 300, "POST %s: %s", path, payload)
	if out != nil {
		require.NoError(t, json.Unmarshal(payload, out), "POST %s: %s", path, payload)
	}
}

func (app *TestApp) getJSON(t *testing.T, userID, path string, out any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", userID)

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "GET %s: %s", path, payload)
	require.NoError(t, json.Unmarshal(payload, out), "GET %s: %s", path, payload)
}

// getRawBody fetches a path as the given user and returns the unparsed
// response body. Used where a test asserts on what the wire does NOT carry.
func (app *TestApp) getRawBody(t *testing.T, userID, path string) []byte {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", userID)

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "GET %s: %s", path, payload)
	return payload
}

// SendChat posts one utterance and returns the assistant's reply. An empty
// chatSessionID lets the server open a fresh chat container.
func (app *TestApp) SendChat(t *testing.T, userID, chatSessionID, text string) *models.ChatReply {
	t.Helper()
	var reply models.ChatReply
	app.postJSON(t, userID, "/api/chat/messages", models.ChatMessageRequest{
		ChatSessionID: chatSessionID,
		Message:       text,
	}, &reply)
	return &reply
}

// Approve records one participant's decision on a pending thread.
func (app *TestApp) Approve(t *testing.T, userID, threadID string, approved bool) *models.ApprovalResult {
	t.Helper()
	var result models.ApprovalResult
	app.postJSON(t, userID, "/api/approvals", models.ApprovalRequest{
		ThreadID: threadID,
		Approved: approved,
	}, &result)
	return &result
}

// WaitForSessionStatus polls until the session reaches the wanted status and
// returns the row as last read.
func (app *TestApp) WaitForSessionStatus(t *testing.T, sessionID string, status negotiationsession.Status) *ent.NegotiationSession {
	t.Helper()
	var sess *ent.NegotiationSession
	require.Eventually(t, func() bool {
		got, err := app.Sessions.GetSession(context.Background(), sessionID, false)
		if err != nil {
			return false
		}
		sess = got
		return got.Status == status
	}, statusWait, statusTick, "session %s never reached %s", sessionID, status)
	return sess
}

// SessionPrefs decodes the session's preference bag.
func (app *TestApp) SessionPrefs(t *testing.T, sess *ent.NegotiationSession) *models.SessionPrefs {
	t.Helper()
	prefs, err := models.ParseSessionPrefs(sess.PlacePref)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	return prefs
}

// Transcript returns the session's agent messages, oldest first.
func (app *TestApp) Transcript(t *testing.T, sessionID string) []*ent.NegotiationMessage {
	t.Helper()
	msgs, err := app.Messages.GetSessionMessages(context.Background(), sessionID)
	require.NoError(t, err)
	return msgs
}

func (app *TestApp) tomorrowAt(hour, min int) time.Time {
	return app.dayAt(1, hour, min)
}

func (app *TestApp) dayAt(daysAhead, hour, min int) time.Time {
	now := time.Now().In(app.Loc)
	d := now.AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, app.Loc)
}

func messageTypes(msgs []*ent.NegotiationMessage) []string {
	types := make([]string, len(msgs))
	for i, m := range msgs {
		types[i] = string(m.Type)
	}
	return types
}

func hasMessageType(msgs []*ent.NegotiationMessage, typ negotiationmessage.Type) bool {
	for _, m := range msgs {
		if m.Type == typ {
			return true
		}
	}
	return false
}
