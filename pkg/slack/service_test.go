package slack

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI fakes the two Slack Web API methods the service uses.
type mockSlackAPI struct {
	mu      sync.Mutex
	posted  []postedMessage
	history []map[string]string // messages returned by conversations.history

	// When set, chat.postMessage signals postStarted then blocks until
	// postRelease is closed. Used by the overflow test.
	postStarted chan struct{}
	postRelease chan struct{}
}

type postedMessage struct {
	text     string
	threadTS string
}

func (m *mockSlackAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch {
		case strings.HasSuffix(r.URL.Path, "chat.postMessage"):
			if m.postStarted != nil {
				m.postStarted <- struct{}{}
				<-m.postRelease
			}
			m.mu.Lock()
			m.posted = append(m.posted, postedMessage{
				text:     r.FormValue("text"),
				threadTS: r.FormValue("thread_ts"),
			})
			m.mu.Unlock()
			fmt.Fprint(w, `{"ok":true,"channel":"C123","ts":"1000.0001"}`)

		case strings.HasSuffix(r.URL.Path, "conversations.history"):
			m.mu.Lock()
			msgs := m.history
			m.mu.Unlock()
			resp := map[string]interface{}{"ok": true, "messages": msgs, "has_more": false}
			require.NoError(t, json.NewEncoder(w).Encode(resp))

		default:
			t.Errorf("unexpected Slack API call: %s", r.URL.Path)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (m *mockSlackAPI) postedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posted)
}

func (m *mockSlackAPI) postedAt(i int) postedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.posted[i]
}

func newTestService(t *testing.T, mock *mockSlackAPI, queueSize int) *Service {
	t.Helper()
	srv := mock.server(t)
	client := NewClientWithAPIURL("xoxb-test", "C123", srv.URL+"/api/")
	svc := NewServiceWithClient(client, "https://moim.example.com", queueSize)
	t.Cleanup(svc.Close)
	return svc
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("Escalate is no-op", func(_ *testing.T) {
		// Should not panic
		s.Escalate(Escalation{SessionID: "sess-1", Kind: EscalationNeedHuman})
	})

	t.Run("Close is no-op", func(_ *testing.T) {
		s.Close()
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://moim.example.com",
		})
		require.NotNil(t, svc)
		svc.Close()
	})
}

func TestService_PostsEscalation(t *testing.T) {
	mock := &mockSlackAPI{}
	svc := newTestService(t, mock, 8)

	svc.Escalate(Escalation{
		SessionID: "sess-1",
		Kind:      EscalationNeedHuman,
		Intent:    "수요일 저녁 회식",
		Initiator: "김철수",
	})

	require.Eventually(t, func() bool {
		return mock.postedCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	msg := mock.postedAt(0)
	assert.Contains(t, msg.text, EscalationFingerprint("sess-1", EscalationNeedHuman))
	assert.Empty(t, msg.threadTS, "first escalation for a session starts a new thread")
}

func TestService_DedupsSameKind(t *testing.T) {
	mock := &mockSlackAPI{}
	svc := newTestService(t, mock, 8)

	esc := Escalation{SessionID: "sess-1", Kind: EscalationDeadlock}
	svc.Escalate(esc)
	svc.Escalate(esc)
	// A different kind for the same session still goes through
	svc.Escalate(Escalation{SessionID: "sess-1", Kind: EscalationCalendarFailure})

	require.Eventually(t, func() bool {
		return mock.postedCount() == 2
	}, 5*time.Second, 10*time.Millisecond)

	// Settle: the duplicate must not arrive late
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, mock.postedCount())
	assert.Contains(t, mock.postedAt(0).text, "deadlock")
	assert.Contains(t, mock.postedAt(1).text, "calendar_failure")
}

func TestService_SkipsWhenAlreadyInChannelHistory(t *testing.T) {
	// A previous pod already posted the deadlock escalation — history search
	// must suppress the repost and a fresh kind must still go out.
	mock := &mockSlackAPI{
		history: []map[string]string{
			{"type": "message", "text": escalationFallbackText(Escalation{SessionID: "sess-9", Kind: EscalationDeadlock}), "ts": "111.222"},
		},
	}
	svc := newTestService(t, mock, 8)

	svc.Escalate(Escalation{SessionID: "sess-9", Kind: EscalationDeadlock})
	svc.Escalate(Escalation{SessionID: "sess-9", Kind: EscalationCalendarFailure})

	require.Eventually(t, func() bool {
		return mock.postedCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	msg := mock.postedAt(0)
	assert.Contains(t, msg.text, "calendar_failure")
	// The history message carries the session fingerprint, so the new kind
	// threads under it.
	assert.Equal(t, "111.222", msg.threadTS)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, mock.postedCount(), "deduped escalation must not arrive late")
}

func TestService_QueueOverflowDrops(t *testing.T) {
	mock := &mockSlackAPI{
		postStarted: make(chan struct{}, 1),
		postRelease: make(chan struct{}),
	}
	svc := newTestService(t, mock, 1)

	// First escalation occupies the worker (blocked inside chat.postMessage)
	svc.Escalate(Escalation{SessionID: "sess-a", Kind: EscalationNeedHuman})
	<-mock.postStarted

	// Second fills the queue; third overflows and is dropped with a log line
	svc.Escalate(Escalation{SessionID: "sess-b", Kind: EscalationNeedHuman})
	svc.Escalate(Escalation{SessionID: "sess-c", Kind: EscalationNeedHuman})

	close(mock.postRelease)

	require.Eventually(t, func() bool {
		return mock.postedCount() == 2
	}, 5*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, mock.postedCount())
	assert.Contains(t, mock.postedAt(0).text, "sess-a")
	assert.Contains(t, mock.postedAt(1).text, "sess-b")
}
