package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"
)

const (
	wsWait = 30 * time.Second
	wsTick = 25 * time.Millisecond
)

// WSEvent is one message read from the stream.
type WSEvent struct {
	Type     string
	Raw      []byte
	Parsed   map[string]any
	Received time.Time
}

// WSClient reads a /ws stream into an in-memory log that tests query with
// polling waits instead of raw channel reads, so assertions never race the
// reader goroutine.
type WSClient struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	doneCh chan struct{}

	mu     sync.Mutex
	events []WSEvent
}

// ConnectWS dials the stream as userID and blocks until the server confirms
// the connection, so the user channel subscription is live before the test
// triggers any events.
func ConnectWS(ctx context.Context, t *testing.T, wsURL, userID string) *WSClient {
	t.Helper()

	header := http.Header{}
	header.Set("X-User-ID", userID)
	conn, resp, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{HTTPHeader: header})
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	require.NoError(t, err, "websocket dial %s", wsURL)
	conn.SetReadLimit(1 << 20)

	readCtx, cancel := context.WithCancel(context.Background())
	c := &WSClient{conn: conn, cancel: cancel, doneCh: make(chan struct{})}
	go c.readLoop(readCtx)
	t.Cleanup(c.Close)

	c.WaitFor(t, "connection established", func(e WSEvent) bool {
		return e.Type == "connection.established"
	})
	return c
}

func (c *WSClient) readLoop(ctx context.Context) {
	defer close(c.doneCh)
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return
		}
		ev := WSEvent{Raw: data, Received: time.Now()}
		var parsed map[string]any
		if err := json.Unmarshal(data, &parsed); err == nil {
			ev.Parsed = parsed
			ev.Type, _ = parsed["type"].(string)
		}
		c.mu.Lock()
		c.events = append(c.events, ev)
		c.mu.Unlock()
	}
}

// Subscribe asks for a channel and waits for the server's confirmation.
func (c *WSClient) Subscribe(ctx context.Context, t *testing.T, channel string) {
	t.Helper()
	msg, err := json.Marshal(map[string]string{"action": "subscribe", "channel": channel})
	require.NoError(t, err)
	require.NoError(t, c.conn.Write(ctx, websocket.MessageText, msg))
	c.WaitFor(t, "subscription to "+channel, func(e WSEvent) bool {
		return e.Type == "subscription.confirmed" && e.Parsed["channel"] == channel
	})
}

// WaitFor polls the event log until one event matches.
func (c *WSClient) WaitFor(t *testing.T, what string, match func(WSEvent) bool) WSEvent {
	t.Helper()
	var found WSEvent
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, e := range c.events {
			if match(e) {
				found = e
				return true
			}
		}
		return false
	}, wsWait, wsTick, "no websocket event matched: %s", what)
	return found
}

// Events returns a snapshot of everything received so far.
func (c *WSClient) Events() []WSEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]WSEvent, len(c.events))
	copy(out, c.events)
	return out
}

// EventsOfType filters the snapshot by event type.
func (c *WSClient) EventsOfType(typ string) []WSEvent {
	var out []WSEvent
	for _, e := range c.Events() {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// Close stops the read loop and closes the connection. Registered as a test
// cleanup; safe to call twice.
func (c *WSClient) Close() {
	c.cancel()
	_ = c.conn.CloseNow()
	select {
	case <-c.doneCh:
	case <-time.After(2 * time.Second):
	}
}
