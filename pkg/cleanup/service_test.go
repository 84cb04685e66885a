package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/pkg/config"
)

// The retention primitives themselves (soft-delete cutoffs, TTL sweep) are
// covered against a real database in pkg/services; these tests cover the
// loop around them.

type fakeSessionStore struct {
	mu      sync.Mutex
	calls   int
	gotDays int
	count   int
	err     error
}

func (f *fakeSessionStore) SoftDeleteOldSessions(_ context.Context, retentionDays int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotDays = retentionDays
	return f.count, f.err
}

func (f *fakeSessionStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeEventStore struct {
	mu     sync.Mutex
	calls  int
	gotTTL time.Duration
	count  int
	err    error
}

func (f *fakeEventStore) CleanupOrphanedEvents(_ context.Context, ttl time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotTTL = ttl
	return f.count, f.err
}

func (f *fakeEventStore) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetentionDays: 90,
		EventTTL:             time.Hour,
		CleanupInterval:      24 * time.Hour,
	}
}

func TestRunAll_PassesConfiguredThresholds(t *testing.T) {
	sessions := &fakeSessionStore{count: 3}
	events := &fakeEventStore{count: 7}
	svc := NewService(testConfig(), sessions, events)

	svc.runAll(context.Background())

	assert.Equal(t, 1, sessions.callCount())
	assert.Equal(t, 90, sessions.gotDays)
	assert.Equal(t, 1, events.callCount())
	assert.Equal(t, time.Hour, events.gotTTL)
}

func TestRunAll_SessionFailureDoesNotSkipEvents(t *testing.T) {
	sessions := &fakeSessionStore{err: errors.New("deadlock detected")}
	events := &fakeEventStore{}
	svc := NewService(testConfig(), sessions, events)

	svc.runAll(context.Background())

	assert.Equal(t, 1, events.callCount(), "event sweep must run even when session sweep fails")
}

func TestStartStop_RunsImmediatePassAndExits(t *testing.T) {
	sessions := &fakeSessionStore{}
	events := &fakeEventStore{}
	cfg := testConfig()
	cfg.CleanupInterval = time.Hour // no tick during the test
	svc := NewService(cfg, sessions, events)

	svc.Start(context.Background())

	// Start runs one pass before the first tick.
	require.Eventually(t, func() bool {
		return sessions.callCount() == 1 && events.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		svc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestStart_IsIdempotent(t *testing.T) {
	sessions := &fakeSessionStore{}
	events := &fakeEventStore{}
	svc := NewService(testConfig(), sessions, events)

	svc.Start(context.Background())
	svc.Start(context.Background()) // second call must not spawn a second loop
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return sessions.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Give a hypothetical duplicate loop time to double-run the pass.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, sessions.callCount())
}

func TestStop_BeforeStartIsNoop(t *testing.T) {
	svc := NewService(testConfig(), &fakeSessionStore{}, &fakeEventStore{})
	svc.Stop()
}
