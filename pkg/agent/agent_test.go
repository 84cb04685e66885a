package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

var kst = time.FixedZone("KST", 9*60*60)

// testNow is a Tuesday morning; "내일" resolves to 2025-12-17 everywhere.
var testNow = time.Date(2025, 12, 16, 10, 0, 0, 0, kst)

func dt(month, day, hour, min int) time.Time {
	return time.Date(2025, time.Month(month), day, hour, min, 0, 0, kst)
}

func busyEvent(summary string, start, end time.Time) calendar.Event {
	return calendar.Event{ID: "ev-" + summary, Summary: summary, Start: start, End: end}
}

type stubSource struct {
	events []calendar.Event
	err    error

	calls    int
	lastFrom time.Time
	lastTo   time.Time
}

func (s *stubSource) Events(_ context.Context, _ string, from, to time.Time) ([]calendar.Event, error) {
	s.calls++
	s.lastFrom, s.lastTo = from, to
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

// failingLLM simulates the model being down. The negotiation scenarios must
// produce identical decisions with it.
func failingLLM() *llm.StubClient {
	return &llm.StubClient{Err: errors.New("llm unreachable")}
}

func newTestAgent(t *testing.T, prose ProseWriter, events ...calendar.Event) (*PersonalAgent, *stubSource) {
	t.Helper()
	src := &stubSource{events: events}
	a := New("sess-1", Participant{UserID: "user-v", DisplayName: "영희"},
		src, prose, masking.NewService(nil), kst, schedule.TimeSlot{}, 0)
	a.now = func() time.Time { return testNow }
	return a, src
}

func TestEnsureAvailability_LoadsOnce(t *testing.T) {
	a, src := newTestAgent(t, failingLLM(),
		busyEvent("회의", dt(12, 17, 9, 0), dt(12, 17, 12, 0)))

	require.NoError(t, a.EnsureAvailability(context.Background()))
	require.NoError(t, a.EnsureAvailability(context.Background()))

	assert.Equal(t, 1, src.calls, "availability is a per-session snapshot, fetched once")
	assert.Len(t, a.Events(), 1)
	assert.Len(t, a.BusySlots(), 1)
	assert.NotEmpty(t, a.FreeSlots())
}

func TestEnsureAvailability_DefaultHorizon(t *testing.T) {
	a, src := newTestAgent(t, failingLLM())

	require.NoError(t, a.EnsureAvailability(context.Background()))

	assert.Equal(t, dt(12, 16, 0, 0), src.lastFrom)
	assert.Equal(t, dt(12, 30, 0, 0), src.lastTo)
}

func TestEnsureAvailability_SourceError(t *testing.T) {
	a, src := newTestAgent(t, failingLLM())
	src.err = errors.New("calendar api down")

	err := a.EnsureAvailability(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "user-v")
}

func TestAvailabilityAt(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM(),
		busyEvent("치과", dt(12, 17, 17, 0), dt(12, 17, 19, 0)))

	t.Run("blocked target carries the owner's conflict", func(t *testing.T) {
		avail, err := a.AvailabilityAt(context.Background(), schedule.Proposal{Date: "2025-12-17", Time: "18:00"})
		require.NoError(t, err)

		assert.Equal(t, "user-v", avail.UserID)
		assert.Equal(t, "영희", avail.DisplayName)
		assert.False(t, avail.IsAvailable)
		require.NotNil(t, avail.ConflictInfo)
		assert.Equal(t, "치과", avail.ConflictInfo.EventSummary)
		assert.Equal(t, "2025-12-17 17:00", avail.ConflictInfo.Start)
	})

	t.Run("free target has no conflict", func(t *testing.T) {
		avail, err := a.AvailabilityAt(context.Background(), schedule.Proposal{Date: "2025-12-17", Time: "19:00"})
		require.NoError(t, err)

		assert.True(t, avail.IsAvailable)
		assert.Nil(t, avail.ConflictInfo)
	})
}

func TestDecisionPayload(t *testing.T) {
	t.Run("empty decision has no payload", func(t *testing.T) {
		d := Decision{Type: negotiationmessage.TypeNeedHuman, Message: "확인해 주세요."}
		assert.Nil(t, d.Payload())
	})

	t.Run("proposal and conflict are carried", func(t *testing.T) {
		d := Decision{
			Type: negotiationmessage.TypeCounter,
			Proposal: &schedule.Proposal{
				Date: "2025-12-17", Time: "19:00",
				Activity: "저녁 식사", DurationMinutes: 120,
			},
			Conflict: &models.ConflictInfo{EventSummary: "치과"},
		}
		p := d.Payload()
		require.NotNil(t, p)
		require.NotNil(t, p.Proposal)
		assert.Equal(t, "2025-12-17", p.Proposal.Date)
		assert.Equal(t, "19:00", p.Proposal.Time)
		assert.Equal(t, 120, p.Proposal.DurationMinutes)
		require.NotNil(t, p.ConflictInfo)
		assert.Equal(t, "치과", p.ConflictInfo.EventSummary)
	})
}

func TestNeedsHuman(t *testing.T) {
	assert.True(t, Decision{Type: negotiationmessage.TypeNeedHuman}.NeedsHuman())
	assert.False(t, Decision{Type: negotiationmessage.TypeAccept}.NeedsHuman())
}
