package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/schedule"
)

func newTestFactory(src *stubSource) *Factory {
	return NewFactory(src, failingLLM(), masking.NewService(nil), kst, 14)
}

func TestFactory_Window(t *testing.T) {
	f := newTestFactory(&stubSource{})

	t.Run("default horizon", func(t *testing.T) {
		w := f.Window(testNow)

		assert.Equal(t, dt(12, 16, 0, 0), w.Start)
		assert.Equal(t, dt(12, 30, 0, 0), w.End)
	})

	t.Run("stretched to cover a far target", func(t *testing.T) {
		w := f.Window(testNow, time.Date(2026, 1, 5, 0, 0, 0, 0, kst))

		assert.Equal(t, dt(12, 16, 0, 0), w.Start)
		assert.Equal(t, time.Date(2026, 1, 7, 0, 0, 0, 0, kst), w.End)
	})

	t.Run("near target keeps the default end", func(t *testing.T) {
		w := f.Window(testNow, dt(12, 20, 0, 0))

		assert.Equal(t, dt(12, 30, 0, 0), w.End)
	})

	t.Run("zero targets are ignored", func(t *testing.T) {
		w := f.Window(testNow, time.Time{})

		assert.Equal(t, dt(12, 30, 0, 0), w.End)
	})
}

func TestFactory_Agent(t *testing.T) {
	src := &stubSource{}
	f := newTestFactory(src)

	a := f.Agent("sess-42", Participant{UserID: "user-kim", DisplayName: "김철수"},
		f.Window(testNow), 60)
	a.now = func() time.Time { return testNow }

	require.NoError(t, a.EnsureAvailability(context.Background()))

	assert.Equal(t, "user-kim", a.User().UserID)
	assert.Equal(t, dt(12, 16, 0, 0), src.lastFrom)
	assert.Equal(t, dt(12, 30, 0, 0), src.lastTo)
}

func TestFactory_AgentDefaultWindow(t *testing.T) {
	src := &stubSource{}
	f := newTestFactory(src)

	// zero window resolves against the wall clock inside the factory
	a := f.Agent("sess-42", Participant{UserID: "user-kim", DisplayName: "김철수"},
		schedule.TimeSlot{}, 0)

	require.NoError(t, a.EnsureAvailability(context.Background()))

	assert.Equal(t, 14*24*time.Hour, src.lastTo.Sub(src.lastFrom))
}

func TestNewFactory_Defaults(t *testing.T) {
	f := NewFactory(&stubSource{}, failingLLM(), masking.NewService(nil), kst, 0)

	assert.Equal(t, DefaultHorizonDays, f.horizonDays)
	assert.Equal(t, kst, f.Location())
}
