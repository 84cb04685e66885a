package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalTargetSlot(t *testing.T) {
	t.Run("explicit duration", func(t *testing.T) {
		p := Proposal{Date: "2025-12-17", Time: "18:00", DurationMinutes: 90}
		slot, err := p.TargetSlot(kst)
		require.NoError(t, err)
		assert.Equal(t, at(t, 2025, 12, 17, 18, 0), slot.Start)
		assert.Equal(t, at(t, 2025, 12, 17, 19, 30), slot.End)
	})

	t.Run("default duration", func(t *testing.T) {
		p := Proposal{Date: "2025-12-17", Time: "18:00"}
		slot, err := p.TargetSlot(kst)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, slot.Duration())
	})

	t.Run("bad date", func(t *testing.T) {
		p := Proposal{Date: "내일", Time: "18:00"}
		_, err := p.TargetSlot(kst)
		assert.Error(t, err)
	})
}

func TestProposalNightsSpan(t *testing.T) {
	p := Proposal{Date: "2025-12-19", DurationNights: 2}
	span, err := p.NightsSpan(kst)
	require.NoError(t, err)
	assert.Equal(t, day(t, 2025, time.December, 19), span.Start)
	assert.Equal(t, day(t, 2025, time.December, 22), span.End, "2 nights cover 3 civil days")

	_, err = Proposal{Date: "2025-12-19"}.NightsSpan(kst)
	assert.Error(t, err)
}

func TestProposalSameSlot(t *testing.T) {
	a := Proposal{Date: "2025-12-17", Time: "18:00", Activity: "저녁"}
	b := Proposal{Date: "2025-12-17", Time: "18:00", Activity: "술"}
	c := Proposal{Date: "2025-12-17", Time: "19:00"}

	assert.True(t, a.SameSlot(b), "activity does not participate in slot identity")
	assert.False(t, a.SameSlot(c))
}

func TestProposalDisplayKorean(t *testing.T) {
	assert.Equal(t, "12월 17일 18:00", Proposal{Date: "2025-12-17", Time: "18:00"}.DisplayKorean(kst))
	assert.Equal(t, "12월 19일부터 2박", Proposal{Date: "2025-12-19", DurationNights: 2}.DisplayKorean(kst))
	assert.Equal(t, "12월 17일", Proposal{Date: "2025-12-17"}.DisplayKorean(kst))
}
