package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/pkg/llm"
)

func TestMakeInitialProposal_StatedDateTime(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM())

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{
		Date: "2025-12-17", Time: "18:00", Activity: "저녁 식사",
	})

	require.Equal(t, negotiationmessage.TypePropose, d.Type)
	require.NotNil(t, d.Proposal)
	assert.Equal(t, "2025-12-17", d.Proposal.Date)
	assert.Equal(t, "18:00", d.Proposal.Time)
	assert.Equal(t, "저녁 식사", d.Proposal.Activity)
	assert.Nil(t, d.Conflict)
	assert.NotEmpty(t, d.Message)
}

func TestMakeInitialProposal_KoreanExpressions(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM())

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{
		Date: "내일", Time: "오후 6시", Activity: "저녁",
	})

	require.Equal(t, negotiationmessage.TypePropose, d.Type)
	assert.Equal(t, "2025-12-17", d.Proposal.Date)
	assert.Equal(t, "18:00", d.Proposal.Time)
}

func TestMakeInitialProposal_BareHourUsesEveningContext(t *testing.T) {
	t.Run("evening cue in the utterance", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM())

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{
			Date: "내일", Time: "6시", Utterance: "내일 6시에 저녁 먹자",
		})

		assert.Equal(t, "18:00", d.Proposal.Time)
	})

	t.Run("bare numeral without 시", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM())

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{
			Date: "내일", Time: "6", Activity: "술 한잔",
		})

		assert.Equal(t, "18:00", d.Proposal.Time)
	})

	t.Run("morning hour stays morning without cue", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM())

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{
			Date: "내일", Time: "10시", Utterance: "내일 10시에 보자",
		})

		assert.Equal(t, "10:00", d.Proposal.Time)
	})
}

// The human's stated slot wins over the initiator's own calendar: the
// conflict is attached for the owner and logged, never auto-shifted.
func TestMakeInitialProposal_OwnConflictKeptVerbatim(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM(),
		busyEvent("회식", dt(12, 17, 17, 0), dt(12, 17, 19, 0)))

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{
		Date: "2025-12-17", Time: "18:00", Activity: "저녁",
	})

	require.Equal(t, negotiationmessage.TypePropose, d.Type)
	assert.Equal(t, "2025-12-17", d.Proposal.Date)
	assert.Equal(t, "18:00", d.Proposal.Time)
	require.NotNil(t, d.Conflict)
	assert.Equal(t, "회식", d.Conflict.EventSummary)
	assert.NotContains(t, d.Message, "회식")
}

func TestMakeInitialProposal_DateOnlyPicksEarliestSlot(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM(),
		busyEvent("출근", dt(12, 17, 9, 0), dt(12, 17, 12, 0)))

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{Date: "2025-12-17"})

	require.Equal(t, negotiationmessage.TypePropose, d.Type)
	assert.Equal(t, "2025-12-17", d.Proposal.Date)
	assert.Equal(t, "12:00", d.Proposal.Time)
}

func TestMakeInitialProposal_DateOnlyFullyBooked(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM(),
		busyEvent("종일 워크숍", dt(12, 17, 0, 0), dt(12, 18, 0, 0)))

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{Date: "2025-12-17"})

	require.Equal(t, negotiationmessage.TypePropose, d.Type)
	assert.Equal(t, "2025-12-18", d.Proposal.Date, "nearest free day when the stated one is full")
	assert.Equal(t, "09:00", d.Proposal.Time)
}

func TestMakeInitialProposal_TimePreferenceOnly(t *testing.T) {
	t.Run("exact preferred hour when a slot hosts it", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM())

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{Time: "18:00"})

		assert.Equal(t, "2025-12-17", d.Proposal.Date, "first day with usable slots")
		assert.Equal(t, "18:00", d.Proposal.Time)
	})

	t.Run("slot start within two hours of the preference", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM(),
			busyEvent("강의", dt(12, 17, 0, 0), dt(12, 17, 19, 0)))

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{Time: "18:00"})

		assert.Equal(t, "2025-12-17", d.Proposal.Date)
		assert.Equal(t, "19:00", d.Proposal.Time)
	})
}

func TestMakeInitialProposal_NoPreferences(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM())

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{Activity: "커피"})

	require.Equal(t, negotiationmessage.TypePropose, d.Type)
	assert.Equal(t, "2025-12-17", d.Proposal.Date)
	assert.Equal(t, "09:00", d.Proposal.Time)
}

func TestMakeInitialProposal_NoAvailabilityEscalates(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM(),
		busyEvent("해외 출장", dt(12, 16, 0, 0), dt(12, 31, 0, 0)))

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{
		Date: "2025-12-17", Time: "18:00",
	})

	require.Equal(t, negotiationmessage.TypeNeedHuman, d.Type)
	assert.Nil(t, d.Proposal)
	assert.NotEmpty(t, d.Message)
}

func TestMakeInitialProposal_MultiDay(t *testing.T) {
	t.Run("stated date anchors the span", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM())

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{
			Date: "2025-12-19", DurationNights: 2, Activity: "여행",
		})

		require.Equal(t, negotiationmessage.TypePropose, d.Type)
		assert.Equal(t, "2025-12-19", d.Proposal.Date)
		assert.Equal(t, 2, d.Proposal.DurationNights)
		assert.Empty(t, d.Proposal.Time)
	})

	t.Run("no date picks the earliest fully free span", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM(),
			busyEvent("발표", dt(12, 17, 10, 0), dt(12, 17, 11, 0)),
			busyEvent("면접", dt(12, 18, 14, 0), dt(12, 18, 15, 0)))

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{DurationNights: 1})

		require.Equal(t, negotiationmessage.TypePropose, d.Type)
		assert.Equal(t, "2025-12-19", d.Proposal.Date,
			"12-16 span touches busy 12-17, 12-17 and 12-18 are busy days")
	})

	t.Run("stated span over own busy day is kept", func(t *testing.T) {
		a, _ := newTestAgent(t, failingLLM(),
			busyEvent("세미나", dt(12, 20, 10, 0), dt(12, 20, 12, 0)))

		d := a.MakeInitialProposal(context.Background(), ProposalRequest{
			Date: "2025-12-19", DurationNights: 2,
		})

		require.Equal(t, negotiationmessage.TypePropose, d.Type)
		assert.Equal(t, "2025-12-19", d.Proposal.Date)
		require.NotNil(t, d.Conflict)
		assert.Equal(t, "세미나", d.Conflict.EventSummary)
	})
}

func TestMakeInitialProposal_LLMWritesProse(t *testing.T) {
	stub := &llm.StubClient{Reply: "내일 저녁 6시에 맛있는 거 먹으러 갈까요?"}
	a, _ := newTestAgent(t, stub)

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{
		Date: "2025-12-17", Time: "18:00", Activity: "저녁",
	})

	assert.Equal(t, "내일 저녁 6시에 맛있는 거 먹으러 갈까요?", d.Message)
}

func TestMakeInitialProposal_FallbackProse(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM())

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{
		Date: "2025-12-17", Time: "18:00", Activity: "저녁 식사",
	})

	assert.Equal(t, "12월 17일 18:00에 저녁 식사 어떠세요?", d.Message)
}

func TestMakeInitialProposal_UnparseableExpressionsFallThrough(t *testing.T) {
	a, _ := newTestAgent(t, failingLLM())

	d := a.MakeInitialProposal(context.Background(), ProposalRequest{
		Date: "언젠가", Time: "나중에",
	})

	// both expressions unusable → behaves like a preference-free request
	require.Equal(t, negotiationmessage.TypePropose, d.Type)
	assert.Equal(t, "2025-12-17", d.Proposal.Date)
	assert.Equal(t, "09:00", d.Proposal.Time)
}
