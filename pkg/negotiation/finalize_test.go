package negotiation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/models"
)

func TestFinalize_ThreadMatesParkTogether(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}

	// sess-0 is a superseded attempt in the same thread; agreement on the
	// rerun must park it too so the thread shows one state.
	oldPrefs := defaultPrefs()
	oldPrefs.RequestedDate = "2025-12-10"
	oldPrefs.RequestedTime = "19:00"
	old := groupSession(oldPrefs)
	old.ID = "sess-0"

	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, old, session)

	res := env.engine.Execute(context.Background(), session)
	require.Equal(t, negotiationsession.StatusPendingApproval, res.Status)

	assert.Equal(t, []statusWrite{
		{"sess-0", negotiationsession.StatusPendingApproval},
		{"sess-1", negotiationsession.StatusPendingApproval},
	}, env.store.statuses)

	for _, id := range []string{"sess-0", "sess-1"} {
		stored := env.store.prefs[id]
		require.NotNil(t, stored, id)
		assert.Equal(t, "2025-12-17", stored.AgreedDate, id)
		assert.Equal(t, "18:00", stored.AgreedTime, id)
	}
	assert.Equal(t, "2025-12-10", env.store.prefs["sess-0"].RequestedDate,
		"the superseded request is preserved, not overwritten")

	// in_progress for the running session, then one parked event per mate.
	require.Len(t, env.bus.statuses, 3)
	assert.Equal(t, "sess-0", env.bus.statuses[1].SessionID)
	assert.Equal(t, "sess-1", env.bus.statuses[2].SessionID)

	for _, card := range env.logs.cards {
		meta, err := models.ParseApprovalMetadata(card.Metadata)
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, []string{"sess-0", "sess-1"}, meta.SessionIDs)
	}
}

func TestFinalize_ApprovalCards(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	env.engine.Execute(context.Background(), session)

	require.Len(t, env.logs.cards, 2)
	card := env.logs.cards[0]
	assert.Equal(t, string(chatlog.MessageTypeScheduleApproval), card.MessageType)
	assert.Equal(t, "sess-1", card.SessionID)
	assert.Contains(t, card.ResponseText, "📅")
	assert.Contains(t, card.ResponseText, "12월 17일 18:00")
	assert.Contains(t, card.ResponseText, "저녁")

	meta, err := models.ParseApprovalMetadata(card.Metadata)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "th-1", meta.ThreadID)
	assert.Equal(t, []string{"sess-1"}, meta.SessionIDs)
	assert.False(t, meta.AllApproved)
	assert.False(t, meta.ButtonsDisabled)

	// Each toast deep-links to that user's own card.
	require.Len(t, env.bus.notifs["u-cs"], 1)
	notif := env.bus.notifs["u-cs"][0]
	assert.Equal(t, events.EventTypeNotification, notif.Type)
	assert.Equal(t, "일정 승인 요청", notif.Title)
	assert.Contains(t, notif.Message, "12월 17일 18:00")
	assert.Equal(t, "th-1", notif.ThreadID)
	assert.Equal(t, "log-01", notif.ChatLogID)
	assert.Equal(t, "log-02", env.bus.notifs["u-yh"][0].ChatLogID)
}

func TestFinalize_ThreadListFailureStillParksSelf(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)
	env.store.threadErr = assert.AnError

	res := env.engine.Execute(context.Background(), session)

	require.Equal(t, negotiationsession.StatusPendingApproval, res.Status)
	assert.Equal(t, []statusWrite{{"sess-1", negotiationsession.StatusPendingApproval}}, env.store.statuses)
	require.NotNil(t, env.store.prefs["sess-1"])
	assert.Equal(t, "2025-12-17", env.store.prefs["sess-1"].AgreedDate)
}

func TestEngine_CancelledContextFails(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := env.engine.Execute(ctx, session)

	assert.Equal(t, negotiationsession.StatusFailed, res.Status)
	require.Error(t, res.Error)
	assert.Contains(t, res.Error.Error(), "interrupted")
	// The opening proposal may already be on the wire; nothing terminal is.
	assert.Empty(t, env.store.statuses)
	assert.Empty(t, env.logs.cards)
}

func TestViewFor(t *testing.T) {
	conflict := &models.ConflictInfo{EventSummary: "회식", Start: "2025-12-17 18:00", End: "2025-12-17 20:00"}
	trip := &models.ConflictInfo{EventSummary: "출장"}
	payload := events.A2AMessagePayload{
		SenderID:     "u-yh",
		ConflictInfo: conflict,
		ParticipantAvailabilities: []models.ParticipantAvailability{
			{UserID: "u-cs", IsAvailable: true},
			{UserID: "u-yh", IsAvailable: false, ConflictInfo: trip},
		},
	}

	own := viewFor(payload, "u-yh")
	require.NotNil(t, own.ConflictInfo)
	assert.Equal(t, "회식", own.ConflictInfo.EventSummary)
	require.NotNil(t, own.ParticipantAvailabilities[1].ConflictInfo)

	other := viewFor(payload, "u-cs")
	assert.Nil(t, other.ConflictInfo)
	assert.Nil(t, other.ParticipantAvailabilities[1].ConflictInfo)
	assert.False(t, other.ParticipantAvailabilities[1].IsAvailable,
		"the busy flag itself is shared, only the event name is private")

	// The input payload is untouched — copies only.
	require.NotNil(t, payload.ConflictInfo)
	require.NotNil(t, payload.ParticipantAvailabilities[1].ConflictInfo)
}

func TestStripPrivate(t *testing.T) {
	payload := events.A2AMessagePayload{
		SenderID:     "u-yh",
		ConflictInfo: &models.ConflictInfo{EventSummary: "회식"},
		ParticipantAvailabilities: []models.ParticipantAvailability{
			{UserID: "u-yh", ConflictInfo: &models.ConflictInfo{EventSummary: "출장"}},
		},
	}

	shared := stripPrivate(payload)
	assert.Nil(t, shared.ConflictInfo)
	assert.Nil(t, shared.ParticipantAvailabilities[0].ConflictInfo)
	require.NotNil(t, payload.ParticipantAvailabilities[0].ConflictInfo)
}

func TestThreadSessions_EmptyThreadID(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	prefs := defaultPrefs()
	prefs.ThreadID = ""
	session := groupSession(prefs)
	env := newTestEnv(t, src) // thread lookup would return nothing

	res := env.engine.Execute(context.Background(), session)

	require.Equal(t, negotiationsession.StatusPendingApproval, res.Status)
	assert.Equal(t, []statusWrite{{"sess-1", negotiationsession.StatusPendingApproval}}, env.store.statuses)
}
