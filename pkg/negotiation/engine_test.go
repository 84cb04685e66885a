package negotiation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/models"
)

var kst = time.FixedZone("KST", 9*60*60)

// testNow is a Tuesday morning; the fixture sessions all negotiate around
// 2025-12-17.
var testNow = time.Date(2025, 12, 16, 10, 0, 0, 0, kst)

func dt(month, day, hour, min int) time.Time {
	return time.Date(2025, time.Month(month), day, hour, min, 0, 0, kst)
}

// perUserSource hands each participant their own calendar.
type perUserSource struct {
	byUser map[string][]calendar.Event
}

func (s *perUserSource) Events(_ context.Context, userID string, _, _ time.Time) ([]calendar.Event, error) {
	return s.byUser[userID], nil
}

func busyEvent(summary string, start, end time.Time) calendar.Event {
	return calendar.Event{ID: "ev-" + summary, Summary: summary, Start: start, End: end}
}

type statusWrite struct {
	sessionID string
	status    negotiationsession.Status
}

type fakeSessionStore struct {
	thread    []*ent.NegotiationSession
	threadErr error

	statuses []statusWrite
	prefs    map[string]*models.SessionPrefs
	errMsgs  map[string]string
}

func newFakeSessionStore(thread ...*ent.NegotiationSession) *fakeSessionStore {
	return &fakeSessionStore{
		thread:  thread,
		prefs:   map[string]*models.SessionPrefs{},
		errMsgs: map[string]string{},
	}
}

func (f *fakeSessionStore) ListSessionsByThread(_ context.Context, _ string) ([]*ent.NegotiationSession, error) {
	if f.threadErr != nil {
		return nil, f.threadErr
	}
	return f.thread, nil
}

func (f *fakeSessionStore) UpdateSessionStatus(_ context.Context, sessionID string, status negotiationsession.Status) error {
	f.statuses = append(f.statuses, statusWrite{sessionID, status})
	return nil
}

func (f *fakeSessionStore) UpdateSessionPrefs(_ context.Context, sessionID string, prefs *models.SessionPrefs) error {
	f.prefs[sessionID] = prefs
	return nil
}

func (f *fakeSessionStore) SetErrorMessage(_ context.Context, sessionID, message string) error {
	f.errMsgs[sessionID] = message
	return nil
}

type fakeMessageStore struct {
	oplog *[]string
	reqs  []models.CreateMessageRequest

	failAt int // 1-based append ordinal that errors; 0 = never
	calls  int
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, req models.CreateMessageRequest) (*ent.NegotiationMessage, error) {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return nil, errors.New("insert failed")
	}
	f.reqs = append(f.reqs, req)
	*f.oplog = append(*f.oplog, "persist:"+string(req.Type))
	msg := &ent.NegotiationMessage{
		ID:         fmt.Sprintf("m-%02d", f.calls),
		SessionID:  req.SessionID,
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		Type:       req.Type,
		Round:      req.Round,
		Prose:      req.Prose,
		CreatedAt:  testNow,
	}
	if req.ReceiverID != "" {
		msg.ReceiverID = &req.ReceiverID
	}
	return msg, nil
}

type fakeDirectory struct {
	names map[string]string
	err   error
}

func (f *fakeDirectory) DisplayNames(_ context.Context, _ []string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

type fakeChatLogStore struct {
	cards []models.CreateChatLogRequest
}

func (f *fakeChatLogStore) CreateChatLog(_ context.Context, req models.CreateChatLogRequest) (*ent.ChatLog, error) {
	f.cards = append(f.cards, req)
	return &ent.ChatLog{ID: fmt.Sprintf("log-%02d", len(f.cards))}, nil
}

type fakeBus struct {
	oplog *[]string

	stream   []events.A2AMessagePayload // durable session-channel copies
	copies   map[string][]events.A2AMessagePayload
	statuses []events.SessionStatusPayload
	progress []events.SessionProgressPayload
	notifs   map[string][]events.NotificationPayload
}

func newFakeBus(oplog *[]string) *fakeBus {
	return &fakeBus{
		oplog:  oplog,
		copies: map[string][]events.A2AMessagePayload{},
		notifs: map[string][]events.NotificationPayload{},
	}
}

func (f *fakeBus) PublishA2AMessage(_ context.Context, _ string, _ []string, payload events.A2AMessagePayload) error {
	f.stream = append(f.stream, payload)
	*f.oplog = append(*f.oplog, "stream:"+string(payload.MessageType))
	return nil
}

func (f *fakeBus) PublishA2AMessageToUser(_ context.Context, userID string, payload events.A2AMessagePayload) error {
	f.copies[userID] = append(f.copies[userID], payload)
	return nil
}

func (f *fakeBus) PublishSessionStatus(_ context.Context, _ string, payload events.SessionStatusPayload) error {
	f.statuses = append(f.statuses, payload)
	return nil
}

func (f *fakeBus) PublishSessionProgress(_ context.Context, payload events.SessionProgressPayload) error {
	f.progress = append(f.progress, payload)
	return nil
}

func (f *fakeBus) PublishNotification(_ context.Context, userID string, payload events.NotificationPayload) error {
	f.notifs[userID] = append(f.notifs[userID], payload)
	return nil
}

type testEnv struct {
	engine *Engine
	store  *fakeSessionStore
	msgs   *fakeMessageStore
	logs   *fakeChatLogStore
	bus    *fakeBus
	oplog  *[]string
}

func defaultPrefs() *models.SessionPrefs {
	return &models.SessionPrefs{
		ThreadID:        "th-1",
		Participants:    []string{"u-cs", "u-yh"},
		Activity:        "저녁",
		RequestedDate:   "2025-12-17",
		RequestedTime:   "18:00",
		DurationMinutes: 120,
	}
}

// groupSession is a two-party fixture with an explicit two-week window, so
// agent availability does not depend on the wall clock.
func groupSession(prefs *models.SessionPrefs) *ent.NegotiationSession {
	return &ent.NegotiationSession{
		ID:             "sess-1",
		InitiatorID:    "u-cs",
		ParticipantIds: []string{"u-cs", "u-yh"},
		Intent:         "내일 저녁에 영희랑 밥 먹자",
		Status:         negotiationsession.StatusPending,
		TimeWindow: map[string]any{
			"start": "2025-12-16T00:00:00+09:00",
			"end":   "2025-12-30T00:00:00+09:00",
		},
		PlacePref: prefs.ToMap(),
	}
}

func newTestEnv(t *testing.T, src agent.AvailabilitySource, thread ...*ent.NegotiationSession) *testEnv {
	t.Helper()
	oplog := &[]string{}
	store := newFakeSessionStore(thread...)
	msgs := &fakeMessageStore{oplog: oplog}
	logs := &fakeChatLogStore{}
	bus := newFakeBus(oplog)
	dir := &fakeDirectory{names: map[string]string{"u-cs": "철수", "u-yh": "영희"}}

	factory := agent.NewFactory(src, &llm.StubClient{Err: errors.New("llm unreachable")},
		masking.NewService(nil), kst, 14)
	cfg := config.DefaultNegotiationConfig()
	cfg.StepDelay = 0

	e := NewEngine(factory, store, msgs, dir, logs, bus, nil, cfg)
	e.now = func() time.Time { return testNow }
	return &testEnv{engine: e, store: store, msgs: msgs, logs: logs, bus: bus, oplog: oplog}
}

func typesOf(reqs []models.CreateMessageRequest) []negotiationmessage.Type {
	out := make([]negotiationmessage.Type, len(reqs))
	for i, r := range reqs {
		out[i] = r.Type
	}
	return out
}

func sendersOf(reqs []models.CreateMessageRequest) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.SenderID
	}
	return out
}

func roundsOf(reqs []models.CreateMessageRequest) []int {
	out := make([]int, len(reqs))
	for i, r := range reqs {
		out[i] = r.Round
	}
	return out
}

func TestEngine_UnanimousFirstRound(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}} // both fully free
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	res := env.engine.Execute(context.Background(), session)

	require.NotNil(t, res)
	require.NoError(t, res.Error)
	assert.Equal(t, negotiationsession.StatusPendingApproval, res.Status)

	assert.Equal(t, []negotiationmessage.Type{
		negotiationmessage.TypePropose,
		negotiationmessage.TypeInfo,
		negotiationmessage.TypeAccept,
		negotiationmessage.TypeAccept,
	}, typesOf(env.msgs.reqs))
	assert.Equal(t, []string{"u-cs", "u-yh", "u-yh", SystemSenderID}, sendersOf(env.msgs.reqs))
	assert.Equal(t, []int{1, 1, 1, 1}, roundsOf(env.msgs.reqs))

	propose := env.msgs.reqs[0]
	require.NotNil(t, propose.Payload)
	require.NotNil(t, propose.Payload.Proposal)
	assert.Equal(t, "2025-12-17", propose.Payload.Proposal.Date)
	assert.Equal(t, "18:00", propose.Payload.Proposal.Time)

	info := env.msgs.reqs[1]
	assert.Equal(t, proseChecking, info.Prose)
	assert.Nil(t, info.Payload)

	// The agreed slot lands next to the preserved request.
	stored := env.store.prefs["sess-1"]
	require.NotNil(t, stored)
	assert.Equal(t, "2025-12-17", stored.RequestedDate)
	assert.Equal(t, "18:00", stored.RequestedTime)
	assert.Equal(t, "2025-12-17", stored.AgreedDate)
	assert.Equal(t, "18:00", stored.AgreedTime)
	assert.Equal(t, "th-1", stored.ThreadID)

	assert.Equal(t, []statusWrite{{"sess-1", negotiationsession.StatusPendingApproval}}, env.store.statuses)
	assert.Empty(t, env.store.errMsgs)

	require.Len(t, env.bus.statuses, 2)
	assert.Equal(t, negotiationsession.StatusInProgress, env.bus.statuses[0].Status)
	assert.Equal(t, negotiationsession.StatusPendingApproval, env.bus.statuses[1].Status)

	require.Len(t, env.bus.progress, 1)
	assert.Equal(t, 1, env.bus.progress[0].CurrentRound)
	assert.Equal(t, 5, env.bus.progress[0].MaxRounds)

	// One approval card and one toast per participant.
	require.Len(t, env.logs.cards, 2)
	assert.Equal(t, "u-cs", env.logs.cards[0].UserID)
	assert.Equal(t, "u-yh", env.logs.cards[1].UserID)
	assert.Len(t, env.bus.notifs["u-cs"], 1)
	assert.Len(t, env.bus.notifs["u-yh"], 1)
}

func TestEngine_StreamsEveryRowBeforeTheNext(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	var paused int
	env.engine.sleep = func(context.Context, time.Duration) { paused++ }

	res := env.engine.Execute(context.Background(), session)
	require.Equal(t, negotiationsession.StatusPendingApproval, res.Status)

	// persist → stream strictly alternate: a row never waits unpublished
	// while the next one is written.
	ops := *env.oplog
	require.True(t, len(ops) >= 2 && len(ops)%2 == 0, "oplog: %v", ops)
	for i := 0; i < len(ops); i += 2 {
		require.Equal(t, "persist", ops[i][:7], "oplog: %v", ops)
		require.Equal(t, "stream"+ops[i][7:], ops[i+1], "oplog: %v", ops)
	}

	assert.Equal(t, len(env.msgs.reqs), paused, "one pacing pause per transcript row")
}

func TestEngine_CounterAdoptedThenAgreed(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{
		"u-yh": {busyEvent("회식", dt(12, 17, 18, 0), dt(12, 17, 20, 0))},
	}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	res := env.engine.Execute(context.Background(), session)

	require.NoError(t, res.Error)
	assert.Equal(t, negotiationsession.StatusPendingApproval, res.Status)

	assert.Equal(t, []negotiationmessage.Type{
		negotiationmessage.TypePropose, // 철수: 12-17 18:00
		negotiationmessage.TypeInfo,
		negotiationmessage.TypeCounter, // 영희: 18:00 blocked → 20:00
		negotiationmessage.TypeAccept,  // 철수 takes the counter
		negotiationmessage.TypeInfo,
		negotiationmessage.TypeAccept, // 영희 confirms her own slot
		negotiationmessage.TypeAccept, // system: unanimous
	}, typesOf(env.msgs.reqs))
	assert.Equal(t, []int{1, 1, 1, 1, 2, 2, 2}, roundsOf(env.msgs.reqs))

	counter := env.msgs.reqs[2]
	require.NotNil(t, counter.Payload)
	require.NotNil(t, counter.Payload.Proposal)
	assert.Equal(t, "2025-12-17", counter.Payload.Proposal.Date)
	assert.Equal(t, "20:00", counter.Payload.Proposal.Time)
	assert.Equal(t, "저녁", counter.Payload.Proposal.Activity, "counters keep the activity")
	assert.Equal(t, "u-cs", counter.ReceiverID)

	// The initiator's reply goes to whoever countered.
	assert.Equal(t, "u-yh", env.msgs.reqs[3].ReceiverID)

	// The countered slot is what gets agreed.
	stored := env.store.prefs["sess-1"]
	require.NotNil(t, stored)
	assert.Equal(t, "2025-12-17", stored.AgreedDate)
	assert.Equal(t, "20:00", stored.AgreedTime)
	assert.Equal(t, "18:00", stored.RequestedTime, "original request survives for recoordination")
}

func TestEngine_ConflictDetailIsOwnerOnly(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{
		"u-yh": {busyEvent("회식", dt(12, 17, 18, 0), dt(12, 17, 20, 0))},
	}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	env.engine.Execute(context.Background(), session)

	// The row itself keeps the full detail (REST redacts per viewer).
	counter := env.msgs.reqs[2]
	require.NotNil(t, counter.Payload.ConflictInfo)
	assert.Equal(t, "회식", counter.Payload.ConflictInfo.EventSummary)

	findCounter := func(list []events.A2AMessagePayload) events.A2AMessagePayload {
		for _, p := range list {
			if p.MessageType == negotiationmessage.TypeCounter {
				return p
			}
		}
		t.Fatalf("no COUNTER in %v", list)
		return events.A2AMessagePayload{}
	}

	assert.Nil(t, findCounter(env.bus.stream).ConflictInfo,
		"durable session-channel copy must not leak the event name")
	assert.Nil(t, findCounter(env.bus.copies["u-cs"]).ConflictInfo,
		"the other participant never sees the event name")

	own := findCounter(env.bus.copies["u-yh"])
	require.NotNil(t, own.ConflictInfo)
	assert.Equal(t, "회식", own.ConflictInfo.EventSummary)
}

// pingPongCalendars pins 영희 into evenings-only and 철수 out of them, so
// counters bounce between 09:00 and 20:00 forever.
func pingPongCalendars() *perUserSource {
	return &perUserSource{byUser: map[string][]calendar.Event{
		"u-yh": {busyEvent("세미나", dt(12, 17, 9, 0), dt(12, 17, 20, 0))},
		"u-cs": {busyEvent("야근", dt(12, 17, 20, 0), dt(12, 17, 22, 0))},
	}}
}

func TestEngine_DeadlockEscalates(t *testing.T) {
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, pingPongCalendars(), session)

	res := env.engine.Execute(context.Background(), session)

	require.NoError(t, res.Error)
	assert.Equal(t, negotiationsession.StatusNeedsReschedule, res.Status)

	// Round 3 stops after 영희 re-offers 20:00 for the second time running.
	assert.Equal(t, []negotiationmessage.Type{
		negotiationmessage.TypePropose,
		negotiationmessage.TypeInfo, negotiationmessage.TypeCounter, negotiationmessage.TypeCounter,
		negotiationmessage.TypeInfo, negotiationmessage.TypeCounter, negotiationmessage.TypeCounter,
		negotiationmessage.TypeInfo, negotiationmessage.TypeCounter,
		negotiationmessage.TypeNeedHuman,
	}, typesOf(env.msgs.reqs))
	assert.Equal(t, []int{1, 1, 1, 1, 2, 2, 2, 3, 3, 3}, roundsOf(env.msgs.reqs))

	terminal := env.msgs.reqs[len(env.msgs.reqs)-1]
	assert.Equal(t, SystemSenderID, terminal.SenderID)
	assert.Equal(t, reasonDeadlock, terminal.Prose)
	require.NotNil(t, terminal.Payload)
	require.Len(t, terminal.Payload.ParticipantAvailabilities, 2)
	assert.True(t, terminal.Payload.ParticipantAvailabilities[0].IsAvailable, "철수 can make 09:00")
	assert.False(t, terminal.Payload.ParticipantAvailabilities[1].IsAvailable, "영희 cannot")

	assert.Equal(t, reasonDeadlock, env.store.errMsgs["sess-1"])
	assert.Empty(t, env.store.statuses, "terminal status is the worker's write, not the engine's")

	last := env.bus.statuses[len(env.bus.statuses)-1]
	assert.Equal(t, negotiationsession.StatusNeedsReschedule, last.Status)
	assert.Equal(t, reasonDeadlock, last.ErrorMessage)
}

func TestEngine_RoundLimitEscalates(t *testing.T) {
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, pingPongCalendars(), session)
	env.engine.cfg.MaxRounds = 2
	env.engine.cfg.DeadlockRounds = 99

	res := env.engine.Execute(context.Background(), session)

	assert.Equal(t, negotiationsession.StatusNeedsReschedule, res.Status)
	assert.Equal(t, reasonRoundLimit, env.store.errMsgs["sess-1"])

	types := typesOf(env.msgs.reqs)
	require.Len(t, types, 8)
	assert.Equal(t, negotiationmessage.TypeNeedHuman, types[7])
	assert.Equal(t, []int{1, 1, 1, 1, 2, 2, 2, 2}, roundsOf(env.msgs.reqs))
	assert.Len(t, env.bus.progress, 2)
}

func TestEngine_ParticipantEscalatesMidRound(t *testing.T) {
	// 영희 is away for the whole window: no alternative slot exists.
	src := &perUserSource{byUser: map[string][]calendar.Event{
		"u-yh": {busyEvent("출장", dt(12, 16, 0, 0), dt(12, 30, 0, 0))},
	}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	res := env.engine.Execute(context.Background(), session)

	assert.Equal(t, negotiationsession.StatusNeedsReschedule, res.Status)
	assert.Equal(t, []negotiationmessage.Type{
		negotiationmessage.TypePropose,
		negotiationmessage.TypeInfo,
		negotiationmessage.TypeNeedHuman, // 영희's own escalation
		negotiationmessage.TypeNeedHuman, // terminal system row with the snapshot
	}, typesOf(env.msgs.reqs))

	assert.NotEmpty(t, env.store.errMsgs["sess-1"])

	terminal := env.msgs.reqs[3]
	require.NotNil(t, terminal.Payload)
	require.Len(t, terminal.Payload.ParticipantAvailabilities, 2)
	yh := terminal.Payload.ParticipantAvailabilities[1]
	assert.Equal(t, "u-yh", yh.UserID)
	assert.False(t, yh.IsAvailable)
	require.NotNil(t, yh.ConflictInfo, "the row keeps the owner's conflict detail")
	assert.Equal(t, "출장", yh.ConflictInfo.EventSummary)

	// Streamed snapshot copies: only 영희's own channel names the event.
	findTerminal := func(list []events.A2AMessagePayload) events.A2AMessagePayload {
		for _, p := range list {
			if p.MessageType == negotiationmessage.TypeNeedHuman && len(p.ParticipantAvailabilities) > 0 {
				return p
			}
		}
		t.Fatalf("no terminal snapshot in %v", list)
		return events.A2AMessagePayload{}
	}
	assert.Nil(t, findTerminal(env.bus.stream).ParticipantAvailabilities[1].ConflictInfo)
	assert.Nil(t, findTerminal(env.bus.copies["u-cs"]).ParticipantAvailabilities[1].ConflictInfo)
	require.NotNil(t, findTerminal(env.bus.copies["u-yh"]).ParticipantAvailabilities[1].ConflictInfo)
}

func TestEngine_AppendFailureLeavesSessionInProgress(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)
	env.msgs.failAt = 2 // the round-1 INFO row

	res := env.engine.Execute(context.Background(), session)

	assert.Equal(t, negotiationsession.StatusInProgress, res.Status)
	require.Error(t, res.Error)
	assert.Contains(t, res.Error.Error(), "failed to append")

	// No terminal bookkeeping: the session is left where it stands.
	assert.Empty(t, env.store.statuses)
	assert.Empty(t, env.store.errMsgs)
	assert.Empty(t, env.logs.cards)
	for _, s := range env.bus.statuses {
		assert.NotEqual(t, negotiationsession.StatusNeedsReschedule, s.Status)
	}
}

func TestEngine_NoCounterpartFails(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	session := groupSession(defaultPrefs())
	session.ParticipantIds = []string{"u-cs"}
	env := newTestEnv(t, src, session)

	res := env.engine.Execute(context.Background(), session)

	assert.Equal(t, negotiationsession.StatusFailed, res.Status)
	require.Error(t, res.Error)
	assert.Contains(t, env.store.errMsgs["sess-1"], "counterpart")
	assert.Empty(t, env.msgs.reqs)
}

func TestEngine_DirectoryFailureFails(t *testing.T) {
	src := &perUserSource{byUser: map[string][]calendar.Event{}}
	session := groupSession(defaultPrefs())
	env := newTestEnv(t, src, session)

	dir := &fakeDirectory{err: errors.New("db down")}
	env.engine.users = dir

	res := env.engine.Execute(context.Background(), session)

	assert.Equal(t, negotiationsession.StatusFailed, res.Status)
	require.Error(t, res.Error)
	assert.Empty(t, env.msgs.reqs)
}

func TestParseWindow(t *testing.T) {
	valid := map[string]any{
		"start": "2025-12-16T00:00:00+09:00",
		"end":   "2025-12-30T00:00:00+09:00",
	}

	ts, ok := parseWindow(valid, kst)
	require.True(t, ok)
	assert.Equal(t, dt(12, 16, 0, 0), ts.Start)
	assert.Equal(t, dt(12, 30, 0, 0), ts.End)

	for name, raw := range map[string]map[string]any{
		"nil map":       nil,
		"missing end":   {"start": "2025-12-16T00:00:00+09:00"},
		"garbage start": {"start": "tomorrow", "end": "2025-12-30T00:00:00+09:00"},
		"inverted":      {"start": "2025-12-30T00:00:00+09:00", "end": "2025-12-16T00:00:00+09:00"},
		"non-string":    {"start": 42, "end": 43},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := parseWindow(raw, kst)
			assert.False(t, ok)
		})
	}
}
