package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/intent"
	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/masking"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/services"
)

var kst = time.FixedZone("KST", 9*60*60)

// testNow is a Tuesday morning, so "내일" always lands on 2025-12-17 and
// "주말" on Saturday 2025-12-20.
var testNow = time.Date(2025, 12, 16, 10, 0, 0, 0, kst)

// stubCalendars hands each user their own event list.
type stubCalendars struct {
	byUser map[string][]calendar.Event
	errs   map[string]error
}

func (s *stubCalendars) Events(_ context.Context, userID string, _, _ time.Time) ([]calendar.Event, error) {
	if err := s.errs[userID]; err != nil {
		return nil, err
	}
	return s.byUser[userID], nil
}

type resetCall struct {
	ids   []string
	date  string
	clock string
}

type fakeSessions struct {
	created  []models.CreateSessionRequest
	resets   []resetCall
	resetErr error
}

func (f *fakeSessions) CreateSession(_ context.Context, req models.CreateSessionRequest) (*ent.NegotiationSession, error) {
	f.created = append(f.created, req)
	return &ent.NegotiationSession{
		ID:             req.SessionID,
		InitiatorID:    req.InitiatorID,
		ParticipantIds: req.ParticipantIDs,
		Status:         negotiationsession.StatusPending,
	}, nil
}

func (f *fakeSessions) ResetForRecoordination(_ context.Context, ids []string, date, clock string) ([]*ent.NegotiationSession, error) {
	if f.resetErr != nil {
		return nil, f.resetErr
	}
	f.resets = append(f.resets, resetCall{ids, date, clock})
	rows := make([]*ent.NegotiationSession, len(ids))
	for i, id := range ids {
		rows[i] = &ent.NegotiationSession{ID: id, Status: negotiationsession.StatusPending}
	}
	return rows, nil
}

// fakeChatLogs keeps rows oldest-first; ListUserLogs serves them newest-first
// the way the real store does.
type fakeChatLogs struct {
	reqs []models.CreateChatLogRequest
	rows []*ent.ChatLog
	seq  int
}

func (f *fakeChatLogs) CreateChatLog(_ context.Context, req models.CreateChatLogRequest) (*ent.ChatLog, error) {
	f.reqs = append(f.reqs, req)
	f.seq++
	row := &ent.ChatLog{
		ID:          fmt.Sprintf("log-%02d", f.seq),
		UserID:      req.UserID,
		MessageType: chatlog.MessageType(req.MessageType),
		Metadata:    req.Metadata,
		CreatedAt:   testNow.Add(time.Duration(f.seq) * time.Second),
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeChatLogs) ListUserLogs(_ context.Context, userID string, limit, offset int) (*models.ChatLogListResponse, error) {
	var logs []*ent.ChatLog
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].UserID == userID {
			logs = append(logs, f.rows[i])
		}
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return &models.ChatLogListResponse{Logs: logs, TotalCount: len(logs), Limit: limit, Offset: offset}, nil
}

// seed plants a historical row the next turn will read back.
func (f *fakeChatLogs) seed(userID string, typ chatlog.MessageType, metadata map[string]any) *ent.ChatLog {
	f.seq++
	row := &ent.ChatLog{
		ID:          fmt.Sprintf("seed-%02d", f.seq),
		UserID:      userID,
		MessageType: typ,
		Metadata:    metadata,
		CreatedAt:   testNow.Add(time.Duration(f.seq) * time.Second),
	}
	f.rows = append(f.rows, row)
	return row
}

type fakeChatSessions struct {
	opened int
}

func (f *fakeChatSessions) GetOrCreateChatSession(_ context.Context, userID, chatSessionID string) (*ent.ChatSession, bool, error) {
	if chatSessionID != "" {
		return &ent.ChatSession{ID: chatSessionID, UserID: userID}, false, nil
	}
	f.opened++
	return &ent.ChatSession{ID: fmt.Sprintf("chat-%02d", f.opened), UserID: userID}, true, nil
}

type fakeUsers struct {
	byID map[string]*ent.User
}

func newFakeUsers(users ...*ent.User) *fakeUsers {
	byID := make(map[string]*ent.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &fakeUsers{byID: byID}
}

func (f *fakeUsers) GetUser(_ context.Context, userID string) (*ent.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUsersByIDs(_ context.Context, ids []string) ([]*ent.User, error) {
	var out []*ent.User
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) FindUsersByNames(_ context.Context, names []string) ([]*ent.User, error) {
	var out []*ent.User
	for _, name := range names {
		for _, u := range f.byID {
			if u.Name == name {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

type fakeBus struct {
	msgs map[string][]events.NewMessagePayload
}

func (f *fakeBus) PublishNewMessage(_ context.Context, userID string, payload events.NewMessagePayload) error {
	if f.msgs == nil {
		f.msgs = map[string][]events.NewMessagePayload{}
	}
	f.msgs[userID] = append(f.msgs[userID], payload)
	return nil
}

type fakeTokens struct {
	errs map[string]error
}

func (f *fakeTokens) Token(_ context.Context, userID string) (string, error) {
	if err := f.errs[userID]; err != nil {
		return "", err
	}
	return "tok-" + userID, nil
}

type calWrite struct {
	token string
	input calendar.EventInput
}

type fakeCalendar struct {
	writes []calWrite
	err    error
}

func (f *fakeCalendar) CreateEvent(_ context.Context, token string, input calendar.EventInput) (*calendar.CreatedEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.writes = append(f.writes, calWrite{token, input})
	id := fmt.Sprintf("gev-%02d", len(f.writes))
	return &calendar.CreatedEvent{ID: id, HTMLLink: "https://calendar.local/" + id}, nil
}

type fakeMirror struct {
	recs []models.CreateCalendarEventRequest
	err  error
}

func (f *fakeMirror) RecordCalendarEvent(_ context.Context, req models.CreateCalendarEventRequest) (*ent.CalendarEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recs = append(f.recs, req)
	return &ent.CalendarEvent{ID: fmt.Sprintf("mir-%02d", len(f.recs))}, nil
}

type fakePool struct {
	enqueued []string
}

func (f *fakePool) Enqueue(sessionID string) bool {
	f.enqueued = append(f.enqueued, sessionID)
	return true
}

type testEnv struct {
	orch     *Orchestrator
	sessions *fakeSessions
	logs     *fakeChatLogs
	chats    *fakeChatSessions
	bus      *fakeBus
	pool     *fakePool
	cal      *fakeCalendar
	mirror   *fakeMirror
	tokens   *fakeTokens
	src      *stubCalendars
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	src := &stubCalendars{byUser: map[string][]calendar.Event{}, errs: map[string]error{}}
	factory := agent.NewFactory(src, &llm.StubClient{Err: errors.New("llm unreachable")},
		masking.NewService(nil), kst, 14)
	users := newFakeUsers(
		&ent.User{ID: "u-me", Name: "철수"},
		&ent.User{ID: "u-yh", Name: "영희"},
		&ent.User{ID: "u-mj", Name: "민지"},
	)

	env := &testEnv{
		sessions: &fakeSessions{},
		logs:     &fakeChatLogs{},
		chats:    &fakeChatSessions{},
		bus:      &fakeBus{},
		pool:     &fakePool{},
		cal:      &fakeCalendar{},
		mirror:   &fakeMirror{},
		tokens:   &fakeTokens{errs: map[string]error{}},
		src:      src,
	}
	env.orch = NewOrchestrator(factory, env.sessions, env.logs, env.chats, users,
		intent.NewExtractor(nil, kst), env.bus, env.tokens, env.cal, env.mirror,
		env.pool, nil, config.DefaultNegotiationConfig())
	env.orch.now = func() time.Time { return testNow }
	return env
}

// say runs one turn as 철수 and fails the test on a handler error.
func (env *testEnv) say(t *testing.T, text string, friendIDs ...string) *models.ChatReply {
	t.Helper()
	reply, err := env.orch.HandleMessage(context.Background(), HandleInput{
		UserID:    "u-me",
		Text:      text,
		FriendIDs: friendIDs,
	})
	require.NoError(t, err)
	require.NotNil(t, reply)
	return reply
}

func TestHandleMessage_DirectDispatch(t *testing.T) {
	env := newTestEnv(t)

	reply := env.say(t, "내일 저녁 7시에 영희랑 밥 먹자")

	require.Len(t, env.sessions.created, 1)
	req := env.sessions.created[0]
	assert.NotEmpty(t, req.SessionID)
	assert.Equal(t, "u-me", req.InitiatorID)
	assert.Equal(t, "u-yh", req.TargetID)
	assert.Equal(t, []string{"u-me", "u-yh"}, req.ParticipantIDs)
	assert.Equal(t, "내일 저녁 7시에 영희랑 밥 먹자", req.Intent)

	require.NotNil(t, req.Prefs)
	assert.Equal(t, "2025-12-17", req.Prefs.RequestedDate)
	assert.Equal(t, "19:00", req.Prefs.RequestedTime)
	assert.Equal(t, []string{"u-me", "u-yh"}, req.Prefs.Participants)
	assert.Equal(t, "저녁", req.Prefs.Activity)
	assert.NotEmpty(t, req.Prefs.ThreadID)

	assert.Equal(t, []string{req.SessionID}, env.pool.enqueued)
	assert.Equal(t, []string{req.SessionID}, reply.SessionIDs)
	assert.Equal(t, req.Prefs.ThreadID, reply.ThreadID)
	assert.Contains(t, reply.Response, "영희")
	assert.Contains(t, reply.Response, "12월 17일 19:00")

	// one user row, one reply row carrying the dispatched session
	require.Len(t, env.logs.reqs, 2)
	assert.Equal(t, string(chatlog.MessageTypeUserMessage), env.logs.reqs[0].MessageType)
	assert.Equal(t, string(chatlog.MessageTypeAiResponse), env.logs.reqs[1].MessageType)
	assert.Equal(t, req.SessionID, env.logs.reqs[1].SessionID)

	require.Len(t, env.bus.msgs["u-me"], 1)
	published := env.bus.msgs["u-me"][0]
	assert.Equal(t, events.EventTypeNewMessage, published.Type)
	assert.Equal(t, chatlog.MessageTypeAiResponse, published.MessageType)
	assert.Equal(t, reply.ChatSessionID, published.ChatSessionID)
	assert.Equal(t, "log-02", published.ChatLogID)
}

func TestHandleMessage_SelectedFriendsOutrankNamedOnes(t *testing.T) {
	env := newTestEnv(t)

	reply := env.say(t, "내일 19시에 영희랑 볼까", "u-mj")

	require.Len(t, env.sessions.created, 1)
	req := env.sessions.created[0]
	assert.Equal(t, []string{"u-me", "u-mj"}, req.ParticipantIDs)
	assert.Equal(t, "u-mj", req.TargetID)
	assert.Contains(t, reply.Response, "민지")
	assert.NotContains(t, reply.Response, "영희")
}

func TestHandleMessage_UnknownFriendNameIsReported(t *testing.T) {
	env := newTestEnv(t)

	reply := env.say(t, "짱구랑 내일 저녁 7시에 밥 먹자")

	assert.Empty(t, env.sessions.created)
	assert.Empty(t, env.pool.enqueued)
	assert.Contains(t, reply.Response, "짱구")
	assert.Contains(t, reply.Response, "찾지 못했어요")
}

func TestHandleMessage_DateOnlyEntersTimeSelection(t *testing.T) {
	env := newTestEnv(t)

	reply := env.say(t, "내일 영희랑 보자")

	assert.Empty(t, env.sessions.created)
	assert.Contains(t, reply.Response, "12월 17일")
	assert.Contains(t, reply.Response, "몇 시에 만날까요?")

	ts, err := models.ParseTimeSelectionMetadata(reply.Metadata)
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, "2025-12-17", ts.SelectedDate)
	assert.Equal(t, []string{"u-yh"}, ts.FriendIDs)
	assert.Equal(t, []string{"영희"}, ts.FriendNames)
	assert.Empty(t, ts.TimeCondition)
}

func TestHandleMessage_TimeSelectionAnswerDispatches(t *testing.T) {
	env := newTestEnv(t)
	env.say(t, "내일 영희랑 보자")

	reply := env.say(t, "저녁 7시 어때")

	require.Len(t, env.sessions.created, 1)
	req := env.sessions.created[0]
	assert.Equal(t, "2025-12-17", req.Prefs.RequestedDate)
	assert.Equal(t, "19:00", req.Prefs.RequestedTime)
	assert.Equal(t, []string{"u-me", "u-yh"}, req.ParticipantIDs)
	assert.Equal(t, []string{req.SessionID}, reply.SessionIDs)
	assert.Empty(t, reply.Metadata)
}

func TestHandleMessage_TimeSelectionEnforcesCondition(t *testing.T) {
	env := newTestEnv(t)
	stash := models.TimeSelectionMetadata{
		AwaitingTimeSelection: true,
		SelectedDate:          "2025-12-20",
		TimeCondition:         "18시 이후",
		FriendIDs:             []string{"u-yh"},
		FriendNames:           []string{"영희"},
	}
	env.logs.seed("u-me", chatlog.MessageTypeAiResponse, stash.ToMap())

	reply := env.say(t, "3시 어때")

	assert.Empty(t, env.sessions.created)
	assert.Contains(t, reply.Response, "18시 이후")
	ts, err := models.ParseTimeSelectionMetadata(reply.Metadata)
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, "2025-12-20", ts.SelectedDate)

	reply = env.say(t, "저녁 8시로 하자")

	require.Len(t, env.sessions.created, 1)
	assert.Equal(t, "2025-12-20", env.sessions.created[0].Prefs.RequestedDate)
	assert.Equal(t, "20:00", env.sessions.created[0].Prefs.RequestedTime)
	assert.Empty(t, reply.Metadata)
}

func TestHandleMessage_UnreadableTimeKeepsAsking(t *testing.T) {
	env := newTestEnv(t)
	env.say(t, "내일 영희랑 보자")

	reply := env.say(t, "아무때나 괜찮아")

	assert.Empty(t, env.sessions.created)
	assert.Contains(t, reply.Response, "몇 시")
	ts, err := models.ParseTimeSelectionMetadata(reply.Metadata)
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, "2025-12-17", ts.SelectedDate)
}

func TestHandleMessage_SlotFillMergesAcrossTurns(t *testing.T) {
	env := newTestEnv(t)

	r1 := env.say(t, "주말에 모임 잡아줘")

	assert.Empty(t, env.sessions.created)
	assert.Contains(t, r1.Response, "누구와 만날까요?")
	assert.Contains(t, r1.Response, "몇 시가 좋으세요?")
	assert.NotContains(t, r1.Response, "날짜는 언제가")
	sf, err := models.ParseSlotFillingMetadata(r1.Metadata)
	require.NoError(t, err)
	require.NotNil(t, sf)
	require.NotNil(t, sf.PendingIntent)
	assert.Equal(t, "2025-12-20", sf.PendingIntent.Date)

	r2 := env.say(t, "영희랑 저녁 7시")

	require.Len(t, env.sessions.created, 1)
	req := env.sessions.created[0]
	assert.Equal(t, "2025-12-20", req.Prefs.RequestedDate)
	assert.Equal(t, "19:00", req.Prefs.RequestedTime)
	assert.Equal(t, []string{"u-me", "u-yh"}, req.ParticipantIDs)
	assert.Contains(t, r2.Response, "영희")
}

func TestHandleMessage_PersonalSpanWritesCalendar(t *testing.T) {
	env := newTestEnv(t)

	reply := env.say(t, "내일 3시부터 5시까지 치과 예약해줘")

	assert.Empty(t, env.sessions.created)
	require.Len(t, env.cal.writes, 1)
	w := env.cal.writes[0]
	assert.Equal(t, "tok-u-me", w.token)
	assert.Equal(t, "치과", w.input.Summary)
	assert.Equal(t, "2025-12-17 15:00", w.input.Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2025-12-17 17:00", w.input.End.Format("2006-01-02 15:04"))
	assert.False(t, w.input.AllDay)
	assert.Empty(t, w.input.Attendees)

	require.Len(t, env.mirror.recs, 1)
	rec := env.mirror.recs[0]
	assert.Equal(t, "u-me", rec.OwnerID)
	assert.Equal(t, "gev-01", rec.GoogleEventID)
	assert.Empty(t, rec.SessionID)
	assert.Equal(t, "치과", rec.Summary)

	assert.Contains(t, reply.Response, "치과")
	assert.Contains(t, reply.Response, "등록했어요")
	assert.Empty(t, reply.Metadata)
}

func TestHandleMessage_PersonalSingleInstantAsksEndTime(t *testing.T) {
	env := newTestEnv(t)

	r1 := env.say(t, "내일 3시에 미용실 예약해줘")

	assert.Empty(t, env.cal.writes)
	assert.Equal(t, "몇 시까지로 등록할까요? 끝나는 시간을 알려주시면 바로 등록할게요!", r1.Response)
	pp, err := models.ParsePendingPersonalMetadata(r1.Metadata)
	require.NoError(t, err)
	require.NotNil(t, pp)
	assert.Equal(t, "2025-12-17", pp.Date)
	assert.Equal(t, "15:00", pp.StartTime)
	assert.Equal(t, "미용실", pp.Title)

	r2 := env.say(t, "5시까지")

	require.Len(t, env.cal.writes, 1)
	w := env.cal.writes[0]
	assert.Equal(t, "미용실", w.input.Summary)
	assert.Equal(t, "2025-12-17 15:00", w.input.Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2025-12-17 17:00", w.input.End.Format("2006-01-02 15:04"))
	assert.Contains(t, r2.Response, "미용실")
}

func TestHandleMessage_ShortConfirmBooksDefaultLength(t *testing.T) {
	env := newTestEnv(t)
	env.say(t, "내일 3시에 미용실 예약해줘")

	reply := env.say(t, "응")

	require.Len(t, env.cal.writes, 1)
	w := env.cal.writes[0]
	assert.Equal(t, "2025-12-17 15:00", w.input.Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2025-12-17 17:00", w.input.End.Format("2006-01-02 15:04"))
	assert.Contains(t, reply.Response, "등록했어요")
}

func TestHandleMessage_PersonalConflictRefusedWithOwnSummary(t *testing.T) {
	env := newTestEnv(t)
	env.src.byUser["u-me"] = []calendar.Event{{
		ID:      "ev-1",
		Summary: "팀 회의",
		Start:   time.Date(2025, 12, 17, 14, 0, 0, 0, kst),
		End:     time.Date(2025, 12, 17, 16, 0, 0, 0, kst),
	}}

	reply := env.say(t, "내일 3시부터 5시까지 치과 예약해줘")

	assert.Empty(t, env.cal.writes)
	assert.Empty(t, env.mirror.recs)
	assert.Contains(t, reply.Response, "팀 회의")
}

func TestHandleMessage_PersonalWriteNeedsCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.tokens.errs["u-me"] = calendar.ErrNoCredentials

	reply := env.say(t, "내일 3시부터 5시까지 치과 예약해줘")

	assert.Empty(t, env.cal.writes)
	assert.Contains(t, reply.Response, "캘린더를 연결하면")
}

func TestHandleMessage_PersonalWriteFailureIsGraceful(t *testing.T) {
	env := newTestEnv(t)
	env.cal.err = errors.New("provider down")

	reply := env.say(t, "내일 3시부터 5시까지 치과 예약해줘")

	assert.Empty(t, env.mirror.recs)
	assert.Contains(t, reply.Response, "실패했어요")
}

func TestHandleMessage_RecoordinationReusesRejectedThread(t *testing.T) {
	env := newTestEnv(t)
	rej := models.RejectionMetadata{
		NeedsRecoordination: true,
		ThreadID:            "th-9",
		SessionIDs:          []string{"sess-1", "sess-2"},
		RejectedBy:          "u-yh",
	}
	env.logs.seed("u-me", chatlog.MessageTypeScheduleRejection, rej.ToMap())

	reply := env.say(t, "그럼 금요일 저녁 8시로 다시 잡아줘")

	assert.Empty(t, env.sessions.created)
	require.Len(t, env.sessions.resets, 1)
	reset := env.sessions.resets[0]
	assert.Equal(t, []string{"sess-1", "sess-2"}, reset.ids)
	assert.Equal(t, "2025-12-19", reset.date)
	assert.Equal(t, "20:00", reset.clock)

	assert.Equal(t, []string{"sess-1", "sess-2"}, env.pool.enqueued)
	assert.Equal(t, []string{"sess-1", "sess-2"}, reply.SessionIDs)
	assert.Equal(t, "th-9", reply.ThreadID)
	assert.Contains(t, reply.Response, "다시 조율")
}

func TestHandleMessage_RecoordinationDisarmedByNewerApproval(t *testing.T) {
	env := newTestEnv(t)
	rej := models.RejectionMetadata{NeedsRecoordination: true, ThreadID: "th-9", SessionIDs: []string{"sess-1"}}
	env.logs.seed("u-me", chatlog.MessageTypeScheduleRejection, rej.ToMap())
	done := models.ApprovalMetadata{ThreadID: "th-9", SessionIDs: []string{"sess-1"}, AllApproved: true}
	env.logs.seed("u-me", chatlog.MessageTypeScheduleApproval, done.ToMap())

	reply := env.say(t, "그럼 금요일 저녁 8시로 다시 잡아줘")

	assert.Empty(t, env.sessions.resets)
	// the thread is finished, so this reads as a fresh companionless request
	assert.Contains(t, reply.Response, "누구와 만날까요?")
}

func TestHandleMessage_ExplicitFriendsOverrideRecoordination(t *testing.T) {
	env := newTestEnv(t)
	rej := models.RejectionMetadata{NeedsRecoordination: true, ThreadID: "th-9", SessionIDs: []string{"sess-1"}}
	env.logs.seed("u-me", chatlog.MessageTypeScheduleRejection, rej.ToMap())

	reply := env.say(t, "민지랑 금요일 저녁 8시에 보자")

	assert.Empty(t, env.sessions.resets)
	require.Len(t, env.sessions.created, 1)
	req := env.sessions.created[0]
	assert.Equal(t, []string{"u-me", "u-mj"}, req.ParticipantIDs)
	assert.NotEqual(t, "th-9", req.Prefs.ThreadID)
	assert.Equal(t, req.Prefs.ThreadID, reply.ThreadID)
}

func TestHandleMessage_FreeformFallsBackWithoutModel(t *testing.T) {
	env := newTestEnv(t)

	reply := env.say(t, "안녕!")

	assert.Contains(t, reply.Response, "모임 일정 조율")
	assert.Empty(t, reply.Metadata)
	assert.Empty(t, reply.SessionIDs)

	require.Len(t, env.logs.reqs, 2)
	assert.Equal(t, string(chatlog.MessageTypeUserMessage), env.logs.reqs[0].MessageType)
	assert.Equal(t, "안녕!", env.logs.reqs[0].RequestText)
	assert.Equal(t, string(chatlog.MessageTypeAiResponse), env.logs.reqs[1].MessageType)
	assert.Equal(t, reply.Response, env.logs.reqs[1].ResponseText)

	require.Len(t, env.bus.msgs["u-me"], 1)
	assert.Equal(t, chatlog.MessageTypeAiResponse, env.bus.msgs["u-me"][0].MessageType)
}

func TestHandleMessage_FreeformUsesModelWhenAvailable(t *testing.T) {
	env := newTestEnv(t)
	env.orch.llm = &llm.StubClient{Reply: "반가워요! 모임이 필요하면 말씀해 주세요."}

	reply := env.say(t, "안녕!")

	assert.Equal(t, "반가워요! 모임이 필요하면 말씀해 주세요.", reply.Response)
}

func TestHandleMessage_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orch.HandleMessage(context.Background(), HandleInput{UserID: "", Text: "안녕"})
	assert.True(t, services.IsValidationError(err))

	_, err = env.orch.HandleMessage(context.Background(), HandleInput{UserID: "u-me", Text: "   "})
	assert.True(t, services.IsValidationError(err))

	assert.Empty(t, env.logs.reqs)
}

func TestHandleMessage_ReusesSuppliedChatSession(t *testing.T) {
	env := newTestEnv(t)

	reply, err := env.orch.HandleMessage(context.Background(), HandleInput{
		UserID:        "u-me",
		ChatSessionID: "chat-keep",
		Text:          "안녕!",
	})
	require.NoError(t, err)
	assert.Equal(t, "chat-keep", reply.ChatSessionID)
	assert.Equal(t, 0, env.chats.opened)
}
