package approval

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/services"
)

var kst = time.FixedZone("KST", 9*60*60)

// testNow is when every decision in these tests happens; the fixture thread
// agreed on 2025-12-17 18:00 the evening before.
var testNow = time.Date(2025, 12, 16, 21, 0, 0, 0, kst)

// cardTime predates every response written during a test, so freshly
// recorded consent always postdates the current cards.
var cardTime = testNow.Add(-10 * time.Minute)

var threadParticipants = []string{"u-cs", "u-yh", "u-mj"}

func agreedPrefs() *models.SessionPrefs {
	return &models.SessionPrefs{
		ThreadID:        "th-1",
		Participants:    threadParticipants,
		Summary:         "저녁 모임",
		Activity:        "저녁",
		Location:        "강남",
		RequestedDate:   "2025-12-17",
		RequestedTime:   "18:00",
		AgreedDate:      "2025-12-17",
		AgreedTime:      "18:00",
		DurationMinutes: 120,
	}
}

func parkedSession(id string, prefs *models.SessionPrefs) *ent.NegotiationSession {
	return &ent.NegotiationSession{
		ID:             id,
		InitiatorID:    "u-cs",
		ParticipantIds: threadParticipants,
		Intent:         "내일 저녁에 다같이 밥 먹자",
		Status:         negotiationsession.StatusPendingApproval,
		PlacePref:      prefs.ToMap(),
	}
}

type statusWrite struct {
	sessionID string
	status    negotiationsession.Status
}

type fakeSessionStore struct {
	thread    []*ent.NegotiationSession
	threadErr error

	statuses    []statusWrite
	finalEvents map[string]string
	reopened    []string
}

func newFakeSessionStore(thread ...*ent.NegotiationSession) *fakeSessionStore {
	return &fakeSessionStore{thread: thread, finalEvents: map[string]string{}}
}

func (f *fakeSessionStore) ListSessionsByThread(_ context.Context, _ string) ([]*ent.NegotiationSession, error) {
	if f.threadErr != nil {
		return nil, f.threadErr
	}
	return f.thread, nil
}

func (f *fakeSessionStore) UpdateSessionStatus(_ context.Context, sessionID string, status negotiationsession.Status) error {
	f.statuses = append(f.statuses, statusWrite{sessionID, status})
	for _, s := range f.thread {
		if s.ID == sessionID {
			s.Status = status
		}
	}
	return nil
}

func (f *fakeSessionStore) SetFinalEvent(_ context.Context, sessionID, eventID string) error {
	f.finalEvents[sessionID] = eventID
	return nil
}

func (f *fakeSessionStore) ReopenAfterRejection(_ context.Context, sessionIDs []string) ([]string, error) {
	f.reopened = append(f.reopened, sessionIDs...)
	for _, s := range f.thread {
		for _, id := range sessionIDs {
			if s.ID == id && s.Status == negotiationsession.StatusPendingApproval {
				s.Status = negotiationsession.StatusInProgress
			}
		}
	}
	return sessionIDs, nil
}

type fakeMessageStore struct {
	reqs  []models.CreateMessageRequest
	calls int
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, req models.CreateMessageRequest) (*ent.NegotiationMessage, error) {
	f.calls++
	f.reqs = append(f.reqs, req)
	return &ent.NegotiationMessage{
		ID:         fmt.Sprintf("m-%02d", f.calls),
		SessionID:  req.SessionID,
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		Type:       req.Type,
		Round:      req.Round,
		Prose:      req.Prose,
		CreatedAt:  testNow,
	}, nil
}

// logRow backs the chat log fake; ent rows are materialized on read so the
// fake can filter without touching nillable generated fields.
type logRow struct {
	id        string
	userID    string
	sessionID string
	msgType   chatlog.MessageType
	metadata  map[string]any
	createdAt time.Time
}

func (r logRow) ent() *ent.ChatLog {
	return &ent.ChatLog{
		ID:          r.id,
		UserID:      r.userID,
		MessageType: r.msgType,
		Metadata:    r.metadata,
		CreatedAt:   r.createdAt,
	}
}

type fakeChatLogs struct {
	rows  []logRow
	reqs  []models.CreateChatLogRequest
	clock time.Time
}

func newFakeChatLogs() *fakeChatLogs {
	return &fakeChatLogs{clock: testNow}
}

func (f *fakeChatLogs) seed(userID, sessionID string, msgType chatlog.MessageType, metadata map[string]any, at time.Time) {
	f.rows = append(f.rows, logRow{
		id:        fmt.Sprintf("log-%02d", len(f.rows)+1),
		userID:    userID,
		sessionID: sessionID,
		msgType:   msgType,
		metadata:  metadata,
		createdAt: at,
	})
}

func (f *fakeChatLogs) CreateChatLog(_ context.Context, req models.CreateChatLogRequest) (*ent.ChatLog, error) {
	f.reqs = append(f.reqs, req)
	f.clock = f.clock.Add(time.Second)
	row := logRow{
		id:        fmt.Sprintf("log-%02d", len(f.rows)+1),
		userID:    req.UserID,
		sessionID: req.SessionID,
		msgType:   chatlog.MessageType(req.MessageType),
		metadata:  req.Metadata,
		createdAt: f.clock,
	}
	f.rows = append(f.rows, row)
	return row.ent(), nil
}

func (f *fakeChatLogs) LatestApprovalCard(_ context.Context, sessionID, userID string) (*ent.ChatLog, error) {
	var best *logRow
	for i := range f.rows {
		r := &f.rows[i]
		if r.sessionID == sessionID && r.userID == userID && r.msgType == chatlog.MessageTypeScheduleApproval {
			if best == nil || r.createdAt.After(best.createdAt) {
				best = r
			}
		}
	}
	if best == nil {
		return nil, services.ErrNotFound
	}
	return best.ent(), nil
}

func (f *fakeChatLogs) ApprovalCardsForSessions(_ context.Context, sessionIDs []string) ([]*ent.ChatLog, error) {
	ids := map[string]bool{}
	for _, id := range sessionIDs {
		ids[id] = true
	}
	var out []*ent.ChatLog
	for i := range f.rows {
		r := &f.rows[i]
		if ids[r.sessionID] && r.msgType == chatlog.MessageTypeScheduleApproval {
			out = append(out, r.ent())
		}
	}
	return out, nil
}

func (f *fakeChatLogs) LatestApprovalResponses(_ context.Context, sessionID string) (map[string]*ent.ChatLog, error) {
	latest := map[string]logRow{}
	for _, r := range f.rows {
		if r.sessionID != sessionID || r.msgType != chatlog.MessageTypeApprovalResponse {
			continue
		}
		if cur, ok := latest[r.userID]; !ok || r.createdAt.After(cur.createdAt) {
			latest[r.userID] = r
		}
	}
	out := make(map[string]*ent.ChatLog, len(latest))
	for u, r := range latest {
		out[u] = r.ent()
	}
	return out, nil
}

func (f *fakeChatLogs) UpdateLogMetadata(_ context.Context, chatLogID string, metadata map[string]any) error {
	for i := range f.rows {
		if f.rows[i].id == chatLogID {
			f.rows[i].metadata = metadata
			return nil
		}
	}
	return services.ErrNotFound
}

func (f *fakeChatLogs) createdOfType(msgType chatlog.MessageType) []models.CreateChatLogRequest {
	var out []models.CreateChatLogRequest
	for _, req := range f.reqs {
		if req.MessageType == string(msgType) {
			out = append(out, req)
		}
	}
	return out
}

type fakeDirectory struct {
	names map[string]string
}

func (f *fakeDirectory) DisplayNames(_ context.Context, _ []string) (map[string]string, error) {
	return f.names, nil
}

type fakeBus struct {
	stream   []events.A2AMessagePayload
	copies   map[string][]events.A2AMessagePayload
	statuses []events.SessionStatusPayload
	notifs   map[string][]events.NotificationPayload
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		copies: map[string][]events.A2AMessagePayload{},
		notifs: map[string][]events.NotificationPayload{},
	}
}

func (f *fakeBus) PublishA2AMessage(_ context.Context, _ string, _ []string, payload events.A2AMessagePayload) error {
	f.stream = append(f.stream, payload)
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

func (f *fakeBus) PublishNotification(_ context.Context, userID string, payload events.NotificationPayload) error {
	f.notifs[userID] = append(f.notifs[userID], payload)
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
	writes  []calWrite
	deleted []string
	seq     int
}

func (f *fakeCalendar) CreateEvent(_ context.Context, token string, input calendar.EventInput) (*calendar.CreatedEvent, error) {
	f.seq++
	f.writes = append(f.writes, calWrite{token: token, input: input})
	return &calendar.CreatedEvent{
		ID:       fmt.Sprintf("gev-%02d", f.seq),
		HTMLLink: "https://calendar.test/" + fmt.Sprintf("gev-%02d", f.seq),
	}, nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, _, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return nil
}

type fakeMirror struct {
	rows      []*ent.CalendarEvent
	recs      []models.CreateCalendarEventRequest
	dupOwners map[string]bool // RecordCalendarEvent refuses these as duplicates
}

func (f *fakeMirror) seed(owner, sessionID, googleEventID string) {
	f.rows = append(f.rows, &ent.CalendarEvent{
		ID:            fmt.Sprintf("ce-%02d", len(f.rows)+1),
		OwnerID:       owner,
		SessionID:     &sessionID,
		GoogleEventID: googleEventID,
	})
}

func (f *fakeMirror) RecordCalendarEvent(_ context.Context, req models.CreateCalendarEventRequest) (*ent.CalendarEvent, error) {
	if f.dupOwners[req.OwnerID] {
		return nil, services.ErrAlreadyExists
	}
	for _, row := range f.rows {
		if row.OwnerID == req.OwnerID && row.SessionID != nil && *row.SessionID == req.SessionID {
			return nil, services.ErrAlreadyExists
		}
	}
	f.recs = append(f.recs, req)
	sessionID := req.SessionID
	row := &ent.CalendarEvent{
		ID:            fmt.Sprintf("ce-%02d", len(f.rows)+1),
		OwnerID:       req.OwnerID,
		SessionID:     &sessionID,
		GoogleEventID: req.GoogleEventID,
		Summary:       req.Summary,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeMirror) GetSessionEvents(_ context.Context, sessionID string) ([]*ent.CalendarEvent, error) {
	var out []*ent.CalendarEvent
	for _, row := range f.rows {
		if row.SessionID != nil && *row.SessionID == sessionID {
			out = append(out, row)
		}
	}
	return out, nil
}

type testEnv struct {
	coord  *Coordinator
	store  *fakeSessionStore
	msgs   *fakeMessageStore
	logs   *fakeChatLogs
	bus    *fakeBus
	tokens *fakeTokens
	cal    *fakeCalendar
	mirror *fakeMirror
}

// newTestEnv builds a coordinator over fakes and deals every participant
// an approval card on the newest pending session, as the engine leaves
// things after unanimous agreement.
func newTestEnv(t *testing.T, sessions ...*ent.NegotiationSession) *testEnv {
	t.Helper()
	env := &testEnv{
		store:  newFakeSessionStore(sessions...),
		msgs:   &fakeMessageStore{},
		logs:   newFakeChatLogs(),
		bus:    newFakeBus(),
		tokens: &fakeTokens{errs: map[string]error{}},
		cal:    &fakeCalendar{},
		mirror: &fakeMirror{dupOwners: map[string]bool{}},
	}
	dir := &fakeDirectory{names: map[string]string{"u-cs": "철수", "u-yh": "영희", "u-mj": "민지"}}
	env.coord = NewCoordinator(env.store, env.msgs, env.logs, dir, env.bus,
		env.tokens, env.cal, env.mirror, nil, config.DefaultNegotiationConfig())
	env.coord.now = func() time.Time { return testNow }

	if len(sessions) > 0 {
		anchor := sessions[len(sessions)-1]
		ids := make([]string, 0, len(sessions))
		for _, s := range sessions {
			ids = append(ids, s.ID)
		}
		cardMeta := models.ApprovalMetadata{ThreadID: "th-1", SessionIDs: ids}
		for _, p := range threadParticipants {
			env.logs.seed(p, anchor.ID, chatlog.MessageTypeScheduleApproval, cardMeta.ToMap(), cardTime)
		}
	}
	return env
}

// seedApproval plants a pre-existing consent row, timestamped after the
// current cards unless the test says otherwise.
func (e *testEnv) seedApproval(userID, sessionID string, at time.Time) {
	meta := models.ApprovalResponseMetadata{Approved: true, ThreadID: "th-1"}
	e.logs.seed(userID, sessionID, chatlog.MessageTypeApprovalResponse, meta.ToMap(), at)
}

func (e *testEnv) cardMeta(t *testing.T, sessionID, userID string) *models.ApprovalMetadata {
	t.Helper()
	card, err := e.logs.LatestApprovalCard(context.Background(), sessionID, userID)
	require.NoError(t, err)
	meta, err := models.ParseApprovalMetadata(card.Metadata)
	require.NoError(t, err)
	require.NotNil(t, meta)
	return meta
}

func TestApprove_FirstOfThree(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))

	res, err := env.coord.Approve(context.Background(), "u-cs", "th-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"u-cs"}, res.ApprovedBy)
	assert.False(t, res.AllApproved)
	assert.False(t, res.Finalized)
	assert.Equal(t, "철수님이 승인했습니다. (남은 인원 2명)", res.ResponseText)

	// The durable consent row carries an explicit approved=true.
	responses := env.logs.createdOfType(chatlog.MessageTypeApprovalResponse)
	require.Len(t, responses, 1)
	assert.Equal(t, "u-cs", responses[0].UserID)
	meta, err := models.ParseApprovalResponseMetadata(responses[0].Metadata)
	require.NoError(t, err)
	assert.True(t, meta.Approved)

	// Every card's display cache was refreshed; only the approver's card
	// records who and when.
	for _, p := range threadParticipants {
		cm := env.cardMeta(t, "sess-1", p)
		assert.Equal(t, []string{"u-cs"}, cm.ApprovedByList)
		assert.False(t, cm.AllApproved)
		if p == "u-cs" {
			assert.Equal(t, "u-cs", cm.ApprovedBy)
			require.NotNil(t, cm.ApprovedAt)
		} else {
			assert.Empty(t, cm.ApprovedBy)
		}
	}

	// One system row, narrated to the session channel and every feed.
	require.Len(t, env.msgs.reqs, 1)
	assert.Equal(t, systemSenderID, env.msgs.reqs[0].SenderID)
	assert.Equal(t, negotiationmessage.TypeInfo, env.msgs.reqs[0].Type)
	require.Len(t, env.bus.stream, 1)
	for _, p := range threadParticipants {
		assert.Len(t, env.bus.copies[p], 1)
	}

	// Not unanimous yet: no calendars, no status changes.
	assert.Empty(t, env.cal.writes)
	assert.Empty(t, env.store.statuses)
}

func TestApprove_LastApprovalFinalizes(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	env.seedApproval("u-cs", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-time.Minute))

	res, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
	require.NoError(t, err)

	assert.True(t, res.AllApproved)
	assert.True(t, res.Finalized)
	assert.Empty(t, res.FailedWriters)
	assert.Equal(t, []string{"u-cs", "u-yh", "u-mj"}, res.ApprovedBy)
	assert.Contains(t, res.ResponseText, "확정")

	// One owner-local write per participant, no cross-invitations.
	require.Len(t, env.cal.writes, 3)
	assert.Equal(t, "tok-u-cs", env.cal.writes[0].token)
	assert.Equal(t, "tok-u-yh", env.cal.writes[1].token)
	assert.Equal(t, "tok-u-mj", env.cal.writes[2].token)
	for _, w := range env.cal.writes {
		assert.Equal(t, "저녁 모임", w.input.Summary)
		assert.Equal(t, "강남", w.input.Location)
		assert.Empty(t, w.input.Attendees)
		assert.False(t, w.input.AllDay)
		assert.Equal(t, "2025-12-17 18:00", w.input.Start.Format("2006-01-02 15:04"))
		assert.Equal(t, "2025-12-17 20:00", w.input.End.Format("2006-01-02 15:04"))
	}

	// Every write is mirrored against the anchor session.
	require.Len(t, env.mirror.recs, 3)
	for _, rec := range env.mirror.recs {
		assert.Equal(t, "sess-1", rec.SessionID)
	}

	assert.Equal(t, []statusWrite{{"sess-1", negotiationsession.StatusCompleted}}, env.store.statuses)
	assert.Equal(t, "gev-01", env.store.finalEvents["sess-1"])

	// Interim approval line plus the final confirmation line.
	require.Len(t, env.msgs.reqs, 2)
	assert.Contains(t, env.msgs.reqs[0].Prose, "민지님이 승인했습니다")
	assert.Contains(t, env.msgs.reqs[1].Prose, "확정")

	confirmed := env.logs.createdOfType(chatlog.MessageTypeScheduleConfirmed)
	require.Len(t, confirmed, 3)
	for _, p := range threadParticipants {
		assert.Len(t, env.bus.notifs[p], 1)
	}

	var sawCompleted bool
	for _, s := range env.bus.statuses {
		if s.Status == negotiationsession.StatusCompleted {
			sawCompleted = true
			assert.Equal(t, "th-1", s.ThreadID)
		}
	}
	assert.True(t, sawCompleted)
}

func TestApprove_TokenFailureIsReportedNotFatal(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	env.tokens.errs["u-yh"] = calendar.ErrNoCredentials
	env.seedApproval("u-cs", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-time.Minute))

	res, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
	require.NoError(t, err)

	assert.True(t, res.Finalized)
	assert.Equal(t, []string{"u-yh"}, res.FailedWriters)
	assert.Equal(t,
		"일정이 확정되었으나, 다음 사용자의 캘린더 등록에 실패했습니다: 영희. (권한/로그인 확인 필요)",
		res.ResponseText)

	// The others still got their events and the thread still completed.
	require.Len(t, env.cal.writes, 2)
	assert.Equal(t, []statusWrite{{"sess-1", negotiationsession.StatusCompleted}}, env.store.statuses)

	// Everyone is told, including the user who needs to relog in.
	confirmed := env.logs.createdOfType(chatlog.MessageTypeScheduleConfirmed)
	require.Len(t, confirmed, 3)
}

func TestApprove_RepeatedClickIsIdempotent(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))

	_, err := env.coord.Approve(context.Background(), "u-cs", "th-1")
	require.NoError(t, err)

	res, err := env.coord.Approve(context.Background(), "u-cs", "th-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"u-cs"}, res.ApprovedBy)
	assert.False(t, res.AllApproved)
	assert.Equal(t, "이미 승인하셨어요.", res.ResponseText)

	// No second consent row and no second narration.
	assert.Len(t, env.logs.createdOfType(chatlog.MessageTypeApprovalResponse), 1)
	assert.Len(t, env.msgs.reqs, 1)
}

func TestApprove_StaleConsentFromPreviousPhaseIgnored(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	// 영희 approved an earlier agreement on these same reused sessions;
	// her row predates the current cards.
	env.seedApproval("u-yh", "sess-1", cardTime.Add(-time.Hour))

	res, err := env.coord.Approve(context.Background(), "u-cs", "th-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"u-cs"}, res.ApprovedBy)
	assert.False(t, res.AllApproved)
	assert.Empty(t, env.cal.writes)
}

func TestApprove_RetryAfterCrashedFinalizationCompletes(t *testing.T) {
	// All three consents are durable but the finalization never ran (the
	// pod died between the scan and the writes). The last approver clicks
	// again: the repeat path must still drive finalization.
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	env.seedApproval("u-cs", "sess-1", testNow.Add(-3*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-mj", "sess-1", testNow.Add(-time.Minute))

	res, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
	require.NoError(t, err)

	assert.True(t, res.AllApproved)
	assert.True(t, res.Finalized)
	require.Len(t, env.cal.writes, 3)

	// No duplicate consent row; the only transcript row is the final one.
	assert.Len(t, env.logs.createdOfType(chatlog.MessageTypeApprovalResponse), 3)
	require.Len(t, env.msgs.reqs, 1)
	assert.Contains(t, env.msgs.reqs[0].Prose, "확정")
}

func TestApprove_ConcurrentDuplicateWriteIsAbsorbed(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	env.mirror.dupOwners["u-yh"] = true
	env.seedApproval("u-cs", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-time.Minute))

	res, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
	require.NoError(t, err)

	// 영희's write lost the uniqueness race: her fresh provider event is
	// deleted again and she is not reported as failed.
	assert.Empty(t, res.FailedWriters)
	require.Len(t, env.cal.writes, 3)
	assert.Equal(t, []string{"gev-02"}, env.cal.deleted)
	require.Len(t, env.mirror.recs, 2)
}

func TestApprove_AlreadyWrittenOwnerIsSkipped(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	env.mirror.seed("u-cs", "sess-1", "gev-old")
	env.seedApproval("u-cs", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-time.Minute))

	res, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
	require.NoError(t, err)

	assert.True(t, res.Finalized)
	assert.Empty(t, res.FailedWriters)

	// Only the two unwritten calendars are touched, and the surviving
	// event id from the earlier write stays the thread's final event.
	require.Len(t, env.cal.writes, 2)
	assert.Equal(t, "tok-u-yh", env.cal.writes[0].token)
	assert.Equal(t, "tok-u-mj", env.cal.writes[1].token)
	assert.Equal(t, "gev-old", env.store.finalEvents["sess-1"])
}

func TestApprove_MultiSessionThreadCompletesAll(t *testing.T) {
	older := parkedSession("sess-0", agreedPrefs())
	newer := parkedSession("sess-1", agreedPrefs())
	env := newTestEnv(t, older, newer)
	env.seedApproval("u-cs", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-time.Minute))

	res, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
	require.NoError(t, err)

	assert.True(t, res.Finalized)
	assert.Equal(t, []string{"sess-0", "sess-1"}, res.SessionIDs)

	assert.Equal(t, []statusWrite{
		{"sess-0", negotiationsession.StatusCompleted},
		{"sess-1", negotiationsession.StatusCompleted},
	}, env.store.statuses)
	assert.Equal(t, "gev-01", env.store.finalEvents["sess-0"])
	assert.Equal(t, "gev-01", env.store.finalEvents["sess-1"])

	// Calendar writes key on the anchor session only.
	for _, rec := range env.mirror.recs {
		assert.Equal(t, "sess-1", rec.SessionID)
	}
}

func TestApprove_OvernightAgreementWritesAllDaySpan(t *testing.T) {
	prefs := agreedPrefs()
	prefs.AgreedTime = ""
	prefs.DurationNights = 1
	env := newTestEnv(t, parkedSession("sess-1", prefs))
	env.seedApproval("u-cs", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-time.Minute))

	_, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
	require.NoError(t, err)

	require.Len(t, env.cal.writes, 3)
	w := env.cal.writes[0].input
	assert.True(t, w.AllDay)
	assert.Equal(t, "2025-12-17 00:00", w.Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2025-12-19 00:00", w.End.Format("2006-01-02 15:04"))
}

func TestApprove_Errors(t *testing.T) {
	t.Run("unknown thread", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.coord.Approve(context.Background(), "u-cs", "th-1")
		assert.ErrorIs(t, err, ErrThreadNotFound)
	})

	t.Run("stranger", func(t *testing.T) {
		env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
		_, err := env.coord.Approve(context.Background(), "u-stranger", "th-1")
		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("nothing pending", func(t *testing.T) {
		done := parkedSession("sess-1", agreedPrefs())
		done.Status = negotiationsession.StatusCompleted
		env := newTestEnv(t, done)
		_, err := env.coord.Approve(context.Background(), "u-cs", "th-1")
		assert.ErrorIs(t, err, ErrNoPendingApproval)
	})

	t.Run("no agreed slot", func(t *testing.T) {
		prefs := agreedPrefs()
		prefs.AgreedDate = ""
		env := newTestEnv(t, parkedSession("sess-1", prefs))
		env.seedApproval("u-cs", "sess-1", testNow.Add(-2*time.Minute))
		env.seedApproval("u-yh", "sess-1", testNow.Add(-time.Minute))

		_, err := env.coord.Approve(context.Background(), "u-mj", "th-1")
		assert.ErrorIs(t, err, ErrNoAgreedSlot)
		assert.Empty(t, env.cal.writes)
	})
}

func TestReject_ReopensThreadForRecoordination(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	env.seedApproval("u-cs", "sess-1", testNow.Add(-time.Minute))

	res, err := env.coord.Reject(context.Background(), "u-yh", "th-1")
	require.NoError(t, err)
	assert.Contains(t, res.ResponseText, "영희님이 일정을 거절했습니다")

	// The refusal is durable and explicit.
	responses := env.logs.createdOfType(chatlog.MessageTypeApprovalResponse)
	require.Len(t, responses, 1)
	meta, err := models.ParseApprovalResponseMetadata(responses[0].Metadata)
	require.NoError(t, err)
	assert.False(t, meta.Approved)

	// One REJECT transcript row from the system sender.
	require.Len(t, env.msgs.reqs, 1)
	assert.Equal(t, negotiationmessage.TypeReject, env.msgs.reqs[0].Type)
	assert.Equal(t, systemSenderID, env.msgs.reqs[0].SenderID)

	// Buttons go dark on every card.
	for _, p := range threadParticipants {
		assert.True(t, env.cardMeta(t, "sess-1", p).ButtonsDisabled)
	}

	// Every participant gets the rejection notice that arms recoordination.
	notices := env.logs.createdOfType(chatlog.MessageTypeScheduleRejection)
	require.Len(t, notices, 3)
	rm, err := models.ParseRejectionMetadata(notices[0].Metadata)
	require.NoError(t, err)
	assert.True(t, rm.NeedsRecoordination)
	assert.Equal(t, "th-1", rm.ThreadID)
	assert.Equal(t, []string{"sess-1"}, rm.SessionIDs)
	assert.Equal(t, "u-yh", rm.RejectedBy)

	// Sessions wait for a new slot: reopened, status event published,
	// nothing written to any calendar.
	assert.Equal(t, []string{"sess-1"}, env.store.reopened)
	require.Len(t, env.bus.statuses, 1)
	assert.Equal(t, negotiationsession.StatusInProgress, env.bus.statuses[0].Status)
	assert.Empty(t, env.cal.writes)
}

func TestReject_AfterFullApprovalIsRefused(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))
	env.seedApproval("u-cs", "sess-1", testNow.Add(-3*time.Minute))
	env.seedApproval("u-yh", "sess-1", testNow.Add(-2*time.Minute))
	env.seedApproval("u-mj", "sess-1", testNow.Add(-time.Minute))

	_, err := env.coord.Reject(context.Background(), "u-yh", "th-1")
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Empty(t, env.store.reopened)
	assert.Empty(t, env.logs.createdOfType(chatlog.MessageTypeScheduleRejection))
}

func TestAgreedSlot_Variants(t *testing.T) {
	env := newTestEnv(t, parkedSession("sess-1", agreedPrefs()))

	t.Run("timed single day", func(t *testing.T) {
		slot, allDay, err := env.coord.agreedSlot(agreedPrefs())
		require.NoError(t, err)
		assert.False(t, allDay)
		assert.Equal(t, "2025-12-17 18:00", slot.Start.Format("2006-01-02 15:04"))
		assert.Equal(t, "2025-12-17 20:00", slot.End.Format("2006-01-02 15:04"))
	})

	t.Run("date only becomes all-day", func(t *testing.T) {
		prefs := agreedPrefs()
		prefs.AgreedTime = ""
		slot, allDay, err := env.coord.agreedSlot(prefs)
		require.NoError(t, err)
		assert.True(t, allDay)
		assert.Equal(t, "2025-12-17 00:00", slot.Start.Format("2006-01-02 15:04"))
		assert.Equal(t, "2025-12-18 00:00", slot.End.Format("2006-01-02 15:04"))
	})

	t.Run("two nights span three days", func(t *testing.T) {
		prefs := agreedPrefs()
		prefs.AgreedTime = ""
		prefs.DurationNights = 2
		slot, allDay, err := env.coord.agreedSlot(prefs)
		require.NoError(t, err)
		assert.True(t, allDay)
		assert.Equal(t, "2025-12-17 00:00", slot.Start.Format("2006-01-02 15:04"))
		assert.Equal(t, "2025-12-20 00:00", slot.End.Format("2006-01-02 15:04"))
	})

	t.Run("missing date errors", func(t *testing.T) {
		_, _, err := env.coord.agreedSlot(&models.SessionPrefs{})
		assert.ErrorIs(t, err, ErrNoAgreedSlot)
	})
}
