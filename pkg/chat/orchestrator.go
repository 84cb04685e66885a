// Package chat routes one user utterance to exactly one action: resuming a
// pending selection mode, asking for a missing slot, dispatching a
// negotiation, writing a personal calendar entry, rearming a rejected
// thread, or falling back to free-form conversation. The decision table is
// ordered — the first matching row wins — and every reply lands as an
// ai_response chat log whose metadata carries whatever state the next turn
// needs, so the orchestrator itself keeps no in-memory conversation state.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/intent"
	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
	"github.com/moim-labs/moim/pkg/services"
)

// recentLogWindow is how far back one turn looks for pending modes and
// recoordination markers.
const recentLogWindow = 50

// SessionStore is the slice of the session service the orchestrator needs.
type SessionStore interface {
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.NegotiationSession, error)
	ResetForRecoordination(ctx context.Context, sessionIDs []string, date, timeOfDay string) ([]*ent.NegotiationSession, error)
}

// ChatLogStore persists the conversation and serves the recent history the
// decision table reads its state from.
type ChatLogStore interface {
	CreateChatLog(ctx context.Context, req models.CreateChatLogRequest) (*ent.ChatLog, error)
	ListUserLogs(ctx context.Context, userID string, limit, offset int) (*models.ChatLogListResponse, error)
}

// ChatSessionStore resolves the per-user conversation container.
type ChatSessionStore interface {
	GetOrCreateChatSession(ctx context.Context, userID, chatSessionID string) (*ent.ChatSession, bool, error)
}

// UserDirectory resolves participants by id and by display name.
type UserDirectory interface {
	GetUser(ctx context.Context, userID string) (*ent.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []string) ([]*ent.User, error)
	FindUsersByNames(ctx context.Context, names []string) ([]*ent.User, error)
}

// IntentReader extracts structured intent from an utterance.
type IntentReader interface {
	Extract(ctx context.Context, in intent.Input) *models.Intent
}

// Dispatcher wakes the worker pool for a freshly created or reset session
// instead of waiting out the poll interval. May be nil; the poller still
// finds pending rows on its own.
type Dispatcher interface {
	Enqueue(sessionID string) bool
}

// Publisher is the slice of the event publisher the orchestrator needs.
type Publisher interface {
	PublishNewMessage(ctx context.Context, userID string, payload events.NewMessagePayload) error
}

// TokenSource yields the user's calendar access token for personal writes.
type TokenSource interface {
	Token(ctx context.Context, userID string) (string, error)
}

// CalendarWriter writes provider events for personal bookings.
type CalendarWriter interface {
	CreateEvent(ctx context.Context, token string, input calendar.EventInput) (*calendar.CreatedEvent, error)
}

// EventMirror keeps the local record of personal writes.
type EventMirror interface {
	RecordCalendarEvent(ctx context.Context, req models.CreateCalendarEventRequest) (*ent.CalendarEvent, error)
}

// Orchestrator is the chat half of the system: everything a user types goes
// through HandleMessage, and everything the agents do comes back to the
// user through the logs and events this package writes.
type Orchestrator struct {
	agents   *agent.Factory
	sessions SessionStore
	chatLogs ChatLogStore
	chats    ChatSessionStore
	users    UserDirectory
	intents  IntentReader
	bus      Publisher
	tokens   TokenSource
	cal      CalendarWriter
	mirror   EventMirror
	pool     Dispatcher
	llm      llm.Client
	cfg      *config.NegotiationConfig
	logger   *slog.Logger

	now func() time.Time
}

// NewOrchestrator wires the chat orchestrator. pool and llmClient may be
// nil: without a pool the queue's poller picks sessions up on its own,
// and without a model every prose path uses its deterministic fallback.
func NewOrchestrator(
	agents *agent.Factory,
	sessions SessionStore,
	chatLogs ChatLogStore,
	chats ChatSessionStore,
	users UserDirectory,
	intents IntentReader,
	bus Publisher,
	tokens TokenSource,
	cal CalendarWriter,
	mirror EventMirror,
	pool Dispatcher,
	llmClient llm.Client,
	cfg *config.NegotiationConfig,
) *Orchestrator {
	return &Orchestrator{
		agents:   agents,
		sessions: sessions,
		chatLogs: chatLogs,
		chats:    chats,
		users:    users,
		intents:  intents,
		bus:      bus,
		tokens:   tokens,
		cal:      cal,
		mirror:   mirror,
		pool:     pool,
		llm:      llmClient,
		cfg:      cfg,
		logger:   slog.Default().With("component", "chat"),
		now:      time.Now,
	}
}

// HandleInput is one user turn. UserID comes from the authenticated
// header; FriendIDs are the UI-selected participants, which outrank any
// names the utterance mentions.
type HandleInput struct {
	UserID        string
	ChatSessionID string
	Text          string
	FriendIDs     []string
}

// turn is the resolved per-message state the decision table works on.
type turn struct {
	userID    string
	chatID    string
	text      string
	friendIDs []string
	now       time.Time
	recent    []*ent.ChatLog // newest first
	lastAI    *ent.ChatLog   // newest ai_response, nil when none
}

// reply is one decided action's outcome before it is persisted.
type reply struct {
	text       string
	metadata   map[string]any
	sessionIDs []string
	threadID   string
}

// HandleMessage runs one utterance through the decision table and returns
// the single reply. The user's row is persisted before the decision runs;
// the reply row carries the metadata the next turn resumes from.
func (o *Orchestrator) HandleMessage(ctx context.Context, in HandleInput) (*models.ChatReply, error) {
	if in.UserID == "" {
		return nil, services.NewValidationError("user_id", "required")
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, services.NewValidationError("message", "required")
	}

	chatSession, _, err := o.chats.GetOrCreateChatSession(ctx, in.UserID, in.ChatSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to open chat session: %w", err)
	}

	// History is read before this turn's rows are written, so the modes it
	// finds are the state the PREVIOUS reply left behind.
	recent, err := o.chatLogs.ListUserLogs(ctx, in.UserID, recentLogWindow, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	t := &turn{
		userID:    in.UserID,
		chatID:    chatSession.ID,
		text:      text,
		friendIDs: in.FriendIDs,
		now:       o.now().In(o.cfg.Location()),
		recent:    recent.Logs,
		lastAI:    newestOfType(recent.Logs, chatlog.MessageTypeAiResponse),
	}

	if _, err := o.chatLogs.CreateChatLog(ctx, models.CreateChatLogRequest{
		UserID:        in.UserID,
		ChatSessionID: chatSession.ID,
		RequestText:   text,
		MessageType:   string(chatlog.MessageTypeUserMessage),
	}); err != nil {
		return nil, fmt.Errorf("failed to record user message: %w", err)
	}

	r, err := o.decide(ctx, t)
	if err != nil {
		return nil, err
	}

	aiReq := models.CreateChatLogRequest{
		UserID:        in.UserID,
		ChatSessionID: chatSession.ID,
		ResponseText:  r.text,
		MessageType:   string(chatlog.MessageTypeAiResponse),
		Metadata:      r.metadata,
	}
	if len(r.sessionIDs) > 0 {
		aiReq.SessionID = r.sessionIDs[0]
	}
	aiLog, err := o.chatLogs.CreateChatLog(ctx, aiReq)
	if err != nil {
		return nil, fmt.Errorf("failed to record reply: %w", err)
	}

	o.publishNewMessage(ctx, t, aiLog, r.text)

	return &models.ChatReply{
		Response:      r.text,
		MessageType:   string(chatlog.MessageTypeAiResponse),
		ChatSessionID: chatSession.ID,
		SessionIDs:    r.sessionIDs,
		ThreadID:      r.threadID,
		Metadata:      r.metadata,
	}, nil
}

// decide walks the table top to bottom. Mode rows consume the previous
// reply's stashed state; a row that declines returns nil and the walk
// continues.
func (o *Orchestrator) decide(ctx context.Context, t *turn) (*reply, error) {
	if ts := o.pendingTimeSelection(t); ts != nil {
		return o.resumeTimeSelection(ctx, t, ts)
	}
	if rec := o.pendingRecommendation(t); rec != nil {
		if r, err := o.resumeRecommendation(ctx, t, rec); err != nil || r != nil {
			return r, err
		}
	}

	it := o.intents.Extract(ctx, intent.Input{
		Text:            t.text,
		Now:             t.now,
		FriendsSelected: len(t.friendIDs) > 0,
	})
	if sf := o.pendingSlotFill(t); sf != nil {
		mergeStash(it, sf.PendingIntent, len(t.friendIDs) > 0)
	}

	// A pending personal offer eats time answers and short confirmations,
	// but a brand-new request naming friends outranks it below.
	if pp := o.pendingPersonal(t); pp != nil && len(t.friendIDs) == 0 && len(it.Friends()) == 0 {
		if r, err := o.resumePersonal(ctx, t, pp, it); err != nil || r != nil {
			return r, err
		}
	}

	// A rejected thread already knows its participants, so a friendless
	// follow-up rearms it before slot filling can ask who to invite.
	// Explicit friends force a fresh thread through the rows below instead.
	if len(t.friendIDs) == 0 && len(it.Friends()) == 0 {
		if rm := o.pendingRecoordination(t); rm != nil {
			if r, err := o.recoordinate(ctx, t, it, rm); err != nil || r != nil {
				return r, err
			}
		}
	}

	if it.HasScheduleRequest {
		if r, err := o.scheduleFlow(ctx, t, it); err != nil || r != nil {
			return r, err
		}
	}

	return o.freeform(ctx, t), nil
}

// scheduleFlow covers every hasScheduleRequest row: companions known →
// dispatch / time-selection / recommendation by date shape; no companions →
// slot-filling or the personal-booking paths.
func (o *Orchestrator) scheduleFlow(ctx context.Context, t *turn, it *models.Intent) (*reply, error) {
	friends, unknown, err := o.resolveFriends(ctx, t, it)
	if err != nil {
		return nil, err
	}
	if len(unknown) > 0 {
		return &reply{
			text: fmt.Sprintf("'%s'님을 찾지 못했어요. 친구 이름을 다시 확인해 주세요!", strings.Join(unknown, "', '")),
		}, nil
	}

	if len(friends) > 0 {
		day, single := singleDay(it)
		switch {
		case single && it.HasTime():
			return o.dispatchNegotiation(ctx, t, it, friends, "")
		case single:
			return o.enterTimeSelection(t, it, day, friends)
		default:
			return o.recommend(ctx, t, it, friends)
		}
	}

	if len(it.MissingFields) > 0 {
		return o.askSlots(t, it), nil
	}
	return o.personalFlow(ctx, t, it)
}

// resolveFriends turns the turn's participants into user rows. UI-selected
// ids win over names from the utterance; names that match nobody are
// reported back instead of being silently dropped.
func (o *Orchestrator) resolveFriends(ctx context.Context, t *turn, it *models.Intent) ([]*ent.User, []string, error) {
	if len(t.friendIDs) > 0 {
		found, err := o.users.GetUsersByIDs(ctx, t.friendIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load selected friends: %w", err)
		}
		byID := make(map[string]*ent.User, len(found))
		for _, u := range found {
			byID[u.ID] = u
		}
		var friends []*ent.User
		var unknown []string
		for _, id := range t.friendIDs {
			if id == t.userID {
				continue
			}
			if u, ok := byID[id]; ok {
				friends = append(friends, u)
			} else {
				unknown = append(unknown, id)
			}
		}
		return friends, unknown, nil
	}

	names := it.Friends()
	if len(names) == 0 {
		return nil, nil, nil
	}
	found, err := o.users.FindUsersByNames(ctx, names)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up friends by name: %w", err)
	}
	byName := make(map[string]*ent.User, len(found))
	for _, u := range found {
		byName[u.Name] = u
	}
	var friends []*ent.User
	var unknown []string
	for _, name := range names {
		u, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if u.ID == t.userID {
			continue
		}
		friends = append(friends, u)
	}
	return friends, unknown, nil
}

// askSlots asks for whatever is still missing and stashes the partial
// intent so the next turn can merge the answer in.
func (o *Orchestrator) askSlots(t *turn, it *models.Intent) *reply {
	var asks []string
	if it.Missing("friend_name") {
		asks = append(asks, "누구와 만날까요?")
	}
	if it.Missing("date") {
		asks = append(asks, "날짜는 언제가 좋으세요?")
	}
	if it.Missing("time") {
		asks = append(asks, "몇 시가 좋으세요?")
	}
	text := strings.Join(asks, " ")
	if text == "" {
		text = "누구와 언제 만날지 알려주세요!"
	}

	stash := models.SlotFillingMetadata{AwaitingSlotFill: true, PendingIntent: it}
	return &reply{
		text:     "좋아요, 일정을 잡아볼게요! " + text,
		metadata: stash.ToMap(),
	}
}

// dispatchNegotiation creates the pending a2a session the worker pool will
// run and acknowledges the kick-off. An empty threadID starts a new thread.
func (o *Orchestrator) dispatchNegotiation(ctx context.Context, t *turn, it *models.Intent, friends []*ent.User, threadID string) (*reply, error) {
	if threadID == "" {
		threadID = uuid.NewString()
	}

	participantIDs := make([]string, 0, len(friends)+1)
	participantIDs = append(participantIDs, t.userID)
	for _, f := range friends {
		participantIDs = append(participantIDs, f.ID)
	}

	day, _ := singleDay(it)
	prefs := &models.SessionPrefs{
		ThreadID:      threadID,
		Participants:  participantIDs,
		Summary:       it.Title,
		Activity:      it.Activity,
		Location:      it.Location,
		RequestedDate: day,
		RequestedTime: clockOf(it),
	}
	if minutes := spanMinutes(it); minutes > 0 {
		prefs.DurationMinutes = minutes
	}

	req := models.CreateSessionRequest{
		SessionID:      uuid.NewString(),
		InitiatorID:    t.userID,
		ParticipantIDs: participantIDs,
		Intent:         t.text,
		Prefs:          prefs,
	}
	if len(friends) == 1 {
		req.TargetID = friends[0].ID
	}

	sess, err := o.sessions.CreateSession(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create negotiation session: %w", err)
	}
	if o.pool != nil {
		o.pool.Enqueue(sess.ID)
	}

	o.logger.Info("Negotiation dispatched",
		"session_id", sess.ID, "thread_id", threadID,
		"initiator", t.userID, "participants", len(participantIDs))

	slot := schedule.Proposal{Date: prefs.RequestedDate, Time: prefs.RequestedTime}
	text := fmt.Sprintf("%s님과 %s 모임을 조율할게요! 에이전트들이 일정을 맞춰보는 동안 잠시만 기다려 주세요.",
		joinNames(friends), slot.DisplayKorean(o.cfg.Location()))
	return &reply{
		text:       text,
		sessionIDs: []string{sess.ID},
		threadID:   threadID,
	}, nil
}

// freeform is the last row: hand the utterance to the model, or to the
// deterministic nudge when no model is reachable.
func (o *Orchestrator) freeform(ctx context.Context, t *turn) *reply {
	const fallback = "제가 잘 도와드릴 수 있는 건 모임 일정 조율이에요. \"내일 저녁에 철수랑 밥 먹을래\"처럼 말씀해 주세요!"

	if o.llm == nil {
		return &reply{text: fallback}
	}
	messages := []llm.Message{
		{Role: "system", Content: "당신은 친구들과의 모임 일정을 잡아주는 한국어 비서입니다. 한두 문장으로 간결하고 친근하게 답하세요. 일정 이야기가 아니면 가볍게 대화를 이어가되, 날짜와 친구 이름을 알려주면 일정을 조율해 줄 수 있다고 안내하세요."},
		{Role: "user", Content: t.text},
	}
	raw, err := o.llm.Complete(ctx, messages, llm.Options{Temperature: 0.7, MaxTokens: 300})
	if err != nil {
		o.logger.Warn("Free-form completion failed, using fallback", "error", err)
		return &reply{text: fallback}
	}
	if clean, ok := llm.Sanitize(raw); ok {
		return &reply{text: clean}
	}
	return &reply{text: fallback}
}

func (o *Orchestrator) publishNewMessage(ctx context.Context, t *turn, row *ent.ChatLog, preview string) {
	payload := events.NewMessagePayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeNewMessage,
			Timestamp: o.now().Format(time.RFC3339Nano),
		},
		ChatSessionID: t.chatID,
		ChatLogID:     row.ID,
		MessageType:   chatlog.MessageTypeAiResponse,
		Preview:       truncatePreview(preview, 80),
	}
	if err := o.bus.PublishNewMessage(ctx, t.userID, payload); err != nil {
		o.logger.Warn("Failed to publish new_message event",
			"user_id", t.userID, "error", err)
	}
}

func newestOfType(logs []*ent.ChatLog, typ chatlog.MessageType) *ent.ChatLog {
	for _, row := range logs {
		if row.MessageType == typ {
			return row
		}
	}
	return nil
}

// mergeStash fills the current intent's blanks from a stashed partial one.
// Fresh values always win; missing fields are recomputed afterwards.
func mergeStash(it *models.Intent, stash *models.Intent, friendsSelected bool) {
	if stash == nil {
		return
	}
	if len(it.Friends()) == 0 {
		it.FriendNames = stash.FriendNames
		it.FriendName = stash.FriendName
	}
	if !it.HasDate() {
		it.Date = stash.Date
		it.StartDate = stash.StartDate
		it.EndDate = stash.EndDate
	}
	if !it.HasTime() {
		it.Time = stash.Time
		it.StartTime = stash.StartTime
		it.EndTime = stash.EndTime
	}
	if it.Activity == "" {
		it.Activity = stash.Activity
	}
	if it.Title == "" {
		it.Title = stash.Title
	}
	if it.Location == "" {
		it.Location = stash.Location
	}
	it.HasScheduleRequest = it.HasScheduleRequest || stash.HasScheduleRequest
	it.RecomputeMissing(friendsSelected)
}

// singleDay resolves the intent's date fields to one civil day. A range
// whose ends coincide counts as a single day.
func singleDay(it *models.Intent) (string, bool) {
	if it.HasDateRange() {
		return "", false
	}
	if it.Date != "" {
		return it.Date, true
	}
	if it.StartDate != "" {
		return it.StartDate, true
	}
	return "", false
}

// clockOf resolves the intent's time fields to the start clock.
func clockOf(it *models.Intent) string {
	if it.Time != "" {
		return it.Time
	}
	return it.StartTime
}

// spanMinutes returns the explicit span's length, 0 when there is none.
func spanMinutes(it *models.Intent) int {
	if !it.HasTimeSpan() {
		return 0
	}
	sh, sm, err := schedule.ParseClock(it.StartTime)
	if err != nil {
		return 0
	}
	eh, em, err := schedule.ParseClock(it.EndTime)
	if err != nil {
		return 0
	}
	minutes := (eh*60 + em) - (sh*60 + sm)
	if minutes <= 0 {
		minutes += 24 * 60 // overnight span
	}
	return minutes
}

func joinNames(users []*ent.User) string {
	return strings.Join(userNamesOf(users), ", ")
}

func truncatePreview(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
