// Package negotiation runs the bounded agent-to-agent scheduling loop.
//
// The Engine is the queue's SessionExecutor for group sessions: it builds one
// PersonalAgent per participant, lets the initiator's agent open with a
// proposal, and drives evaluation rounds until everyone accepts, someone
// escalates, counters start cycling, or the round limit runs out. Every
// transcript message is persisted append-only and published to the event bus
// before the next step, with a short pause in between so watchers can follow
// the exchange live.
//
// The engine never touches calendars. Unanimous agreement parks the whole
// thread in pending_approval and hands off to the approval coordinator;
// every failure mode lands in needs_reschedule with a Slack escalation.
package negotiation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/queue"
	"github.com/moim-labs/moim/pkg/schedule"
	"github.com/moim-labs/moim/pkg/slack"
)

// Rows the engine authors itself (round openers, unanimous accept, terminal
// escalations) are attributed to a reserved system sender.
const (
	SystemSenderID   = "system"
	systemSenderName = "시스템"
)

// SessionStore is the slice of the session service the engine needs.
type SessionStore interface {
	ListSessionsByThread(ctx context.Context, threadID string) ([]*ent.NegotiationSession, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, status negotiationsession.Status) error
	UpdateSessionPrefs(ctx context.Context, sessionID string, prefs *models.SessionPrefs) error
	SetErrorMessage(ctx context.Context, sessionID, message string) error
}

// MessageStore appends transcript rows.
type MessageStore interface {
	CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*ent.NegotiationMessage, error)
}

// UserDirectory resolves display names for prose and transcripts.
type UserDirectory interface {
	DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// ChatLogStore delivers approval cards into each participant's chat feed.
type ChatLogStore interface {
	CreateChatLog(ctx context.Context, req models.CreateChatLogRequest) (*ent.ChatLog, error)
}

// Publisher is the slice of the event publisher the engine needs.
type Publisher interface {
	PublishA2AMessage(ctx context.Context, sessionID string, participantIDs []string, payload events.A2AMessagePayload) error
	PublishA2AMessageToUser(ctx context.Context, userID string, payload events.A2AMessagePayload) error
	PublishSessionStatus(ctx context.Context, sessionID string, payload events.SessionStatusPayload) error
	PublishSessionProgress(ctx context.Context, payload events.SessionProgressPayload) error
	PublishNotification(ctx context.Context, userID string, payload events.NotificationPayload) error
}

// Engine negotiates one session at a time on behalf of a queue worker.
type Engine struct {
	agents   *agent.Factory
	sessions SessionStore
	messages MessageStore
	users    UserDirectory
	chatLogs ChatLogStore
	bus      Publisher
	slack    *slack.Service
	cfg      *config.NegotiationConfig
	logger   *slog.Logger

	// Overridable in tests: fixed clock, no pacing delay.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

var _ queue.SessionExecutor = (*Engine)(nil)

// NewEngine wires the negotiation engine. slackSvc may be nil (escalations
// are then log-only).
func NewEngine(
	agents *agent.Factory,
	sessions SessionStore,
	messages MessageStore,
	users UserDirectory,
	chatLogs ChatLogStore,
	bus Publisher,
	slackSvc *slack.Service,
	cfg *config.NegotiationConfig,
) *Engine {
	return &Engine{
		agents:   agents,
		sessions: sessions,
		messages: messages,
		users:    users,
		chatLogs: chatLogs,
		bus:      bus,
		slack:    slackSvc,
		cfg:      cfg,
		logger:   slog.Default().With("component", "negotiation"),
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Execute runs the full negotiation for one claimed session. Transcript
// rows, pref updates and thread-mate statuses are written progressively;
// the returned result only tells the worker which status to stamp on the
// claimed session itself.
func (e *Engine) Execute(ctx context.Context, session *ent.NegotiationSession) *queue.ExecutionResult {
	r, err := e.newRun(ctx, session)
	if err != nil {
		e.logger.Error("Cannot start negotiation", "session_id", session.ID, "error", err)
		if setErr := e.sessions.SetErrorMessage(ctx, session.ID, err.Error()); setErr != nil {
			e.logger.Warn("Failed to record error message", "session_id", session.ID, "error", setErr)
		}
		return &queue.ExecutionResult{Status: negotiationsession.StatusFailed, Error: err}
	}
	return r.loop(ctx)
}

// participantAgent pairs one participant with their negotiating agent.
type participantAgent struct {
	user  agent.Participant
	agent *agent.PersonalAgent
}

// run is the per-session state of one Execute call.
type run struct {
	e        *Engine
	session  *ent.NegotiationSession
	prefs    *models.SessionPrefs
	threadID string

	initiator *participantAgent
	others    []*participantAgent
	all       []*participantAgent // initiator first
}

func (e *Engine) newRun(ctx context.Context, session *ent.NegotiationSession) (*run, error) {
	prefs, err := models.ParseSessionPrefs(session.PlacePref)
	if err != nil {
		e.logger.Warn("Unreadable session prefs, continuing with empty prefs",
			"session_id", session.ID, "error", err)
	}
	if prefs == nil {
		prefs = &models.SessionPrefs{}
	}

	// Initiator always negotiates first, whatever order the request stored.
	ids := make([]string, 0, len(session.ParticipantIds)+1)
	ids = append(ids, session.InitiatorID)
	for _, id := range session.ParticipantIds {
		if id != session.InitiatorID {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		return nil, fmt.Errorf("session %s has no counterpart to negotiate with", session.ID)
	}

	names, err := e.users.DisplayNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participant names: %w", err)
	}

	window := e.window(session, prefs)
	r := &run{e: e, session: session, prefs: prefs, threadID: prefs.ThreadID}
	for i, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		pa := &participantAgent{user: agent.Participant{UserID: id, DisplayName: name}}
		pa.agent = e.agents.Agent(session.ID, pa.user, window, prefs.DurationMinutes)
		if i == 0 {
			r.initiator = pa
		} else {
			r.others = append(r.others, pa)
		}
		r.all = append(r.all, pa)
	}
	return r, nil
}

// window picks the availability window: an explicit time_window on the
// session wins, otherwise the default horizon stretched over the requested
// date.
func (e *Engine) window(session *ent.NegotiationSession, prefs *models.SessionPrefs) schedule.TimeSlot {
	if ts, ok := parseWindow(session.TimeWindow, e.cfg.Location()); ok {
		return ts
	}
	var targets []time.Time
	if prefs.RequestedDate != "" {
		if day, err := schedule.ParseDate(prefs.RequestedDate, e.cfg.Location()); err == nil {
			targets = append(targets, day)
		}
	}
	return e.agents.Window(e.now(), targets...)
}

func parseWindow(raw map[string]any, loc *time.Location) (schedule.TimeSlot, bool) {
	start, ok1 := parseWindowEdge(raw, "start", loc)
	end, ok2 := parseWindowEdge(raw, "end", loc)
	if !ok1 || !ok2 || !end.After(start) {
		return schedule.TimeSlot{}, false
	}
	return schedule.TimeSlot{Start: start, End: end}, true
}

func parseWindowEdge(raw map[string]any, key string, loc *time.Location) (time.Time, bool) {
	s, _ := raw[key].(string)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}

// counterOffer is one participant's counter in the current round.
type counterOffer struct {
	from     *participantAgent
	proposal schedule.Proposal
}

// loop drives the bounded negotiation rounds.
func (r *run) loop(ctx context.Context) *queue.ExecutionResult {
	e := r.e
	logger := e.logger.With("session_id", r.session.ID)

	r.publishStatus(ctx, r.session.ID, negotiationsession.StatusInProgress, "")

	d := r.initiator.agent.MakeInitialProposal(ctx, r.proposalRequest())
	if err := r.append(ctx, r.initiator, d, 1, ""); err != nil {
		return r.abortAppend(err)
	}
	if d.NeedsHuman() {
		return r.escalate(ctx, 1, slack.EscalationNeedHuman, d.Message, nil)
	}
	if d.Proposal == nil {
		logger.Error("Opening decision carried no proposal, escalating", "type", d.Type)
		return r.escalate(ctx, 1, slack.EscalationNeedHuman, reasonNoProposal, nil)
	}
	current := *d.Proposal

	deadlocked := 0
	prev := map[string]schedule.Proposal{}

	for round := 1; round <= e.cfg.MaxRounds; round++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("Negotiation interrupted", "round", round, "error", err)
			return &queue.ExecutionResult{
				Status: negotiationsession.StatusFailed,
				Error:  fmt.Errorf("negotiation interrupted in round %d: %w", round, err),
			}
		}
		r.publishProgress(ctx, round)

		allAccepted := true
		var counters []counterOffer
		for _, pa := range r.others {
			if err := r.appendInfo(ctx, pa, round); err != nil {
				return r.abortAppend(err)
			}
			d := pa.agent.EvaluateProposal(ctx, current)
			if err := r.append(ctx, pa, d, round, r.initiator.user.UserID); err != nil {
				return r.abortAppend(err)
			}
			switch {
			case d.NeedsHuman():
				return r.escalate(ctx, round, slack.EscalationNeedHuman, d.Message, r.snapshot(ctx, current))
			case d.Type == negotiationmessage.TypeCounter && d.Proposal != nil:
				allAccepted = false
				counters = append(counters, counterOffer{from: pa, proposal: *d.Proposal})
			case d.Type != negotiationmessage.TypeAccept:
				allAccepted = false
			}
		}

		if allAccepted {
			return r.finalize(ctx, round, current)
		}

		// A participant re-offering the identical (date, time) it countered
		// with last round means positions stopped moving. Two such rounds in
		// a row and the agents will never converge.
		cur := make(map[string]schedule.Proposal, len(counters))
		cycling := false
		for _, c := range counters {
			cur[c.from.user.UserID] = c.proposal
			if old, ok := prev[c.from.user.UserID]; ok && old.SameSlot(c.proposal) {
				cycling = true
			}
		}
		prev = cur
		if cycling {
			deadlocked++
		} else {
			deadlocked = 0
		}
		if deadlocked >= e.cfg.DeadlockRounds {
			logger.Warn("Counter-proposals are cycling, escalating", "round", round)
			return r.escalate(ctx, round, slack.EscalationDeadlock, reasonDeadlock, r.snapshot(ctx, current))
		}

		if len(counters) > 0 {
			last := counters[len(counters)-1]
			current = last.proposal
			d := r.initiator.agent.EvaluateProposal(ctx, current)
			if err := r.append(ctx, r.initiator, d, round, last.from.user.UserID); err != nil {
				return r.abortAppend(err)
			}
			if d.NeedsHuman() {
				return r.escalate(ctx, round, slack.EscalationNeedHuman, d.Message, r.snapshot(ctx, current))
			}
			if d.Type == negotiationmessage.TypeCounter && d.Proposal != nil {
				current = *d.Proposal
			}
		}
	}

	logger.Warn("Round limit exhausted without agreement", "max_rounds", e.cfg.MaxRounds)
	return r.escalate(ctx, e.cfg.MaxRounds, slack.EscalationDeadlock, reasonRoundLimit, r.snapshot(ctx, current))
}

func (r *run) proposalRequest() agent.ProposalRequest {
	return agent.ProposalRequest{
		Date:            r.prefs.RequestedDate,
		Time:            r.prefs.RequestedTime,
		Activity:        r.prefs.Activity,
		Location:        r.prefs.Location,
		DurationMinutes: r.prefs.DurationMinutes,
		DurationNights:  r.prefs.DurationNights,
		Utterance:       r.session.Intent,
	}
}

// append persists one agent decision as a transcript row, streams it, and
// paces the next step. An append failure aborts the run: the transcript and
// the stream must never diverge.
func (r *run) append(ctx context.Context, from *participantAgent, d agent.Decision, round int, receiverID string) error {
	return r.appendRow(ctx, from.user.UserID, from.user.DisplayName, receiverID, d.Type, round, d.Message, d.Payload())
}

func (r *run) appendInfo(ctx context.Context, pa *participantAgent, round int) error {
	return r.appendRow(ctx, pa.user.UserID, pa.user.DisplayName, "", negotiationmessage.TypeInfo, round, proseChecking, nil)
}

func (r *run) appendSystem(ctx context.Context, typ negotiationmessage.Type, round int, prose string, payload *models.MessagePayload) error {
	return r.appendRow(ctx, SystemSenderID, systemSenderName, "", typ, round, prose, payload)
}

func (r *run) appendRow(ctx context.Context, senderID, senderName, receiverID string, typ negotiationmessage.Type, round int, prose string, payload *models.MessagePayload) error {
	msg, err := r.e.messages.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID:  r.session.ID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		SenderName: senderName,
		Type:       typ,
		Round:      round,
		Prose:      prose,
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to append %s message: %w", typ, err)
	}
	r.publishMessage(ctx, r.wirePayload(msg, payload))
	r.pause(ctx)
	return nil
}

// wirePayload builds the bus event mirroring one persisted row.
func (r *run) wirePayload(msg *ent.NegotiationMessage, payload *models.MessagePayload) events.A2AMessagePayload {
	p := events.A2AMessagePayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeA2AMessage,
			SessionID: r.session.ID,
			Timestamp: msg.CreatedAt.Format(time.RFC3339Nano),
		},
		MessageID:   msg.ID,
		ThreadID:    r.threadID,
		SenderID:    msg.SenderID,
		SenderName:  msg.SenderName,
		MessageType: msg.Type,
		Round:       msg.Round,
		Message:     msg.Prose,
	}
	if msg.ReceiverID != nil {
		p.ReceiverID = *msg.ReceiverID
	}
	if payload != nil {
		p.Proposal = payload.Proposal
		p.ConflictInfo = payload.ConflictInfo
		p.MajorityRecommendation = payload.MajorityRecommendation
		p.ParticipantAvailabilities = payload.ParticipantAvailabilities
	}
	return p
}

// publishMessage streams one transcript row: the durable session-channel
// copy is stripped of owner-only detail, then each participant gets a
// transient copy tailored to what they may see.
func (r *run) publishMessage(ctx context.Context, payload events.A2AMessagePayload) {
	if err := r.e.bus.PublishA2AMessage(ctx, r.session.ID, nil, stripPrivate(payload)); err != nil {
		r.e.logger.Warn("Failed to publish transcript event",
			"session_id", r.session.ID, "message_id", payload.MessageID, "error", err)
	}
	for _, pa := range r.all {
		if err := r.e.bus.PublishA2AMessageToUser(ctx, pa.user.UserID, viewFor(payload, pa.user.UserID)); err != nil {
			r.e.logger.Warn("Failed to copy transcript event to user channel",
				"session_id", r.session.ID, "user_id", pa.user.UserID, "error", err)
		}
	}
}

func (r *run) publishStatus(ctx context.Context, sessionID string, status negotiationsession.Status, errMsg string) {
	payload := events.SessionStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionStatus,
			SessionID: sessionID,
			Timestamp: r.e.now().Format(time.RFC3339Nano),
		},
		Status:       status,
		ThreadID:     r.threadID,
		ErrorMessage: errMsg,
	}
	if err := r.e.bus.PublishSessionStatus(ctx, sessionID, payload); err != nil {
		r.e.logger.Warn("Failed to publish session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

func (r *run) publishProgress(ctx context.Context, round int) {
	payload := events.SessionProgressPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionProgress,
			SessionID: r.session.ID,
			Timestamp: r.e.now().Format(time.RFC3339Nano),
		},
		ThreadID:     r.threadID,
		CurrentRound: round,
		MaxRounds:    r.e.cfg.MaxRounds,
		StatusText:   fmt.Sprintf("%d라운드 협의 중...", round),
	}
	if err := r.e.bus.PublishSessionProgress(ctx, payload); err != nil {
		r.e.logger.Warn("Failed to publish round progress",
			"session_id", r.session.ID, "round", round, "error", err)
	}
}

func (r *run) abortAppend(err error) *queue.ExecutionResult {
	r.e.logger.Error("Transcript append failed, aborting round",
		"session_id", r.session.ID, "error", err)
	return &queue.ExecutionResult{Status: negotiationsession.StatusInProgress, Error: err}
}

func (r *run) pause(ctx context.Context) {
	r.e.sleep(ctx, r.e.cfg.StepDelay)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
