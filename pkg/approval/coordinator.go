// Package approval turns unanimous agent agreement into confirmed calendar
// entries. The negotiation engine parks a thread in pending_approval and
// deals each participant an approval card; this package collects their
// responses and, once everyone has consented, writes one owner-local event
// per calendar, mirrors each write, completes the sessions and announces
// the result. A single rejection reopens the thread for recoordination
// instead.
//
// Concurrent responses are the correctness point. The decision is never
// based on a card's cached approved_by_list but on a fresh scan of every
// participant's newest approval-response log, taken under a per-thread
// lock. Calendar HTTP always runs outside the lock; duplicate finalization
// is absorbed by the (owner, session) uniqueness of the mirror table.
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/config"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
	"github.com/moim-labs/moim/pkg/services"
	"github.com/moim-labs/moim/pkg/slack"
)

// Transcript rows this package authors are attributed to the same reserved
// sender the negotiation engine uses.
const (
	systemSenderID   = "system"
	systemSenderName = "시스템"
)

var (
	// ErrThreadNotFound — the thread has no sessions at all.
	ErrThreadNotFound = errors.New("thread not found")
	// ErrNotParticipant — the responding user is not part of the thread.
	ErrNotParticipant = errors.New("user is not a participant of this thread")
	// ErrNoPendingApproval — nothing in the thread awaits a decision.
	ErrNoPendingApproval = errors.New("no approval pending for this thread")
	// ErrAlreadyFinalized — every participant already approved; a rejection
	// arriving after that cannot unwind calendar writes in flight.
	ErrAlreadyFinalized = errors.New("thread already fully approved")
	// ErrNoAgreedSlot — the parked sessions carry no agreed date, so there
	// is nothing to write. Indicates the engine parked a broken thread.
	ErrNoAgreedSlot = errors.New("session has no agreed slot")
)

// SessionStore is the slice of the session service the coordinator needs.
type SessionStore interface {
	ListSessionsByThread(ctx context.Context, threadID string) ([]*ent.NegotiationSession, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, status negotiationsession.Status) error
	SetFinalEvent(ctx context.Context, sessionID, eventID string) error
	ReopenAfterRejection(ctx context.Context, sessionIDs []string) ([]string, error)
}

// MessageStore appends transcript rows.
type MessageStore interface {
	CreateMessage(ctx context.Context, req models.CreateMessageRequest) (*ent.NegotiationMessage, error)
}

// ChatLogStore reads approval cards and responses and writes the fan-out
// rows every participant sees in their feed.
type ChatLogStore interface {
	CreateChatLog(ctx context.Context, req models.CreateChatLogRequest) (*ent.ChatLog, error)
	LatestApprovalCard(ctx context.Context, sessionID, userID string) (*ent.ChatLog, error)
	ApprovalCardsForSessions(ctx context.Context, sessionIDs []string) ([]*ent.ChatLog, error)
	LatestApprovalResponses(ctx context.Context, sessionID string) (map[string]*ent.ChatLog, error)
	UpdateLogMetadata(ctx context.Context, chatLogID string, metadata map[string]any) error
}

// UserDirectory resolves display names for prose.
type UserDirectory interface {
	DisplayNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// Publisher is the slice of the event publisher the coordinator needs.
type Publisher interface {
	PublishA2AMessage(ctx context.Context, sessionID string, participantIDs []string, payload events.A2AMessagePayload) error
	PublishA2AMessageToUser(ctx context.Context, userID string, payload events.A2AMessagePayload) error
	PublishSessionStatus(ctx context.Context, sessionID string, payload events.SessionStatusPayload) error
	PublishNotification(ctx context.Context, userID string, payload events.NotificationPayload) error
}

// TokenSource yields a per-user calendar access token.
type TokenSource interface {
	Token(ctx context.Context, userID string) (string, error)
}

// CalendarWriter writes and deletes provider events.
type CalendarWriter interface {
	CreateEvent(ctx context.Context, token string, input calendar.EventInput) (*calendar.CreatedEvent, error)
	DeleteEvent(ctx context.Context, token, eventID string) error
}

// EventMirror persists the local record of every provider write.
type EventMirror interface {
	RecordCalendarEvent(ctx context.Context, req models.CreateCalendarEventRequest) (*ent.CalendarEvent, error)
	GetSessionEvents(ctx context.Context, sessionID string) ([]*ent.CalendarEvent, error)
}

// Coordinator aggregates approval decisions per thread and finalizes
// unanimously approved meetings.
type Coordinator struct {
	sessions SessionStore
	messages MessageStore
	chatLogs ChatLogStore
	users    UserDirectory
	bus      Publisher
	tokens   TokenSource
	cal      CalendarWriter
	mirror   EventMirror
	slack    *slack.Service
	cfg      *config.NegotiationConfig
	logger   *slog.Logger
	locks    *threadLocks

	now func() time.Time
}

// NewCoordinator wires the approval coordinator. slackSvc may be nil
// (calendar-failure escalations are then log-only).
func NewCoordinator(
	sessions SessionStore,
	messages MessageStore,
	chatLogs ChatLogStore,
	users UserDirectory,
	bus Publisher,
	tokens TokenSource,
	cal CalendarWriter,
	mirror EventMirror,
	slackSvc *slack.Service,
	cfg *config.NegotiationConfig,
) *Coordinator {
	return &Coordinator{
		sessions: sessions,
		messages: messages,
		chatLogs: chatLogs,
		users:    users,
		bus:      bus,
		tokens:   tokens,
		cal:      cal,
		mirror:   mirror,
		slack:    slackSvc,
		cfg:      cfg,
		logger:   slog.Default().With("component", "approval"),
		locks:    newThreadLocks(),
		now:      time.Now,
	}
}

// thread is the resolved state one decision operates on: the sessions still
// parked in pending_approval (oldest first), the newest of them — the one
// the engine ran and attached cards and responses to — and the participant
// set with display names.
type thread struct {
	id           string
	sessions     []*ent.NegotiationSession
	anchor       *ent.NegotiationSession
	prefs        *models.SessionPrefs
	participants []string
	names        map[string]string
}

func (t *thread) sessionIDs() []string {
	ids := make([]string, 0, len(t.sessions))
	for _, s := range t.sessions {
		ids = append(ids, s.ID)
	}
	return ids
}

func (t *thread) displayName(userID string) string {
	if name, ok := t.names[userID]; ok && name != "" {
		return name
	}
	return userID
}

// Approve records userID's consent and, when the fresh scan shows every
// participant has consented, finalizes the thread: one owner-local calendar
// event per participant, mirror rows, sessions completed, confirmations
// fanned out. Only the scan-and-record section holds the thread lock.
func (c *Coordinator) Approve(ctx context.Context, userID, threadID string) (*models.ApprovalResult, error) {
	th, err := c.loadThread(ctx, threadID, userID)
	if err != nil {
		return nil, err
	}

	approved, allApproved, prose, err := c.recordApproval(ctx, th, userID)
	if err != nil {
		return nil, err
	}

	result := &models.ApprovalResult{
		ThreadID:     th.id,
		SessionIDs:   th.sessionIDs(),
		ApprovedBy:   approved,
		AllApproved:  allApproved,
		ResponseText: prose,
	}
	if !allApproved {
		return result, nil
	}

	finalProse, failed, err := c.finalizeThread(ctx, th)
	if err != nil {
		return nil, err
	}
	result.Finalized = true
	result.FailedWriters = failed
	result.ResponseText = finalProse
	return result, nil
}

// Reject reopens the thread for recoordination: the refusal is recorded,
// every approval card's buttons go dark, all participants get a rejection
// notice carrying the recoordination arming metadata, and the parked
// sessions return to in_progress to wait for a new slot from the user.
// Nothing is deleted — the transcript keeps the full history.
func (c *Coordinator) Reject(ctx context.Context, userID, threadID string) (*models.ApprovalResult, error) {
	th, err := c.loadThread(ctx, threadID, userID)
	if err != nil {
		return nil, err
	}

	release := c.locks.acquire(th.id)
	defer release()

	// A rejection that loses the race against the last approval arrives
	// after finalization already started.
	approvedSet, err := c.scanApprovals(ctx, th)
	if err != nil {
		return nil, err
	}
	if len(approvedSet) == len(th.participants) {
		return nil, ErrAlreadyFinalized
	}

	if err := c.recordResponse(ctx, th, userID, false); err != nil {
		return nil, err
	}

	prose := fmt.Sprintf("%s님이 일정을 거절했습니다. 새로운 날짜나 시간을 말씀해 주시면 다시 조율할게요.", th.displayName(userID))
	c.appendSystem(ctx, th, negotiationmessage.TypeReject, prose)
	c.disableApprovalCards(ctx, th)
	c.fanOutRejection(ctx, th, userID, prose)

	reopened, err := c.sessions.ReopenAfterRejection(ctx, th.sessionIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to reopen thread sessions: %w", err)
	}
	for _, id := range reopened {
		c.publishStatus(ctx, th, id, negotiationsession.StatusInProgress)
	}

	return &models.ApprovalResult{
		ThreadID:     th.id,
		SessionIDs:   th.sessionIDs(),
		ResponseText: prose,
	}, nil
}

func (c *Coordinator) loadThread(ctx context.Context, threadID, userID string) (*thread, error) {
	if threadID == "" {
		return nil, ErrThreadNotFound
	}
	if userID == "" {
		return nil, ErrNotParticipant
	}

	all, err := c.sessions.ListSessionsByThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread %s: %w", threadID, err)
	}
	if len(all) == 0 {
		return nil, ErrThreadNotFound
	}

	pending := make([]*ent.NegotiationSession, 0, len(all))
	for _, s := range all {
		if s.Status == negotiationsession.StatusPendingApproval {
			pending = append(pending, s)
		}
	}
	if len(pending) == 0 {
		return nil, ErrNoPendingApproval
	}
	anchor := pending[len(pending)-1]

	prefs, err := models.ParseSessionPrefs(anchor.PlacePref)
	if err != nil {
		c.logger.Warn("Unreadable prefs on pending session",
			"session_id", anchor.ID, "error", err)
	}
	if prefs == nil {
		prefs = &models.SessionPrefs{}
	}

	participants := prefs.Participants
	if len(participants) == 0 {
		participants = anchor.ParticipantIds
	}
	member := false
	for _, p := range participants {
		if p == userID {
			member = true
			break
		}
	}
	if !member {
		return nil, ErrNotParticipant
	}

	names, err := c.users.DisplayNames(ctx, participants)
	if err != nil {
		c.logger.Warn("Failed to resolve participant names",
			"thread_id", threadID, "error", err)
		names = map[string]string{}
	}

	return &thread{
		id:           threadID,
		sessions:     pending,
		anchor:       anchor,
		prefs:        prefs,
		participants: participants,
		names:        names,
	}, nil
}

// recordApproval is the locked section of an approve: fresh scan, durable
// response row, card cache refresh, transcript narration. A repeated click
// refreshes nothing and narrates nothing but still reports the current
// state, so a retry after a crashed finalization can complete it.
func (c *Coordinator) recordApproval(ctx context.Context, th *thread, userID string) (approved []string, allApproved bool, prose string, err error) {
	release := c.locks.acquire(th.id)
	defer release()

	approvedSet, err := c.scanApprovals(ctx, th)
	if err != nil {
		return nil, false, "", err
	}
	repeat := approvedSet[userID]
	approvedSet[userID] = true

	for _, p := range th.participants {
		if approvedSet[p] {
			approved = append(approved, p)
		}
	}
	allApproved = len(approved) == len(th.participants)

	if repeat {
		return approved, allApproved, "이미 승인하셨어요.", nil
	}

	// The response row is what future scans count; it must be durable
	// before anything else happens.
	if err := c.recordResponse(ctx, th, userID, true); err != nil {
		return nil, false, "", err
	}

	c.updateApprovalCards(ctx, th, userID, approved, allApproved)

	if allApproved {
		prose = fmt.Sprintf("%s님이 승인했습니다. 모든 참가자가 승인하여 캘린더에 등록합니다...", th.displayName(userID))
	} else {
		prose = fmt.Sprintf("%s님이 승인했습니다. (남은 인원 %d명)", th.displayName(userID), len(th.participants)-len(approved))
	}
	c.appendSystem(ctx, th, negotiationmessage.TypeInfo, prose)

	return approved, allApproved, prose, nil
}

// scanApprovals reads every participant's newest approval-response row and
// counts the ones given after that participant's current approval card was
// dealt. Older responses belong to a previous approval phase of the same
// reused sessions — a rejected and renegotiated thread keeps its rows — and
// must never carry over. Card metadata is not consulted: a stale cached
// approved_by_list must never finalize a meeting.
func (c *Coordinator) scanApprovals(ctx context.Context, th *thread) (map[string]bool, error) {
	responses, err := c.chatLogs.LatestApprovalResponses(ctx, th.anchor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan approval responses: %w", err)
	}

	approved := make(map[string]bool, len(responses))
	for _, p := range th.participants {
		row, ok := responses[p]
		if !ok {
			continue
		}
		meta, err := models.ParseApprovalResponseMetadata(row.Metadata)
		if err != nil || meta == nil || !meta.Approved {
			continue
		}
		card, cardErr := c.chatLogs.LatestApprovalCard(ctx, th.anchor.ID, p)
		if cardErr != nil && !errors.Is(cardErr, services.ErrNotFound) {
			return nil, fmt.Errorf("failed to load approval card for %s: %w", p, cardErr)
		}
		if cardErr == nil && row.CreatedAt.Before(card.CreatedAt) {
			continue // consent from a previous approval phase
		}
		approved[p] = true
	}
	return approved, nil
}

func (c *Coordinator) recordResponse(ctx context.Context, th *thread, userID string, approve bool) error {
	meta := models.ApprovalResponseMetadata{Approved: approve, ThreadID: th.id}
	text := "승인"
	if !approve {
		text = "거절"
	}
	_, err := c.chatLogs.CreateChatLog(ctx, models.CreateChatLogRequest{
		UserID:      userID,
		SessionID:   th.anchor.ID,
		RequestText: text,
		MessageType: string(chatlog.MessageTypeApprovalResponse),
		Metadata:    meta.ToMap(),
	})
	if err != nil {
		return fmt.Errorf("failed to record approval response: %w", err)
	}
	return nil
}

// updateApprovalCards refreshes the display cache on each participant's
// newest card. approved_by_list here is presentation only; the scan above
// is what decided.
func (c *Coordinator) updateApprovalCards(ctx context.Context, th *thread, userID string, approved []string, allApproved bool) {
	now := c.now()
	for _, p := range th.participants {
		card, err := c.chatLogs.LatestApprovalCard(ctx, th.anchor.ID, p)
		if err != nil {
			if !errors.Is(err, services.ErrNotFound) {
				c.logger.Warn("Failed to load approval card",
					"thread_id", th.id, "user_id", p, "error", err)
			}
			continue
		}
		meta, err := models.ParseApprovalMetadata(card.Metadata)
		if err != nil || meta == nil {
			meta = &models.ApprovalMetadata{ThreadID: th.id, SessionIDs: th.sessionIDs()}
		}
		meta.ApprovedByList = approved
		meta.AllApproved = allApproved
		if p == userID {
			meta.ApprovedBy = userID
			meta.ApprovedAt = &now
		}
		if err := c.chatLogs.UpdateLogMetadata(ctx, card.ID, meta.ToMap()); err != nil {
			c.logger.Warn("Failed to update approval card",
				"thread_id", th.id, "chat_log_id", card.ID, "error", err)
		}
	}
}

// disableApprovalCards flips buttons_disabled on every card across the
// thread's sessions, not just the anchor's: stale cards from earlier
// phases must not re-arm a decision that was just rejected.
func (c *Coordinator) disableApprovalCards(ctx context.Context, th *thread) {
	cards, err := c.chatLogs.ApprovalCardsForSessions(ctx, th.sessionIDs())
	if err != nil {
		c.logger.Warn("Failed to list approval cards for disabling",
			"thread_id", th.id, "error", err)
		return
	}
	for _, card := range cards {
		meta, err := models.ParseApprovalMetadata(card.Metadata)
		if err != nil || meta == nil {
			meta = &models.ApprovalMetadata{ThreadID: th.id, SessionIDs: th.sessionIDs()}
		}
		if meta.ButtonsDisabled {
			continue
		}
		meta.ButtonsDisabled = true
		if err := c.chatLogs.UpdateLogMetadata(ctx, card.ID, meta.ToMap()); err != nil {
			c.logger.Warn("Failed to disable approval card",
				"chat_log_id", card.ID, "error", err)
		}
	}
}

// finalizeThread writes the agreed meeting into every participant's
// calendar. It runs outside the thread lock: provider HTTP is slow, and
// the mirror table's uniqueness already absorbs a concurrent duplicate
// finalization. Per-user failures are collected and reported, never fatal
// to the batch.
func (c *Coordinator) finalizeThread(ctx context.Context, th *thread) (prose string, failed []string, err error) {
	slot, allDay, err := c.agreedSlot(th.prefs)
	if err != nil {
		return "", nil, err
	}

	input := calendar.EventInput{
		Summary:  eventSummary(th.prefs),
		Start:    slot.Start,
		End:      slot.End,
		AllDay:   allDay,
		Location: th.prefs.Location,
		// Each participant gets their own owner-local event; an empty
		// attendee list keeps the provider from mailing cross-invitations.
		Attendees: []string{},
	}

	written, err := c.alreadyWritten(ctx, th.anchor.ID)
	if err != nil {
		c.logger.Warn("Failed to load mirror rows, relying on uniqueness alone",
			"session_id", th.anchor.ID, "error", err)
		written = map[string]string{}
	}

	firstEventID := ""
	for _, p := range th.participants {
		eventID, ok := written[p]
		if !ok {
			var writeErr error
			eventID, writeErr = c.writeUserEvent(ctx, th, p, input)
			if writeErr != nil {
				c.logger.Warn("Calendar write failed for participant",
					"thread_id", th.id, "user_id", p, "error", writeErr)
				failed = append(failed, p)
				continue
			}
		}
		if firstEventID == "" {
			firstEventID = eventID
		}
	}

	c.completeSessions(ctx, th, firstEventID)

	prose = c.confirmationProse(th, failed)
	c.appendSystem(ctx, th, negotiationmessage.TypeInfo, prose)
	c.fanOutConfirmation(ctx, th, prose)

	if len(failed) > 0 {
		c.slack.Escalate(slack.Escalation{
			SessionID: th.anchor.ID,
			ThreadID:  th.id,
			Kind:      slack.EscalationCalendarFailure,
			Intent:    th.anchor.Intent,
			Initiator: th.displayName(th.anchor.InitiatorID),
			Reason:    prose,
		})
	}

	c.logger.Info("Thread finalized",
		"thread_id", th.id, "session_id", th.anchor.ID,
		"participants", len(th.participants), "failed_writes", len(failed))
	return prose, failed, nil
}

// agreedSlot resolves the agreed date and time to the concrete span the
// calendar write uses. Overnight agreements span whole civil days; a
// date-only agreement becomes a single all-day entry.
func (c *Coordinator) agreedSlot(prefs *models.SessionPrefs) (schedule.TimeSlot, bool, error) {
	if prefs == nil || prefs.AgreedDate == "" {
		return schedule.TimeSlot{}, false, ErrNoAgreedSlot
	}
	loc := c.cfg.Location()
	p := schedule.Proposal{
		Date:            prefs.AgreedDate,
		Time:            prefs.AgreedTime,
		DurationMinutes: prefs.DurationMinutes,
		DurationNights:  prefs.DurationNights,
	}
	if p.IsMultiDay() {
		slot, err := p.NightsSpan(loc)
		if err != nil {
			return schedule.TimeSlot{}, false, fmt.Errorf("%w: %v", ErrNoAgreedSlot, err)
		}
		return slot, true, nil
	}
	if p.Time == "" {
		day, err := schedule.ParseDate(p.Date, loc)
		if err != nil {
			return schedule.TimeSlot{}, false, fmt.Errorf("%w: %v", ErrNoAgreedSlot, err)
		}
		return schedule.TimeSlot{Start: day, End: day.AddDate(0, 0, 1)}, true, nil
	}
	slot, err := p.TargetSlot(loc)
	if err != nil {
		return schedule.TimeSlot{}, false, fmt.Errorf("%w: %v", ErrNoAgreedSlot, err)
	}
	return slot, false, nil
}

// alreadyWritten maps owners the session already holds confirmed mirror
// rows for — a previous or concurrent finalization wrote their calendars.
func (c *Coordinator) alreadyWritten(ctx context.Context, sessionID string) (map[string]string, error) {
	rows, err := c.mirror.GetSessionEvents(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	written := make(map[string]string, len(rows))
	for _, row := range rows {
		written[row.OwnerID] = row.GoogleEventID
	}
	return written, nil
}

// writeUserEvent creates one owner-local provider event and mirrors it.
// Losing the mirror's uniqueness race means another finalization already
// wrote this (owner, session); the fresh duplicate is deleted best-effort
// and the surviving event id is returned.
func (c *Coordinator) writeUserEvent(ctx context.Context, th *thread, userID string, input calendar.EventInput) (string, error) {
	token, err := c.tokens.Token(ctx, userID)
	if err != nil {
		return "", err
	}
	created, err := c.cal.CreateEvent(ctx, token, input)
	if err != nil {
		return "", err
	}

	_, err = c.mirror.RecordCalendarEvent(ctx, models.CreateCalendarEventRequest{
		OwnerID:       userID,
		SessionID:     th.anchor.ID,
		GoogleEventID: created.ID,
		Summary:       input.Summary,
		Location:      input.Location,
		StartAt:       input.Start,
		EndAt:         input.End,
		HTMLLink:      created.HTMLLink,
	})
	if errors.Is(err, services.ErrAlreadyExists) {
		c.logger.Info("Concurrent finalization already wrote this calendar",
			"session_id", th.anchor.ID, "user_id", userID)
		if delErr := c.cal.DeleteEvent(ctx, token, created.ID); delErr != nil {
			c.logger.Warn("Failed to delete duplicate provider event",
				"user_id", userID, "event_id", created.ID, "error", delErr)
		}
		if rows, qErr := c.mirror.GetSessionEvents(ctx, th.anchor.ID); qErr == nil {
			for _, row := range rows {
				if row.OwnerID == userID {
					return row.GoogleEventID, nil
				}
			}
		}
		return created.ID, nil
	}
	if err != nil {
		// The provider write stands and the user has their event; only the
		// local record is missing. Not a write failure.
		c.logger.Error("Failed to mirror calendar write",
			"session_id", th.anchor.ID, "user_id", userID, "error", err)
	}
	return created.ID, nil
}

// completeSessions stamps the whole thread terminal. Each status event
// carries the thread id so watchers collapse the grouped sessions at once.
func (c *Coordinator) completeSessions(ctx context.Context, th *thread, eventID string) {
	for _, s := range th.sessions {
		if err := c.sessions.UpdateSessionStatus(ctx, s.ID, negotiationsession.StatusCompleted); err != nil {
			c.logger.Error("Failed to complete session",
				"session_id", s.ID, "error", err)
			continue
		}
		if eventID != "" {
			if err := c.sessions.SetFinalEvent(ctx, s.ID, eventID); err != nil {
				c.logger.Warn("Failed to record final event id",
					"session_id", s.ID, "error", err)
			}
		}
		c.publishStatus(ctx, th, s.ID, negotiationsession.StatusCompleted)
	}
}

func (c *Coordinator) confirmationProse(th *thread, failed []string) string {
	if len(failed) == 0 {
		return fmt.Sprintf("%s 일정이 확정되어 모두의 캘린더에 등록했어요!", c.agreedDisplay(th.prefs))
	}
	names := make([]string, 0, len(failed))
	for _, p := range failed {
		names = append(names, th.displayName(p))
	}
	return fmt.Sprintf("일정이 확정되었으나, 다음 사용자의 캘린더 등록에 실패했습니다: %s. (권한/로그인 확인 필요)", strings.Join(names, ", "))
}

func (c *Coordinator) agreedDisplay(prefs *models.SessionPrefs) string {
	p := schedule.Proposal{
		Date:           prefs.AgreedDate,
		Time:           prefs.AgreedTime,
		DurationNights: prefs.DurationNights,
	}
	return p.DisplayKorean(c.cfg.Location())
}

// fanOutConfirmation delivers the confirmation into every chat feed plus a
// toast, the same way approval cards were dealt.
func (c *Coordinator) fanOutConfirmation(ctx context.Context, th *thread, text string) {
	meta := models.ApprovalMetadata{ThreadID: th.id, SessionIDs: th.sessionIDs(), AllApproved: true}
	for _, p := range th.participants {
		log, err := c.chatLogs.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       p,
			SessionID:    th.anchor.ID,
			ResponseText: text,
			MessageType:  string(chatlog.MessageTypeScheduleConfirmed),
			Metadata:     meta.ToMap(),
		})
		if err != nil {
			c.logger.Error("Failed to create confirmation chat log",
				"thread_id", th.id, "user_id", p, "error", err)
			continue
		}
		c.notify(ctx, th, p, "일정 확정", text, log.ID)
	}
}

// fanOutRejection posts the schedule_rejection row the orchestrator later
// reads to detect that this thread wants recoordination.
func (c *Coordinator) fanOutRejection(ctx context.Context, th *thread, rejectedBy, text string) {
	meta := models.RejectionMetadata{
		NeedsRecoordination: true,
		ThreadID:            th.id,
		SessionIDs:          th.sessionIDs(),
		RejectedBy:          rejectedBy,
	}
	for _, p := range th.participants {
		log, err := c.chatLogs.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       p,
			SessionID:    th.anchor.ID,
			ResponseText: text,
			MessageType:  string(chatlog.MessageTypeScheduleRejection),
			Metadata:     meta.ToMap(),
		})
		if err != nil {
			c.logger.Error("Failed to create rejection chat log",
				"thread_id", th.id, "user_id", p, "error", err)
			continue
		}
		c.notify(ctx, th, p, "일정 거절", text, log.ID)
	}
}

func (c *Coordinator) notify(ctx context.Context, th *thread, userID, title, message, chatLogID string) {
	payload := events.NotificationPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeNotification,
			SessionID: th.anchor.ID,
			Timestamp: c.now().Format(time.RFC3339Nano),
		},
		Title:     title,
		Message:   message,
		ThreadID:  th.id,
		ChatLogID: chatLogID,
	}
	if err := c.bus.PublishNotification(ctx, userID, payload); err != nil {
		c.logger.Warn("Failed to publish notification",
			"user_id", userID, "error", err)
	}
}

// appendSystem writes one system transcript row on the anchor session and
// streams it to the session channel plus each participant's channel. The
// row is narration; a failed append is logged, never fatal to the
// decision that was already recorded.
func (c *Coordinator) appendSystem(ctx context.Context, th *thread, typ negotiationmessage.Type, prose string) {
	msg, err := c.messages.CreateMessage(ctx, models.CreateMessageRequest{
		SessionID:  th.anchor.ID,
		SenderID:   systemSenderID,
		SenderName: systemSenderName,
		Type:       typ,
		Round:      0,
		Prose:      prose,
	})
	if err != nil {
		c.logger.Error("Failed to append approval transcript row",
			"thread_id", th.id, "session_id", th.anchor.ID, "error", err)
		return
	}

	payload := events.A2AMessagePayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeA2AMessage,
			SessionID: th.anchor.ID,
			Timestamp: msg.CreatedAt.Format(time.RFC3339Nano),
		},
		MessageID:   msg.ID,
		ThreadID:    th.id,
		SenderID:    msg.SenderID,
		SenderName:  msg.SenderName,
		MessageType: msg.Type,
		Round:       msg.Round,
		Message:     msg.Prose,
	}
	if err := c.bus.PublishA2AMessage(ctx, th.anchor.ID, nil, payload); err != nil {
		c.logger.Warn("Failed to publish approval transcript event",
			"session_id", th.anchor.ID, "error", err)
	}
	for _, p := range th.participants {
		if err := c.bus.PublishA2AMessageToUser(ctx, p, payload); err != nil {
			c.logger.Warn("Failed to copy approval event to user channel",
				"user_id", p, "error", err)
		}
	}
}

func (c *Coordinator) publishStatus(ctx context.Context, th *thread, sessionID string, status negotiationsession.Status) {
	payload := events.SessionStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeSessionStatus,
			SessionID: sessionID,
			Timestamp: c.now().Format(time.RFC3339Nano),
		},
		Status:   status,
		ThreadID: th.id,
	}
	if err := c.bus.PublishSessionStatus(ctx, sessionID, payload); err != nil {
		c.logger.Warn("Failed to publish session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}

func eventSummary(prefs *models.SessionPrefs) string {
	if prefs.Summary != "" {
		return prefs.Summary
	}
	if prefs.Activity != "" {
		return prefs.Activity
	}
	return "모임"
}
