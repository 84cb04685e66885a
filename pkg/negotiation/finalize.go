package negotiation

import (
	"context"
	"fmt"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/queue"
	"github.com/moim-labs/moim/pkg/schedule"
	"github.com/moim-labs/moim/pkg/slack"
)

// Transcript prose the engine authors itself. Everything user-facing is
// Korean; agents add their own voice on top of these fixed lines.
const (
	proseChecking = "캘린더를 확인하고 있습니다..."

	reasonNoProposal = "에이전트가 제안을 만들지 못했어요. 직접 조율이 필요합니다."
	reasonDeadlock   = "같은 제안이 반복되고 있어요. 직접 조율이 필요합니다."
	reasonRoundLimit = "정해진 라운드 안에 합의하지 못했어요. 직접 조율이 필요합니다."
)

// finalize handles unanimous agreement: a system ACCEPT row closes the
// transcript, every session in the thread is parked in pending_approval with
// the agreed slot written next to the preserved original request, and each
// participant gets an approval card in their chat feed. Calendars are not
// touched here — that is the approval coordinator's job once everyone
// consents.
func (r *run) finalize(ctx context.Context, round int, agreed schedule.Proposal) *queue.ExecutionResult {
	display := agreed.DisplayKorean(r.e.cfg.Location())
	prose := fmt.Sprintf("모든 참가자가 동의했습니다. %s 일정의 승인을 기다립니다.", display)
	payload := &models.MessagePayload{Proposal: proposalModel(agreed)}
	if err := r.appendSystem(ctx, negotiationmessage.TypeAccept, round, prose, payload); err != nil {
		return r.abortAppend(err)
	}

	sessions := r.threadSessions(ctx)
	sessionIDs := make([]string, 0, len(sessions))
	for _, s := range sessions {
		sessionIDs = append(sessionIDs, s.ID)
	}

	for _, s := range sessions {
		prefs, err := models.ParseSessionPrefs(s.PlacePref)
		if err != nil || prefs == nil {
			prefs = &models.SessionPrefs{}
		}
		prefs.AgreedDate = agreed.Date
		prefs.AgreedTime = agreed.Time
		if err := r.e.sessions.UpdateSessionPrefs(ctx, s.ID, prefs); err != nil {
			r.e.logger.Error("Failed to store agreed slot",
				"session_id", s.ID, "error", err)
		}
		if err := r.e.sessions.UpdateSessionStatus(ctx, s.ID, negotiationsession.StatusPendingApproval); err != nil {
			r.e.logger.Error("Failed to park session for approval",
				"session_id", s.ID, "error", err)
			continue
		}
		r.publishStatus(ctx, s.ID, negotiationsession.StatusPendingApproval, "")
	}

	r.sendApprovalCards(ctx, sessionIDs, agreed)

	r.e.logger.Info("Negotiation agreed",
		"session_id", r.session.ID, "round", round,
		"date", agreed.Date, "time", agreed.Time)
	return &queue.ExecutionResult{Status: negotiationsession.StatusPendingApproval}
}

// threadSessions lists every session sharing this thread, oldest first.
// Reschedules reuse the thread id, so agreement on the latest session parks
// its predecessors too and the thread shows one consistent state.
func (r *run) threadSessions(ctx context.Context) []*ent.NegotiationSession {
	if r.threadID == "" {
		return []*ent.NegotiationSession{r.session}
	}
	sessions, err := r.e.sessions.ListSessionsByThread(ctx, r.threadID)
	if err != nil {
		r.e.logger.Warn("Failed to list thread sessions, finalizing this session only",
			"session_id", r.session.ID, "thread_id", r.threadID, "error", err)
		return []*ent.NegotiationSession{r.session}
	}
	if len(sessions) == 0 {
		return []*ent.NegotiationSession{r.session}
	}
	return sessions
}

func (r *run) sendApprovalCards(ctx context.Context, sessionIDs []string, agreed schedule.Proposal) {
	display := agreed.DisplayKorean(r.e.cfg.Location())
	summary := display
	if agreed.Activity != "" {
		summary = display + " " + agreed.Activity
	}
	meta := models.ApprovalMetadata{ThreadID: r.threadID, SessionIDs: sessionIDs}
	text := fmt.Sprintf("📅 일정이 합의되었습니다!\n%s\n모두 승인하면 캘린더에 등록돼요.", summary)

	for _, pa := range r.all {
		card, err := r.e.chatLogs.CreateChatLog(ctx, models.CreateChatLogRequest{
			UserID:       pa.user.UserID,
			SessionID:    r.session.ID,
			ResponseText: text,
			MessageType:  string(chatlog.MessageTypeScheduleApproval),
			Metadata:     meta.ToMap(),
		})
		if err != nil {
			r.e.logger.Error("Failed to create approval card",
				"session_id", r.session.ID, "user_id", pa.user.UserID, "error", err)
			continue
		}
		notif := events.NotificationPayload{
			BasePayload: events.BasePayload{
				Type:      events.EventTypeNotification,
				SessionID: r.session.ID,
				Timestamp: r.e.now().Format(time.RFC3339Nano),
			},
			Title:     "일정 승인 요청",
			Message:   summary,
			ThreadID:  r.threadID,
			ChatLogID: card.ID,
		}
		if err := r.e.bus.PublishNotification(ctx, pa.user.UserID, notif); err != nil {
			r.e.logger.Warn("Failed to publish approval notification",
				"session_id", r.session.ID, "user_id", pa.user.UserID, "error", err)
		}
	}
}

// escalate ends the run in needs_reschedule: a terminal NEED_HUMAN row with
// the availability snapshot (when one could be taken), the reason stamped on
// the session, a status event, and an ops ping. The terminal row is
// best-effort — a failed append must not swallow the escalation itself.
func (r *run) escalate(ctx context.Context, round int, kind slack.EscalationKind, reason string, avail []models.ParticipantAvailability) *queue.ExecutionResult {
	var payload *models.MessagePayload
	if len(avail) > 0 {
		payload = &models.MessagePayload{ParticipantAvailabilities: avail}
	}
	if err := r.appendSystem(ctx, negotiationmessage.TypeNeedHuman, round, reason, payload); err != nil {
		r.e.logger.Warn("Failed to append escalation message",
			"session_id", r.session.ID, "error", err)
	}
	if err := r.e.sessions.SetErrorMessage(ctx, r.session.ID, reason); err != nil {
		r.e.logger.Warn("Failed to record escalation reason",
			"session_id", r.session.ID, "error", err)
	}
	r.publishStatus(ctx, r.session.ID, negotiationsession.StatusNeedsReschedule, reason)
	r.e.slack.Escalate(slack.Escalation{
		SessionID: r.session.ID,
		ThreadID:  r.threadID,
		Kind:      kind,
		Intent:    r.session.Intent,
		Initiator: r.initiator.user.DisplayName,
		Reason:    reason,
	})
	return &queue.ExecutionResult{Status: negotiationsession.StatusNeedsReschedule}
}

// snapshot captures who could make the proposal and who could not, so the
// humans taking over see the state of play at a glance. Conflict detail in
// each entry belongs to that entry's user; publishing redacts it per viewer.
func (r *run) snapshot(ctx context.Context, p schedule.Proposal) []models.ParticipantAvailability {
	if _, err := schedule.ParseDate(p.Date, r.e.cfg.Location()); err != nil {
		return nil
	}
	out := make([]models.ParticipantAvailability, 0, len(r.all))
	for _, pa := range r.all {
		av, err := pa.agent.AvailabilityAt(ctx, p)
		if err != nil {
			r.e.logger.Warn("Availability snapshot failed for participant",
				"session_id", r.session.ID, "user_id", pa.user.UserID, "error", err)
			av = models.ParticipantAvailability{UserID: pa.user.UserID, DisplayName: pa.user.DisplayName}
		}
		out = append(out, av)
	}
	return out
}

func proposalModel(p schedule.Proposal) *models.Proposal {
	return &models.Proposal{
		Date:            p.Date,
		Time:            p.Time,
		Location:        p.Location,
		Activity:        p.Activity,
		DurationMinutes: p.DurationMinutes,
		DurationNights:  p.DurationNights,
	}
}

// stripPrivate removes owner-only detail for the durable session-channel
// copy; any subscriber may replay that stream.
func stripPrivate(p events.A2AMessagePayload) events.A2AMessagePayload {
	p.ConflictInfo = nil
	p.ParticipantAvailabilities = redactAvailabilities(p.ParticipantAvailabilities, "")
	return p
}

// viewFor tailors one message copy to a single viewer. The sender's own
// conflict detail survives only on the sender's copy; snapshot entries keep
// their conflict only for the entry's owner. Everything else — who was busy,
// the proposal, the prose — is shared.
func viewFor(p events.A2AMessagePayload, viewerID string) events.A2AMessagePayload {
	if p.SenderID != viewerID {
		p.ConflictInfo = nil
	}
	p.ParticipantAvailabilities = redactAvailabilities(p.ParticipantAvailabilities, viewerID)
	return p
}

func redactAvailabilities(entries []models.ParticipantAvailability, viewerID string) []models.ParticipantAvailability {
	if len(entries) == 0 {
		return entries
	}
	out := make([]models.ParticipantAvailability, len(entries))
	copy(out, entries)
	for i := range out {
		if out[i].UserID != viewerID {
			out[i].ConflictInfo = nil
		}
	}
	return out
}
