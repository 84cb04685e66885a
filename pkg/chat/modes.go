package chat

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/ent/chatlog"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

// Pending modes. Each mode lives entirely in the metadata of the newest
// ai_response row: the scanner reads it back, the resume handler either
// settles the mode or re-asks with the same stash.

func (o *Orchestrator) pendingTimeSelection(t *turn) *models.TimeSelectionMetadata {
	if t.lastAI == nil {
		return nil
	}
	m, err := models.ParseTimeSelectionMetadata(t.lastAI.Metadata)
	if err != nil {
		o.logger.Warn("Unreadable time-selection stash", "chat_log_id", t.lastAI.ID, "error", err)
		return nil
	}
	return m
}

func (o *Orchestrator) pendingRecommendation(t *turn) *models.RecommendationMetadata {
	if t.lastAI == nil {
		return nil
	}
	m, err := models.ParseRecommendationMetadata(t.lastAI.Metadata)
	if err != nil {
		o.logger.Warn("Unreadable recommendation stash", "chat_log_id", t.lastAI.ID, "error", err)
		return nil
	}
	return m
}

func (o *Orchestrator) pendingSlotFill(t *turn) *models.SlotFillingMetadata {
	if t.lastAI == nil {
		return nil
	}
	m, err := models.ParseSlotFillingMetadata(t.lastAI.Metadata)
	if err != nil {
		o.logger.Warn("Unreadable slot-fill stash", "chat_log_id", t.lastAI.ID, "error", err)
		return nil
	}
	return m
}

func (o *Orchestrator) pendingPersonal(t *turn) *models.PendingPersonalMetadata {
	if t.lastAI == nil {
		return nil
	}
	m, err := models.ParsePendingPersonalMetadata(t.lastAI.Metadata)
	if err != nil {
		o.logger.Warn("Unreadable personal-plan stash", "chat_log_id", t.lastAI.ID, "error", err)
		return nil
	}
	return m
}

// pendingRecoordination walks the recent history newest-first for a
// rejection that still wants a retry. Any all-approved marker seen on the
// way down is newer than the rejection and disarms it — the thread already
// finished a later round successfully.
func (o *Orchestrator) pendingRecoordination(t *turn) *models.RejectionMetadata {
	for _, row := range t.recent {
		if am, err := models.ParseApprovalMetadata(row.Metadata); err == nil && am != nil && am.AllApproved {
			return nil
		}
		if row.MessageType != chatlog.MessageTypeScheduleRejection {
			continue
		}
		rm, err := models.ParseRejectionMetadata(row.Metadata)
		if err != nil || rm == nil || !rm.NeedsRecoordination || len(rm.SessionIDs) == 0 {
			continue
		}
		return rm
	}
	return nil
}

// resumeTimeSelection settles a stashed date with the time the user just
// named. Answers outside the recommended window, or messages with no
// readable time at all, keep the mode armed and re-ask.
func (o *Orchestrator) resumeTimeSelection(ctx context.Context, t *turn, ts *models.TimeSelectionMetadata) (*reply, error) {
	hour, minute, ok := schedule.ParseTimeExpression(t.text, schedule.HasEveningContext(t.text))
	if !ok {
		return &reply{
			text:     "몇 시가 좋은지 알려주세요! (예: 저녁 7시, 19:30)",
			metadata: ts.ToMap(),
		}, nil
	}
	if cond := parseTimeCondition(ts.TimeCondition); cond != nil && !cond(hour) {
		return &reply{
			text:     fmt.Sprintf("그 시간은 다들 맞추기 어려워요. %s 중에서 골라주시겠어요?", ts.TimeCondition),
			metadata: ts.ToMap(),
		}, nil
	}

	friends, err := o.friendsByIDs(ctx, ts.FriendIDs, t.userID)
	if err != nil {
		return nil, err
	}
	it := &models.Intent{
		HasScheduleRequest: true,
		Date:               ts.SelectedDate,
		Time:               fmt.Sprintf("%02d:%02d", hour, minute),
		Activity:           ts.Activity,
	}
	return o.dispatchNegotiation(ctx, t, it, friends, ts.ThreadID)
}

// resumeRecommendation matches the user's answer against the offered
// candidates. A miss returns nil so the fresh-intent rows get their turn; a
// hit either dispatches outright (date and time both named) or hands the
// picked date to time selection.
func (o *Orchestrator) resumeRecommendation(ctx context.Context, t *turn, rec *models.RecommendationMetadata) (*reply, error) {
	idx := pickCandidate(t.text, rec.Candidates, t.now)
	if idx < 0 {
		return nil, nil
	}
	cand := rec.Candidates[idx]

	if hour, minute, ok := schedule.ParseTimeExpression(t.text, schedule.HasEveningContext(t.text)); ok {
		if cond := parseTimeCondition(cand.TimeCondition); cond == nil || cond(hour) {
			friends, err := o.friendsByIDs(ctx, rec.FriendIDs, t.userID)
			if err != nil {
				return nil, err
			}
			it := &models.Intent{
				HasScheduleRequest: true,
				Date:               cand.Date,
				Time:               fmt.Sprintf("%02d:%02d", hour, minute),
				Activity:           rec.Activity,
			}
			return o.dispatchNegotiation(ctx, t, it, friends, "")
		}
	}

	text := fmt.Sprintf("%s 좋아요! 몇 시에 만날까요?", monthDayKorean(cand.Date, o.cfg.Location()))
	if cand.TimeCondition != "" && cand.TimeCondition != anyTimeCondition {
		text += fmt.Sprintf(" 그날은 %s로 맞추는 게 좋아요.", cand.TimeCondition)
	}
	stash := models.TimeSelectionMetadata{
		AwaitingTimeSelection: true,
		SelectedDate:          cand.Date,
		TimeCondition:         cand.TimeCondition,
		FriendIDs:             rec.FriendIDs,
		FriendNames:           rec.FriendNames,
		Activity:              rec.Activity,
	}
	return &reply{text: text, metadata: stash.ToMap()}, nil
}

// enterTimeSelection acknowledges a concrete date and asks for the time,
// stashing the resolved participants so the answer can dispatch directly.
func (o *Orchestrator) enterTimeSelection(t *turn, it *models.Intent, day string, friends []*ent.User) (*reply, error) {
	stash := models.TimeSelectionMetadata{
		AwaitingTimeSelection: true,
		SelectedDate:          day,
		FriendIDs:             userIDsOf(friends),
		FriendNames:           userNamesOf(friends),
		Activity:              it.Activity,
	}
	return &reply{
		text:     fmt.Sprintf("%s 좋아요! 몇 시에 만날까요?", monthDayKorean(day, o.cfg.Location())),
		metadata: stash.ToMap(),
	}, nil
}

// recoordinate rearms the rejected thread's sessions with the new slot. The
// reset stamps started_at, so the pool picks the rows up as a fresh pending
// batch; the old thread id keeps the transcript in one place.
func (o *Orchestrator) recoordinate(ctx context.Context, t *turn, it *models.Intent, rm *models.RejectionMetadata) (*reply, error) {
	day, _ := singleDay(it)
	clock := clockOf(it)

	reset, err := o.sessions.ResetForRecoordination(ctx, rm.SessionIDs, day, clock)
	if err != nil {
		o.logger.Warn("Recoordination reset failed",
			"thread_id", rm.ThreadID, "session_ids", rm.SessionIDs, "error", err)
		return nil, nil
	}
	if len(reset) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(reset))
	for _, s := range reset {
		ids = append(ids, s.ID)
		if o.pool != nil {
			o.pool.Enqueue(s.ID)
		}
	}
	o.logger.Info("Recoordination dispatched",
		"thread_id", rm.ThreadID, "sessions", len(ids), "date", day, "time", clock)

	return &reply{
		text:       "좋아요! 말씀해주신 일정으로 다시 조율해볼게요. 에이전트들이 상의하는 동안 잠시만 기다려 주세요.",
		sessionIDs: ids,
		threadID:   rm.ThreadID,
	}, nil
}

// friendsByIDs loads stashed participant ids, preserving stash order and
// dropping the requester if the stash somehow includes them.
func (o *Orchestrator) friendsByIDs(ctx context.Context, ids []string, self string) ([]*ent.User, error) {
	users, err := o.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load stashed participants: %w", err)
	}
	byID := make(map[string]*ent.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := make([]*ent.User, 0, len(ids))
	for _, id := range ids {
		if id == self {
			continue
		}
		if u, ok := byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

var (
	reCondAfter  = regexp.MustCompile(`(\d{1,2})시 이후`)
	reCondBefore = regexp.MustCompile(`(\d{1,2})시 이전`)
	reCondRange  = regexp.MustCompile(`(\d{1,2})\s*~\s*(\d{1,2})시`)
)

// parseTimeCondition turns a recommendation's condition label back into a
// predicate over the answered hour. Nil means any time goes.
func parseTimeCondition(s string) func(hour int) bool {
	if m := reCondRange.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return func(h int) bool { return h >= lo && h <= hi }
	}
	if m := reCondAfter.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return func(h int) bool { return h >= n }
	}
	if m := reCondBefore.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return func(h int) bool { return h < n }
	}
	return nil
}

func monthDayKorean(date string, loc *time.Location) string {
	d, err := schedule.ParseDate(date, loc)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d월 %d일", int(d.Month()), d.Day())
}
