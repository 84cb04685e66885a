package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/calendar"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
	"github.com/moim-labs/moim/pkg/services"
)

// personalPlan is a solo booking ready to write: one civil day, a start
// clock, and either an end clock or a duration.
type personalPlan struct {
	Date            string
	StartTime       string
	EndTime         string
	DurationMinutes int
	Title           string
	Location        string
}

// personalFlow handles a companionless request that already has a date: an
// explicit span writes immediately, a single instant asks for the end time
// and stashes the offer.
func (o *Orchestrator) personalFlow(ctx context.Context, t *turn, it *models.Intent) (*reply, error) {
	day, ok := singleDay(it)
	if !ok {
		return nil, nil
	}

	if it.HasTimeSpan() {
		return o.writePersonal(ctx, t, personalPlan{
			Date:      day,
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
			Title:     firstNonEmpty(it.Title, it.Activity),
			Location:  it.Location,
		})
	}

	clock := clockOf(it)
	if clock == "" {
		return nil, nil
	}
	stash := models.PendingPersonalMetadata{
		AwaitingConfirmation: true,
		Date:                 day,
		StartTime:            clock,
		Title:                firstNonEmpty(it.Title, it.Activity),
		Location:             it.Location,
	}
	return &reply{
		text:     "몇 시까지로 등록할까요? 끝나는 시간을 알려주시면 바로 등록할게요!",
		metadata: stash.ToMap(),
	}, nil
}

// resumePersonal settles a stashed solo offer with the user's answer: a
// fresh span rewrites the whole plan, a single clock becomes the end time,
// a short confirmation books the default length. Anything else declines so
// the rest of the table sees the message.
func (o *Orchestrator) resumePersonal(ctx context.Context, t *turn, pp *models.PendingPersonalMetadata, it *models.Intent) (*reply, error) {
	if it.HasTimeSpan() {
		day, _ := singleDay(it)
		return o.writePersonal(ctx, t, personalPlan{
			Date:      firstNonEmpty(day, pp.Date),
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
			Title:     firstNonEmpty(it.Title, it.Activity, pp.Title),
			Location:  firstNonEmpty(it.Location, pp.Location),
		})
	}
	if clock := clockOf(it); clock != "" {
		return o.writePersonal(ctx, t, personalPlan{
			Date:      pp.Date,
			StartTime: pp.StartTime,
			EndTime:   clock,
			Title:     pp.Title,
			Location:  pp.Location,
		})
	}
	if isShortConfirm(t.text) {
		return o.writePersonal(ctx, t, personalPlan{
			Date:            pp.Date,
			StartTime:       pp.StartTime,
			DurationMinutes: o.cfg.DefaultDurationMinutes,
			Title:           pp.Title,
			Location:        pp.Location,
		})
	}
	return nil, nil
}

// writePersonal books the plan on the user's own calendar. A named conflict
// refuses with the event's summary — this is the owner's calendar, so the
// title is theirs to see. The local mirror is best-effort; the provider
// write is the authoritative outcome.
func (o *Orchestrator) writePersonal(ctx context.Context, t *turn, plan personalPlan) (*reply, error) {
	loc := o.cfg.Location()
	day, err := schedule.ParseDate(plan.Date, loc)
	if err != nil {
		return nil, services.NewValidationError("date", "unreadable date")
	}
	sh, sm, err := schedule.ParseClock(plan.StartTime)
	if err != nil {
		return nil, services.NewValidationError("start_time", "unreadable time")
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, loc)

	var end time.Time
	if plan.EndTime != "" {
		eh, em, err := schedule.ParseClock(plan.EndTime)
		if err != nil {
			return nil, services.NewValidationError("end_time", "unreadable time")
		}
		end = time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, loc)
		if !end.After(start) {
			end = end.AddDate(0, 0, 1) // overnight span
		}
	} else {
		minutes := plan.DurationMinutes
		if minutes <= 0 {
			minutes = o.cfg.DefaultDurationMinutes
		}
		end = start.Add(time.Duration(minutes) * time.Minute)
	}

	summary := firstNonEmpty(plan.Title, "개인 일정")

	// The block check is the user's own cached calendar; being outside
	// working hours is no reason to refuse a personal errand, so only a
	// named overlap stops the write.
	minutes := int(end.Sub(start) / time.Minute)
	ag := o.agents.Agent(t.chatID, agent.Participant{UserID: t.userID}, o.agents.Window(t.now, start), minutes)
	avail, err := ag.AvailabilityAt(ctx, schedule.Proposal{
		Date:            plan.Date,
		Time:            fmt.Sprintf("%02d:%02d", sh, sm),
		DurationMinutes: minutes,
	})
	if err != nil {
		o.logger.Warn("Personal conflict check skipped", "user_id", t.userID, "error", err)
	} else if avail.ConflictInfo != nil {
		return &reply{
			text: fmt.Sprintf("그 시간에는 이미 '%s' 일정이 있어요. 다른 시간으로 알려주시겠어요?",
				avail.ConflictInfo.EventSummary),
		}, nil
	}

	token, err := o.tokens.Token(ctx, t.userID)
	if errors.Is(err, calendar.ErrNoCredentials) {
		return &reply{text: "아직 캘린더가 연결되어 있지 않아요. 캘린더를 연결하면 바로 등록해 드릴게요!"}, nil
	}
	if err != nil {
		o.logger.Warn("Calendar token fetch failed", "user_id", t.userID, "error", err)
		return &reply{text: "캘린더에 접근하지 못했어요. 잠시 후 다시 시도해 주세요."}, nil
	}

	created, err := o.cal.CreateEvent(ctx, token, calendar.EventInput{
		Summary:  summary,
		Start:    start,
		End:      end,
		Location: plan.Location,
	})
	if err != nil {
		o.logger.Warn("Personal calendar write failed", "user_id", t.userID, "error", err)
		return &reply{text: "캘린더 등록에 실패했어요. 잠시 후 다시 시도해 주세요."}, nil
	}

	if _, err := o.mirror.RecordCalendarEvent(ctx, models.CreateCalendarEventRequest{
		OwnerID:       t.userID,
		GoogleEventID: created.ID,
		Summary:       summary,
		Location:      plan.Location,
		StartAt:       start,
		EndAt:         end,
		HTMLLink:      created.HTMLLink,
	}); err != nil {
		o.logger.Warn("Personal event mirror failed",
			"user_id", t.userID, "google_event_id", created.ID, "error", err)
	}

	o.logger.Info("Personal event written",
		"user_id", t.userID, "google_event_id", created.ID,
		"start", start.Format("2006-01-02 15:04"))

	return &reply{
		text: fmt.Sprintf("%d월 %d일 %s~%s '%s' 일정을 캘린더에 등록했어요!",
			int(day.Month()), day.Day(),
			start.Format("15:04"), end.Format("15:04"), summary),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
