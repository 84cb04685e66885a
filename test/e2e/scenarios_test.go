//go:build e2e

// End-to-end negotiation scenarios against the full stack: HTTP API, worker
// pool, Postgres NOTIFY fan-out, WebSocket streams, and the calendar double.
// The model endpoint always fails, so every agent decision below is the
// deterministic calendar-driven path and every assertion is exact.
package e2e

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moim-labs/moim/ent/negotiationmessage"
	"github.com/moim-labs/moim/ent/negotiationsession"
	"github.com/moim-labs/moim/pkg/events"
	"github.com/moim-labs/moim/pkg/schedule"
)

// Two-person dinner where the proposed slot works for everyone: the opening
// PROPOSE is accepted in round one, both humans approve, and both calendars
// receive the event.
func TestMeetingConfirmedOnFirstProposal(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	cheolsuTok := app.SeedUser("u-cheolsu", "철수")
	yeonghuiTok := app.SeedUser("u-yeonghui", "영희")

	// 철수 works until 18:00; 영희 is blocked before 14:00 and after 20:00.
	// 18:00-20:00 is the only shared window, and exactly what 철수 asks for.
	app.Calendar.StageBusy(cheolsuTok, "근무", app.tomorrowAt(9, 0), app.tomorrowAt(18, 0))
	app.Calendar.StageBusy(yeonghuiTok, "오전 일정", app.tomorrowAt(9, 0), app.tomorrowAt(14, 0))
	app.Calendar.StageBusy(yeonghuiTok, "야간 일정", app.tomorrowAt(20, 0), app.tomorrowAt(22, 0))

	ws := ConnectWS(ctx, t, app.WSURL, "u-cheolsu")

	reply := app.SendChat(t, "u-cheolsu", "", "영희랑 내일 저녁 6시에 저녁 먹자")
	require.Len(t, reply.SessionIDs, 1, "one friend, one session: %+v", reply)
	require.NotEmpty(t, reply.ThreadID)
	sessionID := reply.SessionIDs[0]

	sess := app.WaitForSessionStatus(t, sessionID, negotiationsession.StatusPendingApproval)
	prefs := app.SessionPrefs(t, sess)
	require.Equal(t, schedule.FormatDate(app.tomorrowAt(0, 0)), prefs.AgreedDate)
	require.Equal(t, "18:00", prefs.AgreedTime)

	msgs := app.Transcript(t, sessionID)
	require.NotEmpty(t, msgs)
	require.Equal(t, negotiationmessage.TypePropose, msgs[0].Type,
		"transcript opens with the requester's proposal: %v", messageTypes(msgs))
	require.True(t, hasMessageType(msgs, negotiationmessage.TypeAccept),
		"agreement must be recorded: %v", messageTypes(msgs))

	// The requester's stream carries the transcript and the status flip.
	ws.Subscribe(ctx, t, events.SessionChannel(sessionID))
	ws.WaitFor(t, "a transcript bubble", func(ev WSEvent) bool {
		return ev.Type == events.EventTypeA2AMessage
	})
	ws.WaitFor(t, "pending_approval status", func(ev WSEvent) bool {
		return ev.Type == events.EventTypeSessionStatus &&
			ev.Parsed["status"] == string(negotiationsession.StatusPendingApproval)
	})

	first := app.Approve(t, "u-cheolsu", reply.ThreadID, true)
	require.False(t, first.AllApproved, "one of two approvals cannot finalize")
	require.False(t, first.Finalized)

	second := app.Approve(t, "u-yeonghui", reply.ThreadID, true)
	require.True(t, second.AllApproved)
	require.True(t, second.Finalized)
	require.Empty(t, second.FailedWriters)
	require.Contains(t, second.ResponseText, "확정")

	app.WaitForSessionStatus(t, sessionID, negotiationsession.StatusCompleted)

	inserted := app.Calendar.Inserted()
	require.Len(t, inserted, 2, "one event per participant calendar")
	for _, ev := range inserted {
		require.Equal(t, app.tomorrowAt(18, 0).Unix(), ev.Start.Unix())
		require.Equal(t, app.tomorrowAt(20, 0).Unix(), ev.End.Unix())
	}

	mirror, err := app.Mirror.GetSessionEvents(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, mirror, 2, "every write is mirrored for later cancellation")

	require.Positive(t, app.LLM.Calls(), "prose generation must have been attempted")
}

// The proposed slot collides with a private calendar entry: the counterpart
// counters with the nearest workable hour, the requester accepts it, and the
// blocking entry's title never reaches the requester on any surface.
func TestCounterConvergesOnNearbySlot(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()
	const secret = "비밀 회식"

	cheolsuTok := app.SeedUser("u-cheolsu", "철수")
	yeonghuiTok := app.SeedUser("u-yeonghui", "영희")

	app.Calendar.StageBusy(cheolsuTok, "근무", app.tomorrowAt(9, 0), app.tomorrowAt(18, 0))
	app.Calendar.StageBusy(yeonghuiTok, secret, app.tomorrowAt(17, 0), app.tomorrowAt(19, 0))

	requesterWS := ConnectWS(ctx, t, app.WSURL, "u-cheolsu")
	ownerWS := ConnectWS(ctx, t, app.WSURL, "u-yeonghui")

	reply := app.SendChat(t, "u-cheolsu", "", "영희랑 내일 저녁 6시에 저녁 먹자")
	require.Len(t, reply.SessionIDs, 1)
	sessionID := reply.SessionIDs[0]

	sess := app.WaitForSessionStatus(t, sessionID, negotiationsession.StatusPendingApproval)
	prefs := app.SessionPrefs(t, sess)
	require.Equal(t, "19:00", prefs.AgreedTime, "nearest free hour after the 17-19 block")

	msgs := app.Transcript(t, sessionID)
	require.True(t, hasMessageType(msgs, negotiationmessage.TypeCounter), "types: %v", messageTypes(msgs))
	require.True(t, hasMessageType(msgs, negotiationmessage.TypeAccept), "types: %v", messageTypes(msgs))

	// The busy entry's owner sees why their agent countered.
	ownerWS.WaitFor(t, "counter with own conflict detail", func(ev WSEvent) bool {
		return ev.Type == events.EventTypeA2AMessage &&
			ev.Parsed["message_type"] == string(negotiationmessage.TypeCounter) &&
			bytesContain(ev.Raw, secret)
	})

	// The requester sees the counter too, but never the title behind it.
	requesterWS.WaitFor(t, "counter without conflict detail", func(ev WSEvent) bool {
		return ev.Type == events.EventTypeA2AMessage &&
			ev.Parsed["message_type"] == string(negotiationmessage.TypeCounter)
	})
	for _, ev := range requesterWS.Events() {
		require.False(t, bytesContain(ev.Raw, secret),
			"busy detail leaked to the requester's stream: %s", ev.Raw)
	}

	// Same redaction on the REST transcript.
	ownerBody := app.getRawBody(t, "u-yeonghui", "/api/threads/"+reply.ThreadID+"/messages")
	require.True(t, bytesContain(ownerBody, secret), "owner should see their own conflict")
	requesterBody := app.getRawBody(t, "u-cheolsu", "/api/threads/"+reply.ThreadID+"/messages")
	require.False(t, bytesContain(requesterBody, secret), "transcript leaked the busy title")
}

// No shared window exists: the two agents bounce the same pair of slots until
// the repeat detector gives up and flags the session for the humans.
func TestDeadlockEscalatesToHumans(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	cheolsuTok := app.SeedUser("u-cheolsu", "철수")
	yeonghuiTok := app.SeedUser("u-yeonghui", "영희")

	// 철수 is only free 18-20, 영희 only 20-22. Every counter is forced.
	app.Calendar.StageBusy(cheolsuTok, "근무", app.tomorrowAt(9, 0), app.tomorrowAt(18, 0))
	app.Calendar.StageBusy(cheolsuTok, "야근", app.tomorrowAt(20, 0), app.tomorrowAt(22, 0))
	app.Calendar.StageBusy(yeonghuiTok, "종일 일정", app.tomorrowAt(9, 0), app.tomorrowAt(20, 0))

	ws := ConnectWS(ctx, t, app.WSURL, "u-cheolsu")

	reply := app.SendChat(t, "u-cheolsu", "", "영희랑 내일 저녁 6시에 저녁 먹자")
	require.Len(t, reply.SessionIDs, 1)
	sessionID := reply.SessionIDs[0]

	app.WaitForSessionStatus(t, sessionID, negotiationsession.StatusNeedsReschedule)

	msgs := app.Transcript(t, sessionID)
	require.True(t, hasMessageType(msgs, negotiationmessage.TypeCounter), "types: %v", messageTypes(msgs))
	require.False(t, hasMessageType(msgs, negotiationmessage.TypeAccept),
		"nothing should have been agreed: %v", messageTypes(msgs))

	ws.Subscribe(ctx, t, events.SessionChannel(sessionID))
	ws.WaitFor(t, "needs_reschedule status", func(ev WSEvent) bool {
		return ev.Type == events.EventTypeSessionStatus &&
			ev.Parsed["status"] == string(negotiationsession.StatusNeedsReschedule)
	})

	require.Zero(t, app.Calendar.InsertCount(), "no agreement, no calendar writes")
}

// A date range instead of a concrete day: the orchestrator offers numbered
// candidates, the user picks one by number, is asked for a time, answers,
// and only then does a negotiation run.
func TestRecommendationPicksDateThenTime(t *testing.T) {
	app := NewTestApp(t)

	app.SeedUser("u-cheolsu", "철수")
	app.SeedUser("u-yeonghui", "영희")

	d1 := app.dayAt(2, 0, 0)
	d2 := app.dayAt(3, 0, 0)
	d3 := app.dayAt(4, 0, 0)

	ask := fmt.Sprintf("영희랑 %d월 %d일부터 %d월 %d일까지 저녁 먹자",
		int(d1.Month()), d1.Day(), int(d3.Month()), d3.Day())
	reply1 := app.SendChat(t, "u-cheolsu", "", ask)
	require.Empty(t, reply1.SessionIDs, "no negotiation before a day is chosen")
	require.Contains(t, reply1.Response, "함께 모일 수 있는 날")

	rec, err := models.ParseRecommendationMetadata(reply1.Metadata)
	require.NoError(t, err)
	require.NotNil(t, rec, "reply must carry pickable candidates")
	require.Len(t, rec.Candidates, 3)
	require.Equal(t, schedule.FormatDate(d1), rec.Candidates[0].Date)
	require.Equal(t, schedule.FormatDate(d2), rec.Candidates[1].Date)
	require.Equal(t, schedule.FormatDate(d3), rec.Candidates[2].Date)
	for _, c := range rec.Candidates {
		require.True(t, c.AllAvailable, "empty calendars, every day works: %+v", c)
	}

	reply2 := app.SendChat(t, "u-cheolsu", reply1.ChatSessionID, "2번")
	require.Empty(t, reply2.SessionIDs)
	require.Contains(t, reply2.Response, "몇 시에 만날까요")

	reply3 := app.SendChat(t, "u-cheolsu", reply1.ChatSessionID, "저녁 7시")
	require.Len(t, reply3.SessionIDs, 1, "time answered, negotiation dispatched: %+v", reply3)

	sess := app.WaitForSessionStatus(t, reply3.SessionIDs[0], negotiationsession.StatusPendingApproval)
	prefs := app.SessionPrefs(t, sess)
	require.Equal(t, schedule.FormatDate(d2), prefs.AgreedDate, "picked candidate #2")
	require.Equal(t, "19:00", prefs.AgreedTime)
}

// Personal bookings guard against the user's own calendar: a clashing span is
// refused with the blocking entry named, a free span is written immediately.
func TestPersonalBookingWarnsOnConflict(t *testing.T) {
	app := NewTestApp(t)

	tok := app.SeedUser("u-cheolsu", "철수")
	app.Calendar.StageBusy(tok, "회의", app.tomorrowAt(15, 0), app.tomorrowAt(16, 0))

	reply := app.SendChat(t, "u-cheolsu", "", "내일 3시부터 5시까지 치과 예약해줘")
	require.Contains(t, reply.Response, "회의", "the clashing entry is named")
	require.Contains(t, reply.Response, "이미")
	require.Zero(t, app.Calendar.InsertCount(), "conflicting span must not be written")

	booked := app.SendChat(t, "u-cheolsu", reply.ChatSessionID, "내일 5시부터 6시까지 치과 예약해줘")
	require.Contains(t, booked.Response, "등록했어요")
	require.Contains(t, booked.Response, "치과")

	inserted := app.Calendar.Inserted()
	require.Len(t, inserted, 1)
	require.Equal(t, "치과", inserted[0].Summary)
	require.Equal(t, app.tomorrowAt(17, 0).Unix(), inserted[0].Start.Unix())
	require.Equal(t, app.tomorrowAt(18, 0).Unix(), inserted[0].End.Unix())
}

// One participant's calendar write fails at finalization: the thread still
// finalizes, the other calendar keeps its event, and the failure is reported
// with the affected user named.
func TestCalendarWriteFailureKeepsOthers(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	app.SeedUser("u-cheolsu", "철수")
	yeonghuiTok := app.SeedUserExpiredToken("u-yeonghui", "영희")

	reply := app.SendChat(t, "u-cheolsu", "", "영희랑 내일 저녁 6시에 저녁 먹자")
	require.Len(t, reply.SessionIDs, 1)
	sessionID := reply.SessionIDs[0]

	// Both calendars are empty, so the refreshed token already served the
	// availability fetch. Kill it before the write path runs.
	app.WaitForSessionStatus(t, sessionID, negotiationsession.StatusPendingApproval)
	app.Calendar.Revoke(yeonghuiTok)

	first := app.Approve(t, "u-cheolsu", reply.ThreadID, true)
	require.False(t, first.AllApproved)

	second := app.Approve(t, "u-yeonghui", reply.ThreadID, true)
	require.True(t, second.AllApproved)
	require.True(t, second.Finalized, "one failed write must not block finalization")
	require.Equal(t, []string{"u-yeonghui"}, second.FailedWriters)
	require.Contains(t, second.ResponseText, "일정이 확정되었으나")
	require.Contains(t, second.ResponseText, "영희")
	require.Contains(t, second.ResponseText, "권한/로그인 확인 필요")

	app.WaitForSessionStatus(t, sessionID, negotiationsession.StatusCompleted)

	inserted := app.Calendar.Inserted()
	require.Len(t, inserted, 1, "only the healthy calendar got the event")
	require.Equal(t, "tok-u-cheolsu", inserted[0].Token)

	mirror, err := app.Mirror.GetSessionEvents(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, mirror, 1)
}
