package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moim-labs/moim/pkg/models"
)

// heuristicExtract runs the deterministic path directly.
func heuristicExtract(t *testing.T, text string) *models.Intent {
	t.Helper()
	e := NewExtractor(nil, kst)
	return e.Extract(context.Background(), Input{Text: text, Now: testNow})
}

func TestHeuristic_FriendNames(t *testing.T) {
	cases := map[string]struct {
		text string
		want []string
	}{
		"single with 와":       {"철수와 내일 저녁 어때?", []string{"철수"}},
		"single with 랑":       {"영희랑 커피 마시자", []string{"영희"}},
		"euphonic 이 before 랑": {"민정이랑 주말에 보자", []string{"민정"}},
		"comma list":          {"수지, 민정이랑 주말에 브런치 먹자", []string{"수지", "민정"}},
		"two groups":          {"철수와 영희랑 저녁 먹자", []string{"철수", "영희"}},
		"group noun":          {"친구들과 내일 저녁 먹자", nil},
		"date word":           {"내일이랑 모레 중에 언제가 좋아?", nil},
		"no names":            {"내일 저녁 먹자", nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			it := heuristicExtract(t, tc.text)
			assert.Equal(t, tc.want, it.FriendNames)
		})
	}
}

func TestHeuristic_SocialDinner(t *testing.T) {
	it := heuristicExtract(t, "철수와 내일 오후 6시 저녁 어때?")

	assert.Equal(t, []string{"철수"}, it.FriendNames)
	assert.Equal(t, "2025-12-17", it.Date)
	assert.Equal(t, "18:00", it.Time)
	assert.Equal(t, "저녁", it.Activity)
	assert.True(t, it.HasScheduleRequest)
	assert.Empty(t, it.MissingFields)
}

func TestHeuristic_BareHourMeridiem(t *testing.T) {
	evening := heuristicExtract(t, "영희랑 내일 6시에 술 한잔 어때")
	assert.Equal(t, "18:00", evening.Time)
	assert.Equal(t, "술 한잔", evening.Activity)

	morning := heuristicExtract(t, "철수와 내일 10시 커피 어때")
	assert.Equal(t, "10:00", morning.Time, "7–11 stays morning without an evening cue")

	lateWithCue := heuristicExtract(t, "철수와 퇴근하고 내일 9시 맥주 한잔")
	assert.Equal(t, "21:00", lateWithCue.Time)
}

func TestHeuristic_DurationStrippedBeforeTimeScan(t *testing.T) {
	it := heuristicExtract(t, "내일 6시에 3시간 회의 잡아줘")

	assert.Equal(t, "2025-12-17", it.Date)
	assert.Empty(t, it.Time)
	assert.Equal(t, "18:00", it.StartTime, "3시간 is a duration, not a clock time")
	assert.Equal(t, "21:00", it.EndTime)
	assert.Equal(t, "회의", it.Title)
	assert.True(t, it.HasScheduleRequest)
	assert.Empty(t, it.MissingFields)
}

func TestHeuristic_PersonalBookingWithTimeRange(t *testing.T) {
	it := heuristicExtract(t, "내일 3시부터 5시까지 치과 예약")

	assert.Equal(t, "2025-12-17", it.Date)
	assert.Equal(t, "15:00", it.StartTime)
	assert.Equal(t, "17:00", it.EndTime)
	assert.Equal(t, "치과", it.Title)
	assert.True(t, it.HasScheduleRequest)
	assert.Empty(t, it.MissingFields, "a solo booking never asks for a companion")
}

func TestHeuristic_MonthScopedRange(t *testing.T) {
	it := heuristicExtract(t, "12월 중에 저녁 약속 잡아줘")

	assert.Equal(t, "2025-12-16", it.StartDate, "the current month starts today, not on the 1st")
	assert.Equal(t, "2025-12-31", it.EndDate)
	assert.Equal(t, "저녁", it.Activity)
	assert.True(t, it.HasScheduleRequest)
	assert.Equal(t, []string{"time", "friend_name"}, it.MissingFields)
}

func TestHeuristic_ExplicitDateRange(t *testing.T) {
	it := heuristicExtract(t, "12월 19일부터 21일까지 여행 가자")

	assert.Equal(t, "2025-12-19", it.StartDate)
	assert.Equal(t, "2025-12-21", it.EndDate, "a bare day after 부터 inherits the start month")
	assert.Equal(t, "여행", it.Activity)
	assert.True(t, it.HasScheduleRequest)
}

func TestHeuristic_WeekdayRange(t *testing.T) {
	it := heuristicExtract(t, "금요일부터 월요일까지 여행 어때")

	assert.Equal(t, "2025-12-19", it.StartDate)
	assert.Equal(t, "2025-12-22", it.EndDate)
}

func TestHeuristic_NightsFoldIntoRange(t *testing.T) {
	it := heuristicExtract(t, "철수랑 12월 19일부터 2박으로 여행 잡아줘")

	assert.Empty(t, it.Date)
	assert.Equal(t, "2025-12-19", it.StartDate)
	assert.Equal(t, "2025-12-21", it.EndDate)
	assert.Equal(t, []string{"철수"}, it.FriendNames)
}

func TestHeuristic_ClockRange(t *testing.T) {
	it := heuristicExtract(t, "내일 15:00~17:00 괜찮아?")

	assert.Equal(t, "15:00", it.StartTime)
	assert.Equal(t, "17:00", it.EndTime)
	assert.True(t, it.HasScheduleRequest)
}

func TestHeuristic_Location(t *testing.T) {
	it := heuristicExtract(t, "영희랑 내일 7시에 강남에서 저녁 먹자")

	assert.Equal(t, "강남", it.Location)
	assert.Equal(t, "19:00", it.Time, "저녁 context lifts 7시 to the evening")

	clockNoise := heuristicExtract(t, "내일 5시에서 6시 사이 어때")
	assert.Empty(t, clockNoise.Location, "clock text is not a place")
}

func TestHeuristic_SmallTalkIsNotARequest(t *testing.T) {
	for _, text := range []string{
		"오늘 날씨 어때?",
		"고마워!",
		"아까는 미안했어",
	} {
		it := heuristicExtract(t, text)
		assert.False(t, it.HasScheduleRequest, "%q must not read as a scheduling request", text)
		assert.Empty(t, it.MissingFields)
	}
}

func TestHeuristic_KeywordAloneIsARequest(t *testing.T) {
	it := heuristicExtract(t, "저녁 먹자")

	assert.True(t, it.HasScheduleRequest)
	assert.Equal(t, []string{"date", "time", "friend_name"}, it.MissingFields)
}

func TestHeuristic_WeekendResolvesToSaturday(t *testing.T) {
	it := heuristicExtract(t, "수지, 민정이랑 주말에 브런치 먹자")

	assert.Equal(t, "2025-12-20", it.Date)
	assert.Equal(t, "브런치", it.Activity)
	assert.Equal(t, []string{"수지", "민정"}, it.FriendNames)
}
