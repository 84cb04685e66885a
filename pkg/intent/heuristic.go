package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

var (
	reDurationHours = regexp.MustCompile(`(\d{1,2})\s*시간`)
	reNights        = regexp.MustCompile(`(\d{1,2})박`)
	// a comma list of 2–4 syllable names ending in a companion particle
	reFriendGroup = regexp.MustCompile(`((?:[가-힣]{2,4}\s*,\s*)*[가-힣]{2,4})(와|과|랑|이랑|하고)(?:[^가-힣]|$)`)
	reLocation    = regexp.MustCompile(`([가-힣A-Za-z0-9]{2,})에서`)
	reBareDay     = regexp.MustCompile(`^\s*(\d{1,2})일`)
	// "5시에서 6시 사이" style clock text is not a place
	reCalendarWord = regexp.MustCompile(`^\d+$|\d+\s*(시|일|월|분)$`)
)

// scheduleKeywords mark an utterance as a scheduling request on their own.
// Deliberately conservative: generic verbs ("하자", "어때") trip on small talk.
var scheduleKeywords = []string{
	"잡아", "잡자", "잡을", "약속", "만나", "만날", "보자", "볼까", "볼래",
	"먹자", "먹을까", "먹을래", "예약", "모임", "갈래", "갈까", "가자",
}

// activityWords name the shared activity; compounds precede their parts so
// "저녁 식사" wins over "저녁".
var activityWords = []string{
	"저녁 식사", "점심 식사", "술 한잔", "보드게임",
	"저녁", "점심", "아침", "브런치", "커피", "식사", "영화", "여행", "운동",
	"골프", "등산", "산책", "드라이브", "쇼핑", "노래방", "맥주", "와인",
	"게임", "전시", "공연", "콘서트", "술",
}

// appointmentWords name personal errands; they become the event title and mark
// the intent as a solo booking.
var appointmentWords = []string{
	"치과", "병원", "미용실", "은행", "회의", "미팅", "면접", "세미나",
	"학원", "수업", "상담", "검진", "정비소",
}

// nameStoplist holds particle-bearing words that are never friend names:
// group nouns, date words, and the activity/errand vocabulary.
var nameStoplist = buildNameStoplist()

func buildNameStoplist() map[string]bool {
	m := map[string]bool{
		"친구": true, "친구들": true, "우리": true, "가족": true, "부모님": true,
		"동료": true, "동료들": true, "팀원": true, "팀원들": true, "모두": true,
		"다같이": true, "애들": true, "누구": true,
		"내일": true, "오늘": true, "모레": true, "주말": true, "다음주": true,
	}
	for _, w := range activityWords {
		m[w] = true
	}
	for _, w := range appointmentWords {
		m[w] = true
	}
	return m
}

// heuristic is the deterministic extraction path. It reuses the shared Korean
// parsers so an utterance resolves identically here and in slot filling.
func (e *Extractor) heuristic(text string, now time.Time) *models.Intent {
	it := &models.Intent{}
	work := text

	// strip durations first so "3시간" never reads as a 3시 clock time
	durMin := 0
	if m := reDurationHours.FindStringSubmatch(work); m != nil {
		n, _ := strconv.Atoi(m[1])
		durMin = n * 60
		work = strings.Replace(work, m[0], " ", 1)
	}
	nights := 0
	if m := reNights.FindStringSubmatch(work); m != nil {
		n, _ := strconv.Atoi(m[1])
		nights = n
		work = strings.Replace(work, m[0], " ", 1)
	}

	it.FriendNames = extractFriendNames(work)

	// dates: month-scoped ranges, then 부터/까지 spans, then a single day
	if from, to, ok := schedule.ParseDateRangeExpression(work, now); ok {
		it.StartDate = schedule.FormatDate(from)
		it.EndDate = schedule.FormatDate(to.AddDate(0, 0, -1))
	} else if sd, ed, ok := dateRangeAround(work, now); ok {
		it.StartDate = schedule.FormatDate(sd)
		it.EndDate = schedule.FormatDate(ed)
	} else if d, ok := schedule.ParseDateExpression(work, now); ok {
		it.Date = schedule.FormatDate(d)
	}

	evening := schedule.HasEveningContext(text)
	if sh, sm, eh, em, ok := schedule.ParseTimeRangeExpression(work, evening); ok {
		it.StartTime = fmt.Sprintf("%02d:%02d", sh, sm)
		it.EndTime = fmt.Sprintf("%02d:%02d", eh, em)
	} else if h, m, ok := schedule.ParseTimeExpression(work, evening); ok {
		it.Time = fmt.Sprintf("%02d:%02d", h, m)
	}

	foldDurations(it, durMin, nights, now, e.loc)

	it.Activity = firstContained(work, activityWords)
	it.Title = firstContained(work, appointmentWords)
	for _, m := range reLocation.FindAllStringSubmatch(work, -1) {
		if reCalendarWord.MatchString(m[1]) {
			continue
		}
		it.Location = m[1]
		break
	}

	it.HasScheduleRequest = containsAny(text, scheduleKeywords) ||
		(it.HasDate() && it.HasTime()) ||
		(len(it.FriendNames) > 0 && (it.HasDate() || it.HasTime() || it.Activity != "")) ||
		(it.HasDate() && it.Activity != "") ||
		(nights > 0 && it.HasDate())

	return it
}

// extractFriendNames pulls companion-particle names ("철수와", "영희랑",
// "수지, 민정이랑"). The euphonic 이 before 랑 is stripped from the particle
// bearer ("민정이랑" names 민정).
func extractFriendNames(text string) []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range reFriendGroup.FindAllStringSubmatch(text, -1) {
		parts := strings.Split(m[1], ",")
		for i, part := range parts {
			name := strings.TrimSpace(part)
			last := i == len(parts)-1
			if last && m[2] == "랑" && strings.HasSuffix(name, "이") && utf8.RuneCountInString(name) > 2 {
				name = strings.TrimSuffix(name, "이")
			}
			if name == "" || nameStoplist[name] || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// dateRangeAround resolves "X부터 Y까지" date spans. A bare day number after
// 부터 inherits the start's month ("12월 19일부터 21일까지").
func dateRangeAround(text string, now time.Time) (start, end time.Time, ok bool) {
	i := strings.Index(text, "부터")
	if i < 0 {
		return time.Time{}, time.Time{}, false
	}
	rest := text[i+len("부터"):]
	j := strings.Index(rest, "까지")
	if j < 0 {
		return time.Time{}, time.Time{}, false
	}

	start, ok = schedule.ParseDateExpression(text[:i], now)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	mid := rest[:j]
	end, ok = schedule.ParseDateExpression(mid, now)
	if !ok {
		m := reBareDay.FindStringSubmatch(mid)
		if m == nil {
			return time.Time{}, time.Time{}, false
		}
		d, _ := strconv.Atoi(m[1])
		end = time.Date(start.Year(), start.Month(), d, 0, 0, 0, 0, start.Location())
		if end.Day() != d {
			return time.Time{}, time.Time{}, false
		}
		if end.Before(start) {
			end = end.AddDate(0, 1, 0)
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func firstContained(text string, words []string) string {
	for _, w := range words {
		if strings.Contains(text, w) {
			return w
		}
	}
	return ""
}

func containsAny(text string, words []string) bool {
	return firstContained(text, words) != ""
}
