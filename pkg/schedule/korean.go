package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Korean date/time expression parsing. The same rules back both the intent
// heuristics and proposal normalization, so a "내일 오후 6시" utterance and a
// "내일"/"18:00" slot-filled pair resolve identically.

var (
	reISODate    = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	reMonthDay   = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	reSlashDate  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
	reWeekday    = regexp.MustCompile(`(다음\s*주|담주|이번\s*주|이번주)?\s*(월|화|수|목|금|토|일)요일`)
	reClock      = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	reKoreanTime = regexp.MustCompile(`(오전|오후|아침|저녁|밤|점심|낮)?\s*(\d{1,2})시\s*(반|(\d{1,2})분)?`)
	reTimeRange  = regexp.MustCompile(`(오전|오후|아침|저녁|밤)?\s*(\d{1,2})시\s*(반)?\s*부터\s*(오전|오후|아침|저녁|밤)?\s*(\d{1,2})시\s*(반)?\s*까지`)
	reClockRange = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[~-]\s*(\d{1,2}):(\d{2})`)
	reMonthAbout = regexp.MustCompile(`(\d{1,2})월\s*(중|중에|쯤|경)`)
)

var weekdayIndex = map[string]time.Weekday{
	"일": time.Sunday, "월": time.Monday, "화": time.Tuesday, "수": time.Wednesday,
	"목": time.Thursday, "금": time.Friday, "토": time.Saturday,
}

var eveningWords = []string{"저녁", "밤", "오후", "술", "회식", "퇴근", "야식", "디너", "저녁약속"}

// HasEveningContext reports whether the text carries an evening cue. The cue
// drives the 7–11 bare-hour meridiem rule.
func HasEveningContext(text string) bool {
	for _, w := range eveningWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// InferMeridiem converts a bare 12-hour figure to 24-hour form:
// 1–6 are afternoon/evening hours, 7–11 depend on context, 12 is noon.
// Hours 0 and 13–23 are already unambiguous.
func InferMeridiem(hour int, evening bool) int {
	switch {
	case hour >= 1 && hour <= 6:
		return hour + 12
	case hour >= 7 && hour <= 11:
		if evening {
			return hour + 12
		}
		return hour
	case hour == 12:
		return 12
	default:
		return hour
	}
}

func applyMeridiem(qualifier string, hour int, evening bool) int {
	switch qualifier {
	case "오전", "아침":
		if hour == 12 {
			return 0
		}
		return hour
	case "오후", "저녁", "밤":
		if hour < 12 {
			return hour + 12
		}
		return hour
	case "점심", "낮":
		if hour >= 1 && hour <= 6 {
			return hour + 12
		}
		return hour
	default:
		return InferMeridiem(hour, evening)
	}
}

// ParseDateExpression resolves one date expression ("내일", "다음주 금요일",
// "12월 17일", "2025-12-17", "12/17", "주말") against now. The result is
// midnight in now's location.
func ParseDateExpression(expr string, now time.Time) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}
	today := startOfDay(now)

	switch {
	case strings.Contains(expr, "오늘"):
		return today, true
	case strings.Contains(expr, "내일"):
		return today.AddDate(0, 0, 1), true
	case strings.Contains(expr, "모레"):
		return today.AddDate(0, 0, 2), true
	case strings.Contains(expr, "글피"):
		return today.AddDate(0, 0, 3), true
	}

	if m := reISODate.FindStringSubmatch(expr); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if t, ok := civilDate(y, mo, d, now.Location()); ok {
			return t, true
		}
	}
	if m := reMonthDay.FindStringSubmatch(expr); m != nil {
		mo, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		return nextOccurrence(mo, d, today)
	}
	if m := reSlashDate.FindStringSubmatch(expr); m != nil {
		mo, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		return nextOccurrence(mo, d, today)
	}
	if m := reWeekday.FindStringSubmatch(expr); m != nil {
		wd := weekdayIndex[m[2]]
		qualifier := strings.ReplaceAll(m[1], " ", "")
		switch qualifier {
		case "다음주", "담주":
			return weekdayOfWeek(today, wd, 1), true
		case "이번주":
			return weekdayOfWeek(today, wd, 0), true
		default:
			delta := (int(wd) - int(today.Weekday()) + 7) % 7
			return today.AddDate(0, 0, delta), true
		}
	}
	if strings.Contains(expr, "주말") {
		delta := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, delta), true
	}
	return time.Time{}, false
}

// ParseDateRangeExpression resolves month-scoped expressions ("12월 중",
// "이번 달", "다음 주") to a half-open civil-day range.
func ParseDateRangeExpression(expr string, now time.Time) (from, to time.Time, ok bool) {
	today := startOfDay(now)
	loc := now.Location()

	if m := reMonthAbout.FindStringSubmatch(expr); m != nil {
		mo, _ := strconv.Atoi(m[1])
		if mo < 1 || mo > 12 {
			return time.Time{}, time.Time{}, false
		}
		year := today.Year()
		if mo < int(today.Month()) {
			year++
		}
		from = time.Date(year, time.Month(mo), 1, 0, 0, 0, 0, loc)
		if mo == int(today.Month()) && year == today.Year() {
			from = today
		}
		return from, time.Date(year, time.Month(mo), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0), true
	}
	if strings.Contains(expr, "이번달") || strings.Contains(expr, "이번 달") {
		return today, time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0), true
	}
	cleaned := strings.ReplaceAll(expr, " ", "")
	if (strings.Contains(cleaned, "다음주") || strings.Contains(cleaned, "담주")) && !reWeekday.MatchString(expr) {
		monday := weekdayOfWeek(today, time.Monday, 1)
		return monday, monday.AddDate(0, 0, 7), true
	}
	return time.Time{}, time.Time{}, false
}

// ParseTimeExpression resolves one time expression ("오후 3시 반", "15:30",
// "7시", "정오") to 24-hour clock parts. evening supplies the bare-hour
// context from the surrounding utterance.
func ParseTimeExpression(expr string, evening bool) (hour, minute int, ok bool) {
	expr = strings.TrimSpace(expr)
	switch {
	case strings.Contains(expr, "정오"):
		return 12, 0, true
	case strings.Contains(expr, "자정"):
		return 0, 0, true
	}
	if m := reClock.FindStringSubmatch(expr); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		if h <= 23 && mi <= 59 {
			return h, mi, true
		}
	}
	if m := reKoreanTime.FindStringSubmatch(expr); m != nil {
		h, _ := strconv.Atoi(m[2])
		if h > 23 {
			return 0, 0, false
		}
		mi := 0
		if m[3] == "반" {
			mi = 30
		} else if m[4] != "" {
			mi, _ = strconv.Atoi(m[4])
			if mi > 59 {
				return 0, 0, false
			}
		}
		if h <= 12 {
			h = applyMeridiem(m[1], h, evening || HasEveningContext(expr))
		}
		return h, mi, true
	}
	return 0, 0, false
}

// ParseTimeRangeExpression resolves "3시부터 5시까지" / "15:00~17:00" style
// ranges. The end inherits the start's resolved meridiem when that keeps the
// range forward (e.g. "3시부터 5시까지" → 15:00–17:00).
func ParseTimeRangeExpression(expr string, evening bool) (startH, startM, endH, endM int, ok bool) {
	if m := reClockRange.FindStringSubmatch(expr); m != nil {
		sh, _ := strconv.Atoi(m[1])
		sm, _ := strconv.Atoi(m[2])
		eh, _ := strconv.Atoi(m[3])
		em, _ := strconv.Atoi(m[4])
		if sh <= 23 && eh <= 23 && sm <= 59 && em <= 59 {
			return sh, sm, eh, em, true
		}
	}
	if m := reTimeRange.FindStringSubmatch(expr); m != nil {
		sh, _ := strconv.Atoi(m[2])
		eh, _ := strconv.Atoi(m[5])
		sm, em := 0, 0
		if m[3] == "반" {
			sm = 30
		}
		if m[6] == "반" {
			em = 30
		}
		if sh <= 12 {
			sh = applyMeridiem(m[1], sh, evening)
		}
		if eh <= 12 {
			eh = applyMeridiem(m[4], eh, evening)
		}
		// keep the range forward when the bare end hour landed before the start
		if eh < sh && eh+12 <= 23 {
			eh += 12
		}
		if sh <= 23 && eh <= 23 {
			return sh, sm, eh, em, true
		}
	}
	return 0, 0, 0, 0, false
}

func civilDate(y, mo, d int, loc *time.Location) (time.Time, bool) {
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, loc)
	if int(t.Month()) != mo || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// nextOccurrence resolves a month/day pair with year inference: the nearest
// occurrence that is not in the past.
func nextOccurrence(mo, d int, today time.Time) (time.Time, bool) {
	t, ok := civilDate(today.Year(), mo, d, today.Location())
	if !ok {
		return time.Time{}, false
	}
	if t.Before(today) {
		t, ok = civilDate(today.Year()+1, mo, d, today.Location())
		if !ok {
			return time.Time{}, false
		}
	}
	return t, true
}

// weekdayOfWeek returns the given weekday of today's week plus weekOffset
// weeks. Weeks start on Monday.
func weekdayOfWeek(today time.Time, wd time.Weekday, weekOffset int) time.Time {
	daysFromMonday := (int(today.Weekday()) - int(time.Monday) + 7) % 7
	monday := today.AddDate(0, 0, -daysFromMonday+7*weekOffset)
	offset := (int(wd) - int(time.Monday) + 7) % 7
	return monday.AddDate(0, 0, offset)
}
