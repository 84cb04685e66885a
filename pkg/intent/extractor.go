// Package intent turns one user utterance into a structured scheduling
// intent. The LLM is tried first with a strict-JSON prompt; any failure —
// transport, missing JSON, bad shape — falls back to deterministic Korean
// heuristics covering the same patterns, so extraction is total.
//
// Everything the model returns is re-validated in code: dates and times are
// re-parsed, and a friend name survives only if it literally occurs in the
// utterance. Names are never fabricated.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/moim-labs/moim/pkg/llm"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

// Input is one utterance plus its extraction context.
type Input struct {
	Text string
	// Now anchors relative date expressions; zero means the wall clock.
	Now time.Time
	// FriendsSelected reports whether the UI already picked participants;
	// it suppresses the friend_name missing slot.
	FriendsSelected bool
}

// Extractor derives models.Intent from chat messages.
type Extractor struct {
	llm    llm.Client
	loc    *time.Location
	logger *slog.Logger
}

// NewExtractor creates an intent extractor. A nil client selects
// heuristics-only mode.
func NewExtractor(client llm.Client, loc *time.Location) *Extractor {
	return &Extractor{
		llm:    client,
		loc:    loc,
		logger: slog.Default().With("component", "intent"),
	}
}

// Extract reads the utterance. It never fails: the deterministic heuristic
// answers whenever the model cannot.
func (e *Extractor) Extract(ctx context.Context, in Input) *models.Intent {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(e.loc)

	if e.llm != nil {
		it, err := e.extractLLM(ctx, in.Text, now)
		if err == nil {
			return e.finalize(it, in)
		}
		e.logger.Warn("LLM intent extraction failed, using heuristics", "error", err)
	}
	return e.finalize(e.heuristic(in.Text, now), in)
}

// wireIntent tolerates the duration fields some completions add; they fold
// into the range fields.
type wireIntent struct {
	models.Intent
	DurationMinutes int `json:"duration_minutes"`
	DurationNights  int `json:"duration_nights"`
}

func (e *Extractor) extractLLM(ctx context.Context, text string, now time.Time) (*models.Intent, error) {
	raw, err := e.llm.Complete(ctx, e.prompt(text, now), llm.Options{Temperature: 0.1, MaxTokens: 400})
	if err != nil {
		return nil, err
	}

	jsonStr, ok := llm.ExtractJSON(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object in completion")
	}
	var wire wireIntent
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return nil, fmt.Errorf("decode intent: %w", err)
	}

	it := wire.Intent
	e.normalize(&it, text, now)
	foldDurations(&it, wire.DurationMinutes, wire.DurationNights, now, e.loc)
	return &it, nil
}

func (e *Extractor) prompt(text string, now time.Time) []llm.Message {
	system := fmt.Sprintf(
		"당신은 일정 조율 비서의 의도 분석기입니다. 사용자 메시지에서 일정 정보를 추출해 JSON 객체 하나만 출력하세요.\n"+
			"오늘은 %s (%s)입니다. 상대적 날짜는 이 기준으로 변환하세요.\n"+
			"규칙:\n"+
			"- 사용자가 실제로 말한 것만 추출하세요. 이름이 없으면 friend_names는 null입니다. 절대 지어내지 마세요.\n"+
			"- 날짜는 YYYY-MM-DD, 시간은 24시간 HH:MM 형식.\n"+
			"- 1~6시는 오후로, 7~11시는 저녁 맥락일 때만 오후로 해석하세요.\n"+
			"- has_schedule_request는 약속이나 일정을 잡으려는 의도가 있을 때만 true입니다.\n"+
			"스키마: {\"friend_names\": [\"이름\"], \"date\": \"YYYY-MM-DD\", \"start_date\": \"...\", \"end_date\": \"...\", "+
			"\"time\": \"HH:MM\", \"start_time\": \"...\", \"end_time\": \"...\", \"activity\": \"...\", \"title\": \"...\", "+
			"\"location\": \"...\", \"duration_minutes\": 0, \"duration_nights\": 0, \"has_schedule_request\": false}\n"+
			"해당 없는 필드는 null로 두세요.",
		schedule.FormatDate(now), koreanWeekday(now))

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: text},
	}
}

// normalize re-validates every model-supplied field. Unparseable values are
// dropped, Korean expressions are resolved, and names must occur verbatim in
// the utterance.
func (e *Extractor) normalize(it *models.Intent, text string, now time.Time) {
	it.Date = e.normDate(it.Date, now)
	it.StartDate = e.normDate(it.StartDate, now)
	it.EndDate = e.normDate(it.EndDate, now)

	evening := schedule.HasEveningContext(text)
	it.Time = e.normTime(it.Time, evening)
	it.StartTime = e.normTime(it.StartTime, evening)
	it.EndTime = e.normTime(it.EndTime, evening)

	var kept []string
	for _, name := range it.Friends() {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !strings.Contains(text, name) {
			e.logger.Warn("Dropping friend name absent from the utterance", "name", name)
			continue
		}
		kept = append(kept, name)
	}
	it.FriendNames = kept
	it.FriendName = ""

	it.Activity = strings.TrimSpace(it.Activity)
	it.Title = strings.TrimSpace(it.Title)
	it.Location = strings.TrimSpace(it.Location)
}

func (e *Extractor) normDate(s string, now time.Time) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if d, err := schedule.ParseDate(s, e.loc); err == nil {
		return schedule.FormatDate(d)
	}
	if d, ok := schedule.ParseDateExpression(s, now); ok {
		return schedule.FormatDate(d)
	}
	e.logger.Warn("Dropping unparseable date", "value", s)
	return ""
}

func (e *Extractor) normTime(s string, evening bool) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if h, m, ok := schedule.ParseTimeExpression(s, evening); ok {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	if h, m, err := schedule.ParseClock(s); err == nil {
		if !strings.Contains(s, ":") && h >= 1 && h <= 12 {
			h = schedule.InferMeridiem(h, evening)
		}
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	e.logger.Warn("Dropping unparseable time", "value", s)
	return ""
}

// foldDurations rewrites "N시간"/"N박" style durations into the range fields
// the intent record actually carries.
func foldDurations(it *models.Intent, minutes, nights int, now time.Time, loc *time.Location) {
	if nights > 0 && it.EndDate == "" {
		anchor := it.StartDate
		if anchor == "" {
			anchor = it.Date
		}
		if anchor != "" {
			if d, err := schedule.ParseDate(anchor, loc); err == nil {
				it.StartDate = anchor
				it.EndDate = schedule.FormatDate(d.AddDate(0, 0, nights))
				it.Date = ""
			}
		}
	}
	if minutes > 0 && it.EndTime == "" && it.Time != "" {
		if h, m, err := schedule.ParseClock(it.Time); err == nil {
			start := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, loc)
			end := start.Add(time.Duration(minutes) * time.Minute)
			it.StartTime = it.Time
			it.EndTime = schedule.FormatClock(end)
			it.Time = ""
		}
	}
}

// finalize owns the derived fields regardless of which path produced the
// intent: the single/plural name fold and the missing-slot computation are
// never taken from the model.
func (e *Extractor) finalize(it *models.Intent, in Input) *models.Intent {
	if len(it.FriendNames) == 0 && it.FriendName != "" {
		it.FriendNames = []string{it.FriendName}
	}
	if len(it.FriendNames) > 0 {
		it.FriendName = it.FriendNames[0]
	} else {
		it.FriendName = ""
	}

	it.RecomputeMissing(in.FriendsSelected)
	return it
}

func koreanWeekday(t time.Time) string {
	names := [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}
	return names[int(t.Weekday())]
}
