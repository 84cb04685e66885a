package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/moim-labs/moim/ent"
	"github.com/moim-labs/moim/pkg/agent"
	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

// anyTimeCondition labels a candidate whose whole working day is shared.
const anyTimeCondition = "시간 무관"

// maxCandidates is how many dates one recommendation offers.
const maxCandidates = 3

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// recommendHourMinutes is the slot granularity for candidate scoring. The
// coverage sets count whole startable hours, so agents here load with a
// one-hour minimum; the negotiation re-validates the real duration after
// the user picks a date.
const recommendHourMinutes = 60

// recommend handles a companioned request whose date is a range or still
// open: load every participant's availability for the window, score each
// day, and offer the top picks with a derived time condition.
func (o *Orchestrator) recommend(ctx context.Context, t *turn, it *models.Intent, friends []*ent.User) (*reply, error) {
	loc := o.cfg.Location()
	today := civilDay(t.now)

	from, to := o.recommendWindow(it, today, loc)
	if from.Before(today) {
		from = today
	}
	if !from.Before(to) {
		return &reply{text: "그 기간은 이미 지나갔어요. 앞으로의 날짜로 다시 알려주시겠어요?"}, nil
	}

	self, err := o.users.GetUser(ctx, t.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requester: %w", err)
	}
	participants := append([]*ent.User{self}, friends...)

	type coverage struct {
		user  *ent.User
		hours map[string]map[int]bool // civil date → startable whole hours
	}
	window := schedule.TimeSlot{Start: from, End: to}
	covered := make([]coverage, 0, len(participants))
	for _, u := range participants {
		ag := o.agents.Agent(t.chatID, agent.Participant{UserID: u.ID, DisplayName: u.Name}, window, recommendHourMinutes)
		if err := ag.EnsureAvailability(ctx); err != nil {
			o.logger.Warn("Excluding participant with unreadable calendar",
				"user_id", u.ID, "error", err)
			continue
		}
		covered = append(covered, coverage{user: u, hours: hourCoverage(ag.FreeSlots(), loc)})
	}

	prefHour, hasPref := preferredHour(t, it)

	type scored struct {
		cand  models.RecommendationCandidate
		score int
		day   time.Time
	}
	var ranked []scored
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		key := schedule.FormatDate(day)
		var avail []coverage
		for _, c := range covered {
			if len(c.hours[key]) > 0 {
				avail = append(avail, c)
			}
		}
		if len(avail) == 0 {
			continue
		}

		sets := make([]map[int]bool, 0, len(avail))
		names := make([]string, 0, len(avail))
		for _, c := range avail {
			sets = append(sets, c.hours[key])
			names = append(names, c.user.Name)
		}
		shared := sharedHours(sets)
		all := len(avail) == len(participants)

		score := 10 * len(avail)
		if all {
			score += 100
		}
		if hasPref && containsHour(shared, prefHour) {
			score += 20
		}

		ranked = append(ranked, scored{
			cand: models.RecommendationCandidate{
				Date:           key,
				TimeCondition:  deriveTimeCondition(shared),
				AvailableCount: len(avail),
				AllAvailable:   all,
				Participants:   names,
			},
			score: score,
			day:   day,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].day.Before(ranked[j].day)
	})
	if len(ranked) > maxCandidates {
		ranked = ranked[:maxCandidates]
	}
	if len(ranked) == 0 {
		return &reply{text: "그 기간에는 다 같이 모일 수 있는 날을 찾지 못했어요. 다른 기간으로 알려주시겠어요?"}, nil
	}

	var b strings.Builder
	b.WriteString("함께 모일 수 있는 날을 찾아봤어요! 번호나 날짜로 골라주세요.\n")
	cands := make([]models.RecommendationCandidate, 0, len(ranked))
	for i, r := range ranked {
		cands = append(cands, r.cand)
		line := fmt.Sprintf("%d. %d월 %d일(%s) - ",
			i+1, int(r.day.Month()), r.day.Day(), koreanWeekdays[r.day.Weekday()])
		if r.cand.AllAvailable {
			line += "모두 가능"
		} else {
			line += strings.Join(r.cand.Participants, ", ") + " 가능"
		}
		if r.cand.TimeCondition != "" && r.cand.TimeCondition != anyTimeCondition {
			line += ", " + r.cand.TimeCondition
		}
		b.WriteString(line)
		if i < len(ranked)-1 {
			b.WriteString("\n")
		}
	}

	stash := models.RecommendationMetadata{
		RecommendationMode: true,
		Candidates:         cands,
		FriendIDs:          userIDsOf(friends),
		FriendNames:        userNamesOf(friends),
		Activity:           it.Activity,
	}
	return &reply{text: b.String(), metadata: stash.ToMap()}, nil
}

// recommendWindow resolves the requested range to half-open civil days; an
// absent or unreadable range selects the planning horizon.
func (o *Orchestrator) recommendWindow(it *models.Intent, today time.Time, loc *time.Location) (time.Time, time.Time) {
	if it.HasDateRange() {
		from, err1 := schedule.ParseDate(it.StartDate, loc)
		to, err2 := schedule.ParseDate(it.EndDate, loc)
		if err1 == nil && err2 == nil {
			return from, to.AddDate(0, 0, 1)
		}
	}
	return today, today.AddDate(0, 0, o.cfg.PlanningHorizonDays)
}

// hourCoverage maps each civil day to the whole hours a meeting could start
// at: hour h is covered when one free slot contains [h:00, h+1:00).
func hourCoverage(free []schedule.TimeSlot, loc *time.Location) map[string]map[int]bool {
	out := make(map[string]map[int]bool)
	for _, s := range free {
		day := civilDay(s.Start.In(loc))
		key := schedule.FormatDate(day)
		for h := schedule.WorkdayStartHour; h < schedule.WorkdayEndHour; h++ {
			hs := time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, loc)
			if s.ContainsSlot(schedule.TimeSlot{Start: hs, End: hs.Add(time.Hour)}) {
				if out[key] == nil {
					out[key] = make(map[int]bool)
				}
				out[key][h] = true
			}
		}
	}
	return out
}

// sharedHours intersects the coverage sets, ascending.
func sharedHours(sets []map[int]bool) []int {
	var shared []int
	for h := schedule.WorkdayStartHour; h < schedule.WorkdayEndHour; h++ {
		ok := true
		for _, set := range sets {
			if !set[h] {
				ok = false
				break
			}
		}
		if ok {
			shared = append(shared, h)
		}
	}
	return shared
}

// deriveTimeCondition labels the shared startable hours. A contiguous run
// touching a workday edge reads as an open bound; anything else reads as a
// closed range over its extremes.
func deriveTimeCondition(shared []int) string {
	if len(shared) == 0 {
		return ""
	}
	lo, hi := shared[0], shared[len(shared)-1]
	contiguous := len(shared) == hi-lo+1
	switch {
	case contiguous && lo == schedule.WorkdayStartHour && hi == schedule.WorkdayEndHour-1:
		return anyTimeCondition
	case contiguous && hi == schedule.WorkdayEndHour-1:
		return fmt.Sprintf("%d시 이후", lo)
	case contiguous && lo == schedule.WorkdayStartHour:
		return fmt.Sprintf("%d시 이전", hi+1)
	default:
		return fmt.Sprintf("%d~%d시", lo, hi)
	}
}

// preferredHour anchors the score bonus: an explicit clock in the request
// wins, then the evening cue's dinner hour.
func preferredHour(t *turn, it *models.Intent) (int, bool) {
	if clock := clockOf(it); clock != "" {
		if h, _, err := schedule.ParseClock(clock); err == nil {
			return h, true
		}
	}
	if schedule.HasEveningContext(t.text) {
		return 19, true
	}
	return 0, false
}

func containsHour(hours []int, h int) bool {
	for _, x := range hours {
		if x == h {
			return true
		}
	}
	return false
}

func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func userIDsOf(users []*ent.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func userNamesOf(users []*ent.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}
