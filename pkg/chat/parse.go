package chat

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/moim-labs/moim/pkg/models"
	"github.com/moim-labs/moim/pkg/schedule"
)

// shortConfirms are the bare acknowledgements that accept a pending offer.
var shortConfirms = map[string]bool{
	"응": true, "어": true, "네": true, "예": true, "넵": true, "네네": true,
	"그래": true, "좋아": true, "좋아요": true, "좋지": true, "콜": true,
	"오케이": true, "ㅇㅋ": true, "ok": true, "okay": true, "yes": true,
}

// isShortConfirm reports whether the text is nothing but an agreement.
func isShortConfirm(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.TrimRight(t, "!.~? ")
	return shortConfirms[t]
}

var (
	reOrdinalDigit = regexp.MustCompile(`(\d{1,2})\s*번째`)
	rePickNumber   = regexp.MustCompile(`(\d{1,2})\s*번(?:$|[^째])`)
	reBareNumber   = regexp.MustCompile(`^\s*(\d{1,2})\s*$`)
)

var koreanOrdinals = []string{"첫", "두", "세", "네"}

// pickCandidate matches the user's answer against the offered candidate
// dates: an explicit date wins, then ordinal words, then bare numbers.
// Returns -1 when nothing matches, so the caller falls through to fresh
// extraction.
func pickCandidate(text string, cands []models.RecommendationCandidate, now time.Time) int {
	if len(cands) == 0 {
		return -1
	}

	if day, ok := schedule.ParseDateExpression(text, now); ok {
		key := schedule.FormatDate(day)
		for i, c := range cands {
			if c.Date == key {
				return i
			}
		}
	}

	if m := reOrdinalDigit.FindStringSubmatch(text); m != nil {
		return indexIfOffered(m[1], cands)
	}
	for i, w := range koreanOrdinals {
		if strings.Contains(text, w+"번째") || strings.Contains(text, w+" 번째") {
			if i < len(cands) {
				return i
			}
			return -1
		}
	}
	if m := rePickNumber.FindStringSubmatch(text); m != nil {
		return indexIfOffered(m[1], cands)
	}
	if m := reBareNumber.FindStringSubmatch(text); m != nil {
		return indexIfOffered(m[1], cands)
	}
	return -1
}

// indexIfOffered converts a 1-based pick to an index bounded by the offer.
func indexIfOffered(digits string, cands []models.RecommendationCandidate) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > len(cands) {
		return -1
	}
	return n - 1
}
