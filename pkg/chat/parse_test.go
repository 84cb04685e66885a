package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moim-labs/moim/pkg/models"
)

func TestIsShortConfirm(t *testing.T) {
	yes := []string{"응", "어", "네", "네~", "넵!", "그래.", "좋아!", "좋아요~~", " 콜 ", "OK", "ㅇㅋ", "yes"}
	for _, s := range yes {
		assert.True(t, isShortConfirm(s), "%q should confirm", s)
	}

	no := []string{"", "아니", "좋은데 몇시?", "응 근데 내일은 안돼", "네 시", "오케이콜라"}
	for _, s := range no {
		assert.False(t, isShortConfirm(s), "%q should not confirm", s)
	}
}

func TestPickCandidate(t *testing.T) {
	cands := []models.RecommendationCandidate{
		{Date: "2025-12-24"},
		{Date: "2025-12-25"},
		{Date: "2025-12-26"},
	}

	tests := []struct {
		text string
		want int
	}{
		{"12월 25일로 하자", 1},
		{"12/26", 2},
		{"첫 번째", 0},
		{"두번째가 좋아", 1},
		{"2번째", 1},
		{"2번으로 하자", 1},
		{"3번", 2},
		{"2", 1},
		{" 1 ", 0},
		{"5번", -1},      // only three were offered
		{"0", -1},       // picks are 1-based
		{"내일로 하자", -1},  // a date that was never offered
		{"그냥 아무때나", -1}, // nothing resembling a pick
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, pickCandidate(tt.text, cands, testNow))
		})
	}
}

func TestPickCandidate_EmptyOffer(t *testing.T) {
	assert.Equal(t, -1, pickCandidate("1", nil, testNow))
}
