package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday 2025-12-16 10:00 KST. Weekday arithmetic below depends on it.
func fixedNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 12, 16, 10, 0, 0, 0, kst)
}

func TestParseDateExpression(t *testing.T) {
	now := fixedNow(t)

	tests := []struct {
		expr string
		want time.Time
	}{
		{"오늘", day(t, 2025, time.December, 16)},
		{"내일", day(t, 2025, time.December, 17)},
		{"모레", day(t, 2025, time.December, 18)},
		{"글피", day(t, 2025, time.December, 19)},
		{"이번주 금요일", day(t, 2025, time.December, 19)},
		{"다음주 금요일", day(t, 2025, time.December, 26)},
		{"다음 주 월요일", day(t, 2025, time.December, 22)},
		{"금요일", day(t, 2025, time.December, 19)},
		{"화요일", day(t, 2025, time.December, 16)},
		{"12월 25일", day(t, 2025, time.December, 25)},
		{"12월25일", day(t, 2025, time.December, 25)},
		{"1월 5일", day(t, 2026, time.January, 5)},
		{"12/17", day(t, 2025, time.December, 17)},
		{"2025-12-30", day(t, 2025, time.December, 30)},
		{"주말", day(t, 2025, time.December, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, ok := ParseDateExpression(tt.expr, now)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unparseable", func(t *testing.T) {
		_, ok := ParseDateExpression("언젠가 한가할 때", now)
		assert.False(t, ok)
	})

	t.Run("invalid calendar date", func(t *testing.T) {
		_, ok := ParseDateExpression("2월 30일", now)
		assert.False(t, ok)
	})
}

func TestParseDateRangeExpression(t *testing.T) {
	now := fixedNow(t)

	t.Run("current month starts today", func(t *testing.T) {
		from, to, ok := ParseDateRangeExpression("12월 중", now)
		require.True(t, ok)
		assert.Equal(t, day(t, 2025, time.December, 16), from)
		assert.Equal(t, day(t, 2026, time.January, 1), to)
	})

	t.Run("future month spans the month", func(t *testing.T) {
		from, to, ok := ParseDateRangeExpression("1월 중에", now)
		require.True(t, ok)
		assert.Equal(t, day(t, 2026, time.January, 1), from)
		assert.Equal(t, day(t, 2026, time.February, 1), to)
	})

	t.Run("next week", func(t *testing.T) {
		from, to, ok := ParseDateRangeExpression("다음주에 보자", now)
		require.True(t, ok)
		assert.Equal(t, day(t, 2025, time.December, 22), from)
		assert.Equal(t, day(t, 2025, time.December, 29), to)
	})

	t.Run("next week with a weekday is not a range", func(t *testing.T) {
		_, _, ok := ParseDateRangeExpression("다음주 금요일", now)
		assert.False(t, ok)
	})
}

func TestParseTimeExpression(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		evening  bool
		wantHour int
		wantMin  int
	}{
		{"explicit pm", "오후 3시", false, 15, 0},
		{"explicit pm half", "오후 3시 반", false, 15, 30},
		{"explicit am", "오전 11시", false, 11, 0},
		{"am noon is midnight", "오전 12시", false, 0, 0},
		{"bare 1-6 is pm", "3시", false, 15, 0},
		{"bare 7-11 without context is am", "7시", false, 7, 0},
		{"bare 7-11 with evening context is pm", "7시", true, 19, 0},
		{"evening qualifier", "저녁 7시", false, 19, 0},
		{"night qualifier", "밤 9시", false, 21, 0},
		{"bare noon", "12시", false, 12, 0},
		{"clock form", "15:30", false, 15, 30},
		{"korean minutes", "3시 20분", false, 15, 20},
		{"noon word", "정오", false, 12, 0},
		{"24h korean hour stays", "18시", false, 18, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, ok := ParseTimeExpression(tt.expr, tt.evening)
			require.True(t, ok)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMin, m)
		})
	}

	t.Run("no time present", func(t *testing.T) {
		_, _, ok := ParseTimeExpression("내일 봐요", false)
		assert.False(t, ok)
	})
}

func TestParseTimeRangeExpression(t *testing.T) {
	t.Run("bare hours both infer pm", func(t *testing.T) {
		sh, sm, eh, em, ok := ParseTimeRangeExpression("3시부터 5시까지", false)
		require.True(t, ok)
		assert.Equal(t, []int{15, 0, 17, 0}, []int{sh, sm, eh, em})
	})

	t.Run("morning hours stay am", func(t *testing.T) {
		sh, _, eh, _, ok := ParseTimeRangeExpression("10시부터 12시까지", false)
		require.True(t, ok)
		assert.Equal(t, 10, sh)
		assert.Equal(t, 12, eh)
	})

	t.Run("qualifier carries into bare end hour", func(t *testing.T) {
		sh, _, eh, _, ok := ParseTimeRangeExpression("오후 2시부터 4시까지", false)
		require.True(t, ok)
		assert.Equal(t, 14, sh)
		assert.Equal(t, 16, eh)
	})

	t.Run("clock range", func(t *testing.T) {
		sh, sm, eh, em, ok := ParseTimeRangeExpression("15:00~17:30", false)
		require.True(t, ok)
		assert.Equal(t, []int{15, 0, 17, 30}, []int{sh, sm, eh, em})
	})

	t.Run("backward bare end hour is lifted forward", func(t *testing.T) {
		sh, _, eh, _, ok := ParseTimeRangeExpression("저녁 8시부터 10시까지", false)
		require.True(t, ok)
		assert.Equal(t, 20, sh)
		assert.Equal(t, 22, eh)
	})
}

func TestInferMeridiem(t *testing.T) {
	assert.Equal(t, 13, InferMeridiem(1, false))
	assert.Equal(t, 18, InferMeridiem(6, false))
	assert.Equal(t, 7, InferMeridiem(7, false))
	assert.Equal(t, 19, InferMeridiem(7, true))
	assert.Equal(t, 11, InferMeridiem(11, false))
	assert.Equal(t, 23, InferMeridiem(11, true))
	assert.Equal(t, 12, InferMeridiem(12, false))
	assert.Equal(t, 0, InferMeridiem(0, false))
	assert.Equal(t, 18, InferMeridiem(18, false))
}

func TestHasEveningContext(t *testing.T) {
	assert.True(t, HasEveningContext("내일 저녁에 볼까"))
	assert.True(t, HasEveningContext("퇴근하고 7시"))
	assert.False(t, HasEveningContext("내일 아침 회의"))
}
