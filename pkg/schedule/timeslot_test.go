package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

func day(t *testing.T, y int, m time.Month, d int) time.Time {
	t.Helper()
	return time.Date(y, m, d, 0, 0, 0, 0, kst)
}

func at(t *testing.T, y int, m time.Month, d, hh, mm int) time.Time {
	t.Helper()
	return time.Date(y, m, d, hh, mm, 0, 0, kst)
}

func TestTimeSlotBasics(t *testing.T) {
	t.Run("rejects inverted interval", func(t *testing.T) {
		_, err := NewTimeSlot(at(t, 2025, 12, 17, 18, 0), at(t, 2025, 12, 17, 18, 0))
		require.Error(t, err)
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		a := TimeSlot{Start: at(t, 2025, 12, 17, 18, 0), End: at(t, 2025, 12, 17, 20, 0)}
		b := TimeSlot{Start: at(t, 2025, 12, 17, 20, 0), End: at(t, 2025, 12, 17, 21, 0)}
		c := TimeSlot{Start: at(t, 2025, 12, 17, 19, 0), End: at(t, 2025, 12, 17, 19, 30)}

		assert.False(t, a.Overlaps(b), "touching intervals do not overlap")
		assert.True(t, a.Overlaps(c))
		assert.True(t, c.Overlaps(a))
	})

	t.Run("contains instant", func(t *testing.T) {
		s := TimeSlot{Start: at(t, 2025, 12, 17, 18, 0), End: at(t, 2025, 12, 17, 20, 0)}
		assert.True(t, s.ContainsInstant(at(t, 2025, 12, 17, 18, 0)))
		assert.True(t, s.ContainsInstant(at(t, 2025, 12, 17, 19, 59)))
		assert.False(t, s.ContainsInstant(at(t, 2025, 12, 17, 20, 0)))
	})
}

func TestMergeBusy(t *testing.T) {
	tests := []struct {
		name string
		in   []TimeSlot
		want []TimeSlot
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "disjoint stays",
			in: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 11, 0)},
				{Start: at(t, 2025, 12, 17, 14, 0), End: at(t, 2025, 12, 17, 15, 0)},
			},
			want: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 11, 0)},
				{Start: at(t, 2025, 12, 17, 14, 0), End: at(t, 2025, 12, 17, 15, 0)},
			},
		},
		{
			name: "overlapping coalesce",
			in: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 14, 0), End: at(t, 2025, 12, 17, 16, 0)},
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 15, 0)},
			},
			want: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 16, 0)},
			},
		},
		{
			name: "touching coalesce",
			in: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 12, 0)},
				{Start: at(t, 2025, 12, 17, 12, 0), End: at(t, 2025, 12, 17, 13, 0)},
			},
			want: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 13, 0)},
			},
		},
		{
			name: "contained swallowed",
			in: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 18, 0)},
				{Start: at(t, 2025, 12, 17, 12, 0), End: at(t, 2025, 12, 17, 13, 0)},
			},
			want: []TimeSlot{
				{Start: at(t, 2025, 12, 17, 10, 0), End: at(t, 2025, 12, 17, 18, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeBusy(tt.in))
		})
	}
}

func TestFreeSlots(t *testing.T) {
	// now is well before the planning range so past suppression stays out of
	// the way unless a test moves it.
	now := at(t, 2025, 12, 10, 9, 0)
	from := day(t, 2025, time.December, 17)
	to := day(t, 2025, time.December, 18)

	t.Run("fully free day yields one working-hours slot", func(t *testing.T) {
		free := FreeSlots(nil, from, to, time.Hour, now)
		require.Len(t, free, 1)
		assert.Equal(t, at(t, 2025, 12, 17, 9, 0), free[0].Start)
		assert.Equal(t, at(t, 2025, 12, 17, 22, 0), free[0].End)
	})

	t.Run("busy interval splits the day", func(t *testing.T) {
		busy := []TimeSlot{{Start: at(t, 2025, 12, 17, 17, 0), End: at(t, 2025, 12, 17, 19, 0)}}
		free := FreeSlots(busy, from, to, time.Hour, now)
		require.Len(t, free, 2)
		assert.Equal(t, at(t, 2025, 12, 17, 9, 0), free[0].Start)
		assert.Equal(t, at(t, 2025, 12, 17, 17, 0), free[0].End)
		assert.Equal(t, at(t, 2025, 12, 17, 19, 0), free[1].Start)
		assert.Equal(t, at(t, 2025, 12, 17, 22, 0), free[1].End)
	})

	t.Run("busy outside working hours is irrelevant", func(t *testing.T) {
		busy := []TimeSlot{{Start: at(t, 2025, 12, 17, 6, 0), End: at(t, 2025, 12, 17, 8, 0)}}
		free := FreeSlots(busy, from, to, time.Hour, now)
		require.Len(t, free, 1)
		assert.Equal(t, at(t, 2025, 12, 17, 9, 0), free[0].Start)
	})

	t.Run("busy straddling the window start clips the slot", func(t *testing.T) {
		busy := []TimeSlot{{Start: at(t, 2025, 12, 17, 7, 0), End: at(t, 2025, 12, 17, 11, 0)}}
		free := FreeSlots(busy, from, to, time.Hour, now)
		require.Len(t, free, 1)
		assert.Equal(t, at(t, 2025, 12, 17, 11, 0), free[0].Start)
		assert.Equal(t, at(t, 2025, 12, 17, 22, 0), free[0].End)
	})

	t.Run("gaps shorter than the duration are dropped", func(t *testing.T) {
		busy := []TimeSlot{
			{Start: at(t, 2025, 12, 17, 9, 30), End: at(t, 2025, 12, 17, 21, 30)},
		}
		free := FreeSlots(busy, from, to, time.Hour, now)
		assert.Empty(t, free)
	})

	t.Run("multi-day range emits per-day slots", func(t *testing.T) {
		free := FreeSlots(nil, from, from.AddDate(0, 0, 3), time.Hour, now)
		require.Len(t, free, 3)
		for i, slot := range free {
			assert.Equal(t, at(t, 2025, 12, 17+i, 9, 0), slot.Start)
			assert.Equal(t, at(t, 2025, 12, 17+i, 22, 0), slot.End)
		}
	})

	t.Run("past suppression drops slots already started today", func(t *testing.T) {
		today := day(t, 2025, time.December, 17)
		busy := []TimeSlot{{Start: at(t, 2025, 12, 17, 12, 0), End: at(t, 2025, 12, 17, 13, 0)}}
		midMorning := at(t, 2025, 12, 17, 10, 0)

		free := FreeSlots(busy, today, today.AddDate(0, 0, 1), time.Hour, midMorning)
		// [09:00,12:00) starts before now and is dropped; [13:00,22:00) survives.
		require.Len(t, free, 1)
		assert.Equal(t, at(t, 2025, 12, 17, 13, 0), free[0].Start)
	})

	t.Run("fully busy day yields nothing", func(t *testing.T) {
		busy := []TimeSlot{{Start: day(t, 2025, time.December, 17), End: day(t, 2025, time.December, 18)}}
		assert.Empty(t, FreeSlots(busy, from, to, time.Hour, now))
	})
}

func TestDayBusy(t *testing.T) {
	busy := []TimeSlot{{Start: at(t, 2025, 12, 19, 23, 0), End: at(t, 2025, 12, 20, 1, 0)}}

	assert.True(t, DayBusy(busy, day(t, 2025, time.December, 19)))
	assert.True(t, DayBusy(busy, day(t, 2025, time.December, 20)), "spillover into the next day counts")
	assert.False(t, DayBusy(busy, day(t, 2025, time.December, 21)))
}
