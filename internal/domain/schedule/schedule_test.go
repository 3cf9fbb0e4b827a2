//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"huellitas/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotTimes(t *testing.T) {
	times := schedule.SlotTimes()

	require.Len(t, times, 20)
	assert.Equal(t, "08:00", times[0])
	assert.Equal(t, "08:30", times[1])
	assert.Equal(t, "17:30", times[len(times)-1])

	seen := make(map[string]bool)
	for _, tm := range times {
		assert.False(t, seen[tm], "duplicate slot %s", tm)
		seen[tm] = true
	}
}

func TestValidSlotTime(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{"opening slot", "08:00", true},
		{"midday slot", "12:30", true},
		{"closing slot", "17:30", true},
		{"before opening", "07:30", false},
		{"after closing", "18:00", false},
		{"off the grid", "10:15", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, schedule.ValidSlotTime(tc.input))
		})
	}
}

func TestIsDateAvailable(t *testing.T) {
	// Wednesday.
	now := time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name      string
		date      time.Time
		available bool
	}{
		{"today", now, true},
		{"today at midnight", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), true},
		{"tomorrow", now.AddDate(0, 0, 1), true},
		{"yesterday", now.AddDate(0, 0, -1), false},
		{"next sunday", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"next monday", time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.available, schedule.IsDateAvailable(tc.date, now))
		})
	}
}

func TestMonth(t *testing.T) {
	t.Run("navigation wraps across years", func(t *testing.T) {
		jan := schedule.Month{Year: 2026, MonthIndex: 0}
		dec := schedule.Month{Year: 2026, MonthIndex: 11}

		assert.Equal(t, schedule.Month{Year: 2025, MonthIndex: 11}, jan.Previous())
		assert.Equal(t, schedule.Month{Year: 2027, MonthIndex: 0}, dec.Next())
		assert.Equal(t, schedule.Month{Year: 2026, MonthIndex: 1}, jan.Next())
	})

	t.Run("day counts", func(t *testing.T) {
		assert.Equal(t, 28, schedule.Month{Year: 2026, MonthIndex: 1}.Days())
		assert.Equal(t, 29, schedule.Month{Year: 2028, MonthIndex: 1}.Days())
		assert.Equal(t, 31, schedule.Month{Year: 2026, MonthIndex: 0}.Days())
		assert.Equal(t, 30, schedule.Month{Year: 2026, MonthIndex: 3}.Days())
	})
}

func TestMonthGrid(t *testing.T) {
	// March 2026 starts on a Sunday; no leading blanks.
	// April 2026 starts on a Wednesday; three leading blanks.
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	t.Run("first day lands on its weekday column", func(t *testing.T) {
		grid := schedule.MonthGrid(schedule.Month{Year: 2026, MonthIndex: 3}, nil, now)

		require.Len(t, grid.Cells, 3+30)
		for i := 0; i < 3; i++ {
			assert.True(t, grid.Cells[i].Blank)
		}
		assert.Equal(t, 1, grid.Cells[3].Day)
		assert.Equal(t, 30, grid.Cells[len(grid.Cells)-1].Day)
	})

	t.Run("flags today, past and sundays", func(t *testing.T) {
		grid := schedule.MonthGrid(schedule.MonthOf(now), nil, now)

		require.Len(t, grid.Cells, 31)
		day := func(d int) schedule.Cell { return grid.Cells[d-1] }

		assert.True(t, day(11).IsToday)
		assert.True(t, day(11).IsAvailable)
		assert.True(t, day(10).IsPast)
		assert.False(t, day(10).IsAvailable)
		assert.False(t, day(12).IsPast)
		// March 15 2026 is a Sunday: future but closed.
		assert.False(t, day(15).IsPast)
		assert.False(t, day(15).IsAvailable)
	})

	t.Run("marks the selected date", func(t *testing.T) {
		selected := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		grid := schedule.MonthGrid(schedule.MonthOf(now), &selected, now)

		assert.True(t, grid.Cells[19].IsSelected)
		assert.False(t, grid.Cells[18].IsSelected)
	})
}
