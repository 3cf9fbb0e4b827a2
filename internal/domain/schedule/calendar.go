// Package schedule generates the booking calendar and the bookable time
// slots for a day. Everything here is a pure function of its inputs so a
// month can be re-rendered identically on every navigation.
package schedule

import (
	"time"

	"huellitas/internal/pkg/clock"
)

// Month identifies a calendar page. MonthIndex is 0-based (January = 0),
// as the calendar widget counts.
type Month struct {
	Year       int
	MonthIndex int
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), MonthIndex: int(t.Month()) - 1}
}

// Previous wraps into December of the prior year at index 0.
func (m Month) Previous() Month {
	if m.MonthIndex == 0 {
		return Month{Year: m.Year - 1, MonthIndex: 11}
	}
	return Month{Year: m.Year, MonthIndex: m.MonthIndex - 1}
}

// Next wraps into January of the following year at index 11.
func (m Month) Next() Month {
	if m.MonthIndex == 11 {
		return Month{Year: m.Year + 1, MonthIndex: 0}
	}
	return Month{Year: m.Year, MonthIndex: m.MonthIndex + 1}
}

func (m Month) First() time.Time {
	return time.Date(m.Year, time.Month(m.MonthIndex+1), 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

type Cell struct {
	// Blank cells pad the first week so day 1 lands on its weekday
	// column (Sunday-first grid).
	Blank       bool      `json:"blank,omitempty"`
	Day         int       `json:"day,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	IsToday     bool      `json:"is_today,omitempty"`
	IsPast      bool      `json:"is_past,omitempty"`
	IsSelected  bool      `json:"is_selected,omitempty"`
	IsAvailable bool      `json:"is_available"`
}

type Grid struct {
	Month Month  `json:"month"`
	Cells []Cell `json:"cells"`
}

// MonthGrid lays out one cell per day of the month after leading blanks,
// flagging each day against "now" and the currently selected date.
func MonthGrid(m Month, selected *time.Time, now time.Time) Grid {
	first := m.First()
	today := clock.Truncate(now)

	cells := make([]Cell, 0, 7*6)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{Blank: true})
	}

	for day := 1; day <= m.Days(); day++ {
		date := first.AddDate(0, 0, day-1)
		isToday := clock.SameDay(date, today)
		isPast := date.Before(today) && !isToday
		cells = append(cells, Cell{
			Day:         day,
			Date:        date,
			IsToday:     isToday,
			IsPast:      isPast,
			IsSelected:  selected != nil && clock.SameDay(date, *selected),
			IsAvailable: IsDateAvailable(date, now),
		})
	}

	return Grid{Month: m, Cells: cells}
}

// IsDateAvailable applies the booking date rules: closed on Sundays and
// no dates before today (day granularity).
func IsDateAvailable(date, now time.Time) bool {
	if date.Weekday() == time.Sunday {
		return false
	}
	today := clock.Truncate(now)
	return !clock.Truncate(date).Before(today)
}
