package schedule

import (
	"context"
	"fmt"
	"time"
)

// Opening hours: slots every 30 minutes from 08:00 through the 17:00
// boundary hour inclusive, so the last slot of the day is 17:30.
const (
	OpeningHour     = 8
	ClosingHour     = 17
	SlotIntervalMin = 30
)

type Slot struct {
	Time      string `json:"time"` // "HH:MM"
	Available bool   `json:"available"`
}

// SlotTimes returns every slot time of a working day in order.
func SlotTimes() []string {
	var times []string
	for hour := OpeningHour; hour <= ClosingHour; hour++ {
		for minute := 0; minute < 60; minute += SlotIntervalMin {
			times = append(times, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return times
}

// ValidSlotTime reports whether t is one of the day's slot times.
func ValidSlotTime(t string) bool {
	for _, s := range SlotTimes() {
		if s == t {
			return true
		}
	}
	return false
}

// AvailabilityProvider answers which of a day's slots are free. The
// production implementation simulates a backend query; tests use a
// deterministic fake. An empty result is a valid answer (fully booked
// day).
type AvailabilityProvider interface {
	SlotsFor(ctx context.Context, date time.Time) ([]Slot, error)
}
