// Package service holds the grooming service catalog: immutable reference
// data loaded at startup and selected (not owned) by bookings.
package service

import (
	"errors"
	"fmt"
)

var ErrInvalidService = errors.New("invalid service")

type Service struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// Price is in integer currency units (COP).
	Price    int64    `json:"price"`
	Duration int      `json:"duration"` // minutes
	Icon     string   `json:"icon"`
	Features []string `json:"features"`
	Active   bool     `json:"active"`
}

// Validate is applied at the persistence boundary: deserialized snapshots
// are not trusted implicitly.
func (s Service) Validate() error {
	if s.ID <= 0 || s.Name == "" || s.Price < 0 || s.Duration <= 0 {
		return ErrInvalidService
	}
	return nil
}

// FormatDuration renders minutes the way the booking summary shows them,
// e.g. "1h 30min", "45min".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		if mins > 0 {
			return fmt.Sprintf("%dh %dmin", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dmin", mins)
}

// Find returns the service with the given id, or false when absent.
func Find(services []Service, id int64) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
