// Package booking models an appointment for a grooming service. A
// booking embeds snapshots of the service and pet it was made for: the
// record stays intact even if the catalog or the pet changes later.
package booking

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"huellitas/internal/domain/pet"
	"huellitas/internal/domain/service"

	"github.com/google/uuid"
)

var (
	ErrMissingService = errors.New("booking requires a service")
	ErrMissingDate    = errors.New("booking requires a date")
	ErrMissingTime    = errors.New("booking requires a time")
	ErrMissingPet     = errors.New("booking requires a pet")
	ErrNotCancellable = errors.New("booking can no longer be cancelled")
	ErrInvalidBooking = errors.New("invalid booking record")
	ErrReasonRequired = errors.New("cancellation reason is required")
)

var idPattern = regexp.MustCompile(`^HB-\d+$`)

// ServiceSnapshot is the copied-by-value service record embedded at
// confirmation time.
type ServiceSnapshot struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration int    `json:"duration"`
}

// Booking is immutable after creation except for its status and the
// cancellation fields.
type Booking struct {
	ID           string          `json:"id"`
	Service      ServiceSnapshot `json:"service"`
	Date         time.Time       `json:"date"`
	Time         string          `json:"time"` // "HH:MM"
	Pet          pet.Snapshot    `json:"pet"`
	Observations string          `json:"observations,omitempty"`
	Addons       []string        `json:"addons,omitempty"`
	Total        int64           `json:"total"`
	Status       Status          `json:"status"`
	UserID       uuid.UUID       `json:"user_id"`
	CreatedAt    time.Time       `json:"created_at"`

	CancellationReason   string     `json:"cancellation_reason,omitempty"`
	CancellationComments string     `json:"cancellation_comments,omitempty"`
	CancelledAt          *time.Time `json:"cancelled_at,omitempty"`
}

// NewID generates the display identifier, form "HB-<millis>".
func NewID(now time.Time) string {
	return fmt.Sprintf("HB-%d", now.UnixMilli())
}

func New(svc service.Service, date time.Time, hhmm string, p pet.Snapshot, observations string, addons []string, userID uuid.UUID, now time.Time) (*Booking, error) {
	if svc.ID == 0 {
		return nil, ErrMissingService
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if hhmm == "" {
		return nil, ErrMissingTime
	}
	if p.Name == "" {
		return nil, ErrMissingPet
	}

	return &Booking{
		ID: NewID(now),
		Service: ServiceSnapshot{
			ID:       svc.ID,
			Name:     svc.Name,
			Price:    svc.Price,
			Duration: svc.Duration,
		},
		Date:         date,
		Time:         hhmm,
		Pet:          p,
		Observations: observations,
		Addons:       append([]string(nil), addons...),
		Total:        svc.Price + AddonsTotal(addons),
		Status:       StatusConfirmada,
		UserID:       userID,
		CreatedAt:    now,
	}, nil
}

// Validate guards the persistence boundary: a deserialized booking must
// carry a well-formed id and status before it is trusted.
func (b *Booking) Validate() error {
	if !idPattern.MatchString(b.ID) {
		return ErrInvalidBooking
	}
	if !b.Status.IsValid() {
		return ErrInvalidBooking
	}
	if b.Service.ID == 0 || b.Pet.Name == "" || b.Time == "" || b.Date.IsZero() {
		return ErrInvalidBooking
	}
	return nil
}

// Cancel is the only legal mutation after creation.
func (b *Booking) Cancel(reason, comments string, now time.Time) error {
	if !b.Status.Cancellable() {
		return ErrNotCancellable
	}
	if reason == "" {
		return ErrReasonRequired
	}
	b.Status = StatusCancelada
	b.CancellationReason = reason
	b.CancellationComments = comments
	t := now
	b.CancelledAt = &t
	return nil
}
