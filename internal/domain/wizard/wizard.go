// Package wizard drives the four-step booking flow: service, date/time,
// pet, confirmation. Each step validates before the wizard advances;
// retreating is always allowed. Collaborators (catalog, pets, slot
// availability, clock) are injected so the machine itself stays
// deterministic.
package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"huellitas/internal/domain/booking"
	"huellitas/internal/domain/pet"
	"huellitas/internal/domain/schedule"
	"huellitas/internal/domain/service"
	"huellitas/internal/pkg/clock"
)

const (
	StepSelectingService  = 1
	StepSelectingDateTime = 2
	StepSelectingPet      = 3
	StepConfirming        = 4
	TotalSteps            = 4
)

var (
	ErrServiceNotSelected = errors.New("select a service first")
	ErrDateTimeNotChosen  = errors.New("select a date and time first")
	ErrPetNotSelected     = errors.New("select a pet first")
	ErrPastDate           = errors.New("date is in the past")
	ErrDateUnavailable    = errors.New("date is not available")
	ErrSlotUnavailable    = errors.New("time slot is not available")
	ErrNoDateSelected     = errors.New("no date selected")
	ErrPetIndexOutOfRange = errors.New("pet index out of range")
	ErrNotConfirming      = errors.New("wizard is not on the confirmation step")
)

// State is everything the wizard persists between requests. It
// serializes wholesale to the session store; BookingData fields fill in
// as the user progresses.
type State struct {
	Step         int              `json:"step"`
	Completed    bool             `json:"completed,omitempty"`
	Service      *service.Service `json:"service,omitempty"`
	Date         *time.Time       `json:"date,omitempty"`
	Time         string           `json:"time,omitempty"`
	Slots        []schedule.Slot  `json:"slots,omitempty"`
	Pet          *pet.Snapshot    `json:"pet,omitempty"`
	PetIndex     int              `json:"pet_index,omitempty"`
	Observations string           `json:"observations,omitempty"`
	Addons       []string         `json:"addons,omitempty"`
}

func NewState() *State {
	return &State{Step: StepSelectingService}
}

// Normalize repairs a state deserialized from the store.
func (s *State) Normalize() {
	if s.Step < StepSelectingService || s.Step > TotalSteps {
		s.Step = StepSelectingService
	}
}

// Subtotal is the service price plus the selected addons. Zero until a
// service is chosen.
func (s *State) Subtotal() int64 {
	if s.Service == nil {
		return 0
	}
	return s.Service.Price + booking.AddonsTotal(s.Addons)
}

// Wizard binds a state to its collaborators for one operation sequence.
type Wizard struct {
	state        *State
	services     []service.Service
	pets         []pet.Pet
	clock        clock.Clock
	availability schedule.AvailabilityProvider
}

func New(state *State, services []service.Service, pets []pet.Pet, clk clock.Clock, availability schedule.AvailabilityProvider) *Wizard {
	state.Normalize()
	return &Wizard{
		state:        state,
		services:     services,
		pets:         pets,
		clock:        clk,
		availability: availability,
	}
}

func (w *Wizard) State() *State { return w.state }

// SelectService records the chosen service. An unknown id is a silent
// no-op: the storefront renders only known ids, so there is nothing to
// tell the user.
func (w *Wizard) SelectService(serviceID int64) {
	svc, ok := service.Find(w.services, serviceID)
	if !ok {
		return
	}
	w.state.Service = &svc
}

// SelectDate validates the date, clears any previously chosen time and
// regenerates the day's slots.
func (w *Wizard) SelectDate(ctx context.Context, date time.Time) error {
	today := clock.Today(w.clock)
	day := clock.Truncate(date)

	if day.Before(today) {
		return ErrPastDate
	}
	if !schedule.IsDateAvailable(day, w.clock.Now()) {
		return ErrDateUnavailable
	}

	slots, err := w.availability.SlotsFor(ctx, day)
	if err != nil {
		return err
	}

	w.state.Date = &day
	w.state.Time = ""
	w.state.Slots = slots
	return nil
}

// SelectTime records the time if its slot is marked available.
func (w *Wizard) SelectTime(hhmm string) error {
	for _, slot := range w.state.Slots {
		if slot.Time == hhmm {
			if !slot.Available {
				return ErrSlotUnavailable
			}
			w.state.Time = hhmm
			return nil
		}
	}
	return ErrSlotUnavailable
}

// SelectPet snapshots the pet at the given index of the user's list.
func (w *Wizard) SelectPet(index int) error {
	if index < 0 || index >= len(w.pets) {
		return ErrPetIndexOutOfRange
	}
	snap := w.pets[index].Snapshot()
	w.state.Pet = &snap
	w.state.PetIndex = index
	return nil
}

// ToggleAddon flips membership of the addon in the in-progress list and
// reports whether it is now selected. Unknown addon ids are ignored.
func (w *Wizard) ToggleAddon(addonID string) (selected, known bool) {
	if !booking.ValidAddon(addonID) {
		return false, false
	}
	w.state.Addons, selected = booking.ToggleAddon(w.state.Addons, addonID)
	return selected, true
}

func (w *Wizard) SetObservations(text string) {
	w.state.Observations = text
}

// validateStep runs the current step's validator without changing state.
func (w *Wizard) validateStep(step int) error {
	switch step {
	case StepSelectingService:
		if w.state.Service == nil {
			return ErrServiceNotSelected
		}
	case StepSelectingDateTime:
		if w.state.Date == nil || w.state.Time == "" {
			return ErrDateTimeNotChosen
		}
	case StepSelectingPet:
		if w.state.Pet == nil {
			return ErrPetNotSelected
		}
	}
	return nil
}

// Advance moves forward one step after the current step validates,
// clamped at the confirmation step. Entering step 2 refreshes the slots
// for an already-chosen date.
func (w *Wizard) Advance(ctx context.Context) error {
	if err := w.validateStep(w.state.Step); err != nil {
		return err
	}
	if w.state.Step >= TotalSteps {
		return nil
	}
	w.state.Step++

	if w.state.Step == StepSelectingDateTime && w.state.Date != nil {
		slots, err := w.availability.SlotsFor(ctx, *w.state.Date)
		if err == nil {
			w.state.Slots = slots
		}
	}
	return nil
}

// Retreat moves back one step; a no-op on step 1.
func (w *Wizard) Retreat() {
	if w.state.Step > StepSelectingService {
		w.state.Step--
	}
}

// Confirm runs the confirmation-step validation chain and materializes
// the booking record. The caller persists it; only after persistence
// succeeds should Complete be called, so a failed save leaves the wizard
// on step 4 with nothing created.
func (w *Wizard) Confirm(userID uuid.UUID) (*booking.Booking, error) {
	if w.state.Step != StepConfirming {
		return nil, ErrNotConfirming
	}
	for step := StepSelectingService; step <= StepConfirming; step++ {
		if err := w.validateStep(step); err != nil {
			return nil, err
		}
	}

	return booking.New(
		*w.state.Service,
		*w.state.Date,
		w.state.Time,
		*w.state.Pet,
		w.state.Observations,
		w.state.Addons,
		userID,
		w.clock.Now(),
	)
}

// Complete marks the flow finished after the booking persisted.
func (w *Wizard) Complete() {
	w.state.Completed = true
}

// Reset clears all booking data and returns to step 1.
func (w *Wizard) Reset() {
	*w.state = State{Step: StepSelectingService}
}

// Calendar renders the month grid around the state's selected date.
func (w *Wizard) Calendar(m schedule.Month) schedule.Grid {
	return schedule.MonthGrid(m, w.state.Date, w.clock.Now())
}
