package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"huellitas/internal/domain/booking"
	"huellitas/internal/domain/schedule"
	"huellitas/internal/domain/wizard"
	"huellitas/internal/infra"
	"huellitas/internal/infra/session"
	"huellitas/internal/pkg/clock"
	"huellitas/internal/pkg/errs"
	"huellitas/internal/usecase/queries"
)

var ErrWizardValidation = errs.New("wizard validation error")

type WizardCommands interface {
	GetState(ctx context.Context, userID uuid.UUID) (*wizard.State, error)
	SelectService(ctx context.Context, userID uuid.UUID, servicioID int64) (*wizard.State, error)
	SelectDate(ctx context.Context, userID uuid.UUID, fecha time.Time) (*wizard.State, error)
	SelectTime(ctx context.Context, userID uuid.UUID, hora string) (*wizard.State, error)
	SelectPet(ctx context.Context, userID uuid.UUID, index int) (*wizard.State, error)
	ToggleAddon(ctx context.Context, userID uuid.UUID, addonID string) (*wizard.State, error)
	SetObservations(ctx context.Context, userID uuid.UUID, text string) (*wizard.State, error)
	Advance(ctx context.Context, userID uuid.UUID) (*wizard.State, error)
	Retreat(ctx context.Context, userID uuid.UUID) (*wizard.State, error)
	Reset(ctx context.Context, userID uuid.UUID) (*wizard.State, error)
	Confirm(ctx context.Context, userID uuid.UUID) (*booking.Booking, error)
	Calendar(ctx context.Context, userID uuid.UUID, year, monthIndex int) (*schedule.Grid, error)
	Slots(ctx context.Context, date time.Time) ([]schedule.Slot, error)
	ListSessionBookings(ctx context.Context, userID uuid.UUID) ([]booking.Booking, error)
}

type wizardCommandsImpl struct {
	serviceStore queries.ServiceReadStore
	petRepo      PetRepository
	citaRepo     CitaRepository
	sessions     session.Store
	availability schedule.AvailabilityProvider
	clock        clock.Clock
}

func NewWizardCommands(
	serviceStore queries.ServiceReadStore,
	petRepo PetRepository,
	citaRepo CitaRepository,
	sessions session.Store,
	availability schedule.AvailabilityProvider,
	clk clock.Clock,
) WizardCommands {
	return &wizardCommandsImpl{
		serviceStore: serviceStore,
		petRepo:      petRepo,
		citaRepo:     citaRepo,
		sessions:     sessions,
		availability: availability,
		clock:        clk,
	}
}

func (w *wizardCommandsImpl) loadState(ctx context.Context, userID uuid.UUID) (*wizard.State, error) {
	state := wizard.NewState()
	err := session.Load(ctx, w.sessions, session.WizardKey(userID), state)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return nil, err
	}
	state.Normalize()
	return state, nil
}

func (w *wizardCommandsImpl) saveState(ctx context.Context, userID uuid.UUID, state *wizard.State) error {
	return session.Save(ctx, w.sessions, session.WizardKey(userID), state)
}

// build assembles the state machine with its collaborators for one
// operation.
func (w *wizardCommandsImpl) build(ctx context.Context, userID uuid.UUID, state *wizard.State) (*wizard.Wizard, error) {
	services, err := w.serviceStore.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	pets, err := w.petRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wizard.New(state, services, pets, w.clock, w.availability), nil
}

// apply is the load/mutate/save cycle shared by every wizard operation.
func (w *wizardCommandsImpl) apply(ctx context.Context, userID uuid.UUID, op func(*wizard.Wizard) error) (*wizard.State, error) {
	state, err := w.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	wz, err := w.build(ctx, userID, state)
	if err != nil {
		return nil, err
	}

	if err := op(wz); err != nil {
		return nil, errs.Mark(err, ErrWizardValidation)
	}

	if err := w.saveState(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (w *wizardCommandsImpl) GetState(ctx context.Context, userID uuid.UUID) (*wizard.State, error) {
	return w.loadState(ctx, userID)
}

func (w *wizardCommandsImpl) SelectService(ctx context.Context, userID uuid.UUID, servicioID int64) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		wz.SelectService(servicioID)
		return nil
	})
}

func (w *wizardCommandsImpl) SelectDate(ctx context.Context, userID uuid.UUID, fecha time.Time) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		return wz.SelectDate(ctx, fecha)
	})
}

func (w *wizardCommandsImpl) SelectTime(ctx context.Context, userID uuid.UUID, hora string) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		return wz.SelectTime(hora)
	})
}

func (w *wizardCommandsImpl) SelectPet(ctx context.Context, userID uuid.UUID, index int) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		return wz.SelectPet(index)
	})
}

func (w *wizardCommandsImpl) ToggleAddon(ctx context.Context, userID uuid.UUID, addonID string) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		wz.ToggleAddon(addonID)
		return nil
	})
}

func (w *wizardCommandsImpl) SetObservations(ctx context.Context, userID uuid.UUID, text string) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		wz.SetObservations(text)
		return nil
	})
}

func (w *wizardCommandsImpl) Advance(ctx context.Context, userID uuid.UUID) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		return wz.Advance(ctx)
	})
}

func (w *wizardCommandsImpl) Retreat(ctx context.Context, userID uuid.UUID) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		wz.Retreat()
		return nil
	})
}

func (w *wizardCommandsImpl) Reset(ctx context.Context, userID uuid.UUID) (*wizard.State, error) {
	return w.apply(ctx, userID, func(wz *wizard.Wizard) error {
		wz.Reset()
		return nil
	})
}

// Confirm materializes the booking, writes the appointment row and
// appends the record to the user's booking collection. The wizard only
// completes after persistence succeeds; any failure leaves it on the
// confirmation step.
func (w *wizardCommandsImpl) Confirm(ctx context.Context, userID uuid.UUID) (*booking.Booking, error) {
	state, err := w.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	wz, err := w.build(ctx, userID, state)
	if err != nil {
		return nil, err
	}

	bk, err := wz.Confirm(userID)
	if err != nil {
		return nil, errs.Mark(err, ErrWizardValidation)
	}
	if err := bk.Validate(); err != nil {
		return nil, errs.Mark(err, ErrWizardValidation)
	}

	pets, err := w.petRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.PetIndex < 0 || state.PetIndex >= len(pets) {
		return nil, errs.Mark(wizard.ErrPetIndexOutOfRange, ErrWizardValidation)
	}

	cita := Cita{
		ID:            bk.ID,
		UserID:        userID,
		MascotaID:     pets[state.PetIndex].ID,
		ServicioID:    bk.Service.ID,
		Fecha:         clock.Truncate(bk.Date),
		Hora:          bk.Time,
		Estado:        string(bk.Status),
		Observaciones: bk.Observations,
		CreatedAt:     bk.CreatedAt,
	}
	if err := w.citaRepo.Create(ctx, cita); err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	if err := w.appendToCollection(ctx, userID, *bk); err != nil {
		return nil, err
	}

	wz.Complete()
	if err := w.saveState(ctx, userID, state); err != nil {
		return nil, err
	}
	return bk, nil
}

func (w *wizardCommandsImpl) appendToCollection(ctx context.Context, userID uuid.UUID, bk booking.Booking) error {
	key := session.BookingsKey(userID)

	var collection []booking.Booking
	err := session.Load(ctx, w.sessions, key, &collection)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}

	collection = append(collection, bk)
	return session.Save(ctx, w.sessions, key, collection)
}

func (w *wizardCommandsImpl) ListSessionBookings(ctx context.Context, userID uuid.UUID) ([]booking.Booking, error) {
	var collection []booking.Booking
	err := session.Load(ctx, w.sessions, session.BookingsKey(userID), &collection)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return nil, err
	}
	return collection, nil
}

func (w *wizardCommandsImpl) Calendar(ctx context.Context, userID uuid.UUID, year, monthIndex int) (*schedule.Grid, error) {
	state, err := w.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	m := schedule.Month{Year: year, MonthIndex: monthIndex}
	grid := schedule.MonthGrid(m, state.Date, w.clock.Now())
	return &grid, nil
}

func (w *wizardCommandsImpl) Slots(ctx context.Context, date time.Time) ([]schedule.Slot, error) {
	return w.availability.SlotsFor(ctx, date)
}
