package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"huellitas/internal/domain/booking"
	"huellitas/internal/domain/schedule"
	reqdto "huellitas/internal/handler/dto/request"
	"huellitas/internal/infra"
	"huellitas/internal/infra/session"
	"huellitas/internal/pkg/clock"
	"huellitas/internal/pkg/errs"
	"huellitas/internal/usecase/queries"
)

var (
	ErrServiceNotFound    = errs.New("service not found")
	ErrPetNotFound        = errs.New("pet not found")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrSlotConflict       = errs.New("slot already booked")
	ErrInvalidBookingDate = errs.New("invalid booking date")
	ErrInvalidBookingTime = errs.New("invalid booking time")
	ErrBookingValidation  = errs.New("booking validation error")
)

type CitaRepository interface {
	Create(ctx context.Context, cita Cita) error
	FindByID(ctx context.Context, id string) (*Cita, error)
	UpdateEstado(ctx context.Context, id, estado string) error
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (string, error)
	CancelBooking(ctx context.Context, bookingID string, req reqdto.CancelBookingRequest, userID uuid.UUID) error
}

type bookingCommandsImpl struct {
	citaRepo     CitaRepository
	petRepo      PetRepository
	serviceStore queries.ServiceReadStore
	sessions     session.Store
	clock        clock.Clock
}

func NewBookingCommands(
	citaRepo CitaRepository,
	petRepo PetRepository,
	serviceStore queries.ServiceReadStore,
	sessions session.Store,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		citaRepo:     citaRepo,
		petRepo:      petRepo,
		serviceStore: serviceStore,
		sessions:     sessions,
		clock:        clk,
	}
}

func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (string, error) {
	fecha, err := req.ParseFecha()
	if err != nil {
		return "", errs.Mark(err, ErrInvalidBookingDate)
	}
	if !schedule.IsDateAvailable(fecha, b.clock.Now()) {
		return "", ErrInvalidBookingDate
	}
	if !schedule.ValidSlotTime(req.Hora) {
		return "", ErrInvalidBookingTime
	}

	if _, err := b.serviceStore.FindByID(ctx, req.ServicioID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrServiceNotFound
		}
		return "", err
	}

	p, err := b.petRepo.FindByID(ctx, req.MascotaID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrPetNotFound
		}
		return "", err
	}
	if p.OwnerID != userID {
		return "", ErrPetNotFound
	}

	cita := Cita{
		ID:            booking.NewID(b.clock.Now()),
		UserID:        userID,
		MascotaID:     req.MascotaID,
		ServicioID:    req.ServicioID,
		Fecha:         clock.Truncate(fecha),
		Hora:          req.Hora,
		Estado:        string(booking.StatusPendiente),
		Observaciones: req.Observaciones,
		CreatedAt:     b.clock.Now(),
	}

	if err := b.citaRepo.Create(ctx, cita); err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
			return "", ErrSlotConflict
		}
		return "", err
	}

	return cita.ID, nil
}

func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID string, req reqdto.CancelBookingRequest, userID uuid.UUID) error {
	cita, err := b.citaRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if cita.UserID != userID {
		return ErrBookingNotFound
	}

	status, err := booking.NewStatus(cita.Estado)
	if err != nil {
		return errs.Mark(err, ErrBookingValidation)
	}
	if !status.Cancellable() {
		return errs.Mark(booking.ErrNotCancellable, ErrBookingValidation)
	}

	if err := b.citaRepo.UpdateEstado(ctx, bookingID, string(booking.StatusCancelada)); err != nil {
		return err
	}

	// Mirror the cancellation into the session collection so the
	// customer's booking history carries the reason.
	b.cancelInCollection(ctx, bookingID, req, userID)
	return nil
}

func (b *bookingCommandsImpl) cancelInCollection(ctx context.Context, bookingID string, req reqdto.CancelBookingRequest, userID uuid.UUID) {
	key := session.BookingsKey(userID)

	var collection []booking.Booking
	if err := session.Load(ctx, b.sessions, key, &collection); err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			return
		}
	}

	for i := range collection {
		if collection[i].ID != bookingID {
			continue
		}
		if err := collection[i].Cancel(req.Motivo, req.Comentarios, b.clock.Now()); err != nil {
			return
		}
		_ = session.Save(ctx, b.sessions, key, collection)
		return
	}
}
