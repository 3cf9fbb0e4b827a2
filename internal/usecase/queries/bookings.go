package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// ListUserBookings returns the caller's appointments joined with
	// service and pet display fields, newest first.
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]CitaView, error)
	// ListAllBookings returns every appointment for the admin agenda.
	ListAllBookings(ctx context.Context) ([]CitaView, error)
}

type CitaReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CitaView, error)
	ListAll(ctx context.Context) ([]CitaView, error)
}

type bookingQueriesImpl struct {
	readStore CitaReadStore
}

func NewBookingQueries(readStore CitaReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]CitaView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListAllBookings(ctx context.Context) ([]CitaView, error) {
	return q.readStore.ListAll(ctx)
}
