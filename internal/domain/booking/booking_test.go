//go:build unit

package booking_test

import (
	"testing"
	"time"

	"huellitas/internal/domain/booking"
	"huellitas/internal/domain/pet"
	"huellitas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testService = service.Service{ID: 1, Name: "Baño Premium", Price: 25000, Duration: 60, Active: true}
	testPet     = pet.Snapshot{Name: "Rocky", Species: "Perro", Breed: "Beagle", Age: 3}
	testDate    = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	testNow     = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
)

func newBooking(t *testing.T, addons []string) *booking.Booking {
	t.Helper()
	b, err := booking.New(testService, testDate, "10:00", testPet, "", addons, uuid.New(), testNow)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := newBooking(t, nil)

		assert.Regexp(t, `^HB-\d+$`, b.ID)
		assert.Equal(t, booking.StatusConfirmada, b.Status)
		assert.Equal(t, int64(25000), b.Total)
		assert.Equal(t, testService.Name, b.Service.Name)
		assert.Equal(t, testPet.Name, b.Pet.Name)
		assert.NoError(t, b.Validate())
	})

	t.Run("addons are priced into the total", func(t *testing.T) {
		b := newBooking(t, []string{"limpieza-dental", "masaje"})

		assert.Equal(t, int64(25000+15000+20000), b.Total)
	})

	t.Run("unknown addons cost nothing", func(t *testing.T) {
		b := newBooking(t, []string{"grooming-deluxe"})

		assert.Equal(t, int64(25000), b.Total)
	})

	t.Run("missing fields", func(t *testing.T) {
		cases := []struct {
			name  string
			build func() (*booking.Booking, error)
			errIs error
		}{
			{
				name: "no service",
				build: func() (*booking.Booking, error) {
					return booking.New(service.Service{}, testDate, "10:00", testPet, "", nil, uuid.New(), testNow)
				},
				errIs: booking.ErrMissingService,
			},
			{
				name: "no date",
				build: func() (*booking.Booking, error) {
					return booking.New(testService, time.Time{}, "10:00", testPet, "", nil, uuid.New(), testNow)
				},
				errIs: booking.ErrMissingDate,
			},
			{
				name: "no time",
				build: func() (*booking.Booking, error) {
					return booking.New(testService, testDate, "", testPet, "", nil, uuid.New(), testNow)
				},
				errIs: booking.ErrMissingTime,
			},
			{
				name: "no pet",
				build: func() (*booking.Booking, error) {
					return booking.New(testService, testDate, "10:00", pet.Snapshot{}, "", nil, uuid.New(), testNow)
				},
				errIs: booking.ErrMissingPet,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b, err := tc.build()
				assert.Nil(t, b)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*booking.Booking)
		errIs  error
	}{
		{name: "valid record", mutate: func(*booking.Booking) {}},
		{
			name:   "malformed id",
			mutate: func(b *booking.Booking) { b.ID = "booking-42" },
			errIs:  booking.ErrInvalidBooking,
		},
		{
			name:   "unknown status",
			mutate: func(b *booking.Booking) { b.Status = "agendada" },
			errIs:  booking.ErrInvalidBooking,
		},
		{
			name:   "empty pet",
			mutate: func(b *booking.Booking) { b.Pet = pet.Snapshot{} },
			errIs:  booking.ErrInvalidBooking,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBooking(t, nil)
			tc.mutate(b)

			err := b.Validate()
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	cancelledAt := testNow.Add(time.Hour)

	t.Run("records reason, comments and timestamp", func(t *testing.T) {
		b := newBooking(t, nil)

		err := b.Cancel("cambio-planes", "viaje imprevisto", cancelledAt)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCancelada, b.Status)
		assert.Equal(t, "cambio-planes", b.CancellationReason)
		assert.Equal(t, "viaje imprevisto", b.CancellationComments)
		require.NotNil(t, b.CancelledAt)
		assert.Equal(t, cancelledAt, *b.CancelledAt)
	})

	t.Run("requires a reason", func(t *testing.T) {
		b := newBooking(t, nil)

		err := b.Cancel("", "", cancelledAt)
		assert.ErrorIs(t, err, booking.ErrReasonRequired)
		assert.Equal(t, booking.StatusConfirmada, b.Status)
	})

	t.Run("terminal statuses reject cancellation", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompletada, booking.StatusCancelada} {
			b := newBooking(t, nil)
			b.Status = status

			err := b.Cancel("cambio-planes", "", cancelledAt)
			assert.ErrorIs(t, err, booking.ErrNotCancellable)
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("parsing", func(t *testing.T) {
		got, err := booking.NewStatus("pendiente")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPendiente, got)

		_, err = booking.NewStatus("scheduled")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("slot blocking", func(t *testing.T) {
		assert.True(t, booking.StatusPendiente.Blocks())
		assert.True(t, booking.StatusConfirmada.Blocks())
		assert.False(t, booking.StatusCompletada.Blocks())
		assert.False(t, booking.StatusCancelada.Blocks())
	})
}

func TestToggleAddon(t *testing.T) {
	addons, selected := booking.ToggleAddon(nil, "masaje")
	assert.True(t, selected)
	assert.Equal(t, []string{"masaje"}, addons)

	addons, selected = booking.ToggleAddon(addons, "pedicure")
	assert.True(t, selected)
	assert.Equal(t, []string{"masaje", "pedicure"}, addons)

	addons, selected = booking.ToggleAddon(addons, "masaje")
	assert.False(t, selected)
	assert.Equal(t, []string{"pedicure"}, addons)
}
