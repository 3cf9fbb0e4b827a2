//go:build unit

package wizard_test

import (
	"context"
	"testing"
	"time"

	"huellitas/internal/domain/booking"
	"huellitas/internal/domain/pet"
	"huellitas/internal/domain/schedule"
	"huellitas/internal/domain/service"
	"huellitas/internal/domain/wizard"
	"huellitas/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedAvailability marks every slot of every requested day free, except
// the times listed as taken.
type fixedAvailability struct {
	taken map[string]bool
}

func (f *fixedAvailability) SlotsFor(_ context.Context, _ time.Time) ([]schedule.Slot, error) {
	var slots []schedule.Slot
	for _, tm := range schedule.SlotTimes() {
		slots = append(slots, schedule.Slot{Time: tm, Available: !f.taken[tm]})
	}
	return slots, nil
}

var (
	services = []service.Service{
		{ID: 1, Name: "Baño Premium", Price: 25000, Duration: 60, Active: true},
		{ID: 2, Name: "Corte de Pelo", Price: 30000, Duration: 90, Active: true},
	}
	pets = []pet.Pet{
		{ID: uuid.New(), Name: "Rocky", Species: "Perro", Breed: "Beagle", Age: 3},
		{ID: uuid.New(), Name: "Misu", Species: "Gato", Age: 2},
	}
	// Wednesday.
	now = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	// The following Tuesday.
	bookDate = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
)

func newWizard(avail schedule.AvailabilityProvider) *wizard.Wizard {
	if avail == nil {
		avail = &fixedAvailability{}
	}
	return wizard.New(wizard.NewState(), services, pets, clock.NewMockClock(now), avail)
}

func TestFullFlow(t *testing.T) {
	ctx := context.Background()
	wz := newWizard(nil)

	wz.SelectService(1)
	require.NoError(t, wz.Advance(ctx))
	assert.Equal(t, wizard.StepSelectingDateTime, wz.State().Step)

	require.NoError(t, wz.SelectDate(ctx, bookDate))
	require.NoError(t, wz.SelectTime("10:00"))
	require.NoError(t, wz.Advance(ctx))

	require.NoError(t, wz.SelectPet(0))
	require.NoError(t, wz.Advance(ctx))
	assert.Equal(t, wizard.StepConfirming, wz.State().Step)

	_, known := wz.ToggleAddon("masaje")
	require.True(t, known)
	wz.SetObservations("tiene miedo al secador")
	assert.Equal(t, int64(25000+20000), wz.State().Subtotal())

	userID := uuid.New()
	b, err := wz.Confirm(userID)
	require.NoError(t, err)

	assert.Regexp(t, `^HB-\d+$`, b.ID)
	assert.Equal(t, booking.StatusConfirmada, b.Status)
	assert.Equal(t, int64(45000), b.Total)
	assert.Equal(t, "Rocky", b.Pet.Name)
	assert.Equal(t, "10:00", b.Time)
	assert.Equal(t, bookDate, b.Date)
	assert.Equal(t, userID, b.UserID)
	assert.Equal(t, "tiene miedo al secador", b.Observations)

	wz.Complete()
	assert.True(t, wz.State().Completed)
}

func TestSelectService(t *testing.T) {
	wz := newWizard(nil)

	wz.SelectService(99)
	assert.Nil(t, wz.State().Service)

	wz.SelectService(2)
	require.NotNil(t, wz.State().Service)
	assert.Equal(t, int64(30000), wz.State().Service.Price)
}

func TestSelectDate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects past dates", func(t *testing.T) {
		wz := newWizard(nil)
		err := wz.SelectDate(ctx, now.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, wizard.ErrPastDate)
	})

	t.Run("rejects sundays", func(t *testing.T) {
		wz := newWizard(nil)
		sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		err := wz.SelectDate(ctx, sunday)
		assert.ErrorIs(t, err, wizard.ErrDateUnavailable)
	})

	t.Run("loads slots and clears a stale time", func(t *testing.T) {
		wz := newWizard(nil)
		require.NoError(t, wz.SelectDate(ctx, bookDate))
		require.NoError(t, wz.SelectTime("10:00"))

		require.NoError(t, wz.SelectDate(ctx, bookDate.AddDate(0, 0, 1)))
		assert.Empty(t, wz.State().Time)
		assert.Len(t, wz.State().Slots, 20)
	})
}

func TestSelectTime(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a taken slot", func(t *testing.T) {
		wz := newWizard(&fixedAvailability{taken: map[string]bool{"10:00": true}})
		require.NoError(t, wz.SelectDate(ctx, bookDate))

		assert.ErrorIs(t, wz.SelectTime("10:00"), wizard.ErrSlotUnavailable)
		assert.NoError(t, wz.SelectTime("10:30"))
	})

	t.Run("rejects a time off the slot grid", func(t *testing.T) {
		wz := newWizard(nil)
		require.NoError(t, wz.SelectDate(ctx, bookDate))

		assert.ErrorIs(t, wz.SelectTime("22:00"), wizard.ErrSlotUnavailable)
	})
}

func TestSelectPet(t *testing.T) {
	wz := newWizard(nil)

	assert.ErrorIs(t, wz.SelectPet(-1), wizard.ErrPetIndexOutOfRange)
	assert.ErrorIs(t, wz.SelectPet(2), wizard.ErrPetIndexOutOfRange)

	require.NoError(t, wz.SelectPet(1))
	require.NotNil(t, wz.State().Pet)
	assert.Equal(t, "Misu", wz.State().Pet.Name)
	assert.Equal(t, 1, wz.State().PetIndex)
}

func TestAdvanceValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("step one requires a service", func(t *testing.T) {
		wz := newWizard(nil)
		assert.ErrorIs(t, wz.Advance(ctx), wizard.ErrServiceNotSelected)
		assert.Equal(t, wizard.StepSelectingService, wz.State().Step)
	})

	t.Run("step two requires date and time", func(t *testing.T) {
		wz := newWizard(nil)
		wz.SelectService(1)
		require.NoError(t, wz.Advance(ctx))

		assert.ErrorIs(t, wz.Advance(ctx), wizard.ErrDateTimeNotChosen)

		require.NoError(t, wz.SelectDate(ctx, bookDate))
		assert.ErrorIs(t, wz.Advance(ctx), wizard.ErrDateTimeNotChosen)
	})

	t.Run("step three requires a pet", func(t *testing.T) {
		wz := newWizard(nil)
		wz.SelectService(1)
		require.NoError(t, wz.Advance(ctx))
		require.NoError(t, wz.SelectDate(ctx, bookDate))
		require.NoError(t, wz.SelectTime("09:00"))
		require.NoError(t, wz.Advance(ctx))

		assert.ErrorIs(t, wz.Advance(ctx), wizard.ErrPetNotSelected)
	})

	t.Run("clamps at the confirmation step", func(t *testing.T) {
		wz := completedWizard(t)
		require.NoError(t, wz.Advance(ctx))
		assert.Equal(t, wizard.StepConfirming, wz.State().Step)
	})
}

func TestRetreat(t *testing.T) {
	ctx := context.Background()
	wz := newWizard(nil)

	wz.Retreat()
	assert.Equal(t, wizard.StepSelectingService, wz.State().Step)

	wz.SelectService(1)
	require.NoError(t, wz.Advance(ctx))
	wz.Retreat()
	assert.Equal(t, wizard.StepSelectingService, wz.State().Step)

	// Data entered so far survives going back.
	assert.NotNil(t, wz.State().Service)
}

func TestConfirm(t *testing.T) {
	t.Run("only on the confirmation step", func(t *testing.T) {
		wz := newWizard(nil)
		_, err := wz.Confirm(uuid.New())
		assert.ErrorIs(t, err, wizard.ErrNotConfirming)
	})

	t.Run("revalidates every step", func(t *testing.T) {
		wz := completedWizard(t)
		wz.State().Pet = nil

		_, err := wz.Confirm(uuid.New())
		assert.ErrorIs(t, err, wizard.ErrPetNotSelected)
	})
}

func TestReset(t *testing.T) {
	wz := completedWizard(t)

	wz.Reset()
	st := wz.State()
	assert.Equal(t, wizard.StepSelectingService, st.Step)
	assert.Nil(t, st.Service)
	assert.Nil(t, st.Date)
	assert.Nil(t, st.Pet)
	assert.Empty(t, st.Addons)
	assert.False(t, st.Completed)
}

func TestToggleAddonUnknown(t *testing.T) {
	wz := newWizard(nil)

	selected, known := wz.ToggleAddon("soplado-turbina")
	assert.False(t, known)
	assert.False(t, selected)
	assert.Empty(t, wz.State().Addons)
}

func TestCalendar(t *testing.T) {
	ctx := context.Background()
	wz := newWizard(nil)
	require.NoError(t, wz.SelectDate(ctx, bookDate))

	grid := wz.Calendar(schedule.MonthOf(now))
	require.Len(t, grid.Cells, 31)
	assert.True(t, grid.Cells[16].IsSelected)
}

// completedWizard walks a wizard to the confirmation step.
func completedWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	ctx := context.Background()
	wz := newWizard(nil)

	wz.SelectService(1)
	require.NoError(t, wz.Advance(ctx))
	require.NoError(t, wz.SelectDate(ctx, bookDate))
	require.NoError(t, wz.SelectTime("10:00"))
	require.NoError(t, wz.Advance(ctx))
	require.NoError(t, wz.SelectPet(0))
	require.NoError(t, wz.Advance(ctx))
	return wz
}
