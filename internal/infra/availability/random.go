// Package availability provides schedule.AvailabilityProvider
// implementations.
package availability

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"huellitas/internal/domain/schedule"
	"huellitas/internal/pkg/clock"
)

// Random marks each slot of a day available with probability rate.
// With rate 1.0 every slot is open, which is what tests use.
type Random struct {
	mu    sync.Mutex
	rng   *rand.Rand
	rate  float64
	clock clock.Clock
}

func NewRandom(rate float64, seed int64, clk clock.Clock) *Random {
	return &Random{
		rng:   rand.New(rand.NewSource(seed)),
		rate:  rate,
		clock: clk,
	}
}

func (r *Random) SlotsFor(_ context.Context, date time.Time) ([]schedule.Slot, error) {
	if !schedule.IsDateAvailable(date, r.clock.Now()) {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	times := schedule.SlotTimes()
	slots := make([]schedule.Slot, 0, len(times))
	for _, t := range times {
		slots = append(slots, schedule.Slot{
			Time:      t,
			Available: r.rng.Float64() < r.rate,
		})
	}
	return slots, nil
}
