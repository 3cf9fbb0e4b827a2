//go:build unit

package cart_test

import (
	"encoding/json"
	"testing"
	"time"

	"huellitas/internal/domain/cart"
	"huellitas/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

func sampleProduct(id int64, stock int, price int64) product.Product {
	return product.Product{
		ID:     id,
		Name:   "Champú Hipoalergénico",
		Price:  price,
		Stock:  stock,
		Active: true,
	}
}

// checkConservation verifies the ledger's core invariant: the units a
// session sees plus the units its lines hold always equal the original
// stock.
func checkConservation(t *testing.T, l *cart.Ledger, p product.Product) {
	t.Helper()
	held := 0
	for _, line := range l.Lines {
		if line.Product.ID == p.ID {
			held = line.Quantity
		}
	}
	assert.Equal(t, p.Stock, l.StockFor(p)+held)
}

func TestAdd(t *testing.T) {
	p := sampleProduct(1, 10, 45000)

	t.Run("reserves stock as it adds", func(t *testing.T) {
		l := cart.NewLedger()

		require.NoError(t, l.Add(p, 3, now))
		assert.Equal(t, 7, l.StockFor(p))
		assert.Equal(t, 3, l.ItemCount())
		checkConservation(t, l, p)
	})

	t.Run("merges repeated adds into one line", func(t *testing.T) {
		l := cart.NewLedger()

		require.NoError(t, l.Add(p, 2, now))
		require.NoError(t, l.Add(p, 3, now))

		require.Len(t, l.Lines, 1)
		assert.Equal(t, 5, l.Lines[0].Quantity)
		assert.Equal(t, 5, l.StockFor(p))
		checkConservation(t, l, p)
	})

	t.Run("rejects more than remaining stock", func(t *testing.T) {
		scarce := sampleProduct(3, 3, 25000)
		l := cart.NewLedger()

		err := l.Add(scarce, 5, now)
		assert.ErrorIs(t, err, cart.ErrInsufficientStock)
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 3, l.StockFor(scarce))
	})

	t.Run("rejects adds past the reservation", func(t *testing.T) {
		scarce := sampleProduct(3, 3, 25000)
		l := cart.NewLedger()

		require.NoError(t, l.Add(scarce, 3, now))
		err := l.Add(scarce, 1, now)
		assert.ErrorIs(t, err, cart.ErrInsufficientStock)
		checkConservation(t, l, scarce)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		l := cart.NewLedger()

		assert.ErrorIs(t, l.Add(p, 0, now), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, l.Add(p, -2, now), cart.ErrInvalidQuantity)
	})
}

func TestUpdateQuantity(t *testing.T) {
	p := sampleProduct(1, 10, 45000)

	t.Run("rebalances the reservation", func(t *testing.T) {
		l := cart.NewLedger()
		require.NoError(t, l.Add(p, 2, now))

		require.NoError(t, l.UpdateQuantity(p.ID, 6))
		assert.Equal(t, 4, l.StockFor(p))

		require.NoError(t, l.UpdateQuantity(p.ID, 1))
		assert.Equal(t, 9, l.StockFor(p))
		checkConservation(t, l, p)
	})

	t.Run("ceiling is free stock plus the line's own units", func(t *testing.T) {
		l := cart.NewLedger()
		require.NoError(t, l.Add(p, 4, now))

		assert.NoError(t, l.UpdateQuantity(p.ID, 10))
		assert.ErrorIs(t, l.UpdateQuantity(p.ID, 11), cart.ErrInsufficientStock)
	})

	t.Run("zero behaves as remove", func(t *testing.T) {
		l := cart.NewLedger()
		require.NoError(t, l.Add(p, 4, now))

		require.NoError(t, l.UpdateQuantity(p.ID, 0))
		assert.True(t, l.IsEmpty())
		assert.Equal(t, p.Stock, l.StockFor(p))
	})

	t.Run("unknown product", func(t *testing.T) {
		l := cart.NewLedger()
		assert.ErrorIs(t, l.UpdateQuantity(99, 1), cart.ErrProductNotFound)
	})
}

func TestRemove(t *testing.T) {
	p := sampleProduct(1, 10, 45000)

	t.Run("restores the reserved units", func(t *testing.T) {
		l := cart.NewLedger()
		require.NoError(t, l.Add(p, 4, now))

		require.NoError(t, l.Remove(p.ID))
		assert.True(t, l.IsEmpty())
		assert.Equal(t, 10, l.StockFor(p))
	})

	t.Run("unknown product", func(t *testing.T) {
		l := cart.NewLedger()
		assert.ErrorIs(t, l.Remove(p.ID), cart.ErrProductNotFound)
	})
}

func TestTotals(t *testing.T) {
	a := sampleProduct(1, 10, 45000)
	b := sampleProduct(2, 8, 32000)

	l := cart.NewLedger()
	require.NoError(t, l.Add(a, 2, now))
	require.NoError(t, l.Add(b, 1, now))

	assert.Equal(t, int64(2*45000+32000), l.Total())
	assert.Equal(t, 3, l.ItemCount())
}

func TestClear(t *testing.T) {
	p := sampleProduct(1, 10, 45000)

	l := cart.NewLedger()
	require.NoError(t, l.Add(p, 4, now))
	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, int64(0), l.Total())
	// Checkout is a sale: the reserved units stay consumed.
	assert.Equal(t, 6, l.StockFor(p))
}

func TestLedgerSerialization(t *testing.T) {
	p := sampleProduct(1, 10, 45000)

	l := cart.NewLedger()
	require.NoError(t, l.Add(p, 3, now))

	blob, err := json.Marshal(l)
	require.NoError(t, err)

	restored := &cart.Ledger{}
	require.NoError(t, json.Unmarshal(blob, restored))
	restored.Normalize()

	assert.Equal(t, l.Total(), restored.Total())
	assert.Equal(t, 7, restored.StockFor(p))
	checkConservation(t, restored, p)
}

func TestNormalize(t *testing.T) {
	l := &cart.Ledger{}
	l.Normalize()

	p := sampleProduct(1, 10, 45000)
	assert.NoError(t, l.Add(p, 1, now))
}
