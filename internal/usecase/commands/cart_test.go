//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"huellitas/internal/domain/product"
	reqdto "huellitas/internal/handler/dto/request"
	"huellitas/internal/infra"
	"huellitas/internal/infra/payment"
	"huellitas/internal/infra/session"
	"huellitas/internal/pkg/clock"
	"huellitas/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductStore struct {
	products map[int64]product.Product
}

func (s *stubProductStore) ListActive(_ context.Context) ([]product.Product, error) {
	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductStore) FindByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &p, nil
}

func newCartCommands(t *testing.T) commands.CartCommands {
	t.Helper()
	store := &stubProductStore{products: map[int64]product.Product{
		1: {ID: 1, Name: "Alimento Premium", Price: 89000, Stock: 10, Active: true},
		3: {ID: 3, Name: "Shampoo Hipoalergénico", Price: 25000, Stock: 3, Active: true},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gateway := payment.NewSimulated(logger, 0)
	clk := clock.NewMockClock(time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC))

	return commands.NewCartCommands(store, session.NewMemoryStore(), gateway, clk)
}

func TestCartAddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("adds and persists across loads", func(t *testing.T) {
		cartCmd := newCartCommands(t)

		ledger, err := cartCmd.AddItem(ctx, userID, reqdto.AddCartItemRequest{ProductID: 1, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, ledger.ItemCount())

		reloaded, err := cartCmd.GetCart(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, reloaded.ItemCount())
		assert.Equal(t, int64(2*89000), reloaded.Total())
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		cartCmd := newCartCommands(t)

		ledger, err := cartCmd.AddItem(ctx, userID, reqdto.AddCartItemRequest{ProductID: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, ledger.ItemCount())
	})

	t.Run("unknown product", func(t *testing.T) {
		cartCmd := newCartCommands(t)

		_, err := cartCmd.AddItem(ctx, userID, reqdto.AddCartItemRequest{ProductID: 99, Quantity: 1})
		assert.ErrorIs(t, err, commands.ErrCartProductNotFound)
	})

	t.Run("insufficient stock leaves the cart unchanged", func(t *testing.T) {
		cartCmd := newCartCommands(t)

		_, err := cartCmd.AddItem(ctx, userID, reqdto.AddCartItemRequest{ProductID: 3, Quantity: 5})
		assert.ErrorIs(t, err, commands.ErrInsufficientStock)

		ledger, err := cartCmd.GetCart(ctx, userID)
		require.NoError(t, err)
		assert.True(t, ledger.IsEmpty())
	})
}

func TestCartUpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cartCmd := newCartCommands(t)

	_, err := cartCmd.AddItem(ctx, userID, reqdto.AddCartItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	ledger, err := cartCmd.UpdateItem(ctx, userID, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, ledger.ItemCount())

	_, err = cartCmd.UpdateItem(ctx, userID, 1, 11)
	assert.ErrorIs(t, err, commands.ErrInsufficientStock)

	ledger, err = cartCmd.RemoveItem(ctx, userID, 1)
	require.NoError(t, err)
	assert.True(t, ledger.IsEmpty())

	_, err = cartCmd.RemoveItem(ctx, userID, 1)
	assert.ErrorIs(t, err, commands.ErrCartProductNotFound)
}

func TestCartCheckout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("charges the total and clears the cart", func(t *testing.T) {
		cartCmd := newCartCommands(t)
		_, err := cartCmd.AddItem(ctx, userID, reqdto.AddCartItemRequest{ProductID: 1, Quantity: 2})
		require.NoError(t, err)
		_, err = cartCmd.AddItem(ctx, userID, reqdto.AddCartItemRequest{ProductID: 3, Quantity: 1})
		require.NoError(t, err)

		result, err := cartCmd.Checkout(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, int64(2*89000+25000), result.Total)
		assert.Equal(t, 3, result.Items)
		require.NotNil(t, result.Receipt)
		assert.NotEmpty(t, result.Receipt.TransactionID)
		assert.Equal(t, result.Total, result.Receipt.Amount)

		ledger, err := cartCmd.GetCart(ctx, userID)
		require.NoError(t, err)
		assert.True(t, ledger.IsEmpty())
	})

	t.Run("empty cart", func(t *testing.T) {
		cartCmd := newCartCommands(t)

		_, err := cartCmd.Checkout(ctx, userID)
		assert.ErrorIs(t, err, commands.ErrEmptyCart)
	})
}
