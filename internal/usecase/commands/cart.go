package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"huellitas/internal/domain/cart"
	reqdto "huellitas/internal/handler/dto/request"
	"huellitas/internal/infra"
	"huellitas/internal/infra/payment"
	"huellitas/internal/infra/session"
	"huellitas/internal/pkg/clock"
	"huellitas/internal/pkg/errs"
	"huellitas/internal/usecase/queries"
)

var (
	ErrCartProductNotFound = errs.New("product not found")
	ErrInsufficientStock   = errs.New("insufficient stock")
	ErrInvalidQuantity     = errs.New("invalid quantity")
	ErrEmptyCart           = errs.New("cart is empty")
)

type CheckoutResult struct {
	Receipt *payment.Receipt
	Total   int64
	Items   int
}

type CartCommands interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*cart.Ledger, error)
	AddItem(ctx context.Context, userID uuid.UUID, req reqdto.AddCartItemRequest) (*cart.Ledger, error)
	UpdateItem(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (*cart.Ledger, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) (*cart.Ledger, error)
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error)
}

type cartCommandsImpl struct {
	products queries.ProductReadStore
	sessions session.Store
	gateway  payment.Gateway
	clock    clock.Clock
}

func NewCartCommands(products queries.ProductReadStore, sessions session.Store, gateway payment.Gateway, clk clock.Clock) CartCommands {
	return &cartCommandsImpl{
		products: products,
		sessions: sessions,
		gateway:  gateway,
		clock:    clk,
	}
}

// loadLedger rehydrates the user's cart, starting fresh when no blob
// exists yet.
func (c *cartCommandsImpl) loadLedger(ctx context.Context, userID uuid.UUID) (*cart.Ledger, error) {
	ledger := cart.NewLedger()
	err := session.Load(ctx, c.sessions, session.CartKey(userID), ledger)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return nil, err
	}
	ledger.Normalize()
	return ledger, nil
}

func (c *cartCommandsImpl) saveLedger(ctx context.Context, userID uuid.UUID, ledger *cart.Ledger) error {
	return session.Save(ctx, c.sessions, session.CartKey(userID), ledger)
}

func (c *cartCommandsImpl) GetCart(ctx context.Context, userID uuid.UUID) (*cart.Ledger, error) {
	return c.loadLedger(ctx, userID)
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID uuid.UUID, req reqdto.AddCartItemRequest) (*cart.Ledger, error) {
	p, err := c.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartProductNotFound
		}
		return nil, err
	}

	ledger, err := c.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ledger.Add(*p, req.EffectiveQuantity(), c.clock.Now()); err != nil {
		return nil, markCartErr(err)
	}

	if err := c.saveLedger(ctx, userID, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (c *cartCommandsImpl) UpdateItem(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (*cart.Ledger, error) {
	ledger, err := c.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ledger.UpdateQuantity(productID, quantity); err != nil {
		return nil, markCartErr(err)
	}

	if err := c.saveLedger(ctx, userID, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) (*cart.Ledger, error) {
	ledger, err := c.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := ledger.Remove(productID); err != nil {
		return nil, markCartErr(err)
	}

	if err := c.saveLedger(ctx, userID, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// Checkout charges the cart total and clears the lines. Stock counters
// stay decremented; the sale is final.
func (c *cartCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error) {
	ledger, err := c.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ledger.IsEmpty() {
		return nil, ErrEmptyCart
	}

	total := ledger.Total()
	items := ledger.ItemCount()

	receipt, err := c.gateway.Charge(ctx, userID, total)
	if err != nil {
		return nil, err
	}

	ledger.Clear()
	if err := c.saveLedger(ctx, userID, ledger); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Receipt: receipt,
		Total:   total,
		Items:   items,
	}, nil
}

// markCartErr maps domain ledger errors onto the command sentinels the
// handler layer switches on.
func markCartErr(err error) error {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		return errs.Mark(err, ErrCartProductNotFound)
	case errors.Is(err, cart.ErrInsufficientStock):
		return errs.Mark(err, ErrInsufficientStock)
	case errors.Is(err, cart.ErrInvalidQuantity):
		return errs.Mark(err, ErrInvalidQuantity)
	case errors.Is(err, cart.ErrEmptyCart):
		return errs.Mark(err, ErrEmptyCart)
	default:
		return err
	}
}
