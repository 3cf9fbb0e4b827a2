// Package cart implements the shopping cart ledger: the authoritative
// line-item collection plus the stock counters it reserves against.
// Stock is decremented eagerly on add (optimistic reservation) and only
// an explicit remove restores it; checkout clears lines without touching
// the counters because the sale is final.
package cart

import (
	"errors"
	"time"

	"huellitas/internal/domain/product"
)

var (
	ErrProductNotFound   = errors.New("product not found in cart")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrEmptyCart         = errors.New("cart is empty")
)

type Line struct {
	Product  product.Snapshot `json:"product"`
	Quantity int              `json:"quantity"`
	AddedAt  time.Time        `json:"added_at"`
}

// Ledger serializes wholesale to the session store after every mutation;
// Stock holds the remaining units per product as this session sees them,
// seeded from the product record the first time it is touched.
type Ledger struct {
	Lines []Line        `json:"lines"`
	Stock map[int64]int `json:"stock"`
}

func NewLedger() *Ledger {
	return &Ledger{Stock: make(map[int64]int)}
}

// Normalize repairs a ledger deserialized from the store so later
// operations never hit a nil map.
func (l *Ledger) Normalize() {
	if l.Stock == nil {
		l.Stock = make(map[int64]int)
	}
}

func (l *Ledger) remaining(p product.Product) int {
	if r, ok := l.Stock[p.ID]; ok {
		return r
	}
	return p.Stock
}

func (l *Ledger) line(productID int64) *Line {
	for i := range l.Lines {
		if l.Lines[i].Product.ID == productID {
			return &l.Lines[i]
		}
	}
	return nil
}

// Add merges quantity into an existing line or appends a new one, and
// reserves the units against the product's stock counter.
func (l *Ledger) Add(p product.Product, quantity int, now time.Time) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	remaining := l.remaining(p)
	if quantity > remaining {
		return ErrInsufficientStock
	}

	if line := l.line(p.ID); line != nil {
		line.Quantity += quantity
	} else {
		l.Lines = append(l.Lines, Line{
			Product:  p.Snapshot(),
			Quantity: quantity,
			AddedAt:  now,
		})
	}
	l.Stock[p.ID] = remaining - quantity
	return nil
}

// UpdateQuantity sets a line's quantity. Below 1 it behaves as Remove.
// The allowed ceiling is the stock still free plus what this line
// already holds.
func (l *Ledger) UpdateQuantity(productID int64, newQuantity int) error {
	if newQuantity < 1 {
		return l.Remove(productID)
	}

	line := l.line(productID)
	if line == nil {
		return ErrProductNotFound
	}

	allowed := l.Stock[productID] + line.Quantity
	if newQuantity > allowed {
		return ErrInsufficientStock
	}

	l.Stock[productID] = allowed - newQuantity
	line.Quantity = newQuantity
	return nil
}

// Remove deletes the line and restores its reserved units to the stock
// counter.
func (l *Ledger) Remove(productID int64) error {
	for i := range l.Lines {
		if l.Lines[i].Product.ID == productID {
			l.Stock[productID] += l.Lines[i].Quantity
			l.Lines = append(l.Lines[:i], l.Lines[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (l *Ledger) Total() int64 {
	var total int64
	for _, line := range l.Lines {
		total += line.Product.Price * int64(line.Quantity)
	}
	return total
}

func (l *Ledger) ItemCount() int {
	var count int
	for _, line := range l.Lines {
		count += line.Quantity
	}
	return count
}

func (l *Ledger) IsEmpty() bool {
	return len(l.Lines) == 0
}

// Clear drops every line without restoring stock. Used by checkout once
// payment succeeds.
func (l *Ledger) Clear() {
	l.Lines = nil
}

// StockFor reports the remaining units this session sees for a product.
func (l *Ledger) StockFor(p product.Product) int {
	return l.remaining(p)
}
