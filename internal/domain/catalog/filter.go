// Package catalog answers filter/sort/paginate queries over the product
// list. Queries are pure: they never mutate the input slice.
package catalog

import (
	"strings"

	"huellitas/internal/domain/product"
)

type StockLevel string

const (
	StockAny StockLevel = "all"
	StockIn  StockLevel = "in-stock"
	StockLow StockLevel = "low-stock"
)

const lowStockThreshold = 5

// Filter mirrors the storefront's filter panel. Zero values and "all"
// both mean "no constraint".
type Filter struct {
	Category   string
	Species    string
	Age        string
	PriceRange string // "0-25000", "25000-50000", "50000-100000", "100000+"
	Brand      string
	Size       string
	Ingredient string
	Stock      StockLevel
	Search     string
}

func (f Filter) Apply(products []product.Product) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) matches(p product.Product) bool {
	if !matchAttr(f.Category, p.Category, false) {
		return false
	}
	if !matchAttr(f.Species, p.Species, false) {
		return false
	}
	// Age and size are soft attributes: products tagged "all" match any
	// requested value.
	if !matchAttr(f.Age, p.Age, true) {
		return false
	}
	if !matchAttr(f.Size, p.Size, true) {
		return false
	}
	if !matchAttr(f.Brand, p.Brand, false) {
		return false
	}
	if !matchAttr(f.Ingredient, p.Ingredients, false) {
		return false
	}
	if !f.matchesPrice(p.Price) {
		return false
	}
	if !f.matchesStock(p.Stock) {
		return false
	}
	if !f.matchesSearch(p) {
		return false
	}
	return true
}

func matchAttr(want, have string, soft bool) bool {
	if want == "" || want == product.AttrAll {
		return true
	}
	if soft && have == product.AttrAll {
		return true
	}
	return want == have
}

func (f Filter) matchesPrice(price int64) bool {
	switch f.PriceRange {
	case "", product.AttrAll:
		return true
	case "0-25000":
		return price <= 25000
	case "25000-50000":
		return price >= 25000 && price <= 50000
	case "50000-100000":
		return price >= 50000 && price <= 100000
	case "100000+":
		return price >= 100000
	default:
		return true
	}
}

func (f Filter) matchesStock(stock int) bool {
	switch f.Stock {
	case "", StockAny:
		return true
	case StockIn:
		return stock > 0
	case StockLow:
		return stock <= lowStockThreshold
	default:
		return true
	}
}

func (f Filter) matchesSearch(p product.Product) bool {
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	searchable := strings.ToLower(p.Name + " " + p.Description + " " + p.Category + " " + p.Species)
	return strings.Contains(searchable, term)
}
