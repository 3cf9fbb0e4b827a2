package catalog

import (
	"sort"

	"huellitas/internal/domain/product"
)

type SortMode string

const (
	SortNameAsc    SortMode = "name-asc"
	SortNameDesc   SortMode = "name-desc"
	SortPriceAsc   SortMode = "price-asc"
	SortPriceDesc  SortMode = "price-desc"
	SortPopularity SortMode = "popularity"
	SortNewest     SortMode = "newest"
)

func (m SortMode) IsValid() bool {
	switch m {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortPopularity, SortNewest:
		return true
	default:
		return false
	}
}

// Sort orders products in place by the given mode. Unknown modes leave
// the order untouched, matching the storefront's default branch.
func Sort(products []product.Product, mode SortMode) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch mode {
		case SortNameAsc:
			return a.Name < b.Name
		case SortNameDesc:
			return b.Name < a.Name
		case SortPriceAsc:
			return a.Price < b.Price
		case SortPriceDesc:
			return b.Price < a.Price
		case SortPopularity:
			return b.Rating < a.Rating
		case SortNewest:
			return b.ID < a.ID
		default:
			return false
		}
	})
}
