package catalog

import "huellitas/internal/domain/product"

const DefaultPerPage = 12

type Page struct {
	Items      []product.Product `json:"items"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

// Paginate slices the filtered list. Pages are 1-based; out-of-range
// pages return an empty item list with the real totals so the caller can
// render pagination controls.
func Paginate(products []product.Product, page, perPage int) Page {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}

	total := len(products)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page{
		Items:      products[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
