package response

import (
	"huellitas/internal/domain/catalog"
	"huellitas/internal/domain/product"
)

type ProductResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Species       string   `json:"species"`
	Age           string   `json:"age"`
	Brand         string   `json:"brand"`
	Size          string   `json:"size"`
	Ingredients   string   `json:"ingredients"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Discount      int      `json:"discount,omitempty"`
	Image         string   `json:"image"`
	Stock         int      `json:"stock"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Features      []string `json:"features"`
	Badge         string   `json:"badge,omitempty"`
}

type ProductPageResponse struct {
	Products   []ProductResponse `json:"products"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

func FromProduct(p product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Species:       p.Species,
		Age:           p.Age,
		Brand:         p.Brand,
		Size:          p.Size,
		Ingredients:   p.Ingredients,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.DiscountPercent(),
		Image:         p.Image,
		Stock:         p.Stock,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Features:      p.Features,
		Badge:         string(p.Badge),
	}
}

func FromProductPage(page *catalog.Page) ProductPageResponse {
	items := make([]ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, FromProduct(p))
	}
	return ProductPageResponse{
		Products:   items,
		Page:       page.Page,
		PerPage:    page.PerPage,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}
