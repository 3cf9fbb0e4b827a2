// Package product models the storefront catalog items.
package product

import "errors"

var ErrInvalidProduct = errors.New("invalid product")

// Filterable attribute values use the source system's slugs
// (e.g. species "perro"/"gato", age "cachorro"/"adulto"/"senior");
// "all" marks an attribute that applies to every value.
const AttrAll = "all"

type Badge string

const (
	BadgeNone Badge = ""
	BadgeNew  Badge = "new"
	BadgeSale Badge = "sale"
	BadgeHot  Badge = "hot"
)

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Species     string `json:"species"`
	Age         string `json:"age"`
	Brand       string `json:"brand"`
	Size        string `json:"size"`
	Ingredients string `json:"ingredients"`
	Description string `json:"description"`
	// Price is in integer currency units (COP).
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Stock         int      `json:"stock"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Features      []string `json:"features"`
	Badge         Badge    `json:"badge,omitempty"`
	Active        bool     `json:"active"`
}

func (p Product) Validate() error {
	if p.ID <= 0 || p.Name == "" || p.Price < 0 || p.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}

// DiscountPercent is the rounded percentage off the original price, or 0
// when the product is not discounted.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	return int(float64(*p.OriginalPrice-p.Price)/float64(*p.OriginalPrice)*100 + 0.5)
}

// Snapshot carries the fields a cart line keeps of the product at
// add-to-cart time.
type Snapshot struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
}

func (p Product) Snapshot() Snapshot {
	return Snapshot{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Image:    p.Image,
	}
}
