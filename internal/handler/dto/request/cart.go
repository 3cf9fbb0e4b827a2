package request

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// EffectiveQuantity treats an omitted quantity as one unit.
func (r *AddCartItemRequest) EffectiveQuantity() int {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
