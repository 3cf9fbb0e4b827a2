package response

import (
	"time"

	"huellitas/internal/domain/cart"
	"huellitas/internal/infra/payment"
)

type CartLineResponse struct {
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	Subtotal  int64     `json:"subtotal"`
	AddedAt   time.Time `json:"added_at"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	Total     int64              `json:"total"`
	ItemCount int                `json:"item_count"`
}

type CheckoutResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
	Total         int64  `json:"total"`
	Items         int    `json:"items"`
}

func FromLedger(l *cart.Ledger) CartResponse {
	items := make([]CartLineResponse, 0, len(l.Lines))
	for _, line := range l.Lines {
		items = append(items, CartLineResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Category:  line.Product.Category,
			Price:     line.Product.Price,
			Image:     line.Product.Image,
			Quantity:  line.Quantity,
			Subtotal:  line.Product.Price * int64(line.Quantity),
			AddedAt:   line.AddedAt,
		})
	}
	return CartResponse{
		Items:     items,
		Total:     l.Total(),
		ItemCount: l.ItemCount(),
	}
}

func FromCheckout(receipt *payment.Receipt, total int64, items int) CheckoutResponse {
	return CheckoutResponse{
		Message:       "Compra realizada con éxito",
		TransactionID: receipt.TransactionID,
		Total:         total,
		Items:         items,
	}
}
