package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "huellitas/internal/handler/dto/request"
	resdto "huellitas/internal/handler/dto/response"
	"huellitas/internal/handler/middleware"
	"huellitas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
	}
}

func cartUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return userID, ok
}

// @Summary Get the caller's cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	ledger, err := h.cartCommands.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLedger(ledger))
}

// @Summary Add a product to the cart
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Producto requerido"})
		return
	}

	ledger, err := h.cartCommands.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		h.renderCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLedger(ledger))
}

// @Summary Change a cart line's quantity
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cantidad requerida"})
		return
	}

	ledger, err := h.cartCommands.UpdateItem(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		h.renderCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLedger(ledger))
}

// @Summary Remove a product from the cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	ledger, err := h.cartCommands.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		h.renderCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLedger(ledger))
}

// @Summary Check out the cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	result, err := h.cartCommands.Checkout(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, commands.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El carrito está vacío"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckout(result.Receipt, result.Total, result.Items))
}

func (h *CartHandler) renderCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCartProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
	case errors.Is(err, commands.ErrInsufficientStock):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Stock insuficiente"})
	case errors.Is(err, commands.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cantidad inválida"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
