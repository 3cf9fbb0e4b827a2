package api

import (
	"errors"
	"net/http"
	"strconv"

	"huellitas/internal/domain/catalog"
	resdto "huellitas/internal/handler/dto/response"
	"huellitas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productQueries queries.ProductQueries
}

func NewProductHandler(productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productQueries: productQueries,
	}
}

// @Summary List active products with filters
// @Tags products
// @Produce json
// @Param categoria query string false "Category"
// @Param search query string false "Substring search"
// @Param especie query string false "Species"
// @Param edad query string false "Age group"
// @Param precio query string false "Price range"
// @Param marca query string false "Brand"
// @Param tamano query string false "Size"
// @Param ingrediente query string false "Ingredient type"
// @Param stock query string false "Stock level"
// @Param sort query string false "Sort mode"
// @Param page query int false "Page (1-based)"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.ProductPageResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	params := queries.ProductListParams{
		Filter: catalog.Filter{
			Category:   c.Query("categoria"),
			Search:     c.Query("search"),
			Species:    c.Query("especie"),
			Age:        c.Query("edad"),
			PriceRange: c.Query("precio"),
			Brand:      c.Query("marca"),
			Size:       c.Query("tamano"),
			Ingredient: c.Query("ingrediente"),
			Stock:      catalog.StockLevel(c.DefaultQuery("stock", string(catalog.StockAny))),
		},
		Sort:    catalog.SortMode(c.DefaultQuery("sort", string(catalog.SortNameAsc))),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", catalog.DefaultPerPage),
	}

	if !params.Sort.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Modo de ordenamiento inválido",
		})
		return
	}

	page, err := h.productQueries.ListProducts(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductPage(page))
}

// @Summary Get one product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "ID de producto inválido",
		})
		return
	}

	p, err := h.productQueries.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Producto no encontrado",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProduct(*p))
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
