package api

import (
	"net/http"

	resdto "huellitas/internal/handler/dto/response"
	"huellitas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	serviceQueries queries.ServiceQueries
}

func NewServiceHandler(serviceQueries queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{
		serviceQueries: serviceQueries,
	}
}

// @Summary List active grooming services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.serviceQueries.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServices(services))
}
