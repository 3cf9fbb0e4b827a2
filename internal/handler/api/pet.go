package api

import (
	"errors"
	"net/http"

	reqdto "huellitas/internal/handler/dto/request"
	resdto "huellitas/internal/handler/dto/response"
	"huellitas/internal/handler/middleware"
	"huellitas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PetHandler struct {
	petCommands commands.PetCommands
}

func NewPetHandler(petCommands commands.PetCommands) *PetHandler {
	return &PetHandler{
		petCommands: petCommands,
	}
}

// @Summary List the caller's pets
// @Tags pets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.PetResponse
// @Router /pets [get]
func (h *PetHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	pets, err := h.petCommands.ListPets(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPets(pets))
}

// @Summary Register a pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PetRequest true "Pet data"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req reqdto.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y especie son requeridos"})
		return
	}

	p, err := h.petCommands.AddPet(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, commands.ErrPetValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de mascota inválidos"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPet(p))
}

// @Summary Edit a pet
// @Tags pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body reqdto.PetRequest true "Pet data"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pets/{id} [put]
func (h *PetHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de mascota inválido"})
		return
	}

	var req reqdto.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y especie son requeridos"})
		return
	}

	p, err := h.petCommands.UpdatePet(c.Request.Context(), petID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Mascota no encontrada"})
		case errors.Is(err, commands.ErrPetValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de mascota inválidos"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPet(p))
}
