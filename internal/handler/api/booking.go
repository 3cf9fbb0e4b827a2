package api

import (
	"errors"
	"net/http"

	reqdto "huellitas/internal/handler/dto/request"
	resdto "huellitas/internal/handler/dto/response"
	"huellitas/internal/handler/middleware"
	"huellitas/internal/usecase/commands"
	"huellitas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create an appointment
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Todos los campos son requeridos",
		})
		return
	}

	bookingID, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotConflict):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "El horario seleccionado ya está reservado",
			})
		case errors.Is(err, commands.ErrInvalidBookingDate), errors.Is(err, commands.ErrInvalidBookingTime):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Fecha u hora inválida",
			})
		case errors.Is(err, commands.ErrServiceNotFound), errors.Is(err, commands.ErrPetNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Servicio o mascota no encontrado",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{
		Message:   "Reserva creada exitosamente",
		BookingID: bookingID,
	})
}

// @Summary List the caller's appointments
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CitaResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	views, err := h.bookingQueries.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCitaViews(views))
}

// @Summary Cancel an appointment
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "El motivo de cancelación es requerido",
		})
		return
	}

	err := h.bookingCommands.CancelBooking(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reserva no encontrada",
			})
		case errors.Is(err, commands.ErrBookingValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "La reserva no se puede cancelar",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reserva cancelada exitosamente",
	})
}

// @Summary List every appointment (admin)
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CitaResponse
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	views, err := h.bookingQueries.ListAllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCitaViews(views))
}
