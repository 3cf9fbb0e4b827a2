package api

import (
	"errors"
	"net/http"
	"time"

	"huellitas/internal/domain/wizard"
	reqdto "huellitas/internal/handler/dto/request"
	resdto "huellitas/internal/handler/dto/response"
	"huellitas/internal/handler/middleware"
	"huellitas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizardCommands commands.WizardCommands
}

func NewWizardHandler(wizardCommands commands.WizardCommands) *WizardHandler {
	return &WizardHandler{
		wizardCommands: wizardCommands,
	}
}

func wizardUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return userID, ok
}

func (h *WizardHandler) renderState(c *gin.Context, state *wizard.State, err error) {
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(state))
}

func (h *WizardHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrPastDate),
		errors.Is(err, wizard.ErrDateUnavailable),
		errors.Is(err, wizard.ErrSlotUnavailable),
		errors.Is(err, wizard.ErrPetIndexOutOfRange),
		errors.Is(err, wizard.ErrServiceNotSelected),
		errors.Is(err, wizard.ErrDateTimeNotChosen),
		errors.Is(err, wizard.ErrPetNotSelected),
		errors.Is(err, wizard.ErrNotConfirming):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, commands.ErrWizardValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de reserva inválidos"})
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "El horario seleccionado ya está reservado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// @Summary Get the wizard state
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard [get]
func (h *WizardHandler) GetState(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}
	state, err := h.wizardCommands.GetState(c.Request.Context(), userID)
	h.renderState(c, state, err)
}

// @Summary Choose a service
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectServiceRequest true "Service choice"
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/service [post]
func (h *WizardHandler) SelectService(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	var req reqdto.SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Servicio requerido"})
		return
	}

	state, err := h.wizardCommands.SelectService(c.Request.Context(), userID, req.ServicioID)
	h.renderState(c, state, err)
}

// @Summary Choose a date
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectDateRequest true "Date choice"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 400 {object} map[string]string
// @Router /wizard/date [post]
func (h *WizardHandler) SelectDate(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha requerida"})
		return
	}
	fecha, err := req.ParseFecha()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de fecha inválido"})
		return
	}

	state, err := h.wizardCommands.SelectDate(c.Request.Context(), userID, fecha)
	h.renderState(c, state, err)
}

// @Summary Choose a time slot
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectTimeRequest true "Time choice"
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/time [post]
func (h *WizardHandler) SelectTime(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	var req reqdto.SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hora requerida"})
		return
	}

	state, err := h.wizardCommands.SelectTime(c.Request.Context(), userID, req.Hora)
	h.renderState(c, state, err)
}

// @Summary Choose a pet
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SelectPetRequest true "Pet index"
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/pet [post]
func (h *WizardHandler) SelectPet(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	var req reqdto.SelectPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mascota requerida"})
		return
	}

	state, err := h.wizardCommands.SelectPet(c.Request.Context(), userID, req.Index)
	h.renderState(c, state, err)
}

// @Summary Toggle an addon
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleAddonRequest true "Addon ID"
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/addons [post]
func (h *WizardHandler) ToggleAddon(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	var req reqdto.ToggleAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Addon requerido"})
		return
	}

	state, err := h.wizardCommands.ToggleAddon(c.Request.Context(), userID, req.AddonID)
	h.renderState(c, state, err)
}

// @Summary Set booking observations
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ObservationsRequest true "Observations"
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/observations [post]
func (h *WizardHandler) SetObservations(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	var req reqdto.ObservationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato inválido"})
		return
	}

	state, err := h.wizardCommands.SetObservations(c.Request.Context(), userID, req.Observaciones)
	h.renderState(c, state, err)
}

// @Summary Advance to the next step
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 400 {object} map[string]string
// @Router /wizard/advance [post]
func (h *WizardHandler) Advance(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}
	state, err := h.wizardCommands.Advance(c.Request.Context(), userID)
	h.renderState(c, state, err)
}

// @Summary Go back one step
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/retreat [post]
func (h *WizardHandler) Retreat(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}
	state, err := h.wizardCommands.Retreat(c.Request.Context(), userID)
	h.renderState(c, state, err)
}

// @Summary Confirm the booking
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 201 {object} resdto.SessionBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/confirm [post]
func (h *WizardHandler) Confirm(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	bk, err := h.wizardCommands.Confirm(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSessionBooking(*bk))
}

// @Summary Reset the wizard
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Router /wizard/reset [post]
func (h *WizardHandler) Reset(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}
	state, err := h.wizardCommands.Reset(c.Request.Context(), userID)
	h.renderState(c, state, err)
}

// @Summary Render a calendar month
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month index (0-based)"
// @Success 200 {object} resdto.CalendarResponse
// @Router /wizard/calendar [get]
func (h *WizardHandler) Calendar(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	year := queryInt(c, "year", time.Now().Year())
	monthIndex := queryInt(c, "month", int(time.Now().Month())-1)
	if monthIndex < 0 || monthIndex > 11 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido"})
		return
	}

	grid, err := h.wizardCommands.Calendar(c.Request.Context(), userID, year, monthIndex)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGrid(year, monthIndex, grid))
}

// @Summary List time slots for a date
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Param date query string true "Date (2006-01-02)"
// @Success 200 {object} resdto.SlotsResponse
// @Router /wizard/slots [get]
func (h *WizardHandler) Slots(c *gin.Context) {
	if _, ok := wizardUserID(c); !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de fecha inválido"})
		return
	}

	slots, err := h.wizardCommands.Slots(c.Request.Context(), date)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(date, slots))
}

// @Summary List the caller's wizard bookings
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SessionBookingResponse
// @Router /wizard/bookings [get]
func (h *WizardHandler) ListBookings(c *gin.Context) {
	userID, ok := wizardUserID(c)
	if !ok {
		return
	}

	bookings, err := h.wizardCommands.ListSessionBookings(c.Request.Context(), userID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionBookings(bookings))
}
