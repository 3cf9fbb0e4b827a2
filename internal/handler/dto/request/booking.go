package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	MascotaID     uuid.UUID `json:"mascota_id" binding:"required"`
	ServicioID    int64     `json:"servicio_id" binding:"required"`
	Fecha         string    `json:"fecha" binding:"required"` // "2006-01-02"
	Hora          string    `json:"hora" binding:"required"`  // "15:04"
	Observaciones string    `json:"observaciones"`
}

func (r *CreateBookingRequest) ParseFecha() (time.Time, error) {
	return time.Parse("2006-01-02", r.Fecha)
}

type CancelBookingRequest struct {
	Motivo      string `json:"motivo" binding:"required"`
	Comentarios string `json:"comentarios"`
}
