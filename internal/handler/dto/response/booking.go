package response

import (
	"time"

	"github.com/google/uuid"

	"huellitas/internal/domain/booking"
	"huellitas/internal/usecase/queries"
)

type BookingCreatedResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

type CitaResponse struct {
	ID            string    `json:"id"`
	Fecha         string    `json:"fecha"`
	Hora          string    `json:"hora"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones,omitempty"`
	ServicioID    int64     `json:"servicio_id"`
	Servicio      string    `json:"servicio"`
	Precio        int64     `json:"precio"`
	MascotaID     uuid.UUID `json:"mascota_id"`
	Mascota       string    `json:"mascota"`
	Especie       string    `json:"especie"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCitaView(v queries.CitaView) CitaResponse {
	return CitaResponse{
		ID:            v.ID,
		Fecha:         v.Fecha.Format("2006-01-02"),
		Hora:          v.Hora,
		Estado:        v.Estado,
		Observaciones: v.Observaciones,
		ServicioID:    v.ServiceID,
		Servicio:      v.ServiceName,
		Precio:        v.ServicePrice,
		MascotaID:     v.PetID,
		Mascota:       v.PetName,
		Especie:       v.PetSpecies,
		CreatedAt:     v.CreatedAt,
	}
}

func FromCitaViews(views []queries.CitaView) []CitaResponse {
	out := make([]CitaResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCitaView(v))
	}
	return out
}

// SessionBookingResponse exposes the rich wizard booking record,
// snapshots included.
type SessionBookingResponse struct {
	ID                   string                  `json:"id"`
	Service              booking.ServiceSnapshot `json:"service"`
	Fecha                string                  `json:"fecha"`
	Hora                 string                  `json:"hora"`
	Pet                  string                  `json:"mascota"`
	Observations         string                  `json:"observaciones,omitempty"`
	Addons               []string                `json:"addons,omitempty"`
	Total                int64                   `json:"total"`
	Estado               string                  `json:"estado"`
	CreatedAt            time.Time               `json:"created_at"`
	CancellationReason   string                  `json:"cancellation_reason,omitempty"`
	CancellationComments string                  `json:"cancellation_comments,omitempty"`
	CancelledAt          *time.Time              `json:"cancelled_at,omitempty"`
}

func FromSessionBooking(b booking.Booking) SessionBookingResponse {
	return SessionBookingResponse{
		ID:                   b.ID,
		Service:              b.Service,
		Fecha:                b.Date.Format("2006-01-02"),
		Hora:                 b.Time,
		Pet:                  b.Pet.Name,
		Observations:         b.Observations,
		Addons:               b.Addons,
		Total:                b.Total,
		Estado:               string(b.Status),
		CreatedAt:            b.CreatedAt,
		CancellationReason:   b.CancellationReason,
		CancellationComments: b.CancellationComments,
		CancelledAt:          b.CancelledAt,
	}
}

func FromSessionBookings(bookings []booking.Booking) []SessionBookingResponse {
	out := make([]SessionBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromSessionBooking(b))
	}
	return out
}
