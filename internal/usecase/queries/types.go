package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// CitaView is an appointment row joined with its service and pet
// display fields.
type CitaView struct {
	ID            string    `json:"id"`
	Fecha         time.Time `json:"fecha"`
	Hora          string    `json:"hora"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones,omitempty"`
	ServiceID     int64     `json:"servicio_id"`
	ServiceName   string    `json:"servicio_nombre"`
	ServicePrice  int64     `json:"servicio_precio"`
	PetID         uuid.UUID `json:"mascota_id"`
	PetName       string    `json:"mascota_nombre"`
	PetSpecies    string    `json:"mascota_especie"`
	CreatedAt     time.Time `json:"created_at"`
}
