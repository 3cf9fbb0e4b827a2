package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type Cita struct {
	ID            string
	UserID        uuid.UUID
	MascotaID     uuid.UUID
	ServicioID    int64
	Fecha         time.Time
	Hora          string
	Estado        string
	Observaciones string
	CreatedAt     time.Time
}
