package request

import "time"

type SelectServiceRequest struct {
	ServicioID int64 `json:"servicio_id" binding:"required"`
}

type SelectDateRequest struct {
	Fecha string `json:"fecha" binding:"required"` // "2006-01-02"
}

func (r *SelectDateRequest) ParseFecha() (time.Time, error) {
	return time.Parse("2006-01-02", r.Fecha)
}

type SelectTimeRequest struct {
	Hora string `json:"hora" binding:"required"` // "15:04"
}

type SelectPetRequest struct {
	Index int `json:"index" binding:"min=0"`
}

type ToggleAddonRequest struct {
	AddonID string `json:"addon_id" binding:"required"`
}

type ObservationsRequest struct {
	Observaciones string `json:"observaciones"`
}
