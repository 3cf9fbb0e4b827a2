package request

type PetRequest struct {
	Nombre        string  `json:"nombre" binding:"required"`
	Especie       string  `json:"especie" binding:"required"`
	Raza          string  `json:"raza"`
	Edad          int     `json:"edad"`
	Peso          float64 `json:"peso"`
	Observaciones string  `json:"observaciones"`
}
