package response

import (
	"time"

	"github.com/google/uuid"

	"huellitas/internal/domain/pet"
)

type PetResponse struct {
	ID            uuid.UUID `json:"id"`
	Nombre        string    `json:"nombre"`
	Especie       string    `json:"especie"`
	Raza          string    `json:"raza,omitempty"`
	Edad          int       `json:"edad,omitempty"`
	Peso          float64   `json:"peso,omitempty"`
	Observaciones string    `json:"observaciones,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPet(p *pet.Pet) PetResponse {
	return PetResponse{
		ID:            p.ID,
		Nombre:        p.Name,
		Especie:       p.Species,
		Raza:          p.Breed,
		Edad:          p.Age,
		Peso:          p.Weight,
		Observaciones: p.Observations,
		CreatedAt:     p.CreatedAt,
	}
}

func FromPets(pets []pet.Pet) []PetResponse {
	out := make([]PetResponse, 0, len(pets))
	for i := range pets {
		out = append(out, FromPet(&pets[i]))
	}
	return out
}
