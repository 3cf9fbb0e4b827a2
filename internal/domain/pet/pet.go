// Package pet models the pets a customer registers and books services for.
package pet

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("pet name is required")
	ErrSpeciesRequired = errors.New("pet species is required")
)

// Pet is owned by a user, created on first save and mutated in place on
// edit. Optional fields stay zero when the form leaves them blank.
type Pet struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed,omitempty"`
	Age          int       `json:"age,omitempty"`
	Weight       float64   `json:"weight,omitempty"`
	Observations string    `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func New(ownerID uuid.UUID, name, species, breed string, age int, weight float64, observations string, now time.Time) (*Pet, error) {
	p := &Pet{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         strings.TrimSpace(name),
		Species:      strings.TrimSpace(species),
		Breed:        strings.TrimSpace(breed),
		Age:          age,
		Weight:       weight,
		Observations: observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pet) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Species == "" {
		return ErrSpeciesRequired
	}
	return nil
}

// Update mutates the editable fields in place, keeping identity and owner.
func (p *Pet) Update(name, species, breed string, age int, weight float64, observations string, now time.Time) error {
	updated := *p
	updated.Name = strings.TrimSpace(name)
	updated.Species = strings.TrimSpace(species)
	updated.Breed = strings.TrimSpace(breed)
	updated.Age = age
	updated.Weight = weight
	updated.Observations = observations
	if err := updated.Validate(); err != nil {
		return err
	}
	updated.UpdatedAt = now
	*p = updated
	return nil
}

// Snapshot is the copied-by-value record embedded in a booking at
// selection time, not a live reference.
type Snapshot struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	Age     int    `json:"age,omitempty"`
}

func (p *Pet) Snapshot() Snapshot {
	return Snapshot{
		Name:    p.Name,
		Species: p.Species,
		Breed:   p.Breed,
		Age:     p.Age,
	}
}
