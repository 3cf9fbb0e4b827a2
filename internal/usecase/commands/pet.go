package commands

import (
	"context"

	"github.com/google/uuid"

	"huellitas/internal/domain/pet"
	reqdto "huellitas/internal/handler/dto/request"
	"huellitas/internal/infra"
	"huellitas/internal/pkg/clock"
	"huellitas/internal/pkg/errs"
)

var ErrPetValidation = errs.New("pet validation error")

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) error
	Update(ctx context.Context, p *pet.Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]pet.Pet, error)
}

type PetCommands interface {
	AddPet(ctx context.Context, req reqdto.PetRequest, ownerID uuid.UUID) (*pet.Pet, error)
	UpdatePet(ctx context.Context, petID uuid.UUID, req reqdto.PetRequest, ownerID uuid.UUID) (*pet.Pet, error)
	ListPets(ctx context.Context, ownerID uuid.UUID) ([]pet.Pet, error)
}

type petCommandsImpl struct {
	petRepo PetRepository
	clock   clock.Clock
}

func NewPetCommands(petRepo PetRepository, clk clock.Clock) PetCommands {
	return &petCommandsImpl{
		petRepo: petRepo,
		clock:   clk,
	}
}

func (p *petCommandsImpl) AddPet(ctx context.Context, req reqdto.PetRequest, ownerID uuid.UUID) (*pet.Pet, error) {
	newPet, err := pet.New(ownerID, req.Nombre, req.Especie, req.Raza, req.Edad, req.Peso, req.Observaciones, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrPetValidation)
	}

	if err := p.petRepo.Create(ctx, newPet); err != nil {
		return nil, err
	}
	return newPet, nil
}

func (p *petCommandsImpl) UpdatePet(ctx context.Context, petID uuid.UUID, req reqdto.PetRequest, ownerID uuid.UUID) (*pet.Pet, error) {
	existing, err := p.petRepo.FindByID(ctx, petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, ErrPetNotFound
	}

	if err := existing.Update(req.Nombre, req.Especie, req.Raza, req.Edad, req.Peso, req.Observaciones, p.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrPetValidation)
	}

	if err := p.petRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (p *petCommandsImpl) ListPets(ctx context.Context, ownerID uuid.UUID) ([]pet.Pet, error) {
	return p.petRepo.ListByOwner(ctx, ownerID)
}
