package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"huellitas/internal/domain/pet"
	"huellitas/internal/infra"
)

type PetRepository struct {
	db *pgxpool.Pool
}

func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO pets (id, owner_id, name, species, breed, age, weight, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Weight,
		p.Observations,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("pet owner not found", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE pets
		SET name = $2, species = $3, breed = $4, age = $5, weight = $6, observations = $7, updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Weight,
		p.Observations,
		p.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, species, breed, age, weight, observations, created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	var p pet.Pet
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&p.Observations,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}
	return &p, nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]pet.Pet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, species, breed, age, weight, observations, created_at, updated_at
		FROM pets
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	defer rows.Close()

	var pets []pet.Pet
	for rows.Next() {
		var p pet.Pet
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&p.Age,
			&p.Weight,
			&p.Observations,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet row", err)
		}
		pets = append(pets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pet rows", err)
	}
	return pets, nil
}
