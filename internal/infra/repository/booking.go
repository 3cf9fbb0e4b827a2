package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huellitas/internal/infra"
	"huellitas/internal/usecase/commands"
	"huellitas/internal/usecase/queries"
)

// CitaRepository persists appointments. The live-slot uniqueness rule
// lives in the uq_citas_slot partial index; a violation surfaces as
// KindConflict.
type CitaRepository struct {
	db *pgxpool.Pool
}

func NewCitaRepository(db *pgxpool.Pool) *CitaRepository {
	return &CitaRepository{db: db}
}

func (r *CitaRepository) Create(ctx context.Context, cita commands.Cita) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO citas (id, user_id, mascota_id, servicio_id, fecha, hora, estado, observaciones, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		cita.ID,
		cita.UserID,
		cita.MascotaID,
		cita.ServicioID,
		cita.Fecha,
		cita.Hora,
		cita.Estado,
		cita.Observaciones,
		cita.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("slot already booked", err, infra.KindConflict)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("referenced record not found", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *CitaRepository) FindByID(ctx context.Context, id string) (*commands.Cita, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, mascota_id, servicio_id, fecha, hora, estado, observaciones, created_at
		FROM citas
		WHERE id = $1
	`, id)

	var c commands.Cita
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.MascotaID,
		&c.ServicioID,
		&c.Fecha,
		&c.Hora,
		&c.Estado,
		&c.Observaciones,
		&c.CreatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &c, nil
}

func (r *CitaRepository) UpdateEstado(ctx context.Context, id, estado string) error {
	tag, err := r.db.Exec(ctx, `UPDATE citas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const citaViewQuery = `
	SELECT
		c.id, c.fecha, c.hora, c.estado, c.observaciones, c.created_at,
		s.id, s.name, s.price,
		p.id, p.name, p.species
	FROM citas c
	JOIN services s ON s.id = c.servicio_id
	JOIN pets p ON p.id = c.mascota_id
`

func (r *CitaRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.CitaView, error) {
	rows, err := r.db.Query(ctx, citaViewQuery+`
		WHERE c.user_id = $1
		ORDER BY c.fecha DESC, c.hora DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return scanCitaViews(rows)
}

func (r *CitaRepository) ListAll(ctx context.Context) ([]queries.CitaView, error) {
	rows, err := r.db.Query(ctx, citaViewQuery+`
		ORDER BY c.fecha DESC, c.hora DESC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return scanCitaViews(rows)
}

func scanCitaViews(rows pgx.Rows) ([]queries.CitaView, error) {
	var views []queries.CitaView
	for rows.Next() {
		var v queries.CitaView
		if err := rows.Scan(
			&v.ID,
			&v.Fecha,
			&v.Hora,
			&v.Estado,
			&v.Observaciones,
			&v.CreatedAt,
			&v.ServiceID,
			&v.ServiceName,
			&v.ServicePrice,
			&v.PetID,
			&v.PetName,
			&v.PetSpecies,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}
