package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"huellitas/internal/domain/service"
	"huellitas/internal/infra"
)

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]service.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, duration, icon, features, active
		FROM services
		WHERE active
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var services []service.Service
	for rows.Next() {
		var s service.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.Icon, &s.Features, &s.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return services, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*service.Service, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, duration, icon, features, active
		FROM services
		WHERE id = $1 AND active
	`, id)

	var s service.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.Icon, &s.Features, &s.Active); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &s, nil
}

// Upsert keeps the seed idempotent across restarts.
func (r *ServiceRepository) Upsert(ctx context.Context, s service.Service) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO services (id, name, description, price, duration, icon, features, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			duration = EXCLUDED.duration,
			icon = EXCLUDED.icon,
			features = EXCLUDED.features,
			active = EXCLUDED.active
	`, s.ID, s.Name, s.Description, s.Price, s.Duration, s.Icon, s.Features, s.Active)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert service", err)
	}
	return nil
}
