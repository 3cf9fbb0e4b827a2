package seed

import (
	"context"
	"log/slog"

	"huellitas/internal/infra/repository"
)

// Run upserts the sample services and products.
func Run(ctx context.Context, services *repository.ServiceRepository, products *repository.ProductRepository) error {
	for _, s := range SampleServices() {
		if err := services.Upsert(ctx, s); err != nil {
			return err
		}
	}
	for _, p := range SampleProducts() {
		if err := products.Upsert(ctx, p); err != nil {
			return err
		}
	}
	slog.Info("sample data seeded",
		"services", len(SampleServices()),
		"products", len(SampleProducts()),
	)
	return nil
}
