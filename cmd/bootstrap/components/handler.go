package components

import (
	"context"

	"huellitas/internal/handler"
	"huellitas/internal/handler/api"
	"huellitas/internal/handler/middleware"
	"huellitas/internal/infra/repository"
	"huellitas/internal/infra/seed"
	"huellitas/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewServiceHandler,
		api.NewProductHandler,
		api.NewBookingHandler,
		api.NewCartHandler,
		api.NewWizardHandler,
		api.NewPetHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		handler.NewRouter,
		seedSampleData,
	),
)

func NewHandlers(
	auth *api.AuthHandler,
	service *api.ServiceHandler,
	product *api.ProductHandler,
	booking *api.BookingHandler,
	cart *api.CartHandler,
	wizard *api.WizardHandler,
	pet *api.PetHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Service: service,
		Product: product,
		Booking: booking,
		Cart:    cart,
		Wizard:  wizard,
		Pet:     pet,
	}
}

func seedSampleData(cfg config.Config, services *repository.ServiceRepository, products *repository.ProductRepository) error {
	if !cfg.Booking.SeedSampleData {
		return nil
	}
	return seed.Run(context.Background(), services, products)
}
