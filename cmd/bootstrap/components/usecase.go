package components

import (
	"log/slog"
	"time"

	"huellitas/internal/domain/schedule"
	"huellitas/internal/infra/availability"
	"huellitas/internal/infra/payment"
	"huellitas/internal/pkg/clock"
	"huellitas/internal/pkg/config"
	"huellitas/internal/usecase"
	"huellitas/internal/usecase/commands"
	"huellitas/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewAvailabilityProvider,
		fx.As(new(schedule.AvailabilityProvider)),
	),
	fx.Annotate(
		NewPaymentGateway,
		fx.As(new(payment.Gateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPetCommands,
		commands.NewBookingCommands,
		commands.NewCartCommands,
		commands.NewWizardCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewServiceQueries,
		queries.NewProductQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAvailabilityProvider(cfg config.Config, clk clock.Clock) *availability.Random {
	return availability.NewRandom(cfg.Booking.SlotAvailability, time.Now().UnixNano(), clk)
}

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *payment.Simulated {
	return payment.NewSimulated(logger, cfg.Booking.GatewayLatency)
}
