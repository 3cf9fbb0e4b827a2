package components

import (
	repo_impl "huellitas/internal/infra/repository"
	"huellitas/internal/usecase/commands"
	"huellitas/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repo_impl.NewPetRepository,
			fx.As(new(commands.PetRepository)),
		),
		fx.Annotate(
			repo_impl.NewCitaRepository,
			fx.As(new(commands.CitaRepository)),
			fx.As(new(queries.CitaReadStore)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(queries.ProductReadStore)),
		),
		// Concrete repositories for the sample-data seeder.
		repo_impl.NewServiceRepository,
		repo_impl.NewProductRepository,
	),
)
