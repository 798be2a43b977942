package components

import (
	"bundlestay/internal/infra/readstore"
	"bundlestay/internal/infra/repository"
	"bundlestay/internal/usecase"
	"bundlestay/internal/usecase/commands"
	"bundlestay/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingViewReadStore)),
		),
		fx.Annotate(
			readstore.NewBundleReadStore,
			fx.As(new(queries.BundleReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(usecase.CredentialStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewPackageRepository,
			fx.As(new(commands.PackageRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewBundleRepository,
			fx.As(new(commands.BundleRepository)),
		),
	),
)
