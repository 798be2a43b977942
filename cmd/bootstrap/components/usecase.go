package components

import (
	"bundlestay/internal/pkg/clock"
	"bundlestay/internal/pkg/config"
	"bundlestay/internal/usecase"
	"bundlestay/internal/usecase/commands"
	"bundlestay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
	usecase.NewTokenValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		NewBookingCommands,
		NewBundleCommands,
		commands.NewIngestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewBundleQueries,
		queries.NewDashboardQueries,
	),
)

func NewBookingCommands(
	cfg config.Config,
	customerRepo commands.CustomerRepository,
	packageRepo commands.PackageRepository,
	bookingRepo commands.BookingRepository,
	publisher commands.EventPublisher,
) commands.BookingCommands {
	return commands.NewBookingCommands(customerRepo, packageRepo, bookingRepo, publisher, cfg.Kafka.BookingTopic)
}

func NewBundleCommands(
	cfg config.Config,
	customerRepo commands.CustomerRepository,
	packageRepo commands.PackageRepository,
	bundleRepo commands.BundleRepository,
	publisher commands.EventPublisher,
	clk clock.Clock,
) commands.BundleCommands {
	return commands.NewBundleCommands(customerRepo, packageRepo, bundleRepo, publisher, cfg.Kafka.BundleTopic, clk)
}
