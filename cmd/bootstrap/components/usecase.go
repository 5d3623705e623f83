package components

import (
	"log/slog"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/domain/listing"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/pkg/clock"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/usecase/commands"
	"wanderlust-booking/internal/usecase/queries"
	"wanderlust-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(cfg config.BookingConfig) booking.NumberGenerator {
		return booking.NewDefaultNumberGenerator(cfg.ConfirmationPrefix)
	},
	booking.NewFinalizer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewListingQueries,
	),
)

func NewBookingCommands(
	source listing.Source,
	intents shared.IntentSlot,
	confirmations shared.ConfirmationSlot,
	calc booking.PriceCalculator,
	finalizer *booking.Finalizer,
	clk clock.Clock,
	archive shared.Archive,
	notifier shared.Notifier,
	metrics *observability.Metrics,
	logger *slog.Logger,
	cfg config.BookingConfig,
) commands.BookingCommands {
	return commands.NewBookingCommands(commands.BookingCommandDeps{
		Source:        source,
		Intents:       intents,
		Confirmations: confirmations,
		Calculator:    calc,
		Finalizer:     finalizer,
		Clock:         clk,
		Archive:       archive,
		Notifier:      notifier,
		Metrics:       metrics,
		Logger:        logger,
	}, cfg)
}
