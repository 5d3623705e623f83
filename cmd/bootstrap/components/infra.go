package components

import (
	"log/slog"

	"wanderlust-booking/internal/domain/listing"
	"wanderlust-booking/internal/infra/catalog"
	"wanderlust-booking/internal/infra/mailer"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/infra/session"
	"wanderlust-booking/internal/pkg/clock"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		observability.NewMetrics,
		NewSessionStore,
		NewIntentSlot,
		NewConfirmationSlot,
		fx.Annotate(
			NewCatalog,
			fx.As(new(listing.Source)),
		),
		NewNotifier,
	),
)

func NewSessionStore(cfg config.Config, rdb *redis.Client, logger *slog.Logger) session.Store {
	if rdb == nil {
		return session.NewMemoryStore()
	}
	return session.NewRedisStore(rdb, cfg.Session.KeyPrefix, cfg.Session.TTL, logger)
}

func NewIntentSlot(store session.Store, logger *slog.Logger, metrics *observability.Metrics) shared.IntentSlot {
	return session.NewSlot(store, shared.KeyCurrentBooking, shared.ValidateIntentSnapshot, logger, metrics)
}

func NewConfirmationSlot(store session.Store, logger *slog.Logger, metrics *observability.Metrics) shared.ConfirmationSlot {
	return session.NewSlot(store, shared.KeyBookingConfirmation, shared.ValidateConfirmationSnapshot, logger, metrics)
}

func NewCatalog(clk clock.Clock, cfg config.CatalogConfig, metrics *observability.Metrics) *catalog.MockSource {
	return catalog.NewMockSource(clk, cfg.Latency, metrics)
}

func NewNotifier(cfg config.Config, logger *slog.Logger, metrics *observability.Metrics) shared.Notifier {
	if !cfg.Mail.Enabled {
		return mailer.NewLogNotifier(logger, metrics)
	}
	return mailer.NewSMTPNotifier(mailer.NewDialer(cfg.Mail), cfg.Mail.From, logger, metrics)
}
