package bootstrap

import (
	"context"
	"log/slog"

	"wanderlust-booking/internal/infra/archive"
	"wanderlust-booking/internal/infra/db"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewArchive,
	),
)

// NewDB returns a nil pool when the archive is disabled.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if !cfg.DB.Enabled {
		return nil, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewArchive(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger) shared.Archive {
	if pool == nil {
		return archive.Noop{}
	}
	a := archive.NewPostgresArchive(pool, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return a.Migrate(ctx)
		},
	})
	return a
}
