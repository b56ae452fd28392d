package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/erfanansari/reservation-app/internal/domain/schedule"
	"github.com/erfanansari/reservation-app/internal/infra/snapshot"
	"github.com/erfanansari/reservation-app/internal/pkg/config"
	"github.com/erfanansari/reservation-app/internal/usecase"

	"go.uber.org/fx"
)

var SnapshotModule = fx.Module("snapshot",
	fx.Provide(
		NewSnapshotRepository,
		NewStore,
	),
)

// NewSnapshotRepository selects the persistence collaborator. A nil
// repository means memory-only operation.
func NewSnapshotRepository(lc fx.Lifecycle, cfg config.Config) (usecase.SnapshotRepository, error) {
	switch cfg.Snapshot.Backend {
	case "redis":
		client, cleanup, err := snapshot.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return snapshot.NewRedisStore(client), nil

	case "postgres":
		pool, cleanup, err := snapshot.NewPostgresPool(cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return snapshot.NewPostgresStore(pool), nil

	default:
		return nil, nil
	}
}

// NewStore loads the whole persisted state once at startup; the store is
// memory-authoritative from then on.
func NewStore(cfg config.Config, repo usecase.SnapshotRepository, logger *slog.Logger) *schedule.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := usecase.LoadStore(ctx, repo, logger)
	if cfg.Snapshot.SeedDemo {
		schedule.SeedDemoData(store)
		logger.Info("demo schedule data seeded")
	}
	return store
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}
