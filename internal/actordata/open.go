package actordata

import (
	"context"
	"fmt"

	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/database"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// Open creates the store selected by cfg.StoreDriver, migrated and wrapped in
// a cache when cfg.CacheSize is positive.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	var (
		backend Backend
		err     error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		backend = NewMemory()
	case config.StoreDriverSQLite:
		backend, err = OpenSQLite(ctx, cfg.SQLitePath)
	case config.StoreDriverPostgres:
		backend, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStore, cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if cfg.CacheSize > 0 && cfg.StoreDriver != config.StoreDriverMemory {
		backend = NewCached(backend, cfg.CacheSize, cfg.CacheTTL)
		log.Info(LogMsgStoreOpened, LogFieldDriver, cfg.StoreDriver, LogFieldCache, cfg.CacheSize)
		return backend, nil
	}
	log.Info(LogMsgStoreOpened, LogFieldDriver, cfg.StoreDriver)
	return backend, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Postgres, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), int(cfg.DBMaxConns))
	if err != nil {
		return nil, err
	}
	if err := MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return NewPostgres(pool), nil
}
