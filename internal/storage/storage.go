package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/init-pkg/rework-tracker/domain/app"
	redis_client "github.com/init-pkg/rework-tracker/internal/clients/redis"
	"github.com/init-pkg/rework-tracker/internal/config"
	gorm_store "github.com/init-pkg/rework-tracker/internal/storage/gorm"
	memory_store "github.com/init-pkg/rework-tracker/internal/storage/memory"
	"github.com/init-pkg/rework-tracker/internal/storage/migrations"
	redis_store "github.com/init-pkg/rework-tracker/internal/storage/redis"
	sqlite_store "github.com/init-pkg/rework-tracker/internal/storage/sqlite"
)

// Open builds the blob store named by cfg.Store.Driver and applies pending migrations for
// the SQL backends.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (app.BlobStore, error) {
	var (
		store app.BlobStore
		err   error
	)

	switch cfg.Store.Driver {
	case "memory":
		store = memory_store.New()

	case "redis":
		rdb := redis_client.New(cfg)
		if err = rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.Clients.Redis.Addr, err)
		}
		store = redis_store.New(rdb)

	case "postgres", "mysql":
		open := gorm_store.OpenPostgres
		if cfg.Store.Driver == "mysql" {
			open = gorm_store.OpenMySQL
		}
		sqlDB, s, e := open(cfg.Store.DSN)
		if e != nil {
			return nil, e
		}
		if err = migrations.Up(ctx, sqlDB, cfg.Store.Driver); err != nil {
			s.Close()
			return nil, err
		}
		store = s

	case "sqlite":
		s, e := sqlite_store.Open(cfg.Store.DSN)
		if e != nil {
			return nil, e
		}
		if err = migrations.Up(ctx, s.DB(), "sqlite"); err != nil {
			s.Close()
			return nil, err
		}
		store = s

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	log.Info("blob store ready", "driver", cfg.Store.Driver, "quota_bytes", cfg.Store.QuotaBytes)
	return WithQuota(store, cfg.Store.QuotaBytes), nil
}

func Register() fx.Option {
	return fx.Provide(
		func(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (app.BlobStore, error) {
			store, err := Open(context.Background(), cfg, log)
			if err != nil {
				return nil, err
			}
			lc.Append(fx.StopHook(store.Close))
			return store, nil
		},
	)
}
