// Package storage elige el sustrato key-value según la configuración.
package storage

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"pet-hub/internal/adapters/storage/fs"
	"pet-hub/internal/adapters/storage/memory"
	"pet-hub/internal/adapters/storage/postgres"
	"pet-hub/internal/adapters/storage/redis"
	"pet-hub/internal/adapters/storage/remote"
	"pet-hub/internal/adapters/storage/s3"
	"pet-hub/internal/adapters/storage/sqlite"
	"pet-hub/internal/platform/config"
	"pet-hub/internal/ports/kv"
)

func noopClose() error { return nil }

// Open construye el sustrato del driver configurado (memory si viene vacío).
// closeFn libera conexiones y archivos; es no-nil cuando err es nil.
func Open(ctx context.Context, cfg config.Storage) (store kv.Store, closeFn func() error, err error) {
	if cfg.Driver == "" {
		cfg.Driver = config.DriverMemory
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewKVStore(), noopClose, nil

	case config.DriverFS:
		s, err := fs.New(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, noopClose, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		s := postgres.NewKVStore(db)
		if err := s.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return s, s.Close, nil

	case config.DriverRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		var opts []redis.Option
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		s := redis.NewKVStore(client, opts...)
		if err := s.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return s, client.Close, nil

	case config.DriverS3:
		s, err := s3.New(ctx, s3.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
			Prefix:    cfg.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, noopClose, nil

	case config.DriverRemote:
		s, err := remote.New(cfg.RemoteURL, cfg.RemoteTimeout)
		if err != nil {
			return nil, nil, err
		}
		return s, noopClose, nil

	default:
		return nil, nil, fmt.Errorf("unknown kv driver %q", cfg.Driver)
	}
}
