package repository

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/config"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/infra/db"
	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gocloud.dev/blob/fileblob"
)

// OpenKV は storage.driver に応じた保存先を開く。
// 戻り値のcloseは終了時に必ず呼ぶ。
func OpenKV(ctx context.Context, cfg config.Storage) (repo.KVRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.StorageMemory:
		return NewKVMemoryRepository(), noop, nil

	case config.StorageFile:
		bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open storage dir %s", cfg.Dir)
		}
		return NewKVBlobRepository(bucket), bucket.Close, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.Wrapf(err, "connect redis %s", cfg.RedisAddr)
		}
		return NewKVRedisRepository(client, cfg.Namespace), client.Close, nil

	case config.StoragePostgres:
		gdb, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "connect postgres")
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, nil, errors.Wrap(err, "postgres handle")
		}
		r := NewKVGormRepository(gdb, cfg.Namespace)
		if err := r.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, nil, errors.Wrap(err, "migrate kv_entries")
		}
		return r, sqlDB.Close, nil

	default:
		return nil, nil, errors.Errorf("unknown storage.driver: %s", cfg.Driver)
	}
}
