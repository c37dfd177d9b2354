package repository

import (
	"context"
	"errors"

	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Redisに "<namespace>:<key>" で保存する
type KVRedisRepository struct {
	client    redis.UniversalClient
	namespace string
}

// DI
func NewKVRedisRepository(client redis.UniversalClient, namespace string) *KVRedisRepository {
	return &KVRedisRepository{client: client, namespace: namespace}
}

func (r *KVRedisRepository) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *KVRedisRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repo.ErrNotFound
		}
		return "", pkgerrors.Wrapf(err, "redis get %s", key)
	}
	return v, nil
}

func (r *KVRedisRepository) Set(ctx context.Context, key, value string) error {
	// 端末の保存と同じく期限なし
	err := r.client.Set(ctx, r.key(key), value, 0).Err()
	return pkgerrors.Wrapf(err, "redis set %s", key)
}

func (r *KVRedisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.key(key)).Err()
	return pkgerrors.Wrapf(err, "redis del %s", key)
}
