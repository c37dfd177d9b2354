package repository

import (
	"context"

	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// gocloud の bucket に 1キー=1オブジェクトで保存する
type KVBlobRepository struct {
	bucket *blob.Bucket
}

// DI
func NewKVBlobRepository(bucket *blob.Bucket) *KVBlobRepository {
	return &KVBlobRepository{bucket: bucket}
}

func (r *KVBlobRepository) Get(ctx context.Context, key string) (string, error) {
	b, err := r.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repo.ErrNotFound
		}
		return "", errors.Wrapf(err, "read %s", key)
	}
	return string(b), nil
}

func (r *KVBlobRepository) Set(ctx context.Context, key, value string) error {
	err := r.bucket.WriteAll(ctx, key, []byte(value), &blob.WriterOptions{
		ContentType: "application/json",
	})
	return errors.Wrapf(err, "write %s", key)
}

func (r *KVBlobRepository) Delete(ctx context.Context, key string) error {
	err := r.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}
