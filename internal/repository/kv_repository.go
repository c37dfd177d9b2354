package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 端末側の永続化（カート・ユーザー・トークン）に使うキー/値ストア。
// 値はJSON文字列。存在しないキーのGetはErrNotFound、Deleteは成功扱い。
type KVRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
