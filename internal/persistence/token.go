package persistence

import (
	"context"
	"errors"

	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"
)

// TokenStoreはAPIのBearerトークンを保存する
type TokenStore struct {
	kv repo.KVRepository
}

// DI
func NewTokenStore(kv repo.KVRepository) *TokenStore {
	return &TokenStore{kv: kv}
}

// 未保存なら空文字
func (t *TokenStore) Token(ctx context.Context) (string, error) {
	v, err := t.kv.Get(ctx, TokenKey)
	if errors.Is(err, repo.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func (t *TokenStore) SetToken(ctx context.Context, token string) error {
	return t.kv.Set(ctx, TokenKey, token)
}

func (t *TokenStore) Clear(ctx context.Context) error {
	return t.kv.Delete(ctx, TokenKey)
}

// 401のときに使う。トークンと保存ユーザーの両方を消す。
func (t *TokenStore) ClearCredentials(ctx context.Context) error {
	return errors.Join(
		t.kv.Delete(ctx, TokenKey),
		t.kv.Delete(ctx, UserKey),
	)
}
