package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"
)

// 保存キー（以前の保存データをそのまま読めるように名前は固定）
const (
	CartKey  = "ecommerce_cart"
	UserKey  = "ecommerce_user"
	TokenKey = "ecommerce_token"
)

// Persisterはカートとユーザーを保存先と同期させる
type Persister struct {
	kv     repo.KVRepository
	logger *slog.Logger
}

// DI
func New(kv repo.KVRepository, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Persister{kv: kv, logger: logger}
}

// Hydrateは保存済みのカートとユーザーをストアに戻す。起動時に1回だけ呼ぶ。
// 壊れたデータはwarnを出して無視し、もう片方は読み込みを続ける。
func (p *Persister) Hydrate(ctx context.Context, s *store.Store) {
	var lines []model.CartLine
	if p.load(ctx, CartKey, &lines) {
		for _, l := range lines {
			s.Dispatch(store.AddToCart{Line: l})
		}
	}

	// null やIDの無いユーザーは未ログイン扱い
	var u *model.User
	if p.load(ctx, UserKey, &u) && u != nil && u.ID != 0 {
		s.Dispatch(store.LoginSuccess{User: *u})
	}
}

// Observeは変更のあったスライスだけを書き込む
func (p *Persister) Observe(ctx context.Context, prev, next *store.State) {
	if prev.Cart != next.Cart {
		p.save(ctx, CartKey, next.Cart)
	}

	if prev.User != next.User {
		if next.User == nil {
			// ログアウト時はキーごと消す
			if err := p.kv.Delete(ctx, UserKey); err != nil {
				p.logger.WarnContext(ctx, "failed to delete persisted state",
					slog.String("key", UserKey), slog.Any("error", err))
			}
			return
		}
		p.save(ctx, UserKey, next.User)
	}
}

// Attachは復元してから購読する。戻り値で購読解除。
func (p *Persister) Attach(ctx context.Context, s *store.Store) func() {
	p.Hydrate(ctx, s)
	return s.Subscribe(func(prev, next *store.State) {
		p.Observe(ctx, prev, next)
	})
}

func (p *Persister) load(ctx context.Context, key string, dst any) bool {
	raw, err := p.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			p.logger.WarnContext(ctx, "failed to read persisted state",
				slog.String("key", key), slog.Any("error", err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		p.logger.WarnContext(ctx, "ignoring malformed persisted state",
			slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (p *Persister) save(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to encode state",
			slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := p.kv.Set(ctx, key, string(b)); err != nil {
		p.logger.WarnContext(ctx, "failed to persist state",
			slog.String("key", key), slog.Any("error", err))
	}
}
