package usecase

import (
	"context"
	"log/slog"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"

	"github.com/pkg/errors"
)

// ログイン・登録・ログアウト・プロフィール
type SessionUsecase struct {
	store  *store.Store
	auth   AuthAPI
	tokens TokenStore
	logger *slog.Logger
}

// DI
func NewSessionUsecase(s *store.Store, auth AuthAPI, tokens TokenStore, logger *slog.Logger) *SessionUsecase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SessionUsecase{store: s, auth: auth, tokens: tokens, logger: logger}
}

func (u *SessionUsecase) Login(ctx context.Context, email, password string) (model.User, error) {
	u.store.Dispatch(store.SetLoading{Loading: true})

	res, err := u.auth.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return model.User{}, fail(u.store, err)
	}
	return u.start(ctx, res)
}

func (u *SessionUsecase) Register(ctx context.Context, in api.RegisterInput) (model.User, error) {
	u.store.Dispatch(store.SetLoading{Loading: true})

	res, err := u.auth.Register(ctx, in)
	if err != nil {
		return model.User{}, fail(u.store, err)
	}
	return u.start(ctx, res)
}

// トークンを保存してからLOGIN_SUCCESS
func (u *SessionUsecase) start(ctx context.Context, res api.AuthResult) (model.User, error) {
	if res.Token == "" {
		return model.User{}, fail(u.store, errors.New("server did not return a token"))
	}
	if err := u.tokens.SetToken(ctx, res.Token); err != nil {
		return model.User{}, fail(u.store, errors.Wrap(err, "save token"))
	}

	u.store.Dispatch(store.LoginSuccess{User: res.User})
	u.store.Dispatch(store.SetLoading{Loading: false})
	return res.User, nil
}

// サーバー側のログアウトは失敗しても続ける
func (u *SessionUsecase) Logout(ctx context.Context) error {
	if err := u.auth.Logout(ctx); err != nil {
		u.logger.WarnContext(ctx, "server logout failed", slog.Any("error", err))
	}

	err := u.tokens.Clear(ctx)
	u.store.Dispatch(store.Logout{})
	return errors.Wrap(err, "clear token")
}

func (u *SessionUsecase) RefreshProfile(ctx context.Context) (model.User, error) {
	p, err := u.auth.Profile(ctx)
	if err != nil {
		return model.User{}, fail(u.store, err)
	}
	u.store.Dispatch(store.UpdateUser{Patch: model.PatchFromUser(p)})
	return p, nil
}

func (u *SessionUsecase) UpdateProfile(ctx context.Context, patch model.UserPatch) (model.User, error) {
	p, err := u.auth.UpdateProfile(ctx, patch)
	if err != nil {
		return model.User{}, fail(u.store, err)
	}
	u.store.Dispatch(store.UpdateUser{Patch: model.PatchFromUser(p)})
	return p, nil
}

// ログイン中のユーザー。未ログインならnil。
func (u *SessionUsecase) Current() *model.User {
	return u.store.State().User
}
