package api

import (
	"context"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

type AuthService struct{ c *Client }

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// ログイン/登録のレスポンス
type AuthResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *AuthService) Login(ctx context.Context, in Credentials) (AuthResult, error) {
	var out AuthResult
	err := s.c.post(ctx, "/auth/login", in, "", &out)
	return out, err
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	var out AuthResult
	err := s.c.post(ctx, "/auth/register", in, "", &out)
	return out, err
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/auth/logout", nil, "", nil)
}

func (s *AuthService) Profile(ctx context.Context) (model.User, error) {
	var out model.User
	err := s.c.get(ctx, "/auth/profile", nil, "user", &out)
	return out, err
}

func (s *AuthService) UpdateProfile(ctx context.Context, patch model.UserPatch) (model.User, error) {
	var out model.User
	err := s.c.put(ctx, "/auth/profile", patch, "user", &out)
	return out, err
}

func (s *AuthService) ChangePassword(ctx context.Context, in PasswordChange) error {
	return s.c.put(ctx, "/auth/change-password", in, "", nil)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.c.post(ctx, "/auth/forgot-password", map[string]string{"email": email}, "", nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	return s.c.post(ctx, "/auth/reset-password", map[string]string{
		"token":    token,
		"password": password,
	}, "", nil)
}
