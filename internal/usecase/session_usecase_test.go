package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/api"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionUsecase_Login(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	auth := new(AuthAPIMock)
	tokens := new(TokenStoreMock)

	user := model.User{ID: 1, Name: "Ada", Email: "ada@example.com"}
	auth.On("Login", ctx, api.Credentials{Email: "ada@example.com", Password: "pw"}).
		Return(api.AuthResult{Token: "tok", User: user}, nil).Once()
	tokens.On("SetToken", ctx, "tok").Return(nil).Once()

	uc := NewSessionUsecase(s, auth, tokens, nil)
	got, err := uc.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	st := s.State()
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.Loading)
	assert.Equal(t, &user, uc.Current())

	auth.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestSessionUsecase_LoginFailureSetsError(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	auth := new(AuthAPIMock)
	tokens := new(TokenStoreMock)

	apiErr := &api.Error{Status: http.StatusUnauthorized, Message: "Invalid email or password"}
	auth.On("Login", ctx, mock.Anything).Return(api.AuthResult{}, apiErr).Once()

	_, err := NewSessionUsecase(s, auth, tokens, nil).Login(ctx, "ada@example.com", "bad")
	require.Error(t, err)

	st := s.State()
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.Loading)
	assert.Equal(t, "Invalid email or password", st.Error)
	tokens.AssertNotCalled(t, "SetToken", mock.Anything, mock.Anything)
}

func TestSessionUsecase_LogoutIsBestEffort(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	s.Dispatch(store.LoginSuccess{User: model.User{ID: 1}})
	s.Dispatch(store.AddToCart{Line: model.CartLine{ID: 1, Price: decimal.NewFromInt(5), Quantity: 1}})

	auth := new(AuthAPIMock)
	tokens := new(TokenStoreMock)
	auth.On("Logout", ctx).Return(errors.New("offline")).Once()
	tokens.On("Clear", ctx).Return(nil).Once()

	require.NoError(t, NewSessionUsecase(s, auth, tokens, nil).Logout(ctx))

	st := s.State()
	assert.Nil(t, st.User)
	assert.False(t, st.IsAuthenticated)
	assert.Equal(t, 0, st.Cart.Len())
	tokens.AssertExpectations(t)
}

func TestSessionUsecase_RefreshProfileMergesUser(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	s.Dispatch(store.LoginSuccess{User: model.User{ID: 1, Name: "Old"}})

	auth := new(AuthAPIMock)
	auth.On("Profile", ctx).Return(model.User{ID: 1, Name: "New", Email: "n@example.com"}, nil).Once()

	_, err := NewSessionUsecase(s, auth, new(TokenStoreMock), nil).RefreshProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", s.State().User.Name)
	assert.Equal(t, "n@example.com", s.State().User.Email)
}

func TestSessionUsecase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	s.Dispatch(store.LoginSuccess{User: model.User{ID: 1, Name: "Ada"}})

	phone := "555-0100"
	patch := model.UserPatch{Phone: &phone}
	auth := new(AuthAPIMock)
	auth.On("UpdateProfile", ctx, patch).Return(model.User{ID: 1, Name: "Ada", Phone: phone}, nil).Once()

	u, err := NewSessionUsecase(s, auth, new(TokenStoreMock), nil).UpdateProfile(ctx, patch)
	require.NoError(t, err)
	assert.Equal(t, phone, u.Phone)
	assert.Equal(t, phone, s.State().User.Phone)
}
