package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/apitest"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
	kvinfra "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/infra/repository"
	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/persistence"
	repo "github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	srv    *apitest.Server
	kv     *kvinfra.KVMemoryRepository
	tokens *persistence.TokenStore
	client *Client
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	srv := apitest.New(t)
	kv := kvinfra.NewKVMemoryRepository()
	tokens := persistence.NewTokenStore(kv)

	opts = append([]Option{WithTokenSource(tokens)}, opts...)
	return &fixture{
		srv:    srv,
		kv:     kv,
		tokens: tokens,
		client: NewClient(srv.URL(), 5*time.Second, opts...),
	}
}

// ログインしてトークンを保存する
func (f *fixture) login(t *testing.T) AuthResult {
	t.Helper()
	ctx := context.Background()
	res, err := f.client.Auth.Login(ctx, Credentials{Email: apitest.CustomerEmail, Password: apitest.CustomerPassword})
	require.NoError(t, err)
	require.NoError(t, f.tokens.SetToken(ctx, res.Token))
	return res
}

func TestAuth_LoginAndProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := f.login(t)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, apitest.CustomerEmail, res.User.Email)

	u, err := f.client.Auth.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, u.ID)

	last := f.srv.LastRequest()
	assert.Equal(t, "Bearer "+res.Token, last.Header.Get("Authorization"))
	assert.NotEmpty(t, last.Header.Get("X-Request-ID"))
}

func TestAuth_RegisterAndUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.client.Auth.Register(ctx, RegisterInput{Name: "Grace", Email: "grace@example.com", Password: "longpassword"})
	require.NoError(t, err)
	require.NoError(t, f.tokens.SetToken(ctx, res.Token))

	phone := "555-0100"
	u, err := f.client.Auth.UpdateProfile(ctx, model.UserPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Grace", u.Name)
	assert.Equal(t, phone, u.Phone)

	err = f.client.Auth.ChangePassword(ctx, PasswordChange{CurrentPassword: "wrong", NewPassword: "x"})
	assert.True(t, IsStatus(err, http.StatusBadRequest))
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.Auth.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: apitest.CustomerEmail, Password: "password123",
	})

	ae, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, ae.Status)
	assert.Equal(t, "Email already registered", ae.Message)
	assert.Equal(t, "409: Email already registered", ae.Error())
}

func TestProducts_EnvelopeAndBarePayloads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.client.Products.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.True(t, all[0].Price.Equal(decimal.RequireFromString("99.99")))

	electronics, err := f.client.Products.List(ctx, ListParams{Category: "electronics"})
	require.NoError(t, err)
	assert.Len(t, electronics, 2)
	assert.Equal(t, "/products", f.srv.LastRequest().Path)

	// 包みなしの配列
	featured, err := f.client.Products.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "Coffee Mug", featured[0].Name)

	found, err := f.client.Products.Search(ctx, "watch", ListParams{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(4), found[0].ID)

	byCat, err := f.client.Products.ByCategory(ctx, 2, ListParams{})
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "Running Shoes", byCat[0].Name)

	rec, err := f.client.Products.Recommended(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rec, 1)
	assert.Equal(t, int64(4), rec[0].ID)

	// 包みなしのオブジェクト
	cat, err := f.client.Categories.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Home", cat.Name)
}

func TestErrors_ServerMessageNormalized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.Products.Get(ctx, 999)
	ae, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Product not found", ae.Message)
	assert.NotNil(t, ae.Data)

	f.srv.FailNext(http.MethodGet, "/categories", http.StatusInternalServerError, "database is down")
	_, err = f.client.Categories.List(ctx)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.EqualError(t, err, "500: database is down")

	// 未実装のルートはechoの {"message": "Not Found"}
	_, err = f.client.Reviews.ByUser(ctx, 1)
	ae, ok = AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Not Found", ae.Message)
}

func TestErrors_NetworkFailure(t *testing.T) {
	srv := apitest.New(t)
	base := srv.URL()
	srv.HTTP.Close()

	c := NewClient(base, time.Second)
	_, err := c.Products.List(context.Background(), ListParams{})

	ae, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, StatusNetwork, ae.Status)
	assert.Equal(t, "Network error. Please check your connection.", ae.Message)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestErrors_CanceledContextIsUnknown(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.client.Products.List(ctx, ListParams{})
	assert.True(t, IsStatus(err, StatusUnknown))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnauthorized_ClearsCredentials(t *testing.T) {
	var hookCalls int
	f := newFixture(t, WithOnUnauthorized(func(context.Context) { hookCalls++ }))
	ctx := context.Background()

	require.NoError(t, f.tokens.SetToken(ctx, "not-a-valid-token"))
	require.NoError(t, f.kv.Set(ctx, persistence.UserKey, `{"id":1}`))

	_, err := f.client.Auth.Profile(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Equal(t, 1, hookCalls)

	tok, err := f.tokens.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	_, err = f.kv.Get(ctx, persistence.UserKey)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCart_ServerMirror(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	require.NoError(t, f.client.Cart.Add(ctx, 3, 0))
	require.NoError(t, f.client.Cart.Add(ctx, 3, 2))
	require.NoError(t, f.client.Cart.Add(ctx, 1, 1))

	cart, err := f.client.Cart.Get(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(3), cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("135.99")))

	require.NoError(t, f.client.Cart.Update(ctx, 3, 0))
	require.NoError(t, f.client.Cart.Remove(ctx, 1))
	cart, err = f.client.Cart.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	require.NoError(t, f.client.Cart.Clear(ctx))
}

func TestOrders_CreateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	in := model.OrderInput{
		OrderNumber: "ORD-1",
		Items: []model.CartLine{
			{ID: 3, Name: "Coffee Mug", Price: decimal.RequireFromString("12.00"), Quantity: 2},
		},
		Subtotal:       decimal.RequireFromString("24.00"),
		Total:          decimal.RequireFromString("35.91"),
		ShippingMethod: model.ShippingStandard,
		PaymentMethod:  model.PaymentCard,
	}

	first, err := f.client.Orders.Create(ctx, in, "key-1")
	require.NoError(t, err)
	second, err := f.client.Orders.Create(ctx, in, "key-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, f.srv.Orders(), 1)
	assert.Equal(t, "key-1", f.srv.LastRequest().Header.Get("Idempotency-Key"))

	list, err := f.client.Orders.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ORD-1", list[0].OrderNumber)

	got, err := f.client.Orders.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("35.91")))

	cancelled, err := f.client.Orders.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, cancelled.Status)

	_, err = f.client.Orders.Cancel(ctx, first.ID)
	assert.True(t, IsStatus(err, http.StatusBadRequest))
}

func TestAdmin_SessionCookie(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.client.Admin.CheckSession(ctx)
	require.NoError(t, err)
	assert.False(t, sess.LoggedIn)

	_, err = f.client.Admin.Dashboard(ctx)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	admin, err := f.client.Admin.Login(ctx, AdminCredentials{Username: apitest.AdminUsername, Password: apitest.AdminPassword})
	require.NoError(t, err)
	assert.Equal(t, apitest.AdminUsername, admin.Username)

	sess, err = f.client.Admin.CheckSession(ctx)
	require.NoError(t, err)
	assert.True(t, sess.LoggedIn)
	require.NotNil(t, sess.Admin)

	dash, err := f.client.Admin.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), dash.TotalProducts)

	require.NoError(t, f.client.Admin.UpdateInventory(ctx, 2, 7))
	inv, err := f.client.Admin.Inventory(ctx)
	require.NoError(t, err)
	require.Len(t, inv, 4)
	assert.Equal(t, int64(7), inv[1].Stock)

	analytics, err := f.client.Admin.Analytics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultAnalyticsPeriod, analytics.Period)

	require.NoError(t, f.client.Products.Create(ctx, model.ProductInput{Name: "Desk Lamp", Price: decimal.RequireFromString("25")}))
	all, err := f.client.Products.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	require.NoError(t, f.client.Admin.Logout(ctx))
	_, err = f.client.Admin.Admins(ctx)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestAccount_WishlistAddressesPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	require.NoError(t, f.client.Wishlist.Add(ctx, 1))
	items, err := f.client.Wishlist.Get(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NoError(t, f.client.Wishlist.Remove(ctx, 1))
	require.NoError(t, f.client.Wishlist.Clear(ctx))

	home, err := f.client.Addresses.Create(ctx, model.Address{Name: "Home", Line1: "1 Main St", City: "Springfield"})
	require.NoError(t, err)
	assert.True(t, home.IsDefault)
	work, err := f.client.Addresses.Create(ctx, model.Address{Name: "Work", Line1: "2 Side St", City: "Springfield"})
	require.NoError(t, err)
	require.NoError(t, f.client.Addresses.SetDefault(ctx, work.ID))

	list, err := f.client.Addresses.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].IsDefault)
	assert.True(t, list[1].IsDefault)

	intent, err := f.client.Payment.CreateIntent(ctx, decimal.RequireFromString("53.19"), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, intent.Currency)
	assert.True(t, strings.HasPrefix(intent.ID, "pi_"))

	confirmed, err := f.client.Payment.Confirm(ctx, intent.ID, "pm_1")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", confirmed.Status)

	m, err := f.client.Payment.AddMethod(ctx, PaymentMethodInput{Type: model.PaymentCard, CardNumber: "4242424242424242"})
	require.NoError(t, err)
	assert.Equal(t, "4242", m.Last4)

	review, err := f.client.Reviews.Create(ctx, model.ReviewInput{ProductID: 3, Rating: 5, Comment: "Great mug"})
	require.NoError(t, err)
	reviews, err := f.client.Reviews.ByProduct(ctx, 3)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)
}

func TestUpload_Multipart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	img, err := f.client.Upload.Image(ctx, File{Name: "mug.png", Reader: strings.NewReader("png-bytes")}, "")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/products/mug.png", img.URL)

	imgs, err := f.client.Upload.Images(ctx, []File{
		{Name: "a.png", Reader: strings.NewReader("a")},
		{Name: "b.png", Reader: strings.NewReader("b")},
	}, "banners")
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	assert.Equal(t, "/uploads/banners/b.png", imgs[1].URL)

	require.NoError(t, f.client.Upload.DeleteImage(ctx, img.URL))
}

func TestRequestObserver(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]int{}
	f := newFixture(t, WithRequestObserver(func(method string, status int, _ time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		seen[status]++
	}))
	ctx := context.Background()

	_, _ = f.client.Products.List(ctx, ListParams{})
	_, _ = f.client.Products.Get(ctx, 999)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, seen[http.StatusOK])
	assert.Equal(t, 1, seen[http.StatusNotFound])
}

func TestWithTracing_StillWorks(t *testing.T) {
	f := newFixture(t, WithTracing())
	_, err := f.client.Categories.List(context.Background())
	require.NoError(t, err)
}

func TestParseTokenInfo(t *testing.T) {
	srv := apitest.New(t)
	token := srv.IssueToken(42, model.RoleAdmin, time.Hour)

	info, err := ParseTokenInfo(token)
	require.NoError(t, err)
	assert.Equal(t, "42", info.Subject)
	assert.Equal(t, "admin", info.Role)
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(time.Now().Add(2*time.Hour)))

	_, err = ParseTokenInfo("garbage")
	assert.Error(t, err)
}

func TestUnknownError_Message(t *testing.T) {
	err := unknownError(errors.New("boom"))
	assert.Equal(t, StatusUnknown, err.Status)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, msgUnknown, unknownError(nil).Message)
}
