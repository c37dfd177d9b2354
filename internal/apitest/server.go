// Package apitest はRESTクライアントのテスト用の偽APIサーバー。
// レスポンスは本番APIと同じ {"success": ..., "<key>": ...} 形式で返す。
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	// フィクスチャのユーザー
	CustomerEmail    = "ada@example.com"
	CustomerPassword = "password123"
	AdminUsername    = "admin"
	AdminPassword    = "admin123"
)

// 受け取ったリクエストの記録
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
}

type failure struct {
	status  int
	message string
}

type userRecord struct {
	user         model.User
	passwordHash []byte
}

type adminRecord struct {
	admin        model.Admin
	passwordHash []byte
}

type Server struct {
	Echo *echo.Echo
	HTTP *httptest.Server

	secret []byte
	now    func() time.Time

	mu         sync.Mutex
	users      map[string]*userRecord // email → user
	nextUserID int64
	admins     []adminRecord
	sessions   map[string]int64 // cookie → admin id

	products    []model.Product
	categories  []model.Category
	orders      []model.Order
	nextOrderID int64
	idempotency map[string]model.Order

	carts     map[int64][]model.ServerCartItem
	wishlists map[int64][]model.WishlistItem
	addresses map[int64][]model.Address
	reviews   []model.Review
	methods   map[int64][]model.PaymentMethod
	nextID    int64

	requests []RecordedRequest
	failNext map[string]failure // "METHOD /path" → 次の1回だけ返すエラー
}

// Newはフィクスチャ入りの偽APIを起動する。テスト終了時に閉じる。
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:      []byte("apitest-secret"),
		now:         time.Now,
		users:       map[string]*userRecord{},
		sessions:    map[string]int64{},
		idempotency: map[string]model.Order{},
		carts:       map[int64][]model.ServerCartItem{},
		wishlists:   map[int64][]model.WishlistItem{},
		addresses:   map[int64][]model.Address{},
		methods:     map[int64][]model.PaymentMethod{},
		failNext:    map[string]failure{},
		products:    Products(),
		categories:  Categories(),
		nextID:      100,
	}
	s.AddUser("Ada Lovelace", CustomerEmail, CustomerPassword, model.RoleCustomer)
	s.admins = append(s.admins, adminRecord{
		admin:        model.Admin{ID: 1, Username: AdminUsername, Email: "admin@shophub.test"},
		passwordHash: mustHash(AdminPassword),
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s.Echo = e
	s.registerRoutes(e)

	s.HTTP = httptest.NewServer(e)
	t.Cleanup(s.HTTP.Close)
	return s
}

// クライアントに渡すベースURL
func (s *Server) URL() string {
	return s.HTTP.URL + "/api"
}

func (s *Server) AddUser(name, email, password string, role model.Role) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u := model.User{ID: s.nextUserID, Name: name, Email: email, Role: role}
	s.users[strings.ToLower(email)] = &userRecord{user: u, passwordHash: mustHash(password)}
	return u
}

func (s *Server) SetProducts(products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func (s *Server) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.orders...)
}

func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// 最後に受けたリクエスト。無ければゼロ値。
func (s *Server) LastRequest() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}
	}
	return s.requests[len(s.requests)-1]
}

// FailNextは method path への次のリクエストを status で失敗させる。pathは /api を除いたもの。
func (s *Server) FailNext(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext[method+" "+path] = failure{status: status, message: message}
}

func (s *Server) registerRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.Use(s.recordRequest)

	authed := s.AuthJWT()
	admin := s.AdminSession()

	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)
	api.POST("/auth/logout", s.logout)
	api.GET("/auth/profile", s.profile, authed)
	api.PUT("/auth/profile", s.updateProfile, authed)
	api.PUT("/auth/change-password", s.changePassword, authed)
	api.POST("/auth/forgot-password", s.ok)
	api.POST("/auth/reset-password", s.ok)

	api.GET("/products", s.listProducts)
	api.GET("/products/search", s.searchProducts)
	api.GET("/products/featured", s.featuredProducts)
	api.GET("/products/category/:id", s.productsByCategory)
	api.GET("/products/:id", s.getProduct)
	api.GET("/products/:id/recommended", s.recommendedProducts)
	api.POST("/admin/products", s.createProduct, admin)
	api.PUT("/admin/products/:id", s.updateProduct, admin)
	api.DELETE("/admin/products/:id", s.deleteProduct, admin)

	api.GET("/categories", s.listCategories)
	api.GET("/categories/:id", s.getCategory)

	api.GET("/cart", s.getCart, authed)
	api.POST("/cart/add", s.addToCart, authed)
	api.PUT("/cart/update", s.updateCart, authed)
	api.DELETE("/cart/remove/:id", s.removeFromCart, authed)
	api.DELETE("/cart/clear", s.clearCart, authed)

	api.GET("/orders", s.listOrders, authed)
	api.POST("/orders", s.createOrder, authed)
	api.GET("/orders/:id", s.getOrder, authed)
	api.PUT("/orders/:id/cancel", s.cancelOrder, authed)

	api.GET("/reviews/product/:id", s.reviewsByProduct)
	api.POST("/reviews", s.createReview, authed)

	api.GET("/wishlist", s.getWishlist, authed)
	api.POST("/wishlist/add", s.addToWishlist, authed)
	api.DELETE("/wishlist/remove/:id", s.removeFromWishlist, authed)
	api.DELETE("/wishlist/clear", s.clearWishlist, authed)

	api.GET("/addresses", s.listAddresses, authed)
	api.POST("/addresses", s.createAddress, authed)
	api.PUT("/addresses/:id/default", s.setDefaultAddress, authed)
	api.DELETE("/addresses/:id", s.deleteAddress, authed)

	api.POST("/payment/create-intent", s.createPaymentIntent, authed)
	api.POST("/payment/confirm", s.confirmPayment, authed)
	api.GET("/payment/methods", s.listPaymentMethods, authed)
	api.POST("/payment/methods", s.addPaymentMethod, authed)

	api.POST("/admin/login", s.adminLogin)
	api.POST("/admin/logout", s.adminLogout)
	api.GET("/admin/check", s.adminCheck)
	api.GET("/admin/admins", s.listAdmins, admin)
	api.GET("/admin/dashboard", s.dashboard, admin)
	api.GET("/admin/orders", s.adminOrders, admin)
	api.PUT("/admin/orders/:id/status", s.adminUpdateOrderStatus, admin)
	api.GET("/admin/analytics", s.analytics, admin)
	api.GET("/admin/inventory", s.inventory, admin)
	api.PUT("/admin/inventory/:id", s.updateInventory, admin)
	api.GET("/users", s.listUsers)

	api.POST("/upload/image", s.uploadImage)
	api.POST("/upload/images", s.uploadImages)
	api.DELETE("/upload/image", s.deleteImage)
}

// 記録してから、FailNextが登録されていればそのエラーを返す
func (s *Server) recordRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		path := strings.TrimPrefix(req.URL.Path, "/api")

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: req.Method,
			Path:   path,
			Header: req.Header.Clone(),
		})
		f, fail := s.failNext[req.Method+" "+path]
		delete(s.failNext, req.Method+" "+path)
		s.mu.Unlock()

		if fail {
			return c.JSON(f.status, errorJSON(f.message))
		}
		return next(c)
	}
}

type envelope map[string]any

func success(key string, v any) envelope {
	if key == "" {
		return envelope{"success": true}
	}
	return envelope{"success": true, key: v}
}

func errorJSON(msg string) envelope {
	return envelope{"success": false, "error": msg}
}

func (s *Server) ok(c echo.Context) error {
	return c.JSON(http.StatusOK, envelope{"success": true, "message": "ok"})
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

func mustHash(password string) []byte {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return b
}

// 固定の商品一覧
func Products() []model.Product {
	d := decimal.RequireFromString
	orig := d("129.99")
	return []model.Product{
		{ID: 1, Name: "Wireless Headphones", Description: "Noise cancelling over-ear", Price: d("99.99"), OriginalPrice: &orig, Stock: 10, Category: "Electronics", Rating: 4.5, Reviews: 128, InStock: true, Image: "/img/headphones.jpg"},
		{ID: 2, Name: "Running Shoes", Description: "Lightweight trail runners", Price: d("59.50"), Stock: 0, Category: "Sports", Rating: 4.2, Reviews: 80, InStock: false},
		{ID: 3, Name: "Coffee Mug", Description: "Ceramic, 350ml", Price: d("12.00"), Stock: 50, Category: "Home", Rating: 4.8, Reviews: 300, InStock: true},
		{ID: 4, Name: "Smart Watch", Description: "Fitness tracking and notifications", Price: d("199.00"), Stock: 5, Category: "Electronics", Rating: 3.9, Reviews: 45, InStock: true},
	}
}

func Categories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Electronics", ProductCount: 2},
		{ID: 2, Name: "Sports", ProductCount: 1},
		{ID: 3, Name: "Home", ProductCount: 1},
	}
}
