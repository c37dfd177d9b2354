package api

import (
	"context"
	"net/url"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"
)

const DefaultAnalyticsPeriod = "30d"

// 管理者API。認証はセッションCookie。
type AdminService struct{ c *Client }

type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// 管理者によるユーザー更新
type UserInput struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role,omitempty"`
	Phone string     `json:"phone,omitempty"`
}

func (s *AdminService) Login(ctx context.Context, in AdminCredentials) (model.Admin, error) {
	var out model.Admin
	err := s.c.post(ctx, "/admin/login", in, "admin", &out)
	return out, err
}

func (s *AdminService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/admin/logout", nil, "", nil)
}

func (s *AdminService) CheckSession(ctx context.Context) (model.AdminSession, error) {
	var out model.AdminSession
	err := s.c.get(ctx, "/admin/check", nil, "", &out)
	return out, err
}

func (s *AdminService) Dashboard(ctx context.Context) (model.AdminDashboard, error) {
	var out model.AdminDashboard
	err := s.c.get(ctx, "/admin/dashboard", nil, "dashboard", &out)
	return out, err
}

func (s *AdminService) Users(ctx context.Context, p ListParams) ([]model.User, error) {
	var out []model.User
	err := s.c.get(ctx, "/users", p.values(), "users", &out)
	return out, err
}

func (s *AdminService) User(ctx context.Context, userID int64) (model.User, error) {
	var out model.User
	err := s.c.get(ctx, "/users/"+pathID(userID), nil, "user", &out)
	return out, err
}

func (s *AdminService) UpdateUser(ctx context.Context, userID int64, in UserInput) error {
	return s.c.put(ctx, "/users/"+pathID(userID), in, "", nil)
}

func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	return s.c.delete(ctx, "/users/"+pathID(userID), nil)
}

func (s *AdminService) Orders(ctx context.Context, p ListParams) ([]model.Order, error) {
	var out []model.Order
	err := s.c.get(ctx, "/admin/orders", p.values(), "orders", &out)
	return out, err
}

func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return s.c.put(ctx, "/admin/orders/"+pathID(orderID)+"/status", statusBody{Status: status}, "", nil)
}

// periodが空なら 30d
func (s *AdminService) Analytics(ctx context.Context, period string) (model.Analytics, error) {
	if period == "" {
		period = DefaultAnalyticsPeriod
	}

	var out model.Analytics
	err := s.c.get(ctx, "/admin/analytics", url.Values{"period": {period}}, "analytics", &out)
	return out, err
}

func (s *AdminService) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	var out []model.InventoryItem
	err := s.c.get(ctx, "/admin/inventory", nil, "inventory", &out)
	return out, err
}

func (s *AdminService) UpdateInventory(ctx context.Context, productID, quantity int64) error {
	return s.c.put(ctx, "/admin/inventory/"+pathID(productID), map[string]int64{"quantity": quantity}, "", nil)
}

func (s *AdminService) Admins(ctx context.Context) ([]model.Admin, error) {
	var out []model.Admin
	err := s.c.get(ctx, "/admin/admins", nil, "admins", &out)
	return out, err
}
