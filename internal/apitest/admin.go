package apitest

import (
	"net/http"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type inventoryRequest struct {
	Quantity int64 `json:"quantity"`
}

func (s *Server) listAdmins(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Admin, 0, len(s.admins))
	for _, a := range s.admins {
		out = append(out, a.admin)
	}
	return c.JSON(http.StatusOK, success("admins", out))
}

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.user)
	}
	return c.JSON(http.StatusOK, success("users", out))
}

func (s *Server) dashboard(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	revenue := decimal.Zero
	for _, o := range s.orders {
		if o.Status != model.OrderStatusCancelled {
			revenue = revenue.Add(o.Total)
		}
	}
	recent := []model.Order{}
	for i := len(s.orders) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, s.orders[i])
	}

	return c.JSON(http.StatusOK, success("dashboard", model.AdminDashboard{
		TotalRevenue:  revenue,
		TotalOrders:   int64(len(s.orders)),
		TotalUsers:    int64(len(s.users)),
		TotalProducts: int64(len(s.products)),
		RecentOrders:  recent,
	}))
}

// 注文を日付ごとに集計する
func (s *Server) analytics(c echo.Context) error {
	period := c.QueryParam("period")

	s.mu.Lock()
	defer s.mu.Unlock()

	index := map[string]int{}
	points := []model.AnalyticsPoint{}
	for _, o := range s.orders {
		d := o.CreatedAt.Format(time.DateOnly)
		i, ok := index[d]
		if !ok {
			points = append(points, model.AnalyticsPoint{Date: d, Revenue: decimal.Zero})
			i = len(points) - 1
			index[d] = i
		}
		points[i].Revenue = points[i].Revenue.Add(o.Total)
		points[i].Orders++
	}
	return c.JSON(http.StatusOK, success("analytics", model.Analytics{Period: period, Points: points}))
}

func (s *Server) inventory(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.InventoryItem, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, model.InventoryItem{ProductID: p.ID, Name: p.Name, Stock: p.Stock})
	}
	return c.JSON(http.StatusOK, success("inventory", out))
}

func (s *Server) updateInventory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}
	var req inventoryRequest
	if err := c.Bind(&req); err != nil || req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, errorJSON("quantity must be >= 0"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = req.Quantity
			s.products[i].InStock = req.Quantity > 0
			return c.JSON(http.StatusOK, envelope{"success": true})
		}
	}
	return c.JSON(http.StatusNotFound, errorJSON("Product not found"))
}
