package apitest

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/labstack/echo/v4"
)

type statusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (s *Server) userOrders(userID int64) []model.Order {
	out := []model.Order{}
	// 新しい順
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			out = append(out, s.orders[i])
		}
	}
	return out
}

func (s *Server) listOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, success("orders", s.userOrders(userIDFrom(c))))
}

// 同じIdempotency-Keyなら同じ注文を返す
func (s *Server) createOrder(c echo.Context) error {
	var in model.OrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}
	if len(in.Items) == 0 {
		return c.JSON(http.StatusBadRequest, errorJSON("Order must contain at least one item"))
	}

	userID := userIDFrom(c)
	key := c.Request().Header.Get("Idempotency-Key")

	s.mu.Lock()
	defer s.mu.Unlock()

	idemKey := strconv.FormatInt(userID, 10) + ":" + key
	if key != "" {
		if o, ok := s.idempotency[idemKey]; ok {
			return c.JSON(http.StatusOK, success("order", o))
		}
	}

	s.nextOrderID++
	addr := in.ShippingAddress
	o := model.Order{
		ID:              s.nextOrderID,
		OrderNumber:     in.OrderNumber,
		UserID:          userID,
		Items:           in.Items,
		Subtotal:        in.Subtotal,
		Discount:        in.Discount,
		Shipping:        in.Shipping,
		Tax:             in.Tax,
		Total:           in.Total,
		Status:          model.OrderStatusPending,
		ShippingMethod:  in.ShippingMethod,
		PaymentMethod:   in.PaymentMethod,
		PromoCode:       in.PromoCode,
		ShippingAddress: &addr,
		CreatedAt:       s.now().UTC(),
	}
	s.orders = append(s.orders, o)
	if key != "" {
		s.idempotency[idemKey] = o
	}
	return c.JSON(http.StatusCreated, success("order", o))
}

func (s *Server) getOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id && o.UserID == userIDFrom(c) {
			return c.JSON(http.StatusOK, success("order", o))
		}
	}
	return c.JSON(http.StatusNotFound, errorJSON("Order not found"))
}

// PENDING/PROCESSINGのときだけキャンセルできる
func (s *Server) cancelOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		o := &s.orders[i]
		if o.ID != id || o.UserID != userIDFrom(c) {
			continue
		}
		if o.Status != model.OrderStatusPending && o.Status != model.OrderStatusProcessing {
			return c.JSON(http.StatusBadRequest, errorJSON("Order cannot be cancelled"))
		}
		o.Status = model.OrderStatusCancelled
		return c.JSON(http.StatusOK, success("order", *o))
	}
	return c.JSON(http.StatusNotFound, errorJSON("Order not found"))
}

func (s *Server) adminOrders(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := model.OrderStatus(c.QueryParam("status"))
	out := []model.Order{}
	for _, o := range slices.Backward(s.orders) {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return c.JSON(http.StatusOK, success("orders", out))
}

func (s *Server) adminUpdateOrderStatus(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("status is required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = req.Status
			return c.JSON(http.StatusOK, success("order", s.orders[i]))
		}
	}
	return c.JSON(http.StatusNotFound, errorJSON("Order not found"))
}
