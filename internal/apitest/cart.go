package apitest

import (
	"net/http"
	"slices"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type cartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

func (s *Server) cartOf(userID int64) model.ServerCart {
	items := slices.Clone(s.carts[userID])
	if items == nil {
		items = []model.ServerCartItem{}
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return model.ServerCart{Items: items, Total: total}
}

func (s *Server) getCart(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, success("cart", s.cartOf(userIDFrom(c))))
}

func (s *Server) addToCart(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}
	p, ok := s.findProduct(req.ProductID)
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("Product not found"))
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity += req.Quantity
			return c.JSON(http.StatusOK, success("cart", s.cartOf(userID)))
		}
	}
	s.carts[userID] = append(items, model.ServerCartItem{
		ID:        s.id(),
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  req.Quantity,
	})
	return c.JSON(http.StatusOK, success("cart", s.cartOf(userID)))
}

func (s *Server) updateCart(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Quantity = req.Quantity
		}
	}
	s.carts[userID] = slices.DeleteFunc(items, func(it model.ServerCartItem) bool { return it.Quantity <= 0 })
	return c.JSON(http.StatusOK, success("cart", s.cartOf(userID)))
}

func (s *Server) removeFromCart(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = slices.DeleteFunc(s.carts[userID], func(it model.ServerCartItem) bool { return it.ProductID == id })
	return c.JSON(http.StatusOK, success("cart", s.cartOf(userID)))
}

func (s *Server) clearCart(c echo.Context) error {
	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return c.JSON(http.StatusOK, success("cart", s.cartOf(userID)))
}

func (s *Server) getWishlist(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := slices.Clone(s.wishlists[userIDFrom(c)])
	if items == nil {
		items = []model.WishlistItem{}
	}
	return c.JSON(http.StatusOK, success("wishlist", items))
}

func (s *Server) addToWishlist(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}
	p, ok := s.findProduct(req.ProductID)
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("Product not found"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.wishlists[userID] {
		if it.ProductID == p.ID {
			return c.JSON(http.StatusOK, envelope{"success": true})
		}
	}
	s.wishlists[userID] = append(s.wishlists[userID], model.WishlistItem{ProductID: p.ID, Product: &p, AddedAt: s.now()})
	return c.JSON(http.StatusOK, envelope{"success": true})
}

func (s *Server) removeFromWishlist(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlists[userID] = slices.DeleteFunc(s.wishlists[userID], func(it model.WishlistItem) bool { return it.ProductID == id })
	return c.JSON(http.StatusOK, envelope{"success": true})
}

func (s *Server) clearWishlist(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, userIDFrom(c))
	return c.JSON(http.StatusOK, envelope{"success": true})
}
