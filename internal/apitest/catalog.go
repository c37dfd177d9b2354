package apitest

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) productList() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

func filterProducts(products []model.Product, pred func(p model.Product) bool) []model.Product {
	out := []model.Product{}
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Server) listProducts(c echo.Context) error {
	category := strings.ToLower(c.QueryParam("category"))
	products := filterProducts(s.productList(), func(p model.Product) bool {
		return category == "" || strings.ToLower(p.Category) == category
	})
	return c.JSON(http.StatusOK, success("products", products))
}

func (s *Server) searchProducts(c echo.Context) error {
	q := strings.ToLower(c.QueryParam("q"))
	category := strings.ToLower(c.QueryParam("category"))
	products := filterProducts(s.productList(), func(p model.Product) bool {
		if category != "" && strings.ToLower(p.Category) != category {
			return false
		}
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
	return c.JSON(http.StatusOK, success("products", products))
}

// 包みなし（配列そのもの）で返す
func (s *Server) featuredProducts(c echo.Context) error {
	products := s.productList()
	slices.SortStableFunc(products, func(a, b model.Product) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	if len(products) > 3 {
		products = products[:3]
	}
	return c.JSON(http.StatusOK, products)
}

func (s *Server) productsByCategory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	var name string
	s.mu.Lock()
	for _, cat := range s.categories {
		if cat.ID == id {
			name = cat.Name
		}
	}
	s.mu.Unlock()
	if name == "" {
		return c.JSON(http.StatusNotFound, errorJSON("Category not found"))
	}

	products := filterProducts(s.productList(), func(p model.Product) bool {
		return strings.EqualFold(p.Category, name)
	})
	return c.JSON(http.StatusOK, success("products", products))
}

func (s *Server) findProduct(id int64) (model.Product, bool) {
	for _, p := range s.productList() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (s *Server) getProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}
	p, ok := s.findProduct(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("Product not found"))
	}
	return c.JSON(http.StatusOK, success("product", p))
}

func (s *Server) recommendedProducts(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}
	base, ok := s.findProduct(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("Product not found"))
	}

	products := filterProducts(s.productList(), func(p model.Product) bool {
		return p.ID != base.ID && strings.EqualFold(p.Category, base.Category)
	})
	return c.JSON(http.StatusOK, success("products", products))
}

func (s *Server) createProduct(c echo.Context) error {
	var in model.ProductInput
	if err := c.Bind(&in); err != nil || in.Name == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("Name and price are required"))
	}
	if in.Price.IsNegative() {
		return c.JSON(http.StatusBadRequest, errorJSON("Price cannot be negative"))
	}

	s.mu.Lock()
	s.products = append(s.products, model.Product{
		ID:          s.id(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Status:      in.Status,
		Image:       in.Image,
		InStock:     in.Stock > 0,
	})
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, envelope{"success": true, "message": "Product created successfully"})
}

func (s *Server) updateProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}
	var in model.ProductInput
	if err := c.Bind(&in); err != nil || in.Name == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("Name and price are required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		p.Name, p.Description, p.Price, p.Stock = in.Name, in.Description, in.Price, in.Stock
		p.InStock = in.Stock > 0
		return c.JSON(http.StatusOK, envelope{"success": true, "message": "Product updated successfully"})
	}
	return c.JSON(http.StatusNotFound, errorJSON("Product not found"))
}

func (s *Server) deleteProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.products)
	s.products = slices.DeleteFunc(s.products, func(p model.Product) bool { return p.ID == id })
	if len(s.products) == n {
		return c.JSON(http.StatusNotFound, errorJSON("Product not found"))
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "message": "Product deleted successfully"})
}

func (s *Server) listCategories(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, success("categories", s.categories))
}

// 包みなしで返す
func (s *Server) getCategory(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cat := range s.categories {
		if cat.ID == id {
			return c.JSON(http.StatusOK, cat)
		}
	}
	return c.JSON(http.StatusNotFound, errorJSON("Category not found"))
}

func (s *Server) reviewsByProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Review{}
	for _, r := range s.reviews {
		if r.ProductID == id {
			out = append(out, r)
		}
	}
	return c.JSON(http.StatusOK, success("reviews", out))
}

func (s *Server) createReview(c echo.Context) error {
	var in model.ReviewInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}
	if in.Rating < 1 || in.Rating > 5 {
		return c.JSON(http.StatusBadRequest, errorJSON("Rating must be between 1 and 5"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r := model.Review{
		ID:        s.id(),
		ProductID: in.ProductID,
		UserID:    userIDFrom(c),
		Rating:    in.Rating,
		Title:     in.Title,
		Comment:   in.Comment,
		CreatedAt: s.now(),
	}
	s.reviews = append(s.reviews, r)
	return c.JSON(http.StatusCreated, success("review", r))
}
