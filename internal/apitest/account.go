package apitest

import (
	"net/http"
	"path"
	"slices"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func (s *Server) listAddresses(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.addresses[userIDFrom(c)])
	if out == nil {
		out = []model.Address{}
	}
	return c.JSON(http.StatusOK, success("addresses", out))
}

// 最初の1件は自動でデフォルト
func (s *Server) createAddress(c echo.Context) error {
	var in model.Address
	if err := c.Bind(&in); err != nil || in.Line1 == "" || in.City == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("line1 and city are required"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.id()
	in.IsDefault = len(s.addresses[userID]) == 0
	s.addresses[userID] = append(s.addresses[userID], in)
	return c.JSON(http.StatusCreated, success("address", in))
}

func (s *Server) setDefaultAddress(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.addresses[userID]
	if !slices.ContainsFunc(list, func(a model.Address) bool { return a.ID == id }) {
		return c.JSON(http.StatusNotFound, errorJSON("Address not found"))
	}
	for i := range list {
		list[i].IsDefault = list[i].ID == id
	}
	return c.JSON(http.StatusOK, envelope{"success": true})
}

func (s *Server) deleteAddress(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[userID] = slices.DeleteFunc(s.addresses[userID], func(a model.Address) bool { return a.ID == id })
	return c.JSON(http.StatusOK, envelope{"success": true})
}

type paymentIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (s *Server) createPaymentIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil || !req.Amount.IsPositive() {
		return c.JSON(http.StatusBadRequest, errorJSON("amount must be positive"))
	}

	id := uuid.NewString()
	return c.JSON(http.StatusOK, success("paymentIntent", model.PaymentIntent{
		ID:           "pi_" + id,
		ClientSecret: "secret_" + id,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       "requires_confirmation",
	}))
}

type confirmRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	PaymentMethodID string `json:"paymentMethodId"`
}

func (s *Server) confirmPayment(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil || req.PaymentIntentID == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("paymentIntentId is required"))
	}
	return c.JSON(http.StatusOK, success("paymentIntent", model.PaymentIntent{
		ID:     req.PaymentIntentID,
		Status: "succeeded",
	}))
}

func (s *Server) listPaymentMethods(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.methods[userIDFrom(c)])
	if out == nil {
		out = []model.PaymentMethod{}
	}
	return c.JSON(http.StatusOK, success("paymentMethods", out))
}

type paymentMethodRequest struct {
	CardNumber string `json:"cardNumber"`
}

func (s *Server) addPaymentMethod(c echo.Context) error {
	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil || len(req.CardNumber) < 4 {
		return c.JSON(http.StatusBadRequest, errorJSON("cardNumber is required"))
	}

	userID := userIDFrom(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	m := model.PaymentMethod{
		ID:        "pm_" + uuid.NewString(),
		Brand:     "visa",
		Last4:     req.CardNumber[len(req.CardNumber)-4:],
		IsDefault: len(s.methods[userID]) == 0,
	}
	s.methods[userID] = append(s.methods[userID], m)
	return c.JSON(http.StatusCreated, success("paymentMethod", m))
}

func (s *Server) uploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("image is required"))
	}
	folder := c.FormValue("folder")
	return c.JSON(http.StatusOK, success("image", model.UploadedImage{
		URL:    "/uploads/" + path.Join(folder, fh.Filename),
		Folder: folder,
	}))
}

func (s *Server) uploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		return c.JSON(http.StatusBadRequest, errorJSON("images are required"))
	}
	folder := c.FormValue("folder")

	out := []model.UploadedImage{}
	for _, fh := range form.File["images"] {
		out = append(out, model.UploadedImage{
			URL:    "/uploads/" + path.Join(folder, fh.Filename),
			Folder: folder,
		})
	}
	return c.JSON(http.StatusOK, success("images", out))
}

type deleteImageRequest struct {
	ImageURL string `json:"imageUrl"`
}

func (s *Server) deleteImage(c echo.Context) error {
	var req deleteImageRequest
	if err := c.Bind(&req); err != nil || req.ImageURL == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("imageUrl is required"))
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "message": "Image deleted"})
}
