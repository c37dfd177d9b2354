package apitest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HamzaEhtisham/Ecommerce-Website-ShopHub/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	ctxUserIDKey   = "user_id"   // int64
	ctxUserRoleKey = "user_role" // string

	sessionCookie = "session"
)

// IssueTokenはHS256のアクセストークンを作る
func (s *Server) IssueToken(userID int64, role model.Role, ttl time.Duration) string {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": string(role),
		"exp":  s.now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return signed
}

// bearerAuth用のJWT検証ミドルウェア
func (s *Server) AuthJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			rawToken := strings.TrimSpace(parts[1])

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return s.secret, nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("Token expired or invalid"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			sub, _ := claims["sub"].(string)
			userID, err := strconv.ParseInt(sub, 10, 64)
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}
			role, _ := claims["role"].(string)

			c.Set(ctxUserIDKey, userID)
			c.Set(ctxUserRoleKey, role)
			return next(c)
		}
	}
}

// 管理者はセッションCookieで判定する
func (s *Server) AdminSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := s.adminFromSession(c); !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("Unauthorized"))
			}
			return next(c)
		}
	}
}

func (s *Server) adminFromSession(c echo.Context) (model.Admin, bool) {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return model.Admin{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	adminID, ok := s.sessions[cookie.Value]
	if !ok {
		return model.Admin{}, false
	}
	for _, a := range s.admins {
		if a.admin.ID == adminID {
			return a.admin, true
		}
	}
	return model.Admin{}, false
}

func userIDFrom(c echo.Context) int64 {
	id, _ := c.Get(ctxUserIDKey).(int64)
	return id
}

func (s *Server) userByID(userID int64) (*userRecord, bool) {
	for _, u := range s.users {
		if u.user.ID == userID {
			return u, true
		}
	}
	return nil, false
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("Email and password are required"))
	}

	s.mu.Lock()
	rec, ok := s.users[strings.ToLower(req.Email)]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid email or password"))
	}

	return c.JSON(http.StatusOK, envelope{
		"success": true,
		"token":   s.IssueToken(rec.user.ID, rec.user.Role, time.Hour),
		"user":    rec.user,
	})
}

func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil || req.Name == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("Name and email are required"))
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, errorJSON("Password must be at least 8 characters"))
	}

	s.mu.Lock()
	_, exists := s.users[strings.ToLower(req.Email)]
	s.mu.Unlock()
	if exists {
		return c.JSON(http.StatusConflict, errorJSON("Email already registered"))
	}

	u := s.AddUser(req.Name, req.Email, req.Password, model.RoleCustomer)
	if req.Phone != "" {
		s.mu.Lock()
		s.users[strings.ToLower(req.Email)].user.Phone = req.Phone
		u.Phone = req.Phone
		s.mu.Unlock()
	}

	return c.JSON(http.StatusCreated, envelope{
		"success": true,
		"token":   s.IssueToken(u.ID, u.Role, time.Hour),
		"user":    u,
	})
}

func (s *Server) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, envelope{"success": true, "message": "Logged out successfully"})
}

func (s *Server) profile(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.userByID(userIDFrom(c))
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("User not found"))
	}
	return c.JSON(http.StatusOK, success("user", rec.user))
}

func (s *Server) updateProfile(c echo.Context) error {
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}
	// roleは本人では変えられない
	patch.Role = nil

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.userByID(userIDFrom(c))
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("User not found"))
	}
	rec.user = patch.Apply(rec.user)
	return c.JSON(http.StatusOK, success("user", rec.user))
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) changePassword(c echo.Context) error {
	var req passwordChangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.userByID(userIDFrom(c))
	if !ok || bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.CurrentPassword)) != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("Current password is incorrect"))
	}
	rec.passwordHash = mustHash(req.NewPassword)
	return c.JSON(http.StatusOK, envelope{"success": true, "message": "Password updated"})
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) adminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, errorJSON("Username and password are required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if a.admin.Username != strings.TrimSpace(req.Username) {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Password)) != nil {
			break
		}

		sid := uuid.NewString()
		s.sessions[sid] = a.admin.ID
		c.SetCookie(&http.Cookie{Name: sessionCookie, Value: sid, Path: "/", HttpOnly: true})
		return c.JSON(http.StatusOK, envelope{
			"success": true,
			"message": "Login successful",
			"admin":   a.admin,
		})
	}
	return c.JSON(http.StatusUnauthorized, errorJSON("Invalid credentials"))
}

func (s *Server) adminLogout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		delete(s.sessions, cookie.Value)
		s.mu.Unlock()
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "message": "Logged out successfully"})
}

func (s *Server) adminCheck(c echo.Context) error {
	admin, ok := s.adminFromSession(c)
	if !ok {
		return c.JSON(http.StatusOK, envelope{"success": true, "logged_in": false})
	}
	return c.JSON(http.StatusOK, envelope{"success": true, "logged_in": true, "admin": admin})
}
