package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxebeaute/storefront/internal/domain"
	"github.com/luxebeaute/storefront/internal/middleware"
)

// AuthHandler serves admin login/logout against the shared-password gate.
type AuthHandler struct {
	gate *middleware.AdminGate
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(gate *middleware.AdminGate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// loginRequest is the POST /admin/login body.
type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("admin.login", "Invalid request body")
	}
	if req.Password == "" {
		return domain.Invalid("admin.login", "Password is required")
	}

	token, err := h.gate.Login(req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.gate.SessionCookie(token))
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": true})
}

// Logout handles POST /admin/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.AdminCookieName); err == nil {
		h.gate.Logout(cookie.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": false})
}
