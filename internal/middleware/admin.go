package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luxebeaute/storefront/internal/domain"
)

// AdminCookieName is the session cookie carrying the admin token.
const AdminCookieName = "admin_session"

// DefaultSessionTTL bounds how long an admin login stays valid.
const DefaultSessionTTL = 12 * time.Hour

// AdminGate implements the admin session gate: a single shared password,
// compared in constant time, that issues opaque server-held session tokens.
// This is a convenience gate, not an authentication system.
type AdminGate struct {
	password string
	ttl      time.Duration

	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry
}

// NewAdminGate creates a gate for the given shared password.
func NewAdminGate(password string, ttl time.Duration) *AdminGate {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AdminGate{
		password: password,
		ttl:      ttl,
		tokens:   make(map[string]time.Time),
	}
}

// Login validates the password and returns a fresh session token.
func (g *AdminGate) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return "", domain.Unauthorized("admin.login", "Invalid password")
	}

	token, err := generateToken()
	if err != nil {
		return "", domain.Internal(err, "admin.login", "failed to create session")
	}

	g.mu.Lock()
	g.tokens[token] = time.Now().Add(g.ttl)
	g.mu.Unlock()

	return token, nil
}

// Logout revokes a session token. Unknown tokens are a no-op.
func (g *AdminGate) Logout(token string) {
	g.mu.Lock()
	delete(g.tokens, token)
	g.mu.Unlock()
}

// Valid reports whether the token belongs to a live session.
func (g *AdminGate) Valid(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	expiry, ok := g.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(g.tokens, token)
		return false
	}
	return true
}

// Require is the echo middleware protecting admin endpoints.
func (g *AdminGate) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(AdminCookieName)
		if err != nil || !g.Valid(cookie.Value) {
			return domain.Unauthorized("admin.require", "Admin authentication required")
		}
		return next(c)
	}
}

// SessionCookie builds the cookie carrying an issued token.
func (g *AdminGate) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     AdminCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(g.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
