package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/luxebeaute/storefront/internal/cart"
	"github.com/luxebeaute/storefront/internal/domain"
)

// CartCookieName identifies the client's cart session.
const CartCookieName = "cart_session"

// cartCookieMaxAge matches the storage-expiry lifecycle: carts live until
// the client-side session storage does.
const cartCookieMaxAge = 30 * 24 * 60 * 60

// CartHandler serves the session-scoped cart endpoints. Product snapshots
// are taken from the catalog at add time.
type CartHandler struct {
	carts    *cart.Manager
	products domain.ProductStore
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts *cart.Manager, products domain.ProductStore) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
	}
}

// addItemRequest is the POST /cart/items body.
type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// updateItemRequest is the PUT /cart/items/:productId body.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// View handles GET /cart.
func (h *CartHandler) View(c echo.Context) error {
	var summary domain.CartSummary
	err := h.carts.With(sessionID(c), func(s *cart.Store) error {
		summary = s.Summary()
		return nil
	})
	if err != nil {
		return domain.Internal(err, "cart.view", "failed to load cart")
	}
	return c.JSON(http.StatusOK, summary)
}

// AddItem handles POST /cart/items: snapshot the product and add it, or
// increment the quantity of an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("cart.add", "Invalid request body")
	}
	if req.ProductID == "" {
		return domain.Invalid("cart.add", "productId is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return domain.ErrInvalidQuantity
	}

	product, err := h.products.Get(c.Request().Context(), req.ProductID)
	if err != nil {
		return err
	}

	var summary domain.CartSummary
	err = h.carts.With(sessionID(c), func(s *cart.Store) error {
		if err := s.AddItem(*product, req.Quantity); err != nil {
			return err
		}
		summary = s.Summary()
		return nil
	})
	if err != nil {
		return domain.Internal(err, "cart.add", "failed to save cart")
	}

	return c.JSON(http.StatusOK, summary)
}

// UpdateItem handles PUT /cart/items/:productId. A quantity of zero or less
// removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("cart.update", "Invalid request body")
	}

	var summary domain.CartSummary
	err := h.carts.With(sessionID(c), func(s *cart.Store) error {
		if err := s.UpdateQuantity(c.Param("productId"), req.Quantity); err != nil {
			return err
		}
		summary = s.Summary()
		return nil
	})
	if err != nil {
		return domain.Internal(err, "cart.update", "failed to save cart")
	}

	return c.JSON(http.StatusOK, summary)
}

// RemoveItem handles DELETE /cart/items/:productId. Removing an absent item
// succeeds with the unchanged cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	var summary domain.CartSummary
	err := h.carts.With(sessionID(c), func(s *cart.Store) error {
		if err := s.RemoveItem(c.Param("productId")); err != nil {
			return err
		}
		summary = s.Summary()
		return nil
	})
	if err != nil {
		return domain.Internal(err, "cart.remove", "failed to save cart")
	}

	return c.JSON(http.StatusOK, summary)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c echo.Context) error {
	var summary domain.CartSummary
	err := h.carts.With(sessionID(c), func(s *cart.Store) error {
		if err := s.Clear(); err != nil {
			return err
		}
		summary = s.Summary()
		return nil
	})
	if err != nil {
		return domain.Internal(err, "cart.clear", "failed to save cart")
	}

	return c.JSON(http.StatusOK, summary)
}

// sessionID returns the cart session from the cookie, minting one when the
// client has none yet. Shared with the checkout handler. Only IDs the server
// minted are accepted: the value feeds the persistence layer, so anything
// that does not parse as a UUID is replaced with a fresh session.
func sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(CartCookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}

	id := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     CartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cartCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
