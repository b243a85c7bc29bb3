package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/luxebeaute/storefront/internal/cart"
	"github.com/luxebeaute/storefront/internal/checkout"
	"github.com/luxebeaute/storefront/internal/domain"
	"github.com/luxebeaute/storefront/internal/events"
	"github.com/luxebeaute/storefront/internal/middleware"
)

// CheckoutHandler turns the session's cart into a WhatsApp order link.
type CheckoutHandler struct {
	carts         *cart.Manager
	publisher     events.Publisher
	metrics       *middleware.Metrics
	validate      *validator.Validate
	logger        zerolog.Logger
	businessPhone string
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(carts *cart.Manager, publisher events.Publisher, metrics *middleware.Metrics, logger zerolog.Logger, businessPhone string) *CheckoutHandler {
	return &CheckoutHandler{
		carts:         carts,
		publisher:     publisher,
		metrics:       metrics,
		validate:      validator.New(),
		logger:        logger,
		businessPhone: businessPhone,
	}
}

// checkoutResponse carries the deep link and the plain message for display.
type checkoutResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Checkout handles POST /checkout. An empty cart is rejected before any
// message is generated.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var customer checkout.CustomerInfo
	if err := c.Bind(&customer); err != nil {
		return domain.Invalid("checkout", "Invalid request body")
	}
	if err := h.validate.Struct(customer); err != nil {
		return domain.Invalid("checkout", "Name, phone, address and city are required")
	}

	var summary domain.CartSummary
	err := h.carts.With(sessionID(c), func(s *cart.Store) error {
		summary = s.Summary()
		return nil
	})
	if err != nil {
		return domain.Internal(err, "checkout", "failed to load cart")
	}

	if len(summary.Items) == 0 {
		return domain.ErrEmptyCart
	}

	msg := checkout.Message(summary.Items, summary.Total, customer)
	link := checkout.Link(summary.Items, summary.Total, customer, h.businessPhone)

	if h.metrics != nil {
		h.metrics.CheckoutLinkGenerated()
	}

	if err := h.publisher.OrderSubmitted(c.Request().Context(), events.OrderEvent{
		Items:     summary.Items,
		Total:     summary.Total,
		ItemCount: summary.ItemCount,
		Customer:  customer,
	}); err != nil {
		h.logger.Warn().Err(err).Msg("failed to publish order.submitted")
	}

	return c.JSON(http.StatusOK, checkoutResponse{URL: link, Message: msg})
}
