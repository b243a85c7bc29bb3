package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luxebeaute/storefront/internal/handler"
	"github.com/luxebeaute/storefront/internal/middleware"
)

// Deps contains the handlers and middleware the route table wires together.
type Deps struct {
	// Catalog
	ProductHandler *handler.ProductHandler

	// Cart and checkout
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler

	// Admin (consolidated: login, logout, product mutations, uploads)
	AuthHandler   *handler.AuthHandler
	UploadHandler *handler.UploadHandler
	AdminGate     *middleware.AdminGate

	// Observability
	Metrics *middleware.Metrics
}

// Register wires all routes onto the echo instance. Product and taxonomy
// reads are public; mutations sit behind the admin gate.
func Register(e *echo.Echo, deps Deps) {
	// Catalog
	e.GET("/products", deps.ProductHandler.List)
	e.GET("/products/:id", deps.ProductHandler.Get)
	e.GET("/taxonomy", handler.Taxonomy)

	// Cart
	e.GET("/cart", deps.CartHandler.View)
	e.DELETE("/cart", deps.CartHandler.Clear)
	e.POST("/cart/items", deps.CartHandler.AddItem)
	e.PUT("/cart/items/:productId", deps.CartHandler.UpdateItem)
	e.DELETE("/cart/items/:productId", deps.CartHandler.RemoveItem)

	// Checkout
	e.POST("/checkout", deps.CheckoutHandler.Checkout)

	// Admin session
	e.POST("/admin/login", deps.AuthHandler.Login)
	e.POST("/admin/logout", deps.AuthHandler.Logout)

	// Admin-gated catalog mutations
	admin := deps.AdminGate.Require
	e.POST("/products", deps.ProductHandler.Create, admin)
	e.PUT("/products/:id", deps.ProductHandler.Update, admin)
	e.DELETE("/products/:id", deps.ProductHandler.Delete, admin)
	e.POST("/upload", deps.UploadHandler.Upload, admin)
	e.DELETE("/upload", deps.UploadHandler.Delete, admin)

	// Health and metrics
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if deps.Metrics != nil {
		e.GET("/metrics", deps.Metrics.Handler())
	}
}
