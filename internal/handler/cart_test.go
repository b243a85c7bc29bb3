package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxebeaute/storefront/internal/cart"
	"github.com/luxebeaute/storefront/internal/domain"
)

func cartRoutes(products domain.ProductStore) *echo.Echo {
	manager := cart.NewManager(func(string) (cart.Persistence, error) {
		return cart.NewMemoryStore(), nil
	})
	h := NewCartHandler(manager, products)

	e := newEcho()
	e.GET("/cart", h.View)
	e.DELETE("/cart", h.Clear)
	e.POST("/cart/items", h.AddItem)
	e.PUT("/cart/items/:productId", h.UpdateItem)
	e.DELETE("/cart/items/:productId", h.RemoveItem)

	return e
}

func catalogOf(products ...domain.Product) *mockProductStore {
	return &mockProductStore{
		GetFn: func(_ context.Context, id string) (*domain.Product, error) {
			for _, p := range products {
				if p.ID == id {
					copied := p
					return &copied, nil
				}
			}
			return nil, domain.ErrProductNotFound
		},
	}
}

func decodeSummary(t *testing.T, rec *httptest.ResponseRecorder) domain.CartSummary {
	t.Helper()
	var summary domain.CartSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	return summary
}

func TestCartHandler_Flow(t *testing.T) {
	serum := domain.Product{ID: "p1", Name: "Serum", Price: 135}
	cream := domain.Product{ID: "p2", Name: "Cream", Price: 45}
	e := cartRoutes(catalogOf(serum, cream))

	// First request mints a session cookie.
	rec := doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p1", "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	session := sessionCookie(rec)
	require.NotNil(t, session)

	summary := decodeSummary(t, rec)
	assert.Equal(t, 270.0, summary.Total)
	assert.Equal(t, 2, summary.ItemCount)

	// Same product again accumulates.
	rec = doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p1"}`, session)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeSummary(t, rec)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)

	// Second product.
	rec = doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p2", "quantity": 1}`, session)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeSummary(t, rec)
	assert.Equal(t, 450.0, summary.Total)
	assert.Equal(t, 4, summary.ItemCount)

	// Set the first line back to 2.
	rec = doJSON(e, http.MethodPut, "/cart/items/p1", `{"quantity": 2}`, session)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeSummary(t, rec)
	assert.Equal(t, 315.0, summary.Total)
	assert.Equal(t, 3, summary.ItemCount)

	// Viewing returns the same state.
	rec = doJSON(e, http.MethodGet, "/cart", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeSummary(t, rec)
	assert.Equal(t, 315.0, summary.Total)

	// Remove a line, then clear.
	rec = doJSON(e, http.MethodDelete, "/cart/items/p2", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeSummary(t, rec)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "p1", summary.Items[0].Product.ID)

	rec = doJSON(e, http.MethodDelete, "/cart", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeSummary(t, rec)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0.0, summary.Total)
}

func TestCartHandler_AddItem(t *testing.T) {
	serum := domain.Product{ID: "p1", Name: "Serum", Price: 135}

	t.Run("unknown product", func(t *testing.T) {
		e := cartRoutes(catalogOf(serum))

		rec := doJSON(e, http.MethodPost, "/cart/items", `{"productId": "missing"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorEnvelope(t, rec, domain.ENOTFOUND, "Product not found")
	})

	t.Run("missing product id", func(t *testing.T) {
		e := cartRoutes(catalogOf(serum))

		rec := doJSON(e, http.MethodPost, "/cart/items", `{"quantity": 1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		e := cartRoutes(catalogOf(serum))

		rec := doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p1", "quantity": -1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorEnvelope(t, rec, domain.EINVALID, "Quantity must be greater than 0")
	})

	t.Run("omitted quantity defaults to one", func(t *testing.T) {
		e := cartRoutes(catalogOf(serum))

		rec := doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		summary := decodeSummary(t, rec)
		assert.Equal(t, 1, summary.ItemCount)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	serum := domain.Product{ID: "p1", Name: "Serum", Price: 135}

	t.Run("zero quantity removes the line", func(t *testing.T) {
		e := cartRoutes(catalogOf(serum))

		rec := doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p1", "quantity": 2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		session := sessionCookie(rec)

		rec = doJSON(e, http.MethodPut, "/cart/items/p1", `{"quantity": 0}`, session)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeSummary(t, rec).Items)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		e := cartRoutes(catalogOf(serum))

		rec := doJSON(e, http.MethodPut, "/cart/items/missing", `{"quantity": 3}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeSummary(t, rec).Items)
	})
}

func TestCartHandler_ForgedSessionCookie(t *testing.T) {
	serum := domain.Product{ID: "p1", Name: "Serum", Price: 135}

	root := t.TempDir()
	dataDir := filepath.Join(root, "carts")
	manager := cart.NewFileManager(dataDir)
	h := NewCartHandler(manager, catalogOf(serum))

	e := newEcho()
	e.POST("/cart/items", h.AddItem)

	forged := &http.Cookie{Name: CartCookieName, Value: "../escaped"}
	rec := doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p1"}`, forged)

	require.Equal(t, http.StatusOK, rec.Code)

	// The forged value is discarded and a server-minted ID replaces it.
	minted := sessionCookie(rec)
	require.NotNil(t, minted)
	_, err := uuid.Parse(minted.Value)
	require.NoError(t, err)

	// Every cart file stays inside the data dir.
	_, err = os.Stat(filepath.Join(root, "escaped.json"))
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "carts", entries[0].Name())

	files, err := os.ReadDir(dataDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, minted.Value+".json", files[0].Name())
}

func TestCartHandler_SessionsIsolated(t *testing.T) {
	serum := domain.Product{ID: "p1", Name: "Serum", Price: 135}
	e := cartRoutes(catalogOf(serum))

	rec := doJSON(e, http.MethodPost, "/cart/items", `{"productId": "p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// A request without the cookie gets a fresh, empty cart.
	rec = doJSON(e, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeSummary(t, rec).Items)
}
