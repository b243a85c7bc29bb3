package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxebeaute/storefront/internal/domain"
	"github.com/luxebeaute/storefront/internal/events"
)

// mockProductStore implements domain.ProductStore with overridable functions.
type mockProductStore struct {
	ListFn   func(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetFn    func(ctx context.Context, id string) (*domain.Product, error)
	CreateFn func(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error)
	UpdateFn func(ctx context.Context, id string, params domain.UpdateProductParams) (*domain.Product, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (m *mockProductStore) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return m.ListFn(ctx, filter)
}

func (m *mockProductStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	return m.GetFn(ctx, id)
}

func (m *mockProductStore) Create(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error) {
	return m.CreateFn(ctx, params)
}

func (m *mockProductStore) Update(ctx context.Context, id string, params domain.UpdateProductParams) (*domain.Product, error) {
	return m.UpdateFn(ctx, id, params)
}

func (m *mockProductStore) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

// mockPublisher records published events.
type mockPublisher struct {
	created   []domain.Product
	updated   []domain.Product
	deleted   []string
	submitted []events.OrderEvent
}

func (m *mockPublisher) ProductCreated(_ context.Context, p domain.Product) error {
	m.created = append(m.created, p)
	return nil
}

func (m *mockPublisher) ProductUpdated(_ context.Context, p domain.Product) error {
	m.updated = append(m.updated, p)
	return nil
}

func (m *mockPublisher) ProductDeleted(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockPublisher) OrderSubmitted(_ context.Context, e events.OrderEvent) error {
	m.submitted = append(m.submitted, e)
	return nil
}

// newEcho builds an echo instance with the production error handler so tests
// assert the real error envelope.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler(zerolog.Nop())
	return e
}

func doJSON(e *echo.Echo, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// assertErrorEnvelope checks the JSON error body produced by HTTPErrorHandler.
func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, code, message string) {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, code, body.Error.Code)
	assert.Equal(t, message, body.Error.Message)
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CartCookieName {
			return c
		}
	}
	return nil
}
