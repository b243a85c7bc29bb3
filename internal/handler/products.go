package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/luxebeaute/storefront/internal/catalog"
	"github.com/luxebeaute/storefront/internal/domain"
	"github.com/luxebeaute/storefront/internal/events"
)

// ProductHandler serves the catalog CRUD endpoints.
type ProductHandler struct {
	store     domain.ProductStore
	publisher events.Publisher
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(store domain.ProductStore, publisher events.Publisher, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		store:     store,
		publisher: publisher,
		validate:  validator.New(),
		logger:    logger,
	}
}

// createProductRequest is the POST /products body.
type createProductRequest struct {
	Name         string   `json:"name" validate:"required"`
	Brand        string   `json:"brand"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Megacategory string   `json:"megacategory"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Images       []string `json:"images"`
	Rating       float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews      int      `json:"reviews" validate:"gte=0"`
}

// updateProductRequest is the PUT /products/:id body; nil means "no change".
type updateProductRequest struct {
	Name         *string  `json:"name"`
	Brand        *string  `json:"brand"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Subcategory  *string  `json:"subcategory"`
	Megacategory *string  `json:"megacategory"`
	Price        *float64 `json:"price"`
	Images       []string `json:"images"`
	Rating       *float64 `json:"rating"`
	Reviews      *int     `json:"reviews"`
}

// List handles GET /products. Single-valued filters run in the store query;
// repeated filter params narrow the result in memory, and the sort key is
// applied last (popularity when omitted).
func (h *ProductHandler) List(c echo.Context) error {
	filter, multi, err := filterFromQuery(c)
	if err != nil {
		return err
	}

	products, err := h.store.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	products = catalog.Apply(products, multi)
	catalog.SortBy(products, catalog.SortKey(c.QueryParam("sort")))

	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("product.create", "Invalid request body")
	}
	if req.Name == "" || req.Price == 0 {
		return domain.ErrNameRequired
	}
	if err := h.validate.Struct(req); err != nil {
		return domain.Invalid("product.create", validationMessage(err))
	}

	product, err := h.store.Create(c.Request().Context(), domain.CreateProductParams{
		Name:         req.Name,
		Brand:        req.Brand,
		Description:  req.Description,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Megacategory: req.Megacategory,
		Price:        req.Price,
		Images:       req.Images,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
	})
	if err != nil {
		return err
	}

	if err := h.publisher.ProductCreated(c.Request().Context(), *product); err != nil {
		h.logger.Warn().Err(err).Str("product_id", product.ID).Msg("failed to publish product.created")
	}

	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id with a partial body.
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("product.update", "Invalid request body")
	}

	product, err := h.store.Update(c.Request().Context(), c.Param("id"), domain.UpdateProductParams{
		Name:         req.Name,
		Brand:        req.Brand,
		Description:  req.Description,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Megacategory: req.Megacategory,
		Price:        req.Price,
		Images:       req.Images,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
	})
	if err != nil {
		return err
	}

	if err := h.publisher.ProductUpdated(c.Request().Context(), *product); err != nil {
		h.logger.Warn().Err(err).Str("product_id", product.ID).Msg("failed to publish product.updated")
	}

	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	if err := h.publisher.ProductDeleted(c.Request().Context(), id); err != nil {
		h.logger.Warn().Err(err).Str("product_id", id).Msg("failed to publish product.deleted")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// filterFromQuery parses the catalog filter query parameters. Dimensions with
// a single value go into the store filter; dimensions selected more than once
// come back in the in-memory filter, since the store matches one value per
// dimension.
func filterFromQuery(c echo.Context) (domain.ProductFilter, catalog.Filter, error) {
	filter := domain.ProductFilter{
		Megacategory: c.QueryParam("megacategory"),
		SearchTerm:   c.QueryParam("searchTerm"),
	}
	var multi catalog.Filter

	params := c.QueryParams()
	for _, dim := range []struct {
		name   string
		single *string
		many   *[]string
	}{
		{"category", &filter.Category, &multi.Categories},
		{"subcategory", &filter.Subcategory, &multi.Subcategories},
		{"brand", &filter.Brand, &multi.Brands},
	} {
		values := params[dim.name]
		switch {
		case len(values) == 1:
			*dim.single = values[0]
		case len(values) > 1:
			*dim.many = values
		}
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, multi, domain.Invalid("product.list", "minPrice must be a number")
		}
		filter.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, multi, domain.Invalid("product.list", "maxPrice must be a number")
		}
		filter.MaxPrice = &v
	}

	return filter, multi, nil
}

// validationMessage flattens a validator error into one user-facing line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return "Name and price are required"
		case "gt":
			return "Price must be greater than 0"
		case "gte", "lte":
			if fe.Field() == "Rating" {
				return "Rating must be between 0 and 5"
			}
			return "Reviews must not be negative"
		}
	}
	return "Invalid request"
}
