package domain

import (
	"context"
	"time"
)

// =============================================================================
// PRODUCT DOMAIN TYPES
// =============================================================================

// Product represents a cosmetics catalog entry.
// Only Name and a positive Price are required; every classifier is optional.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand,omitempty"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	Subcategory  string    `json:"subcategory,omitempty"`
	Megacategory string    `json:"megacategory,omitempty"`
	Price        float64   `json:"price"`
	Images       []string  `json:"images"`
	Rating       float64   `json:"rating"`
	Reviews      int       `json:"reviews"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProductFilter contains optional filters for product listing.
// Zero values mean "dimension not active".
type ProductFilter struct {
	Category     string
	Subcategory  string
	Megacategory string
	Brand        string
	MinPrice     *float64
	MaxPrice     *float64
	SearchTerm   string
}

// CreateProductParams contains parameters for creating a product.
type CreateProductParams struct {
	Name         string
	Brand        string
	Description  string
	Category     string
	Subcategory  string
	Megacategory string
	Price        float64
	Images       []string
	Rating       float64
	Reviews      int
}

// UpdateProductParams contains parameters for updating a product.
// Pointer fields indicate optional updates (nil = no change).
type UpdateProductParams struct {
	Name         *string
	Brand        *string
	Description  *string
	Category     *string
	Subcategory  *string
	Megacategory *string
	Price        *float64
	Images       []string
	Rating       *float64
	Reviews      *int
}

// =============================================================================
// STORE INTERFACE
// =============================================================================

// ProductStore persists and retrieves catalog products.
// Implementations map domain types to their backing storage.
type ProductStore interface {
	// List returns products matching the filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]Product, error)

	// Get retrieves a product by ID.
	Get(ctx context.Context, id string) (*Product, error)

	// Create inserts a new product and returns it with generated fields set.
	Create(ctx context.Context, params CreateProductParams) (*Product, error)

	// Update applies a partial update; only non-nil fields are overwritten.
	Update(ctx context.Context, id string, params UpdateProductParams) (*Product, error)

	// Delete removes a product permanently.
	Delete(ctx context.Context, id string) error
}

// =============================================================================
// DOMAIN ERRORS
// =============================================================================

var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}

	ErrNameRequired  = &Error{Code: EINVALID, Message: "Name and price are required"}
	ErrInvalidPrice  = &Error{Code: EINVALID, Message: "Price must be greater than 0"}
	ErrInvalidRating = &Error{Code: EINVALID, Message: "Rating must be between 0 and 5"}
)

// ValidateCreate checks the invariants enforced at product creation:
// a non-empty name and a strictly positive price. Ratings and review
// counts default to zero when omitted but must stay in range when given.
func (p CreateProductParams) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Rating < 0 || p.Rating > 5 {
		return ErrInvalidRating
	}
	if p.Reviews < 0 {
		return Invalid("product.create", "Reviews must not be negative")
	}
	return nil
}

// Validate checks provided fields of a partial update against the same
// invariants as creation. Nil fields are not validated.
func (p UpdateProductParams) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return Invalid("product.update", "Name must not be empty")
	}
	if p.Price != nil && *p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return ErrInvalidRating
	}
	if p.Reviews != nil && *p.Reviews < 0 {
		return Invalid("product.update", "Reviews must not be negative")
	}
	return nil
}
