// Package postgres implements the catalog's ProductStore on PostgreSQL
// via pgx. Filtering mirrors the public API contract: exact match on
// classifiers, numeric range on price, case-insensitive substring OR-match
// on name/brand/description, newest first.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/luxebeaute/storefront/internal/domain"
)

// DB is the subset of pgxpool.Pool the store needs. Declared here so tests
// can substitute a fake without a live database.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ProductStore implements domain.ProductStore using PostgreSQL.
type ProductStore struct {
	db DB
}

// Compile-time check that ProductStore implements domain.ProductStore.
var _ domain.ProductStore = (*ProductStore)(nil)

// NewProductStore creates a new PostgreSQL-backed product store.
func NewProductStore(db DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, COALESCE(brand, ''), COALESCE(description, ''),
	COALESCE(category, ''), COALESCE(subcategory, ''), COALESCE(megacategory, ''),
	price, images, rating, reviews, created_at, updated_at`

// List returns products matching the filter, ordered by creation time
// descending. Inactive filter dimensions are skipped entirely.
func (s *ProductStore) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		conds = append(conds, "category = "+arg(filter.Category))
	}
	if filter.Subcategory != "" {
		conds = append(conds, "subcategory = "+arg(filter.Subcategory))
	}
	if filter.Megacategory != "" {
		conds = append(conds, "megacategory = "+arg(filter.Megacategory))
	}
	if filter.Brand != "" {
		conds = append(conds, "brand = "+arg(filter.Brand))
	}
	if filter.MinPrice != nil {
		conds = append(conds, "price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "price <= "+arg(*filter.MaxPrice))
	}
	if filter.SearchTerm != "" {
		p := arg("%" + escapeLike(filter.SearchTerm) + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %[1]s OR brand ILIKE %[1]s OR description ILIKE %[1]s)", p))
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.Internal(err, "product.list", "failed to list products")
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, domain.Internal(err, "product.list", "failed to scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "product.list", "failed to read products")
	}

	return products, nil
}

// Get retrieves a product by ID.
func (s *ProductStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	row := s.db.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, "product.get", "failed to get product")
	}

	return &p, nil
}

// Create inserts a new product. The price > 0 invariant is validated here as
// well as in the handler, since the store is the last line before the row
// exists.
func (s *ProductStore) Create(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	images := params.Images
	if images == nil {
		images = []string{}
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO products (id, name, brand, description, category, subcategory, megacategory, price, images, rating, reviews)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11)
		RETURNING `+productColumns,
		uuid.New().String(), params.Name, params.Brand, params.Description,
		params.Category, params.Subcategory, params.Megacategory,
		params.Price, images, params.Rating, params.Reviews,
	)

	p, err := scanProduct(row)
	if err != nil {
		return nil, domain.Internal(err, "product.create", "failed to create product")
	}

	return &p, nil
}

// Update applies a partial update; only non-nil params overwrite columns.
// Returns the updated product, or not-found when the ID has no row.
func (s *ProductStore) Update(ctx context.Context, id string, params domain.UpdateProductParams) (*domain.Product, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		sets []string
		args []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if params.Name != nil {
		sets = append(sets, "name = "+arg(*params.Name))
	}
	if params.Brand != nil {
		sets = append(sets, "brand = NULLIF("+arg(*params.Brand)+", '')")
	}
	if params.Description != nil {
		sets = append(sets, "description = NULLIF("+arg(*params.Description)+", '')")
	}
	if params.Category != nil {
		sets = append(sets, "category = NULLIF("+arg(*params.Category)+", '')")
	}
	if params.Subcategory != nil {
		sets = append(sets, "subcategory = NULLIF("+arg(*params.Subcategory)+", '')")
	}
	if params.Megacategory != nil {
		sets = append(sets, "megacategory = NULLIF("+arg(*params.Megacategory)+", '')")
	}
	if params.Price != nil {
		sets = append(sets, "price = "+arg(*params.Price))
	}
	if params.Images != nil {
		sets = append(sets, "images = "+arg(params.Images))
	}
	if params.Rating != nil {
		sets = append(sets, "rating = "+arg(*params.Rating))
	}
	if params.Reviews != nil {
		sets = append(sets, "reviews = "+arg(*params.Reviews))
	}

	if len(sets) == 0 {
		// Nothing to change; still confirm the row exists.
		return s.Get(ctx, id)
	}

	sets = append(sets, "updated_at = now()")

	query := "UPDATE products SET " + strings.Join(sets, ", ") +
		" WHERE id = " + arg(id) + " RETURNING " + productColumns

	row := s.db.QueryRow(ctx, query, args...)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, "product.update", "failed to update product")
	}

	return &p, nil
}

// Delete removes a product permanently.
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return domain.Internal(err, "product.delete", "failed to delete product")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// escapeLike neutralizes LIKE pattern metacharacters so a search term is
// matched literally: "100%" must not match every "100".
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// scanProduct reads one product row in productColumns order.
func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Brand, &p.Description,
		&p.Category, &p.Subcategory, &p.Megacategory,
		&p.Price, &p.Images, &p.Rating, &p.Reviews,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p, nil
}
