// Package catalog provides pure, in-memory narrowing and ordering of product
// lists, plus the storefront taxonomy tables. Nothing here touches storage;
// the Postgres store applies the same filter semantics server-side.
package catalog

import (
	"sort"
	"strings"

	"github.com/luxebeaute/storefront/internal/domain"
)

// Filter is a multi-select filter specification. Dimensions combine with AND
// semantics; values within one dimension combine with OR semantics (a product
// matches a dimension when it matches ANY selected value).
type Filter struct {
	Categories    []string
	Subcategories []string
	Brands        []string
	SearchTerm    string
	MinPrice      *float64
	MaxPrice      *float64
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortPopularity SortKey = "popularity" // review count descending
	SortNewest     SortKey = "newest"     // creation time descending
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRating     SortKey = "rating" // rating descending
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
)

// Apply returns the subsequence of products matching every active dimension
// of the filter. Input order is preserved and the input slice is not mutated.
func Apply(products []domain.Product, f Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single product satisfies every active dimension.
func (f Filter) Matches(p domain.Product) bool {
	if len(f.Categories) > 0 && !containsFold(f.Categories, p.Category) {
		return false
	}
	if len(f.Subcategories) > 0 && !containsFold(f.Subcategories, p.Subcategory) {
		return false
	}
	if len(f.Brands) > 0 && !containsFold(f.Brands, p.Brand) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.SearchTerm != "" && !matchesSearch(p, f.SearchTerm) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against name, brand,
// or description (OR across fields).
func matchesSearch(p domain.Product, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

// SortBy orders products by the given key. The sort is stable: ties keep
// their input order. Unknown keys fall back to popularity, matching the
// storefront's default ordering. The input slice is sorted in place.
func SortBy(products []domain.Product, key SortKey) {
	var less func(a, b domain.Product) bool

	switch key {
	case SortNewest:
		less = func(a, b domain.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortPriceAsc:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	case SortNameAsc:
		less = func(a, b domain.Product) bool { return a.Name < b.Name }
	case SortNameDesc:
		less = func(a, b domain.Product) bool { return a.Name > b.Name }
	default: // SortPopularity
		less = func(a, b domain.Product) bool { return a.Reviews > b.Reviews }
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}
