package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luxebeaute/storefront/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func sampleProducts() []domain.Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: "p1", Name: "Hydrating Serum", Brand: "The Ordinary", Category: "Soins Visage", Subcategory: "Sérums", Price: 135, Rating: 4.8, Reviews: 320, CreatedAt: base},
		{ID: "p2", Name: "Night Cream", Brand: "CeraVe", Category: "Soins Visage", Subcategory: "Crèmes", Price: 45, Rating: 4.2, Reviews: 150, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "p3", Name: "Matte Lipstick", Brand: "Maybelline", Category: "Maquillage", Subcategory: "Lèvres", Price: 89, Rating: 4.5, Reviews: 210, CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "p4", Name: "Repair Shampoo", Brand: "Kérastase", Category: "Cheveux", Subcategory: "Shampooings", Price: 210, Rating: 3.9, Reviews: 80, CreatedAt: base.AddDate(0, 0, 3)},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "empty filter matches everything",
			filter: Filter{},
			want:   []string{"p1", "p2", "p3", "p4"},
		},
		{
			name:   "single category",
			filter: Filter{Categories: []string{"Soins Visage"}},
			want:   []string{"p1", "p2"},
		},
		{
			name:   "values within a dimension are OR",
			filter: Filter{Categories: []string{"Maquillage", "Cheveux"}},
			want:   []string{"p3", "p4"},
		},
		{
			name: "dimensions combine with AND",
			filter: Filter{
				Categories: []string{"Soins Visage"},
				Brands:     []string{"CeraVe"},
			},
			want: []string{"p2"},
		},
		{
			name:   "category match is case-insensitive",
			filter: Filter{Categories: []string{"soins visage"}},
			want:   []string{"p1", "p2"},
		},
		{
			name:   "subcategory",
			filter: Filter{Subcategories: []string{"Sérums"}},
			want:   []string{"p1"},
		},
		{
			name:   "price range",
			filter: Filter{MinPrice: ptr(50), MaxPrice: ptr(150)},
			want:   []string{"p1", "p3"},
		},
		{
			name:   "price bounds are inclusive",
			filter: Filter{MinPrice: ptr(45), MaxPrice: ptr(45)},
			want:   []string{"p2"},
		},
		{
			name:   "search matches name",
			filter: Filter{SearchTerm: "serum"},
			want:   []string{"p1"},
		},
		{
			name:   "search matches brand",
			filter: Filter{SearchTerm: "cerave"},
			want:   []string{"p2"},
		},
		{
			name:   "search with no hits",
			filter: Filter{SearchTerm: "sunscreen"},
			want:   []string{},
		},
		{
			name: "all dimensions together",
			filter: Filter{
				Categories: []string{"Soins Visage"},
				MaxPrice:   ptr(100),
				SearchTerm: "cream",
			},
			want: []string{"p2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(products, tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_PreservesInput(t *testing.T) {
	products := sampleProducts()

	Apply(products, Filter{Categories: []string{"Maquillage"}})

	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(products))
}

func TestSortBy(t *testing.T) {
	tests := []struct {
		name string
		key  SortKey
		want []string
	}{
		{name: "popularity is review count descending", key: SortPopularity, want: []string{"p1", "p3", "p2", "p4"}},
		{name: "newest first", key: SortNewest, want: []string{"p4", "p3", "p2", "p1"}},
		{name: "price ascending", key: SortPriceAsc, want: []string{"p2", "p3", "p1", "p4"}},
		{name: "price descending", key: SortPriceDesc, want: []string{"p4", "p1", "p3", "p2"}},
		{name: "rating descending", key: SortRating, want: []string{"p1", "p3", "p2", "p4"}},
		{name: "name ascending", key: SortNameAsc, want: []string{"p1", "p3", "p2", "p4"}},
		{name: "name descending", key: SortNameDesc, want: []string{"p4", "p2", "p3", "p1"}},
		{name: "unknown key falls back to popularity", key: SortKey("bogus"), want: []string{"p1", "p3", "p2", "p4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := sampleProducts()
			SortBy(products, tt.key)
			assert.Equal(t, tt.want, ids(products))
		})
	}
}

func TestSortBy_StableOnTies(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Price: 50},
		{ID: "b", Price: 50},
		{ID: "c", Price: 50},
	}

	SortBy(products, SortPriceAsc)

	assert.Equal(t, []string{"a", "b", "c"}, ids(products))
}
