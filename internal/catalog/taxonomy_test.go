package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomyConsistency(t *testing.T) {
	t.Run("every category has subcategories and brands", func(t *testing.T) {
		for _, category := range Categories {
			assert.NotEmpty(t, Subcategories[category], "category %q has no subcategories", category)
			assert.NotEmpty(t, BrandsByCategory[category], "category %q has no brands", category)
		}
	})

	t.Run("no orphan subcategory lists", func(t *testing.T) {
		known := make(map[string]bool, len(Categories))
		for _, c := range Categories {
			known[c] = true
		}
		for category := range Subcategories {
			assert.True(t, known[category], "subcategory list for unknown category %q", category)
		}
	})

	t.Run("every subcategory has a megacategory entry", func(t *testing.T) {
		for category, subs := range Subcategories {
			for _, sub := range subs {
				_, ok := Megacategories[sub]
				assert.True(t, ok, "subcategory %q (%s) missing from megacategories", sub, category)
			}
		}
	})
}

func TestAllBrands(t *testing.T) {
	brands := AllBrands()

	assert.NotEmpty(t, brands)
	assert.True(t, sort.StringsAreSorted(brands))

	// Brands appearing under several categories are listed once.
	seen := make(map[string]int)
	for _, b := range brands {
		seen[b]++
	}
	assert.Equal(t, 1, seen["GARNIER"])
	assert.Equal(t, 1, seen["L'ORÉAL"])
}
