package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luxebeaute/storefront/internal/catalog"
)

// taxonomyResponse is the full classification tree the storefront's filter
// menus are built from.
type taxonomyResponse struct {
	Categories       []string            `json:"categories"`
	Subcategories    map[string][]string `json:"subcategories"`
	Megacategories   map[string][]string `json:"megacategories"`
	BrandsByCategory map[string][]string `json:"brandsByCategory"`
	AllBrands        []string            `json:"allBrands"`
}

// Taxonomy handles GET /taxonomy.
func Taxonomy(c echo.Context) error {
	return c.JSON(http.StatusOK, taxonomyResponse{
		Categories:       catalog.Categories,
		Subcategories:    catalog.Subcategories,
		Megacategories:   catalog.Megacategories,
		BrandsByCategory: catalog.BrandsByCategory,
		AllBrands:        catalog.AllBrands(),
	})
}
