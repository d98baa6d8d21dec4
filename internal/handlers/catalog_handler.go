package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// CatalogHandler serves the category and city lookup tables.
type CatalogHandler struct {
	catalogRepository repositories.CatalogRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogRepo repositories.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepository: catalogRepo}
}

// RegisterPublicCatalogRoutes registers the lookup reads.
func (h *CatalogHandler) RegisterPublicCatalogRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.GET("/cities", h.ListCities)
}

// RegisterAdminCatalogRoutes registers the lookup writes.
func (h *CatalogHandler) RegisterAdminCatalogRoutes(g *echo.Group) {
	g.POST("/categories", h.AddCategory)
	g.POST("/cities", h.AddCity)
}

// ListCategories returns every photography category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogRepository.GetCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return respond(c, http.StatusOK, categories)
}

// ListCities returns every serviced city.
func (h *CatalogHandler) ListCities(c echo.Context) error {
	cities, err := h.catalogRepository.GetCities(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if cities == nil {
		cities = []models.City{}
	}
	return respond(c, http.StatusOK, cities)
}

// AddCategory adds a category; slugs are unique.
func (h *CatalogHandler) AddCategory(c echo.Context) error {
	var req models.CreateLookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := h.catalogRepository.AddCategory(c.Request().Context(), category); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, category)
}

// AddCity adds a serviced city; slugs are unique.
func (h *CatalogHandler) AddCity(c echo.Context) error {
	var req models.CreateLookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	city := &models.City{Name: req.Name, Slug: req.Slug}
	if err := h.catalogRepository.AddCity(c.Request().Context(), city); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, city)
}
