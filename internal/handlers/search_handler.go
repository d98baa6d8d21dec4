package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// SearchHandler runs a simple keyword search across approved galleries and
// photographers.
type SearchHandler struct {
	galleryRepository      repositories.GalleryRepository
	photographerRepository repositories.PhotographerRepository
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(galleryRepo repositories.GalleryRepository, photographerRepo repositories.PhotographerRepository) *SearchHandler {
	return &SearchHandler{
		galleryRepository:      galleryRepo,
		photographerRepository: photographerRepo,
	}
}

// RegisterSearchRoutes registers the search endpoint.
func (h *SearchHandler) RegisterSearchRoutes(g *echo.Group) {
	g.GET("", h.Search)
}

// Search matches approved galleries and photographers against a query
// string. Matching is substring-based, no ranking.
func (h *SearchHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter q is required")
	}

	const perKind = 20
	ctx := c.Request().Context()

	galleries, err := h.galleryRepository.SearchGalleries(ctx, query, perKind)
	if err != nil {
		return httpError(err)
	}
	photographers, err := h.photographerRepository.SearchPhotographers(ctx, query, perKind)
	if err != nil {
		return httpError(err)
	}

	if galleries == nil {
		galleries = []models.Gallery{}
	}
	if photographers == nil {
		photographers = []models.Photographer{}
	}
	return respond(c, http.StatusOK, echo.Map{
		"galleries":     galleries,
		"photographers": photographers,
	})
}
