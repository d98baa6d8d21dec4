package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// StudioHandler handles studio profile endpoints. Account creation lives on
// the auth signup route.
type StudioHandler struct {
	studioRepository repositories.StudioRepository
}

// NewStudioHandler creates a new StudioHandler.
func NewStudioHandler(studioRepo repositories.StudioRepository) *StudioHandler {
	return &StudioHandler{studioRepository: studioRepo}
}

// RegisterPublicStudioRoutes registers the routes that need no token.
func (h *StudioHandler) RegisterPublicStudioRoutes(g *echo.Group) {
	g.GET("", h.ListStudios)
	g.GET("/:id", h.GetStudio)
}

// RegisterStudioRoutes registers the authenticated routes.
func (h *StudioHandler) RegisterStudioRoutes(g *echo.Group) {
	g.PUT("/:id", h.UpdateStudio)
}

// ListStudios returns studios, optionally filtered by city.
func (h *StudioHandler) ListStudios(c echo.Context) error {
	skip, limit := pagination(c)
	studios, err := h.studioRepository.GetStudios(c.Request().Context(), c.QueryParam("city"), skip, limit)
	if err != nil {
		return httpError(err)
	}
	if studios == nil {
		studios = []models.Studio{}
	}
	return respond(c, http.StatusOK, studios)
}

// GetStudio returns a single studio profile.
func (h *StudioHandler) GetStudio(c echo.Context) error {
	studio, err := h.studioRepository.GetStudioByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, studio)
}

// UpdateStudio updates profile fields for the owning studio or the admin.
func (h *StudioHandler) UpdateStudio(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if !auth.IsAdmin() && auth.SubjectID != id {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot update another studio's profile")
	}

	var req models.UpdateStudioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	studio, err := h.studioRepository.GetStudioByID(ctx, id)
	if err != nil {
		return httpError(err)
	}

	if req.Name != "" {
		studio.Name = req.Name
	}
	if req.Mobile != "" {
		studio.Mobile = req.Mobile
	}
	if req.City != "" {
		studio.City = req.City
	}
	if req.Address != "" {
		studio.Address = req.Address
	}
	if req.Description != "" {
		studio.Description = req.Description
	}
	if req.LogoURL != "" {
		studio.LogoURL = req.LogoURL
	}

	if err := h.studioRepository.UpdateStudio(ctx, id, studio); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, studio)
}
