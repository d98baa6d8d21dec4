package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// PackageHandler handles bookable package CRUD.
type PackageHandler struct {
	packageRepository repositories.PackageRepository
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(packageRepo repositories.PackageRepository) *PackageHandler {
	return &PackageHandler{packageRepository: packageRepo}
}

// RegisterPublicPackageRoutes registers the routes that need no token.
func (h *PackageHandler) RegisterPublicPackageRoutes(g *echo.Group) {
	g.GET("", h.ListActive)
	g.GET("/:id", h.GetPackage)
}

// RegisterPackageRoutes registers the authenticated routes.
func (h *PackageHandler) RegisterPackageRoutes(g *echo.Group) {
	g.POST("", h.CreatePackage)
	g.GET("/mine", h.ListMine)
	g.PUT("/:id", h.UpdatePackage)
	g.DELETE("/:id", h.DeletePackage)
}

// CreatePackage creates a package for the authenticated owner. New packages
// start active.
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pkg := &models.Package{
		OwnerID:      auth.SubjectID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     req.Currency,
		Deliverables: req.Deliverables,
		DurationHrs:  req.DurationHrs,
		Active:       true,
	}
	if err := h.packageRepository.CreatePackage(c.Request().Context(), pkg); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, pkg)
}

// ListActive returns active packages.
func (h *PackageHandler) ListActive(c echo.Context) error {
	skip, limit := pagination(c)
	packages, err := h.packageRepository.GetActivePackages(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(err)
	}
	if packages == nil {
		packages = []models.Package{}
	}
	return respond(c, http.StatusOK, packages)
}

// ListMine returns the authenticated owner's packages.
func (h *PackageHandler) ListMine(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	packages, err := h.packageRepository.GetPackagesByOwner(c.Request().Context(), auth.SubjectID)
	if err != nil {
		return httpError(err)
	}
	if packages == nil {
		packages = []models.Package{}
	}
	return respond(c, http.StatusOK, packages)
}

// GetPackage returns a single package.
func (h *PackageHandler) GetPackage(c echo.Context) error {
	pkg, err := h.packageRepository.GetPackageByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, pkg)
}

// UpdatePackage updates a package owned by the caller.
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.UpdatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	pkg, err := h.packageRepository.GetPackageByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !auth.IsAdmin() && pkg.OwnerID != auth.SubjectID {
		return echo.NewHTTPError(http.StatusNotFound, "Package not found")
	}

	if req.Title != "" {
		pkg.Title = req.Title
	}
	if req.Description != "" {
		pkg.Description = req.Description
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Currency != "" {
		pkg.Currency = req.Currency
	}
	if req.Deliverables != nil {
		pkg.Deliverables = req.Deliverables
	}
	if req.DurationHrs != 0 {
		pkg.DurationHrs = req.DurationHrs
	}
	if req.Active != nil {
		pkg.Active = *req.Active
	}

	if err := h.packageRepository.UpdatePackage(ctx, pkg.ID.Hex(), pkg); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, pkg)
}

// DeletePackage removes a package owned by the caller.
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	pkg, err := h.packageRepository.GetPackageByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !auth.IsAdmin() && pkg.OwnerID != auth.SubjectID {
		return echo.NewHTTPError(http.StatusNotFound, "Package not found")
	}

	if err := h.packageRepository.DeletePackage(ctx, pkg.ID.Hex()); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, echo.Map{"deleted": true})
}
