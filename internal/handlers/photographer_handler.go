package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/approval"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// PhotographerHandler handles photographer registration and profiles.
type PhotographerHandler struct {
	photographerRepository repositories.PhotographerRepository
	approvalService        approval.Service
}

// NewPhotographerHandler creates a new PhotographerHandler.
func NewPhotographerHandler(photographerRepo repositories.PhotographerRepository, approvalService approval.Service) *PhotographerHandler {
	return &PhotographerHandler{
		photographerRepository: photographerRepo,
		approvalService:        approvalService,
	}
}

// RegisterPublicPhotographerRoutes registers the routes that need no token.
func (h *PhotographerHandler) RegisterPublicPhotographerRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.GET("", h.ListApproved)
	g.GET("/:id", h.GetPhotographer)
}

// RegisterPhotographerRoutes registers the authenticated routes.
func (h *PhotographerHandler) RegisterPhotographerRoutes(g *echo.Group) {
	g.PUT("/:id", h.UpdatePhotographer)
}

// Register creates a pending photographer registration and notifies the
// admin that a review is waiting.
func (h *PhotographerHandler) Register(c echo.Context) error {
	var req models.RegisterPhotographerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	photographer := &models.Photographer{
		Submission: models.Submission{
			ResourceType: models.ResourcePhotographer,
			Title:        req.Name,
		},
		Email:       req.Email,
		Mobile:      req.Mobile,
		Password:    string(hashedPassword),
		City:        req.City,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		Specialties: req.Specialties,
	}
	if err := h.approvalService.RegisterPhotographer(c.Request().Context(), photographer); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, photographer)
}

// ListApproved returns approved photographers, optionally filtered by city
// and specialty.
func (h *PhotographerHandler) ListApproved(c echo.Context) error {
	skip, limit := pagination(c)
	photographers, err := h.photographerRepository.GetApprovedPhotographers(
		c.Request().Context(), c.QueryParam("city"), c.QueryParam("specialty"), skip, limit)
	if err != nil {
		return httpError(err)
	}
	if photographers == nil {
		photographers = []models.Photographer{}
	}
	return respond(c, http.StatusOK, photographers)
}

// GetPhotographer returns a single photographer profile. Profiles that are
// not approved stay hidden from the public.
func (h *PhotographerHandler) GetPhotographer(c echo.Context) error {
	photographer, err := h.photographerRepository.GetPhotographerByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if photographer.Status != models.StatusApproved {
		return echo.NewHTTPError(http.StatusNotFound, "Photographer not found")
	}
	return respond(c, http.StatusOK, photographer)
}

// UpdatePhotographer updates profile fields. Review state is untouched;
// only the owner or the admin may update a profile.
func (h *PhotographerHandler) UpdatePhotographer(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if !auth.IsAdmin() && auth.SubjectID != id {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot update another photographer's profile")
	}

	var req models.UpdatePhotographerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	photographer, err := h.photographerRepository.GetPhotographerByID(ctx, id)
	if err != nil {
		return httpError(err)
	}

	if req.Name != "" {
		photographer.Title = req.Name
	}
	if req.Mobile != "" {
		photographer.Mobile = req.Mobile
	}
	if req.City != "" {
		photographer.City = req.City
	}
	if req.Bio != "" {
		photographer.Bio = req.Bio
	}
	if req.AvatarURL != "" {
		photographer.AvatarURL = req.AvatarURL
	}
	if req.Specialties != nil {
		photographer.Specialties = req.Specialties
	}

	if err := h.photographerRepository.UpdatePhotographer(ctx, id, photographer); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, photographer)
}
