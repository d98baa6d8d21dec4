package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/approval"
	"github.com/shotfolio/shotfolio-api/internal/authz"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// GalleryHandler handles gallery CRUD and homepage placement requests.
type GalleryHandler struct {
	galleryRepository repositories.GalleryRepository
	approvalService   approval.Service
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleryRepo repositories.GalleryRepository, approvalService approval.Service) *GalleryHandler {
	return &GalleryHandler{
		galleryRepository: galleryRepo,
		approvalService:   approvalService,
	}
}

// RegisterPublicGalleryRoutes registers the routes that need no token.
func (h *GalleryHandler) RegisterPublicGalleryRoutes(g *echo.Group) {
	g.GET("", h.ListApproved)
	g.GET("/:id", h.GetGallery)
}

// RegisterGalleryRoutes registers the authenticated routes.
func (h *GalleryHandler) RegisterGalleryRoutes(g *echo.Group) {
	g.POST("", h.CreateGallery)
	g.GET("/mine", h.ListMine)
	g.PUT("/:id", h.UpdateGallery)
	g.POST("/:id/request-home", h.RequestHomepagePlacement)
}

// CreateGallery creates a gallery for the authenticated owner.
func (h *GalleryHandler) CreateGallery(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.CreateGalleryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	gallery := &models.Gallery{
		Submission: models.Submission{
			OwnerID: auth.SubjectID,
			Title:   req.Title,
		},
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		CoverImage:  req.CoverImage,
		Tags:        req.Tags,
		Images:      imagesFromURLs(req.ImageURLs),
	}
	if err := h.galleryRepository.CreateGallery(c.Request().Context(), gallery); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, gallery)
}

// ListApproved returns publicly visible galleries, optionally filtered by
// category and city.
func (h *GalleryHandler) ListApproved(c echo.Context) error {
	skip, limit := pagination(c)
	galleries, err := h.galleryRepository.GetApprovedGalleries(
		c.Request().Context(), c.QueryParam("category"), c.QueryParam("city"), skip, limit)
	if err != nil {
		return httpError(err)
	}
	if galleries == nil {
		galleries = []models.Gallery{}
	}
	return respond(c, http.StatusOK, galleries)
}

// ListMine returns the authenticated owner's galleries in every status.
func (h *GalleryHandler) ListMine(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	skip, limit := pagination(c)
	galleries, err := h.galleryRepository.GetGalleriesByOwner(c.Request().Context(), auth.SubjectID, skip, limit)
	if err != nil {
		return httpError(err)
	}
	if galleries == nil {
		galleries = []models.Gallery{}
	}
	return respond(c, http.StatusOK, galleries)
}

// GetGallery returns a single gallery. Galleries that are not approved are
// only visible to their owner and the admin.
func (h *GalleryHandler) GetGallery(c echo.Context) error {
	gallery, err := h.galleryRepository.GetGalleryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if gallery.Status != models.StatusApproved {
		auth, ok := authz.FromContext(c)
		if !ok || (!auth.IsAdmin() && auth.SubjectID != gallery.OwnerID) {
			return echo.NewHTTPError(http.StatusNotFound, "Gallery not found")
		}
	}
	return respond(c, http.StatusOK, gallery)
}

// UpdateGallery updates gallery content fields; review state is untouched.
func (h *GalleryHandler) UpdateGallery(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.UpdateGalleryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	gallery, err := h.galleryRepository.GetGalleryByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !auth.IsAdmin() && gallery.OwnerID != auth.SubjectID {
		return echo.NewHTTPError(http.StatusNotFound, "Gallery not found")
	}

	if req.Title != "" {
		gallery.Title = req.Title
	}
	if req.Description != "" {
		gallery.Description = req.Description
	}
	if req.Category != "" {
		gallery.Category = req.Category
	}
	if req.City != "" {
		gallery.City = req.City
	}
	if req.CoverImage != "" {
		gallery.CoverImage = req.CoverImage
	}
	if req.Tags != nil {
		gallery.Tags = req.Tags
	}
	if req.ImageURLs != nil {
		gallery.Images = imagesFromURLs(req.ImageURLs)
	}

	if err := h.galleryRepository.UpdateGallery(ctx, gallery.ID.Hex(), gallery); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, gallery)
}

// RequestHomepagePlacement asks the admin to feature an approved gallery.
func (h *GalleryHandler) RequestHomepagePlacement(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	sub, err := h.approvalService.RequestHomepagePlacement(c.Request().Context(), c.Param("id"), auth.SubjectID)
	if err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, sub)
}

func imagesFromURLs(urls []string) []models.GalleryImage {
	if len(urls) == 0 {
		return nil
	}
	now := time.Now()
	images := make([]models.GalleryImage, 0, len(urls))
	for _, u := range urls {
		images = append(images, models.GalleryImage{
			ID:        uuid.NewString(),
			URL:       u,
			CreatedAt: now,
		})
	}
	return images
}
