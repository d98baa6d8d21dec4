package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/approval"
	"github.com/shotfolio/shotfolio-api/internal/authz"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// StoryHandler handles shoot-story CRUD and homepage placement requests.
type StoryHandler struct {
	storyRepository repositories.StoryRepository
	approvalService approval.Service
}

// NewStoryHandler creates a new StoryHandler.
func NewStoryHandler(storyRepo repositories.StoryRepository, approvalService approval.Service) *StoryHandler {
	return &StoryHandler{
		storyRepository: storyRepo,
		approvalService: approvalService,
	}
}

// RegisterPublicStoryRoutes registers the routes that need no token.
func (h *StoryHandler) RegisterPublicStoryRoutes(g *echo.Group) {
	g.GET("", h.ListApproved)
	g.GET("/:id", h.GetStory)
}

// RegisterStoryRoutes registers the authenticated routes.
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.POST("", h.CreateStory)
	g.GET("/mine", h.ListMine)
	g.PUT("/:id", h.UpdateStory)
	g.POST("/:id/request-home", h.RequestHomepagePlacement)
}

// CreateStory creates a story for the authenticated owner.
func (h *StoryHandler) CreateStory(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story := &models.Story{
		Submission: models.Submission{
			OwnerID: auth.SubjectID,
			Title:   req.Title,
		},
		Description: req.Description,
		CoverImage:  req.CoverImage,
		Images:      req.ImageURLs,
		Location:    req.Location,
	}
	if req.ShootDate != "" {
		shootDate, err := time.Parse("2006-01-02", req.ShootDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid shoot_date format")
		}
		story.ShootDate = shootDate
	}

	if err := h.storyRepository.CreateStory(c.Request().Context(), story); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, story)
}

// ListApproved returns publicly visible stories.
func (h *StoryHandler) ListApproved(c echo.Context) error {
	skip, limit := pagination(c)
	stories, err := h.storyRepository.GetApprovedStories(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(err)
	}
	if stories == nil {
		stories = []models.Story{}
	}
	return respond(c, http.StatusOK, stories)
}

// ListMine returns the authenticated owner's stories in every status.
func (h *StoryHandler) ListMine(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	skip, limit := pagination(c)
	stories, err := h.storyRepository.GetStoriesByOwner(c.Request().Context(), auth.SubjectID, skip, limit)
	if err != nil {
		return httpError(err)
	}
	if stories == nil {
		stories = []models.Story{}
	}
	return respond(c, http.StatusOK, stories)
}

// GetStory returns a single story. Stories that are not approved are only
// visible to their owner and the admin.
func (h *StoryHandler) GetStory(c echo.Context) error {
	story, err := h.storyRepository.GetStoryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if story.Status != models.StatusApproved {
		auth, ok := authz.FromContext(c)
		if !ok || (!auth.IsAdmin() && auth.SubjectID != story.OwnerID) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
	}
	return respond(c, http.StatusOK, story)
}

// UpdateStory updates story content fields; review state is untouched.
func (h *StoryHandler) UpdateStory(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	story, err := h.storyRepository.GetStoryByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if !auth.IsAdmin() && story.OwnerID != auth.SubjectID {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found")
	}

	if req.Title != "" {
		story.Title = req.Title
	}
	if req.Description != "" {
		story.Description = req.Description
	}
	if req.CoverImage != "" {
		story.CoverImage = req.CoverImage
	}
	if req.ImageURLs != nil {
		story.Images = req.ImageURLs
	}
	if req.Location != "" {
		story.Location = req.Location
	}

	if err := h.storyRepository.UpdateStory(ctx, story.ID.Hex(), story); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, story)
}

// RequestHomepagePlacement asks the admin to feature an approved story.
func (h *StoryHandler) RequestHomepagePlacement(c echo.Context) error {
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
