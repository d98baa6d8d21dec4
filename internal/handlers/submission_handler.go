package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/approval"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// SubmissionHandler exposes the review workflow: the admin queue, generic
// submission creation, and the action endpoint.
type SubmissionHandler struct {
	submissionRepository repositories.SubmissionRepository
	approvalService      approval.Service
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionRepo repositories.SubmissionRepository, approvalService approval.Service) *SubmissionHandler {
	return &SubmissionHandler{
		submissionRepository: submissionRepo,
		approvalService:      approvalService,
	}
}

// RegisterSubmissionRoutes registers submission-related routes.
func (h *SubmissionHandler) RegisterSubmissionRoutes(g *echo.Group) {
	g.GET("", h.ListSubmissions)
	g.POST("", h.CreateSubmission)
	g.PUT("/:id", h.ActOnSubmission)
}

// ListSubmissions returns the admin review queue, most recent first. The
// status defaults to pending; type narrows the queue to one resource kind.
func (h *SubmissionHandler) ListSubmissions(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	if !auth.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
	}

	status := models.SubmissionStatus(c.QueryParam("status"))
	if status == "" {
		status = models.StatusPending
	}
	resource := models.ResourceType(c.QueryParam("type"))

	submissions, err := h.submissionRepository.ListByStatus(c.Request().Context(), resource, status, true)
	if err != nil {
		return httpError(err)
	}
	if submissions == nil {
		submissions = []models.Submission{}
	}
	return respond(c, http.StatusOK, submissions)
}

// CreateSubmission creates a minimal gallery or story record for the
// authenticated owner. The initial status follows from who creates it.
func (h *SubmissionHandler) CreateSubmission(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.CreateSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sub := &models.Submission{
		ResourceType: req.ResourceType,
		OwnerID:      auth.SubjectID,
		Title:        req.Title,
	}
	if err := h.submissionRepository.Create(c.Request().Context(), sub); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, sub)
}

// ActOnSubmission applies a workflow action to a submission. request_home is
// available to the owning account; the decision actions are admin-only.
func (h *SubmissionHandler) ActOnSubmission(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.SubmissionActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id := c.Param("id")
	ctx := c.Request().Context()

	if req.Action == models.ActionRequestPlacement {
		sub, err := h.approvalService.RequestHomepagePlacement(ctx, id, auth.SubjectID)
		if err != nil {
			return httpError(err)
		}
		return respond(c, http.StatusOK, sub)
	}

	if !auth.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
	}
	sub, err := h.approvalService.Decide(ctx, id, req.Action, auth.SubjectID)
	if err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, sub)
}
