package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/authz"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/notification"
)

// NotificationHandler exposes the inbox endpoints.
type NotificationHandler struct {
	notificationService notification.Service
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification-related routes.
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("", h.ListNotifications)
	g.GET("/unread-count", h.UnreadCount)
	g.POST("", h.CreateNotification)
	g.PUT("", h.UpdateNotifications)
}

// inboxTarget resolves which inbox the request addresses. The admin may read
// any inbox and defaults to the shared admin one; everyone else is pinned to
// their own.
func inboxTarget(c echo.Context, auth authz.AuthContext) (string, error) {
	requested := c.QueryParam("userId")
	if auth.IsAdmin() {
		if requested == "" {
			return models.TargetAdmin, nil
		}
		return requested, nil
	}
	if requested != "" && requested != auth.SubjectID {
		return "", echo.NewHTTPError(http.StatusForbidden, "Cannot access another user's notifications")
	}
	return auth.SubjectID, nil
}

// ListNotifications returns a user's notifications, most recent first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	target, err := inboxTarget(c, auth)
	if err != nil {
		return err
	}

	unreadOnly := c.QueryParam("unreadOnly") == "true"
	notifications, err := h.notificationService.List(c.Request().Context(), target, unreadOnly)
	if err != nil {
		return httpError(err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return respond(c, http.StatusOK, notifications)
}

// UnreadCount returns the unread badge count for an inbox, optionally
// narrowed to one notification type.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	target, err := inboxTarget(c, auth)
	if err != nil {
		return err
	}

	filterType := models.NotificationType(c.QueryParam("type"))
	count, err := h.notificationService.CountPending(c.Request().Context(), target, filterType)
	if err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, echo.Map{"count": count})
}

// CreateNotification inserts a notification directly. Admin only; workflow
// notifications normally arrive through the approval service instead.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}
	if !auth.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
	}

	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.notificationService.Notify(c.Request().Context(), notification.Event{
		Target:         req.Target,
		Type:           req.Type,
		Title:          req.Title,
		Message:        req.Message,
		ActionRequired: req.ActionRequired,
		SubmissionID:   req.SubmissionID,
		ResourceType:   req.ResourceType,
	})
	if err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusCreated, created)
}

// UpdateNotifications marks a single notification read ({id, read}) or an
// entire inbox read ({markAllRead, userId}).
func (h *NotificationHandler) UpdateNotifications(c echo.Context) error {
	auth, err := currentAuth(c)
	if err != nil {
		return err
	}

	var req models.UpdateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()

	if req.MarkAllRead {
		target := req.UserID
		if target == "" {
			target = auth.SubjectID
		}
		if !auth.IsAdmin() && target != auth.SubjectID {
			return echo.NewHTTPError(http.StatusForbidden, "Cannot access another user's notifications")
		}
		if err := h.notificationService.MarkAllRead(ctx, target); err != nil {
			return httpError(err)
		}
		return respond(c, http.StatusOK, echo.Map{"markedAllRead": true})
	}

	if req.ID == "" || req.Read == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Either markAllRead or id with read must be provided")
	}
	if !*req.Read {
		return echo.NewHTTPError(http.StatusBadRequest, "Notifications cannot be marked unread")
	}
	if err := h.notificationService.MarkRead(ctx, req.ID); err != nil {
		return httpError(err)
	}
	return respond(c, http.StatusOK, echo.Map{"read": true})
}
