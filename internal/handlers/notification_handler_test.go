package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubNotificationService struct {
	notifications []*models.Notification
}

func (s *stubNotificationService) Notify(_ context.Context, evt notification.Event) (*models.Notification, error) {
	n := &models.Notification{
		ID:             primitive.NewObjectID(),
		Target:         evt.Target,
		Type:           evt.Type,
		Title:          evt.Title,
		Message:        evt.Message,
		ActionRequired: evt.ActionRequired,
		SubmissionID:   evt.SubmissionID,
		ResourceType:   evt.ResourceType,
	}
	s.notifications = append(s.notifications, n)
	return n, nil
}

func (s *stubNotificationService) List(_ context.Context, target string, unreadOnly bool) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range s.notifications {
		if n.Target != target || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, *n)
	}
	return out, nil
}

func (s *stubNotificationService) CountPending(_ context.Context, target string, filterType models.NotificationType) (int64, error) {
	var count int64
	for _, n := range s.notifications {
		if n.Target != target || n.Read || !n.ActionRequired {
			continue
		}
		if filterType != "" && n.Type != filterType {
			continue
		}
		count++
	}
	return count, nil
}

func (s *stubNotificationService) MarkRead(_ context.Context, id string) error {
	for _, n := range s.notifications {
		if n.ID.Hex() == id {
			n.Read = true
			return nil
		}
	}
	return apperr.NewNotFound("notification %s not found", id)
}

func (s *stubNotificationService) MarkAllRead(_ context.Context, target string) error {
	for _, n := range s.notifications {
		if n.Target == target {
			n.Read = true
		}
	}
	return nil
}

func (s *stubNotificationService) ResolveForSubmission(_ context.Context, submissionID string) error {
	for _, n := range s.notifications {
		if n.SubmissionID == submissionID && n.ActionRequired {
			n.Read = true
		}
	}
	return nil
}

func adminNotification(submissionID string) *models.Notification {
	return &models.Notification{
		ID:             primitive.NewObjectID(),
		Target:         models.TargetAdmin,
		Type:           models.NotifGalleryHomepageRequest,
		Title:          "Gallery homepage request",
		ActionRequired: true,
		SubmissionID:   submissionID,
	}
}

func TestListNotificationsDefaultsToOwnInbox(t *testing.T) {
	svc := &stubNotificationService{notifications: []*models.Notification{
		adminNotification("s1"),
		{ID: primitive.NewObjectID(), Target: "owner-1", Type: models.NotifGalleryApproved, Title: "Gallery approved"},
	}}
	h := NewNotificationHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/notifications", "")
	asPhotographer(c, "owner-1")
	require.NoError(t, h.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var list []models.Notification
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "owner-1", list[0].Target)
}

func TestListNotificationsForbidsForeignInbox(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/notifications?userId=other", "")
	asPhotographer(c, "owner-1")
	err := h.ListNotifications(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestListNotificationsAdminDefaultsToAdminInbox(t *testing.T) {
	svc := &stubNotificationService{notifications: []*models.Notification{adminNotification("s1")}}
	h := NewNotificationHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/notifications", "")
	asAdmin(c)
	require.NoError(t, h.ListNotifications(c))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var list []models.Notification
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, models.TargetAdmin, list[0].Target)
}

func TestUnreadCount(t *testing.T) {
	svc := &stubNotificationService{notifications: []*models.Notification{
		adminNotification("s1"),
		adminNotification("s2"),
	}}
	h := NewNotificationHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/notifications/unread-count", "")
	asAdmin(c)
	require.NoError(t, h.UnreadCount(c))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var payload map[string]int64
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, int64(2), payload["count"])
}

func TestCreateNotificationAdminOnly(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{})

	body := `{"userId":"owner-1","type":"gallery_approved","title":"Hand-written note"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/notifications", body)
	asPhotographer(c, "owner-1")
	err := h.CreateNotification(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestCreateNotification(t *testing.T) {
	svc := &stubNotificationService{}
	h := NewNotificationHandler(svc)

	body := `{"userId":"owner-1","type":"gallery_approved","title":"Manual note","message":"Congrats"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/notifications", body)
	asAdmin(c)
	require.NoError(t, h.CreateNotification(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.notifications, 1)
	assert.Equal(t, "owner-1", svc.notifications[0].Target)
}

func TestUpdateNotificationsMarkSingleRead(t *testing.T) {
	n := adminNotification("s1")
	svc := &stubNotificationService{notifications: []*models.Notification{n}}
	h := NewNotificationHandler(svc)

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/notifications", `{"id":"`+n.ID.Hex()+`","read":true}`)
	asAdmin(c)
	require.NoError(t, h.UpdateNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, n.Read)
}

func TestUpdateNotificationsUnknownID(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/notifications", `{"id":"`+primitive.NewObjectID().Hex()+`","read":true}`)
	asAdmin(c)
	err := h.UpdateNotifications(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUpdateNotificationsMarkAllRead(t *testing.T) {
	first := adminNotification("s1")
	second := adminNotification("s2")
	svc := &stubNotificationService{notifications: []*models.Notification{first, second}}
	h := NewNotificationHandler(svc)

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/notifications", `{"markAllRead":true,"userId":"admin"}`)
	asAdmin(c)
	require.NoError(t, h.UpdateNotifications(c))
	assert.True(t, first.Read)
	assert.True(t, second.Read)
}

func TestUpdateNotificationsMarkAllReadForeignInbox(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/notifications", `{"markAllRead":true,"userId":"other"}`)
	asPhotographer(c, "owner-1")
	err := h.UpdateNotifications(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestUpdateNotificationsRejectsEmptyBody(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/notifications", `{}`)
	asAdmin(c)
	err := h.UpdateNotifications(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
