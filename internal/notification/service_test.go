package notification

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryRepo struct {
	notifications []*models.Notification
	createErr     error
}

func (m *memoryRepo) Create(_ context.Context, n *models.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	n.ID = primitive.NewObjectID()
	n.Read = false
	n.CreatedAt = time.Now()
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *memoryRepo) List(_ context.Context, target string, unreadOnly bool) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range m.notifications {
		if n.Target != target {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryRepo) CountPending(_ context.Context, target string, filterType models.NotificationType) (int64, error) {
	var count int64
	for _, n := range m.notifications {
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

func (m *memoryRepo) MarkRead(_ context.Context, id string) error {
	for _, n := range m.notifications {
		if n.ID.Hex() == id {
			n.Read = true
			return nil
		}
	}
	return apperr.NewNotFound("notification %s not found", id)
}

func (m *memoryRepo) MarkAllRead(_ context.Context, target string) error {
	for _, n := range m.notifications {
		if n.Target == target {
			n.Read = true
		}
	}
	return nil
}

func (m *memoryRepo) ResolveForSubmission(_ context.Context, submissionID string) error {
	for _, n := range m.notifications {
		if n.SubmissionID == submissionID && n.ActionRequired && !n.Read {
			n.Read = true
		}
	}
	return nil
}

type recordingNotifier struct {
	delivered []models.Notification
	err       error
}

func (r *recordingNotifier) Deliver(_ context.Context, n models.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.delivered = append(r.delivered, n)
	return nil
}

func (r *recordingNotifier) Channel() string { return "recording" }

func adminEvent(submissionID string) Event {
	return Event{
		Target:         models.TargetAdmin,
		Type:           models.NotifGalleryHomepageRequest,
		Title:          "Gallery homepage request",
		Message:        "Homepage placement was requested.",
		ActionRequired: true,
		SubmissionID:   submissionID,
		ResourceType:   models.ResourceGallery,
	}
}

func TestNotifyPersistsAndDelivers(t *testing.T) {
	repo := &memoryRepo{}
	channel := &recordingNotifier{}
	svc := NewService(repo, zerolog.Nop(), channel)

	created, err := svc.Notify(context.Background(), adminEvent("sub-1"))
	require.NoError(t, err)
	assert.False(t, created.Read)
	assert.True(t, created.ActionRequired)

	require.Len(t, repo.notifications, 1)
	require.Len(t, channel.delivered, 1)
	assert.Equal(t, created.ID, channel.delivered[0].ID)
}

func TestNotifyToleratesChannelFailure(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, zerolog.Nop(), &recordingNotifier{err: errors.New("smtp down")})

	created, err := svc.Notify(context.Background(), adminEvent("sub-2"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Len(t, repo.notifications, 1)
}

func TestNotifyPropagatesStoreFailure(t *testing.T) {
	repo := &memoryRepo{createErr: errors.New("insert failed")}
	channel := &recordingNotifier{}
	svc := NewService(repo, zerolog.Nop(), channel)

	_, err := svc.Notify(context.Background(), adminEvent("sub-3"))
	require.Error(t, err)
	assert.Empty(t, channel.delivered)
}

func TestCountPendingTracksResolution(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Notify(ctx, adminEvent("sub-a"))
	require.NoError(t, err)
	_, err = svc.Notify(ctx, adminEvent("sub-b"))
	require.NoError(t, err)

	count, err := svc.CountPending(ctx, models.TargetAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Resolving one submission drops the badge by exactly one.
	require.NoError(t, svc.ResolveForSubmission(ctx, "sub-a"))
	count, err = svc.CountPending(ctx, models.TargetAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Resolving the same submission again changes nothing.
	require.NoError(t, svc.ResolveForSubmission(ctx, "sub-a"))
	count, err = svc.CountPending(ctx, models.TargetAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMarkAllReadClearsInbox(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, zerolog.Nop())
	ctx := context.Background()

	for _, sub := range []string{"s1", "s2", "s3"} {
		_, err := svc.Notify(ctx, adminEvent(sub))
		require.NoError(t, err)
	}

	require.NoError(t, svc.MarkAllRead(ctx, models.TargetAdmin))
	count, err := svc.CountPending(ctx, models.TargetAdmin, "")
	require.NoError(t, err)
	assert.Zero(t, count)

	unread, err := svc.List(ctx, models.TargetAdmin, true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := svc.List(ctx, models.TargetAdmin, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListIsScopedToTarget(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Notify(ctx, adminEvent("sub-x"))
	require.NoError(t, err)
	ownerEvt := adminEvent("sub-x")
	ownerEvt.Target = "owner-1"
	ownerEvt.ActionRequired = false
	_, err = svc.Notify(ctx, ownerEvt)
	require.NoError(t, err)

	adminInbox, err := svc.List(ctx, models.TargetAdmin, false)
	require.NoError(t, err)
	require.Len(t, adminInbox, 1)
	assert.Equal(t, models.TargetAdmin, adminInbox[0].Target)

	ownerInbox, err := svc.List(ctx, "owner-1", false)
	require.NoError(t, err)
	require.Len(t, ownerInbox, 1)
	assert.False(t, ownerInbox[0].ActionRequired)
}

func TestSMTPNotifierUnconfigured(t *testing.T) {
	assert.Nil(t, NewSMTPNotifier(SMTPConfig{}))
	assert.Nil(t, NewSMTPNotifier(SMTPConfig{Host: "smtp.example.com"}))
}
