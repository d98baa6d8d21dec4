package approval

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSubmissions struct {
	subs map[string]*models.Submission
}

func newFakeSubmissions(subs ...*models.Submission) *fakeSubmissions {
	f := &fakeSubmissions{subs: map[string]*models.Submission{}}
	for _, s := range subs {
		f.subs[s.ID.Hex()] = s
	}
	return f
}

func (f *fakeSubmissions) Create(_ context.Context, sub *models.Submission) error {
	sub.ID = primitive.NewObjectID()
	if sub.Status == "" {
		sub.Status = models.InitialStatus(sub.OwnerID)
	}
	f.subs[sub.ID.Hex()] = sub
	return nil
}

func (f *fakeSubmissions) GetByID(_ context.Context, id string) (*models.Submission, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, apperr.NewNotFound("submission %s not found", id)
	}
	copied := *sub
	return &copied, nil
}

func (f *fakeSubmissions) ListByStatus(_ context.Context, resource models.ResourceType, status models.SubmissionStatus, _ bool) ([]models.Submission, error) {
	var out []models.Submission
	for _, sub := range f.subs {
		if sub.Status != status {
			continue
		}
		if resource != "" && sub.ResourceType != resource {
			continue
		}
		out = append(out, *sub)
	}
	return out, nil
}

func (f *fakeSubmissions) Transition(_ context.Context, id string, action models.SubmissionAction, actorID string) (*models.Submission, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, apperr.NewNotFound("submission %s not found", id)
	}
	next, err := models.NextStatus(sub.Status, action)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sub.Status = next
	sub.UpdatedAt = now
	sub.DecidedAt = &now
	sub.DecidedBy = actorID
	copied := *sub
	return &copied, nil
}

type fakePhotographers struct {
	registered []*models.Photographer
	conflict   bool
}

func (f *fakePhotographers) Register(_ context.Context, p *models.Photographer) error {
	if f.conflict {
		return apperr.NewConflict("email or mobile already registered")
	}
	p.ID = primitive.NewObjectID()
	p.Status = models.StatusPending
	f.registered = append(f.registered, p)
	return nil
}

func (f *fakePhotographers) GetPhotographerByID(_ context.Context, id string) (*models.Photographer, error) {
	return nil, apperr.NewNotFound("photographer %s not found", id)
}

func (f *fakePhotographers) GetPhotographerByEmail(_ context.Context, email string) (*models.Photographer, error) {
	return nil, apperr.NewNotFound("photographer %s not found", email)
}

func (f *fakePhotographers) GetApprovedPhotographers(_ context.Context, _, _ string, _, _ int64) ([]models.Photographer, error) {
	return nil, nil
}

func (f *fakePhotographers) SearchPhotographers(_ context.Context, _ string, _ int64) ([]models.Photographer, error) {
	return nil, nil
}

func (f *fakePhotographers) UpdatePhotographer(_ context.Context, _ string, _ *models.Photographer) error {
	return nil
}

type fakeNotifications struct {
	events     []notification.Event
	resolved   []string
	notifyErr  error
	resolveErr error
}

func (f *fakeNotifications) Notify(_ context.Context, evt notification.Event) (*models.Notification, error) {
	if f.notifyErr != nil {
		return nil, f.notifyErr
	}
	f.events = append(f.events, evt)
	return &models.Notification{Target: evt.Target, Type: evt.Type}, nil
}

func (f *fakeNotifications) List(_ context.Context, _ string, _ bool) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifications) CountPending(_ context.Context, _ string, _ models.NotificationType) (int64, error) {
	return 0, nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, _ string) error { return nil }

func (f *fakeNotifications) MarkAllRead(_ context.Context, _ string) error { return nil }

func (f *fakeNotifications) ResolveForSubmission(_ context.Context, submissionID string) error {
	if f.resolveErr != nil {
		return f.resolveErr
	}
	f.resolved = append(f.resolved, submissionID)
	return nil
}

func pendingGallery(owner string) *models.Submission {
	return &models.Submission{
		ID:           primitive.NewObjectID(),
		ResourceType: models.ResourceGallery,
		OwnerID:      owner,
		Title:        "Winter weddings",
		Status:       models.StatusPending,
	}
}

func TestDecideApproveNotifiesOwnerAndResolvesAdminInbox(t *testing.T) {
	sub := pendingGallery("owner-1")
	subs := newFakeSubmissions(sub)
	notifs := &fakeNotifications{}
	svc := NewService(subs, &fakePhotographers{}, notifs, zerolog.Nop())

	decided, err := svc.Decide(context.Background(), sub.ID.Hex(), models.ActionApprove, models.TargetAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, decided.Status)
	assert.Equal(t, models.TargetAdmin, decided.DecidedBy)
	require.NotNil(t, decided.DecidedAt)

	require.Equal(t, []string{sub.ID.Hex()}, notifs.resolved)
	require.Len(t, notifs.events, 1)
	evt := notifs.events[0]
	assert.Equal(t, "owner-1", evt.Target)
	assert.Equal(t, models.NotifGalleryApproved, evt.Type)
	assert.False(t, evt.ActionRequired)
	assert.Equal(t, sub.ID.Hex(), evt.SubmissionID)
	assert.Contains(t, evt.Message, "Winter weddings")
}

func TestDecideRejectUsesRejectionTemplate(t *testing.T) {
	sub := pendingGallery("owner-2")
	subs := newFakeSubmissions(sub)
	notifs := &fakeNotifications{}
	svc := NewService(subs, &fakePhotographers{}, notifs, zerolog.Nop())

	decided, err := svc.Decide(context.Background(), sub.ID.Hex(), models.ActionReject, models.TargetAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, decided.Status)
	require.Len(t, notifs.events, 1)
	assert.Equal(t, models.NotifGalleryRejected, notifs.events[0].Type)
}

func TestDecideInvalidTransitionLeavesInboxUntouched(t *testing.T) {
	sub := pendingGallery("owner-3")
	sub.Status = models.StatusApproved
	subs := newFakeSubmissions(sub)
	notifs := &fakeNotifications{}
	svc := NewService(subs, &fakePhotographers{}, notifs, zerolog.Nop())

	_, err := svc.Decide(context.Background(), sub.ID.Hex(), models.ActionApprove, models.TargetAdmin)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInvalidAction))
	assert.Empty(t, notifs.resolved)
	assert.Empty(t, notifs.events)
}

func TestDecideUnknownSubmission(t *testing.T) {
	subs := newFakeSubmissions()
	svc := NewService(subs, &fakePhotographers{}, &fakeNotifications{}, zerolog.Nop())

	_, err := svc.Decide(context.Background(), primitive.NewObjectID().Hex(), models.ActionApprove, models.TargetAdmin)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDecideSurvivesNotificationFailure(t *testing.T) {
	sub := pendingGallery("owner-4")
	subs := newFakeSubmissions(sub)
	notifs := &fakeNotifications{notifyErr: errors.New("inbox store down")}
	svc := NewService(subs, &fakePhotographers{}, notifs, zerolog.Nop())

	decided, err := svc.Decide(context.Background(), sub.ID.Hex(), models.ActionApprove, models.TargetAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, decided.Status)
}

func TestDecideSurvivesResolveFailure(t *testing.T) {
	sub := pendingGallery("owner-5")
	subs := newFakeSubmissions(sub)
	notifs := &fakeNotifications{resolveErr: errors.New("resolve failed")}
	svc := NewService(subs, &fakePhotographers{}, notifs, zerolog.Nop())

	decided, err := svc.Decide(context.Background(), sub.ID.Hex(), models.ActionApprove, models.TargetAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, decided.Status)
	require.Len(t, notifs.events, 1)
}

func TestRequestHomepagePlacement(t *testing.T) {
	sub := pendingGallery("owner-6")
	sub.Status = models.StatusApproved
	subs := newFakeSubmissions(sub)
	notifs := &fakeNotifications{}
	svc := NewService(subs, &fakePhotographers{}, notifs, zerolog.Nop())

	moved, err := svc.RequestHomepagePlacement(context.Background(), sub.ID.Hex(), "owner-6")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, moved.Status)

	require.Len(t, notifs.events, 1)
	evt := notifs.events[0]
	assert.Equal(t, models.TargetAdmin, evt.Target)
	assert.Equal(t, models.NotifGalleryHomepageRequest, evt.Type)
	assert.True(t, evt.ActionRequired)
}

func TestRequestHomepagePlacementHidesForeignSubmissions(t *testing.T) {
	sub := pendingGallery("owner-7")
	sub.Status = models.StatusApproved
	subs := newFakeSubmissions(sub)
	svc := NewService(subs, &fakePhotographers{}, &fakeNotifications{}, zerolog.Nop())

	_, err := svc.RequestHomepagePlacement(context.Background(), sub.ID.Hex(), "someone-else")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, models.StatusApproved, subs.subs[sub.ID.Hex()].Status)
}

func TestRegisterPhotographerRaisesAdminRequest(t *testing.T) {
	photographers := &fakePhotographers{}
	notifs := &fakeNotifications{}
	svc := NewService(newFakeSubmissions(), photographers, notifs, zerolog.Nop())

	p := &models.Photographer{
		Submission: models.Submission{ResourceType: models.ResourcePhotographer, Title: "Ada Frame"},
		Email:      "ada@example.com",
		Mobile:     "01700000000",
	}
	require.NoError(t, svc.RegisterPhotographer(context.Background(), p))
	assert.Equal(t, models.StatusPending, p.Status)

	require.Len(t, notifs.events, 1)
	evt := notifs.events[0]
	assert.Equal(t, models.TargetAdmin, evt.Target)
	assert.Equal(t, models.NotifPhotographerSignup, evt.Type)
	assert.True(t, evt.ActionRequired)
	assert.Contains(t, evt.Message, "Ada Frame")
}

func TestRegisterPhotographerConflictSkipsNotification(t *testing.T) {
	photographers := &fakePhotographers{conflict: true}
	notifs := &fakeNotifications{}
	svc := NewService(newFakeSubmissions(), photographers, notifs, zerolog.Nop())

	err := svc.RegisterPhotographer(context.Background(), &models.Photographer{
		Submission: models.Submission{ResourceType: models.ResourcePhotographer, Title: "Dup"},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Empty(t, notifs.events)
}
