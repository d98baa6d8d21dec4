package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/authz"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/pkg/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubSubmissionRepo struct {
	subs    map[string]*models.Submission
	listErr error
}

func newStubSubmissionRepo(subs ...*models.Submission) *stubSubmissionRepo {
	s := &stubSubmissionRepo{subs: map[string]*models.Submission{}}
	for _, sub := range subs {
		s.subs[sub.ID.Hex()] = sub
	}
	return s
}

func (s *stubSubmissionRepo) Create(_ context.Context, sub *models.Submission) error {
	sub.ID = primitive.NewObjectID()
	if sub.Status == "" {
		sub.Status = models.InitialStatus(sub.OwnerID)
	}
	sub.CreatedAt = time.Now()
	s.subs[sub.ID.Hex()] = sub
	return nil
}

func (s *stubSubmissionRepo) GetByID(_ context.Context, id string) (*models.Submission, error) {
	sub, ok := s.subs[id]
	if !ok {
		return nil, apperr.NewNotFound("submission %s not found", id)
	}
	return sub, nil
}

func (s *stubSubmissionRepo) ListByStatus(_ context.Context, resource models.ResourceType, status models.SubmissionStatus, _ bool) ([]models.Submission, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if !models.IsValidStatus(status) {
		return nil, apperr.NewValidation("unknown status %q", status)
	}
	var out []models.Submission
	for _, sub := range s.subs {
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

func (s *stubSubmissionRepo) Transition(_ context.Context, id string, action models.SubmissionAction, actorID string) (*models.Submission, error) {
	sub, ok := s.subs[id]
	if !ok {
		return nil, apperr.NewNotFound("submission %s not found", id)
	}
	next, err := models.NextStatus(sub.Status, action)
	if err != nil {
		return nil, err
	}
	sub.Status = next
	sub.DecidedBy = actorID
	return sub, nil
}

type stubApproval struct {
	subs *stubSubmissionRepo
}

func (s *stubApproval) RequestHomepagePlacement(ctx context.Context, id string, actor string) (*models.Submission, error) {
	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor != models.TargetAdmin && sub.OwnerID != actor {
		return nil, apperr.NewNotFound("submission %s not found", id)
	}
	return s.subs.Transition(ctx, id, models.ActionRequestPlacement, actor)
}

func (s *stubApproval) Decide(ctx context.Context, id string, action models.SubmissionAction, adminID string) (*models.Submission, error) {
	return s.subs.Transition(ctx, id, action, adminID)
}

func (s *stubApproval) RegisterPhotographer(_ context.Context, _ *models.Photographer) error {
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validators.NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asAdmin(c echo.Context) {
	authz.WithIdentity(c, authz.AuthContext{SubjectID: models.TargetAdmin, Email: "admin@shotfolio.local", Role: authz.RoleAdmin})
}

func asPhotographer(c echo.Context, id string) {
	authz.WithIdentity(c, authz.AuthContext{SubjectID: id, Email: id + "@example.com", Role: authz.RolePhotographer})
}

func TestListSubmissionsDefaultsToPendingQueue(t *testing.T) {
	pending := &models.Submission{ID: primitive.NewObjectID(), ResourceType: models.ResourceGallery, OwnerID: "o1", Title: "A", Status: models.StatusPending}
	approved := &models.Submission{ID: primitive.NewObjectID(), ResourceType: models.ResourceStory, OwnerID: "o2", Title: "B", Status: models.StatusApproved}
	repo := newStubSubmissionRepo(pending, approved)
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/submissions", "")
	asAdmin(c)
	require.NoError(t, h.ListSubmissions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	var subs []models.Submission
	require.NoError(t, json.Unmarshal(env.Data, &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, models.StatusPending, subs[0].Status)
}

func TestListSubmissionsRequiresAdmin(t *testing.T) {
	repo := newStubSubmissionRepo()
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/submissions", "")
	asPhotographer(c, "owner-1")
	err := h.ListSubmissions(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestListSubmissionsRejectsUnknownStatus(t *testing.T) {
	repo := newStubSubmissionRepo()
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/submissions?status=archived", "")
	asAdmin(c)
	err := h.ListSubmissions(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCreateSubmissionStartsPendingForPhotographer(t *testing.T) {
	repo := newStubSubmissionRepo()
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/submissions", `{"resource_type":"gallery","title":"Harbor lights"}`)
	asPhotographer(c, "owner-9")
	require.NoError(t, h.CreateSubmission(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var sub models.Submission
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	assert.Equal(t, models.StatusPending, sub.Status)
	assert.Equal(t, "owner-9", sub.OwnerID)
}

func TestCreateSubmissionStartsApprovedForAdmin(t *testing.T) {
	repo := newStubSubmissionRepo()
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/submissions", `{"resource_type":"story","title":"Editor picks"}`)
	asAdmin(c)
	require.NoError(t, h.CreateSubmission(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var sub models.Submission
	require.NoError(t, json.Unmarshal(env.Data, &sub))
	assert.Equal(t, models.StatusApproved, sub.Status)
}

func TestCreateSubmissionRejectsPhotographerResource(t *testing.T) {
	repo := newStubSubmissionRepo()
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/submissions", `{"resource_type":"photographer","title":"Nope"}`)
	asAdmin(c)
	err := h.CreateSubmission(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestActOnSubmissionApprove(t *testing.T) {
	sub := &models.Submission{ID: primitive.NewObjectID(), ResourceType: models.ResourceGallery, OwnerID: "o1", Title: "A", Status: models.StatusPending}
	repo := newStubSubmissionRepo(sub)
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/submissions/"+sub.ID.Hex(), `{"action":"approve"}`)
	c.SetParamNames("id")
	c.SetParamValues(sub.ID.Hex())
	asAdmin(c)
	require.NoError(t, h.ActOnSubmission(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusApproved, repo.subs[sub.ID.Hex()].Status)
}

func TestActOnSubmissionApproveTwiceFails(t *testing.T) {
	sub := &models.Submission{ID: primitive.NewObjectID(), ResourceType: models.ResourceGallery, OwnerID: "o1", Title: "A", Status: models.StatusApproved}
	repo := newStubSubmissionRepo(sub)
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/submissions/"+sub.ID.Hex(), `{"action":"approve"}`)
	c.SetParamNames("id")
	c.SetParamValues(sub.ID.Hex())
	asAdmin(c)
	err := h.ActOnSubmission(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestActOnSubmissionDecisionRequiresAdmin(t *testing.T) {
	sub := &models.Submission{ID: primitive.NewObjectID(), ResourceType: models.ResourceGallery, OwnerID: "o1", Title: "A", Status: models.StatusPending}
	repo := newStubSubmissionRepo(sub)
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/submissions/"+sub.ID.Hex(), `{"action":"approve"}`)
	c.SetParamNames("id")
	c.SetParamValues(sub.ID.Hex())
	asPhotographer(c, "o1")
	err := h.ActOnSubmission(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestActOnSubmissionOwnerRequestsHome(t *testing.T) {
	sub := &models.Submission{ID: primitive.NewObjectID(), ResourceType: models.ResourceStory, OwnerID: "o1", Title: "A", Status: models.StatusApproved}
	repo := newStubSubmissionRepo(sub)
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, rec := newTestContext(t, http.MethodPut, "/api/v1/submissions/"+sub.ID.Hex(), `{"action":"request_home"}`)
	c.SetParamNames("id")
	c.SetParamValues(sub.ID.Hex())
	asPhotographer(c, "o1")
	require.NoError(t, h.ActOnSubmission(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusPending, repo.subs[sub.ID.Hex()].Status)
}

func TestActOnSubmissionForeignOwnerGets404(t *testing.T) {
	sub := &models.Submission{ID: primitive.NewObjectID(), ResourceType: models.ResourceStory, OwnerID: "o1", Title: "A", Status: models.StatusApproved}
	repo := newStubSubmissionRepo(sub)
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/submissions/"+sub.ID.Hex(), `{"action":"request_home"}`)
	c.SetParamNames("id")
	c.SetParamValues(sub.ID.Hex())
	asPhotographer(c, "intruder")
	err := h.ActOnSubmission(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestActOnSubmissionUnknownID(t *testing.T) {
	repo := newStubSubmissionRepo()
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	id := primitive.NewObjectID().Hex()
	c, _ := newTestContext(t, http.MethodPut, "/api/v1/submissions/"+id, `{"action":"delete"}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	asAdmin(c)
	err := h.ActOnSubmission(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestActOnSubmissionRejectsUnknownAction(t *testing.T) {
	repo := newStubSubmissionRepo()
	h := NewSubmissionHandler(repo, &stubApproval{subs: repo})

	c, _ := newTestContext(t, http.MethodPut, "/api/v1/submissions/abc", `{"action":"promote"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	asAdmin(c)
	err := h.ActOnSubmission(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
