package approval

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shotfolio/shotfolio-api/internal/apperr"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/notification"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// Service coordinates submission transitions with notification fan-out. The
// two writes are sequential and independent: a notification failure never
// rolls back the transition (best-effort, at-most-one-attempt delivery).
type Service interface {
	RequestHomepagePlacement(ctx context.Context, id string, actor string) (*models.Submission, error)
	Decide(ctx context.Context, id string, action models.SubmissionAction, adminID string) (*models.Submission, error)
	RegisterPhotographer(ctx context.Context, photographer *models.Photographer) error
}

type service struct {
	submissions   repositories.SubmissionRepository
	photographers repositories.PhotographerRepository
	notifications notification.Service
	logger        zerolog.Logger
}

// NewService creates the approval workflow orchestrator.
func NewService(
	submissions repositories.SubmissionRepository,
	photographers repositories.PhotographerRepository,
	notifications notification.Service,
	logger zerolog.Logger,
) Service {
	return &service{
		submissions:   submissions,
		photographers: photographers,
		notifications: notifications,
		logger:        logger.With().Str("component", "approval_service").Logger(),
	}
}

// RequestHomepagePlacement moves an approved submission back to pending and
// raises an action-required request in the admin inbox. Owners can only act
// on their own submissions.
func (s *service) RequestHomepagePlacement(ctx context.Context, id string, actor string) (*models.Submission, error) {
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor != models.TargetAdmin && sub.OwnerID != actor {
		return nil, apperr.NewNotFound("submission %s not found", id)
	}

	sub, err = s.submissions.Transition(ctx, id, models.ActionRequestPlacement, actor)
	if err != nil {
		return nil, err
	}

	tmpl, ok := placementTemplates[sub.ResourceType]
	if !ok {
		s.logger.Warn().Str("resource", string(sub.ResourceType)).Msg("no placement template for resource type")
		return sub, nil
	}
	title, message := tmpl.Render(sub.Title)
	s.notify(ctx, notification.Event{
		Target:         models.TargetAdmin,
		Type:           tmpl.Type,
		Title:          title,
		Message:        message,
		ActionRequired: true,
		SubmissionID:   sub.ID.Hex(),
		ResourceType:   sub.ResourceType,
	})
	return sub, nil
}

// Decide applies an admin action to a submission, resolves the triggering
// admin notifications, and tells the owner what happened using the fixed
// template table.
func (s *service) Decide(ctx context.Context, id string, action models.SubmissionAction, adminID string) (*models.Submission, error) {
	sub, err := s.submissions.Transition(ctx, id, action, adminID)
	if err != nil {
		return nil, err
	}

	// Clear the action-required inbox entries that asked for this decision.
	if err := s.notifications.ResolveForSubmission(ctx, sub.ID.Hex()); err != nil {
		s.logger.Warn().Err(err).Str("submission_id", sub.ID.Hex()).Msg("failed to resolve admin notifications")
	}

	tmpl, ok := decisionTemplates[sub.ResourceType][action]
	if !ok {
		s.logger.Warn().
			Str("resource", string(sub.ResourceType)).
			Str("action", string(action)).
			Msg("no decision template for resource/action pair")
		return sub, nil
	}
	title, message := tmpl.Render(sub.Title)
	s.notify(ctx, notification.Event{
		Target:         sub.OwnerID,
		Type:           tmpl.Type,
		Title:          title,
		Message:        message,
		ActionRequired: false,
		SubmissionID:   sub.ID.Hex(),
		ResourceType:   sub.ResourceType,
	})
	return sub, nil
}

// RegisterPhotographer creates the pending registration and raises the
// admin review request.
func (s *service) RegisterPhotographer(ctx context.Context, photographer *models.Photographer) error {
	if err := s.photographers.Register(ctx, photographer); err != nil {
		return err
	}

	title, message := registrationTemplate.Render(photographer.Title)
	s.notify(ctx, notification.Event{
		Target:         models.TargetAdmin,
		Type:           registrationTemplate.Type,
		Title:          title,
		Message:        message,
		ActionRequired: true,
		SubmissionID:   photographer.ID.Hex(),
		ResourceType:   models.ResourcePhotographer,
	})
	return nil
}

// notify is the best-effort fan-out: failures are logged and swallowed so
// the triggering transition still succeeds.
func (s *service) notify(ctx context.Context, evt notification.Event) {
	if _, err := s.notifications.Notify(ctx, evt); err != nil {
		s.logger.Error().
			Err(err).
			Str("type", string(evt.Type)).
			Str("submission_id", evt.SubmissionID).
			Msg("notification fan-out failed; transition kept")
	}
}
