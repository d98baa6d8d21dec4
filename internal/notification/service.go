package notification

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shotfolio/shotfolio-api/internal/models"
	"github.com/shotfolio/shotfolio-api/internal/repositories"
)

// Event describes a submission transition that should become an inbox
// notification.
type Event struct {
	Target         string
	Type           models.NotificationType
	Title          string
	Message        string
	ActionRequired bool
	SubmissionID   string
	ResourceType   models.ResourceType
}

// Service is the notification fan-out. The inbox insert is the delivery;
// additional notifiers (email) run best-effort afterwards and their failures
// are logged, never propagated.
type Service interface {
	Notify(ctx context.Context, evt Event) (*models.Notification, error)
	List(ctx context.Context, target string, unreadOnly bool) ([]models.Notification, error)
	CountPending(ctx context.Context, target string, filterType models.NotificationType) (int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, target string) error
	ResolveForSubmission(ctx context.Context, submissionID string) error
}

// Notifier is an optional secondary delivery channel.
type Notifier interface {
	Deliver(ctx context.Context, notification models.Notification) error
	Channel() string
}

type service struct {
	repo      repositories.NotificationRepository
	logger    zerolog.Logger
	notifiers []Notifier
}

// NewService creates the notification service. Nil notifiers are skipped.
func NewService(repo repositories.NotificationRepository, logger zerolog.Logger, notifiers ...Notifier) Service {
	active := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	return &service{
		repo:      repo,
		logger:    logger.With().Str("component", "notification_service").Logger(),
		notifiers: active,
	}
}

// Notify inserts the inbox record and then runs the secondary channels.
func (s *service) Notify(ctx context.Context, evt Event) (*models.Notification, error) {
	notification := &models.Notification{
		Target:         evt.Target,
		Type:           evt.Type,
		Title:          evt.Title,
		Message:        evt.Message,
		ActionRequired: evt.ActionRequired,
		SubmissionID:   evt.SubmissionID,
		ResourceType:   evt.ResourceType,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		s.logger.Error().Err(err).Str("type", string(evt.Type)).Msg("failed to persist notification")
		return nil, err
	}

	for _, notifier := range s.notifiers {
		if err := notifier.Deliver(ctx, *notification); err != nil {
			s.logger.Warn().
				Err(err).
				Str("notification_id", notification.ID.Hex()).
				Str("type", string(notification.Type)).
				Str("channel", notifier.Channel()).
				Msg("failed to deliver notification")
		}
	}
	return notification, nil
}

func (s *service) List(ctx context.Context, target string, unreadOnly bool) ([]models.Notification, error) {
	return s.repo.List(ctx, target, unreadOnly)
}

func (s *service) CountPending(ctx context.Context, target string, filterType models.NotificationType) (int64, error) {
	return s.repo.CountPending(ctx, target, filterType)
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *service) MarkAllRead(ctx context.Context, target string) error {
	return s.repo.MarkAllRead(ctx, target)
}

func (s *service) ResolveForSubmission(ctx context.Context, submissionID string) error {
	return s.repo.ResolveForSubmission(ctx, submissionID)
}
