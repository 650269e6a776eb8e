package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/model"
	notifrepo "github.com/aliskhannn/task-notifier/internal/repository/notification"
)

var (
	// ErrMissingUserID is returned when a notification has no target user.
	ErrMissingUserID = errors.New("user id is required")

	// ErrNotPublished means the notification was stored but could not be handed to the broker.
	ErrNotPublished = errors.New("notification stored but not published")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationPublisher interface {
	Publish(ctx context.Context, n model.Notification, topic model.Topic) error
}

type notificationRepository interface {
	Create(context.Context, model.Notification) (model.Notification, error)
	GetByID(context.Context, int64) (model.Notification, error)
	GetByUser(context.Context, string) ([]model.Notification, error)
	MarkAsRead(context.Context, int64) error
}

type Service struct {
	repo      notificationRepository
	publisher notificationPublisher
	now       func() time.Time
}

func NewService(repo notificationRepository, publisher notificationPublisher) *Service {
	return &Service{repo: repo, publisher: publisher, now: time.Now}
}

// CreateNotification stores a new unread notification and publishes it on topic.
//
// If publishing fails the record stays stored; the stored record is returned
// together with an error wrapping ErrNotPublished.
func (s *Service) CreateNotification(
	ctx context.Context,
	userID string,
	taskID *int64,
	message, subject string,
	topic model.Topic,
) (model.Notification, error) {
	if userID == "" {
		return model.Notification{}, ErrMissingUserID
	}

	if !topic.Valid() {
		return model.Notification{}, fmt.Errorf("create notification: %w: %q", model.ErrUnknownTopic, topic)
	}

	n := model.Notification{
		UserID:    userID,
		TaskID:    taskID,
		Subject:   subject,
		Message:   message,
		CreatedAt: s.now().UTC(),
		IsRead:    false,
		Type:      topic,
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	if err := s.publisher.Publish(ctx, created, topic); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", created.ID).Str("topic", topic.String()).Msg("failed to publish notification")
		return created, fmt.Errorf("%w: %w", ErrNotPublished, err)
	}

	return created, nil
}

// GetAllNotifications returns the notifications of userID in insertion order.
func (s *Service) GetAllNotifications(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get all notifications: %w", err)
	}

	return notifications, nil
}

// MarkAsRead sets the read flag of the notification with the given id.
// A missing notification is not an error.
func (s *Service) MarkAsRead(ctx context.Context, id int64) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			zlog.Logger.Warn().Int64("id", id).Msg("mark as read: notification not found")
			return nil
		}

		return fmt.Errorf("mark as read: %w", err)
	}

	if n.IsRead {
		return nil
	}

	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			zlog.Logger.Warn().Int64("id", id).Msg("mark as read: notification not found")
			return nil
		}

		return fmt.Errorf("mark as read: %w", err)
	}

	return nil
}
