package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/mailtemplate"
	"github.com/aliskhannn/task-notifier/internal/model"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/dispatch"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/queue"
	taskrepo "github.com/aliskhannn/task-notifier/internal/repository/task"
	userrepo "github.com/aliskhannn/task-notifier/internal/repository/user"
)

// EventReceiveNotifications is the real-time event name clients listen for.
const EventReceiveNotifications = "ReceiveNotifications"

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks

type userRepository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
}

type taskRepository interface {
	GetByID(ctx context.Context, id int64) (model.Task, error)
}

type emailSender interface {
	Send(to, subject, htmlBody string) error
}

type realtimePusher interface {
	SendToUser(ctx context.Context, userID, event string, payload any) error
}

type deliveryLog interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Handler turns consumed notification messages into emails and real-time events.
type Handler struct {
	users     userRepository
	tasks     taskRepository
	sender    emailSender
	pusher    realtimePusher
	templates *mailtemplate.Renderer
	delivered deliveryLog
	strategy  retry.Strategy
}

func NewHandler(
	users userRepository,
	tasks taskRepository,
	sender emailSender,
	pusher realtimePusher,
	templates *mailtemplate.Renderer,
	delivered deliveryLog,
	strategy retry.Strategy,
) *Handler {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &Handler{
		users:     users,
		tasks:     tasks,
		sender:    sender,
		pusher:    pusher,
		templates: templates,
		delivered: delivered,
		strategy:  strategy,
	}
}

// Register binds the handler methods to their topics.
func (h *Handler) Register(r *dispatch.Registry) error {
	handlers := map[model.Topic]dispatch.HandlerFunc{
		model.TopicGeneral:  h.HandleGeneral,
		model.TopicTask:     h.HandleTask,
		model.TopicReminder: h.HandleReminder,
	}

	for _, topic := range model.Topics() {
		if err := r.Register(topic, handlers[topic]); err != nil {
			return err
		}
	}

	return nil
}

// HandleGeneral pushes the message to the user's connections and emails it.
func (h *Handler) HandleGeneral(ctx context.Context, body []byte) error {
	msg, err := queue.Decode(body)
	if err != nil {
		return err
	}

	if h.recorded(ctx, deliveredKey(msg), msg) {
		return nil
	}

	user, err := h.users.GetByID(ctx, msg.UserID)
	if err != nil {
		return lookupError("user", msg.UserID, err)
	}

	payload := model.EmailPayload{
		Subject:   msg.Subject,
		Message:   msg.Message,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		To:        user.Email,
	}

	// a redelivery after a failed email must not push the event again
	if !h.recorded(ctx, pushedKey(msg), msg) {
		if err := h.pusher.SendToUser(ctx, user.ID, EventReceiveNotifications, msg.Message); err != nil {
			return fmt.Errorf("push notification %d: %w", msg.ID, err)
		}

		h.record(ctx, pushedKey(msg), msg)
	}

	if err := h.send(mailtemplate.General, payload); err != nil {
		return fmt.Errorf("notification %d: %w", msg.ID, err)
	}

	h.record(ctx, deliveredKey(msg), msg)
	zlog.Logger.Info().Int64("id", msg.ID).Str("user_id", msg.UserID).Msg("general notification sent")

	return nil
}

// HandleTask emails a task assignment with the task details.
func (h *Handler) HandleTask(ctx context.Context, body []byte) error {
	msg, err := queue.Decode(body)
	if err != nil {
		return err
	}

	if msg.TaskID == nil {
		return queue.Permanent(fmt.Errorf("notification %d: %w", msg.ID, taskrepo.ErrTaskNotFound))
	}

	if h.recorded(ctx, deliveredKey(msg), msg) {
		return nil
	}

	user, err := h.users.GetByID(ctx, msg.UserID)
	if err != nil {
		return lookupError("user", msg.UserID, err)
	}

	task, err := h.tasks.GetByID(ctx, *msg.TaskID)
	if err != nil {
		return lookupError("task", fmt.Sprint(*msg.TaskID), err)
	}

	if err := h.send(mailtemplate.TaskAssignment, taskPayload(msg, user, task)); err != nil {
		return fmt.Errorf("notification %d: %w", msg.ID, err)
	}

	h.record(ctx, deliveredKey(msg), msg)
	zlog.Logger.Info().Int64("id", msg.ID).Int64("task_id", task.ID).Msg("task notification sent")

	return nil
}

// HandleReminder emails a task reminder. A reminder whose user or task no
// longer exists is skipped with a warning.
func (h *Handler) HandleReminder(ctx context.Context, body []byte) error {
	msg, err := queue.Decode(body)
	if err != nil {
		return err
	}

	if msg.TaskID == nil {
		zlog.Logger.Warn().Int64("id", msg.ID).Msg("reminder without task, skipping")
		return nil
	}

	if h.recorded(ctx, deliveredKey(msg), msg) {
		return nil
	}

	user, err := h.users.GetByID(ctx, msg.UserID)
	if errors.Is(err, userrepo.ErrUserNotFound) {
		zlog.Logger.Warn().Int64("id", msg.ID).Str("user_id", msg.UserID).Msg("reminder user not found, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("get user %s: %w", msg.UserID, err)
	}

	task, err := h.tasks.GetByID(ctx, *msg.TaskID)
	if errors.Is(err, taskrepo.ErrTaskNotFound) {
		zlog.Logger.Warn().Int64("id", msg.ID).Int64("task_id", *msg.TaskID).Msg("reminder task not found, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("get task %d: %w", *msg.TaskID, err)
	}

	if err := h.send(mailtemplate.Reminder, taskPayload(msg, user, task)); err != nil {
		return fmt.Errorf("notification %d: %w", msg.ID, err)
	}

	h.record(ctx, deliveredKey(msg), msg)
	zlog.Logger.Info().Int64("id", msg.ID).Int64("task_id", task.ID).Msg("reminder sent")

	return nil
}

func (h *Handler) send(kind mailtemplate.Kind, p model.EmailPayload) error {
	htmlBody, err := h.templates.Render(kind, p)
	if err != nil {
		return queue.Permanent(fmt.Errorf("render %s: %w", kind, err))
	}

	return h.sender.Send(p.To, p.Subject, htmlBody)
}

func taskPayload(msg queue.NotificationMessage, user model.User, task model.Task) model.EmailPayload {
	return model.EmailPayload{
		Subject:         msg.Subject,
		Message:         msg.Message,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		To:              user.Email,
		TaskTitle:       task.Title,
		TaskDescription: task.Description,
		TaskDueDate:     task.DueDate,
	}
}

// lookupError marks missing entities as permanent; storage errors stay retryable.
func lookupError(entity, id string, err error) error {
	err = fmt.Errorf("get %s %s: %w", entity, id, err)
	if errors.Is(err, userrepo.ErrUserNotFound) || errors.Is(err, taskrepo.ErrTaskNotFound) {
		return queue.Permanent(err)
	}

	return err
}

func deliveredKey(msg queue.NotificationMessage) string {
	return fmt.Sprintf("notification:delivered:%s:%d", msg.Type, msg.ID)
}

func pushedKey(msg queue.NotificationMessage) string {
	return fmt.Sprintf("notification:pushed:%s:%d", msg.Type, msg.ID)
}

// recorded reports whether key was set by an earlier delivery of msg.
// A missing key is the normal case and is answered by a single lookup;
// only cache failures are retried. When the cache stays unavailable the
// error is logged and the step is treated as not done yet.
func (h *Handler) recorded(ctx context.Context, key string, msg queue.NotificationMessage) bool {
	if h.delivered == nil {
		return false
	}

	var found bool
	err := retry.Do(func() error {
		_, err := h.delivered.Get(ctx, key)
		switch {
		case err == nil:
			found = true
			return nil
		case errors.Is(err, redis.Nil):
			found = false
			return nil
		default:
			return err
		}
	}, h.strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("id", msg.ID).Str("key", key).Msg("failed to check delivery log")
		return false
	}

	if found {
		zlog.Logger.Info().Int64("id", msg.ID).Str("key", key).Msg("already done for notification, skipping")
	}

	return found
}

func (h *Handler) record(ctx context.Context, key string, msg queue.NotificationMessage) {
	if h.delivered == nil {
		return
	}

	if err := h.delivered.SetWithRetry(ctx, h.strategy, key, "sent"); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", msg.ID).Str("key", key).Msg("failed to record delivery")
	}
}
