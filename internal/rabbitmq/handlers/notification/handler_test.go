package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/task-notifier/internal/mailtemplate"
	mocks "github.com/aliskhannn/task-notifier/internal/mocks/rabbitmq/handlers/notification"
	"github.com/aliskhannn/task-notifier/internal/model"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/dispatch"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/queue"
	taskrepo "github.com/aliskhannn/task-notifier/internal/repository/task"
	userrepo "github.com/aliskhannn/task-notifier/internal/repository/user"
)

type deps struct {
	users     *mocks.MockuserRepository
	tasks     *mocks.MocktaskRepository
	sender    *mocks.MockemailSender
	pusher    *mocks.MockrealtimePusher
	delivered *mocks.MockdeliveryLog
}

var testStrategy = retry.Strategy{Attempts: 1}

func newTestHandler(t *testing.T) (*Handler, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		users:     mocks.NewMockuserRepository(ctrl),
		tasks:     mocks.NewMocktaskRepository(ctrl),
		sender:    mocks.NewMockemailSender(ctrl),
		pusher:    mocks.NewMockrealtimePusher(ctrl),
		delivered: mocks.NewMockdeliveryLog(ctrl),
	}

	templates, err := mailtemplate.New()
	require.NoError(t, err)

	return NewHandler(d.users, d.tasks, d.sender, d.pusher, templates, d.delivered, testStrategy), d
}

func encode(t *testing.T, topic model.Topic, taskID *int64) []byte {
	t.Helper()

	body, err := queue.Encode(model.Notification{
		ID:        7,
		UserID:    "u1",
		TaskID:    taskID,
		Subject:   "Heads up",
		Message:   "Sprint planning moved",
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Type:      topic,
	})
	require.NoError(t, err)

	return body
}

func int64Ptr(v int64) *int64 { return &v }

var testUser = model.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

func TestHandler_HandleGeneral_Success(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	gomock.InOrder(
		d.delivered.EXPECT().Get(ctx, "notification:delivered:general-notification:7").Return("", redis.Nil),
		d.users.EXPECT().GetByID(ctx, "u1").Return(testUser, nil),
		d.delivered.EXPECT().Get(ctx, "notification:pushed:general-notification:7").Return("", redis.Nil),
		d.pusher.EXPECT().SendToUser(ctx, "u1", EventReceiveNotifications, "Sprint planning moved").Return(nil),
		d.delivered.EXPECT().SetWithRetry(ctx, testStrategy, "notification:pushed:general-notification:7", "sent").Return(nil),
		d.sender.EXPECT().Send("ada@example.com", "Heads up", gomock.Any()).DoAndReturn(func(_, _, body string) error {
			assert.Contains(t, body, "Ada Lovelace")
			assert.Contains(t, body, "Sprint planning moved")
			return nil
		}),
		d.delivered.EXPECT().SetWithRetry(ctx, testStrategy, "notification:delivered:general-notification:7", "sent").Return(nil),
	)

	require.NoError(t, h.HandleGeneral(ctx, encode(t, model.TopicGeneral, nil)))
}

func TestHandler_HandleGeneral_UserNotFoundIsPermanent(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", redis.Nil)
	d.users.EXPECT().GetByID(ctx, "u1").Return(model.User{}, userrepo.ErrUserNotFound)

	err := h.HandleGeneral(ctx, encode(t, model.TopicGeneral, nil))
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
	assert.ErrorIs(t, err, userrepo.ErrUserNotFound)
}

func TestHandler_HandleGeneral_EmailFailureIsTransient(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", redis.Nil).Times(2)
	d.users.EXPECT().GetByID(ctx, "u1").Return(testUser, nil)
	d.pusher.EXPECT().SendToUser(ctx, "u1", EventReceiveNotifications, gomock.Any()).Return(nil)
	d.delivered.EXPECT().SetWithRetry(ctx, testStrategy, "notification:pushed:general-notification:7", "sent").Return(nil)
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp: 421 try later"))

	err := h.HandleGeneral(ctx, encode(t, model.TopicGeneral, nil))
	require.Error(t, err)
	assert.False(t, queue.IsPermanent(err))
}

func TestHandler_HandleGeneral_AlreadyDelivered(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, "notification:delivered:general-notification:7").Return("sent", nil)

	require.NoError(t, h.HandleGeneral(ctx, encode(t, model.TopicGeneral, nil)))
}

func TestHandler_HandleGeneral_DeliveryLogDownStillSends(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", errors.New("connection refused")).Times(2)
	d.users.EXPECT().GetByID(ctx, "u1").Return(testUser, nil)
	d.pusher.EXPECT().SendToUser(ctx, "u1", EventReceiveNotifications, gomock.Any()).Return(nil)
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.delivered.EXPECT().SetWithRetry(ctx, testStrategy, gomock.Any(), "sent").Return(errors.New("connection refused")).Times(2)

	require.NoError(t, h.HandleGeneral(ctx, encode(t, model.TopicGeneral, nil)))
}

func TestHandler_InvalidBodyIsPermanent(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := context.Background()

	for name, fn := range map[string]dispatch.HandlerFunc{
		"general":  h.HandleGeneral,
		"task":     h.HandleTask,
		"reminder": h.HandleReminder,
	} {
		t.Run(name, func(t *testing.T) {
			err := fn(ctx, []byte("{not json"))
			require.Error(t, err)
			assert.True(t, queue.IsPermanent(err))
			assert.ErrorIs(t, err, queue.ErrInvalidMessage)
		})
	}
}

func TestHandler_HandleTask_WithoutTaskIDIsPermanent(t *testing.T) {
	h, _ := newTestHandler(t)

	err := h.HandleTask(context.Background(), encode(t, model.TopicTask, nil))
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
	assert.ErrorIs(t, err, taskrepo.ErrTaskNotFound)
}

func TestHandler_HandleTask_TaskNotFoundIsPermanent(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", redis.Nil)
	d.users.EXPECT().GetByID(ctx, "u1").Return(testUser, nil)
	d.tasks.EXPECT().GetByID(ctx, int64(42)).Return(model.Task{}, taskrepo.ErrTaskNotFound)

	err := h.HandleTask(ctx, encode(t, model.TopicTask, int64Ptr(42)))
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
}

func TestHandler_HandleTask_StorageErrorIsTransient(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", redis.Nil)
	d.users.EXPECT().GetByID(ctx, "u1").Return(model.User{}, errors.New("db is down"))

	err := h.HandleTask(ctx, encode(t, model.TopicTask, int64Ptr(42)))
	require.Error(t, err)
	assert.False(t, queue.IsPermanent(err))
}

func TestHandler_TaskTopicInvokesOnlyTaskPath(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	registry := dispatch.NewRegistry()
	require.NoError(t, h.Register(registry))

	due := time.Date(2025, 3, 5, 17, 30, 0, 0, time.UTC)
	task := model.Task{ID: 42, Title: "Ship release notes", Description: "Collect changelog entries", DueDate: &due}

	d.delivered.EXPECT().Get(ctx, "notification:delivered:task-notification:7").Return("", redis.Nil)
	d.users.EXPECT().GetByID(ctx, "u1").Return(testUser, nil)
	d.tasks.EXPECT().GetByID(ctx, int64(42)).Return(task, nil)
	d.sender.EXPECT().Send("ada@example.com", "Heads up", gomock.Any()).DoAndReturn(func(_, _, body string) error {
		assert.Contains(t, body, "Ship release notes")
		assert.Contains(t, body, "Collect changelog entries")
		assert.Contains(t, body, "2025-03-05 17:30")
		return nil
	}).Times(1)
	d.delivered.EXPECT().SetWithRetry(ctx, testStrategy, "notification:delivered:task-notification:7", "sent").Return(nil)
	// no SendToUser expectation: a push from the task path fails the test

	body := encode(t, model.TopicTask, int64Ptr(42))
	require.NoError(t, registry.Dispatch(ctx, model.TopicTask.String(), string(body)))
}

func TestHandler_HandleReminder_Success(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	task := model.Task{ID: 42, Title: "Pay invoice"}

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", redis.Nil)
	d.users.EXPECT().GetByID(ctx, "u1").Return(testUser, nil)
	d.tasks.EXPECT().GetByID(ctx, int64(42)).Return(task, nil)
	d.sender.EXPECT().Send("ada@example.com", "Heads up", gomock.Any()).DoAndReturn(func(_, _, body string) error {
		assert.Contains(t, body, "This is a reminder")
		assert.Contains(t, body, "Pay invoice")
		return nil
	})
	d.delivered.EXPECT().SetWithRetry(ctx, testStrategy, "notification:delivered:reminder:7", "sent").Return(nil)

	require.NoError(t, h.HandleReminder(ctx, encode(t, model.TopicReminder, int64Ptr(42))))
}

func TestHandler_HandleReminder_MissingTaskSkips(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", redis.Nil)
	d.users.EXPECT().GetByID(ctx, "u1").Return(testUser, nil)
	d.tasks.EXPECT().GetByID(ctx, int64(999)).Return(model.Task{}, taskrepo.ErrTaskNotFound)
	d.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, h.HandleReminder(ctx, encode(t, model.TopicReminder, int64Ptr(999))))
}

func TestHandler_HandleReminder_MissingUserSkips(t *testing.T) {
	h, d := newTestHandler(t)
	ctx := context.Background()

	d.delivered.EXPECT().Get(ctx, gomock.Any()).Return("", redis.Nil)
	d.users.EXPECT().GetByID(ctx, "u1").Return(model.User{}, userrepo.ErrUserNotFound)

	require.NoError(t, h.HandleReminder(ctx, encode(t, model.TopicReminder, int64Ptr(42))))
}

func TestHandler_HandleReminder_WithoutTaskIDSkips(t *testing.T) {
	h, _ := newTestHandler(t)

	require.NoError(t, h.HandleReminder(context.Background(), encode(t, model.TopicReminder, nil)))
}

func TestHandler_Register_Twice(t *testing.T) {
	h, _ := newTestHandler(t)

	registry := dispatch.NewRegistry()
	require.NoError(t, h.Register(registry))
	assert.Equal(t, model.Topics(), registry.Topics())
	assert.Error(t, h.Register(registry))
}
