package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/task-notifier/internal/mocks/worker"
	"github.com/aliskhannn/task-notifier/internal/model"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/queue"
)

func TestNotifier_Run_ConsumesEveryTopicAndDispatches(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockConsumer := mocks.NewMocktopicConsumer(ctrl)
	mockDispatcher := mocks.NewMockmessageDispatcher(ctrl)

	n := NewNotifier(mockConsumer, mockDispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		started []model.Topic
	)

	mockDispatcher.EXPECT().Topics().Return(model.Topics())
	mockDispatcher.EXPECT().Dispatch(gomock.Any(), model.TopicTask.String(), "payload").Return(nil)
	mockConsumer.EXPECT().StartConsume(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(ctx context.Context, topic model.Topic, handle queue.HandleFunc) error {
			mu.Lock()
			started = append(started, topic)
			mu.Unlock()

			if topic == model.TopicTask {
				assert.NoError(t, handle(ctx, topic.String(), "payload"))
			}

			<-ctx.Done()
			return nil
		},
	)

	done := make(chan error, 1)
	go func() { done <- n.Run(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(started) == 3
	}, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop")
	}

	assert.ElementsMatch(t, model.Topics(), started)
}

func TestNotifier_Run_ConsumerFailureStopsOthers(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockConsumer := mocks.NewMocktopicConsumer(ctrl)
	mockDispatcher := mocks.NewMockmessageDispatcher(ctrl)

	n := NewNotifier(mockConsumer, mockDispatcher)

	mockDispatcher.EXPECT().Topics().Return([]model.Topic{model.TopicGeneral, model.TopicReminder})
	mockConsumer.EXPECT().StartConsume(gomock.Any(), model.TopicGeneral, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ model.Topic, _ queue.HandleFunc) error {
			<-ctx.Done()
			return nil
		},
	)
	mockConsumer.EXPECT().StartConsume(gomock.Any(), model.TopicReminder, gomock.Any()).Return(queue.ErrDeliveriesClosed)

	err := n.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, queue.ErrDeliveriesClosed)
}

func TestNotifier_Run_NoTopics(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockConsumer := mocks.NewMocktopicConsumer(ctrl)
	mockDispatcher := mocks.NewMockmessageDispatcher(ctrl)

	mockDispatcher.EXPECT().Topics().Return(nil)

	err := NewNotifier(mockConsumer, mockDispatcher).Run(context.Background())
	assert.Error(t, err)
}
