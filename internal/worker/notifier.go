package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/model"
	"github.com/aliskhannn/task-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

type topicConsumer interface {
	StartConsume(ctx context.Context, topic model.Topic, handle queue.HandleFunc) error
}

type messageDispatcher interface {
	Topics() []model.Topic
	Dispatch(ctx context.Context, topic string, text string) error
}

// Notifier is the background service that consumes every registered topic.
type Notifier struct {
	consumer   topicConsumer
	dispatcher messageDispatcher
}

func NewNotifier(c topicConsumer, d messageDispatcher) *Notifier {
	return &Notifier{
		consumer:   c,
		dispatcher: d,
	}
}

// Run starts one consumer per topic and blocks until ctx is cancelled or a
// consumer fails. In both cases the remaining consumers are stopped and Run
// returns after their in-flight messages are settled. The first consumer
// error is returned; a plain cancellation returns nil.
func (n *Notifier) Run(ctx context.Context) error {
	topics := n.dispatcher.Topics()
	if len(topics) == 0 {
		return errors.New("no topics to consume")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	wg.Add(len(topics))
	for _, topic := range topics {
		go func() {
			defer wg.Done()

			zlog.Logger.Info().Str("topic", topic.String()).Msg("worker started")

			err := n.consumer.StartConsume(ctx, topic, n.dispatcher.Dispatch)
			if err != nil {
				zlog.Logger.Error().Err(err).Str("topic", topic.String()).Msg("consumer failed")
				once.Do(func() {
					firstErr = fmt.Errorf("consume %s: %w", topic, err)
					cancel()
				})
				return
			}

			zlog.Logger.Info().Str("topic", topic.String()).Msg("worker shutting down")
		}()
	}

	wg.Wait()
	zlog.Logger.Info().Msg("notifier stopped")

	return firstErr
}
