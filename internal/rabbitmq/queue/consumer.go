package queue

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/model"
)

type consumeChannel interface {
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
	Close() error
}

// HandleFunc processes the text of one message received on topic.
type HandleFunc func(ctx context.Context, topic string, text string) error

// Consumer receives messages with manual acknowledgement.
type Consumer struct {
	open     func() (consumeChannel, error)
	tag      string
	prefetch int
}

// NewConsumer creates a Consumer. open is called once per StartConsume.
func NewConsumer(open func() (consumeChannel, error), tag string, prefetch int) *Consumer {
	if prefetch < 1 {
		prefetch = 1
	}

	return &Consumer{open: open, tag: tag, prefetch: prefetch}
}

// StartConsume subscribes to topic and handles deliveries one at a time until
// ctx is cancelled or the broker closes the stream. A message is acked only
// after handle returns nil. The handler currently running when ctx is
// cancelled is allowed to finish.
func (c *Consumer) StartConsume(ctx context.Context, topic model.Topic, handle HandleFunc) error {
	ch, err := c.open()
	if err != nil {
		return fmt.Errorf("open consumer channel for %s: %w", topic, err)
	}
	defer func() {
		if err := ch.Close(); err != nil {
			zlog.Logger.Debug().Err(err).Str("topic", topic.String()).Msg("failed to close consumer channel")
		}
	}()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos for %s: %w", topic, err)
	}

	tag := fmt.Sprintf("%s-%s-%s", c.tag, topic, uuid.NewString()[:8])

	deliveries, err := ch.Consume(topic.String(), tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", topic, err)
	}

	zlog.Logger.Info().Str("topic", topic.String()).Str("consumer", tag).Msg("consumer started")

	handleCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			if err := ch.Cancel(tag, false); err != nil {
				zlog.Logger.Warn().Err(err).Str("consumer", tag).Msg("failed to cancel consumer")
			}

			zlog.Logger.Info().Str("topic", topic.String()).Msg("consumer stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("%s: %w", topic, ErrDeliveriesClosed)
			}

			c.process(handleCtx, topic.String(), d, handle)
		}
	}
}

// process runs handle for a single delivery and settles it.
func (c *Consumer) process(ctx context.Context, topic string, d amqp.Delivery, handle HandleFunc) {
	log := zlog.Logger.With().
		Str("topic", topic).
		Str("message_id", d.MessageId).
		Uint64("delivery_tag", d.DeliveryTag).
		Logger()

	if !utf8.Valid(d.Body) {
		log.Error().Msg("message body is not valid UTF-8, dropping")
		if err := d.Nack(false, false); err != nil {
			log.Error().Err(err).Msg("failed to nack message")
		}
		return
	}

	err := handle(ctx, topic, string(d.Body))

	switch {
	case err == nil:
		if err := d.Ack(false); err != nil {
			log.Error().Err(err).Msg("failed to ack message")
		}
	case errors.Is(err, model.ErrUnknownTopic):
		log.Debug().Msg("no handler for topic, message dropped")
		if err := d.Ack(false); err != nil {
			log.Error().Err(err).Msg("failed to ack message")
		}
	case IsPermanent(err):
		log.Error().Err(err).Msg("failed to handle message, dropping")
		if err := d.Nack(false, false); err != nil {
			log.Error().Err(err).Msg("failed to nack message")
		}
	default:
		requeue := !d.Redelivered
		log.Error().Err(err).Bool("requeue", requeue).Msg("failed to handle message")
		if err := d.Nack(false, requeue); err != nil {
			log.Error().Err(err).Msg("failed to nack message")
		}
	}
}
