package queue

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/aliskhannn/task-notifier/internal/model"
)

type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// Publisher sends notification envelopes to the topic queues.
// It owns its channel; concurrent Publish calls are serialized.
type Publisher struct {
	mu sync.Mutex
	ch publishChannel
}

// NewPublisher creates a Publisher on top of a dedicated channel.
func NewPublisher(ch publishChannel) *Publisher {
	return &Publisher{ch: ch}
}

// Publish encodes n and enqueues it on topic as a persistent message.
func (p *Publisher) Publish(ctx context.Context, n model.Notification, topic model.Topic) error {
	if !topic.Valid() {
		return fmt.Errorf("publish: %w: %q", model.ErrUnknownTopic, topic)
	}

	body, err := Encode(n)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    strconv.FormatInt(n.ID, 10),
		Type:         topic.String(),
		Timestamp:    n.CreatedAt,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		return ErrUninitialized
	}

	// Default exchange: the routing key is the queue name.
	if err := p.ch.PublishWithContext(ctx, "", topic.String(), false, false, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	return nil
}

// Close closes the publisher channel.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}

	return p.ch.Close()
}
