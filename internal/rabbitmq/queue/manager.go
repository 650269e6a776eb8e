package queue

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/model"
)

type queueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

// DeclareTopics declares one queue per known topic.
// Queues are non-durable, non-exclusive and not auto-deleted.
func DeclareTopics(ch queueDeclarer) error {
	for _, topic := range model.Topics() {
		if _, err := ch.QueueDeclare(topic.String(), false, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", topic, err)
		}
	}

	return nil
}

// Manager owns the broker connection. The control channel is used for
// declarations; publishing and every consumer get channels of their own.
type Manager struct {
	conn *amqp.Connection

	mu        sync.RWMutex
	ch        *amqp.Channel
	publisher *Publisher
}

// Connect dials the broker, declares the topic queues and opens the publisher channel.
// Any failure is returned to the caller; there is no degraded mode without messaging.
func Connect(url string, strategy retry.Strategy) (*Manager, error) {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	var conn *amqp.Connection
	err := retry.Do(func() error {
		c, err := amqp.Dial(url)
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to dial rabbitmq")
			return err
		}

		conn = c
		return nil
	}, strategy)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open control channel: %w", err)
	}

	if err := DeclareTopics(ch); err != nil {
		_ = conn.Close()
		return nil, err
	}

	pubCh, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open publisher channel: %w", err)
	}

	return &Manager{
		conn:      conn,
		ch:        ch,
		publisher: NewPublisher(pubCh),
	}, nil
}

// GetChannel returns the live control channel.
func (m *Manager) GetChannel() (*amqp.Channel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ch == nil || m.ch.IsClosed() {
		return nil, ErrUninitialized
	}

	return m.ch, nil
}

// Publisher returns the shared publisher.
func (m *Manager) Publisher() *Publisher {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.publisher
}

// PublishMessage publishes n on topic through the shared publisher.
func (m *Manager) PublishMessage(ctx context.Context, n model.Notification, topic model.Topic) error {
	p := m.Publisher()
	if p == nil {
		return ErrUninitialized
	}

	return p.Publish(ctx, n, topic)
}

// NewConsumer returns a Consumer that opens a fresh channel for every topic it consumes.
func (m *Manager) NewConsumer(tag string, prefetch int) *Consumer {
	return NewConsumer(func() (consumeChannel, error) {
		m.mu.RLock()
		conn := m.conn
		m.mu.RUnlock()

		if conn == nil || conn.IsClosed() {
			return nil, ErrUninitialized
		}

		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}

		return ch, nil
	}, tag, prefetch)
}

// Close releases the publisher channel, the control channel and the connection.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.publisher != nil {
		if err := m.publisher.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close publisher channel")
		}
		m.publisher = nil
	}

	if m.ch != nil && !m.ch.IsClosed() {
		if err := m.ch.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
		}
	}
	m.ch = nil

	if m.conn == nil || m.conn.IsClosed() {
		return nil
	}

	return m.conn.Close()
}
