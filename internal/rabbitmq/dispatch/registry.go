// Package dispatch routes consumed messages to the handler registered for their topic.
package dispatch

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/model"
)

// HandlerFunc handles the body of one message.
type HandlerFunc func(ctx context.Context, body []byte) error

// Registry maps each known topic to its handler. It is filled at startup and
// read-only afterwards.
type Registry struct {
	handlers map[model.Topic]HandlerFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[model.Topic]HandlerFunc)}
}

// Register binds h to topic. Only known topics can be registered, once each.
func (r *Registry) Register(topic model.Topic, h HandlerFunc) error {
	if !topic.Valid() {
		return fmt.Errorf("register handler: %w: %q", model.ErrUnknownTopic, topic)
	}

	if h == nil {
		return fmt.Errorf("register handler: nil handler for %s", topic)
	}

	if _, ok := r.handlers[topic]; ok {
		return fmt.Errorf("register handler: %s already registered", topic)
	}

	r.handlers[topic] = h
	return nil
}

// Topics returns the registered topics in declaration order.
func (r *Registry) Topics() []model.Topic {
	topics := make([]model.Topic, 0, len(r.handlers))
	for _, t := range model.Topics() {
		if _, ok := r.handlers[t]; ok {
			topics = append(topics, t)
		}
	}

	return topics
}

// Dispatch invokes the handler registered for topic.
// An unknown or unregistered topic is logged and reported as model.ErrUnknownTopic
// without invoking any handler.
func (r *Registry) Dispatch(ctx context.Context, topic string, text string) error {
	t, err := model.ParseTopic(topic)
	if err != nil {
		zlog.Logger.Warn().Str("topic", topic).Msg("received message on unknown topic")
		return err
	}

	h, ok := r.handlers[t]
	if !ok {
		zlog.Logger.Warn().Str("topic", topic).Msg("no handler registered for topic")
		return fmt.Errorf("%w: no handler for %s", model.ErrUnknownTopic, t)
	}

	return h(ctx, []byte(text))
}
