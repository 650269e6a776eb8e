package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/task-notifier/internal/model"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakePublishChannel struct {
	closed bool
	err    error
	sent   []published
}

func (f *fakePublishChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakePublishChannel) IsClosed() bool { return f.closed }

func (f *fakePublishChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakePublishChannel{}
	p := NewPublisher(ch)

	taskID := int64(42)
	n := model.Notification{
		ID:        3,
		UserID:    "u1",
		TaskID:    &taskID,
		Subject:   "Task Assignment",
		Message:   "You were assigned",
		CreatedAt: time.Now().UTC(),
		Type:      model.TopicTask,
	}

	require.NoError(t, p.Publish(context.Background(), n, model.TopicTask))
	require.Len(t, ch.sent, 1)

	sent := ch.sent[0]
	assert.Equal(t, "", sent.exchange)
	assert.Equal(t, "task-notification", sent.key)
	assert.Equal(t, amqp.Persistent, sent.msg.DeliveryMode)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, "3", sent.msg.MessageId)

	msg, err := Decode(sent.msg.Body)
	require.NoError(t, err)
	assert.Equal(t, n.Subject, msg.Subject)
	assert.Equal(t, n.Message, msg.Message)
	assert.Equal(t, model.TopicTask, msg.Type)
}

func TestPublisher_Publish_Uninitialized(t *testing.T) {
	p := NewPublisher(&fakePublishChannel{closed: true})

	err := p.Publish(context.Background(), model.Notification{UserID: "u1", Type: model.TopicGeneral}, model.TopicGeneral)
	assert.ErrorIs(t, err, ErrUninitialized)

	err = NewPublisher(nil).Publish(context.Background(), model.Notification{UserID: "u1"}, model.TopicGeneral)
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestPublisher_Publish_UnknownTopic(t *testing.T) {
	ch := &fakePublishChannel{}
	p := NewPublisher(ch)

	err := p.Publish(context.Background(), model.Notification{UserID: "u1"}, "unknown-topic")
	assert.ErrorIs(t, err, model.ErrUnknownTopic)
	assert.Empty(t, ch.sent)
}

func TestPublisher_Publish_BrokerError(t *testing.T) {
	brokerErr := errors.New("channel/connection is not open")
	p := NewPublisher(&fakePublishChannel{err: brokerErr})

	err := p.Publish(context.Background(), model.Notification{UserID: "u1", Type: model.TopicReminder}, model.TopicReminder)
	assert.ErrorIs(t, err, brokerErr)
}
