package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aliskhannn/task-notifier/internal/model"
)

// ErrInvalidMessage is returned when an envelope cannot be turned back into a notification.
var ErrInvalidMessage = errors.New("invalid notification message")

// NotificationMessage is the flat wire form of a notification.
// User and task are carried by id only.
type NotificationMessage struct {
	ID        int64       `json:"id"`
	UserID    string      `json:"user_id"`
	TaskID    *int64      `json:"task_id,omitempty"`
	Subject   string      `json:"subject"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
	IsRead    bool        `json:"is_read"`
	Type      model.Topic `json:"type"`
}

// NewNotificationMessage copies the transportable fields of n.
func NewNotificationMessage(n model.Notification) NotificationMessage {
	msg := NotificationMessage{
		ID:        n.ID,
		UserID:    n.UserID,
		Subject:   n.Subject,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		IsRead:    n.IsRead,
		Type:      n.Type,
	}

	if n.TaskID != nil {
		taskID := *n.TaskID
		msg.TaskID = &taskID
	}

	return msg
}

// Notification converts the message back into a notification record.
func (m NotificationMessage) Notification() model.Notification {
	return model.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		TaskID:    m.TaskID,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		IsRead:    m.IsRead,
		Type:      m.Type,
	}
}

// Encode serializes n into its wire envelope.
func Encode(n model.Notification) ([]byte, error) {
	body, err := json.Marshal(NewNotificationMessage(n))
	if err != nil {
		return nil, fmt.Errorf("marshal message: %w", err)
	}

	return body, nil
}

// Decode parses an envelope and checks the fields every handler relies on.
// All decode failures are permanent.
func Decode(body []byte) (NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return NotificationMessage{}, Permanent(fmt.Errorf("%w: %v", ErrInvalidMessage, err))
	}

	if msg.UserID == "" {
		return NotificationMessage{}, Permanent(fmt.Errorf("%w: missing user_id", ErrInvalidMessage))
	}

	if !msg.Type.Valid() {
		return NotificationMessage{}, Permanent(fmt.Errorf("%w: type %q", ErrInvalidMessage, msg.Type))
	}

	return msg, nil
}
