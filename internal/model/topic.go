package model

import (
	"errors"
	"fmt"
)

// ErrUnknownTopic is returned for a topic outside of the known set.
var ErrUnknownTopic = errors.New("unknown topic")

// Topic names a broker queue and doubles as the notification type tag.
type Topic string

const (
	TopicGeneral  Topic = "general-notification"
	TopicTask     Topic = "task-notification"
	TopicReminder Topic = "reminder"
)

// Topics returns every known topic in declaration order.
func Topics() []Topic {
	return []Topic{TopicGeneral, TopicTask, TopicReminder}
}

// Valid reports whether t is one of the known topics.
func (t Topic) Valid() bool {
	switch t {
	case TopicGeneral, TopicTask, TopicReminder:
		return true
	}

	return false
}

func (t Topic) String() string {
	return string(t)
}

// ParseTopic converts a raw queue name into a Topic.
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopic, s)
	}

	return t, nil
}
