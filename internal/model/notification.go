package model

import (
	"time"
)

// Notification represents a notification record that is both stored and
// transported through the broker.
type Notification struct {
	ID        int64     `json:"id"`                // assigned on persistence
	UserID    string    `json:"user_id"`           // target user, always present
	TaskID    *int64    `json:"task_id,omitempty"` // related task, if any
	Subject   string    `json:"subject"`           // short subject line
	Message   string    `json:"message"`           // notification body text
	CreatedAt time.Time `json:"created_at"`        // set once at creation, UTC
	IsRead    bool      `json:"is_read"`           // flipped by MarkAsRead
	Type      Topic     `json:"type"`              // general-notification, task-notification or reminder
}
