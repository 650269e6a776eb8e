package model

import "time"

// EmailPayload carries everything a template needs to build one email.
// It is built inside a handler and discarded after sending.
type EmailPayload struct {
	Subject         string
	Message         string
	FirstName       string
	LastName        string
	To              string
	TaskTitle       string
	TaskDescription string
	TaskDueDate     *time.Time
}
