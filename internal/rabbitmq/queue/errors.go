package queue

import (
	"errors"
)

var (
	// ErrUninitialized is returned when the broker channel is not open.
	ErrUninitialized = errors.New("rabbitmq channel is not initialized")

	// ErrDeliveriesClosed is returned when the broker closes a consumer's delivery stream.
	ErrDeliveriesClosed = errors.New("rabbitmq delivery channel closed")
)

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth redelivering. The consumer drops such messages.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

// IsPermanent reports whether err, or anything it wraps, was marked with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}
