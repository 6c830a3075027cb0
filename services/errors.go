package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures returned by the order service
type ErrorKind int

const (
	// KindStoreFailure covers any error raised by the database
	KindStoreFailure ErrorKind = iota
	// KindInvalidRequest means a required field was missing or malformed
	KindInvalidRequest
	// KindNotFound means the referenced order does not exist
	KindNotFound
)

// OrderError is returned by every OrderService operation that fails
type OrderError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func invalidRequest(message string) error {
	return &OrderError{Kind: KindInvalidRequest, Message: message}
}

func notFound(message string) error {
	return &OrderError{Kind: KindNotFound, Message: message}
}

func storeFailure(op string, err error) error {
	return &OrderError{Kind: KindStoreFailure, Message: op, Err: err}
}

// KindOf reports the kind of err. Errors that did not come from the
// service are treated as store failures.
func KindOf(err error) ErrorKind {
	var orderErr *OrderError
	if errors.As(err, &orderErr) {
		return orderErr.Kind
	}
	return KindStoreFailure
}

// MessageOf returns the client-safe message of err
func MessageOf(err error) string {
	var orderErr *OrderError
	if errors.As(err, &orderErr) && orderErr.Kind != KindStoreFailure {
		return orderErr.Message
	}
	return "Internal server error"
}
