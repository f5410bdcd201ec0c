package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyAddress   = errors.New("empty address")
	ErrUnknownDataKey = errors.New("state key has no remote layout")
	ErrEmptyUserID    = errors.New("empty user id")
)

// BackendError is a failed backend call classified by the hosted backend's
// error code.
type BackendError struct {
	// Status is the HTTP status, or 0 for network failures.
	Status int
	// Code is the backend error code (see the Code* constants in package app).
	Code string
	// Message is the raw message reported by the backend.
	Message string
}

func (e *BackendError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend %d %s: %s", e.Status, e.Code, e.Message)
}

// CodeOf returns the backend code carried by err, or "" when err is not a
// [BackendError].
func CodeOf(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
