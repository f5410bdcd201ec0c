package service

import (
	"errors"

	"github.com/MKhiriev/studytrack/models"
)

// Account layer errors.
var (
	ErrInvalidUsername    = errors.New("invalid username")
	ErrDuplicateUsername  = errors.New("duplicate username")
	ErrAccountNotFound    = errors.New("account not found")
	ErrUsernameTooShort   = errors.New("username too short")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrWrongPassword      = errors.New("wrong password")
	ErrTokenCreation      = errors.New("session token creation failed")
)

// Store errors.
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidData        = errors.New("invalid data provided")
	ErrInvalidDate        = errors.New("invalid date")
	ErrDuplicateSubject   = errors.New("duplicate subject name")
	ErrInvalidDuration    = errors.New("session shorter than a minute")
	ErrUnknownRating      = errors.New("unknown review rating")
	ErrUnknownSubject     = errors.New("unknown subject")
	ErrTimerRunning       = errors.New("focus timer already running")
	ErrTimerNotRunning    = errors.New("focus timer not running")
	ErrGroupNameRequired  = errors.New("group name required")
	ErrMessageRequired    = errors.New("message text required")
	ErrNoActiveIdentity   = errors.New("no active identity")
)

// RemoteError is a failed hosted backend call. Message is the user-facing
// text of the failed envelope.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func remoteFailure(message string) error {
	return &RemoteError{Message: message}
}

// unwrap converts a backend envelope into a value and an error.
func unwrap[T any](res models.Result[T]) (T, error) {
	if !res.Success {
		var zero T
		return zero, remoteFailure(res.Message)
	}
	return res.Data, nil
}
