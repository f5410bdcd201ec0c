// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/validators"
)

var messages = []struct {
	err error
	msg string
}{
	{ErrInvalidUsername, app.MsgInvalidDataProvided},
	{ErrDuplicateUsername, app.MsgUsernameTaken},
	{ErrUsernameTaken, app.MsgUsernameTaken},
	{ErrAccountNotFound, app.MsgAccountNotFound},
	{ErrUsernameTooShort, app.MsgUsernameTooShort},
	{ErrPasswordTooShort, app.MsgPasswordTooShort},
	{ErrInvalidCredentials, app.MsgInvalidCredentials},
	{ErrNotAuthenticated, app.MsgNotAuthenticated},
	{ErrWrongPassword, app.MsgWrongPassword},
	{ErrItemNotFound, app.MsgItemNotFound},
	{ErrUnknownSubject, app.MsgItemNotFound},
	{ErrInvalidDate, app.MsgInvalidDate},
	{ErrDuplicateSubject, app.MsgDuplicateSubject},
	{ErrInvalidDuration, app.MsgInvalidDuration},
	{ErrTimerRunning, app.MsgTimerRunning},
	{ErrTimerNotRunning, app.MsgTimerNotRunning},
	{ErrNoActiveIdentity, app.MsgNotAuthenticated},
	{ErrInvalidData, app.MsgInvalidDataProvided},
	{ErrUnknownRating, app.MsgInvalidDataProvided},
	{ErrGroupNameRequired, app.MsgInvalidDataProvided},
	{ErrMessageRequired, app.MsgInvalidDataProvided},
	{validators.ErrInvalidData, app.MsgInvalidDataProvided},
}

// MessageFor returns the dashboard message for err. Backend failures keep
// their own message; unknown errors map to a generic one.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}

	var invalid *validators.ValidationError
	if errors.As(err, &invalid) && len(invalid.Fields) > 0 {
		return invalid.Fields[0].Message
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return app.MsgInternalServerError
}
