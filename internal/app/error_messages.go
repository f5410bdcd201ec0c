// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// studytrack services, the hosted backend adapter and the emulator.
//
// All Msg* constants are human-readable message strings returned to the
// dashboard or written into emulator response bodies. Keeping them in one
// place ensures consistent wording throughout the application.
package app

const (
	// MsgInvalidDataProvided is returned when input fails validation
	// (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUsernameTooShort is returned when a username has fewer than two
	// characters.
	MsgUsernameTooShort = "username must be at least 2 characters"

	// MsgPasswordTooShort is returned when a password has fewer than six
	// characters.
	MsgPasswordTooShort = "password must be at least 6 characters"

	// MsgUsernameTaken is returned when a sign-up or rename collides with an
	// existing username.
	MsgUsernameTaken = "username already exists"

	// MsgInvalidCredentials is returned for both an unknown username and a
	// wrong password.
	MsgInvalidCredentials = "invalid username or password"

	// MsgAccountNotFound is returned when an account id is not in the
	// directory.
	MsgAccountNotFound = "account not found"

	// MsgNotAuthenticated is returned by operations that require a session.
	MsgNotAuthenticated = "not authenticated"

	// MsgSessionExpired is returned when the persisted session is past its
	// expiry.
	MsgSessionExpired = "session expired, please log in again"

	// MsgWrongPassword is returned when the current password does not match
	// during a password change.
	MsgWrongPassword = "current password is incorrect"

	// MsgGroupNotFound is returned when no study group has the given code.
	MsgGroupNotFound = "study group not found"

	// MsgNotGroupOwner is returned when a non-owner tries to delete a group.
	MsgNotGroupOwner = "only the group owner can do this"

	// MsgItemNotFound is returned when a collection item id is unknown.
	MsgItemNotFound = "item not found"

	// MsgInvalidDate is returned when a countdown date is malformed or in the
	// past.
	MsgInvalidDate = "date must be a valid future date"

	// MsgDuplicateSubject is returned when a subject name is already used by
	// the account.
	MsgDuplicateSubject = "a subject with this name already exists"

	// MsgInvalidDuration is returned for a study session shorter than a
	// minute after rounding.
	MsgInvalidDuration = "session is too short to be logged"

	// MsgTimerRunning and MsgTimerNotRunning guard focus timer transitions.
	MsgTimerRunning    = "a focus session is already running"
	MsgTimerNotRunning = "no focus session is running"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the user cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnknownBackendError is the fallback for unmapped backend codes.
	MsgUnknownBackendError = "something went wrong, please try again"
)

// Backend error codes reported by the hosted identity provider and
// document database.
const (
	CodeEmailInUse         = "auth/email-already-in-use"
	CodeInvalidEmail       = "auth/invalid-email"
	CodeWeakPassword       = "auth/weak-password"
	CodeUserNotFound       = "auth/user-not-found"
	CodeWrongPassword      = "auth/wrong-password"
	CodeInvalidCredential  = "auth/invalid-credential"
	CodeTooManyRequests    = "auth/too-many-requests"
	CodeNetworkFailed      = "auth/network-request-failed"
	CodePermissionDenied   = "permission-denied"
	CodeUnauthenticated    = "unauthenticated"
	CodeNotFound           = "not-found"
	CodeAlreadyExists      = "already-exists"
	CodeInvalidArgument    = "invalid-argument"
	CodeResourceExhausted  = "resource-exhausted"
	CodeUnavailable        = "unavailable"
	CodeDeadlineExceeded   = "deadline-exceeded"
	CodeFailedPrecondition = "failed-precondition"
	CodeInternal           = "internal"
)

var backendMessages = map[string]string{
	CodeEmailInUse:         MsgUsernameTaken,
	CodeInvalidEmail:       "invalid username",
	CodeWeakPassword:       MsgPasswordTooShort,
	CodeUserNotFound:       MsgInvalidCredentials,
	CodeWrongPassword:      MsgInvalidCredentials,
	CodeInvalidCredential:  MsgInvalidCredentials,
	CodeTooManyRequests:    "too many attempts, please wait and try again",
	CodeNetworkFailed:      "network error, check your connection",
	CodePermissionDenied:   "you do not have permission to do this",
	CodeUnauthenticated:    "please sign in again",
	CodeNotFound:           "the requested data was not found",
	CodeAlreadyExists:      "this item already exists",
	CodeInvalidArgument:    MsgInvalidDataProvided,
	CodeResourceExhausted:  "quota exceeded, please try again later",
	CodeUnavailable:        "service temporarily unavailable, please try again",
	CodeDeadlineExceeded:   "the request timed out, please try again",
	CodeFailedPrecondition: "the operation cannot be performed right now",
	CodeInternal:           MsgInternalServerError,
}

// BackendMessage translates a backend error code into a user-facing
// message. Unknown codes map to [MsgUnknownBackendError].
func BackendMessage(code string) string {
	if msg, ok := backendMessages[code]; ok {
		return msg
	}
	return MsgUnknownBackendError
}
