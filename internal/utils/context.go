// Package utils holds small helpers shared by the client and the backend
// emulator: context values, calendar dates and clocks, JSON responses, the
// resty client, signed session tokens and identifiers.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// callerIDKey holds the authenticated uid of an emulator request.
const callerIDKey = contextKey("callerID")

// WithCallerID returns a copy of ctx carrying uid as the authenticated
// caller.
func WithCallerID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, callerIDKey, uid)
}

// CallerID returns the authenticated caller stored by [WithCallerID]. An
// empty or missing value reports false.
func CallerID(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(callerIDKey).(string)
	return uid, ok && uid != ""
}
