// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for studytrack. The emulator logs JSON to
// stdout; the terminal client owns stdout, so it logs to a file instead.
// Services take a *Logger in their constructor, while the KV store and the
// emulator handlers pick up a scoped logger with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is the name of the client log, created next to the binary.
const ClientLogFile = "studytrack.log"

// Logger embeds zerolog.Logger and adds the studytrack helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a debug-level JSON logger on stdout tagged with role.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is NewLogger for the terminal client. Entries go to
// [ClientLogFile] beside the executable, or to stdout when that file cannot
// be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stdout
	if f, err := os.OpenFile(clientLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = f
	}
	return newLogger(out, role)
}

func clientLogPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ClientLogFile
	}
	return filepath.Join(filepath.Dir(exe), ClientLogFile)
}

// newLogger records the calling function under "func" instead of file:line.
func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver so fields added to the child stay off
// the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithAccount returns a child logger that tags every entry with accountID.
func (l *Logger) WithAccount(accountID string) *Logger {
	return &Logger{l.With().Str("account_id", accountID).Logger()}
}

// WithContext attaches the logger to ctx for FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest is FromContext over the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default logger comes back, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
