package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"modernc.org/sqlite"
)

// ErrorClassification tells whether a failed database operation should be
// retried.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the operation may succeed on a later attempt,
	// e.g. after another connection released its lock.
	Retryable
)

// ErrorClassificator classifies database errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// primary SQLite result codes
const (
	sqliteBusy   = 5
	sqliteLocked = 6
)

// SQLiteErrorClassifier implements [ErrorClassificator] for both SQLite
// drivers. Only SQLITE_BUSY and SQLITE_LOCKED are retryable.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var moderncErr *sqlite.Error
	if errors.As(err, &moderncErr) {
		return classifyCode(moderncErr.Code() & 0xff)
	}

	var cgoErr sqlite3.Error
	if errors.As(err, &cgoErr) {
		return classifyCode(int(cgoErr.Code))
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy") {
		return Retryable
	}

	return NonRetryable
}

func classifyCode(code int) ErrorClassification {
	switch code {
	case sqliteBusy, sqliteLocked:
		return Retryable
	}
	return NonRetryable
}
