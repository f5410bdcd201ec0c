package store

import "errors"

// Sentinel errors returned by the key-value store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyKey is returned when a write targets an empty key.
	ErrEmptyKey = errors.New("empty key")

	// ErrInvalidValue is returned when a value cannot be encoded as JSON or
	// a raw document is not valid JSON.
	ErrInvalidValue = errors.New("value is not valid json")

	// ErrUnknownNamespace is returned for a namespace other than
	// [NamespacePrivate] and [NamespaceShared].
	ErrUnknownNamespace = errors.New("unknown namespace")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
