package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/avast/retry-go"
)

var emptyShared = json.RawMessage("[]")

const (
	busyRetryAttempts = 3
	busyRetryDelay    = 50 * time.Millisecond
)

// kvStore is the SQLite-backed implementation of [KeyValueStore].
type kvStore struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueStore constructs a [KeyValueStore] over db. The schema must
// already be migrated.
func NewKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	return &kvStore{DB: db, logger: log}
}

func absent(ns Namespace) json.RawMessage {
	if ns == NamespaceShared {
		return append(json.RawMessage(nil), emptyShared...)
	}
	return nil
}

func validNamespace(ns Namespace) bool {
	return ns == NamespacePrivate || ns == NamespaceShared
}

// Get implements [KeyValueStore].
func (k *kvStore) Get(ctx context.Context, key string, ns Namespace) json.RawMessage {
	value, ok := k.read(ctx, key, ns)
	if !ok {
		return absent(ns)
	}
	return value
}

// Has implements [KeyValueStore].
func (k *kvStore) Has(ctx context.Context, key string, ns Namespace) bool {
	_, ok := k.read(ctx, key, ns)
	return ok
}

func (k *kvStore) read(ctx context.Context, key string, ns Namespace) (json.RawMessage, bool) {
	if !validNamespace(ns) {
		k.logger.Warn().Str("func", "kvStore.Get").Str("namespace", string(ns)).Msg("unknown namespace")
		return nil, false
	}

	query, args, err := buildGetQuery(key, ns)
	if err != nil {
		k.logger.Err(err).Str("func", "kvStore.Get").Str("key", key).Msg("failed to build query")
		return nil, false
	}

	var value string
	err = k.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		k.logger.Err(err).Str("func", "kvStore.Get").Str("key", key).Msg("failed to read value")
		return nil, false
	}

	if !json.Valid([]byte(value)) {
		k.logger.Warn().
			Str("func", "kvStore.Get").
			Str("key", key).
			Str("namespace", string(ns)).
			Msg("stored value is not valid json, treating as absent")
		return nil, false
	}

	return json.RawMessage(value), true
}

// Set implements [KeyValueStore]. SQLITE_BUSY and SQLITE_LOCKED failures
// are retried with exponential backoff.
func (k *kvStore) Set(ctx context.Context, key string, value any, ns Namespace) error {
	if key == "" {
		return ErrEmptyKey
	}
	if !validNamespace(ns) {
		return fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
	}

	raw, err := encodeValue(value)
	if err != nil {
		k.logger.Err(err).Str("func", "kvStore.Set").Str("key", key).Msg("failed to encode value")
		return err
	}

	query, args, err := buildUpsertQuery(key, string(raw), ns)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return k.exec(ctx, "kvStore.Set", key, query, args)
}

// Remove implements [KeyValueStore].
func (k *kvStore) Remove(ctx context.Context, key string, ns Namespace) error {
	query, args, err := buildDeleteQuery(key, ns)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return k.exec(ctx, "kvStore.Remove", key, query, args)
}

// RemovePrefix implements [KeyValueStore].
func (k *kvStore) RemovePrefix(ctx context.Context, prefix string, ns Namespace) error {
	query, args, err := buildDeletePrefixQuery(prefix, ns)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return k.exec(ctx, "kvStore.RemovePrefix", prefix, query, args)
}

// Keys implements [KeyValueStore]. Failures are logged and yield nil.
func (k *kvStore) Keys(ctx context.Context, prefix string, ns Namespace) []string {
	query, args, err := buildKeysQuery(prefix, ns)
	if err != nil {
		k.logger.Err(err).Str("func", "kvStore.Keys").Msg("failed to build query")
		return nil
	}

	rows, err := k.DB.QueryContext(ctx, query, args...)
	if err != nil {
		k.logger.Err(err).Str("func", "kvStore.Keys").Str("prefix", prefix).Msg("failed to list keys")
		return nil
	}
	defer rows.Close()

	keys := make([]string, 0, 16)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			k.logger.Err(err).Str("func", "kvStore.Keys").Msg("failed to scan key")
			return nil
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		k.logger.Err(err).Str("func", "kvStore.Keys").Msg("error occurred during rows iteration")
		return nil
	}

	return keys
}

// Close implements [KeyValueStore].
func (k *kvStore) Close() error {
	return k.DB.Close()
}

func (k *kvStore) exec(ctx context.Context, fn, key, query string, args []any) error {
	err := retry.Do(
		func() error {
			_, execErr := k.DB.ExecContext(ctx, query, args...)
			if execErr != nil && k.errorClassificator.Classify(execErr) != Retryable {
				return retry.Unrecoverable(execErr)
			}
			return execErr
		},
		retry.Context(ctx),
		retry.Attempts(busyRetryAttempts),
		retry.Delay(busyRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		k.logger.Err(err).Str("func", fn).Str("key", key).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func encodeValue(value any) (json.RawMessage, error) {
	switch v := value.(type) {
	case json.RawMessage:
		if !json.Valid(v) {
			return nil, ErrInvalidValue
		}
		return v, nil
	case []byte:
		if !json.Valid(v) {
			return nil, ErrInvalidValue
		}
		return v, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return raw, nil
}

// Load decodes the value stored under key into T. Absent or undecodable
// values yield the zero value and false.
func Load[T any](ctx context.Context, kv KeyValueStore, key string, ns Namespace) (T, bool) {
	var out T
	raw := kv.Get(ctx, key, ns)
	if len(raw) == 0 {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "store.Load").
			Str("key", key).
			Msg("stored value does not match the expected shape")
		var zero T
		return zero, false
	}
	return out, true
}
