package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) (KeyValueStore, *DB) {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:", Driver: config.DriverModernc}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	kv := NewKeyValueStore(db, logger.Nop())
	t.Cleanup(func() { _ = kv.Close() })
	return kv, db
}

type nested struct {
	Name  string           `json:"name"`
	Tags  []string         `json:"tags"`
	Stats map[string]int   `json:"stats"`
	Child *nested          `json:"child,omitempty"`
	Extra []map[string]any `json:"extra"`
}

func TestKV_RoundTripDeepEqual(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	in := nested{
		Name:  "root",
		Tags:  []string{"a", "b"},
		Stats: map[string]int{"xp": 50, "streak": 3},
		Child: &nested{Name: "leaf", Tags: []string{}, Stats: map[string]int{}},
		Extra: []map[string]any{{"k": "v"}},
	}
	require.NoError(t, kv.Set(ctx, "state/u1/user", in, NamespacePrivate))

	out, ok := Load[nested](ctx, kv, "state/u1/user", NamespacePrivate)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestKV_SetOverwrites(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", 1, NamespacePrivate))
	require.NoError(t, kv.Set(ctx, "k", 2, NamespacePrivate))

	assert.JSONEq(t, `2`, string(kv.Get(ctx, "k", NamespacePrivate)))
}

func TestKV_MissingReadsAsAbsent(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	assert.Nil(t, kv.Get(ctx, "nope", NamespacePrivate))
	assert.JSONEq(t, `[]`, string(kv.Get(ctx, "nope", NamespaceShared)))
	assert.False(t, kv.Has(ctx, "nope", NamespacePrivate))
}

func TestKV_CorruptReadsAsAbsent(t *testing.T) {
	kv, db := newTestKV(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO kv (namespace, key, value) VALUES ('private', 'bad', '{not json'), ('shared', 'bad', 'nope')`)
	require.NoError(t, err)

	assert.Nil(t, kv.Get(ctx, "bad", NamespacePrivate))
	assert.JSONEq(t, `[]`, string(kv.Get(ctx, "bad", NamespaceShared)))
	assert.False(t, kv.Has(ctx, "bad", NamespacePrivate))
}

func TestKV_NamespacesAreSeparate(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "leaderboard", []string{"private"}, NamespacePrivate))
	require.NoError(t, kv.Set(ctx, "leaderboard", []string{"shared"}, NamespaceShared))

	assert.JSONEq(t, `["private"]`, string(kv.Get(ctx, "leaderboard", NamespacePrivate)))
	assert.JSONEq(t, `["shared"]`, string(kv.Get(ctx, "leaderboard", NamespaceShared)))

	require.NoError(t, kv.Remove(ctx, "leaderboard", NamespacePrivate))
	assert.False(t, kv.Has(ctx, "leaderboard", NamespacePrivate))
	assert.True(t, kv.Has(ctx, "leaderboard", NamespaceShared))
}

func TestKV_SetRawMessage(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "raw", json.RawMessage(`{"a":[1,2]}`), NamespacePrivate))
	assert.JSONEq(t, `{"a":[1,2]}`, string(kv.Get(ctx, "raw", NamespacePrivate)))

	err := kv.Set(ctx, "raw", json.RawMessage(`{"a":`), NamespacePrivate)
	assert.ErrorIs(t, err, ErrInvalidValue)
	err = kv.Set(ctx, "raw", []byte(`nope`), NamespacePrivate)
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.JSONEq(t, `{"a":[1,2]}`, string(kv.Get(ctx, "raw", NamespacePrivate)))
}

func TestKV_SetRejectsUnencodable(t *testing.T) {
	kv, _ := newTestKV(t)

	err := kv.Set(context.Background(), "ch", make(chan int), NamespacePrivate)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestKV_SetValidatesKeyAndNamespace(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	assert.ErrorIs(t, kv.Set(ctx, "", 1, NamespacePrivate), ErrEmptyKey)
	assert.ErrorIs(t, kv.Set(ctx, "k", 1, Namespace("global")), ErrUnknownNamespace)
	assert.Nil(t, kv.Get(ctx, "k", Namespace("global")))
}

func TestKV_KeysAndRemovePrefix(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	for _, key := range []string{"state/u1/user", "state/u1/badges", "state/u10/user", "state/u2/user", "accounts"} {
		require.NoError(t, kv.Set(ctx, key, true, NamespacePrivate))
	}
	require.NoError(t, kv.Set(ctx, "state/u1/shared", true, NamespaceShared))

	assert.Equal(t, []string{"state/u1/badges", "state/u1/user"}, kv.Keys(ctx, "state/u1/", NamespacePrivate))
	assert.Len(t, kv.Keys(ctx, "", NamespacePrivate), 5)

	require.NoError(t, kv.RemovePrefix(ctx, "state/u1/", NamespacePrivate))

	assert.Empty(t, kv.Keys(ctx, "state/u1/", NamespacePrivate))
	assert.True(t, kv.Has(ctx, "state/u10/user", NamespacePrivate))
	assert.True(t, kv.Has(ctx, "state/u1/shared", NamespaceShared))
}

func TestKV_PrefixIsLiteral(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "a_b", 1, NamespacePrivate))
	require.NoError(t, kv.Set(ctx, "axb", 1, NamespacePrivate))

	assert.Equal(t, []string{"a_b"}, kv.Keys(ctx, "a_", NamespacePrivate))
}

func TestKV_RemoveMissingIsNoError(t *testing.T) {
	kv, _ := newTestKV(t)
	assert.NoError(t, kv.Remove(context.Background(), "missing", NamespaceShared))
}

func TestLoad_ShapeMismatch(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "a string", NamespacePrivate))

	out, ok := Load[[]int](ctx, kv, "k", NamespacePrivate)
	assert.False(t, ok)
	assert.Nil(t, out)
}
