package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "emulator")

	l.Info().Msg("listening")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "emulator", entry["role"])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_Stdout(t *testing.T) {
	require.NotNil(t, NewLogger("emulator"))
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("func", "Handler.batch").Logger()
	child.Info().Msg("child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "client", entry["role"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "Handler.batch")
}

func TestWithAccount_AddsAccountField(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	parent.WithAccount("acc-1").Info().Msg("scoped")
	assert.Equal(t, "acc-1", decodeEntry(t, &buf)["account_id"])

	buf.Reset()
	parent.Info().Msg("plain")
	assert.NotContains(t, decodeEntry(t, &buf), "account_id")
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("k", "v").Logger()}
	FromContext(l.WithContext(context.Background())).Info().Msg("ctx")

	assert.Equal(t, "v", decodeEntry(t, &buf)["k"])
}

func TestFromRequest(t *testing.T) {
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))

	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("req", "r1").Logger()}
	req := httptest.NewRequest(http.MethodGet, "/v1/documents/users/u1", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("request")

	assert.Equal(t, "r1", decodeEntry(t, &buf)["req"])
}

func TestClientLogPath(t *testing.T) {
	assert.Contains(t, clientLogPath(), ClientLogFile)
}
