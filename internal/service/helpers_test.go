package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/studytrack/internal/config"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/store"
	"github.com/MKhiriev/studytrack/internal/utils"
	"github.com/stretchr/testify/require"
)

// testNow is a Tuesday.
var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

// seqIDs generates predictable ids: prefix1, prefix2, ...
type seqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s%d", s.prefix, s.n)
}

func newTestKV(t *testing.T) store.KeyValueStore {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:", Driver: config.DriverModernc}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	kv := store.NewKeyValueStore(db, logger.Nop())
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newTestClock() *utils.ManualClock {
	return utils.NewManualClock(testNow)
}

func testAppConfig() config.ClientApp {
	return config.ClientApp{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "studytrack-test",
		SessionDuration: 30 * 24 * time.Hour,
		Mode:            config.ModeLocal,
	}
}

// newTestStore builds a guest store over a real KV. It is not initialised.
func newTestStore(t *testing.T, kv store.KeyValueStore, clock utils.Clock, backend StateBackend, leaderboard Leaderboard) *Store {
	t.Helper()
	return NewStore(StoreDeps{
		KV:          kv,
		Backend:     backend,
		Leaderboard: leaderboard,
		IDs:         &seqIDs{prefix: "id-"},
		Clock:       clock,
		Logger:      logger.Nop(),
	})
}
