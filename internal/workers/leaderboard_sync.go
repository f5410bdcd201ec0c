package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/studytrack/internal/logger"
)

// DefaultSyncInterval is used when a non-positive interval is configured.
const DefaultSyncInterval = 5 * time.Minute

type leaderboardSyncWorker struct {
	syncer   LeaderboardSyncer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewLeaderboardSyncWorker creates a worker that calls
// syncer.SyncLeaderboard on a ticker. Best-effort leaderboard updates that
// failed in the meantime are corrected by the next tick.
func NewLeaderboardSyncWorker(syncer LeaderboardSyncer, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &leaderboardSyncWorker{syncer: syncer, interval: interval, logger: logger}
}

// Start stops any previously running loop, then launches a goroutine that
// syncs every interval until ctx is cancelled or Stop is called.
func (w *leaderboardSyncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.syncer.SyncLeaderboard(jobCtx); err != nil {
					w.logger.Warn().Err(err).Str("func", "leaderboardSyncWorker.Start").Msg("leaderboard sync failed")
				}
			}
		}
	}()
}

func (w *leaderboardSyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
