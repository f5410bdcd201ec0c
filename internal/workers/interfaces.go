// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns immediately; the worker runs until
// ctx is cancelled or Stop is called. Stop blocks until the worker has
// exited and is a no-op for a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// LeaderboardSyncer recomputes the leaderboard entry of the active user
// from its raw state.
type LeaderboardSyncer interface {
	SyncLeaderboard(ctx context.Context) error
}
