package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tora-app.io/tora/internal/pkg/logger"
)

// DefaultTokenRetention is how long an unused device token stays active.
// Push providers expire tokens on their side anyway; this keeps the
// multicast target lists from accumulating dead devices.
const DefaultTokenRetention = 90 * 24 * time.Hour

// TokenCleanupArgs is the periodic stale device-token deactivation job.
type TokenCleanupArgs struct{}

// Kind returns the job kind identifier for token cleanup.
func (TokenCleanupArgs) Kind() string { return "device_token_cleanup" }

// InsertOpts ensures at most one cleanup job per day.
func (TokenCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// StaleTokenDeactivator deactivates tokens unused since a cutoff.
type StaleTokenDeactivator interface {
	DeactivateStale(ctx context.Context, cutoff time.Time) (int, error)
}

// TokenCleanupWorker deactivates device tokens unused for longer than the
// retention period. Deactivation, not deletion; re-registration revives
// the row.
type TokenCleanupWorker struct {
	river.WorkerDefaults[TokenCleanupArgs]
	registry  StaleTokenDeactivator
	retention time.Duration
}

// NewTokenCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the 90-day default.
func NewTokenCleanupWorker(registry StaleTokenDeactivator, retention time.Duration) *TokenCleanupWorker {
	if retention <= 0 {
		retention = DefaultTokenRetention
	}
	return &TokenCleanupWorker{registry: registry, retention: retention}
}

// Work deactivates stale tokens.
func (w *TokenCleanupWorker) Work(ctx context.Context, _ *river.Job[TokenCleanupArgs]) error {
	if w == nil || w.registry == nil {
		return fmt.Errorf("token cleanup worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deactivated, err := w.registry.DeactivateStale(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("deactivate stale tokens before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("Device token cleanup completed",
		zap.Int("deactivated", deactivated),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
