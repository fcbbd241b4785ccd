package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tora-app.io/tora/internal/pkg/logger"
)

// dispatchBatch sends to each contact sequentially with a fixed delay
// between consecutive sends. Per-recipient failures are counted, logged,
// and never abort the batch; a best-effort fan-out must reach the
// remaining contacts.
func dispatchBatch(
	ctx context.Context,
	channel string,
	contacts []Contact,
	delay time.Duration,
	clock Clock,
	send func(ctx context.Context, c Contact) error,
) BatchResult {
	var res BatchResult
	for i, contact := range contacts {
		if i > 0 {
			if err := clock.Sleep(ctx, delay); err != nil {
				// Shutdown mid-batch. Remaining contacts count as failed
				// so the caller's totals stay honest.
				res.Failed += len(contacts) - i
				logger.Warn("Batch dispatch interrupted",
					zap.String("channel", channel),
					zap.Int("remaining", len(contacts)-i),
					zap.Error(err),
				)
				return res
			}
		}
		if err := send(ctx, contact); err != nil {
			res.Failed++
			logger.Error("Dispatch to contact failed",
				zap.String("channel", channel),
				zap.String("contact_id", contact.ID),
				zap.Error(err),
			)
			continue
		}
		res.Sent++
	}
	if res.Failed > 0 {
		logger.Warn("Batch dispatch completed with failures",
			zap.String("channel", channel),
			zap.Int("attempted", res.Total()),
			zap.Int("failed", res.Failed),
		)
	}
	return res
}
