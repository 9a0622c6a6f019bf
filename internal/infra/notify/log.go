package notify

import (
	"context"
	"log/slog"

	"bargain-market/internal/domain/bargain"
)

// LogDispatcher writes events to the structured log. Used when Redis is not
// configured.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, ev bargain.Event) error {
	p := NewPayload(ev)
	d.logger.InfoContext(ctx, "bargain event",
		"thread_id", p.ThreadID,
		"product_id", p.ProductID,
		"type", p.Type,
		"actor_id", p.ActorID,
		"recipient_id", p.RecipientID,
		"amount", p.Amount,
		"occurred_at", p.OccurredAt)
	return nil
}
