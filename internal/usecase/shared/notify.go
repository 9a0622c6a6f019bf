package shared

import (
	"context"

	"bargain-market/internal/domain/bargain"
)

// NotificationDispatcher is invoked after commit. Callers log its errors and
// never fail the request on them.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, ev bargain.Event) error
}
