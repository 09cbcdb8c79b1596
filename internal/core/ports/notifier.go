package ports

import (
	"context"
	"time"
)

// Notifier is the transient notification sink. Notify is fire-and-forget:
// no acknowledgement, and failures must never surface to the caller.
type Notifier interface {
	Notify(ctx context.Context, message string, duration time.Duration)
}
