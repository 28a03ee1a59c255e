package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so registration ordering and cutoff
// windows are deterministic under test.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Until(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
