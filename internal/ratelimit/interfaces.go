package ratelimit

import (
	"context"
	"time"
)

// Decision is the verdict of a single [Store.Hit].
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Store records a hit for key and decides whether it fits the policy.
type Store interface {
	Hit(ctx context.Context, key string, policy Policy) (Decision, error)
	Close() error
}
