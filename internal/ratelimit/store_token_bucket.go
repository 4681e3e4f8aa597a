package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/metrics"
	"golang.org/x/time/rate"
)

// TokenBucketStore keeps one [rate.Limiter] per key with a burst of
// policy.Limit refilling at policy.Limit per policy.Period().
type TokenBucketStore struct {
	mu      sync.Mutex
	entries map[string]*bucketEntry
	now     func() time.Time
}

type bucketEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
	refill   time.Duration
}

func NewTokenBucketStore(now func() time.Time) *TokenBucketStore {
	if now == nil {
		now = time.Now
	}
	return &TokenBucketStore{
		entries: make(map[string]*bucketEntry),
		now:     now,
	}
}

// Hit implements [Store].
func (s *TokenBucketStore) Hit(_ context.Context, key string, policy Policy) (Decision, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		every := policy.Period() / time.Duration(policy.Limit)
		entry = &bucketEntry{
			lim:    rate.NewLimiter(rate.Every(every), policy.Limit),
			refill: policy.Period(),
		}
		s.entries[key] = entry
		metrics.RateLimitTrackedKeys.WithLabelValues(config.StrategyTokenBucket).Set(float64(len(s.entries)))
	}
	entry.lastSeen = now

	reservation := entry.lim.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}, nil
	}

	return Decision{
		Allowed:   true,
		Remaining: int(entry.lim.TokensAt(now)),
	}, nil
}

// Cleanup drops buckets idle long enough to have refilled completely.
func (s *TokenBucketStore) Cleanup() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if now.Sub(entry.lastSeen) >= entry.refill {
			delete(s.entries, key)
		}
	}
	metrics.RateLimitTrackedKeys.WithLabelValues(config.StrategyTokenBucket).Set(float64(len(s.entries)))
}

// Len returns the number of tracked keys.
func (s *TokenBucketStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *TokenBucketStore) Close() error {
	return nil
}
