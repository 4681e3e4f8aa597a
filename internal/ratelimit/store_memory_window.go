package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/metrics"
)

// MovingWindowStore is an in-process sliding log: every allowed hit is kept
// until it falls out of the window.
type MovingWindowStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

type windowEntry struct {
	hits    []time.Time
	expires time.Time
}

type MemoryOption func(*MovingWindowStore)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MovingWindowStore) { s.now = now }
}

func NewMovingWindowStore(opts ...MemoryOption) *MovingWindowStore {
	s := &MovingWindowStore{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hit implements [Store].
func (s *MovingWindowStore) Hit(_ context.Context, key string, policy Policy) (Decision, error) {
	now := s.now()
	period := policy.Period()
	cutoff := now.Add(-period)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		entry = &windowEntry{}
		s.entries[key] = entry
		metrics.RateLimitTrackedKeys.WithLabelValues(config.StrategyMovingWindow).Set(float64(len(s.entries)))
	}

	// hits are appended in time order, so the expired ones form a prefix
	i := 0
	for i < len(entry.hits) && !entry.hits[i].After(cutoff) {
		i++
	}
	entry.hits = entry.hits[i:]

	if len(entry.hits) >= policy.Limit {
		return Decision{
			Allowed:    false,
			RetryAfter: entry.hits[0].Add(period).Sub(now),
		}, nil
	}

	entry.hits = append(entry.hits, now)
	entry.expires = now.Add(period)

	return Decision{
		Allowed:   true,
		Remaining: policy.Limit - len(entry.hits),
	}, nil
}

// Cleanup drops keys whose newest hit has left its window.
func (s *MovingWindowStore) Cleanup() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if !entry.expires.After(now) {
			delete(s.entries, key)
		}
	}
	metrics.RateLimitTrackedKeys.WithLabelValues(config.StrategyMovingWindow).Set(float64(len(s.entries)))
}

// Len returns the number of tracked keys.
func (s *MovingWindowStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MovingWindowStore) Close() error {
	return nil
}
