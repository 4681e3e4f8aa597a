// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/MKhiriev/items-api/internal/metrics"
	"github.com/MKhiriev/items-api/internal/utils"
	"github.com/MKhiriev/items-api/internal/workers"
	"github.com/MKhiriev/items-api/models"
)

const janitorInterval = time.Minute

// Limiter is the rate limiting middleware. A nil store disables it.
type Limiter struct {
	store   Store
	policy  Policy
	keyFunc KeyFunc

	logger *logger.Logger
}

// New builds the limiter described by cfg. The Redis store is used when
// redisCfg points at a Redis server, the in-process stores otherwise.
func New(ctx context.Context, cfg config.RateLimit, redisCfg config.Redis, log *logger.Logger) (*Limiter, error) {
	if !cfg.Enabled {
		log.Info().Str("func", "ratelimit.New").Msg("rate limiting is disabled")
		return &Limiter{logger: log}, nil
	}

	policy, err := ParsePolicy(cfg.Guest)
	if err != nil {
		return nil, err
	}

	var store Store
	switch {
	case cfg.Strategy == config.StrategyTokenBucket:
		store = NewTokenBucketStore(nil)
	case cfg.Strategy == config.StrategyMovingWindow && redisCfg.IsMemory():
		store = NewMovingWindowStore()
	case cfg.Strategy == config.StrategyMovingWindow:
		rdb, err := NewRedisClient(ctx, redisCfg.URL, log)
		if err != nil {
			return nil, err
		}
		store = NewRedisWindowStore(rdb)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}

	log.Info().
		Str("func", "ratelimit.New").
		Str("strategy", cfg.Strategy).
		Stringer("policy", policy).
		Msg("rate limiting is enabled")

	return NewLimiter(store, policy, ClientAddrKeyFunc(cfg.TrustForwardedFor), log), nil
}

func NewLimiter(store Store, policy Policy, keyFunc KeyFunc, log *logger.Logger) *Limiter {
	if keyFunc == nil {
		keyFunc = ClientAddrKeyFunc(false)
	}
	return &Limiter{
		store:   store,
		policy:  policy,
		keyFunc: keyFunc,
		logger:  log,
	}
}

// Enabled reports whether requests are checked at all.
func (l *Limiter) Enabled() bool {
	return l.store != nil
}

// Handler checks every request against the policy before calling next.
// The key is the client address plus the method and matched route pattern,
// so each endpoint has its own quota.
func (l *Limiter) Handler(next http.Handler) http.Handler {
	if !l.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.keyFunc(r) + "|" + endpointOf(r)

		decision, err := l.store.Hit(r.Context(), key, l.policy)
		if err != nil {
			metrics.RateLimitDecisions.WithLabelValues(metrics.DecisionError).Inc()
			logger.FromRequest(r).Err(err).
				Str("func", "*Limiter.Handler").
				Str("key", key).
				Msg("rate limit store failed, letting request through")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.policy.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			metrics.RateLimitDecisions.WithLabelValues(metrics.DecisionRejected).Inc()
			logger.FromRequest(r).Warn().
				Str("func", "*Limiter.Handler").
				Str("key", key).
				Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(decision.RetryAfter)))
			_, _ = utils.WriteJSON(w, models.RateLimitResponse{
				Error: "Rate limit exceeded: " + l.policy.String(),
			}, http.StatusTooManyRequests)
			return
		}

		metrics.RateLimitDecisions.WithLabelValues(metrics.DecisionAllowed).Inc()
		next.ServeHTTP(w, r)
	})
}

// Janitors returns the housekeeping workers of the in-process stores.
func (l *Limiter) Janitors() []workers.Worker {
	type cleaner interface{ Cleanup() }

	if c, ok := l.store.(cleaner); ok {
		return []workers.Worker{workers.NewTicker(janitorInterval, c.Cleanup)}
	}
	return nil
}

// Close releases the store (the Redis connection, if any).
func (l *Limiter) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

// retryAfterSeconds rounds d up to whole seconds, never below one.
func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
