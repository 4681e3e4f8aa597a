package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/items-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to url, installs the metrics hook and pings once.
func NewRedisClient(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	rdb.AddHook(redisMetricsHook{})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err = rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	log.Info().Str("func", "NewRedisClient").Str("addr", opts.Addr).Msg("connected to redis")
	return rdb, nil
}
