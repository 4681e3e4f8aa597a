package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/MKhiriev/items-api/internal/metrics"
	"github.com/redis/go-redis/v9"
)

const (
	opSlidingWindow = "sliding_window"
	opPipeline      = "pipeline"
)

// redisMetricsHook records limiter round trips. The sliding window script is
// reported as one operation whether it went out as EVALSHA or EVAL.
type redisMetricsHook struct{}

var _ redis.Hook = redisMetricsHook{}

func (redisMetricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			metrics.RedisConnectionErrors.Inc()
		}
		return conn, err
	}
}

func (redisMetricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		observeRedisOp(redisOpName(cmd), redisOpStatus(err), start)
		return err
	}
}

func (redisMetricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		observeRedisOp(opPipeline, redisOpStatus(err), start)
		return err
	}
}

func observeRedisOp(op, status string, start time.Time) {
	metrics.RedisOpsTotal.WithLabelValues(op, status).Inc()
	metrics.RedisOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// redisOpName maps a command to its limiter operation. Anything that is not
// the sliding window script keeps its lowercased command name.
func redisOpName(cmd redis.Cmder) string {
	name := strings.ToLower(cmd.Name())
	args := cmd.Args()
	if len(args) < 2 {
		return name
	}

	body := fmt.Sprint(args[1])
	switch name {
	case "evalsha", "evalsha_ro":
		if body == slidingWindowScript.Hash() {
			return opSlidingWindow
		}
	case "eval", "eval_ro":
		if body == slidingWindowLua {
			return opSlidingWindow
		}
	}
	return name
}

// redisOpStatus treats a missing key as success. NOSCRIPT is counted apart
// because the script runner falls back to EVAL right after it.
func redisOpStatus(err error) string {
	switch {
	case err == nil, errors.Is(err, redis.Nil):
		return metrics.StatusSuccess
	case redis.HasErrorPrefix(err, "NOSCRIPT"):
		return metrics.StatusScriptMiss
	default:
		return metrics.StatusError
	}
}
