package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// slidingWindowLua trims the window, counts what is left and records the
// hit when it fits. Returns {allowed, remaining, retry_after_ms}.
const slidingWindowLua = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)

if count < limit then
	redis.call('ZADD', key, now, member)
	redis.call('PEXPIRE', key, window)
	return {1, limit - count - 1, 0}
end

local retry = window
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if oldest[2] then
	retry = tonumber(oldest[2]) + window - now
end
return {0, 0, retry}
`

var slidingWindowScript = redis.NewScript(slidingWindowLua)

// RedisWindowStore keeps the sliding log in a Redis sorted set per key so
// every process behind the same Redis shares one quota.
type RedisWindowStore struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisWindowStore(rdb *redis.Client) *RedisWindowStore {
	return &RedisWindowStore{
		rdb: rdb,
		now: time.Now,
	}
}

// Hit implements [Store].
func (s *RedisWindowStore) Hit(ctx context.Context, key string, policy Policy) (Decision, error) {
	now := s.now().UnixMilli()
	member := fmt.Sprintf("%d-%s", now, uuid.NewString())

	result, err := slidingWindowScript.Run(ctx, s.rdb,
		[]string{redisKeyPrefix + key},
		now,
		policy.Period().Milliseconds(),
		policy.Limit,
		member,
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("sliding window script: %w", err)
	}
	if len(result) != 3 {
		return Decision{}, fmt.Errorf("%w: %v", ErrUnexpectedScriptResult, result)
	}

	return Decision{
		Allowed:    result[0] == 1,
		Remaining:  int(result[1]),
		RetryAfter: time.Duration(result[2]) * time.Millisecond,
	}, nil
}

func (s *RedisWindowStore) Close() error {
	return s.rdb.Close()
}
