// Package ratelimit enforces per-client, per-endpoint request quotas.
//
// A [Policy] such as "6/minute" is parsed once at startup. The [Limiter]
// middleware derives a key from the client address, the method and the
// matched chi route pattern and asks a [Store] whether the request fits the quota. Three stores
// are provided:
//   - [MovingWindowStore]: in-process sliding log of hit timestamps.
//   - [RedisWindowStore]: the same sliding log kept in a Redis sorted set and
//     updated atomically by a Lua script, shared by every process.
//   - [TokenBucketStore]: in-process golang.org/x/time/rate bucket per key.
//
// Rejected requests get 429, a Retry-After header and a JSON body. Store
// failures are logged and the request is let through.
package ratelimit
