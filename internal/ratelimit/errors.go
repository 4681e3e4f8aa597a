package ratelimit

import "errors"

var (
	// ErrInvalidPolicy is returned by [ParsePolicy] for malformed input.
	ErrInvalidPolicy = errors.New("invalid rate limit policy")
	// ErrUnknownStrategy is returned by [New] for an unsupported strategy.
	ErrUnknownStrategy = errors.New("unknown rate limit strategy")
	// ErrRedisUnavailable is returned when the Redis store cannot be reached
	// at startup.
	ErrRedisUnavailable = errors.New("rate limit redis store unavailable")
	// ErrUnexpectedScriptResult is returned when the window script answers
	// with an unexpected shape.
	ErrUnexpectedScriptResult = errors.New("unexpected rate limit script result")
)
