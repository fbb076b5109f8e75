package ratelimit

import "errors"

var (
	// ErrRateLimited marks an error as a quota or rate-limit condition.
	// Wrap it to make a failure retryable by Execute.
	ErrRateLimited = errors.New("rate limit exceeded")
)
