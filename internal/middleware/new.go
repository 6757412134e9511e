package middleware

import (
	"smart-scheduler/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers: owner scoping and
// per-source rate limiting.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
