package mcp

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/lexa-cli/internal/logger"
)

// RateLimitConfig holds admission limits for the HTTP transport.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// Burst is the maximum burst size.
	Burst int
}

// DefaultRateLimit admits a steady stream of assistant calls with room for
// the bursts a chat turn produces.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 20, Burst: 40}

// rateLimiter rejects requests once the token bucket is empty.
type rateLimiter struct {
	limiter    *rate.Limiter
	retryAfter int
}

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRateLimit.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimit.Burst
	}

	retryAfter := int(1 / cfg.RequestsPerSecond)
	if retryAfter < 1 {
		retryAfter = 1
	}
	return &rateLimiter{
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		retryAfter: retryAfter,
	}
}

// Middleware answers 429 with Retry-After when no token is available.
func (r *rateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !r.limiter.Allow() {
			logger.Debug("mcp: rate limited %s %s", req.Method, req.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(r.retryAfter))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, req)
	})
}
