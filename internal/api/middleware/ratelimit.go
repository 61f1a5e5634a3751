package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"
)

// RateLimiter limits requests per client IP using a fortify token bucket
type RateLimiter struct {
	limiter    ratelimit.RateLimiter
	trustProxy bool
}

// NewRateLimiter allows requestsPerMinute per client with an equal burst.
// Forwarding headers pick the client only when trustProxy is set, i.e. the
// server sits behind a proxy that overwrites them.
func NewRateLimiter(requestsPerMinute int, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		limiter: ratelimit.New(&ratelimit.Config{
			Rate:     requestsPerMinute,
			Burst:    requestsPerMinute,
			Interval: time.Minute,
		}),
		trustProxy: trustProxy,
	}
}

// Handler rejects requests over the limit with 429
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r, rl.trustProxy)

		if !rl.limiter.Allow(r.Context(), key) {
			slog.Warn("rate limit exceeded",
				"ip", key,
				"path", r.URL.Path,
				"request_id", GetRequestID(r.Context()),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":"RATE_LIMITED","message":"too many requests, please try again later"}}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Close stops the limiter's background work
func (rl *RateLimiter) Close() error {
	return rl.limiter.Close()
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
