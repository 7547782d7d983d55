// internal/middleware/ratelimit.go
//
// Per-client token-bucket rate limiting.  Each client IP gets its own
// bucket; the set of buckets is bounded by an LRU so hostile address
// churn cannot grow memory without limit.
package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/yanizio/authd/internal/cache"
	"github.com/yanizio/authd/internal/metrics"
)

// maxClients bounds the limiter LRU.  Evicted clients simply start over
// with a fresh bucket on their next request.
const maxClients = 4096

// RateLimit allows ratePerSecond sustained requests per client with the
// given burst.  Non-positive values fall back to a minimal limiter rather
// than panicking.
func RateLimit(ratePerSecond float64, burst int) func(http.Handler) http.Handler {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}

	var (
		mu      sync.Mutex
		buckets = cache.New(maxClients)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if v, ok := buckets.Get(key); ok {
			return v.(*rate.Limiter)
		}
		l := rate.NewLimiter(rate.Limit(ratePerSecond), burst)
		buckets.Add(key, l)
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiterFor(clientKey(r)).Allow() {
				metrics.RateLimitedTotal.Inc()
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"code":    http.StatusTooManyRequests,
					"message": "rate limit exceeded, retry shortly",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey buckets by remote IP; RealIP middleware upstream rewrites
// RemoteAddr from X-Forwarded-For when behind a proxy.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
