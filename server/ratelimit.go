// Per-client token bucket rate limiting.

package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// clientLimiters holds one token bucket per client IP. Buckets idle for a
// few minutes are reclaimed by a background sweep, stopped via Close.
type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	done    chan struct{}
	once    sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newClientLimiters creates a limiter set enforcing perMin requests per
// minute per client, with the given burst allowance.
func newClientLimiters(perMin float64, burst int) *clientLimiters {
	if burst <= 0 {
		burst = 1
	}
	l := &clientLimiters{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(perMin / 60),
		burst:   burst,
		done:    make(chan struct{}),
	}
	go l.sweep(time.Minute)
	return l
}

// allow reports whether the client may proceed, consuming a token if so.
func (l *clientLimiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// Close stops the background sweep. Idempotent.
func (l *clientLimiters) Close() {
	l.once.Do(func() { close(l.done) })
}

func (l *clientLimiters) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			for ip, c := range l.clients {
				if time.Since(c.lastSeen) > 3*time.Minute {
					delete(l.clients, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// middleware rejects clients that exhausted their bucket.
func (l *clientLimiters) middleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !l.allow(ip) {
				logger.Warn().Str("ip", ip).Msg("rate limit exceeded")
				writeError(w, http.StatusTooManyRequests, "too many requests, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
