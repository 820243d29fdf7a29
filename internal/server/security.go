package server

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter counts requests per client IP in fixed windows
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu          sync.Mutex
	countByIP   map[string]int
	windowStart time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		window:      window,
		now:         time.Now,
		countByIP:   make(map[string]int),
		windowStart: time.Now(),
	}
}

// Allow records a request from ip and reports whether it is within the limit
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now := l.now(); now.Sub(l.windowStart) > l.window {
		l.countByIP = make(map[string]int)
		l.windowStart = now
	}

	l.countByIP[ip]++
	if l.countByIP[ip] > l.limit {
		// Log the first rejection of each window only
		if l.countByIP[ip] == l.limit+1 {
			slog.Warn(LogMsgRateLimited, "ip", ip, "limit", l.limit, "window", l.window)
		}
		return false
	}
	return true
}

// Middleware rejects clients over the limit with 429
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the direct peer address. The diagnostics server is not meant
// to sit behind a proxy, so forwarding headers are ignored.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			// Previews are random; never serve a cached one
			w.Header().Set(HeaderCacheControl, HeaderValueNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
