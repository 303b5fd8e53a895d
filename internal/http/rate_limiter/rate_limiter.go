package rate_limiter

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out one token bucket per client IP.
type Limiter struct {
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
	rejected http.Handler

	mu       sync.Mutex
	visitors map[string]*clientLimiter
	now      func() time.Time
}

// New creates a limiter allowing rps requests per second with the given burst
// for each client. Rejected requests are passed to rejected.
func New(rps float64, burst int, rejected http.Handler) *Limiter {
	return &Limiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  5 * time.Minute,
		rejected: rejected,
		visitors: make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

func (l *Limiter) GetVisitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(l.rps, l.burst)
		l.visitors[ip] = &clientLimiter{limiter, l.now()}
		return limiter
	}

	v.lastSeen = l.now()
	return v.limiter
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.GetVisitor(clientIP(r)).Allow() {
			l.rejected.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartVisitorCleanupLoop evicts idle visitors every interval until ctx is done.
func (l *Limiter) StartVisitorCleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.CleanupIdleVisitors()
		}
	}
}

func (l *Limiter) CleanupIdleVisitors() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > l.idleTTL {
			delete(l.visitors, ip)
		}
	}
}

func (l *Limiter) CleanupAllVisitors() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visitors = make(map[string]*clientLimiter)
}

func (l *Limiter) VisitorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
