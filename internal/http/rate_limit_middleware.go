package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/allisson/tokencrypt/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTTL         = time.Hour
)

// ipRateLimiter holds one token bucket per client IP. Buckets idle for longer than
// limiterIdleTTL are dropped by a background sweep that runs until Close.
type ipRateLimiter struct {
	limiters sync.Map // client IP -> *limiterEntry
	rps      float64
	burst    int
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func newIPRateLimiter(rps float64, burst int, logger *slog.Logger) *ipRateLimiter {
	ctx, cancel := context.WithCancel(context.Background())
	l := &ipRateLimiter{
		rps:    rps,
		burst:  burst,
		logger: logger,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go l.cleanupStale(ctx, limiterCleanupInterval)

	return l
}

// Middleware rejects requests over the per-IP budget with 429 and a Retry-After header.
func (l *ipRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := l.get(clientIP)

		if limiter.Allow() {
			c.Next()
			return
		}

		reservation := limiter.Reserve()
		retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
		reservation.Cancel()

		l.logger.Debug("rate limit exceeded",
			slog.String("client_ip", clientIP),
			slog.Int("retry_after", retryAfter))

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
			Error:   "rate_limit_exceeded",
			Message: "Too many requests from this IP. Please retry after the specified delay.",
		})
	}
}

// Close stops the background sweep and waits for it to exit.
func (l *ipRateLimiter) Close() {
	l.cancel()
	<-l.done
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	now := time.Now()
	if val, ok := l.limiters.Load(ip); ok {
		entry := val.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(l.rps), l.burst),
		lastAccess: now,
	}
	actual, _ := l.limiters.LoadOrStore(ip, entry)
	return actual.(*limiterEntry).limiter
}

func (l *ipRateLimiter) cleanupStale(ctx context.Context, interval time.Duration) {
	defer close(l.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep(time.Now().Add(-limiterIdleTTL))
		}
	}
}

// sweep drops every limiter last used before threshold.
func (l *ipRateLimiter) sweep(threshold time.Time) {
	l.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		stale := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if stale {
			l.limiters.Delete(key)
		}
		return true
	})
}
