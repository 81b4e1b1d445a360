package ratelimit

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"bot-gateway/internal/shared/httpx"
)

type Limiter struct{ R *redis.Client }

func New(r *redis.Client) *Limiter { return &Limiter{R: r} }

// AllowSliding counts the request against a window keyed in redis.
func (l *Limiter) AllowSliding(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	k := "rl:" + key
	pipe := l.R.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}

// LimitHTTP caps requests per client IP. A limiter backend error fails open:
// losing redis must not stall the import pipeline.
func (l *Limiter) LimitHTTP(limit int64, window time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, n, err := l.AllowSliding(r.Context(), clientIP(r), limit, window)
		if err != nil {
			log.Printf("rate limiter error: %v", err)
			next.ServeHTTP(w, r)
			return
		}
		if !ok {
			httpx.WriteJSON(w, httpx.Response{
				Success: false,
				Error:   fmt.Sprintf("rate limit exceeded (count=%d, limit=%d)", n, limit),
			}, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
