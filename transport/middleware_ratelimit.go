package transport

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/buyer-leads/cmd/config"
	"github.com/muhammadheryan/buyer-leads/constant"
	redisrepo "github.com/muhammadheryan/buyer-leads/repository/redis"
	"github.com/muhammadheryan/buyer-leads/utils/errors"
	"github.com/muhammadheryan/buyer-leads/utils/logger"
	"github.com/muhammadheryan/buyer-leads/utils/metrics"
	"go.uber.org/zap"
)

// RateLimitMiddleware allows cfg.Requests buyer updates per client IP per
// window. Requests pass through when the counter store is unavailable.
func RateLimitMiddleware(redisRepo redisrepo.Repository, cfg config.RateLimitConfig, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if redisRepo == nil || cfg.Requests <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("update:%s", clientIP(r))
			res, err := redisRepo.HitRateLimit(r.Context(), key, cfg.Requests, cfg.Window)
			if err != nil {
				logger.Warn("[RateLimit] err redisRepo.HitRateLimit", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
			h.Set("X-RateLimit-Reset", time.Now().Add(res.ResetIn).UTC().Format(time.RFC3339))

			if !res.Allowed {
				m.ObserveRateLimited()
				writeError(w, errors.SetCustomError(constant.ErrRateLimited))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// connection address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
