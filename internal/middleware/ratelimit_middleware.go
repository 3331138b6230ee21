package middleware

import (
	"strconv"

	"omar-backend/internal/ratelimit"
	omar_errors "omar-backend/pkg/errors"
	"omar-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMiddleware applies the per-client limit keyed by client IP.
// Limiter failures let the request through.
func RateLimitMiddleware(limiter ratelimit.Limiter, l *logger.Logger) gin.HandlerFunc {
	if l == nil {
		l = logger.NewNop()
	}
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		result, err := limiter.Allow(c.Request.Context(), clientIP)
		if err != nil {
			l.WithContext(c.Request.Context()).Error("rate limit check failed",
				zap.String("client_ip", clientIP),
				zap.Error(err),
			)
			c.Next()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			_ = c.Error(omar_errors.ErrRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *ratelimit.Result) {
	if result.Limit <= 0 {
		return
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
