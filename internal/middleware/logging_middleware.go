package middleware

import (
	"time"

	"omar-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware logs every request before dispatch and every response
// after it, including responses written by the error handler.
func LoggingMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		url := c.Request.URL.String()

		log := l
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		if log == nil {
			c.Next()
			return
		}
		log = log.WithContext(c.Request.Context())

		log.Info("request",
			zap.String("method", method),
			zap.String("url", url),
			zap.String("remote_addr", c.ClientIP()),
		)

		c.Next()

		log.Info("response",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", method),
			zap.String("url", url),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
