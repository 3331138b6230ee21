package middleware

import (
	"fmt"
	"net/http"

	omar_errors "omar-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware rejects bodies larger than maxBytes. Declared lengths
// are rejected up front; chunked bodies fail on read with *http.MaxBytesError.
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			_ = c.Error(fmt.Errorf("content length %d exceeds %d: %w", c.Request.ContentLength, maxBytes, omar_errors.ErrTooLarge))
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
