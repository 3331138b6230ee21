package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"omar-backend/internal/transport/httpdto"
	omar_errors "omar-backend/pkg/errors"
	"omar-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const genericInternalMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler translates errors recorded with c.Error, and recovered panics,
// into the error envelope. It is the only place that writes error responses.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	if l == nil {
		l = logger.NewNop()
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v: %w", rec, omar_errors.ErrInternal)
				l.WithContext(c.Request.Context()).Error("recovered from panic",
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				respondError(c, l, err)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		respondError(c, l, c.Errors.Last().Err)
	}
}

// NotFound is the handler for unmatched routes.
func NotFound(c *gin.Context) {
	_ = c.Error(fmt.Errorf("%s %s: %w", c.Request.Method, c.Request.URL.Path, omar_errors.ErrNotFound))
}

// ErrorStatus maps an error to its status code, category and client message.
// Internal detail never reaches the message.
func ErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, omar_errors.ErrValidation):
		return http.StatusBadRequest, httpdto.ErrorBadRequest, "The request data is malformed or invalid"
	case errors.Is(err, omar_errors.ErrNotFound):
		return http.StatusNotFound, httpdto.ErrorNotFound, "The requested endpoint does not exist"
	case errors.Is(err, omar_errors.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, httpdto.ErrorTooLarge, "The request body exceeds the maximum allowed size"
	case errors.Is(err, omar_errors.ErrRateLimited):
		return http.StatusTooManyRequests, httpdto.ErrorTooManyRequests, "Rate limit exceeded. Please try again later."
	default:
		return http.StatusInternalServerError, httpdto.ErrorInternal, genericInternalMessage
	}
}

func respondError(c *gin.Context, l *logger.Logger, err error) {
	status, category, message := ErrorStatus(err)

	log := l.WithContext(c.Request.Context())
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("method", c.Request.Method),
		zap.String("url", c.Request.URL.String()),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		log.Error(category, fields...)
	} else {
		log.Warn(category, fields...)
	}

	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(status, httpdto.NewErrorResponse(category, message))
}
