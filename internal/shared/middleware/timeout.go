package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/changhyeonkim/splearn/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout middleware sets a timeout context for request processing.
// Handlers must check the context; no response is written here
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Create a context with timeout
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		// Replace request context with the timeout context
		c.Request = c.Request.WithContext(ctx)

		// Store timeout information for handlers to use if needed
		deadline, _ := ctx.Deadline()
		c.Set("request_deadline", deadline)
		c.Set("request_timeout", timeout)

		// Execute the handler chain
		// No goroutine needed - handlers will respect context timeout
		c.Next()

		// After handler completes, check if timeout occurred
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			// Request logger is bound downstream, so read it back from c.Request
			logger.FromContext(c.Request.Context()).Warn("Request deadline exceeded",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}
