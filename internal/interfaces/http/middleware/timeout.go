// internal/interfaces/http/middleware/timeout.go
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velvet-vogue/storefront-backend/internal/config"
)

const defaultRequestTimeout = 30 * time.Second

// Timeout caps how long a request may run. The deadline is installed on the
// request context, so the checkout payment delay and the store drivers all
// observe it; when it fires first the client gets a 408 and whatever the
// handler goroutine still produces is discarded by gin's abort.
func Timeout(cfg *config.Config) gin.HandlerFunc {
	limit := cfg.Server.RequestTimeout
	if limit <= 0 {
		limit = defaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), limit)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			c.Abort()
			c.JSON(http.StatusRequestTimeout, gin.H{
				"success": false,
				"message": "The request took too long to process. Please try again.",
			})
		}
	}
}
