package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/fedcalc/internal/calculation"
	"github.com/rpgo/fedcalc/internal/ratelimit"
)

// RateLimitMiddleware rejects clients over their limit with 429. If the
// limiter itself fails the request is let through.
func RateLimitMiddleware(limiter ratelimit.Limiter, logger calculation.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warnf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.String(http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
