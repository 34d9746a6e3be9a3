package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	grpcmiddleware "crm-services/internal/adapter/grpc/middleware"
)

// RateLimiter returns a Gin middleware that shares the Redis-backed
// fixed-window limiter with the gRPC interceptor. Keys are scoped by
// method and path so one hot endpoint cannot exhaust the others.
func RateLimiter(limiter *grpcmiddleware.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		scope := fmt.Sprintf("%s:%s", c.Request.Method, c.FullPath())

		allowed, err := limiter.Allow(c.Request.Context(), scope, c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limit_exceeded",
				"message": "too many requests",
			})
			return
		}

		c.Next()
	}
}
