package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/infrastructure/ratelimit"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/errors"
)

// RateLimit throttles API callers with a shared token bucket. The bucket key
// is the authenticated tenant scope when one exists, otherwise the client IP,
// so one noisy tenant cannot starve the rest.
func RateLimit(limiter *ratelimit.RedisRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(string(constants.ContextKeyTenantID))
		if key == "" {
			key = c.ClientIP()
		}

		result, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))

		if !result.Allowed {
			if result.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())+1))
			}
			limitErr := errors.ErrRateLimited()
			requestID := c.GetString(string(constants.ContextKeyRequestID))
			c.AbortWithStatusJSON(errors.HTTPStatusOf(limitErr), dto.NewErrorEnvelope(limitErr, requestID))
			return
		}
		c.Next()
	}
}
