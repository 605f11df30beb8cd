package middleware

import (
	"math"
	"net/http"
	"strconv"

	"todoai/internal/adapter/ratelimit"
	"todoai/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

// RateLimiter decides whether a caller identity may proceed.
type RateLimiter interface {
	Allow(key string) ratelimit.Decision
}

// RateLimit rejects callers over their window with 429 and Retry-After,
// keyed by client IP. Rejected requests never reach the handler.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.Allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(decision)))
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgRateLimitExceeded, GetLang(c)),
			)
			return
		}

		c.Next()
	}
}

func retryAfterSeconds(decision ratelimit.Decision) int {
	seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}
