package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/franciscosanchezn/bytebistro-api/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// RateLimit throttles callers per minute. Authenticated requests are keyed by
// user id with userLimit, anonymous ones by client IP with anonLimit.
// Place it after OAuth2Auth on protected groups so the user id is known.
func RateLimit(limiter ratelimit.Limiter, anonLimit, userLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, limit := "anon:"+c.ClientIP(), anonLimit
		if userID := c.GetUint(ContextUserID); userID != 0 {
			key, limit = fmt.Sprintf("user:%d", userID), userLimit
		}

		decision, err := limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			// Fail open.
			log.WithError(err).WithField("key", key).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		if !decision.Allowed {
			retry := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.NewAPIError(models.ErrTooManyRequests,
				"Request was throttled", map[string]interface{}{"retry_after_seconds": retry}))
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Next()
	}
}
