package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "pet-world-gateway/internal/adapter/storage/redis"
	"pet-world-gateway/pkg/apperror"
	"pet-world-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-group limits. reads is the
// configured per-minute budget for read endpoints.
func DefaultRateLimitRules(reads int64) map[string]RateLimitRule {
	if reads <= 0 {
		reads = 120
	}
	return map[string]RateLimitRule{
		"session":   {Limit: 10, Window: time.Minute},
		"reads":     {Limit: reads, Window: time.Minute},
		"writes":    {Limit: 30, Window: time.Minute},
		"contracts": {Limit: 10, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys limits by account once authenticated, else by client IP.
func extractIdentifier(c *gin.Context) string {
	if acct := c.GetString(CtxAccount); acct != "" {
		return acct
	}
	return c.ClientIP()
}
