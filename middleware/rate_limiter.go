package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/config"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return RateLimiterWithClient(func() redis.Cmdable { return config.RedisClient }, maxRequests, window)
}

// RateLimiterWithClient counts requests per IP, method and route in a fixed window.
// Redis errors let the request through.
func RateLimiterWithClient(client func() redis.Cmdable, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		pipe := client().TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl := pipe.TTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("[ratelimit] WARN redis unavailable key=%s err=%v", key, err)
			c.Next()
			return
		}

		rate := rateState(incr.Val(), ttl.Val(), maxRequests, window, time.Now())
		c.Set(models.RateLimiterContextKey, rate)

		if incr.Val() > int64(maxRequests) {
			c.Header("Retry-After", strconv.Itoa(rate.ResetInSeconds))
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateState turns the counter and key TTL into the response rate block. A missing
// TTL (negative) is treated as a fresh window.
func rateState(count int64, ttl time.Duration, maxRequests int, window time.Duration, now time.Time) *models.RateLimiter {
	if ttl < 0 {
		ttl = window
	}
	remaining := maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetIn := int(ttl.Round(time.Second) / time.Second)
	return &models.RateLimiter{
		Limit:          maxRequests,
		Remaining:      remaining,
		ResetAt:        now.Add(ttl).Truncate(time.Second),
		ResetInSeconds: resetIn,
	}
}
