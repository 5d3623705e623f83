package middleware

import (
	"errors"
	"net/http"

	"wanderlust-booking/internal/handler/httperr"
	"wanderlust-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

var ErrRateLimited = errors.New("rate limit exceeded")

type RateLimiter struct {
	handler gin.HandlerFunc
}

// NewRateLimiter shares the session Redis when there is one, so limits hold
// across instances. rdb may be nil.
func NewRateLimiter(cfg config.Config, rdb *redis.Client) (*RateLimiter, error) {
	if !cfg.RateLimit.Enabled {
		return &RateLimiter{handler: func(c *gin.Context) { c.Next() }}, nil
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit.Rate)
	if err != nil {
		return nil, err
	}

	var store limiter.Store
	if rdb != nil {
		store, err = redisstore.NewStoreWithOptions(rdb, limiter.StoreOptions{
			Prefix:   cfg.RateLimit.Prefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, err
		}
	} else {
		store = memorystore.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          cfg.RateLimit.Prefix,
			CleanUpInterval: rate.Period,
		})
	}

	h := ginlimiter.NewMiddleware(limiter.New(store, rate),
		ginlimiter.WithKeyGetter(rateLimitKey),
		ginlimiter.WithLimitReachedHandler(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests", nil)
		}),
		ginlimiter.WithErrorHandler(func(c *gin.Context, err error) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}),
	)
	return &RateLimiter{handler: h}, nil
}

func (r *RateLimiter) Limit() gin.HandlerFunc {
	return r.handler
}

// rateLimitKey buckets by session only for ids the client sent back. A
// request that was just handed a fresh id counts against its client IP.
func rateLimitKey(c *gin.Context) string {
	if sid := GetSessionID(c); sid != "" && !IsNewSession(c) {
		return "sid:" + sid
	}
	return "ip:" + c.ClientIP()
}
