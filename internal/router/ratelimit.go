package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anatolianspine/clinic-api/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// limiters holds the per-IP rate limiters. Both use an in-memory store;
// the ceilings are configuration, defaulting to effectively unbounded.
type limiters struct {
	general *limiter.Limiter
	form    *limiter.Limiter
}

func newLimiters(cfg config.RateLimitConfig) (*limiters, error) {
	generalWindow, err := time.ParseDuration(cfg.GeneralWindow)
	if err != nil {
		return nil, err
	}
	formWindow, err := time.ParseDuration(cfg.FormWindow)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore()
	return &limiters{
		general: limiter.New(store, limiter.Rate{Period: generalWindow, Limit: cfg.GeneralMax}),
		form:    limiter.New(store, limiter.Rate{Period: formWindow, Limit: cfg.FormMax}),
	}, nil
}

// General counts every request against the caller's quota.
func (l *limiters) General() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, err := l.general.Get(c.Request.Context(), "general:"+c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		setRateHeaders(c, ctx)
		if ctx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":    false,
				"error": "Çok fazla istek gönderdiniz. Lütfen daha sonra tekrar deneyin.",
			})
			return
		}
		c.Next()
	}
}

// Form guards the contact/appointment endpoints. Successful submissions
// are not counted: the quota is only consumed when the handler answers
// with an error status.
func (l *limiters) Form() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "form:" + c.ClientIP()

		ctx, err := l.form.Peek(c.Request.Context(), key)
		if err == nil {
			setRateHeaders(c, ctx)
			// Peek does not consume, so Reached only trips past the limit;
			// an exhausted quota shows up as zero remaining.
			if ctx.Reached || ctx.Remaining <= 0 {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"ok":    false,
					"error": "Çok fazla istek gönderdiniz. Lütfen birkaç dakika bekleyip tekrar deneyin.",
				})
				return
			}
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			_, _ = l.form.Get(c.Request.Context(), key)
		}
	}
}

func setRateHeaders(c *gin.Context, ctx limiter.Context) {
	c.Header("X-RateLimit-Limit", strconv.FormatInt(ctx.Limit, 10))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(ctx.Remaining, 10))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(ctx.Reset, 10))
}
