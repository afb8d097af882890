package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errTooManyRequests = errors.New("too many requests")

// RateLimit applies a global token-bucket limiter to the API. Burst
// absorbs short spikes; sustained traffic above rps is rejected with 429.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rps, burst)

	return func(ctx *gin.Context) {
		if !limiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": errTooManyRequests.Error(),
			})

			return
		}

		ctx.Next()
	}
}
