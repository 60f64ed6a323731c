package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per authenticated user. It guards
// the generation routes, where every request is a paid upstream call.
type RateLimiter struct {
	limiters map[uint]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing rps requests per second
// with the given burst per user
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[uint]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(userID uint) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[userID]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[userID] = limiter
	return limiter
}

// Limit returns middleware enforcing the per-user budget. It must run
// after the auth gate, since it keys on the authenticated user id.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}

		if !rl.getLimiter(userID).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many generation requests, slow down"})
			c.Abort()
			return
		}

		c.Next()
	}
}
