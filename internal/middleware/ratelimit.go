package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	pkgErrors "smarttaskai/pkg/errors"
	"smarttaskai/pkg/response"
)

// RateLimit throttles per user. Intended for routes that fan out to the
// paid model API; must run after Auth.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := GetScope(c)
		if sc.IsZero() {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		limiter, ok := m.limiters.Get(sc.UserID)
		if !ok {
			limiter = rate.NewLimiter(m.rateLimit, m.burst)
			m.limiters.Add(sc.UserID, limiter)
		}

		if !limiter.Allow() {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many requests, slow down"), nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
