package middleware

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/dto"
	"github.com/bnema/faultline/internal/boundaries/out"
)

// RateLimit throttles requests per client IP. A nil limiter disables it.
func RateLimit(limiter out.RateLimiter, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !limiter.Allow(c.Request().Context(), "ip:"+ip) {
				logger.Warn("rate limit exceeded", "client_ip", ip, "path", c.Path())
				c.Response().Header().Set(echo.HeaderRetryAfter, "1")
				return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "Too Many Requests"})
			}
			return next(c)
		}
	}
}
