package middleware

import (
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/dto"
)

// localhostNets contains IPv4 and IPv6 loopback ranges that are always allowed.
var localhostNets = ParseNets([]string{"127.0.0.0/8", "::1"})

// CIDRAllowlist restricts access to the given ranges. Localhost is always allowed
// so the CLI can drive a local controller. An empty list lets all traffic through.
func CIDRAllowlist(allowed []*net.IPNet, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if len(allowed) == 0 {
			return next
		}
		return func(c echo.Context) error {
			clientIP := c.RealIP()
			if InNets(clientIP, localhostNets) || InNets(clientIP, allowed) {
				return next(c)
			}

			logger.Warn("access denied by CIDR allowlist",
				"method", c.Request().Method,
				"path", c.Path(),
				"client_ip", clientIP,
			)
			return c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
		}
	}
}
