package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/dto"
)

// BearerToken requires "Authorization: Bearer <token>" on every request.
// An empty token disables the check.
func BearerToken(token string, logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if token == "" {
			return next
		}
		expected := []byte(token)

		return func(c echo.Context) error {
			provided, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			// Constant-time comparison to prevent timing attacks
			if ok && subtle.ConstantTimeCompare([]byte(provided), expected) == 1 {
				return next(c)
			}

			logger.Warn("unauthorized request",
				"method", c.Request().Method,
				"path", c.Path(),
				"client_ip", c.RealIP(),
				"has_auth_header", c.Request().Header.Get(echo.HeaderAuthorization) != "",
			)
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="faultline"`)
			return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		}
	}
}

func bearer(header string) (string, bool) {
	scheme, value, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
