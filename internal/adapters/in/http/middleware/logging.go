// Package middleware provides echo middleware for the control surface.
package middleware

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// quietPaths are polled constantly and only logged at debug level.
var quietPaths = map[string]bool{
	"/healthz":    true,
	"/metrics":    true,
	"/api/status": true,
}

// RequestID assigns every request a UUID unless the client sent an X-Request-ID.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger logs every request through the application logger.
func RequestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			keyvals := []any{
				"request_id", v.RequestID,
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"client_ip", v.RemoteIP,
			}
			if v.Error != nil {
				keyvals = append(keyvals, "error", v.Error)
			}

			switch {
			case v.Status >= 500:
				logger.Error("HTTP request", keyvals...)
			case quietPaths[c.Path()]:
				logger.Debug("HTTP request", keyvals...)
			default:
				logger.Info("HTTP request", keyvals...)
			}
			return nil
		},
	})
}

// Recover turns handler panics into 500 responses and logs them.
func Recover(logger *log.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			return err
		},
	})
}
