package middleware

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts requests and observes their latency as faultline_http_* series
// on reg. Scrapes of /metrics are not counted. A nil reg disables the middleware.
func Metrics(reg prometheus.Registerer) echo.MiddlewareFunc {
	if reg == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "faultline",
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}
