package app

import (
	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/in/http/api"
	"github.com/bnema/faultline/internal/adapters/in/http/middleware"
	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/config"
)

// newEcho builds the control surface with its middleware chain.
func newEcho(cfg *config.Config, svc *services, version string, logger *log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = middleware.IPExtractor(middleware.ParseNets(cfg.Server.TrustedProxies))

	handler := api.NewHandler(svc.faults, svc.cluster, svc.metrics, version, logger)
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(
		middleware.RequestID(),
		middleware.Recover(logger),
		middleware.RequestLogger(logger),
		middleware.Metrics(svc.registerer),
		middleware.SecurityHeaders(),
		middleware.CIDRAllowlist(middleware.ParseNets(cfg.Server.AllowedCIDRs), logger),
	)

	// The limiter field is a concrete pointer; keep the port nil when disabled.
	var limiter out.RateLimiter
	if svc.limiter != nil {
		limiter = svc.limiter
	}

	handler.RegisterRoutes(e,
		middleware.RateLimit(limiter, logger),
		middleware.BearerToken(cfg.Server.Token, logger),
	)
	return e
}
