// Package api implements the HTTP control surface of the fault controller.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/dto"
	"github.com/bnema/faultline/internal/boundaries/in"
	"github.com/bnema/faultline/internal/domain"
)

// DefaultLatencyMs is the brownout latency applied when the request names none.
const DefaultLatencyMs = 700

// DefaultWriteCount is the number of simulated writes when the request names none.
const DefaultWriteCount = 10

// Handler implements the HTTP handlers for the control surface.
type Handler struct {
	faults  in.FaultService
	cluster in.ClusterService
	metrics http.Handler
	version string
	log     *log.Logger
}

// NewHandler creates a new API handler. A nil metrics handler leaves /metrics unregistered.
func NewHandler(
	faults in.FaultService,
	cluster in.ClusterService,
	metrics http.Handler,
	version string,
	logger *log.Logger,
) *Handler {
	return &Handler{
		faults:  faults,
		cluster: cluster,
		metrics: metrics,
		version: version,
		log:     logger.With("adapter", "http"),
	}
}

// RegisterRoutes registers the API routes. The guard middlewares wrap every
// mutating endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo, guard ...echo.MiddlewareFunc) {
	e.GET("/healthz", h.healthz)
	if h.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.metrics))
	}

	api := e.Group("/api")
	api.GET("/status", h.statusAll)
	api.GET("/status/:region", h.status)
	api.GET("/regions", h.regions)
	api.GET("/operations", h.operations)
	api.GET("/cluster-health", h.clusterHealth)
	api.GET("/transactions", h.transactions)

	api.POST("/kill/:region", h.operation(h.faults.Kill), guard...)
	api.POST("/stop/:region", h.operation(h.faults.Stop), guard...)
	api.POST("/partition/:region", h.operation(h.faults.Partition), guard...)
	api.POST("/recover/:region", h.operation(h.faults.Recover), guard...)
	api.POST("/brownout/:region", h.brownout, guard...)
	api.POST("/simulate-writes", h.simulateWrites, guard...)
}

// ErrorHandler renders every error escaping a handler as {"error": "..."}.
func (h *Handler) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	} else {
		h.log.Error("unhandled error", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, dto.ErrorResponse{Error: message})
	}
	if err != nil {
		h.log.Error("failed to write error response", "error", err)
	}
}

func (h *Handler) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthzResponse{Status: "ok", Version: h.version})
}

// httpStatus maps domain errors to HTTP status codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownRegion):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidLatency), errors.Is(err, domain.ErrInvalidCount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProbeDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUnreachableBackend):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) sendError(c echo.Context, err error) error {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.Path(), "status", status, "error", err)
	}
	return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// intParam reads the first present query parameter among names.
// It returns fallback when none is set.
func intParam(c echo.Context, fallback int, names ...string) (int, error) {
	for _, name := range names {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+": must be an integer")
		}
		return v, nil
	}
	return fallback, nil
}
