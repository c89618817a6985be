package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/dto"
)

func (h *Handler) clusterHealth(c echo.Context) error {
	health, err := h.cluster.Health(c.Request().Context())
	if err != nil {
		return h.sendError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ClusterHealthResponse{
		Nodes:     health.Nodes,
		Ranges:    health.Ranges,
		Replicas:  health.Replicas,
		Timestamp: health.Timestamp,
	})
}

func (h *Handler) transactions(c echo.Context) error {
	count, err := h.cluster.Transactions(c.Request().Context())
	if err != nil {
		return h.sendError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TransactionsResponse{Count: count, Timestamp: time.Now().UTC()})
}

func (h *Handler) simulateWrites(c echo.Context) error {
	count, err := intParam(c, DefaultWriteCount, "count")
	if err != nil {
		return err
	}

	report, err := h.cluster.SimulateWrites(c.Request().Context(), count)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.JSON(http.StatusOK, dto.WriteReportResponse{
		Success:    report.Success,
		Failed:     report.Failed,
		TotalCount: report.TotalCount,
	})
}
