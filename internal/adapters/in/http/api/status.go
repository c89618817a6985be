package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/dto"
	"github.com/bnema/faultline/internal/domain"
)

// statusAll always answers 200. Failing regions carry their error inline.
func (h *Handler) statusAll(c echo.Context) error {
	statuses := h.faults.StatusAll(c.Request().Context())

	resp := make(map[string]dto.RegionStatusResponse, len(statuses))
	for id, s := range statuses {
		if s == nil {
			continue
		}
		resp[id] = toStatusResponse(s)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) status(c echo.Context) error {
	s, err := h.faults.Status(c.Request().Context(), c.Param("region"))
	if err != nil {
		if s != nil && errors.Is(err, domain.ErrUnreachableBackend) {
			h.log.Warn("region status unavailable", "region", c.Param("region"), "error", err)
			return c.JSON(http.StatusBadGateway, toStatusResponse(s))
		}
		return h.sendError(c, err)
	}
	return c.JSON(http.StatusOK, toStatusResponse(s))
}
