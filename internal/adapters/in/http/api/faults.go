package api

import (
	"context"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/bnema/faultline/internal/adapters/dto"
	"github.com/bnema/faultline/internal/domain"
)

type operationFunc func(ctx context.Context, region string) (*domain.OperationResult, error)

func (h *Handler) operation(op operationFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		result, err := op(c.Request().Context(), c.Param("region"))
		return h.sendOperation(c, result, err)
	}
}

func (h *Handler) brownout(c echo.Context) error {
	latencyMs, err := intParam(c, DefaultLatencyMs, "latencyMs", "ms")
	if err != nil {
		return err
	}

	result, err := h.faults.Brownout(c.Request().Context(), c.Param("region"), latencyMs)
	return h.sendOperation(c, result, err)
}

// sendOperation renders an operation outcome. A failed operation that still
// produced a result carries it next to the error.
func (h *Handler) sendOperation(c echo.Context, result *domain.OperationResult, err error) error {
	if err != nil {
		status := httpStatus(err)
		resp := dto.ErrorResponse{Error: err.Error()}
		if result != nil {
			r := toOperationResponse(result, false)
			resp.Result = &r
		}
		if status >= http.StatusInternalServerError {
			h.log.Error("fault operation failed", "path", c.Path(), "region", c.Param("region"), "status", status, "error", err)
		}
		return c.JSON(status, resp)
	}

	return c.JSON(http.StatusOK, toOperationResponse(result, true))
}

func (h *Handler) operations(c echo.Context) error {
	snapshot := h.faults.Operations()

	resp := dto.OperationsResponse{Operations: make(map[string]int64, len(snapshot))}
	for action, n := range snapshot {
		resp.Operations[string(action)] = n
		resp.Total += n
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) regions(c echo.Context) error {
	regions := h.faults.Regions()

	resp := dto.RegionsResponse{Regions: make([]dto.RegionResponse, 0, len(regions))}
	for _, r := range regions {
		resp.Regions = append(resp.Regions, dto.RegionResponse{
			ID:       r.ID,
			Color:    r.Color,
			ProxyAPI: r.ProxyAPI,
			Proxies:  r.Proxies,
			Units:    r.Units,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func toOperationResponse(r *domain.OperationResult, ok bool) dto.OperationResponse {
	resp := dto.OperationResponse{
		OK:              ok,
		Region:          r.Region,
		Action:          string(r.Action),
		AffectedHandles: append([]string{}, r.AffectedHandles...),
		Failed:          make([]dto.HandleFailureResponse, 0, len(r.Failed)),
	}
	for _, f := range r.Failed {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		resp.Failed = append(resp.Failed, dto.HandleFailureResponse{
			Handle: f.Handle,
			Kind:   string(f.Kind),
			Error:  msg,
		})
	}
	if r.Action == domain.ActionBrownout {
		latency := r.LatencyMs
		resp.LatencyMs = &latency
	}
	return resp
}

func toStatusResponse(s *domain.RegionStatus) dto.RegionStatusResponse {
	if s.Error != "" {
		return dto.RegionStatusResponse{Up: false, Error: s.Error}
	}

	proxiesEnabled, processesRunning := s.ProxiesEnabled, s.ProcessesRunning
	resp := dto.RegionStatusResponse{
		Up:               s.Up,
		ProxiesEnabled:   &proxiesEnabled,
		ProcessesRunning: &processesRunning,
		Processes:        s.Processes,
	}
	if len(s.Proxies) > 0 {
		resp.Proxies = make(map[string]dto.ProxyResponse, len(s.Proxies))
		for name, p := range s.Proxies {
			resp.Proxies[name] = toProxyResponse(name, p)
		}
	}
	return resp
}

func toProxyResponse(name string, p domain.Proxy) dto.ProxyResponse {
	resp := dto.ProxyResponse{
		Name:     name,
		Listen:   p.Listen,
		Upstream: p.Upstream,
		Enabled:  p.Enabled,
		Toxics:   make([]dto.ToxicResponse, 0, len(p.Toxics)),
	}
	for _, t := range p.Toxics {
		resp.Toxics = append(resp.Toxics, dto.ToxicResponse{
			Name:       t.Name,
			Type:       t.Type,
			Stream:     t.Stream,
			Toxicity:   t.Toxicity,
			Attributes: t.Attributes,
		})
	}
	sort.Slice(resp.Toxics, func(i, j int) bool { return resp.Toxics[i].Name < resp.Toxics[j].Name })
	return resp
}
