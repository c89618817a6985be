package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	e := echo.New()
	e.Use(Metrics(reg))
	e.GET("/api/regions", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/regions", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	var requests float64
	for _, mf := range families {
		if mf.GetName() != "faultline_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			requests += m.GetCounter().GetValue()
			for _, label := range m.GetLabel() {
				if label.GetName() == "url" {
					assert.Equal(t, "/api/regions", label.GetValue())
				}
			}
		}
	}
	assert.Equal(t, float64(1), requests)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	e := echo.New()
	e.Use(Metrics(nil))
	e.GET("/api/regions", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
