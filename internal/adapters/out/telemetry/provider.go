// Package telemetry provides OpenTelemetry metrics for faultline.
// Instruments are exported in the Prometheus exposition format.
package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// MeterName is the instrumentation scope of every faultline instrument.
const MeterName = "faultline"

// Provider holds the meter provider and the Prometheus registry it exports to.
type Provider struct {
	MeterProvider *metric.MeterProvider
	registry      *prometheus.Registry
}

// NewProvider creates a meter provider backed by a dedicated Prometheus registry.
// The returned shutdown function must be called on application exit.
func NewProvider(ctx context.Context, serviceName, version string) (*Provider, func(context.Context), error) {
	noop := func(context.Context) {}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, noop, fmt.Errorf("create resource: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, noop, fmt.Errorf("create prometheus exporter: %w", err)
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(res),
	)

	shutdown := func(ctx context.Context) {
		_ = mp.Shutdown(ctx)
	}

	return &Provider{MeterProvider: mp, registry: registry}, shutdown, nil
}

// Meter returns the faultline meter.
func (p *Provider) Meter() otelmetric.Meter {
	return p.MeterProvider.Meter(MeterName)
}

// Registerer exposes the registry to collectors living outside the meter provider.
func (p *Provider) Registerer() prometheus.Registerer {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
