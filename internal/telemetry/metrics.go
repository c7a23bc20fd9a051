// Package telemetry exposes OpenTelemetry counters for the shortener.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vadimbarashkov/url-shortener/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics holds the counters recorded by the use case layer.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	urlsShortened       metric.Int64Counter
	redirects           metric.Int64Counter
	redirectsNotFound   metric.Int64Counter
	analyticsRequests   metric.Int64Counter
	generationExhausted metric.Int64Counter

	shutdown func(ctx context.Context) error
}

// New builds the meter provider described by cfg, installs it as the global
// provider and registers the counters. When telemetry is disabled the counters
// are backed by a no-op provider and the global provider is left untouched.
func New(ctx context.Context, cfg config.Telemetry) (*Metrics, error) {
	const op = "telemetry.New"

	if !cfg.Enabled {
		return NewWithProvider(noop.NewMeterProvider(), cfg.ServiceName)
	}

	exporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(trimScheme(cfg.Endpoint)),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create otlp exporter: %w", op, err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Interval)),
		),
	)

	m, err := NewWithProvider(provider, cfg.ServiceName)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}

	otel.SetMeterProvider(provider)
	m.shutdown = provider.Shutdown

	return m, nil
}

// NewWithProvider registers the counters on an existing meter provider.
func NewWithProvider(provider metric.MeterProvider, serviceName string) (*Metrics, error) {
	const op = "telemetry.NewWithProvider"

	meter := provider.Meter(serviceName)

	var (
		m   Metrics
		err error
	)

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.urlsShortened, "shortener.urls.shortened", "Number of short codes created", "{url}"},
		{&m.redirects, "shortener.redirects", "Number of resolved short codes", "{redirect}"},
		{&m.redirectsNotFound, "shortener.redirects.not_found", "Number of lookups for unknown short codes", "{redirect}"},
		{&m.analyticsRequests, "shortener.analytics.requests", "Number of analytics lookups", "{request}"},
		{&m.generationExhausted, "shortener.generation.exhausted", "Number of URLs whose short code candidates all collided", "{url}"},
	}

	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit(c.unit),
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to create counter %s: %w", op, c.name, err)
		}
	}

	return &m, nil
}

func (m *Metrics) URLShortened(ctx context.Context) {
	if m != nil {
		m.urlsShortened.Add(ctx, 1)
	}
}

func (m *Metrics) Redirected(ctx context.Context) {
	if m != nil {
		m.redirects.Add(ctx, 1)
	}
}

func (m *Metrics) RedirectNotFound(ctx context.Context) {
	if m != nil {
		m.redirectsNotFound.Add(ctx, 1)
	}
}

func (m *Metrics) AnalyticsRequested(ctx context.Context) {
	if m != nil {
		m.analyticsRequests.Add(ctx, 1)
	}
}

func (m *Metrics) GenerationExhausted(ctx context.Context) {
	if m != nil {
		m.generationExhausted.Add(ctx, 1)
	}
}

// Shutdown flushes pending measurements and stops the exporter.
func (m *Metrics) Shutdown(ctx context.Context) error {
	const op = "telemetry.Metrics.Shutdown"

	if m == nil || m.shutdown == nil {
		return nil
	}

	if err := m.shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// trimScheme strips the scheme, which otlpmetrichttp.WithEndpoint does not accept.
func trimScheme(endpoint string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if rest, ok := strings.CutPrefix(endpoint, scheme); ok {
			return rest
		}
	}

	return endpoint
}
