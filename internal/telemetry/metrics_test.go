package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/url-shortener/internal/config"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	got := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, m.Name)
			for _, dp := range sum.DataPoints {
				got[m.Name] += dp.Value
			}
		}
	}

	return got
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewWithProvider(provider, "url-shortener-test")
	require.NoError(t, err)

	ctx := context.Background()
	m.URLShortened(ctx)
	m.URLShortened(ctx)
	m.Redirected(ctx)
	m.RedirectNotFound(ctx)
	m.AnalyticsRequested(ctx)
	m.AnalyticsRequested(ctx)
	m.AnalyticsRequested(ctx)
	m.GenerationExhausted(ctx)

	got := collect(t, reader)

	assert.Equal(t, map[string]int64{
		"shortener.urls.shortened":       2,
		"shortener.redirects":            1,
		"shortener.redirects.not_found":  1,
		"shortener.analytics.requests":   3,
		"shortener.generation.exhausted": 1,
	}, got)
}

func TestNew_Disabled(t *testing.T) {
	m, err := New(context.Background(), config.Telemetry{Enabled: false, ServiceName: "url-shortener"})
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.NotPanics(t, func() { m.URLShortened(context.Background()) })
	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		ctx := context.Background()
		m.URLShortened(ctx)
		m.Redirected(ctx)
		m.RedirectNotFound(ctx)
		m.AnalyticsRequested(ctx)
		m.GenerationExhausted(ctx)
	})
	assert.NoError(t, m.Shutdown(context.Background()))
}

func TestTrimScheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://localhost:4318", "localhost:4318"},
		{"https://collector:4318", "collector:4318"},
		{"localhost:4318", "localhost:4318"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, trimScheme(tt.in))
		})
	}
}
