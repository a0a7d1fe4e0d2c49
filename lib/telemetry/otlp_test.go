package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/titanous/json5"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestConfigParsesAndPicksTransport(t *testing.T) {
	raw := []byte(`{
		otlp: {
			traces: {
				grpc_endpoint: "https://collector.example.com:4317",
				http_endpoint: "https://collector.example.com:4318",
				headers: { "x-api-key": "secret" },
			},
			metrics: {
				http_endpoint: "https://collector.example.com:4318",
			},
		},
	}`)

	var cfg config
	require.NoError(t, json5.Unmarshal(raw, &cfg))

	// grpc wins when both endpoints are configured
	kind, endpoint := cfg.Otlp.Traces.transport()
	require.Equal(t, "grpc", kind)
	require.Equal(t, "https://collector.example.com:4317", endpoint)
	require.Equal(t, "secret", cfg.Otlp.Traces.Headers["x-api-key"])

	kind, endpoint = cfg.Otlp.Metrics.transport()
	require.Equal(t, "http", kind)
	require.Equal(t, "https://collector.example.com:4318", endpoint)
}

func TestNewResourceCarriesServiceName(t *testing.T) {
	r, err := newResource("skillscore-server")
	require.NoError(t, err)

	found := false
	for _, attr := range r.Attributes() {
		if attr.Key == semconv.ServiceNameKey {
			require.Equal(t, "skillscore-server", attr.Value.AsString())
			found = true
		}
	}
	require.True(t, found)
}
