package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
)

func TestParseHeaders(t *testing.T) {
	got := parseHeaders("api-key=secret, x-tenant = posters ,broken,=novalue")
	assert.Equal(t, map[string]string{"api-key": "secret", "x-tenant": "posters"}, got)
	assert.Empty(t, parseHeaders(""))
}

func TestParseCollectorTarget(t *testing.T) {
	target := parseCollectorTarget("https://otel.example.com/", "api-key=secret")
	assert.Equal(t, "otel.example.com", target.hostPort)
	assert.False(t, target.insecure)
	assert.Equal(t, map[string]string{"api-key": "secret"}, target.headers)

	target = parseCollectorTarget("http://otel-collector:4318", "")
	assert.Equal(t, "otel-collector:4318", target.hostPort)
	assert.True(t, target.insecure)

	target = parseCollectorTarget("otel-collector:4318", "")
	assert.Equal(t, "otel-collector:4318", target.hostPort)
	assert.True(t, target.insecure)
}

func TestSetup_WithoutExporter(t *testing.T) {
	cfg := &config.Config{ServiceName: "poster-api", ServiceNamespace: "posters", Environment: "test"}

	shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	ctx, span := StartModelSpan(context.Background(), "gpt-4o")
	assert.NotEmpty(t, GetTraceID(ctx))
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}
