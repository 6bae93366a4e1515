package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/oshaneheath-star/Poster-collection-app/internal/domain/extraction"
	domain "github.com/oshaneheath-star/Poster-collection-app/internal/domain/poster"
	"github.com/oshaneheath-star/Poster-collection-app/internal/utils/platformerrors"
)

type missingPosterService struct{}

func (missingPosterService) Create(context.Context, domain.CreateParams) (*domain.Poster, error) {
	return nil, nil
}

func (missingPosterService) List(context.Context) ([]*domain.Poster, error) {
	return nil, nil
}

func (missingPosterService) Get(ctx context.Context, id string) (*domain.Poster, error) {
	return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "Poster not found", nil, "")
}

func (missingPosterService) Update(context.Context, string, domain.Update) (*domain.Poster, error) {
	return nil, nil
}

func (missingPosterService) Delete(context.Context, string) error {
	return nil
}

func (missingPosterService) ExtractDate(context.Context, string) *extraction.Result {
	return &extraction.Result{}
}

func TestFail_LogsTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	h := NewPosterHandler(missingPosterService{}, zerolog.New(&buf))
	engine := gin.New()
	engine.GET("/api/posters/:id", h.Get)

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})

	req := httptest.NewRequest(http.MethodGet, "/api/posters/65a1f0c2e4b0a1b2c3d4e5f6", nil)
	req = req.WithContext(trace.ContextWithSpanContext(req.Context(), sc))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"trace_id":"4bf92f3577b34da6a3ce929d0e0e4736"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestFail_NoTraceWithoutSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	h := NewPosterHandler(missingPosterService{}, zerolog.New(&buf))
	engine := gin.New()
	engine.GET("/api/posters/:id", h.Get)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posters/65a1f0c2e4b0a1b2c3d4e5f6", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, buf.String(), "trace_id")
}
