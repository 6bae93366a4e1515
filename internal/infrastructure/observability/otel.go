package observability

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/oshaneheath-star/Poster-collection-app/internal/config"
)

const metricExportInterval = 30 * time.Second

// collectorTarget is where OTLP/HTTP data is pushed.
type collectorTarget struct {
	hostPort string
	insecure bool
	headers  map[string]string
}

// parseCollectorTarget accepts "collector:4318" as well as http:// and https:// URLs.
// Plain host:port is treated as insecure.
func parseCollectorTarget(endpoint, rawHeaders string) collectorTarget {
	target := collectorTarget{hostPort: endpoint, insecure: true, headers: parseHeaders(rawHeaders)}
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		target.hostPort = strings.TrimPrefix(endpoint, "https://")
		target.insecure = false
	case strings.HasPrefix(endpoint, "http://"):
		target.hostPort = strings.TrimPrefix(endpoint, "http://")
	}
	target.hostPort = strings.TrimRight(target.hostPort, "/")
	return target
}

type providers struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider
}

// Setup installs global tracer and meter providers. Exporters are attached only
// when tracing is enabled and a collector endpoint is set. The returned func
// flushes and stops both providers.
func Setup(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceNamespace(cfg.ServiceNamespace),
			semconv.DeploymentEnvironment(cfg.Environment),
			attribute.String("store.backend", cfg.StoreBackend),
		),
	)
	if err != nil {
		return nil, err
	}

	var p providers
	if cfg.EnableTracing && cfg.OTLPEndpoint != "" {
		p, err = exportingProviders(ctx, res, parseCollectorTarget(cfg.OTLPEndpoint, cfg.OTLPHeaders))
		if err != nil {
			return nil, err
		}
		logger.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("otlp exporters enabled")
	} else {
		p = providers{
			tracer: sdktrace.NewTracerProvider(sdktrace.WithResource(res)),
			meter:  sdkmetric.NewMeterProvider(sdkmetric.WithResource(res)),
		}
	}

	otel.SetTracerProvider(p.tracer)
	otel.SetMeterProvider(p.meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		return p.shutdown(ctx, logger)
	}, nil
}

func exportingProviders(ctx context.Context, res *resource.Resource, target collectorTarget) (providers, error) {
	traceOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target.hostPort)}
	metricOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target.hostPort)}
	if target.insecure {
		traceOpts = append(traceOpts, otlptracehttp.WithInsecure())
		metricOpts = append(metricOpts, otlpmetrichttp.WithInsecure())
	}
	if len(target.headers) > 0 {
		traceOpts = append(traceOpts, otlptracehttp.WithHeaders(target.headers))
		metricOpts = append(metricOpts, otlpmetrichttp.WithHeaders(target.headers))
	}

	spanExporter, err := otlptracehttp.New(ctx, traceOpts...)
	if err != nil {
		return providers{}, err
	}
	metricExporter, err := otlpmetrichttp.New(ctx, metricOpts...)
	if err != nil {
		_ = spanExporter.Shutdown(ctx)
		return providers{}, err
	}

	return providers{
		tracer: sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(spanExporter),
		),
		meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricExportInterval))),
		),
	}, nil
}

// shutdown stops metrics first so their final export can still be traced.
func (p providers) shutdown(ctx context.Context, logger zerolog.Logger) error {
	meterErr := p.meter.Shutdown(ctx)
	if meterErr != nil {
		logger.Error().Err(meterErr).Msg("shutdown meter provider")
	}
	tracerErr := p.tracer.Shutdown(ctx)
	if tracerErr != nil {
		logger.Error().Err(tracerErr).Msg("shutdown tracer provider")
	}
	return errors.Join(meterErr, tracerErr)
}

// parseHeaders reads OTEL_EXPORTER_OTLP_HEADERS style "k1=v1,k2=v2" lists.
func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		headers[key] = value
	}
	return headers
}
