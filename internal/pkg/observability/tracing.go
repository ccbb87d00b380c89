package observability

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"seichi.click/gamedata-translator/internal/app/appconfig"
)

// SetupTracing builds and installs the global tracer provider according to
// the tracing configuration. When tracing is disabled the default no-op
// provider stays in place and the instrumentation middlewares are not
// mounted, so the cost is zero.
func SetupTracing(conf *appconfig.Config) error {
	if !conf.TracingEnabled {
		return nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.TraceIDRatioBased(conf.TracingSampleRate)),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(TracingServiceName),
		)),
	}

	for _, name := range conf.TracingExporters {
		exporter, err := newTraceExporter(name)
		if err != nil {
			return errors.Wrap(err, "observability: creating trace exporter")
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	otel.SetTracerProvider(tracesdk.NewTracerProvider(opts...))

	log.Info().
		Str("evt.name", "observability.tracing").
		Strs("exporters", conf.TracingExporters).
		Float64("sampleRate", conf.TracingSampleRate).
		Msg("tracing enabled")

	return nil
}

// newTraceExporter creates a span exporter by name. Exporter endpoints are
// taken from each exporter's own environment variables.
func newTraceExporter(name string) (tracesdk.SpanExporter, error) {
	switch name {
	case "jaeger":
		return jaeger.New(jaeger.WithCollectorEndpoint())
	case "otlp":
		return otlptrace.New(context.Background(), otlptracegrpc.NewClient())
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return nil, errors.Errorf("unknown tracing exporter %q", name)
}
