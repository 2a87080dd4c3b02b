package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials"
)

// Configured indicates whether tracing has been configured.
var Configured bool

const tracerName = "smartcode"

// Config holds configuration for trace export.
type Config struct {
	ServiceName string            `long:"service-name"  description:"service name to attach to traces as metadata" default:"smartcode"`
	Attributes  map[string]string `long:"attribute"     description:"attributes to attach to traces as metadata"`
	OTLPAddress string            `long:"otlp-address"  description:"OTLP gRPC endpoint to export traces to"`
	OTLPHeaders map[string]string `long:"otlp-header"   description:"headers to attach to OTLP trace requests"`
	OTLPUseTLS  bool              `long:"otlp-use-tls"  description:"use TLS for the OTLP trace connection"`

	Sampling SamplingConfig `group:"Sampling"`
}

// Attrs are string attributes attached to a span.
type Attrs map[string]string

func (c Config) resource() *resource.Resource {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
	}
	for k, v := range c.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	return resource.NewSchemaless(attrs...)
}

// TraceProvider creates a TracerProvider exporting to the configured OTLP
// endpoint. Returns (nil, nil) if no exporter is configured.
func (c Config) TraceProvider(ctx context.Context) (*sdktrace.TracerProvider, error) {
	if c.OTLPAddress == "" {
		return nil, nil
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(c.OTLPAddress),
		otlptracegrpc.WithHeaders(c.OTLPHeaders),
	}
	if c.OTLPUseTLS {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	} else {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(c.resource()),
		sdktrace.WithSampler(c.Sampler()),
	), nil
}

// ConfigureTraceProvider sets the global TracerProvider and enables spans.
func ConfigureTraceProvider(tp trace.TracerProvider) {
	otel.SetTracerProvider(tp)
	Configured = true
}

// StartSpan creates a span named component, with attrs attached. When
// tracing is not configured the context is returned unchanged along with a
// no-op span.
func StartSpan(ctx context.Context, component string, attrs Attrs) (context.Context, trace.Span) {
	if !Configured {
		return ctx, trace.SpanFromContext(context.Background())
	}

	return otel.Tracer(tracerName).Start(ctx, component, trace.WithAttributes(keyValues(attrs)...))
}

// End ends the span, marking it as failed when err is non-nil.
func End(span trace.Span, err error) {
	if !Configured {
		return
	}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}

func keyValues(attrs Attrs) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, attribute.String(k, v))
	}
	return kvs
}
