package tracing

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc/credentials"
)

// MetricsConfigured indicates whether OTel metrics have been configured.
var MetricsConfigured bool

// MetricsConfig holds configuration for OTel metrics export.
type MetricsConfig struct {
	OTLPAddress        string            `long:"otlp-address"        description:"OTLP gRPC endpoint for metrics export"`
	OTLPHeaders        map[string]string `long:"otlp-header"         description:"headers to attach to OTLP metrics requests"`
	OTLPUseTLS         bool              `long:"otlp-use-tls"        description:"use TLS for OTLP metrics connection"`
	PrometheusTextfile string            `long:"prometheus-textfile" description:"write metrics in Prometheus text format to this file on exit"`
}

// ConfigureMeterProvider sets the global OTel MeterProvider.
func ConfigureMeterProvider(mp *sdkmetric.MeterProvider) {
	otel.SetMeterProvider(mp)
	MetricsConfigured = true
}

// MeterProvider creates and returns an OTel MeterProvider based on the config.
// Returns (nil, nil, nil) if no metrics export is configured.
// The returned shutdown function should be called on application exit.
func (c MetricsConfig) MeterProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	switch {
	case c.OTLPAddress != "":
		return c.otlpMeterProvider()
	case c.PrometheusTextfile != "":
		return c.prometheusMeterProvider()
	default:
		return nil, nil, nil
	}
}

func (c MetricsConfig) otlpMeterProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(c.OTLPAddress),
		otlpmetricgrpc.WithHeaders(c.OTLPHeaders),
	}

	if c.OTLPUseTLS {
		opts = append(opts, otlpmetricgrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	} else {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(context.Background(), opts...)
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	return mp, mp.Shutdown, nil
}

// prometheusMeterProvider collects into a private registry that is written
// out once, in the textfile collector format, when the provider shuts down.
func (c MetricsConfig) prometheusMeterProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))

	shutdown := func(ctx context.Context) error {
		writeErr := prometheus.WriteToTextfile(c.PrometheusTextfile, registry)
		return errors.Join(writeErr, mp.Shutdown(ctx))
	}

	return mp, shutdown, nil
}
