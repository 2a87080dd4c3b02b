package tracing

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SamplingConfig holds trace sampling configuration.
type SamplingConfig struct {
	Strategy string  `long:"sampling-strategy" description:"trace sampling strategy: always, never, probability, parent" default:"always"`
	Rate     float64 `long:"sampling-rate"     description:"sampling rate for the probability and parent strategies (0.0 to 1.0)" default:"1.0"`
}

// Sampler returns the sdktrace.Sampler for the configured strategy. Unknown
// strategies sample everything.
func (c Config) Sampler() sdktrace.Sampler {
	switch c.Sampling.Strategy {
	case "never":
		return sdktrace.NeverSample()
	case "probability":
		return sdktrace.TraceIDRatioBased(c.Sampling.rate())
	case "parent":
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.Sampling.rate()))
	default:
		return sdktrace.AlwaysSample()
	}
}

func (c SamplingConfig) rate() float64 {
	switch {
	case c.Rate <= 0, c.Rate > 1:
		return 1.0
	default:
		return c.Rate
	}
}
