package tracing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/riyaa1611/SmartCode-Demo/tracing"
)

var _ = Describe("Sampling", func() {
	Describe("Config.Sampler", func() {
		It("returns AlwaysOn sampler by default", func() {
			c := tracing.Config{}
			sampler := c.Sampler()
			Expect(sampler).NotTo(BeNil())
			Expect(sampler.Description()).To(Equal(sdktrace.AlwaysSample().Description()))
		})

		It("returns probability sampler when strategy is 'probability'", func() {
			c := tracing.Config{
				Sampling: tracing.SamplingConfig{
					Strategy: "probability",
					Rate:     0.1,
				},
			}
			Expect(c.Sampler().Description()).To(ContainSubstring("TraceIDRatioBased"))
		})

		It("returns a parent based sampler when strategy is 'parent'", func() {
			c := tracing.Config{
				Sampling: tracing.SamplingConfig{
					Strategy: "parent",
					Rate:     0.5,
				},
			}
			Expect(c.Sampler().Description()).To(HavePrefix("ParentBased"))
		})

		It("returns NeverSample sampler when strategy is 'never'", func() {
			c := tracing.Config{
				Sampling: tracing.SamplingConfig{
					Strategy: "never",
				},
			}
			Expect(c.Sampler().Description()).To(Equal(sdktrace.NeverSample().Description()))
		})

		It("treats an out of range rate as 1.0", func() {
			for _, rate := range []float64{0, -1, 3} {
				c := tracing.Config{
					Sampling: tracing.SamplingConfig{
						Strategy: "probability",
						Rate:     rate,
					},
				}
				Expect(c.Sampler().Description()).To(Equal(sdktrace.TraceIDRatioBased(1.0).Description()))
			}
		})
	})
})
