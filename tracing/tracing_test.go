package tracing_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/riyaa1611/SmartCode-Demo/tracing"
)

var _ = Describe("Tracing", func() {
	var spanRecorder *tracetest.SpanRecorder

	BeforeEach(func() {
		spanRecorder = new(tracetest.SpanRecorder)
	})

	AfterEach(func() {
		tracing.Configured = false
	})

	Context("when tracing is not configured", func() {
		It("returns the context unchanged and a non-recording span", func() {
			ctx := context.Background()
			spanCtx, span := tracing.StartSpan(ctx, "review.aggregate", nil)
			Expect(spanCtx).To(Equal(ctx))
			Expect(span.IsRecording()).To(BeFalse())
			tracing.End(span, nil)
		})
	})

	Context("when tracing is configured", func() {
		BeforeEach(func() {
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder))
			tracing.ConfigureTraceProvider(tp)
		})

		It("records spans with their attributes", func() {
			_, span := tracing.StartSpan(context.Background(), "review.aggregate", tracing.Attrs{
				"review.id": "12",
			})
			tracing.End(span, nil)

			ended := spanRecorder.Ended()
			Expect(ended).To(HaveLen(1))
			Expect(ended[0].Name()).To(Equal("review.aggregate"))
			Expect(ended[0].Status().Code).To(Equal(codes.Ok))

			attrs := map[string]string{}
			for _, a := range ended[0].Attributes() {
				attrs[string(a.Key)] = a.Value.AsString()
			}
			Expect(attrs).To(HaveKeyWithValue("review.id", "12"))
		})

		It("marks failed spans", func() {
			_, span := tracing.StartSpan(context.Background(), "review.persist", nil)
			tracing.End(span, errors.New("disaster"))

			ended := spanRecorder.Ended()
			Expect(ended).To(HaveLen(1))
			Expect(ended[0].Status().Code).To(Equal(codes.Error))
			Expect(ended[0].Status().Description).To(Equal("disaster"))
			Expect(ended[0].Events()).NotTo(BeEmpty())
		})

		It("nests child spans under the parent", func() {
			ctx, parent := tracing.StartSpan(context.Background(), "parent", nil)
			_, child := tracing.StartSpan(ctx, "child", nil)
			tracing.End(child, nil)
			tracing.End(parent, nil)

			ended := spanRecorder.Ended()
			Expect(ended).To(HaveLen(2))
			Expect(ended[0].Parent().SpanID()).To(Equal(ended[1].SpanContext().SpanID()))
		})
	})

	Describe("Config.TraceProvider", func() {
		It("returns nil when no exporter is configured", func() {
			tp, err := tracing.Config{}.TraceProvider(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(tp).To(BeNil())
		})

		It("builds a provider for an OTLP address", func() {
			tp, err := tracing.Config{ServiceName: "smartcode", OTLPAddress: "localhost:4317"}.TraceProvider(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(tp).NotTo(BeNil())
			_ = tp.Shutdown(context.Background())
		})
	})
})
