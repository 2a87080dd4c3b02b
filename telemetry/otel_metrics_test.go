package telemetry_test

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/riyaa1611/SmartCode-Demo/schema"
	"github.com/riyaa1611/SmartCode-Demo/telemetry"
)

var _ = Describe("OTel Review Metrics", func() {
	var (
		reader *sdkmetric.ManualReader
	)

	BeforeEach(func() {
		reader = sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		otel.SetMeterProvider(mp)

		telemetry.InitOTelMetrics()
	})

	findHistogram := func(name string) *metricdata.Histogram[float64] {
		var rm metricdata.ResourceMetrics
		err := reader.Collect(context.Background(), &rm)
		Expect(err).NotTo(HaveOccurred())
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				if m.Name == name {
					h, ok := m.Data.(metricdata.Histogram[float64])
					if ok {
						return &h
					}
				}
			}
		}
		return nil
	}

	findSum := func(name string) *metricdata.Sum[float64] {
		var rm metricdata.ResourceMetrics
		err := reader.Collect(context.Background(), &rm)
		Expect(err).NotTo(HaveOccurred())
		for _, sm := range rm.ScopeMetrics {
			for _, m := range sm.Metrics {
				if m.Name == name {
					s, ok := m.Data.(metricdata.Sum[float64])
					if ok {
						return &s
					}
				}
			}
		}
		return nil
	}

	Describe("completed reviews", func() {
		It("counts reviews and observes confidence by verdict", func() {
			telemetry.RecordReviewCompleted(context.Background(), "acme/api", schema.VerdictReviewNeeded, 77.5)

			s := findSum("smartcode.reviews.completed")
			Expect(s).ToNot(BeNil(), "expected to find smartcode.reviews.completed metric")
			Expect(s.DataPoints).To(HaveLen(1))
			Expect(s.DataPoints[0].Value).To(Equal(1.0))

			verdict, ok := s.DataPoints[0].Attributes.Value("review.verdict")
			Expect(ok).To(BeTrue())
			Expect(verdict.AsString()).To(Equal("REVIEW_NEEDED"))

			h := findHistogram("smartcode.review.confidence")
			Expect(h).ToNot(BeNil(), "expected to find smartcode.review.confidence metric")
			Expect(h.DataPoints).NotTo(BeEmpty())
			Expect(h.DataPoints[0].Sum).To(Equal(77.5))
		})
	})

	Describe("failed reviews", func() {
		It("counts failures by repository", func() {
			telemetry.RecordReviewFailed(context.Background(), "acme/api")

			s := findSum("smartcode.reviews.failed")
			Expect(s).ToNot(BeNil())
			Expect(s.DataPoints).To(HaveLen(1))

			repo, ok := s.DataPoints[0].Attributes.Value("review.repo")
			Expect(ok).To(BeTrue())
			Expect(repo.AsString()).To(Equal("acme/api"))
		})
	})

	Describe("findings", func() {
		It("counts findings per category and severity", func() {
			telemetry.RecordFindings(context.Background(), []schema.Finding{
				{Category: schema.CategorySecurity, Severity: schema.SeverityHigh},
				{Category: schema.CategorySecurity, Severity: schema.SeverityHigh},
				{Category: schema.CategoryPerformance, Severity: schema.SeverityMedium},
			})

			s := findSum("smartcode.findings.recorded")
			Expect(s).ToNot(BeNil())
			Expect(s.DataPoints).To(HaveLen(2))

			want := attribute.NewSet(
				attribute.String("finding.category", "security"),
				attribute.String("finding.severity", "high"),
			)
			var found bool
			for _, dp := range s.DataPoints {
				if dp.Attributes.Equals(&want) {
					found = true
					Expect(dp.Value).To(Equal(2.0))
				}
			}
			Expect(found).To(BeTrue())
		})

		It("records nothing for no findings", func() {
			telemetry.RecordFindings(context.Background(), nil)
			Expect(findSum("smartcode.findings.recorded")).To(BeNil())
		})
	})

	Describe("durations", func() {
		It("records aggregation duration with its status", func() {
			telemetry.RecordAggregationDuration(context.Background(), 250*time.Millisecond, "completed")

			h := findHistogram("smartcode.aggregation.duration")
			Expect(h).ToNot(BeNil())
			Expect(h.DataPoints[0].Sum).To(BeNumerically(">=", 0.25))

			status, ok := h.DataPoints[0].Attributes.Value("aggregation.status")
			Expect(ok).To(BeTrue())
			Expect(status.AsString()).To(Equal("completed"))
		})

		It("records diff analysis duration", func() {
			telemetry.RecordDiffAnalysisDuration(context.Background(), 2*time.Second, 3)

			h := findHistogram("smartcode.diff_analysis.duration")
			Expect(h).ToNot(BeNil())
			Expect(h.DataPoints[0].Sum).To(BeNumerically(">=", 2.0))
		})
	})
})
