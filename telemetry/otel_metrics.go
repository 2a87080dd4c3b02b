package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

var (
	reviewsCompletedCounter       otelmetric.Float64Counter
	reviewsFailedCounter          otelmetric.Float64Counter
	findingsRecordedCounter       otelmetric.Float64Counter
	confidenceScoreHistogram      otelmetric.Float64Histogram
	aggregationDurationHistogram  otelmetric.Float64Histogram
	diffAnalysisDurationHistogram otelmetric.Float64Histogram
)

// InitOTelMetrics creates OTel instruments for review scoring.
func InitOTelMetrics() {
	meter := otel.Meter("smartcode")

	c, err := meter.Float64Counter(
		"smartcode.reviews.completed",
		otelmetric.WithDescription("Number of reviews completed"),
	)
	if err == nil {
		reviewsCompletedCounter = c
	}

	c, err = meter.Float64Counter(
		"smartcode.reviews.failed",
		otelmetric.WithDescription("Number of reviews moved to error"),
	)
	if err == nil {
		reviewsFailedCounter = c
	}

	c, err = meter.Float64Counter(
		"smartcode.findings.recorded",
		otelmetric.WithDescription("Number of normalized findings persisted"),
	)
	if err == nil {
		findingsRecordedCounter = c
	}

	h, err := meter.Float64Histogram(
		"smartcode.review.confidence",
		otelmetric.WithDescription("Confidence score of completed reviews"),
		otelmetric.WithExplicitBucketBoundaries(20, 40, 60, 70, 80, 90, 100),
	)
	if err == nil {
		confidenceScoreHistogram = h
	}

	h, err = meter.Float64Histogram(
		"smartcode.aggregation.duration",
		otelmetric.WithDescription("Duration of review aggregation in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err == nil {
		aggregationDurationHistogram = h
	}

	h, err = meter.Float64Histogram(
		"smartcode.diff_analysis.duration",
		otelmetric.WithDescription("Duration of diff analysis in seconds"),
		otelmetric.WithUnit("s"),
	)
	if err == nil {
		diffAnalysisDurationHistogram = h
	}
}

// RecordReviewCompleted counts a completed review and observes its
// confidence score.
func RecordReviewCompleted(ctx context.Context, repo string, verdict schema.Verdict, confidence float64) {
	attrs := otelmetric.WithAttributes(
		attribute.String("review.repo", repo),
		attribute.String("review.verdict", string(verdict)),
	)
	if reviewsCompletedCounter != nil {
		reviewsCompletedCounter.Add(ctx, 1, attrs)
	}
	if confidenceScoreHistogram != nil {
		confidenceScoreHistogram.Record(ctx, confidence, attrs)
	}
}

// RecordReviewFailed counts a review that was moved to error.
func RecordReviewFailed(ctx context.Context, repo string) {
	if reviewsFailedCounter == nil {
		return
	}
	reviewsFailedCounter.Add(ctx, 1,
		otelmetric.WithAttributes(
			attribute.String("review.repo", repo),
		),
	)
}

// RecordFindings counts persisted findings by category and severity.
func RecordFindings(ctx context.Context, findings []schema.Finding) {
	if findingsRecordedCounter == nil {
		return
	}

	type key struct {
		category schema.Category
		severity schema.Severity
	}
	counts := map[key]float64{}
	for _, f := range findings {
		counts[key{f.Category, f.Severity}]++
	}

	for k, n := range counts {
		findingsRecordedCounter.Add(ctx, n,
			otelmetric.WithAttributes(
				attribute.String("finding.category", string(k.category)),
				attribute.String("finding.severity", string(k.severity)),
			),
		)
	}
}

// RecordAggregationDuration records how long one aggregation took.
func RecordAggregationDuration(ctx context.Context, duration time.Duration, status string) {
	if aggregationDurationHistogram == nil {
		return
	}
	aggregationDurationHistogram.Record(ctx, duration.Seconds(),
		otelmetric.WithAttributes(
			attribute.String("aggregation.status", status),
		),
	)
}

// RecordDiffAnalysisDuration records how long parsing and measuring a diff
// took.
func RecordDiffAnalysisDuration(ctx context.Context, duration time.Duration, files int) {
	if diffAnalysisDurationHistogram == nil {
		return
	}
	diffAnalysisDurationHistogram.Record(ctx, duration.Seconds(),
		otelmetric.WithAttributes(
			attribute.Int("diff.files", files),
		),
	)
}
