package aggregate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-multierror"

	"github.com/riyaa1611/SmartCode-Demo/config"
	"github.com/riyaa1611/SmartCode-Demo/metrics"
	"github.com/riyaa1611/SmartCode-Demo/normalize"
	"github.com/riyaa1611/SmartCode-Demo/schema"
	"github.com/riyaa1611/SmartCode-Demo/scoring"
	"github.com/riyaa1611/SmartCode-Demo/storage"
	"github.com/riyaa1611/SmartCode-Demo/telemetry"
	"github.com/riyaa1611/SmartCode-Demo/tracing"
)

// ErrReviewNotPending is returned when aggregation is requested for a
// review that already reached a terminal status. The review is left as it
// is.
var ErrReviewNotPending = errors.New("review is not pending")

// Outcome is everything one aggregation produced.
type Outcome struct {
	Findings      []schema.Finding  `json:"findings"`
	Confidence    schema.Confidence `json:"confidence"`
	Metrics       metrics.Summary   `json:"metrics"`
	OverallScore  float64           `json:"overall_score"`
	Summary       string            `json:"summary"`
	Normalization normalize.Stats   `json:"normalization"`

	Review *schema.Review `json:"review,omitempty"`
}

// Update renders the outcome as the completion payload for a review.
func (o Outcome) Update(completedAt time.Time) schema.ReviewUpdate {
	return schema.ReviewUpdate{
		Status:          schema.ReviewCompleted,
		ConfidenceScore: o.Confidence.Score,
		OverallScore:    o.OverallScore,
		Verdict:         o.Confidence.Verdict,
		ScoreBreakdown:  o.Confidence.Breakdown,
		Summary:         o.Summary,
		CompletedAt:     completedAt,
	}
}

// Aggregator runs the normalizer, the confidence scorer and the metrics
// calculator over one review's results and persists the outcome.
type Aggregator struct {
	logger lager.Logger
	clock  clock.Clock
	store  storage.Store

	normalizer *normalize.Normalizer
	scorer     *scoring.Scorer
	calculator *metrics.Calculator
	weights    config.OverallWeights
}

func NewAggregator(
	logger lager.Logger,
	clock clock.Clock,
	store storage.Store,
	cfg *config.ScoringConfig,
) (*Aggregator, error) {
	scorer, err := scoring.NewScorer(cfg)
	if err != nil {
		return nil, err
	}

	return &Aggregator{
		logger: logger,
		clock:  clock,
		store:  store,

		normalizer: normalize.New(),
		scorer:     scorer,
		calculator: metrics.NewCalculator(cfg.SeverityWeights),
		weights:    cfg.OverallWeights,
	}, nil
}

// Evaluate computes the outcome for in without touching the store. The
// same input always yields the same outcome.
func (a *Aggregator) Evaluate(in scoring.Input) (Outcome, error) {
	merged := normalize.Merge(in.Requirement, in.Security, in.Performance, in.Quality)
	findings, stats := a.normalizer.NormalizeWithStats(merged)
	if findings == nil {
		findings = []schema.Finding{}
	}

	for i, f := range findings {
		if err := f.Validate(); err != nil {
			return Outcome{}, fmt.Errorf("normalized finding %d: %w", i, err)
		}
	}

	confidence := a.scorer.Score(in)
	overall := OverallScore(in, a.weights)

	return Outcome{
		Findings:      findings,
		Confidence:    confidence,
		Metrics:       a.calculator.Summary(findings, schema.ComplexityFrom(in.Static), confidence, in.Diff.FileCount()),
		OverallScore:  overall,
		Summary:       summarize(len(findings), confidence, overall),
		Normalization: stats,
	}, nil
}

// Aggregate evaluates in and completes the pending review reviewID with the
// outcome. Any failure after the review was found moves it to error and is
// returned; if marking the review also fails, both errors are returned.
func (a *Aggregator) Aggregate(ctx context.Context, reviewID int64, in scoring.Input) (Outcome, error) {
	logger := a.logger.Session("aggregate", lager.Data{"review": reviewID})
	start := a.clock.Now()

	ctx, span := tracing.StartSpan(ctx, "review.aggregate", tracing.Attrs{
		"review.id": strconv.FormatInt(reviewID, 10),
	})
	outcome, err := a.aggregate(ctx, logger, reviewID, in)
	tracing.End(span, err)

	status := string(schema.ReviewCompleted)
	if err != nil {
		status = string(schema.ReviewError)
	}
	telemetry.RecordAggregationDuration(ctx, a.clock.Since(start), status)

	return outcome, err
}

func (a *Aggregator) aggregate(ctx context.Context, logger lager.Logger, reviewID int64, in scoring.Input) (Outcome, error) {
	review, err := a.store.GetReview(ctx, reviewID)
	if err != nil {
		logger.Error("failed-to-get-review", err)
		err = fmt.Errorf("get review %d: %w", reviewID, err)
		if errors.Is(err, storage.ErrReviewNotFound) {
			return Outcome{}, err
		}
		return Outcome{}, a.fail(ctx, logger, schema.Review{ID: reviewID}, err)
	}

	if review.Status != schema.ReviewPending {
		logger.Info("review-not-pending", lager.Data{"status": review.Status})
		return Outcome{}, fmt.Errorf("%w: review %d is %s", ErrReviewNotPending, reviewID, review.Status)
	}

	outcome, err := a.Evaluate(in)
	if err != nil {
		logger.Error("failed-to-evaluate", err)
		return Outcome{}, a.fail(ctx, logger, review, err)
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, a.fail(ctx, logger, review, err)
	}

	completed, err := a.store.CompleteReview(ctx, reviewID, outcome.Update(a.clock.Now().UTC()), outcome.Findings)
	if err != nil {
		logger.Error("failed-to-complete-review", err)
		return Outcome{}, a.fail(ctx, logger, review, fmt.Errorf("complete review %d: %w", reviewID, err))
	}

	outcome.Review = &completed

	telemetry.RecordReviewCompleted(ctx, review.RepoName, outcome.Confidence.Verdict, outcome.Confidence.Score)
	telemetry.RecordFindings(ctx, outcome.Findings)

	logger.Info("completed", lager.Data{
		"findings":   len(outcome.Findings),
		"confidence": outcome.Confidence.Score,
		"verdict":    outcome.Confidence.Verdict,
	})

	return outcome, nil
}

// fail marks the review errored, even when ctx has been cancelled.
func (a *Aggregator) fail(ctx context.Context, logger lager.Logger, review schema.Review, cause error) error {
	err := a.store.FailReview(context.WithoutCancel(ctx), review.ID)
	if err != nil {
		logger.Error("failed-to-mark-review-errored", err)
		return multierror.Append(cause, fmt.Errorf("mark review %d errored: %w", review.ID, err))
	}

	telemetry.RecordReviewFailed(ctx, review.RepoName)
	return cause
}

func summarize(findings int, confidence schema.Confidence, overall float64) string {
	return fmt.Sprintf(
		"SmartCode AI Review: %d finding(s). Confidence: %.1f/100 (%s). Overall score: %.0f/100.",
		findings, confidence.Score, confidence.Verdict, overall,
	)
}
