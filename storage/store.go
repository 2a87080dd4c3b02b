package storage

import (
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/clock"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ErrReviewNotFound is returned when a review ID does not exist.
var ErrReviewNotFound = errors.New("review not found")

// Store persists reviews and their findings. Completing a review writes its
// findings and the completed status in one step, so findings are never
// visible for a review that is still pending or has errored.
//
//counterfeiter:generate . Store
type Store interface {
	CreateReview(ctx context.Context, review schema.NewReview) (schema.Review, error)
	GetReview(ctx context.Context, id int64) (schema.Review, error)
	ListReviews(ctx context.Context, repo string, limit int) ([]schema.Review, error)
	Findings(ctx context.Context, reviewID int64) ([]schema.Finding, error)
	CompleteReview(ctx context.Context, reviewID int64, update schema.ReviewUpdate, findings []schema.Finding) (schema.Review, error)
	FailReview(ctx context.Context, reviewID int64) error
	Close() error
}

// NewStore creates a Store based on the database URL. Returns a MemoryStore
// when databaseURL is empty.
func NewStore(databaseURL string, clk clock.Clock) (Store, error) {
	if databaseURL == "" {
		return NewMemoryStore(clk), nil
	}
	return OpenPostgresStore(databaseURL)
}

func cloneReview(r schema.Review) schema.Review {
	out := r
	if r.IssueNumbers != nil {
		out.IssueNumbers = append([]int(nil), r.IssueNumbers...)
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	if r.ConfidenceScore != nil {
		v := *r.ConfidenceScore
		out.ConfidenceScore = &v
	}
	if r.OverallScore != nil {
		v := *r.OverallScore
		out.OverallScore = &v
	}
	if r.ScoreBreakdown != nil {
		b := *r.ScoreBreakdown
		out.ScoreBreakdown = &b
	}
	return out
}

func cloneFindings(findings []schema.Finding) []schema.Finding {
	out := make([]schema.Finding, len(findings))
	for i, f := range findings {
		out[i] = f
		if f.References != nil {
			out[i].References = append([]string(nil), f.References...)
		}
	}
	return out
}

func checkCompletion(update schema.ReviewUpdate) error {
	if update.Status != schema.ReviewCompleted {
		return fmt.Errorf("%w: completion must set status %s, got %s", schema.ErrInvalidTransition, schema.ReviewCompleted, update.Status)
	}
	return nil
}

// prepareFindings binds findings to a review and checks each one before
// anything is written.
func prepareFindings(reviewID int64, findings []schema.Finding) ([]schema.Finding, error) {
	prepared := cloneFindings(findings)
	for i := range prepared {
		if err := prepared[i].AssignReview(reviewID); err != nil {
			return nil, err
		}
		if err := prepared[i].Validate(); err != nil {
			return nil, err
		}
	}
	return prepared, nil
}
