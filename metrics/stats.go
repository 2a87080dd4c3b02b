package metrics

import (
	"math"

	"github.com/riyaa1611/SmartCode-Demo/schema"
)

// RepositoryStats summarizes the stored reviews of one repository.
type RepositoryStats struct {
	Repository          string                 `json:"repository"`
	TotalReviews        int                    `json:"total_reviews"`
	CompletedReviews    int                    `json:"completed_reviews"`
	CompletionRate      float64                `json:"completion_rate"`
	AverageConfidence   float64                `json:"average_confidence_score"`
	VerdictDistribution map[schema.Verdict]int `json:"verdict_distribution"`
}

// Repository computes RepositoryStats over reviews. The average confidence
// covers every review that has a score and is rounded to one decimal.
func Repository(repo string, reviews []schema.Review) RepositoryStats {
	stats := RepositoryStats{
		Repository:   repo,
		TotalReviews: len(reviews),
		VerdictDistribution: map[schema.Verdict]int{
			schema.VerdictApprove:          0,
			schema.VerdictReviewNeeded:     0,
			schema.VerdictChangesRequested: 0,
		},
	}

	var (
		sum    float64
		scored int
	)
	for _, r := range reviews {
		if r.Status == schema.ReviewCompleted {
			stats.CompletedReviews++
		}
		if r.ConfidenceScore != nil {
			sum += *r.ConfidenceScore
			scored++
		}
		if _, known := stats.VerdictDistribution[r.Verdict]; known {
			stats.VerdictDistribution[r.Verdict]++
		}
	}

	if stats.TotalReviews > 0 {
		stats.CompletionRate = float64(stats.CompletedReviews) / float64(stats.TotalReviews)
	}
	if stats.CompletedReviews > 0 && scored > 0 {
		stats.AverageConfidence = math.Round(sum/float64(scored)*10) / 10
	}

	return stats
}
