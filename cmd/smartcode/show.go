package main

import (
	"context"

	"code.cloudfoundry.org/lager/v3"

	"github.com/riyaa1611/SmartCode-Demo/metrics"
	"github.com/riyaa1611/SmartCode-Demo/schema"
)

type ShowCommand struct {
	Options

	Review int64 `long:"review" required:"true" description:"ID of the review to show."`
}

// ReviewReport is a stored review with the risk metrics recomputed from its
// findings. Complexity is not stored, so tech debt is reported as zero.
type ReviewReport struct {
	Review   schema.Review    `json:"review"`
	Findings []schema.Finding `json:"findings"`
	Metrics  metrics.Summary  `json:"metrics"`
}

func (cmd *ShowCommand) Execute(args []string) error {
	ctx := context.Background()
	logger := cmd.logger("smartcode").Session("show", lager.Data{"review": cmd.Review})

	cfg, err := cmd.scoringConfig()
	if err != nil {
		return err
	}

	store, err := cmd.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	review, err := store.GetReview(ctx, cmd.Review)
	if err != nil {
		logger.Error("failed-to-get-review", err)
		return err
	}

	findings, err := store.Findings(ctx, cmd.Review)
	if err != nil {
		logger.Error("failed-to-get-findings", err)
		return err
	}

	var confidence schema.Confidence
	if review.ConfidenceScore != nil {
		confidence.Score = *review.ConfidenceScore
	}
	confidence.Verdict = review.Verdict

	calculator := metrics.NewCalculator(cfg.SeverityWeights)

	return cmd.writeJSON(ReviewReport{
		Review:   review,
		Findings: findings,
		Metrics:  calculator.Summary(findings, schema.ComplexityMetrics{}, confidence, 1),
	})
}
