package main

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/riyaa1611/SmartCode-Demo/aggregate"
	"github.com/riyaa1611/SmartCode-Demo/analysis"
	"github.com/riyaa1611/SmartCode-Demo/storage"
)

type ScoreCommand struct {
	Options

	Repo        string `long:"repo"        description:"Repository name for bundles that do not carry one."`
	PR          int    `long:"pr"          description:"Pull request number for bundles that do not carry one."`
	Concurrency int    `long:"concurrency" default:"4" description:"Number of bundles scored in parallel."`

	Args struct {
		Bundles []string `positional-arg-name:"BUNDLE" required:"1" description:"JSON or YAML review bundle"`
	} `positional-args:"yes"`
}

// ScoreResult is printed for every bundle, in argument order.
type ScoreResult struct {
	Bundle   string `json:"bundle"`
	ReviewID int64  `json:"review_id"`
	aggregate.Outcome
}

func (cmd *ScoreCommand) Execute(args []string) error {
	ctx := context.Background()
	logger := cmd.logger("smartcode")

	cfg, err := cmd.scoringConfig()
	if err != nil {
		return err
	}

	shutdown, err := cmd.configureTelemetry(ctx, logger)
	if err != nil {
		return err
	}
	defer shutdown()

	store, err := cmd.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	aggregator, err := aggregate.NewAggregator(logger, cmd.clock(), store, cfg)
	if err != nil {
		return err
	}
	analyzer := analysis.NewAnalyzer(logger)

	results := make([]*ScoreResult, len(cmd.Args.Bundles))
	errs := make([]error, len(cmd.Args.Bundles))

	g := new(errgroup.Group)
	g.SetLimit(max(cmd.Concurrency, 1))

	for i, path := range cmd.Args.Bundles {
		g.Go(func() error {
			result, err := cmd.scoreBundle(ctx, logger, store, aggregator, analyzer, path)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	var combined error
	for i, result := range results {
		if errs[i] != nil {
			combined = multierror.Append(combined, errs[i])
			continue
		}
		if err := cmd.writeJSON(result); err != nil {
			return err
		}
	}

	return combined
}

func (cmd *ScoreCommand) scoreBundle(
	ctx context.Context,
	logger lager.Logger,
	store storage.Store,
	aggregator *aggregate.Aggregator,
	analyzer *analysis.Analyzer,
	path string,
) (*ScoreResult, error) {
	logger = logger.Session("score-bundle", lager.Data{"bundle": path})

	bundle, err := LoadBundle(path)
	if err != nil {
		return nil, err
	}

	in, err := bundle.Input(ctx, analyzer, cmd.clock())
	if err != nil {
		logger.Error("failed-to-analyze-diff", err)
		return nil, err
	}

	review, err := store.CreateReview(ctx, bundle.NewReview(cmd.Repo, cmd.PR))
	if err != nil {
		logger.Error("failed-to-create-review", err)
		return nil, err
	}

	outcome, err := aggregator.Aggregate(ctx, review.ID, in)
	if err != nil {
		return nil, err
	}

	return &ScoreResult{
		Bundle:   path,
		ReviewID: review.ID,
		Outcome:  outcome,
	}, nil
}
