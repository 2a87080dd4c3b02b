package main

import (
	"context"

	"code.cloudfoundry.org/lager/v3"

	"github.com/riyaa1611/SmartCode-Demo/metrics"
)

type StatsCommand struct {
	Options

	Repo  string `long:"repo"  required:"true" description:"Repository to summarize."`
	Limit int    `long:"limit" default:"0"     description:"Only consider the most recent N reviews. 0 means all."`
}

func (cmd *StatsCommand) Execute(args []string) error {
	ctx := context.Background()
	logger := cmd.logger("smartcode").Session("stats", lager.Data{"repo": cmd.Repo})

	store, err := cmd.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	reviews, err := store.ListReviews(ctx, cmd.Repo, cmd.Limit)
	if err != nil {
		logger.Error("failed-to-list-reviews", err)
		return err
	}

	return cmd.writeJSON(metrics.Repository(cmd.Repo, reviews))
}
