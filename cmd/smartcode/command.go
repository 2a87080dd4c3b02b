package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/riyaa1611/SmartCode-Demo/config"
	"github.com/riyaa1611/SmartCode-Demo/storage"
	"github.com/riyaa1611/SmartCode-Demo/telemetry"
	"github.com/riyaa1611/SmartCode-Demo/tracing"
)

type SmartCodeCommand struct {
	Version func() `short:"v" long:"version" description:"Print the version of SmartCode and exit"`

	Score ScoreCommand `command:"score" description:"Score review bundles and store the outcome."`
	Stats StatsCommand `command:"stats" description:"Summarize the stored reviews of a repository."`
	Show  ShowCommand  `command:"show"  description:"Print a stored review with its findings and risk metrics."`
}

// Options are shared by every subcommand.
type Options struct {
	Logger LagerFlag

	ConfigFile  string `long:"config"       description:"Path to a scoring.yml overriding the default weights."`
	Profile     string `long:"profile"      description:"Built-in scoring profile to use instead of a config file." choice:"default" choice:"security" choice:"strict"`
	DatabaseURL string `long:"database-url" env:"SMARTCODE_DATABASE_URL" description:"PostgreSQL connection URL. Reviews are kept in memory when empty."`

	Cache storage.CacheConfig `group:"Cache"`

	Tracing tracing.Config        `group:"Tracing" namespace:"tracing"`
	Metrics tracing.MetricsConfig `group:"Metrics" namespace:"metrics"`

	Output io.Writer   `no-flag:"true"`
	Clock  clock.Clock `no-flag:"true"`
}

func (o *Options) logger(component string) lager.Logger {
	return o.Logger.Logger(component, os.Stderr)
}

func (o *Options) clock() clock.Clock {
	if o.Clock == nil {
		return clock.NewClock()
	}
	return o.Clock
}

func (o *Options) output() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

func (o *Options) scoringConfig() (*config.ScoringConfig, error) {
	if o.Profile != "" {
		if o.ConfigFile != "" {
			return nil, fmt.Errorf("--profile and --config are mutually exclusive")
		}
		return config.LoadProfile(o.Profile)
	}
	return config.LoadFile(o.ConfigFile)
}

func (o *Options) openStore() (storage.Store, error) {
	store, err := storage.NewStore(o.DatabaseURL, o.clock())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return storage.NewCachedStore(store, o.Cache), nil
}

// configureTelemetry installs the trace and meter providers and returns a
// function that flushes them.
func (o *Options) configureTelemetry(ctx context.Context, logger lager.Logger) (func(), error) {
	var shutdowns []func(context.Context) error

	tp, err := o.Tracing.TraceProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("configure tracing: %w", err)
	}
	if tp != nil {
		tracing.ConfigureTraceProvider(tp)
		shutdowns = append(shutdowns, tp.Shutdown)
	}

	mp, shutdown, err := o.Metrics.MeterProvider()
	if err != nil {
		return nil, fmt.Errorf("configure metrics: %w", err)
	}
	if mp != nil {
		tracing.ConfigureMeterProvider(mp)
		shutdowns = append(shutdowns, shutdown)
	}

	telemetry.InitOTelMetrics()

	return func() {
		for _, shutdown := range shutdowns {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("failed-to-shutdown-telemetry", err)
			}
		}
	}, nil
}

func (o *Options) writeJSON(v any) error {
	enc := json.NewEncoder(o.output())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
