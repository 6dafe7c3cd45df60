package main

import (
	"context"
	"errors"
	"os"

	"smart_performance/pkg/core/appconfig"
	"smart_performance/pkg/core/bootstrap"
	"smart_performance/pkg/core/generation"
	"smart_performance/pkg/core/job"
	"smart_performance/pkg/platform/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool

	// newGenerator is replaced in tests.
	newGenerator func(ctx context.Context, opts *rootOptions) (job.Generator, func(), error)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{newGenerator: buildGenerator})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "smartperf",
		Short: "Generate KPIs, improvement plans and performance reports with Gemini",
		Long: `smartperf sends one request to Gemini for each command and prints the
markdown answer.

Available commands:
  kpi     - KPAs and KPIs for a practice
  plan    - improvement plan from KPI results
  report  - performance report table from raw data

The API key is read from GEMINI_API_KEY, then from the configured store.
Input comes from the arguments, or from stdin when no arguments are given.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", appconfig.DefaultPath, "path to app.yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log generation details to stderr")

	for _, t := range generation.Tasks() {
		root.AddCommand(newTaskCmd(t, opts))
	}
	return root
}

func buildGenerator(ctx context.Context, opts *rootOptions) (job.Generator, func(), error) {
	_ = godotenv.Load()

	cfg, err := appconfig.Load(opts.configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, err
	}

	log := logger.Nop()
	if opts.verbose {
		log, err = logger.New(logger.Options{Mode: "dev", File: cfg.Log.File})
		if err != nil {
			return nil, nil, err
		}
	}

	stack, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return stack.Orchestrator, func() {
		stack.Close()
		log.Sync()
	}, nil
}
