package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/samuelfneumann/tennisrl/environment/envconfig"
	"github.com/samuelfneumann/tennisrl/experiment"
	"github.com/samuelfneumann/tennisrl/utils/logging"
	"github.com/samuelfneumann/tennisrl/utils/progressbar"
)

type runFlags struct {
	config    string
	arenas    int
	steps     int
	seed      uint64
	logLevel  string
	logFormat string
	output    string
	progress  bool
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run self-play experiments in independent arenas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(f.config)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("arenas") {
				c.Arenas = f.arenas
			}
			if flags.Changed("steps") {
				c.MaxSteps = f.steps
			}
			if flags.Changed("seed") {
				c.Seed = f.seed
			}
			if flags.Changed("log-level") {
				c.LogLevel = f.logLevel
			}
			if flags.Changed("output") {
				c.Output = f.output
			}
			if err := c.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(c.LogLevel, f.logFormat)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var bar *progressbar.ProgressBar
			if f.progress {
				bar = progressbar.New(cmd.ErrOrStderr(), 40,
					c.Arenas*c.MaxSteps)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return run(ctx, c, logger, bar)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "",
		"run config (.json, .yaml, or .yml)")
	flags.IntVarP(&f.arenas, "arenas", "n", 1, "number of arenas run "+
		"concurrently")
	flags.IntVarP(&f.steps, "steps", "s", 5_000, "steps taken in each arena")
	flags.Uint64Var(&f.seed, "seed", 1, "seed of the run")
	flags.StringVar(&f.logLevel, "log-level", "info", "minimum log level")
	flags.StringVar(&f.logFormat, "log-format", logging.Console,
		"log encoding, json or console")
	flags.StringVarP(&f.output, "output", "o", "", "directory to save "+
		"episodic returns, lengths, and energies to")
	flags.BoolVar(&f.progress, "progress", false, "display a progress bar")

	return cmd
}

// run runs the experiments described by c concurrently, one per arena,
// and saves their data once all have finished
func run(ctx context.Context, c envconfig.Config, logger *zap.Logger,
	bar *progressbar.ProgressBar) error {
	params, err := loadParameters(c)
	if err != nil {
		return err
	}
	logger.Info("starting run",
		zap.Int("arenas", c.Arenas),
		zap.Int("steps", c.MaxSteps),
		zap.Uint64("seed", c.Seed),
		zap.Any("parameters", params.Snapshot()),
	)

	if c.Output != "" {
		if err := os.MkdirAll(c.Output, 0o755); err != nil {
			return fmt.Errorf("run: could not create output directory: %w",
				err)
		}
	}

	exps := make([]*experiment.SelfPlay, c.Arenas)
	for i := range exps {
		exps[i], err = experiment.New(c, i, params, logger)
		if err != nil {
			return err
		}
		if bar != nil {
			exps[i].OnStep(bar.Increment)
		}
	}

	barDone := make(chan struct{})
	barCtx, stopBar := context.WithCancel(ctx)
	if bar != nil {
		go func() {
			defer close(barDone)
			bar.Run(barCtx, time.Second)
		}()
	} else {
		close(barDone)
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, exp := range exps {
		exp := exp
		g.Go(func() error {
			return exp.Run(gctx)
		})
	}
	runErr := g.Wait()

	stopBar()
	<-barDone

	if runErr != nil {
		logger.Warn("run stopped early", zap.Error(runErr))
	}

	for _, exp := range exps {
		if err := exp.Save(); err != nil {
			return fmt.Errorf("run: could not save %v: %w",
				exp.Arena().Name(), err)
		}
	}

	var steps uint
	var episodes int
	for _, exp := range exps {
		steps += exp.Steps()
		episodes += exp.Episodes()
	}
	logger.Info("run finished",
		zap.Uint("steps", steps),
		zap.Int("episodes", episodes),
		zap.Duration("elapsed", time.Since(start)),
	)

	return runErr
}
