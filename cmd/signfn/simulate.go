package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/signfn/internal/nn"
	"github.com/born-ml/signfn/internal/tensor"
)

type simulateOptions struct {
	x       float64
	trials  int
	batch   int
	workers int
}

func newSimulateCmd(global *globalOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate the firing rate of stochastic neurons",
		Long: `simulate runs --trials independent stochastic neuron instances ` +
			`concurrently, each on --batch copies of --x, and compares the ` +
			`observed firing rate with sigmoid(x).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.config(cmd)
			if err != nil {
				return err
			}
			return runSimulate(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.x, "x", 0, "pre-activation value")
	f.IntVar(&opts.trials, "trials", 100, "number of independent instances")
	f.IntVar(&opts.batch, "batch", 100, "neurons per instance")
	f.IntVar(&opts.workers, "workers", 4, "maximum concurrent instances")

	return cmd
}

func runSimulate(cmd *cobra.Command, cfg nn.Config, opts *simulateOptions) error {
	if opts.trials <= 0 || opts.batch <= 0 || opts.workers <= 0 {
		return fmt.Errorf("trials, batch and workers must be positive")
	}

	// Each trial owns its neurons; activations are not safe for concurrent use.
	fired := make([]float64, opts.trials)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.workers)

	for trial := range opts.trials {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trialCfg := cfg
			trialCfg.Seed = cfg.Seed + int64(trial)
			neurons, err := nn.NewStochasticBinaryNeurons[float64](trialCfg)
			if err != nil {
				return err
			}

			x := tensor.Full[float64](tensor.Shape{opts.batch}, opts.x)
			out, err := neurons.Forward(x)
			if err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}
			if _, err := neurons.Backward(tensor.Ones[float64](x.Shape())); err != nil {
				return fmt.Errorf("trial %d: %w", trial, err)
			}

			for _, v := range out.Data() {
				fired[trial] += v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total float64
	for _, f := range fired {
		total += f
	}
	rate := total / float64(opts.trials*opts.batch)
	expected := 1.0 / (1.0 + math.Exp(-opts.x))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "firing rate: %.4f\n", rate)
	fmt.Fprintf(w, "sigmoid(x):  %.4f\n", expected)
	return nil
}
