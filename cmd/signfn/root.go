package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/signfn/internal/config"
	"github.com/born-ml/signfn/internal/nn"
)

const version = "v0.1.0-dev"

// globalOptions holds the persistent flags shared by all subcommands.
type globalOptions struct {
	envFile   string
	verbose   bool
	memoryLen int
	zeroValue float64
	seed      int64
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "signfn",
		Short: "Run stochastic and deterministic binary neurons from the command line.",
		Long: `signfn runs sign-function activations on small tensors. ` +
			`It prints thresholded outputs and Straight-Through Estimator gradients, ` +
			`and can estimate the firing rate of stochastic neurons.`,
		SilenceUsage: true,
	}

	defaults := nn.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", "", "load SIGNFN_* settings from this .env file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug records to stderr")
	pf.IntVar(&opts.memoryLen, "memory-len", defaults.MemoryLen, "history bound per path")
	pf.Float64Var(&opts.zeroValue, "zero-value", defaults.ZeroValue, "step output at exactly zero, in [0, 1]")
	pf.Int64Var(&opts.seed, "seed", defaults.Seed, "seed for the uniform noise source")

	root.AddCommand(
		newVersionCmd(),
		newActivateCmd(opts),
		newSimulateCmd(opts),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "signfn %s\n", version)
		},
	}
}

// config layers explicitly set flags over the env file and environment.
func (o *globalOptions) config(cmd *cobra.Command) (nn.Config, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("memory-len") {
		if o.memoryLen <= 0 {
			return cfg, fmt.Errorf("--memory-len=%d: must be a positive integer", o.memoryLen)
		}
		cfg.MemoryLen = o.memoryLen
	}
	if flags.Changed("zero-value") {
		cfg.ZeroValue = o.zeroValue
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return cfg, nil
}
