package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/signfn/internal/nn"
	"github.com/born-ml/signfn/internal/tensor"
)

type activateOptions struct {
	values        []float64
	shape         []int
	grad          []float64
	inference     bool
	deterministic bool
}

func newActivateCmd(global *globalOptions) *cobra.Command {
	opts := &activateOptions{}

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Run one forward and backward pass",
		Long: `activate binarizes --values with one activation instance, then feeds ` +
			`--grad (default: ones) through the matching backward call. ` +
			`--inference uses the Forward/Backward path instead of Activate/Derivative.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.config(cmd)
			if err != nil {
				return err
			}
			return runActivate(cmd, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.Float64SliceVar(&opts.values, "values", nil, "input values, comma separated")
	f.IntSliceVar(&opts.shape, "shape", nil, "input shape (default: one dimension)")
	f.Float64SliceVar(&opts.grad, "grad", nil, "upstream gradient (default: ones)")
	f.BoolVar(&opts.inference, "inference", false, "use Forward/Backward instead of Activate/Derivative")
	f.BoolVar(&opts.deterministic, "deterministic", false, "use deterministic binary neurons")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func runActivate(cmd *cobra.Command, cfg nn.Config, opts *activateOptions) error {
	shape := tensor.Shape(opts.shape)
	if len(shape) == 0 {
		shape = tensor.Shape{len(opts.values)}
	}
	x, err := tensor.FromSlice(opts.values, shape)
	if err != nil {
		return fmt.Errorf("values: %w", err)
	}

	y := tensor.Ones[float64](shape)
	if len(opts.grad) > 0 {
		if y, err = tensor.FromSlice(opts.grad, shape); err != nil {
			return fmt.Errorf("grad: %w", err)
		}
	}

	var fn nn.SignFunction[float64]
	if opts.deterministic {
		fn, err = nn.NewDeterministicBinaryNeurons[float64](cfg)
	} else {
		fn, err = nn.NewStochasticBinaryNeurons[float64](cfg)
	}
	if err != nil {
		return err
	}

	forward, backward := fn.Activate, fn.Derivative
	if opts.inference {
		forward, backward = fn.Forward, fn.Backward
	}

	out, err := forward(x)
	if err != nil {
		return err
	}
	grad, err := backward(y)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "output:   %v\n", out.Data())
	fmt.Fprintf(w, "gradient: %v\n", grad.Data())
	return nil
}
