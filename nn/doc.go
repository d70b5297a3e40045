// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides sign-function activations: binary neurons with
// Straight-Through Estimator gradients.
//
// # Overview
//
// This package contains:
//   - StochasticBinaryNeurons: fires with probability sigmoid(x)
//   - DeterministicBinaryNeurons: plain Heaviside step
//   - LogisticFunction: the sigmoid surrogate used for gradients
//   - ActivatingFunction, SignFunction, BatchNorm: capability sets
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/signfn/nn"
//	    "github.com/born-ml/signfn/tensor"
//	)
//
//	func main() {
//	    neurons, err := nn.NewStochasticBinaryNeurons[float64](nn.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    x, _ := tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{3})
//	    out, err := neurons.Activate(x)            // elements in {0, 0.5, 1}
//	    grad, err := neurons.Derivative(upstream)  // consumes the noise of Activate
//	}
//
// # Pairing
//
// Activate/Derivative and Forward/Backward each keep their own bounded
// history (MemoryLen entries, 50 by default). A backward call consumes the
// most recent entry of its path, so calls must be paired last-in-first-out.
// Calling Derivative or Backward with nothing left to consume returns
// ErrUnmatchedBackward.
//
// Only the Activate/Derivative path runs the optional BatchNorm
// collaborator. Use Forward/Backward when the output will not be
// batch-normalized, for example during inference.
//
// # Concurrency
//
// Activations are not safe for concurrent use. Give each goroutine its own
// instance.
package nn
