// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/signfn/internal/nn"
	"github.com/born-ml/signfn/internal/tensor"
)

// Capability sets

// ActivatingFunction is the capability set shared by every activation:
// Activate/Derivative (retaining path) and Forward/Backward (non-retaining).
type ActivatingFunction[T tensor.Float] = nn.ActivatingFunction[T]

// SignFunction is an activation built on a Heaviside step.
type SignFunction[T tensor.Float] = nn.SignFunction[T]

// BatchNorm is the optional batch-normalization collaborator.
type BatchNorm[T tensor.Float] = nn.BatchNorm[T]

// Configuration

// Config holds the scalar configuration shared by all sign functions.
type Config = nn.Config

// Option configures the collaborators of an activation.
type Option[T tensor.Float] = nn.Option[T]

// DefaultMemoryLen is the default bound on each activation history.
const DefaultMemoryLen = nn.DefaultMemoryLen

// DefaultConfig returns the standard configuration
// (MemoryLen 50, ZeroValue 0.5).
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// WithBatchNorm applies bn after Activate and before Derivative.
func WithBatchNorm[T tensor.Float](bn BatchNorm[T]) Option[T] {
	return nn.WithBatchNorm(bn)
}

// WithLogistic replaces the logistic surrogate used by stochastic neurons.
func WithLogistic[T tensor.Float](fn ActivatingFunction[T]) Option[T] {
	return nn.WithLogistic(fn)
}

// WithNoise replaces the noise source used by stochastic neurons.
func WithNoise[T tensor.Float](src tensor.NoiseSource[T]) Option[T] {
	return nn.WithNoise(src)
}

// Errors

var (
	// ErrUnmatchedBackward reports a backward call without a matching forward call.
	ErrUnmatchedBackward = nn.ErrUnmatchedBackward

	// ErrShapeMismatch reports a gradient whose shape differs from the stored activation.
	ErrShapeMismatch = nn.ErrShapeMismatch

	// ErrInvalidZeroValue reports a zero value outside [0, 1].
	ErrInvalidZeroValue = nn.ErrInvalidZeroValue

	// ErrInvalidMemoryLen reports a non-positive or inconsistent history bound.
	ErrInvalidMemoryLen = nn.ErrInvalidMemoryLen
)

// Activations

// StochasticBinaryNeurons fires with probability σ(x) and backpropagates with
// the sigmoid-adjusted Straight-Through Estimator.
type StochasticBinaryNeurons[T tensor.Float] = nn.StochasticBinaryNeurons[T]

// NewStochasticBinaryNeurons creates stochastic binary neurons.
//
// Example:
//
//	neurons, err := nn.NewStochasticBinaryNeurons[float64](nn.DefaultConfig())
func NewStochasticBinaryNeurons[T tensor.Float](cfg Config, opts ...Option[T]) (*StochasticBinaryNeurons[T], error) {
	return nn.NewStochasticBinaryNeurons(cfg, opts...)
}

// DeterministicBinaryNeurons is the noise-free Heaviside activation with a
// pass-through gradient.
type DeterministicBinaryNeurons[T tensor.Float] = nn.DeterministicBinaryNeurons[T]

// NewDeterministicBinaryNeurons creates deterministic binary neurons.
func NewDeterministicBinaryNeurons[T tensor.Float](cfg Config, opts ...Option[T]) (*DeterministicBinaryNeurons[T], error) {
	return nn.NewDeterministicBinaryNeurons(cfg, opts...)
}

// LogisticFunction is the sigmoid activation that serves as the
// differentiable surrogate of stochastic neurons.
type LogisticFunction[T tensor.Float] = nn.LogisticFunction[T]

// NewLogisticFunction creates a logistic activation.
func NewLogisticFunction[T tensor.Float](cfg Config, opts ...Option[T]) (*LogisticFunction[T], error) {
	return nn.NewLogisticFunction(cfg, opts...)
}
