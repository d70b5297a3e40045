package nn

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/signfn/internal/tensor"
)

// DeterministicBinaryNeurons is the noise-free sign function:
// Heaviside(x) forward and the plain Straight-Through Estimator backward,
// which passes the gradient through unchanged.
//
// It keeps no history, so Derivative and Backward need no pairing, but it
// honours the same configuration as the stochastic variant.
type DeterministicBinaryNeurons[T tensor.Float] struct {
	memoryLen int
	zeroValue T
	batchNorm BatchNorm[T]
	logger    *slog.Logger
}

// NewDeterministicBinaryNeurons creates deterministic binary neurons.
// Only WithBatchNorm is meaningful among the options.
func NewDeterministicBinaryNeurons[T tensor.Float](cfg Config, opts ...Option[T]) (*DeterministicBinaryNeurons[T], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, fmt.Errorf("DeterministicBinaryNeurons: %w", err)
	}
	c := &collaborators[T]{}
	for _, opt := range opts {
		opt(c)
	}

	return &DeterministicBinaryNeurons[T]{
		memoryLen: cfg.MemoryLen,
		zeroValue: T(cfg.ZeroValue),
		batchNorm: c.batchNorm,
		logger:    cfg.Logger.With("activation", "deterministic_binary"),
	}, nil
}

// Activate applies the step and batch normalization when configured.
func (d *DeterministicBinaryNeurons[T]) Activate(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	out, err := d.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("DeterministicBinaryNeurons.Activate: %w", err)
	}
	if d.batchNorm == nil {
		return out, nil
	}
	out, err = d.batchNorm.ForwardPropagation(out)
	if err != nil {
		return nil, fmt.Errorf("DeterministicBinaryNeurons.Activate: batch norm: %w", err)
	}
	return out, nil
}

// Derivative runs batch normalization backward when configured and passes
// the gradient through.
func (d *DeterministicBinaryNeurons[T]) Derivative(y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if y == nil {
		return nil, fmt.Errorf("DeterministicBinaryNeurons.Derivative: gradient tensor is nil")
	}
	if d.batchNorm == nil {
		return y.Clone(), nil
	}
	grad, err := d.batchNorm.BackPropagation(y)
	if err != nil {
		return nil, fmt.Errorf("DeterministicBinaryNeurons.Derivative: batch norm: %w", err)
	}
	return grad, nil
}

// Forward applies the step without batch normalization.
func (d *DeterministicBinaryNeurons[T]) Forward(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if x == nil {
		return nil, fmt.Errorf("DeterministicBinaryNeurons.Forward: input tensor is nil")
	}
	return tensor.Heaviside(x, d.zeroValue), nil
}

// Backward passes the gradient through without batch normalization.
func (d *DeterministicBinaryNeurons[T]) Backward(y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if y == nil {
		return nil, fmt.Errorf("DeterministicBinaryNeurons.Backward: gradient tensor is nil")
	}
	return y.Clone(), nil
}

// ZeroValue returns the step output at exactly zero.
func (d *DeterministicBinaryNeurons[T]) ZeroValue() T {
	return d.zeroValue
}

// SetZeroValue changes the step output at zero. v must be in [0, 1].
func (d *DeterministicBinaryNeurons[T]) SetZeroValue(v T) error {
	if err := validateZeroValue(float64(v)); err != nil {
		d.logger.Debug("rejected zero value", "value", float64(v))
		return err
	}
	d.zeroValue = v
	return nil
}

// MemoryLen returns the configured history bound.
func (d *DeterministicBinaryNeurons[T]) MemoryLen() int {
	return d.memoryLen
}

// BatchNorm returns the batch-normalization collaborator, or nil.
func (d *DeterministicBinaryNeurons[T]) BatchNorm() BatchNorm[T] {
	return d.batchNorm
}
