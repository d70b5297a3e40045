// Package nn implements sign-function activations: binary neurons whose
// forward pass is a Heaviside step and whose backward pass uses a
// Straight-Through Estimator.
//
// Every activation keeps two independent histories. Activate/Derivative form
// the retaining path, which also runs the optional batch-normalization
// collaborator. Forward/Backward form the non-retaining path, which never
// does. Each backward call consumes the most recent entry pushed by its
// forward counterpart, so calls must be paired in last-in-first-out order.
//
// Activations are not safe for concurrent use.
package nn

import (
	"github.com/born-ml/signfn/internal/tensor"
)

// ActivatingFunction is the capability set shared by every activation.
type ActivatingFunction[T tensor.Float] interface {
	// Activate runs the retaining forward path.
	Activate(x *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// Derivative consumes the latest Activate call and returns the gradient.
	Derivative(y *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// Forward runs the non-retaining forward path.
	Forward(x *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// Backward consumes the latest Forward call and returns the gradient.
	Backward(y *tensor.Tensor[T]) (*tensor.Tensor[T], error)

	// MemoryLen is the bound on each history.
	MemoryLen() int
}

// SignFunction is an activation built on a Heaviside step.
type SignFunction[T tensor.Float] interface {
	ActivatingFunction[T]

	// ZeroValue is the step output for an input of exactly zero.
	ZeroValue() T

	// SetZeroValue changes ZeroValue. Values outside [0, 1] are rejected.
	SetZeroValue(v T) error
}

// BatchNorm is the optional batch-normalization collaborator.
// ForwardPropagation is applied to the output of Activate and
// BackPropagation to the gradient passed to Derivative.
type BatchNorm[T tensor.Float] interface {
	ForwardPropagation(x *tensor.Tensor[T]) (*tensor.Tensor[T], error)
	BackPropagation(y *tensor.Tensor[T]) (*tensor.Tensor[T], error)
}

// resetter is implemented by activations that can drop their history.
type resetter interface {
	Reset()
}

// activityDropper is implemented by surrogates that can discard their
// newest retained activity.
type activityDropper interface {
	dropActivity()
}

var (
	_ SignFunction[float64]       = (*StochasticBinaryNeurons[float64])(nil)
	_ SignFunction[float32]       = (*DeterministicBinaryNeurons[float32])(nil)
	_ ActivatingFunction[float64] = (*LogisticFunction[float64])(nil)
	_ resetter                    = (*LogisticFunction[float64])(nil)
	_ activityDropper             = (*LogisticFunction[float64])(nil)
)
