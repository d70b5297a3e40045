package nn

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/signfn/internal/tensor"
)

// Path names used in log records.
const (
	pathRetaining    = "retaining"
	pathNonRetaining = "non-retaining"
)

// LogisticFunction is the sigmoid activation σ(x) = 1 / (1 + exp(-x)).
//
// It stores each activity σ(x) so the matching backward call can return
// y * σ(x) * (1 - σ(x)). Inputs are clipped to the range where exp does not
// overflow for T.
//
// Example:
//
//	logistic, err := nn.NewLogisticFunction[float64](nn.DefaultConfig())
//	out, err := logistic.Activate(x)
//	grad, err := logistic.Derivative(upstream)
type LogisticFunction[T tensor.Float] struct {
	memoryLen  int
	batchNorm  BatchNorm[T]
	activities *history[T]
	forwarded  *history[T]
	logger     *slog.Logger
}

// NewLogisticFunction creates a logistic activation. Only WithBatchNorm is
// meaningful among the options.
func NewLogisticFunction[T tensor.Float](cfg Config, opts ...Option[T]) (*LogisticFunction[T], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, fmt.Errorf("LogisticFunction: %w", err)
	}
	c := &collaborators[T]{}
	for _, opt := range opts {
		opt(c)
	}

	return &LogisticFunction[T]{
		memoryLen:  cfg.MemoryLen,
		batchNorm:  c.batchNorm,
		activities: newHistory[T](cfg.MemoryLen),
		forwarded:  newHistory[T](cfg.MemoryLen),
		logger:     cfg.Logger.With("activation", "logistic"),
	}, nil
}

// overflowRange bounds |x| so that exp(-x) stays finite.
func overflowRange[T tensor.Float]() T {
	var dummy T
	if _, ok := any(dummy).(float32); ok {
		return 88
	}
	return 708
}

// Activate applies the sigmoid and runs batch normalization when
// configured. The activity is recorded only if both succeed.
func (l *LogisticFunction[T]) Activate(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	a, err := l.squash(x)
	if err != nil {
		return nil, fmt.Errorf("LogisticFunction.Activate: %w", err)
	}
	out := a.Clone()
	if l.batchNorm != nil {
		if out, err = l.batchNorm.ForwardPropagation(out); err != nil {
			return nil, fmt.Errorf("LogisticFunction.Activate: batch norm: %w", err)
		}
	}
	l.record(a, l.activities, pathRetaining)
	return out, nil
}

// Derivative returns y * σ(x) * (1 - σ(x)) for the latest Activate call.
func (l *LogisticFunction[T]) Derivative(y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if l.activities.len() == 0 {
		l.logger.Warn("derivative without matching activate", "path", pathRetaining)
		return nil, fmt.Errorf("LogisticFunction.Derivative: %w", ErrUnmatchedBackward)
	}
	if err := l.activities.matches(y); err != nil {
		return nil, fmt.Errorf("LogisticFunction.Derivative: %w", err)
	}
	if y != nil && l.batchNorm != nil {
		var err error
		if y, err = l.batchNorm.BackPropagation(y); err != nil {
			return nil, fmt.Errorf("LogisticFunction.Derivative: batch norm: %w", err)
		}
	}
	grad, err := l.derivative(y, l.activities)
	if err != nil {
		return nil, fmt.Errorf("LogisticFunction.Derivative: %w", err)
	}
	return grad, nil
}

// Forward is Activate on the non-retaining path, without batch normalization.
func (l *LogisticFunction[T]) Forward(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	a, err := l.squash(x)
	if err != nil {
		return nil, fmt.Errorf("LogisticFunction.Forward: %w", err)
	}
	l.record(a, l.forwarded, pathNonRetaining)
	return a.Clone(), nil
}

// Backward is Derivative on the non-retaining path, without batch normalization.
func (l *LogisticFunction[T]) Backward(y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if l.forwarded.len() == 0 {
		l.logger.Warn("backward without matching forward", "path", pathNonRetaining)
		return nil, fmt.Errorf("LogisticFunction.Backward: %w", ErrUnmatchedBackward)
	}
	grad, err := l.derivative(y, l.forwarded)
	if err != nil {
		return nil, fmt.Errorf("LogisticFunction.Backward: %w", err)
	}
	return grad, nil
}

// MemoryLen returns the bound on each history.
func (l *LogisticFunction[T]) MemoryLen() int {
	return l.memoryLen
}

// BatchNorm returns the batch-normalization collaborator, or nil.
func (l *LogisticFunction[T]) BatchNorm() BatchNorm[T] {
	return l.batchNorm
}

// Pending returns the number of stored activities on each path.
func (l *LogisticFunction[T]) Pending() (retaining, nonRetaining int) {
	return l.activities.len(), l.forwarded.len()
}

// Reset drops all stored activities.
func (l *LogisticFunction[T]) Reset() {
	l.activities.reset()
	l.forwarded.reset()
}

// dropActivity discards the newest retained activity after the caller
// failed to complete the matching Activate.
func (l *LogisticFunction[T]) dropActivity() {
	_, _ = l.activities.pop()
}

func (l *LogisticFunction[T]) squash(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if x == nil {
		return nil, fmt.Errorf("input tensor is nil")
	}
	r := overflowRange[T]()
	return tensor.Sigmoid(tensor.Clip(x, -r, r)), nil
}

// record stores a; callers only ever see clones of it.
func (l *LogisticFunction[T]) record(a *tensor.Tensor[T], h *history[T], path string) {
	if evicted := h.push(a); evicted > 0 {
		l.logger.Debug("activity history full, evicted oldest",
			"path", path, "evicted", evicted, "memory_len", l.memoryLen)
	}
}

// derivative computes y * a * (1 - a) and only pops a once that succeeds.
func (l *LogisticFunction[T]) derivative(y *tensor.Tensor[T], h *history[T]) (*tensor.Tensor[T], error) {
	if y == nil {
		return nil, fmt.Errorf("gradient tensor is nil")
	}
	a, err := h.peek()
	if err != nil {
		return nil, err
	}

	scaled, err := tensor.Mul(y, a)
	if err != nil {
		return nil, err
	}
	grad, err := tensor.Mul(scaled, tensor.Map(a, func(v T) T { return 1 - v }))
	if err != nil {
		return nil, err
	}

	if _, err := h.pop(); err != nil {
		return nil, err
	}
	return grad, nil
}
