package nn

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/signfn/internal/tensor"
)

// StochasticBinaryNeurons is a sign function that fires with probability
// σ(x).
//
// Forward: sample u ~ U[0, 1) with the shape of x, then output
// Heaviside(σ(x) - u), so each element is 0, 1, or ZeroValue on an exact
// tie. Backward is the sigmoid-adjusted Straight-Through Estimator: the step
// is treated as identity and the gradient y + u is re-weighted by the
// logistic surrogate's local derivative.
//
// Every Activate pushes its noise tensor on the retaining history and every
// Forward on the non-retaining history; Derivative and Backward pop the most
// recent entry of their own history.
//
// Example:
//
//	neurons, err := nn.NewStochasticBinaryNeurons[float64](nn.DefaultConfig())
//	out, err := neurons.Activate(x)           // values in {0, 0.5, 1}
//	grad, err := neurons.Derivative(upstream) // same shape as x
type StochasticBinaryNeurons[T tensor.Float] struct {
	memoryLen int
	zeroValue T
	batchNorm BatchNorm[T]
	logistic  ActivatingFunction[T]
	noise     tensor.NoiseSource[T]
	retained  *history[T]
	forwarded *history[T]
	logger    *slog.Logger
}

// NewStochasticBinaryNeurons creates stochastic binary neurons.
//
// Unless WithLogistic is given, a LogisticFunction with the same MemoryLen
// serves as the surrogate. Unless WithNoise is given, noise comes from a
// uniform source seeded with cfg.Seed.
func NewStochasticBinaryNeurons[T tensor.Float](cfg Config, opts ...Option[T]) (*StochasticBinaryNeurons[T], error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, fmt.Errorf("StochasticBinaryNeurons: %w", err)
	}
	c := applyOptions(cfg, opts)

	if c.logistic == nil {
		logistic, err := NewLogisticFunction[T](Config{
			MemoryLen: cfg.MemoryLen,
			ZeroValue: cfg.ZeroValue,
			Logger:    cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("StochasticBinaryNeurons: %w", err)
		}
		c.logistic = logistic
	}
	if got := c.logistic.MemoryLen(); got != cfg.MemoryLen {
		return nil, fmt.Errorf("StochasticBinaryNeurons: %w: logistic collaborator holds %d, neurons hold %d",
			ErrInvalidMemoryLen, got, cfg.MemoryLen)
	}

	return &StochasticBinaryNeurons[T]{
		memoryLen: cfg.MemoryLen,
		zeroValue: T(cfg.ZeroValue),
		batchNorm: c.batchNorm,
		logistic:  c.logistic,
		noise:     c.noise,
		retained:  newHistory[T](cfg.MemoryLen),
		forwarded: newHistory[T](cfg.MemoryLen),
		logger:    cfg.Logger.With("activation", "stochastic_binary"),
	}, nil
}

// Activate binarizes x against fresh noise, records the noise and runs
// batch normalization when configured.
func (s *StochasticBinaryNeurons[T]) Activate(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	out, err := s.activate(x, s.logistic.Activate, s.retained, pathRetaining)
	if err != nil {
		return nil, fmt.Errorf("StochasticBinaryNeurons.Activate: %w", err)
	}
	if s.batchNorm == nil {
		return out, nil
	}
	out, err = s.batchNorm.ForwardPropagation(out)
	if err != nil {
		s.discardLast()
		return nil, fmt.Errorf("StochasticBinaryNeurons.Activate: batch norm: %w", err)
	}
	return out, nil
}

// discardLast undoes the history pushes of an Activate that failed after
// the step, so the next Derivative does not pair with it.
func (s *StochasticBinaryNeurons[T]) discardLast() {
	_, _ = s.retained.pop()
	if d, ok := s.logistic.(activityDropper); ok {
		d.dropActivity()
		return
	}
	s.logger.Warn("logistic collaborator cannot discard its activity; its history may be ahead",
		"path", pathRetaining)
}

// Derivative returns the STE gradient for the latest Activate call.
func (s *StochasticBinaryNeurons[T]) Derivative(y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if s.retained.len() == 0 {
		s.logger.Warn("derivative without matching activate", "path", pathRetaining)
		return nil, fmt.Errorf("StochasticBinaryNeurons.Derivative: %w", ErrUnmatchedBackward)
	}
	if err := s.retained.matches(y); err != nil {
		return nil, fmt.Errorf("StochasticBinaryNeurons.Derivative: %w", err)
	}
	if y != nil && s.batchNorm != nil {
		var err error
		if y, err = s.batchNorm.BackPropagation(y); err != nil {
			return nil, fmt.Errorf("StochasticBinaryNeurons.Derivative: batch norm: %w", err)
		}
	}
	grad, err := s.derivative(y, s.logistic.Derivative, s.retained)
	if err != nil {
		return nil, fmt.Errorf("StochasticBinaryNeurons.Derivative: %w", err)
	}
	return grad, nil
}

// Forward is Activate on the non-retaining path, without batch normalization.
func (s *StochasticBinaryNeurons[T]) Forward(x *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	out, err := s.activate(x, s.logistic.Forward, s.forwarded, pathNonRetaining)
	if err != nil {
		return nil, fmt.Errorf("StochasticBinaryNeurons.Forward: %w", err)
	}
	return out, nil
}

// Backward is Derivative on the non-retaining path, without batch normalization.
func (s *StochasticBinaryNeurons[T]) Backward(y *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if s.forwarded.len() == 0 {
		s.logger.Warn("backward without matching forward", "path", pathNonRetaining)
		return nil, fmt.Errorf("StochasticBinaryNeurons.Backward: %w", ErrUnmatchedBackward)
	}
	grad, err := s.derivative(y, s.logistic.Backward, s.forwarded)
	if err != nil {
		return nil, fmt.Errorf("StochasticBinaryNeurons.Backward: %w", err)
	}
	return grad, nil
}

// ZeroValue returns the step output for an exact tie between σ(x) and noise.
func (s *StochasticBinaryNeurons[T]) ZeroValue() T {
	return s.zeroValue
}

// SetZeroValue changes the step output on ties. v must be in [0, 1].
func (s *StochasticBinaryNeurons[T]) SetZeroValue(v T) error {
	if err := validateZeroValue(float64(v)); err != nil {
		s.logger.Debug("rejected zero value", "value", float64(v))
		return err
	}
	s.zeroValue = v
	return nil
}

// MemoryLen returns the bound on each noise history.
func (s *StochasticBinaryNeurons[T]) MemoryLen() int {
	return s.memoryLen
}

// BatchNorm returns the batch-normalization collaborator, or nil.
func (s *StochasticBinaryNeurons[T]) BatchNorm() BatchNorm[T] {
	return s.batchNorm
}

// Pending returns the number of stored noise tensors on each path.
func (s *StochasticBinaryNeurons[T]) Pending() (retaining, nonRetaining int) {
	return s.retained.len(), s.forwarded.len()
}

// Reset drops all stored noise, and the logistic surrogate's history when
// it supports Reset.
func (s *StochasticBinaryNeurons[T]) Reset() {
	s.retained.reset()
	s.forwarded.reset()
	if r, ok := s.logistic.(resetter); ok {
		r.Reset()
	}
}

type stepFunc[T tensor.Float] func(*tensor.Tensor[T]) (*tensor.Tensor[T], error)

func (s *StochasticBinaryNeurons[T]) activate(
	x *tensor.Tensor[T],
	squash stepFunc[T],
	h *history[T],
	path string,
) (*tensor.Tensor[T], error) {
	if x == nil {
		return nil, fmt.Errorf("input tensor is nil")
	}
	u := s.noise.Sample(x.Shape())
	if !u.Shape().Equal(x.Shape()) {
		return nil, fmt.Errorf("noise source: %w: %v vs %v", ErrShapeMismatch, u.Shape(), x.Shape())
	}

	sig, err := squash(x)
	if err != nil {
		return nil, fmt.Errorf("logistic: %w", err)
	}
	diff, err := tensor.Sub(sig, u)
	if err != nil {
		return nil, err
	}
	out := tensor.Heaviside(diff, s.zeroValue)

	if evicted := h.push(u); evicted > 0 {
		s.logger.Debug("noise history full, evicted oldest",
			"path", path, "evicted", evicted, "memory_len", s.memoryLen)
	}
	return out, nil
}

// derivative feeds y + u to the logistic surrogate and pops u only once
// that succeeds.
func (s *StochasticBinaryNeurons[T]) derivative(
	y *tensor.Tensor[T],
	surrogate stepFunc[T],
	h *history[T],
) (*tensor.Tensor[T], error) {
	if y == nil {
		return nil, fmt.Errorf("gradient tensor is nil")
	}
	u, err := h.peek()
	if err != nil {
		return nil, err
	}

	shifted, err := tensor.Add(y, u)
	if err != nil {
		return nil, err
	}
	grad, err := surrogate(shifted)
	if err != nil {
		return nil, fmt.Errorf("logistic: %w", err)
	}

	if _, err := h.pop(); err != nil {
		return nil, err
	}
	return grad, nil
}
