package nn

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/born-ml/signfn/internal/tensor"
)

// DefaultMemoryLen is the default bound on each activation history.
const DefaultMemoryLen = 50

// Config holds the scalar configuration shared by all sign functions.
// Start from DefaultConfig: the zero Config has ZeroValue 0, which is a
// valid but unusual setting.
type Config struct {
	MemoryLen int          // History bound per path (default: 50 when 0)
	ZeroValue float64      // Heaviside output at exactly zero (default: 0.5)
	Seed      int64        // Seed for the default uniform noise source
	Logger    *slog.Logger // Structured logger (default: discard)
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MemoryLen: DefaultMemoryLen,
		ZeroValue: 0.5,
		Seed:      1,
	}
}

// normalize fills defaults and validates the config.
func (c Config) normalize() (Config, error) {
	if c.MemoryLen == 0 {
		c.MemoryLen = DefaultMemoryLen
	}
	if c.MemoryLen < 0 {
		return c, fmt.Errorf("%w: %d (must be > 0)", ErrInvalidMemoryLen, c.MemoryLen)
	}
	if err := validateZeroValue(c.ZeroValue); err != nil {
		return c, err
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

func validateZeroValue(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidZeroValue, v)
	}
	return nil
}

// Option configures the collaborators of an activation.
type Option[T tensor.Float] func(*collaborators[T])

type collaborators[T tensor.Float] struct {
	batchNorm BatchNorm[T]
	logistic  ActivatingFunction[T]
	noise     tensor.NoiseSource[T]
}

// WithBatchNorm applies bn after Activate and before Derivative.
func WithBatchNorm[T tensor.Float](bn BatchNorm[T]) Option[T] {
	return func(c *collaborators[T]) {
		c.batchNorm = bn
	}
}

// WithLogistic replaces the logistic surrogate used by stochastic neurons.
// Its MemoryLen must equal the neuron's.
func WithLogistic[T tensor.Float](fn ActivatingFunction[T]) Option[T] {
	return func(c *collaborators[T]) {
		c.logistic = fn
	}
}

// WithNoise replaces the uniform noise source used by stochastic neurons.
func WithNoise[T tensor.Float](src tensor.NoiseSource[T]) Option[T] {
	return func(c *collaborators[T]) {
		c.noise = src
	}
}

func applyOptions[T tensor.Float](cfg Config, opts []Option[T]) *collaborators[T] {
	c := &collaborators[T]{}
	for _, opt := range opts {
		opt(c)
	}
	if c.noise == nil {
		rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
		c.noise = tensor.NewUniformNoise[T](rng)
	}
	return c
}
