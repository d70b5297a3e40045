package tensor

import "math/rand"

// NoiseSource produces the noise tensors that stochastic activations compare
// against. Implementations must return a fresh tensor of exactly the
// requested shape on every call.
type NoiseSource[T Float] interface {
	Sample(shape Shape) *Tensor[T]
}

// UniformNoise samples from U[0, 1) with its own random generator.
//
// UniformNoise is not safe for concurrent use; give each goroutine its own
// source.
type UniformNoise[T Float] struct {
	rng *rand.Rand
}

// NewUniformNoise creates a uniform noise source backed by rng.
// A nil rng falls back to a generator seeded with 1, the math/rand default.
func NewUniformNoise[T Float](rng *rand.Rand) *UniformNoise[T] {
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
	}
	return &UniformNoise[T]{rng: rng}
}

// Sample returns a tensor of the given shape filled from U[0, 1).
func (n *UniformNoise[T]) Sample(shape Shape) *Tensor[T] {
	return Uniform[T](shape, n.rng)
}

// ConstantNoise always returns the same value. It turns a stochastic
// threshold into a deterministic one, which is mostly useful in tests.
type ConstantNoise[T Float] struct {
	Value T
}

// Sample returns a tensor of the given shape filled with n.Value.
func (n ConstantNoise[T]) Sample(shape Shape) *Tensor[T] {
	return Full[T](shape, n.Value)
}
