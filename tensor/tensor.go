// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API used by sign-function
// activations.
//
// The package defines:
//   - Tensor[T]: dense row-major tensor over float32 or float64
//   - Shape, DataType: core type definitions
//   - Elementwise operations that never broadcast
//   - NoiseSource: uniform and constant noise for stochastic activations
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{-1, 0, 1}, tensor.Shape{3})
//	s := tensor.Sigmoid(x)
//	u := tensor.Uniform[float64](x.Shape(), rand.New(rand.NewSource(1)))
//	d, err := tensor.Sub(s, u)
//	y := tensor.Heaviside(d, 0.5)
package tensor

import (
	"math/rand"

	"github.com/born-ml/signfn/internal/tensor"
)

// Type aliases for public API

// Float is a constraint for tensor element types: float32 or float64.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense row-major tensor.
type Tensor[T Float] = tensor.Tensor[T]

// NoiseSource produces noise tensors for stochastic activations.
type NoiseSource[T Float] = tensor.NoiseSource[T]

// UniformNoise samples from U[0, 1).
type UniformNoise[T Float] = tensor.UniformNoise[T]

// ConstantNoise always samples the same value.
type ConstantNoise[T Float] = tensor.ConstantNoise[T]

// ErrShapeMismatch is returned by operations on tensors of different shapes.
var ErrShapeMismatch = tensor.ErrShapeMismatch

// Creation

// FromSlice creates a tensor from a Go slice.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Float](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Float](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with value.
func Full[T Float](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Uniform creates a tensor with values drawn from U[0, 1).
func Uniform[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	return tensor.Uniform[T](shape, rng)
}

// ZerosLike creates a zero tensor with the shape of t.
func ZerosLike[T Float](t *Tensor[T]) *Tensor[T] {
	return tensor.ZerosLike(t)
}

// NewUniformNoise creates a uniform noise source backed by rng.
func NewUniformNoise[T Float](rng *rand.Rand) *UniformNoise[T] {
	return tensor.NewUniformNoise[T](rng)
}

// Operations

// Add returns a + b elementwise.
func Add[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Add(a, b)
}

// Sub returns a - b elementwise.
func Sub[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Sub(a, b)
}

// Mul returns a * b elementwise.
func Mul[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Mul(a, b)
}

// Sigmoid applies 1/(1+exp(-x)) elementwise.
func Sigmoid[T Float](x *Tensor[T]) *Tensor[T] {
	return tensor.Sigmoid(x)
}

// Heaviside applies the step function with the given value at zero.
func Heaviside[T Float](x *Tensor[T], zeroValue T) *Tensor[T] {
	return tensor.Heaviside(x, zeroValue)
}

// Clip limits each element to [lo, hi].
func Clip[T Float](x *Tensor[T], lo, hi T) *Tensor[T] {
	return tensor.Clip(x, lo, hi)
}

// Map applies f to every element.
func Map[T Float](x *Tensor[T], f func(T) T) *Tensor[T] {
	return tensor.Map(x, f)
}
