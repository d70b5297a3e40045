package tensor

import (
	"fmt"
	"math"
)

// Add returns a + b elementwise. Shapes must match exactly.
func Add[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("Add", a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise. Shapes must match exactly.
func Sub[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("Sub", a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise. Shapes must match exactly.
func Mul[T Float](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("Mul", a, b, func(x, y T) T { return x * y })
}

func binary[T Float](op string, a, b *Tensor[T], f func(x, y T) T) (*Tensor[T], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: input tensors cannot be nil", op)
	}
	if err := checkSameShape(a.shape, b.shape); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := ZerosLike(a)
	for i := range a.data {
		result.data[i] = f(a.data[i], b.data[i])
	}
	return result, nil
}

// Map applies f to every element and returns the result as a new tensor.
func Map[T Float](x *Tensor[T], f func(T) T) *Tensor[T] {
	result := ZerosLike(x)
	for i, v := range x.data {
		result.data[i] = f(v)
	}
	return result
}

// Sigmoid applies the logistic function 1/(1+exp(-x)) elementwise.
func Sigmoid[T Float](x *Tensor[T]) *Tensor[T] {
	return Map(x, func(v T) T {
		return T(1.0 / (1.0 + math.Exp(-float64(v))))
	})
}

// Heaviside applies the step function elementwise: 0 for negative inputs,
// 1 for positive inputs and zeroValue where the input is exactly zero.
// NaN inputs stay NaN.
func Heaviside[T Float](x *Tensor[T], zeroValue T) *Tensor[T] {
	return Map(x, func(v T) T {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return 0
		case v == 0:
			return zeroValue
		default:
			return v
		}
	})
}

// Clip limits every element to [lo, hi].
func Clip[T Float](x *Tensor[T], lo, hi T) *Tensor[T] {
	return Map(x, func(v T) T {
		return min(max(v, lo), hi)
	})
}
