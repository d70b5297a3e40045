package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Float](shape Shape) *Tensor[T] {
	if err := shape.Validate(); err != nil {
		panic(err) // Shape validation is the caller's job here
	}

	return &Tensor[T]{
		shape: shape.Clone(),
		data:  make([]T, shape.NumElements()),
	}
}

// ZerosLike creates a zero tensor with the same shape as t.
func ZerosLike[T Float](t *Tensor[T]) *Tensor[T] {
	return Zeros[T](t.shape)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3})
func Ones[T Float](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T Float](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Uniform creates a tensor with values drawn independently and uniformly
// from [0, 1) using rng.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	u := tensor.Uniform[float64](Shape{10, 10}, rng)
func Uniform[T Float](shape Shape, rng *rand.Rand) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		v := T(rng.Float64())
		// float32 rounding can turn values just below 1 into 1.
		if v >= 1 {
			v = 0
		}
		t.data[i] = v
	}
	return t
}
