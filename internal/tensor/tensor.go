package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned by elementwise operations whose operands do
// not have identical shapes.
var ErrShapeMismatch = errors.New("dimension mismatch")

// Tensor is a dense, row-major tensor of float elements.
//
// Tensors returned by operations in this package never alias their inputs,
// so callers may keep a tensor around (for example in an activation
// history) without defensive copies.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{3})
//	y := tensor.Sigmoid(x)
type Tensor[T Float] struct {
	shape Shape
	data  []T
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := Zeros[T](shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the underlying element slice in row-major order.
// WARNING: Direct access to underlying memory. Mutations are visible to
// every holder of t.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		shape: t.shape.Clone(),
		data:  data,
	}
}

// String returns a short description with shape, dtype and data.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%v[%v] %v", t.shape, t.DType(), t.data)
}
