package tensor

import (
	"fmt"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as "(2, 3)"; scalars render as "()".
func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, dim := range s {
		dims[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(dims, ", ") + ")"
}

// checkSameShape returns ErrShapeMismatch wrapped with both shapes when a
// and b differ. Sign functions never broadcast.
func checkSameShape(a, b Shape) error {
	if !a.Equal(b) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a, b)
	}
	return nil
}
