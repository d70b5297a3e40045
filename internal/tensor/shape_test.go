package tensor

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{3, 4}, 12},
		{"3d", Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.NumElements(); got != tt.want {
				t.Errorf("NumElements() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := (Shape{}).Validate(); err != nil {
		t.Errorf("scalar Validate() unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate() expected error for zero dimension")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("Validate() expected error for negative dimension")
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	if !s.Equal(c) {
		t.Fatalf("clone %v not equal to %v", c, s)
	}

	c[0] = 7
	if s[0] != 2 {
		t.Error("Clone shares memory with the original")
	}
	if s.Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank reported equal")
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{2, 3}).String(); got != "(2, 3)" {
		t.Errorf("String() = %q", got)
	}
	if got := (Shape{}).String(); got != "()" {
		t.Errorf("scalar String() = %q", got)
	}
}

func TestCheckSameShape(t *testing.T) {
	if err := checkSameShape(Shape{2}, Shape{2}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := checkSameShape(Shape{2}, Shape{1, 2})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}
