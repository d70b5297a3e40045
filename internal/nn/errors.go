package nn

import (
	"errors"

	"github.com/born-ml/signfn/internal/tensor"
)

var (
	// ErrUnmatchedBackward is returned when Derivative or Backward is called
	// without a matching Activate or Forward still in history.
	ErrUnmatchedBackward = errors.New("unmatched backward pass")

	// ErrShapeMismatch is returned when a gradient does not have the shape of
	// the stored activation it is paired with.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrInvalidZeroValue is returned for zero values outside [0, 1].
	ErrInvalidZeroValue = errors.New("zero value must be in [0, 1]")

	// ErrInvalidMemoryLen is returned for history bounds that are not positive
	// or that disagree with a collaborator's bound.
	ErrInvalidMemoryLen = errors.New("invalid memory length")
)
