package nn

import (
	"fmt"

	"github.com/born-ml/signfn/internal/tensor"
)

// history is a bounded LIFO stack of tensors. Pushing beyond the bound
// evicts the oldest entries.
type history[T tensor.Float] struct {
	items []*tensor.Tensor[T]
	limit int
}

func newHistory[T tensor.Float](limit int) *history[T] {
	return &history[T]{
		items: make([]*tensor.Tensor[T], 0, limit+1),
		limit: limit,
	}
}

// push stores t and returns how many old entries were evicted.
func (h *history[T]) push(t *tensor.Tensor[T]) int {
	h.items = append(h.items, t)

	evicted := len(h.items) - h.limit
	if evicted <= 0 {
		return 0
	}
	n := copy(h.items, h.items[evicted:])
	clear(h.items[n:])
	h.items = h.items[:n]
	return evicted
}

// peek returns the newest entry without removing it.
func (h *history[T]) peek() (*tensor.Tensor[T], error) {
	if len(h.items) == 0 {
		return nil, ErrUnmatchedBackward
	}
	return h.items[len(h.items)-1], nil
}

// pop removes and returns the newest entry.
func (h *history[T]) pop() (*tensor.Tensor[T], error) {
	t, err := h.peek()
	if err != nil {
		return nil, err
	}
	h.items[len(h.items)-1] = nil
	h.items = h.items[:len(h.items)-1]
	return t, nil
}

// matches reports whether y has the shape of the newest entry.
func (h *history[T]) matches(y *tensor.Tensor[T]) error {
	t, err := h.peek()
	if err != nil {
		return err
	}
	if y != nil && !y.Shape().Equal(t.Shape()) {
		return fmt.Errorf("%w: gradient %v, stored %v", ErrShapeMismatch, y.Shape(), t.Shape())
	}
	return nil
}

func (h *history[T]) len() int {
	return len(h.items)
}

func (h *history[T]) reset() {
	clear(h.items)
	h.items = h.items[:0]
}
