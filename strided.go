package fixseq

import (
	"fmt"
	"iter"

	"github.com/wippyai/fixseq/errors"
)

// StridedView borrows every stride-th element of a sequence, starting at
// offset. Element i aliases base[offset+i*stride]. A view is only valid
// while the sequence it was taken from is live and not reshaped.
type StridedView[T any] struct {
	base   []T
	offset int
	stride int
	length int
}

func newStridedView[T any](base []T, offset, stride, length int) (StridedView[T], error) {
	if offset < 0 || stride < 1 || length < 0 {
		return StridedView[T]{}, errors.InvalidInput(errors.PhaseIndex,
			fmt.Sprintf("invalid view offset=%d stride=%d length=%d", offset, stride, length))
	}
	if length > 0 && offset+(length-1)*stride >= len(base) {
		return StridedView[T]{}, errors.OutOfBounds(errors.PhaseIndex, []string{"view"}, offset+(length-1)*stride, len(base))
	}
	return StridedView[T]{base: base, offset: offset, stride: stride, length: length}, nil
}

// Len returns the number of elements visible through the view.
func (v StridedView[T]) Len() int { return v.length }

// Offset returns the base index of element 0.
func (v StridedView[T]) Offset() int { return v.offset }

// Stride returns the distance between consecutive elements in the base.
func (v StridedView[T]) Stride() int { return v.stride }

func (v StridedView[T]) pos(i int) (int, error) {
	if i < 0 || i >= v.length {
		return 0, errors.OutOfBounds(errors.PhaseIndex, []string{"lane"}, i, v.length)
	}
	return v.offset + i*v.stride, nil
}

// At returns a copy of element i.
func (v StridedView[T]) At(i int) (T, error) {
	p, err := v.pos(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.base[p], nil
}

// Ptr borrows element i in place.
func (v StridedView[T]) Ptr(i int) (*T, error) {
	p, err := v.pos(i)
	if err != nil {
		return nil, err
	}
	return &v.base[p], nil
}

// Set destroys element i and stores x in its place.
func (v StridedView[T]) Set(i int, x T) error {
	p, err := v.pos(i)
	if err != nil {
		return err
	}
	destroy(&v.base[p])
	v.base[p] = x
	return nil
}

// Values yields the visible elements in order.
func (v StridedView[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.length {
			if !yield(v.base[v.offset+i*v.stride]) {
				return
			}
		}
	}
}

// Collect copies the visible elements into a new slice.
func (v StridedView[T]) Collect() []T {
	out := make([]T, 0, v.length)
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}
