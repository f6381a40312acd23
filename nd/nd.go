// Package nd arranges a flat fixseq.Seq as an N-dimensional array over a
// runtime list of extents. Indices are given outermost first and elements
// are stored row-major, so the innermost index varies fastest.
package nd

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/fixseq"
	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/shape"
)

// Array is an N-dimensional array that owns its elements.
type Array[T any] struct {
	dims []int
	data *fixseq.Seq[T]
}

// Entry pairs an element with its index tuple.
type Entry[T any] = fixseq.Pair[[]int, T]

// Generator produces the element at idx. idx is only valid for the
// duration of the call.
type Generator[T any] func(idx []int) (T, error)

// Fill builds an array of the given extents by calling f for every index
// tuple in row-major order.
func Fill[T any](dims []int, f func(idx []int) T) (*Array[T], error) {
	return TryFill(dims, func(idx []int) (T, error) { return f(idx), nil })
}

// TryFill is Fill with a fallible generator. On failure every element
// already built is destroyed.
func TryFill[T any](dims []int, gen Generator[T]) (*Array[T], error) {
	if _, err := shape.Volume("fill_nd", dims); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, errors.InvalidInput(errors.PhaseResize, "fill_nd: nil generator")
	}
	idx := getIndex(len(dims))
	defer putIndex(idx)

	flat, err := fillDims(dims, *idx, 0, gen)
	if err != nil {
		return nil, err
	}
	return &Array[T]{dims: slices.Clone(dims), data: flat}, nil
}

// fillDims builds the sub-array for dimensions depth.. with idx[:depth]
// fixed. The innermost dimension is a flat fill; every outer dimension
// concatenates its sub-arrays.
func fillDims[T any](dims, idx []int, depth int, gen Generator[T]) (*fixseq.Seq[T], error) {
	switch len(dims) - depth {
	case 0:
		return fixseq.TryFill(1, func(int) (T, error) { return gen(idx) })
	case 1:
		return fixseq.TryFill(dims[depth], func(i int) (T, error) {
			idx[depth] = i
			return gen(idx)
		})
	}

	parts := make([]*fixseq.Seq[T], 0, dims[depth])
	done := false
	defer func() {
		if !done {
			for _, p := range parts {
				p.Drop()
			}
		}
	}()
	for i := range dims[depth] {
		idx[depth] = i
		sub, err := fillDims(dims, idx, depth+1, gen)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sub)
	}
	flat, err := fixseq.Concat(parts...)
	if err != nil {
		return nil, err
	}
	done = true
	return flat, nil
}

// FromFlat consumes s as an array of the given extents; their product must
// equal s.Len().
func FromFlat[T any](s *fixseq.Seq[T], dims ...int) (*Array[T], error) {
	if !s.IsLive() {
		return nil, errors.Consumed(errors.PhasePartition, "from_flat")
	}
	if err := shape.Extents("from_flat", s.Len(), dims); err != nil {
		return nil, err
	}
	parts, err := fixseq.Reinterpret(s, s.Len())
	if err != nil {
		return nil, err
	}
	return &Array[T]{dims: slices.Clone(dims), data: parts[0]}, nil
}

func (a *Array[T]) check(op string) error {
	if a == nil {
		return errors.NilPointer(errors.PhaseIndex, op)
	}
	if !a.data.IsLive() {
		return errors.Consumed(errors.PhaseIndex, op)
	}
	return nil
}

// Dims returns a copy of the extents, outermost first.
func (a *Array[T]) Dims() []int {
	if a == nil {
		return nil
	}
	return slices.Clone(a.dims)
}

// Rank is the number of dimensions.
func (a *Array[T]) Rank() int {
	if a == nil {
		return 0
	}
	return len(a.dims)
}

// Len is the total number of elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.data.Len()
}

// offset maps an index tuple to its row-major position.
func (a *Array[T]) offset(op string, idx []int) (int, error) {
	if err := a.check(op); err != nil {
		return 0, err
	}
	if len(idx) != len(a.dims) {
		return 0, errors.New(errors.PhaseIndex, errors.KindInvalidInput).
			Op(op).
			Detail("index has %d dimensions, array has %d", len(idx), len(a.dims)).
			Build()
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.dims[d] {
			return 0, errors.OutOfBounds(errors.PhaseIndex, []string{op, "dim" + strconv.Itoa(d)}, i, a.dims[d])
		}
		off = off*a.dims[d] + i
	}
	return off, nil
}

// Get returns a copy of the element at idx.
func (a *Array[T]) Get(idx ...int) (T, error) {
	off, err := a.offset("get", idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data.At(off)
}

// Ptr borrows the element at idx.
func (a *Array[T]) Ptr(idx ...int) (*T, error) {
	off, err := a.offset("ptr", idx)
	if err != nil {
		return nil, err
	}
	return a.data.Ptr(off)
}

// Set destroys the element at idx and stores v.
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.offset("set", idx)
	if err != nil {
		return err
	}
	return a.data.Set(off, v)
}

// FlattenRef borrows the elements in row-major order.
func (a *Array[T]) FlattenRef() ([]T, error) {
	if err := a.check("flatten_ref"); err != nil {
		return nil, err
	}
	return a.data.Slice(), nil
}

// Flatten consumes a and returns its elements in row-major order.
func (a *Array[T]) Flatten() (*fixseq.Seq[T], error) {
	if err := a.check("flatten"); err != nil {
		return nil, err
	}
	parts, err := fixseq.Reinterpret(a.data, a.data.Len())
	if err != nil {
		return nil, err
	}
	return parts[0], nil
}

// Reshape consumes a and returns the same elements under new extents with
// the same product.
func (a *Array[T]) Reshape(dims ...int) (*Array[T], error) {
	if err := a.check("reshape"); err != nil {
		return nil, err
	}
	if err := shape.Extents("reshape", a.Len(), dims); err != nil {
		return nil, err
	}
	flat, err := a.Flatten()
	if err != nil {
		return nil, err
	}
	return &Array[T]{dims: slices.Clone(dims), data: flat}, nil
}

// Outer consumes a and splits it along the outermost dimension into
// sub-arrays of rank Rank()-1 that share its storage.
func (a *Array[T]) Outer() ([]*Array[T], error) {
	if err := a.check("outer"); err != nil {
		return nil, err
	}
	if len(a.dims) == 0 {
		return nil, errors.New(errors.PhasePartition, errors.KindShapeMismatch).
			Op("outer").
			Equation("rank >= 1").
			Detail("scalar array has no outer dimension").
			Build()
	}
	inner := a.dims[1:]
	lengths := make([]int, a.dims[0])
	vol, err := shape.Volume("outer", inner)
	if err != nil {
		return nil, err
	}
	for i := range lengths {
		lengths[i] = vol
	}
	parts, err := fixseq.Reinterpret(a.data, lengths...)
	if err != nil {
		return nil, err
	}
	out := make([]*Array[T], len(parts))
	for i, p := range parts {
		out[i] = &Array[T]{dims: slices.Clone(inner), data: p}
	}
	return out, nil
}

// All yields every index tuple with its element in row-major order. The
// index slice is reused between iterations.
func (a *Array[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		buf := a.data.Slice()
		if buf == nil {
			return
		}
		idx := getIndex(len(a.dims))
		defer putIndex(idx)
		for _, v := range buf {
			if !yield(*idx, v) {
				return
			}
			advance(*idx, a.dims)
		}
	}
}

// advance steps idx to the next row-major position.
func advance(idx, dims []int) {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < dims[d] {
			return
		}
		idx[d] = 0
	}
}

// Drop destroys every element.
func (a *Array[T]) Drop() {
	if a != nil {
		a.data.Drop()
	}
}

func (a *Array[T]) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v%v", a.dims, a.data)
}

// Map consumes a and moves every element through f, keeping the extents.
func Map[T, U any](a *Array[T], f func(T) U) (*Array[U], error) {
	if err := a.check("map_nd"); err != nil {
		return nil, err
	}
	data, err := fixseq.Map(a.data, f)
	if err != nil {
		return nil, err
	}
	return &Array[U]{dims: slices.Clone(a.dims), data: data}, nil
}

// Enumerate consumes a and pairs every element with a copy of its index
// tuple.
func Enumerate[T any](a *Array[T]) (*Array[Entry[T]], error) {
	if err := a.check("enumerate_nd"); err != nil {
		return nil, err
	}
	c, err := fixseq.IntoCursor(a.data)
	if err != nil {
		return nil, err
	}
	defer c.Drop()
	return TryFill(a.dims, func(idx []int) (Entry[T], error) {
		v, _ := c.Next()
		return Entry[T]{First: slices.Clone(idx), Second: v}, nil
	})
}

// Reduce consumes a and folds its elements in row-major order. It reports
// false for an array with no elements.
func Reduce[T any](a *Array[T], f func(acc, v T) T) (T, bool, error) {
	if err := a.check("reduce_nd"); err != nil {
		var zero T
		return zero, false, err
	}
	if ce := fixseq.Logger().Check(zap.DebugLevel, "reduce nd"); ce != nil {
		ce.Write(zap.Ints("dims", a.dims))
	}
	return fixseq.Reduce(a.data, f)
}
