package fixseq

import (
	"golang.org/x/exp/constraints"

	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/shape"
)

// Number is any type that supports + and -.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Pair holds two elements moved out of zipped or enumerated sequences.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Reduce folds s from left to right, seeding the accumulator with the
// first element. It reports false for an empty s. s is consumed.
func Reduce[T any](s *Seq[T], f func(acc, v T) T) (T, bool, error) {
	c, err := IntoCursor(s)
	if err != nil {
		var zero T
		return zero, false, err
	}
	defer c.Drop()
	acc, ok := c.Next()
	if !ok {
		return acc, false, nil
	}
	for v := range c.Moves() {
		acc = f(acc, v)
	}
	return acc, true, nil
}

// Fold folds s from left to right starting at init. s is consumed.
func Fold[T, A any](s *Seq[T], init A, f func(acc A, v T) A) (A, error) {
	c, err := IntoCursor(s)
	if err != nil {
		return init, err
	}
	defer c.Drop()
	acc := init
	for v := range c.Moves() {
		acc = f(acc, v)
	}
	return acc, nil
}

// Sum adds every element of s. The empty sum is zero.
func Sum[T Number](s *Seq[T]) (T, error) {
	var zero T
	return SumFrom(s, zero)
}

// SumFrom adds every element of s to from.
func SumFrom[T Number](s *Seq[T], from T) (T, error) {
	if err := s.check(errors.PhaseReduce, "sum"); err != nil {
		return from, err
	}
	for _, v := range s.buf {
		from += v
	}
	return from, nil
}

func extremum[T any](s *Seq[T], op string, better func(cand, cur T) bool) (int, error) {
	if err := s.check(errors.PhaseReduce, op); err != nil {
		return -1, err
	}
	best := -1
	for i, v := range s.buf {
		if best < 0 || better(v, s.buf[best]) {
			best = i
		}
	}
	return best, nil
}

func pick[T any](s *Seq[T], i int, err error) (T, bool, error) {
	var zero T
	if err != nil || i < 0 {
		return zero, false, err
	}
	return s.buf[i], true, nil
}

// Min returns the smallest element, the first one on ties. It reports
// false for an empty s.
func Min[T constraints.Ordered](s *Seq[T]) (T, bool, error) {
	i, err := extremum(s, "min", func(c, cur T) bool { return c < cur })
	return pick(s, i, err)
}

// Max returns the largest element, the last one on ties.
func Max[T constraints.Ordered](s *Seq[T]) (T, bool, error) {
	i, err := extremum(s, "max", func(c, cur T) bool { return c >= cur })
	return pick(s, i, err)
}

// FirstMin returns the smallest element, the first one on ties.
func FirstMin[T constraints.Ordered](s *Seq[T]) (T, bool, error) {
	return Min(s)
}

// FirstMax returns the largest element, the first one on ties.
func FirstMax[T constraints.Ordered](s *Seq[T]) (T, bool, error) {
	i, err := extremum(s, "first_max", func(c, cur T) bool { return c > cur })
	return pick(s, i, err)
}

// Argmin returns the index of the first smallest element.
func Argmin[T constraints.Ordered](s *Seq[T]) (int, bool, error) {
	i, err := extremum(s, "argmin", func(c, cur T) bool { return c < cur })
	return i, err == nil && i >= 0, err
}

// Argmax returns the index of the first largest element.
func Argmax[T constraints.Ordered](s *Seq[T]) (int, bool, error) {
	i, err := extremum(s, "argmax", func(c, cur T) bool { return c > cur })
	return i, err == nil && i >= 0, err
}

// All reports whether pred holds for every element. It is true for an
// empty s.
func All[T any](s *Seq[T], pred func(T) bool) (bool, error) {
	if err := s.check(errors.PhaseReduce, "all"); err != nil {
		return false, err
	}
	for _, v := range s.buf {
		if !pred(v) {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether pred holds for some element.
func Any[T any](s *Seq[T], pred func(T) bool) (bool, error) {
	if err := s.check(errors.PhaseReduce, "any"); err != nil {
		return false, err
	}
	for _, v := range s.buf {
		if pred(v) {
			return true, nil
		}
	}
	return false, nil
}

// Eq compares a with b element by element. Sequences of different lengths
// are unequal.
func Eq[T comparable](a *Seq[T], b []T) (bool, error) {
	return EqFunc(a, b, func(x, y T) bool { return x == y })
}

// EqFunc is Eq with a custom element comparison.
func EqFunc[T, U any](a *Seq[T], b []U, eq func(T, U) bool) (bool, error) {
	if err := a.check(errors.PhaseReduce, "eq"); err != nil {
		return false, err
	}
	if len(a.buf) != len(b) {
		return false, nil
	}
	for i := range a.buf {
		if !eq(a.buf[i], b[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Differentiate returns the Len()-1 successive differences s[i+1]-s[i].
// s is consumed and must not be empty.
func Differentiate[T Number](s *Seq[T]) (*Seq[T], error) {
	if err := s.check(errors.PhaseReduce, "differentiate"); err != nil {
		return nil, err
	}
	if err := shape.AtLeast("differentiate", s.Len(), 1); err != nil {
		return nil, err
	}
	buf, err := take(s, errors.PhaseReduce, "differentiate")
	if err != nil {
		return nil, err
	}
	n := len(buf) - 1
	for i := range n {
		buf[i] = buf[i+1] - buf[i]
	}
	var zero T
	buf[n] = zero
	return adopt(buf[:n:n]), nil
}

// Integrate returns the running prefix sums of s. s is consumed.
func Integrate[T Number](s *Seq[T]) (*Seq[T], error) {
	buf, err := take(s, errors.PhaseReduce, "integrate")
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(buf); i++ {
		buf[i] += buf[i-1]
	}
	return adopt(buf), nil
}

// Map moves every element of s through f, in order. If f panics, the
// results built so far and the elements not yet mapped are destroyed.
func Map[T, U any](s *Seq[T], f func(T) U) (*Seq[U], error) {
	return TryMap(s, func(v T) (U, error) { return f(v), nil })
}

// TryMap is Map with a fallible f. On error the results built so far and
// the elements not yet mapped are destroyed.
func TryMap[T, U any](s *Seq[T], f func(T) (U, error)) (*Seq[U], error) {
	c, err := IntoCursor(s)
	if err != nil {
		return nil, err
	}
	defer c.Drop()
	out := make([]U, c.Remaining())
	err = fillInto("map", out, false, identity, func(int) (U, error) {
		v, _ := c.Next()
		return f(v)
	})
	if err != nil {
		return nil, err
	}
	return adopt(out), nil
}

// Zip pairs the elements of a and b by position. Both are consumed and must
// have the same length.
func Zip[A, B any](a *Seq[A], b *Seq[B]) (*Seq[Pair[A, B]], error) {
	if err := a.check(errors.PhaseReduce, "zip"); err != nil {
		return nil, err
	}
	if err := b.check(errors.PhaseReduce, "zip"); err != nil {
		return nil, err
	}
	if any(a) == any(b) {
		return nil, passedTwice(errors.PhaseReduce, "zip")
	}
	if err := shape.Equal("zip", a.Len(), b.Len()); err != nil {
		return nil, err
	}
	left, err := take(a, errors.PhaseReduce, "zip")
	if err != nil {
		return nil, err
	}
	right, err := take(b, errors.PhaseReduce, "zip")
	if err != nil {
		return nil, err
	}
	out := make([]Pair[A, B], len(left))
	for i := range out {
		out[i] = Pair[A, B]{First: left[i], Second: right[i]}
	}
	clear(left)
	clear(right)
	return adopt(out), nil
}

// Enumerate pairs every element of s with its index. s is consumed.
func Enumerate[T any](s *Seq[T]) (*Seq[Pair[int, T]], error) {
	buf, err := take(s, errors.PhaseReduce, "enumerate")
	if err != nil {
		return nil, err
	}
	out := make([]Pair[int, T], len(buf))
	for i := range out {
		out[i] = Pair[int, T]{First: i, Second: buf[i]}
	}
	clear(buf)
	return adopt(out), nil
}

// Refs borrows a pointer to every element of s.
func Refs[T any](s *Seq[T]) ([]*T, error) {
	if err := s.check(errors.PhaseIndex, "refs"); err != nil {
		return nil, err
	}
	out := make([]*T, len(s.buf))
	for i := range s.buf {
		out[i] = &s.buf[i]
	}
	return out, nil
}
