package fixseq

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/wippyai/fixseq/errors"
)

type state uint8

const (
	stateLive state = iota
	stateConsumed
	stateDropped
)

// Seq owns a fixed number of contiguous elements. Its length never changes;
// reshaping consumes it and hands its elements to new sequences.
type Seq[T any] struct {
	buf   []T // capacity-limited window into base
	base  []T
	off   int
	state state
}

// New returns a sequence of n zero elements.
func New[T any](n int) (*Seq[T], error) {
	if n < 0 {
		return nil, errors.InvalidInput(errors.PhaseResize, fmt.Sprintf("negative length %d", n))
	}
	return adopt(make([]T, n)), nil
}

// From takes ownership of items. The caller must not use items afterwards.
func From[T any](items []T) *Seq[T] {
	if items == nil {
		items = []T{}
	}
	return adopt(items[:len(items):len(items)])
}

// Of copies items into a new sequence.
func Of[T any](items ...T) *Seq[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return adopt(buf)
}

func adopt[T any](buf []T) *Seq[T] {
	return &Seq[T]{buf: buf, base: buf}
}

// Len returns the fixed length.
func (s *Seq[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// IsLive reports whether s still owns its elements.
func (s *Seq[T]) IsLive() bool {
	return s != nil && s.state == stateLive
}

// IsConsumed reports whether s was reshaped or dropped.
func (s *Seq[T]) IsConsumed() bool {
	return !s.IsLive()
}

func (s *Seq[T]) check(phase errors.Phase, op string) error {
	if s == nil {
		return errors.NilPointer(phase, op)
	}
	if s.state != stateLive {
		return errors.Consumed(phase, op)
	}
	return nil
}

func (s *Seq[T]) index(op string, i int) error {
	if err := s.check(errors.PhaseIndex, op); err != nil {
		return err
	}
	if i < 0 || i >= len(s.buf) {
		return errors.OutOfBounds(errors.PhaseIndex, []string{op}, i, len(s.buf))
	}
	return nil
}

// At returns a copy of element i.
func (s *Seq[T]) At(i int) (T, error) {
	if err := s.index("at", i); err != nil {
		var zero T
		return zero, err
	}
	return s.buf[i], nil
}

// Ptr borrows element i in place.
func (s *Seq[T]) Ptr(i int) (*T, error) {
	if err := s.index("ptr", i); err != nil {
		return nil, err
	}
	return &s.buf[i], nil
}

// Set destroys element i and stores v in its place.
func (s *Seq[T]) Set(i int, v T) error {
	if err := s.index("set", i); err != nil {
		return err
	}
	destroy(&s.buf[i])
	s.buf[i] = v
	return nil
}

// Replace stores v at i and returns the previous element without
// destroying it.
func (s *Seq[T]) Replace(i int, v T) (T, error) {
	if err := s.index("replace", i); err != nil {
		var zero T
		return zero, err
	}
	old := s.buf[i]
	s.buf[i] = v
	return old, nil
}

// Slice borrows the elements. The slice is capacity-limited and is only
// valid while s is live.
func (s *Seq[T]) Slice() []T {
	if !s.IsLive() {
		return nil
	}
	return s.buf
}

// Values yields copies of the elements in order.
func (s *Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields index/element pairs in order.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.Slice() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (s *Seq[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		buf := s.Slice()
		for i := len(buf) - 1; i >= 0; i-- {
			if !yield(i, buf[i]) {
				return
			}
		}
	}
}

// Drop destroys every element. Dropping a consumed sequence does nothing.
func (s *Seq[T]) Drop() {
	if !s.IsLive() {
		return
	}
	destroyAll(s.buf)
	s.release(stateDropped)
}

// release detaches s from its storage without touching the elements.
func (s *Seq[T]) release(st state) {
	s.buf = nil
	s.base = nil
	s.off = 0
	s.state = st
}

func (s *Seq[T]) String() string {
	switch {
	case s == nil:
		return "<nil>"
	case s.state == stateConsumed:
		return "<consumed>"
	case s.state == stateDropped:
		return "<dropped>"
	}
	return fmt.Sprint(s.buf)
}

// destroy runs Drop on the element at p, if it has one, and zeroes the slot.
func destroy[T any](p *T) {
	if d, ok := any(*p).(Dropper); ok {
		if !isNilPointer(d) {
			d.Drop()
		}
	} else if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
	var zero T
	*p = zero
}

func destroyAll[T any](buf []T) {
	for i := range buf {
		destroy(&buf[i])
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// move relocates src into dst and zeroes the source slots. The ranges must
// not overlap.
func move[T any](dst, src []T) {
	copy(dst, src)
	clear(src)
}
