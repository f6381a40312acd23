package fixseq

import (
	"iter"

	"github.com/wippyai/fixseq/errors"
)

// Cursor moves the elements out of a consumed sequence one at a time, from
// either end. Elements still inside the cursor are destroyed by Drop.
type Cursor[T any] struct {
	buf         []T
	front, back int
	reverse     bool
}

// IntoCursor consumes s into a cursor whose Next walks front to back.
func IntoCursor[T any](s *Seq[T]) (*Cursor[T], error) {
	buf, err := take(s, errors.PhaseReduce, "into_cursor")
	if err != nil {
		return nil, err
	}
	return &Cursor[T]{buf: buf, back: len(buf)}, nil
}

// IntoCursorReverse consumes s into a cursor whose Next walks back to front.
func IntoCursorReverse[T any](s *Seq[T]) (*Cursor[T], error) {
	c, err := IntoCursor(s)
	if err != nil {
		return nil, err
	}
	c.reverse = true
	return c, nil
}

// HasNext reports whether Next would produce an element.
func (c *Cursor[T]) HasNext() bool { return c.front < c.back }

// HasNextBack reports whether NextBack would produce an element.
func (c *Cursor[T]) HasNextBack() bool { return c.front < c.back }

// Remaining is the number of elements not yet produced.
func (c *Cursor[T]) Remaining() int { return c.back - c.front }

// Next moves out the next element.
func (c *Cursor[T]) Next() (T, bool) {
	if c.reverse {
		return c.popBack()
	}
	return c.popFront()
}

// NextBack moves out the element at the opposite end from Next.
func (c *Cursor[T]) NextBack() (T, bool) {
	if c.reverse {
		return c.popFront()
	}
	return c.popBack()
}

func (c *Cursor[T]) popFront() (T, bool) {
	var zero T
	if c.front >= c.back {
		return zero, false
	}
	v := c.buf[c.front]
	c.buf[c.front] = zero
	c.front++
	return v, true
}

func (c *Cursor[T]) popBack() (T, bool) {
	var zero T
	if c.front >= c.back {
		return zero, false
	}
	c.back--
	v := c.buf[c.back]
	c.buf[c.back] = zero
	return v, true
}

// Moves yields the remaining elements in Next order. Elements left behind
// by an early break stay in the cursor.
func (c *Cursor[T]) Moves() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c.HasNext() {
			v, _ := c.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// Drop destroys every element not yet produced.
func (c *Cursor[T]) Drop() {
	destroyAll(c.buf[c.front:c.back])
	c.buf = nil
	c.front, c.back = 0, 0
}
