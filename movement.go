package fixseq

import (
	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/shape"
)

// Spread deals s into m lanes: lane k receives the elements at indices
// k, k+m, k+2m, ... so the first Len()%m lanes hold one element more than
// the rest. The elements are permuted in place and the lanes share s's
// storage.
func Spread[T any](s *Seq[T], m int) ([]*Seq[T], error) {
	if err := s.check(errors.PhaseMove, "spread"); err != nil {
		return nil, err
	}
	p, err := shape.Spread("spread", s.Len(), m)
	if err != nil {
		return nil, err
	}
	q, r := s.Len()/m, s.Len()%m
	permute(s.buf, func(i int) int {
		k := i % m
		return k*q + min(k, r) + i/m
	})
	return reinterpret(s, p)
}

// RSpread sets aside the first Len()%m elements and deals the rest into m
// lanes of equal length. Lane k receives indices r+k, r+k+m, ...
func RSpread[T any](s *Seq[T], m int) (*Seq[T], []*Seq[T], error) {
	if err := s.check(errors.PhaseMove, "rspread"); err != nil {
		return nil, nil, err
	}
	p, err := shape.RSpread("rspread", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	r := s.Len() % m
	transposeInPlace(s.buf[r:], s.Len()/m, m)
	parts, err := reinterpret(s, p)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1:], nil
}

// SpreadExact deals s into m lanes of equal length; Len() must be a
// multiple of m.
func SpreadExact[T any](s *Seq[T], m int) ([]*Seq[T], error) {
	if err := s.check(errors.PhaseMove, "spread_exact"); err != nil {
		return nil, err
	}
	p, err := shape.SpreadExact("spread_exact", s.Len(), m)
	if err != nil {
		return nil, err
	}
	transposeInPlace(s.buf, s.Len()/m, m)
	return reinterpret(s, p)
}

// SpreadRef borrows the lanes of Spread as strided views without moving
// anything.
func SpreadRef[T any](s *Seq[T], m int) ([]StridedView[T], error) {
	if err := s.check(errors.PhaseMove, "spread_ref"); err != nil {
		return nil, err
	}
	p, err := shape.Spread("spread_ref", s.Len(), m)
	if err != nil {
		return nil, err
	}
	return lanes(s.buf, 0, m, p.Parts())
}

// RSpreadRef borrows the leading remainder and the lanes of RSpread.
func RSpreadRef[T any](s *Seq[T], m int) ([]T, []StridedView[T], error) {
	if err := s.check(errors.PhaseMove, "rspread_ref"); err != nil {
		return nil, nil, err
	}
	p, err := shape.RSpread("rspread_ref", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	r := p.Part(0)
	views, err := lanes(s.buf, r, m, p.Parts()[1:])
	if err != nil {
		return nil, nil, err
	}
	return s.buf[:r:r], views, nil
}

// SpreadExactRef borrows m equal lanes; Len() must be a multiple of m.
func SpreadExactRef[T any](s *Seq[T], m int) ([]StridedView[T], error) {
	if err := s.check(errors.PhaseMove, "spread_exact_ref"); err != nil {
		return nil, err
	}
	p, err := shape.SpreadExact("spread_exact_ref", s.Len(), m)
	if err != nil {
		return nil, err
	}
	return lanes(s.buf, 0, m, p.Parts())
}

func lanes[T any](base []T, offset, m int, lengths []int) ([]StridedView[T], error) {
	out := make([]StridedView[T], m)
	for k := range out {
		v, err := newStridedView(base, offset+k, m, lengths[k])
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Transpose reads s as h rows of w and returns the w x h transpose, moved
// into fresh storage. s is consumed.
func Transpose[T any](s *Seq[T], h, w int) (*Seq[T], error) {
	if err := s.check(errors.PhaseMove, "transpose"); err != nil {
		return nil, err
	}
	if _, err := shape.Transpose("transpose", s.Len(), h, w); err != nil {
		return nil, err
	}
	src, err := take(s, errors.PhaseMove, "transpose")
	if err != nil {
		return nil, err
	}
	dst := make([]T, len(src))
	for i := range h {
		for j := range w {
			dst[j*h+i] = src[i*w+j]
		}
	}
	clear(src)
	return adopt(dst), nil
}

// TransposeRows transposes equal-length rows into rows of the old columns.
// Every row is consumed.
func TransposeRows[T any](rows []*Seq[T]) ([]*Seq[T], error) {
	if len(rows) == 0 {
		return nil, nil
	}
	w := rows[0].Len()
	for _, row := range rows[1:] {
		if err := shape.Equal("transpose_rows", w, row.Len()); err != nil {
			return nil, err
		}
	}
	flat, err := Concat(rows...)
	if err != nil {
		return nil, err
	}
	t, err := Transpose(flat, len(rows), w)
	if err != nil {
		return nil, err
	}
	return ChunksExact(t, len(rows))
}

// permute moves buf[i] to buf[dest(i)] for every i by following each cycle
// from its smallest index. dest must be a bijection on [0, len(buf)).
func permute[T any](buf []T, dest func(int) int) {
	for start := range buf {
		j := dest(start)
		for j > start {
			j = dest(j)
		}
		if j < start {
			continue
		}
		carry := buf[start]
		for j = dest(start); j != start; j = dest(j) {
			buf[j], carry = carry, buf[j]
		}
		buf[start] = carry
	}
}

// transposeInPlace turns an h x w row-major matrix into its w x h
// transpose within the same storage.
func transposeInPlace[T any](buf []T, h, w int) {
	if h <= 1 || w <= 1 {
		return
	}
	permute(buf, func(i int) int {
		return (i%w)*h + i/w
	})
}

func rotation(n, k int) int {
	if n == 0 {
		return 0
	}
	k %= n
	if k < 0 {
		k += n
	}
	return k
}

// RotateLeft rotates s in place so that element k mod Len() comes first.
func RotateLeft[T any](s *Seq[T], k int) error {
	if err := s.check(errors.PhaseMove, "rotate_left"); err != nil {
		return err
	}
	rotateLeft(s.buf, rotation(s.Len(), k))
	return nil
}

// RotateRight rotates s in place so that the last k mod Len() elements come
// first.
func RotateRight[T any](s *Seq[T], k int) error {
	if err := s.check(errors.PhaseMove, "rotate_right"); err != nil {
		return err
	}
	n := s.Len()
	rotateLeft(s.buf, rotation(n, n-rotation(n, k)))
	return nil
}

func rotateLeft[T any](buf []T, k int) {
	if k == 0 {
		return
	}
	n := len(buf)
	aux := make([]T, n)
	copy(aux, buf[k:])
	copy(aux[n-k:], buf[:k])
	copy(buf, aux)
	clear(aux)
}

// IntoRotateLeft consumes s and returns it rotated left by k.
func IntoRotateLeft[T any](s *Seq[T], k int) (*Seq[T], error) {
	src, err := take(s, errors.PhaseMove, "into_rotate_left")
	if err != nil {
		return nil, err
	}
	return adopt(rotatedInto(src, rotation(len(src), k))), nil
}

// IntoRotateRight consumes s and returns it rotated right by k.
func IntoRotateRight[T any](s *Seq[T], k int) (*Seq[T], error) {
	src, err := take(s, errors.PhaseMove, "into_rotate_right")
	if err != nil {
		return nil, err
	}
	n := len(src)
	return adopt(rotatedInto(src, rotation(n, n-rotation(n, k)))), nil
}

func rotatedInto[T any](src []T, k int) []T {
	n := len(src)
	dst := make([]T, n)
	move(dst[:n-k], src[k:])
	move(dst[n-k:], src[:k])
	return dst
}

// ShiftLeft pushes item onto the back of s and returns the element evicted
// from the front. For an empty s the item itself is returned.
func ShiftLeft[T any](s *Seq[T], item T) (T, error) {
	if err := s.check(errors.PhaseMove, "shift_left"); err != nil {
		var zero T
		return zero, err
	}
	n := len(s.buf)
	if n == 0 {
		return item, nil
	}
	out := s.buf[0]
	copy(s.buf, s.buf[1:])
	s.buf[n-1] = item
	return out, nil
}

// ShiftRight pushes item onto the front of s and returns the element
// evicted from the back. For an empty s the item itself is returned.
func ShiftRight[T any](s *Seq[T], item T) (T, error) {
	if err := s.check(errors.PhaseMove, "shift_right"); err != nil {
		var zero T
		return zero, err
	}
	n := len(s.buf)
	if n == 0 {
		return item, nil
	}
	out := s.buf[n-1]
	copy(s.buf[1:], s.buf[:n-1])
	s.buf[0] = item
	return out, nil
}

// ShiftManyLeft appends items behind s, keeps the last Len() elements of the
// combined sequence in s and returns the first items.Len() as overflow.
// items is consumed.
func ShiftManyLeft[T any](s, items *Seq[T]) (*Seq[T], error) {
	if err := s.check(errors.PhaseMove, "shift_many_left"); err != nil {
		return nil, err
	}
	if s == items {
		return nil, passedTwice(errors.PhaseMove, "shift_many_left")
	}
	in, err := take(items, errors.PhaseMove, "shift_many_left")
	if err != nil {
		return nil, err
	}
	buf := s.buf
	n, m := len(buf), len(in)
	overflow := make([]T, m)
	if m <= n {
		copy(overflow, buf[:m])
		copy(buf, buf[m:])
		move(buf[n-m:], in)
	} else {
		move(overflow[:n], buf)
		move(overflow[n:], in[:m-n])
		move(buf, in[m-n:])
	}
	return adopt(overflow), nil
}

// ShiftManyRight prepends items in front of s, keeps the first Len()
// elements of the combined sequence in s and returns the last items.Len() as
// overflow. items is consumed.
func ShiftManyRight[T any](s, items *Seq[T]) (*Seq[T], error) {
	if err := s.check(errors.PhaseMove, "shift_many_right"); err != nil {
		return nil, err
	}
	if s == items {
		return nil, passedTwice(errors.PhaseMove, "shift_many_right")
	}
	in, err := take(items, errors.PhaseMove, "shift_many_right")
	if err != nil {
		return nil, err
	}
	buf := s.buf
	n, m := len(buf), len(in)
	overflow := make([]T, m)
	if m <= n {
		copy(overflow, buf[n-m:])
		copy(buf[m:], buf[:n-m])
		move(buf[:m], in)
	} else {
		move(overflow[:m-n], in[n:])
		move(overflow[m-n:], buf)
		move(buf, in[:n])
	}
	return adopt(overflow), nil
}

// IntoShiftLeft consumes s and items and returns the last s.Len() elements
// of s followed by items, plus the first items.Len() as overflow.
func IntoShiftLeft[T any](s, items *Seq[T]) (*Seq[T], *Seq[T], error) {
	n := s.Len()
	if err := s.check(errors.PhaseMove, "into_shift_left"); err != nil {
		return nil, nil, err
	}
	joined, err := concat("into_shift_left", s, items)
	if err != nil {
		return nil, nil, err
	}
	overflow, kept, err := RSplit(joined, n)
	if err != nil {
		return nil, nil, err
	}
	return kept, overflow, nil
}

// IntoShiftRight consumes s and items and returns the first s.Len() elements
// of items followed by s, plus the last items.Len() as overflow.
func IntoShiftRight[T any](s, items *Seq[T]) (*Seq[T], *Seq[T], error) {
	n := s.Len()
	if err := s.check(errors.PhaseMove, "into_shift_right"); err != nil {
		return nil, nil, err
	}
	joined, err := concat("into_shift_right", items, s)
	if err != nil {
		return nil, nil, err
	}
	return Split(joined, n)
}
