package fixseq

import (
	"go.uber.org/zap"

	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/shape"
)

// Infallible adapts f to a Generator that never fails.
func Infallible[T any](f func(i int) T) Generator[T] {
	return func(i int) (T, error) {
		return f(i), nil
	}
}

// Fill builds a sequence of n elements by calling f(0), f(1), ... in order.
// If f panics, the elements already built are destroyed before the panic
// continues.
func Fill[T any](n int, f func(i int) T) (*Seq[T], error) {
	return fill("fill", n, false, Infallible(f))
}

// RFill builds a sequence of n elements by calling f(n-1), ..., f(0) in that
// order; element i is f(i).
func RFill[T any](n int, f func(i int) T) (*Seq[T], error) {
	return fill("rfill", n, true, Infallible(f))
}

// TryFill is Fill with a fallible generator. On the first error the elements
// already built are destroyed and the error is returned.
func TryFill[T any](n int, gen Generator[T]) (*Seq[T], error) {
	return fill("try_fill", n, false, gen)
}

// TryRFill is RFill with a fallible generator.
func TryRFill[T any](n int, gen Generator[T]) (*Seq[T], error) {
	return fill("try_rfill", n, true, gen)
}

// FromGenerator builds a sequence of n elements from gen, in index order.
func FromGenerator[T any](n int, gen Generator[T]) (*Seq[T], error) {
	return fill("from_generator", n, false, gen)
}

func fill[T any](op string, n int, reverse bool, gen Generator[T]) (*Seq[T], error) {
	if n < 0 {
		return nil, errors.ShapeMismatch(op, "N >= 0", "negative length")
	}
	if gen == nil {
		return nil, errors.InvalidInput(errors.PhaseResize, op+": nil generator")
	}
	buf := make([]T, n)
	if err := fillInto(op, buf, reverse, identity, gen); err != nil {
		return nil, err
	}
	return adopt(buf), nil
}

func identity(i int) int { return i }

// fillInto stores gen(at(pos)) at every position of dst, ascending or
// descending. On error or panic exactly the positions filled so far are
// destroyed.
func fillInto[T any](op string, dst []T, reverse bool, at func(int) int, gen Generator[T]) error {
	n := len(dst)
	lo, hi := 0, 0
	if reverse {
		lo, hi = n, n
	}
	done := false
	defer func() {
		if !done {
			destroyAll(dst[lo:hi])
			debug("generator unwound", zap.String("op", op), zap.Int("destroyed", hi-lo))
		}
	}()
	for c := range n {
		pos := c
		if reverse {
			pos = n - 1 - c
		}
		v, err := gen(at(pos))
		if err != nil {
			return errors.GeneratorFailed(errors.PhaseResize, op, at(pos), err)
		}
		dst[pos] = v
		if reverse {
			lo = pos
		} else {
			hi = pos + 1
		}
	}
	done = true
	return nil
}

// Truncate keeps the first m elements of s and destroys the rest.
func Truncate[T any](s *Seq[T], m int) (*Seq[T], error) {
	if err := s.check(errors.PhaseResize, "truncate"); err != nil {
		return nil, err
	}
	p, err := shape.Truncate("truncate", s.Len(), m)
	if err != nil {
		return nil, err
	}
	parts, err := reinterpret(s, p)
	if err != nil {
		return nil, err
	}
	parts[1].Drop()
	return parts[0], nil
}

// RTruncate keeps the last m elements of s and destroys the rest.
func RTruncate[T any](s *Seq[T], m int) (*Seq[T], error) {
	if err := s.check(errors.PhaseResize, "rtruncate"); err != nil {
		return nil, err
	}
	p, err := shape.RTruncate("rtruncate", s.Len(), m)
	if err != nil {
		return nil, err
	}
	parts, err := reinterpret(s, p)
	if err != nil {
		return nil, err
	}
	parts[0].Drop()
	return parts[1], nil
}

// Resize returns a sequence of m elements: the first min(N, m) elements of s
// followed by gen(N), ..., gen(m-1). Excess elements of s are destroyed.
// On generator failure every element of s is destroyed as well.
func Resize[T any](s *Seq[T], m int, gen Generator[T]) (*Seq[T], error) {
	if err := s.check(errors.PhaseResize, "resize"); err != nil {
		return nil, err
	}
	p, err := shape.Resize("resize", s.Len(), m)
	if err != nil {
		return nil, err
	}
	keep := p.Part(0)
	return regrow(s, "resize", m, gen,
		func(dst, src []T) { move(dst[:keep], src[:keep]); destroyAll(src[keep:]) },
		keep, m, false)
}

// RResize returns a sequence of m elements: the last min(N, m) elements of s
// preceded by generated ones. The generator is called with the target
// index, from m-min(N, m)-1 down to 0.
func RResize[T any](s *Seq[T], m int, gen Generator[T]) (*Seq[T], error) {
	if err := s.check(errors.PhaseResize, "rresize"); err != nil {
		return nil, err
	}
	p, err := shape.RResize("rresize", s.Len(), m)
	if err != nil {
		return nil, err
	}
	grow, keep := p.Part(0), p.Part(1)
	return regrow(s, "rresize", m, gen,
		func(dst, src []T) {
			n := len(src)
			move(dst[grow:], src[n-keep:])
			destroyAll(src[:n-keep])
		},
		0, grow, true)
}

// Extend grows s to m elements; gen receives the absolute index of each new
// tail element, ascending.
func Extend[T any](s *Seq[T], m int, gen Generator[T]) (*Seq[T], error) {
	if err := s.check(errors.PhaseResize, "extend"); err != nil {
		return nil, err
	}
	p, err := shape.Extend("extend", s.Len(), m)
	if err != nil {
		return nil, err
	}
	n := p.Part(0)
	return regrow(s, "extend", m, gen,
		func(dst, src []T) { move(dst[:n], src) },
		n, m, false)
}

// RExtend grows s to m elements by generating m-N elements in front, in
// index order.
func RExtend[T any](s *Seq[T], m int, gen Generator[T]) (*Seq[T], error) {
	if err := s.check(errors.PhaseResize, "rextend"); err != nil {
		return nil, err
	}
	p, err := shape.RExtend("rextend", s.Len(), m)
	if err != nil {
		return nil, err
	}
	grow := p.Part(0)
	return regrow(s, "rextend", m, gen,
		func(dst, src []T) { move(dst[grow:], src) },
		0, grow, false)
}

// regrow moves the kept elements of s into fresh storage of m, then
// generates dst[lo:hi] with the absolute index of each slot. If generation
// fails the kept elements are destroyed too.
func regrow[T any](s *Seq[T], op string, m int, gen Generator[T], relocate func(dst, src []T), lo, hi int, reverse bool) (*Seq[T], error) {
	if gen == nil && hi > lo {
		return nil, errors.InvalidInput(errors.PhaseResize, op+": nil generator")
	}
	src, err := take(s, errors.PhaseResize, op)
	if err != nil {
		return nil, err
	}
	dst := make([]T, m)
	relocate(dst, src)

	done := false
	defer func() {
		if !done {
			destroyAll(dst[:lo])
			destroyAll(dst[hi:])
		}
	}()
	at := func(i int) int { return lo + i }
	if err := fillInto(op, dst[lo:hi], reverse, at, gen); err != nil {
		return nil, err
	}
	done = true
	return adopt(dst), nil
}
