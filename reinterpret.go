package fixseq

import (
	"go.uber.org/zap"

	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/shape"
)

// This file is the only place where storage changes owner. Every other
// operation obtains a shape.Proof from the oracle and calls into here.

// window returns a sequence over base[off:off+n] that cannot reach past its
// own end.
func window[T any](base []T, off, n int) *Seq[T] {
	end := off + n
	return &Seq[T]{buf: base[off:end:end], base: base, off: off}
}

// reinterpret hands the storage of src to one new sequence per part of p.
// The parts are disjoint consecutive windows over the same backing array;
// src is consumed and its own destruction suppressed.
func reinterpret[T any](src *Seq[T], p shape.Proof) ([]*Seq[T], error) {
	if err := src.check(errors.PhasePartition, p.Op()); err != nil {
		return nil, err
	}
	if !p.Valid() || p.Source() != len(src.buf) {
		return nil, errors.ShapeMismatch(p.Op(), "proof source = N", p.String())
	}
	out := make([]*Seq[T], p.Len())
	off := src.off
	for i := range out {
		n := p.Part(i)
		out[i] = window(src.base, off, n)
		off += n
	}
	src.release(stateConsumed)
	debug("reinterpret", zap.String("op", p.Op()), zap.Ints("parts", p.Parts()))
	return out, nil
}

// join is the inverse of reinterpret. When the parts are adjacent windows of
// one backing array, in order, the result reuses that storage; otherwise one
// fresh buffer receives every element by move.
func join[T any](p shape.Proof, parts ...*Seq[T]) (*Seq[T], error) {
	for i, s := range parts {
		if err := s.check(errors.PhasePartition, p.Op()); err != nil {
			return nil, err
		}
		for _, prev := range parts[:i] {
			if prev == s {
				return nil, passedTwice(errors.PhasePartition, p.Op())
			}
		}
	}
	if !p.Valid() || p.Len() != len(parts) {
		return nil, errors.ShapeMismatch(p.Op(), "proof parts = inputs", p.String())
	}

	if contiguous(parts) {
		first := parts[0]
		out := window(first.base, first.off, p.Source())
		for _, s := range parts {
			s.release(stateConsumed)
		}
		debug("join in place", zap.String("op", p.Op()), zap.Int("len", p.Source()))
		return out, nil
	}

	buf := make([]T, p.Source())
	off := 0
	for _, s := range parts {
		move(buf[off:off+len(s.buf)], s.buf)
		off += len(s.buf)
		s.release(stateConsumed)
	}
	debug("join by move", zap.String("op", p.Op()), zap.Int("len", p.Source()))
	return adopt(buf), nil
}

func passedTwice(phase errors.Phase, op string) error {
	return errors.New(phase, errors.KindInvalidInput).
		Op(op).
		Detail("sequence passed twice").
		Build()
}

func contiguous[T any](parts []*Seq[T]) bool {
	if len(parts) == 0 {
		return false
	}
	base := parts[0].base
	if len(base) == 0 {
		return false
	}
	next := parts[0].off + len(parts[0].buf)
	for _, s := range parts[1:] {
		if len(s.base) != len(base) || &s.base[0] != &base[0] || s.off != next {
			return false
		}
		next += len(s.buf)
	}
	return next <= len(base)
}

// take removes the storage from src so the caller can move elements out of
// it. src is consumed.
func take[T any](src *Seq[T], phase errors.Phase, op string) ([]T, error) {
	if err := src.check(phase, op); err != nil {
		return nil, err
	}
	buf := src.buf
	src.release(stateConsumed)
	return buf, nil
}

// Reinterpret splits src into consecutive owned parts of the given lengths,
// which must sum to src.Len(). No element is copied.
func Reinterpret[T any](src *Seq[T], lengths ...int) ([]*Seq[T], error) {
	if err := src.check(errors.PhasePartition, "reinterpret"); err != nil {
		return nil, err
	}
	p, err := shape.Partition("reinterpret", src.Len(), lengths...)
	if err != nil {
		return nil, err
	}
	return reinterpret(src, p)
}
