package fixseq

import (
	"iter"
	"strconv"

	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/shape"
)

// Partitioned is a sequence viewed as consecutive parts of fixed lengths.
type Partitioned[T any] struct {
	seq   *Seq[T]
	proof shape.Proof
}

// Partition consumes s into a partitioned sequence whose part lengths sum
// to s.Len().
func Partition[T any](s *Seq[T], lengths ...int) (*Partitioned[T], error) {
	if err := s.check(errors.PhasePartition, "partition"); err != nil {
		return nil, err
	}
	p, err := shape.Partition("partition", s.Len(), lengths...)
	if err != nil {
		return nil, err
	}
	buf, err := take(s, errors.PhasePartition, "partition")
	if err != nil {
		return nil, err
	}
	return &Partitioned[T]{seq: adopt(buf), proof: p}, nil
}

func (p *Partitioned[T]) check(op string) error {
	if p == nil {
		return errors.NilPointer(errors.PhasePartition, op)
	}
	return p.seq.check(errors.PhasePartition, op)
}

// Len returns the total number of elements.
func (p *Partitioned[T]) Len() int {
	if p == nil {
		return 0
	}
	return p.seq.Len()
}

// NumParts returns the number of parts.
func (p *Partitioned[T]) NumParts() int {
	if p == nil {
		return 0
	}
	return p.proof.Len()
}

// Lengths returns a copy of the part lengths.
func (p *Partitioned[T]) Lengths() []int {
	if p == nil {
		return nil
	}
	return p.proof.Parts()
}

// Offsets returns the start index of every part.
func (p *Partitioned[T]) Offsets() []int {
	if p == nil {
		return nil
	}
	out := make([]int, p.proof.Len())
	off := 0
	for i := range out {
		out[i] = off
		off += p.proof.Part(i)
	}
	return out
}

// Part borrows part i.
func (p *Partitioned[T]) Part(i int) ([]T, error) {
	if err := p.check("part"); err != nil {
		return nil, err
	}
	if i < 0 || i >= p.proof.Len() {
		return nil, errors.OutOfBounds(errors.PhaseIndex, []string{"part", strconv.Itoa(i)}, i, p.proof.Len())
	}
	return borrow(p.seq.buf, p.proof)[i], nil
}

// Parts borrows every part.
func (p *Partitioned[T]) Parts() ([][]T, error) {
	if err := p.check("parts"); err != nil {
		return nil, err
	}
	return borrow(p.seq.buf, p.proof), nil
}

// EachPart yields every part with its index.
func (p *Partitioned[T]) EachPart() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		parts, err := p.Parts()
		if err != nil {
			return
		}
		for i, part := range parts {
			if !yield(i, part) {
				return
			}
		}
	}
}

// Flatten consumes p and returns its elements as one sequence.
func (p *Partitioned[T]) Flatten() (*Seq[T], error) {
	if err := p.check("flatten"); err != nil {
		return nil, err
	}
	buf, _ := take(p.seq, errors.PhasePartition, "flatten")
	return adopt(buf), nil
}

// Reinterpret consumes p and returns the same elements split at new part
// lengths with the same total.
func (p *Partitioned[T]) Reinterpret(lengths ...int) (*Partitioned[T], error) {
	if err := p.check("reinterpret_lengths"); err != nil {
		return nil, err
	}
	proof, err := shape.Partition("reinterpret_lengths", p.seq.Len(), lengths...)
	if err != nil {
		return nil, err
	}
	buf, _ := take(p.seq, errors.PhasePartition, "reinterpret_lengths")
	return &Partitioned[T]{seq: adopt(buf), proof: proof}, nil
}

// Reformulate consumes p and returns it under an identical list of part
// lengths.
func (p *Partitioned[T]) Reformulate(lengths ...int) (*Partitioned[T], error) {
	if err := p.check("reformulate_lengths"); err != nil {
		return nil, err
	}
	if err := shape.Reformulate("reformulate_lengths", p.proof.Parts(), lengths); err != nil {
		return nil, err
	}
	return p.Reinterpret(lengths...)
}

// Split consumes p into one owned sequence per part, sharing storage.
func (p *Partitioned[T]) Split() ([]*Seq[T], error) {
	if err := p.check("split_parts"); err != nil {
		return nil, err
	}
	return reinterpret(p.seq, p.proof)
}

// Drop destroys every element.
func (p *Partitioned[T]) Drop() {
	if p != nil {
		p.seq.Drop()
	}
}
