package fixseq

import (
	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/shape"
)

// Split moves s into its first m elements and the remaining Len()-m.
func Split[T any](s *Seq[T], m int) (*Seq[T], *Seq[T], error) {
	if err := s.check(errors.PhasePartition, "split"); err != nil {
		return nil, nil, err
	}
	p, err := shape.Split("split", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts, err := reinterpret(s, p)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1], nil
}

// RSplit moves s into its first Len()-m elements and its last m.
func RSplit[T any](s *Seq[T], m int) (*Seq[T], *Seq[T], error) {
	if err := s.check(errors.PhasePartition, "rsplit"); err != nil {
		return nil, nil, err
	}
	p, err := shape.RSplit("rsplit", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts, err := reinterpret(s, p)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1], nil
}

// SplitRef borrows the first m elements and the rest as two disjoint slices.
func SplitRef[T any](s *Seq[T], m int) ([]T, []T, error) {
	if err := s.check(errors.PhasePartition, "split_ref"); err != nil {
		return nil, nil, err
	}
	p, err := shape.Split("split_ref", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts := borrow(s.buf, p)
	return parts[0], parts[1], nil
}

// RSplitRef borrows the first Len()-m elements and the last m.
func RSplitRef[T any](s *Seq[T], m int) ([]T, []T, error) {
	if err := s.check(errors.PhasePartition, "rsplit_ref"); err != nil {
		return nil, nil, err
	}
	p, err := shape.RSplit("rsplit_ref", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts := borrow(s.buf, p)
	return parts[0], parts[1], nil
}

// Chunks moves s into Len()/m chunks of m elements followed by the
// Len()%m remainder.
func Chunks[T any](s *Seq[T], m int) ([]*Seq[T], *Seq[T], error) {
	if err := s.check(errors.PhasePartition, "chunks"); err != nil {
		return nil, nil, err
	}
	p, err := shape.Chunks("chunks", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts, err := reinterpret(s, p)
	if err != nil {
		return nil, nil, err
	}
	last := len(parts) - 1
	return parts[:last:last], parts[last], nil
}

// RChunks is Chunks with the remainder taken from the front.
func RChunks[T any](s *Seq[T], m int) (*Seq[T], []*Seq[T], error) {
	if err := s.check(errors.PhasePartition, "rchunks"); err != nil {
		return nil, nil, err
	}
	p, err := shape.RChunks("rchunks", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts, err := reinterpret(s, p)
	if err != nil {
		return nil, nil, err
	}
	return parts[0], parts[1:], nil
}

// ChunksExact moves s into chunks of m; Len() must be a multiple of m.
func ChunksExact[T any](s *Seq[T], m int) ([]*Seq[T], error) {
	if err := s.check(errors.PhasePartition, "chunks_exact"); err != nil {
		return nil, err
	}
	p, err := shape.ChunksExact("chunks_exact", s.Len(), m)
	if err != nil {
		return nil, err
	}
	return reinterpret(s, p)
}

// ChunksRef borrows chunks of m and the trailing remainder.
func ChunksRef[T any](s *Seq[T], m int) ([][]T, []T, error) {
	if err := s.check(errors.PhasePartition, "chunks_ref"); err != nil {
		return nil, nil, err
	}
	p, err := shape.Chunks("chunks_ref", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts := borrow(s.buf, p)
	last := len(parts) - 1
	return parts[:last:last], parts[last], nil
}

// RChunksRef borrows the leading remainder and chunks of m.
func RChunksRef[T any](s *Seq[T], m int) ([]T, [][]T, error) {
	if err := s.check(errors.PhasePartition, "rchunks_ref"); err != nil {
		return nil, nil, err
	}
	p, err := shape.RChunks("rchunks_ref", s.Len(), m)
	if err != nil {
		return nil, nil, err
	}
	parts := borrow(s.buf, p)
	return parts[0], parts[1:], nil
}

// ChunksExactRef borrows chunks of m; Len() must be a multiple of m.
func ChunksExactRef[T any](s *Seq[T], m int) ([][]T, error) {
	if err := s.check(errors.PhasePartition, "chunks_exact_ref"); err != nil {
		return nil, err
	}
	p, err := shape.ChunksExact("chunks_exact_ref", s.Len(), m)
	if err != nil {
		return nil, err
	}
	return borrow(s.buf, p), nil
}

// Chain moves a followed by b into one sequence of a.Len()+b.Len().
func Chain[T any](a, b *Seq[T]) (*Seq[T], error) {
	return concat("chain", a, b)
}

// RChain moves b followed by a into one sequence.
func RChain[T any](a, b *Seq[T]) (*Seq[T], error) {
	return concat("rchain", b, a)
}

// Concat moves every part, in order, into one sequence. It is the inverse
// of Chunks and Reinterpret.
func Concat[T any](parts ...*Seq[T]) (*Seq[T], error) {
	return concat("concat", parts...)
}

func concat[T any](op string, parts ...*Seq[T]) (*Seq[T], error) {
	lengths := make([]int, len(parts))
	for i, s := range parts {
		if err := s.check(errors.PhasePartition, op); err != nil {
			return nil, err
		}
		lengths[i] = s.Len()
	}
	p, err := shape.Concat(op, lengths...)
	if err != nil {
		return nil, err
	}
	return join(p, parts...)
}

// borrow cuts buf into capacity-limited windows following p.
func borrow[T any](buf []T, p shape.Proof) [][]T {
	out := make([][]T, p.Len())
	off := 0
	for i := range out {
		end := off + p.Part(i)
		out[i] = buf[off:end:end]
		off = end
	}
	return out
}
