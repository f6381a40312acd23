// Package shape is the size arithmetic oracle. Every reshape asks it for a
// Proof before touching an element; a Proof can only be obtained from this
// package, so holding one means the equation for the reshape was checked.
package shape

import (
	"fmt"
	"strings"

	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/arith"
)

// Proof records a checked partition of a source length into consecutive
// part lengths that sum to it.
type Proof struct {
	op    string
	n     int
	parts []int
}

// Op names the operation the proof was issued for.
func (p Proof) Op() string { return p.op }

// Source is the total length being partitioned.
func (p Proof) Source() int { return p.n }

// Len is the number of parts.
func (p Proof) Len() int { return len(p.parts) }

// Part returns the length of part i.
func (p Proof) Part(i int) int { return p.parts[i] }

// Parts returns a copy of the part lengths.
func (p Proof) Parts() []int {
	out := make([]int, len(p.parts))
	copy(out, p.parts)
	return out
}

// Valid reports whether p was issued by the oracle.
func (p Proof) Valid() bool { return p.op != "" }

func (p Proof) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d ->", p.op, p.n)
	for i, l := range p.parts {
		if i > 0 {
			b.WriteString(" +")
		}
		fmt.Fprintf(&b, " %d", l)
	}
	return b.String()
}

func mismatch(op, equation, format string, args ...any) error {
	return errors.ShapeMismatch(op, equation, fmt.Sprintf(format, args...))
}

func nonNegative(op string, name string, v int) error {
	if v < 0 {
		return mismatch(op, name+" >= 0", "%s=%d is negative", name, v)
	}
	return nil
}

// Split checks N = M + (N-M) with the M-prefix first.
func Split(op string, n, m int) (Proof, error) {
	if err := nonNegative(op, "M", m); err != nil {
		return Proof{}, err
	}
	if m > n {
		return Proof{}, mismatch(op, "M <= N", "M=%d exceeds N=%d", m, n)
	}
	return Proof{op: op, n: n, parts: []int{m, n - m}}, nil
}

// RSplit checks N = (N-M) + M with the M-suffix last.
func RSplit(op string, n, m int) (Proof, error) {
	if err := nonNegative(op, "M", m); err != nil {
		return Proof{}, err
	}
	if m > n {
		return Proof{}, mismatch(op, "M <= N", "M=%d exceeds N=%d", m, n)
	}
	return Proof{op: op, n: n, parts: []int{n - m, m}}, nil
}

func chunkSize(op string, n, m int) (q, r int, err error) {
	if m < 1 {
		return 0, 0, mismatch(op, "M >= 1", "chunk length M=%d", m)
	}
	return n / m, n % m, nil
}

// Chunks checks N = q*M + r and yields q parts of M followed by the
// remainder part (possibly empty).
func Chunks(op string, n, m int) (Proof, error) {
	q, r, err := chunkSize(op, n, m)
	if err != nil {
		return Proof{}, err
	}
	parts := make([]int, q+1)
	for i := range q {
		parts[i] = m
	}
	parts[q] = r
	return Proof{op: op, n: n, parts: parts}, nil
}

// RChunks is Chunks with the remainder part leading.
func RChunks(op string, n, m int) (Proof, error) {
	q, r, err := chunkSize(op, n, m)
	if err != nil {
		return Proof{}, err
	}
	parts := make([]int, q+1)
	parts[0] = r
	for i := 1; i <= q; i++ {
		parts[i] = m
	}
	return Proof{op: op, n: n, parts: parts}, nil
}

// ChunksExact checks N = q*M with no remainder.
func ChunksExact(op string, n, m int) (Proof, error) {
	q, r, err := chunkSize(op, n, m)
	if err != nil {
		return Proof{}, err
	}
	if r != 0 {
		return Proof{}, mismatch(op, "N = q*M", "N=%d is not a multiple of M=%d (remainder %d)", n, m, r)
	}
	parts := make([]int, q)
	for i := range parts {
		parts[i] = m
	}
	return Proof{op: op, n: n, parts: parts}, nil
}

// Concat checks that the lengths sum to a representable total.
func Concat(op string, lengths ...int) (Proof, error) {
	total, ok := arith.Sum(lengths)
	if !ok {
		for _, l := range lengths {
			if l < 0 {
				return Proof{}, mismatch(op, "lengths >= 0", "negative length %d", l)
			}
		}
		return Proof{}, errors.Overflow(errors.PhaseOracle, op, lengths, "int")
	}
	parts := make([]int, len(lengths))
	copy(parts, lengths)
	return Proof{op: op, n: total, parts: parts}, nil
}

// MaxEmptyLanes bounds how many lanes beyond N a spread may request. Every
// lane past N is empty, but each still costs a slot in the proof.
const MaxEmptyLanes = 1 << 16

// laneSize is chunkSize with the lane count bounded before anything is
// allocated for it.
func laneSize(op string, n, m int) (int, int, error) {
	if m > n && m-n > MaxEmptyLanes {
		return 0, 0, errors.Overflow(errors.PhaseOracle, op, m, "lane count")
	}
	return chunkSize(op, n, m)
}

// Spread checks M >= 1 and yields M lane lengths: lane k holds the source
// indices i*M+k, so the first N%M lanes are one longer than the rest.
func Spread(op string, n, m int) (Proof, error) {
	q, r, err := laneSize(op, n, m)
	if err != nil {
		return Proof{}, err
	}
	parts := make([]int, m)
	for k := range parts {
		parts[k] = q
		if k < r {
			parts[k]++
		}
	}
	return Proof{op: op, n: n, parts: parts}, nil
}

// RSpread checks M >= 1 and yields the leading remainder followed by M lanes
// of N/M elements each.
func RSpread(op string, n, m int) (Proof, error) {
	q, r, err := laneSize(op, n, m)
	if err != nil {
		return Proof{}, err
	}
	parts := make([]int, m+1)
	parts[0] = r
	for k := 1; k <= m; k++ {
		parts[k] = q
	}
	return Proof{op: op, n: n, parts: parts}, nil
}

// SpreadExact checks N = q*M and yields M lanes of q.
func SpreadExact(op string, n, m int) (Proof, error) {
	q, r, err := laneSize(op, n, m)
	if err != nil {
		return Proof{}, err
	}
	if r != 0 {
		return Proof{}, mismatch(op, "N = q*M", "N=%d is not a multiple of M=%d (remainder %d)", n, m, r)
	}
	parts := make([]int, m)
	for k := range parts {
		parts[k] = q
	}
	return Proof{op: op, n: n, parts: parts}, nil
}

// Transpose checks N = H*W and yields H rows of W.
func Transpose(op string, n, h, w int) (Proof, error) {
	if err := nonNegative(op, "H", h); err != nil {
		return Proof{}, err
	}
	if err := nonNegative(op, "W", w); err != nil {
		return Proof{}, err
	}
	hw, ok := arith.SafeMul(h, w)
	if !ok {
		return Proof{}, errors.Overflow(errors.PhaseOracle, op, fmt.Sprintf("%d*%d", h, w), "int")
	}
	if hw != n {
		return Proof{}, mismatch(op, "N = H*W", "N=%d but H=%d W=%d gives %d", n, h, w, hw)
	}
	parts := make([]int, h)
	for i := range parts {
		parts[i] = w
	}
	return Proof{op: op, n: n, parts: parts}, nil
}

// Truncate checks M <= N and yields the kept prefix and the dropped tail.
func Truncate(op string, n, m int) (Proof, error) {
	return Split(op, n, m)
}

// RTruncate checks M <= N and yields the dropped head and the kept suffix.
func RTruncate(op string, n, m int) (Proof, error) {
	return RSplit(op, n, m)
}

// Extend checks M >= N and yields the kept source and the generated tail.
func Extend(op string, n, m int) (Proof, error) {
	if m < n {
		return Proof{}, mismatch(op, "M >= N", "M=%d is shorter than N=%d", m, n)
	}
	return Proof{op: op, n: m, parts: []int{n, m - n}}, nil
}

// RExtend checks M >= N and yields the generated head and the kept source.
func RExtend(op string, n, m int) (Proof, error) {
	if m < n {
		return Proof{}, mismatch(op, "M >= N", "M=%d is shorter than N=%d", m, n)
	}
	return Proof{op: op, n: m, parts: []int{m - n, n}}, nil
}

// Resize checks M >= 0 and yields the kept and generated lengths of the
// result.
func Resize(op string, n, m int) (Proof, error) {
	if err := nonNegative(op, "M", m); err != nil {
		return Proof{}, err
	}
	keep := min(n, m)
	return Proof{op: op, n: m, parts: []int{keep, m - keep}}, nil
}

// RResize is Resize with the generated part leading.
func RResize(op string, n, m int) (Proof, error) {
	if err := nonNegative(op, "M", m); err != nil {
		return Proof{}, err
	}
	keep := min(n, m)
	return Proof{op: op, n: m, parts: []int{m - keep, keep}}, nil
}

// Partition checks sum(lengths) = N.
func Partition(op string, n int, lengths ...int) (Proof, error) {
	p, err := Concat(op, lengths...)
	if err != nil {
		return Proof{}, err
	}
	if p.n != n {
		return Proof{}, mismatch(op, "sum(lengths) = N", "lengths %v sum to %d, want %d", lengths, p.n, n)
	}
	return p, nil
}

// Reformulate checks that two part-length lists are identical.
func Reformulate(op string, have, want []int) error {
	if len(have) != len(want) {
		return mismatch(op, "lengths equal", "%d parts, want %d", len(have), len(want))
	}
	for i := range have {
		if have[i] != want[i] {
			return mismatch(op, "lengths equal", "part %d has length %d, want %d", i, have[i], want[i])
		}
	}
	return nil
}

// Equal checks N = M for element-wise pairing.
func Equal(op string, n, m int) error {
	if n != m {
		return mismatch(op, "N = M", "lengths %d and %d differ", n, m)
	}
	return nil
}

// AtLeast checks N >= m.
func AtLeast(op string, n, m int) error {
	if n < m {
		return mismatch(op, fmt.Sprintf("N >= %d", m), "N=%d", n)
	}
	return nil
}

// Volume checks that extents are non-negative and their product fits an int.
func Volume(op string, extents []int) (int, error) {
	for i, e := range extents {
		if e < 0 {
			return 0, errors.New(errors.PhaseOracle, errors.KindShapeMismatch).
				Op(op).
				Path(fmt.Sprint(i)).
				Equation("extent >= 0").
				Detail("extent %d is negative", e).
				Build()
		}
	}
	v, ok := arith.Product(extents)
	if !ok {
		return 0, errors.Overflow(errors.PhaseOracle, op, extents, "int")
	}
	return v, nil
}

// Extents checks product(extents) = N.
func Extents(op string, n int, extents []int) error {
	v, err := Volume(op, extents)
	if err != nil {
		return err
	}
	if v != n {
		return mismatch(op, "product(extents) = N", "extents %v hold %d elements, have %d", extents, v, n)
	}
	return nil
}
