package fixseq

import (
	"slices"
	"testing"
	"testing/quick"
)

// shapeArgs bounds quick-generated sizes to something small and valid.
func shapeArgs(n, m uint8) (int, int) {
	return int(n % 64), int(m%16) + 1
}

func TestQuickChainSplit(t *testing.T) {
	f := func(n, m uint8) bool {
		size, at := shapeArgs(n, m)
		at = min(at, size)
		head, tail, err := Split(count(size), at)
		if err != nil {
			return false
		}
		joined, err := Chain(head, tail)
		if err != nil {
			return false
		}
		return slices.Equal(values(count(size)), values(joined))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickChunksFlatten(t *testing.T) {
	f := func(n, m uint8) bool {
		size, width := shapeArgs(n, m)
		size -= size % width
		chunks, err := ChunksExact(count(size), width)
		if err != nil {
			return false
		}
		var flat []int
		for _, c := range chunks {
			flat = append(flat, values(c)...)
		}
		return slices.Equal(values(count(size)), append([]int{}, flat...))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickSpreadInterleave(t *testing.T) {
	f := func(n, m uint8) bool {
		size, width := shapeArgs(n, m)
		lanes, err := Spread(count(size), width)
		if err != nil || len(lanes) != width {
			return false
		}
		rebuilt := make([]int, size)
		for k, lane := range lanes {
			for i, v := range lane.All() {
				rebuilt[i*width+k] = v
			}
		}
		return slices.Equal(values(count(size)), rebuilt)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickRSpreadInterleave(t *testing.T) {
	f := func(n, m uint8) bool {
		size, width := shapeArgs(n, m)
		rest, lanes, err := RSpread(count(size), width)
		if err != nil {
			return false
		}
		r := rest.Len()
		rebuilt := make([]int, size)
		copy(rebuilt, values(rest))
		for k, lane := range lanes {
			for i, v := range lane.All() {
				rebuilt[r+i*width+k] = v
			}
		}
		return slices.Equal(values(count(size)), rebuilt)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickRotateRoundTrip(t *testing.T) {
	f := func(n uint8, k int16) bool {
		size := int(n % 64)
		s := count(size)
		if RotateLeft(s, int(k)) != nil || RotateRight(s, int(k)) != nil {
			return false
		}
		return slices.Equal(values(count(size)), values(s))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickTransposeInvolution(t *testing.T) {
	f := func(h, w uint8) bool {
		rows, cols := int(h%12), int(w%12)
		once, err := Transpose(count(rows*cols), rows, cols)
		if err != nil {
			return false
		}
		twice, err := Transpose(once, cols, rows)
		if err != nil {
			return false
		}
		return slices.Equal(values(count(rows*cols)), values(twice))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestQuickShiftManyAccounting(t *testing.T) {
	f := func(n, m uint8) bool {
		l := newLedger()
		s := l.tokens(int(n % 16))
		items := l.tokens(int(m % 16))
		overflow, err := ShiftManyLeft(s, items)
		if err != nil || overflow.Len() != int(m%16) {
			return false
		}
		overflow.Drop()
		s.Drop()
		for id := range l.next {
			if l.drops[id] != 1 {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
