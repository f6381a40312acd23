// Package arith holds overflow-checked size arithmetic shared by the shape
// oracle, the N-d layer and the linear-memory layout calculator.
package arith

import (
	"math"
	"reflect"
)

// SafeMul multiplies two non-negative ints, reporting overflow.
func SafeMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SafeAdd adds two non-negative ints, reporting overflow.
func SafeAdd(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

// Product multiplies extents, stopping at the first overflow or negative
// extent. The empty product is 1.
func Product(extents []int) (int, bool) {
	p := 1
	for _, e := range extents {
		var ok bool
		if p, ok = SafeMul(p, e); !ok {
			return 0, false
		}
	}
	return p, true
}

// Sum adds lengths, stopping at the first overflow or negative length.
func Sum(lengths []int) (int, bool) {
	s := 0
	for _, l := range lengths {
		var ok bool
		if s, ok = SafeAdd(s, l); !ok {
			return 0, false
		}
	}
	return s, true
}

func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// TypeNameOf names T without needing a value.
func TypeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
