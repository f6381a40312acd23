package arith

import (
	"math"
	"testing"
)

func TestSafeMul(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"zero * zero", 0, 0, 0, true},
		{"zero * max", 0, math.MaxInt, 0, true},
		{"max * one", math.MaxInt, 1, math.MaxInt, true},
		{"small * small", 100, 200, 20000, true},
		{"overflow", math.MaxInt, 2, 0, false},
		{"overflow symmetric", 2, math.MaxInt, 0, false},
		{"negative", -1, 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeMul(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeMul(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeMul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSafeAdd(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{"zero", 0, 0, 0, true},
		{"small", 3, 4, 7, true},
		{"max + zero", math.MaxInt, 0, math.MaxInt, true},
		{"overflow", math.MaxInt, 1, 0, false},
		{"negative", 5, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeAdd(tt.a, tt.b)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("SafeAdd(%d, %d) = %d, %v, want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSafeMulU32(t *testing.T) {
	if got, ok := SafeMulU32(65536, 65535); !ok || got != 65536*65535 {
		t.Errorf("SafeMulU32(65536, 65535) = %d, %v", got, ok)
	}
	if _, ok := SafeMulU32(65536, 65537); ok {
		t.Error("SafeMulU32(65536, 65537) should overflow")
	}
}

func TestProductAndSum(t *testing.T) {
	tests := []struct {
		name   string
		in     []int
		prod   int
		prodOK bool
		sum    int
		sumOK  bool
	}{
		{"empty", nil, 1, true, 0, true},
		{"single", []int{7}, 7, true, 7, true},
		{"matrix", []int{2, 3, 4}, 24, true, 9, true},
		{"zero extent", []int{3, 0, 5}, 0, true, 8, true},
		{"overflow", []int{math.MaxInt, 2}, 0, false, 0, false},
		{"negative", []int{2, -3}, 0, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Product(tt.in)
			if ok != tt.prodOK || (ok && p != tt.prod) {
				t.Errorf("Product(%v) = %d, %v, want %d, %v", tt.in, p, ok, tt.prod, tt.prodOK)
			}
			s, ok := Sum(tt.in)
			if ok != tt.sumOK || (ok && s != tt.sum) {
				t.Errorf("Sum(%v) = %d, %v, want %d, %v", tt.in, s, ok, tt.sum, tt.sumOK)
			}
		})
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uint32
	}{
		{5, 0, 5},
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{9, 8, 16},
	}

	for _, tt := range tests {
		if got := AlignTo(tt.offset, tt.align); got != tt.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.offset, tt.align, got, tt.want)
		}
	}
}

func TestTypeNameOf(t *testing.T) {
	if got := TypeNameOf[*string](); got != "*string" {
		t.Errorf("TypeNameOf[*string] = %q", got)
	}
	if got := TypeNameOf[float32](); got != "float32" {
		t.Errorf("TypeNameOf[float32] = %q", got)
	}
}
