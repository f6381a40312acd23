package fixseq

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/fixseq/errors"
)

var (
	errConsumed = &errors.Error{Phase: errors.PhasePartition, Kind: errors.KindConsumed}
	errShape    = &errors.Error{Phase: errors.PhaseOracle, Kind: errors.KindShapeMismatch}
	errBounds   = &errors.Error{Phase: errors.PhaseIndex, Kind: errors.KindOutOfBounds}
)

func TestNew(t *testing.T) {
	s, err := New[string](3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"", "", ""}, values(s)); diff != "" {
		t.Errorf("New mismatch (-want +got):\n%s", diff)
	}
	if _, err := New[int](-1); err == nil {
		t.Error("New(-1) should fail")
	}
}

func TestOfCopies(t *testing.T) {
	src := []int{1, 2, 3}
	s := Of(src...)
	src[0] = 99
	if v, _ := s.At(0); v != 1 {
		t.Errorf("At(0) = %d, want 1", v)
	}
}

func TestFromLimitsCapacity(t *testing.T) {
	buf := make([]int, 2, 10)
	s := From(buf)
	if got := cap(s.Slice()); got != 2 {
		t.Errorf("cap = %d, want 2", got)
	}
	if From[int](nil).Len() != 0 {
		t.Error("From(nil) should be empty")
	}
}

func TestAccessors(t *testing.T) {
	s := Of(10, 20, 30)

	tests := []struct {
		name    string
		index   int
		want    int
		wantErr bool
	}{
		{"first", 0, 10, false},
		{"last", 2, 30, false},
		{"negative", -1, 0, true},
		{"past end", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.At(tt.index)
			if tt.wantErr {
				if !stderrors.Is(err, errBounds) {
					t.Errorf("At(%d) error = %v, want out of bounds", tt.index, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("At(%d) = %d, want %d", tt.index, got, tt.want)
			}
		})
	}

	p, err := s.Ptr(1)
	if err != nil {
		t.Fatal(err)
	}
	*p = 21
	if err := s.Set(2, 31); err != nil {
		t.Fatal(err)
	}
	old, err := s.Replace(0, 11)
	if err != nil {
		t.Fatal(err)
	}
	if old != 10 {
		t.Errorf("Replace returned %d, want 10", old)
	}
	if diff := cmp.Diff([]int{11, 21, 31}, values(s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIterators(t *testing.T) {
	s := Of("a", "b", "c")

	var fwd []string
	for i, v := range s.All() {
		fwd = append(fwd, v)
		if i == 1 {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, fwd); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}

	var back []int
	for i := range s.Backward() {
		back = append(back, i)
	}
	if diff := cmp.Diff([]int{2, 1, 0}, back); diff != "" {
		t.Errorf("Backward mismatch (-want +got):\n%s", diff)
	}
}

func TestSetDropsPrevious(t *testing.T) {
	l := newLedger()
	s := l.tokens(2)
	if err := s.Set(0, l.token()); err != nil {
		t.Fatal(err)
	}
	if l.drops[0] != 1 {
		t.Errorf("replaced token dropped %d times, want 1", l.drops[0])
	}
	s.Drop()
	l.requireOnce(t)
}

func TestDropOnce(t *testing.T) {
	l := newLedger()
	s := l.tokens(4)
	s.Drop()
	s.Drop()
	l.requireOnce(t)
	if s.IsLive() {
		t.Error("dropped sequence should not be live")
	}
	if s.String() != "<dropped>" {
		t.Errorf("String() = %q", s.String())
	}
}

type valueDropper struct{ n *int }

func (v *valueDropper) Drop() { *v.n++ }

func TestDropPointerReceiverOnValueElement(t *testing.T) {
	n := 0
	s := Of(valueDropper{&n}, valueDropper{&n})
	s.Drop()
	if n != 2 {
		t.Errorf("drops = %d, want 2", n)
	}
}

func TestDropSkipsNilPointers(t *testing.T) {
	s := Of[*token](nil, nil)
	s.Drop()
}

func TestConsumedSequenceRejected(t *testing.T) {
	s := Of(1, 2, 3)
	if _, _, err := Split(s, 1); err != nil {
		t.Fatal(err)
	}
	if !s.IsConsumed() {
		t.Fatal("split source should be consumed")
	}
	if _, _, err := Split(s, 1); !stderrors.Is(err, errConsumed) {
		t.Errorf("second split error = %v, want consumed", err)
	}
	if _, err := s.At(0); err == nil {
		t.Error("At on consumed sequence should fail")
	}
	if s.Slice() != nil {
		t.Error("Slice on consumed sequence should be nil")
	}
	if s.String() != "<consumed>" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestNilSequence(t *testing.T) {
	var s *Seq[int]
	if s.Len() != 0 {
		t.Error("nil Len should be 0")
	}
	if _, _, err := Split(s, 0); err == nil {
		t.Error("split of nil should fail")
	}
	s.Drop()
}
