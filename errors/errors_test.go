package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseOracle,
				Kind:     KindShapeMismatch,
				Op:       "chunks_exact",
				Path:     []string{"2", "1"},
				Equation: "N = q*M",
				Detail:   "N=7 M=3",
			},
			contains: []string{"[oracle]", "shape_mismatch", "in chunks_exact", "2.1", "requires N = q*M", " - N=7 M=3"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseIndex,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[index]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseResize,
				Kind:   KindGeneratorFailed,
				Detail: "generator failed at index 3",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[resize]", "generator_failed", "index 3", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseResize,
		Kind:  KindGeneratorFailed,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause through chain")
	}
}

func TestError_Is(t *testing.T) {
	err := ShapeMismatch("split", "M <= N", "M=5 N=3")

	if !err.Is(&Error{Phase: PhaseOracle, Kind: KindShapeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseMove, Kind: KindShapeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseOracle, Kind: KindOverflow}) {
		t.Error("Is should not match different kind")
	}

	var wrapped error = New(PhasePartition, KindInvalidInput).Cause(err).Detail("outer").Build()
	if !errors.Is(wrapped, &Error{Phase: PhaseOracle, Kind: KindShapeMismatch}) {
		t.Error("errors.Is should match wrapped cause")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseOracle, KindShapeMismatch).
		Path("0", "3").
		Op("transpose").
		Equation("N = H*W").
		Value(12).
		Cause(cause).
		Detail("H=%d W=%d", 5, 3).
		Build()

	if err.Phase != PhaseOracle {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseOracle)
	}
	if err.Kind != KindShapeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindShapeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "0" || err.Path[1] != "3" {
		t.Errorf("Path = %v, want [0 3]", err.Path)
	}
	if err.Op != "transpose" {
		t.Errorf("Op = %v, want 'transpose'", err.Op)
	}
	if err.Equation != "N = H*W" {
		t.Errorf("Equation = %v, want 'N = H*W'", err.Equation)
	}
	if err.Value != 12 {
		t.Errorf("Value = %v, want 12", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "H=5 W=3" {
		t.Errorf("Detail = %v, want 'H=5 W=3'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Consumed", func(t *testing.T) {
		err := Consumed(PhasePartition, "split")
		if err.Kind != KindConsumed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindConsumed)
		}
		if err.Op != "split" {
			t.Errorf("Op = %v, want split", err.Op)
		}
	})

	t.Run("GeneratorFailed", func(t *testing.T) {
		cause := errors.New("boom")
		err := GeneratorFailed(PhaseResize, "fill", 4, cause)
		if err.Kind != KindGeneratorFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindGeneratorFailed)
		}
		if err.Value != 4 {
			t.Errorf("Value = %v, want 4", err.Value)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable")
		}
	})

	t.Run("LayoutMismatch", func(t *testing.T) {
		err := LayoutMismatch("lift", "size=12 align=4", "size=16 align=8")
		if err.Kind != KindLayoutMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindLayoutMismatch)
		}
		if !strings.Contains(err.Detail, "size=16") {
			t.Errorf("Detail = %v, should mention actual layout", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseIndex, []string{"lane"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("NilPointer", func(t *testing.T) {
		err := NilPointer(PhaseMove, "rotate_left")
		if err.Kind != KindNilPointer {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNilPointer)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseOracle, "chain", 300, "int")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != 300 {
			t.Errorf("Value = %v, want 300", err.Value)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		err := ParseFailed("sequence", errors.New("bad"))
		if err.Phase != PhaseParse || err.Kind != KindInvalidData {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("Instantiation", func(t *testing.T) {
		err := Instantiation(errors.New("no memory"))
		if err.Kind != KindInstantiation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInstantiation)
		}
	})
}
