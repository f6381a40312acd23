package memory

import (
	"math"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/fixseq"
	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/arith"
	"github.com/wippyai/fixseq/memory/internal/layout"
	"github.com/wippyai/fixseq/nd"
)

// Scalar is the set of element types with a fixed little-endian encoding.
type Scalar interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// ElemType returns the WIT type T is stored as.
func ElemType[T Scalar]() wit.Type {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return wit.U8{}
	case uint16:
		return wit.U16{}
	case uint32:
		return wit.U32{}
	case uint64:
		return wit.U64{}
	case int8:
		return wit.S8{}
	case int16:
		return wit.S16{}
	case int32:
		return wit.S32{}
	case int64:
		return wit.S64{}
	case float32:
		return wit.F32{}
	default:
		return wit.F64{}
	}
}

func width[T Scalar]() uint32 {
	return layout.NewCalculator().Calculate(ElemType[T]()).Size
}

func load[T Scalar](mem fixseq.Memory, at uint32) (T, error) {
	var zero T
	switch any(zero).(type) {
	case uint8, int8:
		v, err := mem.ReadU8(at)
		if _, signed := any(zero).(int8); signed {
			return T(int8(v)), err
		}
		return T(v), err
	case uint16, int16:
		v, err := mem.ReadU16(at)
		if _, signed := any(zero).(int16); signed {
			return T(int16(v)), err
		}
		return T(v), err
	case uint32, int32:
		v, err := mem.ReadU32(at)
		if _, signed := any(zero).(int32); signed {
			return T(int32(v)), err
		}
		return T(v), err
	case float32:
		v, err := mem.ReadU32(at)
		return T(math.Float32frombits(v)), err
	case float64:
		v, err := mem.ReadU64(at)
		return T(math.Float64frombits(v)), err
	default:
		v, err := mem.ReadU64(at)
		if _, signed := any(zero).(int64); signed {
			return T(int64(v)), err
		}
		return T(v), err
	}
}

func store[T Scalar](mem fixseq.Memory, at uint32, v T) error {
	switch x := any(v).(type) {
	case uint8:
		return mem.WriteU8(at, x)
	case int8:
		return mem.WriteU8(at, uint8(x))
	case uint16:
		return mem.WriteU16(at, x)
	case int16:
		return mem.WriteU16(at, uint16(x))
	case uint32:
		return mem.WriteU32(at, x)
	case int32:
		return mem.WriteU32(at, uint32(x))
	case uint64:
		return mem.WriteU64(at, x)
	case int64:
		return mem.WriteU64(at, uint64(x))
	case float32:
		return mem.WriteU32(at, math.Float32bits(x))
	case float64:
		return mem.WriteU64(at, math.Float64bits(x))
	}
	return errors.Unsupported(errors.PhaseMemory, arith.TypeNameOf[T]())
}

// span validates that n elements of w bytes starting at offset fit in
// memory and returns the byte length.
func span(mem fixseq.Memory, op string, offset uint32, n int, w uint32) (uint32, error) {
	if n < 0 {
		return 0, errors.InvalidInput(errors.PhaseMemory, "negative element count")
	}
	size := uint64(n) * uint64(w)
	end := uint64(offset) + size
	if end > math.MaxUint32+1 {
		return 0, errors.Overflow(errors.PhaseMemory, op, n, "u32 address space")
	}
	if sizer, ok := mem.(fixseq.MemorySizer); ok && end > uint64(sizer.Size()) {
		return 0, errors.OutOfBounds(errors.PhaseMemory, []string{op}, int(end), int(sizer.Size()))
	}
	return uint32(size), nil
}

// Lift reads n consecutive T values starting at offset into a new sequence.
func Lift[T Scalar](mem fixseq.Memory, offset uint32, n int) (*fixseq.Seq[T], error) {
	if mem == nil {
		return nil, errors.NilPointer(errors.PhaseMemory, "lift")
	}
	w := width[T]()
	if _, err := span(mem, "lift", offset, n, w); err != nil {
		return nil, err
	}
	return fixseq.TryFill(n, func(i int) (T, error) {
		return load[T](mem, offset+uint32(i)*w)
	})
}

// Lower writes every element of s to memory starting at offset. s is
// borrowed and stays live.
func Lower[T Scalar](mem fixseq.Memory, offset uint32, s *fixseq.Seq[T]) error {
	if mem == nil {
		return errors.NilPointer(errors.PhaseMemory, "lower")
	}
	if !s.IsLive() {
		return errors.Consumed(errors.PhaseMemory, "lower")
	}
	return lowerSlice(mem, offset, s.Slice())
}

func lowerSlice[T Scalar](mem fixseq.Memory, offset uint32, items []T) error {
	w := width[T]()
	if _, err := span(mem, "lower", offset, len(items), w); err != nil {
		return err
	}
	for i, v := range items {
		if err := store(mem, offset+uint32(i)*w, v); err != nil {
			return err
		}
	}
	return nil
}

func misaligned(op string, offset, align uint32) error {
	return errors.New(errors.PhaseMemory, errors.KindLayoutMismatch).
		Op(op).
		Value(offset).
		Detail("offset not aligned to %d", align).
		Build()
}

// LiftShaped reads an array whose memory form is nested WIT tuples of T,
// dims[0] outermost. The nested layout is proven equal to the flat run
// before any bytes are read, and offset must satisfy its alignment.
func LiftShaped[T Scalar](mem fixseq.Memory, offset uint32, dims ...int) (*nd.Array[T], error) {
	if mem == nil {
		return nil, errors.NilPointer(errors.PhaseMemory, "lift_shaped")
	}
	info, err := layout.NewCalculator().ProveFlat(ElemType[T](), dims...)
	if err != nil {
		return nil, err
	}
	if offset%info.Align != 0 {
		return nil, misaligned("lift_shaped", offset, info.Align)
	}

	count := int(info.Size / width[T]())
	s, err := Lift[T](mem, offset, count)
	if err != nil {
		return nil, err
	}
	fixseq.Logger().Debug("lifted shaped array",
		zap.Ints("dims", dims),
		zap.Uint32("offset", offset),
		zap.Uint32("bytes", info.Size))
	return nd.FromFlat(s, dims...)
}

// LowerShaped writes a in row-major order starting at offset. a is borrowed.
func LowerShaped[T Scalar](mem fixseq.Memory, offset uint32, a *nd.Array[T]) error {
	if mem == nil {
		return errors.NilPointer(errors.PhaseMemory, "lower_shaped")
	}
	flat, err := a.FlattenRef()
	if err != nil {
		return err
	}
	info, err := layout.NewCalculator().ProveFlat(ElemType[T](), a.Dims()...)
	if err != nil {
		return err
	}
	if offset%info.Align != 0 {
		return misaligned("lower_shaped", offset, info.Align)
	}
	return lowerSlice(mem, offset, flat)
}
