package layout

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/internal/arith"
)

// Info is the linear-memory footprint of a type.
type Info struct {
	Size  uint32
	Align uint32
}

func (i Info) String() string {
	return fmt.Sprintf("size=%d align=%d", i.Size, i.Align)
}

type Calculator struct {
	cache map[*wit.TypeDef]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[*wit.TypeDef]Info),
	}
}

func (c *Calculator) Calculate(t wit.Type) Info {
	switch typ := t.(type) {
	case wit.U8, wit.S8:
		return Info{Size: 1, Align: 1}
	case wit.U16, wit.S16:
		return Info{Size: 2, Align: 2}
	case wit.U32, wit.S32, wit.F32:
		return Info{Size: 4, Align: 4}
	case wit.U64, wit.S64, wit.F64:
		return Info{Size: 8, Align: 8}
	case *wit.TypeDef:
		return c.calculateTypeDef(typ)
	default:
		return Info{Size: 0, Align: 1}
	}
}

func (c *Calculator) calculateTypeDef(t *wit.TypeDef) Info {
	if cached, ok := c.cache[t]; ok {
		return cached
	}

	var info Info

	switch kind := t.Kind.(type) {
	case *wit.Tuple:
		info = c.calculateTuple(kind)
	case wit.Type:
		info = c.Calculate(kind)
	default:
		info = Info{Size: 0, Align: 1}
	}

	c.cache[t] = info
	return info
}

// calculateTuple lays members out in order, padding each to its own
// alignment and the whole to the widest member.
func (c *Calculator) calculateTuple(t *wit.Tuple) Info {
	if len(t.Types) == 0 {
		return Info{Size: 0, Align: 1}
	}

	maxAlign := uint32(1)
	offset := uint32(0)

	for _, typ := range t.Types {
		member := c.Calculate(typ)
		offset = arith.AlignTo(offset, member.Align)
		maxAlign = max(maxAlign, member.Align)
		offset += member.Size
	}

	return Info{
		Size:  arith.AlignTo(offset, maxAlign),
		Align: maxAlign,
	}
}

// Repeat returns tuple<elem, elem, ...> with n members.
func Repeat(elem wit.Type, n int) *wit.TypeDef {
	types := make([]wit.Type, n)
	for i := range types {
		types[i] = elem
	}
	return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}
}

// Nested wraps elem in one tuple level per extent, innermost last.
func Nested(elem wit.Type, dims ...int) wit.Type {
	t := elem
	for i := len(dims) - 1; i >= 0; i-- {
		t = Repeat(t, dims[i])
	}
	return t
}

// Flat is the footprint of count elements laid end to end with no padding
// between them.
func (c *Calculator) Flat(elem wit.Type, count int) (Info, error) {
	e := c.Calculate(elem)
	if count == 0 {
		return Info{Size: 0, Align: e.Align}, nil
	}
	if count < 0 || uint64(count) > uint64(^uint32(0)) {
		return Info{}, errors.Overflow(errors.PhaseMemory, "flat_layout", count, "u32")
	}
	size, ok := arith.SafeMulU32(e.Size, uint32(count))
	if !ok {
		return Info{}, errors.Overflow(errors.PhaseMemory, "flat_layout", count, "u32")
	}
	return Info{Size: size, Align: e.Align}, nil
}

// ProveFlat checks that dims nested tuples of elem occupy exactly the bytes
// of the flat run of product(dims) elements, and returns that footprint.
func (c *Calculator) ProveFlat(elem wit.Type, dims ...int) (Info, error) {
	count, ok := arith.Product(dims)
	if !ok {
		return Info{}, errors.Overflow(errors.PhaseMemory, "prove_flat", dims, "int")
	}
	flat, err := c.Flat(elem, count)
	if err != nil {
		return Info{}, err
	}
	if count == 0 {
		return flat, nil
	}
	nested := c.Calculate(Nested(elem, dims...))
	if nested.Size != flat.Size || nested.Align != flat.Align {
		return Info{}, errors.LayoutMismatch("prove_flat", flat.String(), nested.String())
	}
	return flat, nil
}
