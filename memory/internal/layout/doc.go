// Package layout computes Canonical ABI sizes and alignments for WIT types
// and proves when a nested layout can be read as a flat run of elements.
//
// A shape such as 3 x 4 u32 is described two ways: as nested tuples,
// tuple<tuple<u32, u32, u32, u32>, ...>, and as a flat element count. The
// two may only alias when their size and alignment agree, which holds for
// every primitive element but not for tuples with trailing padding.
//
// # Usage
//
//	c := layout.NewCalculator()
//	info, err := c.ProveFlat(wit.U32{}, 3, 4)
//	// info.Size == 48, info.Align == 4
//
// This package is internal to memory.
package layout
