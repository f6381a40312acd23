// Package fixseq reshapes fixed-length sequences without copying or losing
// elements.
//
// A Seq owns a fixed number of contiguous elements. Reshaping operations
// consume their input and hand every element to exactly one output, so an
// element that owns a resource (anything implementing Dropper) is dropped
// exactly once: either by the caller, or by the operation that discards it.
//
// # Architecture Overview
//
//	fixseq/              Seq, the reinterpretation primitive and all flat operations
//	├── nd/              N-dimensional arrays built over the flat operations
//	├── memory/          Lifting and lowering sequences through wazero linear memory
//	├── errors/          Structured error types
//	├── internal/shape/  Size arithmetic oracle issuing shape proofs
//	├── internal/arith/  Overflow-checked size arithmetic
//	└── cmd/reshape/     Command line and interactive demo
//
// # Shape Checks
//
// Every operation first asks the oracle whether its shape equation holds
// (for example N = q*M for ChunksExact, or N = H*W for Transpose). On
// failure a *errors.Error of kind shape_mismatch is returned and nothing is
// moved.
//
//	s := fixseq.Of(1, 2, 3, 4, 5, 6, 7)
//	chunks, rest, err := fixseq.Chunks(s, 3)
//	// chunks: [1 2 3] [4 5 6], rest: [7]
//
// # Zero-Copy Reinterpretation
//
// Split, Chunks and Reinterpret hand out windows over the source storage;
// Chain and Concat reuse that storage again when their inputs are adjacent
// windows of it. Any other combination is moved into fresh storage.
//
// # Element Relocation
//
// Spread, Transpose, Rotate and Shift relocate elements. A moved-from slot is
// zeroed, so no two live slots refer to the same element:
//
//	lanes, _ := fixseq.Spread(fixseq.Of(0, 1, 2, 3, 4, 5, 6), 3)
//	// lanes: [0 3 6] [1 4] [2 5]
//
// # Generators
//
// Fill, Resize and Extend produce new elements from a Generator called in a
// documented index order. If a generator fails or panics, the elements
// produced so far are destroyed before the error is returned.
//
// # Thread Safety
//
// A Seq is owned by one goroutine at a time. Nothing in this package
// synchronizes.
package fixseq
