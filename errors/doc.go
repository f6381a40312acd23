// Package errors provides structured error types for the fixseq library.
//
// Errors are categorized by Phase (which stage of a reshape failed) and Kind
// (error category). The Error type carries the operation name, the shape
// equation that was checked, an index path and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseOracle, errors.KindShapeMismatch).
//		Op("chunks_exact").
//		Equation("N = q*M").
//		Detail("N=7 is not a multiple of M=3").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ShapeMismatch("split", "M <= N", "M=9 exceeds N=4")
//	err := errors.OutOfBounds(errors.PhaseIndex, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
