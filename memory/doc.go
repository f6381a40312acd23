// Package memory moves fixed-length sequences between Go and WebAssembly
// linear memory.
//
// Wrapper adapts a wazero api.Memory to fixseq.Memory. Linear owns a
// standalone memory instance for hosts that have no guest module of their
// own. Lift and Lower copy scalar runs; LiftShaped and LowerShaped do the
// same for N-d arrays whose guest form is nested WIT tuples, after the
// layout package proves the nested and flat forms occupy identical bytes.
//
// Values are little-endian. Signed integers use two's complement and floats
// their IEEE 754 bit patterns.
package memory
