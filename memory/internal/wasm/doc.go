// Package wasm encodes the small subset of the WebAssembly binary format the
// memory package needs: a module that declares linear memories and exports
// them by name.
//
// # Usage
//
//	max := uint64(4)
//	m := &wasm.Module{
//		Memories: []wasm.MemoryType{{Limits: wasm.Limits{Min: 1, Max: &max}}},
//		Exports:  []wasm.Export{{Name: "memory", Kind: wasm.KindMemory, Idx: 0}},
//	}
//	bin := m.Encode()
//
// Sections are written in the order the binary format requires. Empty
// sections are omitted.
//
// This package is internal to memory.
package wasm
