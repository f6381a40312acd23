package wasm

// Module is the encodable part of a WebAssembly module.
type Module struct {
	Memories []MemoryType
	Exports  []Export
}

// MemoryType describes a linear memory with size limits in pages.
type MemoryType struct {
	Limits Limits
}

// Limits describes size constraints for memories. A nil Max leaves growth
// bounded only by the host.
type Limits struct {
	Max *uint64
	Min uint64
}

// Export names an entity of the module.
type Export struct {
	Name string
	Kind byte
	Idx  uint32
}
