package wasm

const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

// Section IDs
const (
	SectionMemory byte = 5 // Memory section
	SectionExport byte = 7 // Export section
)

// Export kinds
const (
	KindMemory byte = 2 // Memory import/export
)

// Limits flags
const (
	LimitsHasMax byte = 0x01
)
