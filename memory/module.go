package memory

import "github.com/wippyai/fixseq/memory/internal/wasm"

// ExportName is the name the host module exports its memory under.
const ExportName = "memory"

// hostModule encodes a module that declares one memory of minPages pages,
// capped at maxPages pages, and exports it as ExportName.
func hostModule(minPages, maxPages uint32) []byte {
	limit := uint64(maxPages)
	m := &wasm.Module{
		Memories: []wasm.MemoryType{{
			Limits: wasm.Limits{Min: uint64(minPages), Max: &limit},
		}},
		Exports: []wasm.Export{{Name: ExportName, Kind: wasm.KindMemory, Idx: 0}},
	}
	return m.Encode()
}
