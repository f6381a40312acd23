package fixseq

// Dropper is implemented by elements that hold resources. Every element a
// sequence destroys gets exactly one Drop call; moved elements get none.
type Dropper interface {
	Drop()
}

// Generator produces the element for index i. Returning an error aborts the
// operation after the elements produced so far are destroyed.
type Generator[T any] func(i int) (T, error)

// Memory is byte-addressed linear memory that sequences can be lifted from
// and lowered into.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU8(offset uint32) (uint8, error)
	ReadU16(offset uint32) (uint16, error)
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	WriteU8(offset uint32, value uint8) error
	WriteU16(offset uint32, value uint16) error
	WriteU32(offset uint32, value uint32) error
	WriteU64(offset uint32, value uint64) error
}

// MemorySizer provides the current size of linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}
