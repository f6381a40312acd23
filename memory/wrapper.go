package memory

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/fixseq"
	"github.com/wippyai/fixseq/errors"
)

// Wrap adapts a wazero memory to fixseq.Memory. A nil memory yields nil.
func Wrap(mem api.Memory) *Wrapper {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

var (
	_ fixseq.Memory      = (*Wrapper)(nil)
	_ fixseq.MemorySizer = (*Wrapper)(nil)
)

// Wrapper implements fixseq.Memory over wazero api.Memory. All multi-byte
// accesses are little-endian.
type Wrapper struct {
	Mem api.Memory
}

func outOfBounds(op string, offset, width uint32) error {
	return errors.New(errors.PhaseMemory, errors.KindOutOfBounds).
		Op(op).
		Value(offset).
		Detail("offset=%d width=%d", offset, width).
		Build()
}

func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}

func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds("read", offset, length)
	}
	return data, nil
}

func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return outOfBounds("write", offset, uint32(len(data)))
	}
	return nil
}

func (m *Wrapper) ReadU8(offset uint32) (uint8, error) {
	v, ok := m.Mem.ReadByte(offset)
	if !ok {
		return 0, outOfBounds("read_u8", offset, 1)
	}
	return v, nil
}

func (m *Wrapper) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.Mem.ReadUint16Le(offset)
	if !ok {
		return 0, outOfBounds("read_u16", offset, 2)
	}
	return v, nil
}

func (m *Wrapper) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, outOfBounds("read_u32", offset, 4)
	}
	return v, nil
}

func (m *Wrapper) ReadU64(offset uint32) (uint64, error) {
	v, ok := m.Mem.ReadUint64Le(offset)
	if !ok {
		return 0, outOfBounds("read_u64", offset, 8)
	}
	return v, nil
}

func (m *Wrapper) WriteU8(offset uint32, value uint8) error {
	if !m.Mem.WriteByte(offset, value) {
		return outOfBounds("write_u8", offset, 1)
	}
	return nil
}

func (m *Wrapper) WriteU16(offset uint32, value uint16) error {
	if !m.Mem.WriteUint16Le(offset, value) {
		return outOfBounds("write_u16", offset, 2)
	}
	return nil
}

func (m *Wrapper) WriteU32(offset uint32, value uint32) error {
	if !m.Mem.WriteUint32Le(offset, value) {
		return outOfBounds("write_u32", offset, 4)
	}
	return nil
}

func (m *Wrapper) WriteU64(offset uint32, value uint64) error {
	if !m.Mem.WriteUint64Le(offset, value) {
		return outOfBounds("write_u64", offset, 8)
	}
	return nil
}
