package wasm

import (
	"bytes"
	"testing"
)

var header = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestWriteU32(t *testing.T) {
	tests := []struct {
		want []byte
		in   uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xffffffff},
	}
	for _, tc := range tests {
		w := NewWriter()
		w.WriteU32(tc.in)
		if !bytes.Equal(w.Bytes(), tc.want) {
			t.Errorf("WriteU32(%d) = %x, want %x", tc.in, w.Bytes(), tc.want)
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	got := (&Module{}).Encode()
	if !bytes.Equal(got, header) {
		t.Errorf("got %x, want %x", got, header)
	}
}

func TestEncodeExportedMemory(t *testing.T) {
	maxPages := uint64(2)
	m := &Module{
		Memories: []MemoryType{{Limits: Limits{Min: 1, Max: &maxPages}}},
		Exports:  []Export{{Name: "mem", Kind: KindMemory, Idx: 0}},
	}

	want := append([]byte{}, header...)
	want = append(want, SectionMemory, 4, 1, LimitsHasMax, 1, 2)
	want = append(want, SectionExport, 7, 1, 3, 'm', 'e', 'm', KindMemory, 0)

	if got := m.Encode(); !bytes.Equal(got, want) {
		t.Errorf("got %x\nwant %x", got, want)
	}
}

func TestEncodeUnboundedMemory(t *testing.T) {
	m := &Module{Memories: []MemoryType{{Limits: Limits{Min: 300}}}}

	want := append([]byte{}, header...)
	want = append(want, SectionMemory, 4, 1, 0x00, 0xac, 0x02)

	if got := m.Encode(); !bytes.Equal(got, want) {
		t.Errorf("got %x\nwant %x", got, want)
	}
}
