package vfs

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func buildMacBinary(name string, data, rsrc []byte, stamp func(header []byte)) []byte {
	header := make([]byte, mbHeaderSize)
	header[1] = byte(len(name))
	copy(header[2:], name)
	binary.BigEndian.PutUint32(header[83:], uint32(len(data)))
	binary.BigEndian.PutUint32(header[87:], uint32(len(rsrc)))
	stamp(header)

	img := append([]byte{}, header...)
	img = append(img, data...)
	img = append(img, make([]byte, int(alignBlock(uint32(len(data))))-len(data))...)
	img = append(img, rsrc...)
	return img
}

func stampV3(header []byte) {
	binary.BigEndian.PutUint32(header[102:], mbV3Signature)
}

func stampV2(header []byte) {
	header[122] = 129
	header[123] = 129
	binary.BigEndian.PutUint16(header[124:], crc16X25(header[0:124]))
}

func TestNewMacBinary(t *testing.T) {
	data := []byte("data fork")
	rsrc := []byte("resource fork")

	for _, tt := range []struct {
		name  string
		stamp func([]byte)
	}{
		{"v3 signature", stampV3},
		{"v2 checksum", stampV2},
		{"v1 strict", func([]byte) {}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			img := buildMacBinary("Title", data, rsrc, tt.stamp)
			mb, err := NewMacBinary(bytes.NewReader(img), "test")
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if mb.Name() != "Title" {
				t.Errorf("name = %q, want Title", mb.Name())
			}
			got, err := io.ReadAll(mb.Fork(ForkData))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, data) {
				t.Errorf("data fork = %q, want %q", got, data)
			}
			got, err = io.ReadAll(mb.Fork(ForkResource))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, rsrc) {
				t.Errorf("resource fork = %q, want %q", got, rsrc)
			}
		})
	}
}

func TestNewMacBinary_EmptyForkIsNil(t *testing.T) {
	img := buildMacBinary("Title", []byte("d"), nil, stampV3)
	mb, err := NewMacBinary(bytes.NewReader(img), "test")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if mb.Fork(ForkResource) != nil {
		t.Error("empty resource fork should be nil")
	}
}

func TestNewMacBinary_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]byte)
	}{
		{"nonzero byte 0", func(h []byte) { h[0] = 1 }},
		{"nonzero byte 74", func(h []byte) { h[74] = 1 }},
		{"nonzero byte 82 without v2/v3 marks", func(h []byte) { h[82] = 1 }},
		{"nonzero padding", func(h []byte) { h[110] = 1 }},
		{"zero filename length", func(h []byte) { h[1] = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := buildMacBinary("Title", []byte("d"), []byte("r"), func([]byte) {})
			tt.mutate(img[:mbHeaderSize])
			if _, err := NewMacBinary(bytes.NewReader(img), "test"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewMacBinary_BothForksEmptyV1(t *testing.T) {
	img := buildMacBinary("Title", nil, nil, func([]byte) {})
	if _, err := NewMacBinary(bytes.NewReader(img), "test"); err == nil {
		t.Fatal("expected error for two empty forks")
	}
}

func TestNewMacBinary_TooSmall(t *testing.T) {
	if _, err := NewMacBinary(bytes.NewReader(make([]byte, 64)), "test"); err == nil {
		t.Fatal("expected error for short file")
	}
}
