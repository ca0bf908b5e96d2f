package vfs

import (
	"encoding/binary"
	"io"

	"github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/mactext"
)

const (
	mbHeaderSize = 128
	mbBlockSize  = 128

	// 'mBIN' signature at offset 102 marks MacBinary III.
	mbV3Signature = 0x6d42494e

	mbScriptFlag = 0x80
)

type macBinaryVersion int

const (
	macBinaryV1 macBinaryVersion = iota + 1
	macBinaryV2
	macBinaryV3
)

// MacBinary is a parsed MacBinary I/II/III single-file encapsulation: a
// 128-byte header followed by the data fork and then the resource fork, each
// padded to a 128-byte boundary.
type MacBinary struct {
	r         ReaderAtSeeker
	name      string
	dataStart int64
	dataLen   int64
	rsrcStart int64
	rsrcLen   int64
}

// NewMacBinary validates the MacBinary header and locates both forks.
// Detection tries the v3 signature, then the v2 checksum, then the strict v1
// field checks.
func NewMacBinary(r ReaderAtSeeker, container string) (*MacBinary, error) {
	var header [mbHeaderSize]byte
	if _, err := r.ReadAt(header[:], 0); err != nil {
		return nil, errors.BadContainer(container, "file too small for MacBinary header")
	}

	if header[0] != 0 {
		return nil, errors.BadContainer(container, "bad MacBinary magic byte 0")
	}
	if header[74] != 0 {
		return nil, errors.BadContainer(container, "bad MacBinary magic byte 74")
	}

	version, err := detectMacBinaryVersion(&header, container)
	if err != nil {
		return nil, err
	}

	mb := MacBinary{r: r}

	headerSize := int64(mbHeaderSize)
	if version != macBinaryV1 {
		// v2+ may carry a secondary header, block-aligned after the first.
		headerSize += int64(alignBlock(uint32(binary.BigEndian.Uint16(header[120:]))))
	}

	dataSize := int64(binary.BigEndian.Uint32(header[83:]))
	rsrcSize := int64(binary.BigEndian.Uint32(header[87:]))
	mb.dataStart = headerSize
	mb.dataLen = dataSize
	mb.rsrcStart = headerSize + int64(alignBlock(uint32(dataSize)))
	mb.rsrcLen = rsrcSize

	scriptCode := uint8(0)
	if version == macBinaryV3 && header[106]&mbScriptFlag != 0 {
		scriptCode = header[106] &^ mbScriptFlag
	}
	nameLen := int(header[1])
	if nameLen > 63 {
		nameLen = 63
	}
	raw := header[2 : 2+nameLen]
	sel := mactext.Selection{Script: mactext.ScriptCode(scriptCode)}
	if name, err := mactext.DecodeString(raw, sel); err == nil {
		mb.name = name
	} else {
		mb.name = string(raw)
	}
	return &mb, nil
}

func detectMacBinaryVersion(header *[mbHeaderSize]byte, container string) (macBinaryVersion, error) {
	if binary.BigEndian.Uint32(header[102:]) == mbV3Signature {
		return macBinaryV3, nil
	}

	// Some v2 encoders left the checksum empty, so a zero checksum with the
	// 129/129 version bytes still counts.
	checksum := binary.BigEndian.Uint16(header[124:])
	if (checksum != 0 && crc16X25(header[0:124]) == checksum) ||
		(checksum == 0 && header[122] == 129 && header[123] == 129) {
		return macBinaryV2, nil
	}

	if header[82] != 0 {
		return 0, errors.BadContainer(container, "bad MacBinary magic byte 82")
	}
	for _, b := range header[101:126] {
		if b != 0 {
			return 0, errors.BadContainer(container, "bad MacBinary header padding")
		}
	}
	if header[1] < 1 || header[1] > 63 {
		return 0, errors.BadContainer(container, "bad MacBinary filename length %d", header[1])
	}
	dataSize := binary.BigEndian.Uint32(header[83:])
	rsrcSize := binary.BigEndian.Uint32(header[87:])
	if dataSize > 0x7f_ffff || rsrcSize > 0x7f_ffff || (dataSize == 0 && rsrcSize == 0) {
		return 0, errors.BadContainer(container, "bad MacBinary fork lengths %d/%d", dataSize, rsrcSize)
	}
	return macBinaryV1, nil
}

// Name returns the embedded original file name.
func (m *MacBinary) Name() string { return m.name }

// Fork returns the requested fork stream, or nil when the fork is empty.
func (m *MacBinary) Fork(kind ForkKind) io.ReadSeeker {
	start, length := m.dataStart, m.dataLen
	if kind == ForkResource {
		start, length = m.rsrcStart, m.rsrcLen
	}
	if length == 0 {
		return nil
	}
	return io.NewSectionReader(m.r, start, length)
}

func alignBlock(n uint32) uint32 {
	return (n + mbBlockSize - 1) &^ (mbBlockSize - 1)
}

// crc16X25 is the CRC-16/X-25 checksum MacBinary II uses over header bytes
// 0..123: reflected 0x1021 polynomial, 0xffff init and final xor.
func crc16X25(data []byte) uint16 {
	crc := uint16(0xffff)
	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ 0x8408
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}
