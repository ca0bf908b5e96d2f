package rsrcengine

import (
	"encoding/binary"
	"fmt"
)

// OsType is a four-byte data format tag.
//
// Construction is total: every 32-bit value is a legal tag. Equality and
// ordering are over the raw bytes.
type OsType [4]byte

// NewOsType makes an OsType from a 4-character string such as "STR#".
// Strings of any other length produce the zero tag.
func NewOsType(s string) OsType {
	var t OsType
	if len(s) == 4 {
		copy(t[:], s)
	}
	return t
}

// OsTypeFromU32 makes an OsType from a big-endian 32-bit value.
func OsTypeFromU32(v uint32) OsType {
	var t OsType
	binary.BigEndian.PutUint32(t[:], v)
	return t
}

// U32 returns the tag as a big-endian 32-bit value.
func (t OsType) U32() uint32 {
	return binary.BigEndian.Uint32(t[:])
}

// Bytes returns the raw byte view of the tag.
func (t OsType) Bytes() [4]byte {
	return t
}

// IsZero reports whether the tag is all zero bytes.
func (t OsType) IsZero() bool {
	return t == OsType{}
}

// Less orders tags by their raw bytes.
func (t OsType) Less(other OsType) bool {
	return t.U32() < other.U32()
}

// String renders the tag as its four characters, substituting the Unicode
// replacement character for non-printable bytes.
func (t OsType) String() string {
	out := make([]rune, 0, 4)
	for _, b := range t {
		if b >= 0x20 && b < 0x7f {
			out = append(out, rune(b))
		} else {
			out = append(out, '�')
		}
	}
	return string(out)
}

// ResourceId identifies a resource: a data format tag plus a signed 16-bit
// resource number. It is the sole cache and lookup key of the engine.
type ResourceId struct {
	Type OsType
	Num  int16
}

// NewResourceId makes a ResourceId from a 4-character tag string and number.
func NewResourceId(tag string, num int16) ResourceId {
	return ResourceId{Type: NewOsType(tag), Num: num}
}

// Less orders ids by tag, then by number.
func (id ResourceId) Less(other ResourceId) bool {
	if id.Type != other.Type {
		return id.Type.Less(other.Type)
	}
	return id.Num < other.Num
}

func (id ResourceId) String() string {
	return fmt.Sprintf("%s(%d)", id.Type, id.Num)
}
