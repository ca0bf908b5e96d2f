// Package forktest builds synthetic resource-fork images for tests.
package forktest

import "encoding/binary"

// Res describes one resource to place in a built fork image.
type Res struct {
	Kind  string
	ID    int16
	Name  string // empty means unnamed
	Attrs uint8
	Data  []byte
}

// Build assembles a byte-exact resource fork containing the given resources.
// Resources are grouped by kind in first-appearance order; reference entries
// keep the caller's order within each kind.
func Build(resources []Res) []byte {
	const dataStart = 256

	type kindGroup struct {
		kind  string
		items []Res
	}
	var groups []kindGroup
	for _, r := range resources {
		found := false
		for i := range groups {
			if groups[i].kind == r.Kind {
				groups[i].items = append(groups[i].items, r)
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, kindGroup{kind: r.Kind, items: []Res{r}})
		}
	}

	// Data area: u32 length prefix then bytes, offsets recorded from the
	// area start.
	var data []byte
	offsetOf := map[*Res]uint32{}
	for gi := range groups {
		for ii := range groups[gi].items {
			r := &groups[gi].items[ii]
			offsetOf[r] = uint32(len(data))
			var lenBuf [4]byte
			binary.BigEndian.PutUint32(lenBuf[:], uint32(len(r.Data)))
			data = append(data, lenBuf[:]...)
			data = append(data, r.Data...)
		}
	}

	// Name list.
	var names []byte
	nameOffsetOf := map[*Res]int16{}
	for gi := range groups {
		for ii := range groups[gi].items {
			r := &groups[gi].items[ii]
			if r.Name == "" {
				nameOffsetOf[r] = -1
				continue
			}
			nameOffsetOf[r] = int16(len(names))
			names = append(names, byte(len(r.Name)))
			names = append(names, r.Name...)
		}
	}

	// Map: 16-byte header copy, u32 handle, u16 file ref, u16 attrs,
	// u16 type list offset (28), u16 name list offset.
	const typeListOffset = 28
	typeListLen := 2 + 8*len(groups)
	refsLen := 0
	for _, g := range groups {
		refsLen += 12 * len(g.items)
	}
	nameListOffset := typeListOffset + typeListLen + refsLen
	mapSize := nameListOffset + len(names)

	mapBytes := make([]byte, 0, mapSize)
	mapBytes = append(mapBytes, make([]byte, 16)...) // header copy
	mapBytes = appendU32(mapBytes, 0)                // next map handle
	mapBytes = appendU16(mapBytes, 0)                // file reference number
	mapBytes = appendU16(mapBytes, 0)                // fork attributes
	mapBytes = appendU16(mapBytes, typeListOffset)
	mapBytes = appendU16(mapBytes, uint16(nameListOffset))

	// Type list.
	mapBytes = appendU16(mapBytes, uint16(len(groups)-1))
	refOffset := 2 + 8*len(groups) // relative to type list start
	for _, g := range groups {
		mapBytes = append(mapBytes, g.kind[:4]...)
		mapBytes = appendU16(mapBytes, uint16(len(g.items)-1))
		mapBytes = appendU16(mapBytes, uint16(refOffset))
		refOffset += 12 * len(g.items)
	}

	// Reference lists.
	for gi := range groups {
		for ii := range groups[gi].items {
			r := &groups[gi].items[ii]
			mapBytes = appendU16(mapBytes, uint16(r.ID))
			mapBytes = appendU16(mapBytes, uint16(nameOffsetOf[r]))
			mapBytes = append(mapBytes, r.Attrs)
			off := offsetOf[r]
			mapBytes = append(mapBytes, byte(off>>16), byte(off>>8), byte(off))
			mapBytes = appendU32(mapBytes, 0) // reserved handle
		}
	}
	mapBytes = append(mapBytes, names...)

	mapStart := dataStart + len(data)
	out := make([]byte, 0, mapStart+len(mapBytes))
	out = appendU32(out, dataStart)
	out = appendU32(out, uint32(mapStart))
	out = appendU32(out, uint32(len(data)))
	out = appendU32(out, uint32(len(mapBytes)))
	out = append(out, make([]byte, dataStart-16)...)
	out = append(out, data...)
	out = append(out, mapBytes...)
	return out
}

// BuildEmpty assembles a fork with an empty type list.
func BuildEmpty() []byte {
	const dataStart = 256
	mapBytes := make([]byte, 0, 32)
	mapBytes = append(mapBytes, make([]byte, 16)...)
	mapBytes = appendU32(mapBytes, 0)
	mapBytes = appendU16(mapBytes, 0)
	mapBytes = appendU16(mapBytes, 0)
	mapBytes = appendU16(mapBytes, 28)
	mapBytes = appendU16(mapBytes, 30)
	mapBytes = appendU16(mapBytes, 0xffff) // count-1 of zero types

	out := make([]byte, 0, dataStart+len(mapBytes))
	out = appendU32(out, dataStart)
	out = appendU32(out, dataStart)
	out = appendU32(out, 0)
	out = appendU32(out, uint32(len(mapBytes)))
	out = append(out, make([]byte, dataStart-16)...)
	out = append(out, mapBytes...)
	return out
}

func appendU16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

func appendU32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
