package fork

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	rsrcengine "github.com/cinegraph/rsrc-engine"
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/mactext"
)

// Resource forks produced by real authoring tools never exceed this many
// types or resources per type; anything larger is corruption.
const maxMapCount = 2727

// minMapSize is the size of a map with no type list entries.
const minMapSize = 30

// ResAttrs is the attribute byte of a resource map entry. Unknown bits are
// preserved verbatim so unmodified legacy data round-trips.
type ResAttrs uint8

const (
	AttrCompressed ResAttrs = 0x01
	AttrChanged    ResAttrs = 0x02
	AttrPreload    ResAttrs = 0x04
	AttrReadOnly   ResAttrs = 0x08
	AttrLocked     ResAttrs = 0x10
	AttrPurgeable  ResAttrs = 0x20
	AttrSysHeap    ResAttrs = 0x40
	AttrReserved   ResAttrs = 0x80
)

// Has reports whether all bits of mask are set.
func (a ResAttrs) Has(mask ResAttrs) bool {
	return a&mask == mask
}

type item struct {
	id         int16
	nameOffset int16
	attrs      ResAttrs
	dataOffset uint32 // from the start of the data area
}

type kindEntry struct {
	kind  rsrcengine.OsType
	items []item
}

// File is a parsed resource-fork container. It implements rsrcengine.Source.
type File struct {
	name       string
	rs         io.ReadSeeker
	dataOffset uint32
	kinds      []kindEntry
	index      map[rsrcengine.ResourceId]item
	names      []byte
}

// New parses the resource map of a fork and builds its lookup index. The
// stream must be restricted to the range of the fork data. The name is used
// for error attribution, typically the path of the backing file.
func New(rs io.ReadSeeker, name string) (*File, error) {
	r := binio.NewReader(rs)

	fileSize, err := r.Len()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, name, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, name, err)
	}

	dataOffset, err := r.ReadU32()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, name, err)
	}
	mapOffset, err := r.ReadU32()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, name, err)
	}
	dataSize, err := r.ReadU32()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, name, err)
	}
	mapSize, err := r.ReadU32()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, name, err)
	}
	if mapSize < minMapSize {
		return nil, errors.BadContainer(name, "map size %d below minimum %d", mapSize, minMapSize)
	}

	minFileSize := uint64(mapOffset) + uint64(mapSize)
	if end := uint64(dataOffset) + uint64(dataSize); end > minFileSize {
		minFileSize = end
	}
	if uint64(fileSize) < minFileSize {
		return nil, errors.BadContainer(name, "fork is %d bytes, header requires %d", fileSize, minFileSize)
	}

	f := &File{
		name:       name,
		rs:         rs,
		dataOffset: dataOffset,
		index:      make(map[rsrcengine.ResourceId]item),
	}
	if err := f.parseMap(r, mapOffset, mapSize); err != nil {
		return nil, err
	}

	logger().Debug("parsed resource map",
		zap.String("container", name),
		zap.Int("types", len(f.kinds)),
		zap.Int("resources", len(f.index)))

	return f, nil
}

// parseMap reads the type list, reference lists and name list.
func (f *File) parseMap(r *binio.Reader, mapOffset, mapSize uint32) error {
	// Skip the header copy, the reserved handle, the file reference
	// number and the fork attributes.
	if _, err := r.Seek(int64(mapOffset)+24, io.SeekStart); err != nil {
		return errors.SourceIO(errors.PhaseIndex, f.name, err)
	}
	typeListOffset, err := r.ReadU16()
	if err != nil {
		return errors.SourceIO(errors.PhaseIndex, f.name, err)
	}
	if typeListOffset < 28 {
		return errors.BadContainer(f.name, "type list offset %d inside map header", typeListOffset)
	}
	nameListOffset, err := r.ReadU16()
	if err != nil {
		return errors.SourceIO(errors.PhaseIndex, f.name, err)
	}

	typeListStart := int64(mapOffset) + int64(typeListOffset)
	if _, err := r.Seek(typeListStart, io.SeekStart); err != nil {
		return errors.SourceIO(errors.PhaseIndex, f.name, err)
	}

	// Counts are stored minus one; an empty fork stores 0xffff.
	rawCount, err := r.ReadI16()
	if err != nil {
		return errors.SourceIO(errors.PhaseIndex, f.name, err)
	}
	typeCount := int(rawCount) + 1
	if typeCount < 0 || typeCount >= maxMapCount {
		return errors.BadContainer(f.name, "map type count %d out of range", typeCount)
	}

	type rawKind struct {
		kind      rsrcengine.OsType
		count     int
		refOffset uint16
	}
	rawKinds := make([]rawKind, 0, typeCount)
	for i := 0; i < typeCount; i++ {
		tag, err := r.ReadBytes(4)
		if err != nil {
			return errors.SourceIO(errors.PhaseIndex, f.name, err)
		}
		rawItemCount, err := r.ReadI16()
		if err != nil {
			return errors.SourceIO(errors.PhaseIndex, f.name, err)
		}
		refOffset, err := r.ReadU16()
		if err != nil {
			return errors.SourceIO(errors.PhaseIndex, f.name, err)
		}
		kind := rsrcengine.OsType{tag[0], tag[1], tag[2], tag[3]}
		itemCount := int(rawItemCount) + 1
		if itemCount < 0 || itemCount >= maxMapCount {
			return errors.BadContainer(f.name, "resource count %d out of range for type %s", itemCount, kind)
		}
		rawKinds = append(rawKinds, rawKind{kind: kind, count: itemCount, refOffset: refOffset})
	}

	f.kinds = make([]kindEntry, 0, typeCount)
	for _, rk := range rawKinds {
		// Reference list offsets are relative to the type list start.
		if _, err := r.Seek(typeListStart+int64(rk.refOffset), io.SeekStart); err != nil {
			return errors.SourceIO(errors.PhaseIndex, f.name, err)
		}
		entry := kindEntry{kind: rk.kind, items: make([]item, 0, rk.count)}
		for i := 0; i < rk.count; i++ {
			id, err := r.ReadI16()
			if err != nil {
				return errors.SourceIO(errors.PhaseIndex, f.name, err)
			}
			nameOffset, err := r.ReadI16()
			if err != nil {
				return errors.SourceIO(errors.PhaseIndex, f.name, err)
			}
			attrs, err := r.ReadU8()
			if err != nil {
				return errors.SourceIO(errors.PhaseIndex, f.name, err)
			}
			dataOff, err := r.ReadU24()
			if err != nil {
				return errors.SourceIO(errors.PhaseIndex, f.name, err)
			}
			// Reserved in-memory handle.
			if err := r.Skip(4); err != nil {
				return errors.SourceIO(errors.PhaseIndex, f.name, err)
			}
			it := item{id: id, nameOffset: nameOffset, attrs: ResAttrs(attrs), dataOffset: dataOff}
			entry.items = append(entry.items, it)
			f.index[rsrcengine.ResourceId{Type: rk.kind, Num: id}] = it
		}
		f.kinds = append(f.kinds, entry)
	}

	if uint32(nameListOffset) < mapSize {
		if _, err := r.Seek(int64(mapOffset)+int64(nameListOffset), io.SeekStart); err != nil {
			return errors.SourceIO(errors.PhaseIndex, f.name, err)
		}
		names, err := r.ReadBytes(int(mapSize - uint32(nameListOffset)))
		if err != nil {
			return errors.SourceIO(errors.PhaseIndex, f.name, err)
		}
		f.names = names
	}

	return nil
}

// Name identifies the container for error attribution.
func (f *File) Name() string {
	return f.name
}

// Contains reports whether the fork holds the given resource.
func (f *File) Contains(id rsrcengine.ResourceId) bool {
	_, ok := f.index[id]
	return ok
}

// LoadBytes returns the raw bytes and declared size for a resource. The
// declared size is the u32 length prefix stored in the data area.
func (f *File) LoadBytes(id rsrcengine.ResourceId) ([]byte, uint32, error) {
	it, ok := f.index[id]
	if !ok {
		return nil, 0, errors.NotFound(errors.PhaseIndex, id)
	}
	if it.attrs.Has(AttrCompressed) {
		return nil, 0, errors.New(errors.PhaseIndex, errors.KindUnsupportedCompression).
			Resource(id).
			Container(f.name).
			Detail("resource data is compressed").
			Build()
	}

	r := binio.NewReader(f.rs)
	if _, err := r.Seek(int64(f.dataOffset)+int64(it.dataOffset), io.SeekStart); err != nil {
		return nil, 0, errors.SourceIO(errors.PhaseIndex, f.name, err)
	}
	size, err := r.ReadU32()
	if err != nil {
		return nil, 0, errors.SourceIO(errors.PhaseIndex, f.name, err)
	}
	data, err := r.ReadBytes(int(size))
	if err != nil {
		return nil, 0, errors.SourceIO(errors.PhaseIndex, f.name, err)
	}
	return data, size, nil
}

// Count returns the number of resources with the given type.
func (f *File) Count(kind rsrcengine.OsType) int {
	for _, k := range f.kinds {
		if k.kind == kind {
			return len(k.items)
		}
	}
	return 0
}

// IDs returns every resource id in the fork, in map order.
func (f *File) IDs() []rsrcengine.ResourceId {
	ids := make([]rsrcengine.ResourceId, 0, len(f.index))
	for _, k := range f.kinds {
		for _, it := range k.items {
			ids = append(ids, rsrcengine.ResourceId{Type: k.kind, Num: it.id})
		}
	}
	return ids
}

// IDsOfType returns the resource ids with the given type, in map order.
func (f *File) IDsOfType(kind rsrcengine.OsType) []rsrcengine.ResourceId {
	for _, k := range f.kinds {
		if k.kind != kind {
			continue
		}
		ids := make([]rsrcengine.ResourceId, 0, len(k.items))
		for _, it := range k.items {
			ids = append(ids, rsrcengine.ResourceId{Type: k.kind, Num: it.id})
		}
		return ids
	}
	return nil
}

// IDOfName returns the id of the named resource with the given type.
func (f *File) IDOfName(kind rsrcengine.OsType, name []byte) (rsrcengine.ResourceId, bool) {
	for _, k := range f.kinds {
		if k.kind != kind {
			continue
		}
		for _, it := range k.items {
			if n, ok := f.itemName(it); ok && bytes.Equal(n, name) {
				return rsrcengine.ResourceId{Type: kind, Num: it.id}, true
			}
		}
	}
	return rsrcengine.ResourceId{}, false
}

// IDOfIndex returns the id of the resource with the given type and map index.
func (f *File) IDOfIndex(kind rsrcengine.OsType, index int) (rsrcengine.ResourceId, bool) {
	for _, k := range f.kinds {
		if k.kind != kind {
			continue
		}
		if index < 0 || index >= len(k.items) {
			return rsrcengine.ResourceId{}, false
		}
		return rsrcengine.ResourceId{Type: kind, Num: k.items[index].id}, true
	}
	return rsrcengine.ResourceId{}, false
}

// NameOf returns the map name of a resource, decoded through sel.
func (f *File) NameOf(id rsrcengine.ResourceId, sel mactext.Selection) (string, bool) {
	it, ok := f.index[id]
	if !ok {
		return "", false
	}
	raw, ok := f.itemName(it)
	if !ok {
		return "", false
	}
	s, err := mactext.DecodeString(raw, sel)
	if err != nil {
		return "", false
	}
	return s, true
}

// itemName returns the raw name bytes of a map entry. A name offset of -1 is
// the unnamed sentinel.
func (f *File) itemName(it item) ([]byte, bool) {
	if it.nameOffset < 0 {
		return nil, false
	}
	start := int(it.nameOffset)
	if start >= len(f.names) {
		return nil, false
	}
	end := start + 1 + int(f.names[start])
	if end > len(f.names) {
		return nil, false
	}
	return f.names[start+1 : end], true
}
