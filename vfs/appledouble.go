package vfs

import (
	"io"

	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/mactext"
)

const (
	appleDoubleMagic = 0x00051607
	appleSingleMagic = 0x00051600
)

// AppleDouble entry ids. Only the ones the engine consumes are named.
const (
	adEntryDataFork     = 1
	adEntryResourceFork = 2
	adEntryRealName     = 3
	adEntryFinderInfo   = 9
)

// AppleDouble is a parsed AppleSingle or AppleDouble header. For AppleSingle
// both forks live in the one file; for AppleDouble the header file carries
// the resource fork and the data fork is the unadorned sibling file.
type AppleDouble struct {
	name string
	data io.ReadSeeker
	rsrc io.ReadSeeker
}

// NewAppleDouble parses an AppleSingle/AppleDouble header from r. For the
// AppleDouble variant, outer (when non-nil) supplies the data fork if the
// header file does not carry one; it is the plain sibling file.
func NewAppleDouble(r ReaderAtSeeker, outer ReaderAtSeeker, container string) (*AppleDouble, error) {
	br := binio.NewReader(r)

	magic, err := br.ReadU32()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, container, err)
	}
	if magic != appleDoubleMagic && magic != appleSingleMagic {
		return nil, errors.BadContainer(container, "bad AppleSingle/AppleDouble magic %#x", magic)
	}

	version, err := br.ReadU32()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, container, err)
	}
	if version != 0x10000 && version != 0x20000 {
		return nil, errors.BadContainer(container, "unknown AppleSingle/AppleDouble version %#x", version)
	}

	// Home filesystem name: ASCII in v1, zero filler in v2. Unused either way.
	if err := br.Skip(16); err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, container, err)
	}

	numEntries, err := br.ReadU16()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, container, err)
	}
	if numEntries == 0 {
		return nil, errors.BadContainer(container, "no entries")
	}

	var ad AppleDouble
	var nameBytes []byte
	var nameScript uint8

	for i := 0; i < int(numEntries); i++ {
		id, err := br.ReadU32()
		if err != nil {
			return nil, errors.SourceIO(errors.PhaseOpen, container, err)
		}
		offset, err := br.ReadU32()
		if err != nil {
			return nil, errors.SourceIO(errors.PhaseOpen, container, err)
		}
		length, err := br.ReadU32()
		if err != nil {
			return nil, errors.SourceIO(errors.PhaseOpen, container, err)
		}

		switch id {
		case 0:
			return nil, errors.BadContainer(container, "invalid id 0 for entry %d", i)
		case adEntryDataFork:
			ad.data = io.NewSectionReader(r, int64(offset), int64(length))
		case adEntryResourceFork:
			ad.rsrc = io.NewSectionReader(r, int64(offset), int64(length))
		case adEntryRealName:
			nameBytes = make([]byte, length)
			if _, err := r.ReadAt(nameBytes, int64(offset)); err != nil {
				return nil, errors.SourceIO(errors.PhaseOpen, container, err)
			}
		case adEntryFinderInfo:
			// The filename script code sits at offset 26 of the Finder info.
			if length > 26 {
				var b [1]byte
				if _, err := r.ReadAt(b[:], int64(offset)+26); err != nil {
					return nil, errors.SourceIO(errors.PhaseOpen, container, err)
				}
				nameScript = b[0]
			}
		}
	}

	if ad.rsrc == nil {
		return nil, errors.BadContainer(container, "missing resource fork entry")
	}

	if magic == appleDoubleMagic && ad.data == nil && outer != nil {
		ad.data = outer
	}

	if len(nameBytes) > 0 {
		sel := mactext.Selection{Script: mactext.ScriptCode(nameScript)}
		if name, err := mactext.DecodeString(nameBytes, sel); err == nil {
			ad.name = name
		} else {
			ad.name = string(nameBytes)
		}
	}
	return &ad, nil
}

// Name returns the embedded original file name, or an empty string.
func (a *AppleDouble) Name() string { return a.name }

// Fork returns the requested fork stream, or nil when absent.
func (a *AppleDouble) Fork(kind ForkKind) io.ReadSeeker {
	if kind == ForkResource {
		return a.rsrc
	}
	return a.data
}
