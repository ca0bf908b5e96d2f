package kinds

import (
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
)

// FilmLoopFlags is the playback flag word of a film loop. Unknown bits are
// preserved verbatim.
type FilmLoopFlags uint32

const (
	FilmLoopCropFromCenter FilmLoopFlags = 0x01
	FilmLoopScale          FilmLoopFlags = 0x02
	FilmLoopMapPalettes    FilmLoopFlags = 0x04
	FilmLoopSoundEnabled   FilmLoopFlags = 0x08
	FilmLoopEnableScripts  FilmLoopFlags = 0x10
	FilmLoopNoLoop         FilmLoopFlags = 0x20
)

// Has reports whether all bits in flag are set.
func (f FilmLoopFlags) Has(flag FilmLoopFlags) bool {
	return f&flag == flag
}

// Looping is the inverse of the stored no-loop bit.
func (f FilmLoopFlags) Looping() bool {
	return f&FilmLoopNoLoop == 0
}

const filmLoopSize = 14

// FilmLoop is decoded film loop metadata: the frame bounds plus playback
// flags.
type FilmLoop struct {
	Bounds   Rect
	Flags    FilmLoopFlags
	Reserved uint16
}

// DecodeFilmLoop decodes film loop metadata. The layout is exactly 14 bytes;
// any other declared size is rejected before any field is read.
func DecodeFilmLoop(r *binio.Reader, size uint32, _ Context) (*FilmLoop, error) {
	if size != filmLoopSize {
		return nil, errors.SizeMismatch([]string{"film_loop"}, size, "exactly 14")
	}

	var fl FilmLoop
	var err error
	if fl.Bounds, err = readRect(r); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("film_loop", "bounds").Cause(err).Build()
	}
	flags, err := r.ReadU32()
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("film_loop", "flags").Cause(err).Build()
	}
	fl.Flags = FilmLoopFlags(flags)
	if fl.Reserved, err = r.ReadU16(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("film_loop", "reserved").Cause(err).Build()
	}
	return &fl, nil
}
