package kinds

import (
	"fmt"

	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
)

// MemberKind discriminates the content of a cast registry slot.
type MemberKind uint8

const (
	MemberNone MemberKind = iota
	MemberBitmap
	MemberFilmLoop
	MemberField
	MemberPalette
	MemberPicture
	MemberSound
	MemberButton
	MemberShape
	MemberMovie
	MemberDigitalVideo
	MemberScript
	MemberText
	MemberOle
	MemberTransition
	MemberXtra
)

func (k MemberKind) String() string {
	switch k {
	case MemberNone:
		return "none"
	case MemberBitmap:
		return "bitmap"
	case MemberFilmLoop:
		return "film_loop"
	case MemberField:
		return "field"
	case MemberPalette:
		return "palette"
	case MemberPicture:
		return "picture"
	case MemberSound:
		return "sound"
	case MemberButton:
		return "button"
	case MemberShape:
		return "shape"
	case MemberMovie:
		return "movie"
	case MemberDigitalVideo:
		return "digital_video"
	case MemberScript:
		return "script"
	case MemberText:
		return "text"
	case MemberOle:
		return "ole"
	case MemberTransition:
		return "transition"
	case MemberXtra:
		return "xtra"
	default:
		return "unknown"
	}
}

// hasExtraFlags reports whether registry records of this kind carry an extra
// flags byte between the kind tag and the properties payload.
func (k MemberKind) hasExtraFlags() bool {
	switch k {
	case MemberBitmap, MemberButton, MemberDigitalVideo, MemberField,
		MemberFilmLoop, MemberMovie, MemberShape, MemberScript:
		return true
	}
	return false
}

// CastMember is one slot of the cast registry. Shape and script members are
// decoded structurally; all other kinds keep their properties payload as raw
// bytes for the consumer.
type CastMember struct {
	Kind   MemberKind
	Flags  uint8
	Shape  *Shape
	Script *Script
	Raw    []byte
}

// Empty reports whether the slot holds no member.
func (m CastMember) Empty() bool {
	return m.Kind == MemberNone
}

// CastRegistry is the decoded slot table of a cast library.
type CastRegistry struct {
	Members []CastMember
}

// Len returns the number of slots, including empty ones.
func (c *CastRegistry) Len() int {
	return len(c.Members)
}

// DecodeCastRegistry decodes the cast registry: repeated variable-length
// records until the window is exhausted. The whole parse is speculative; on
// any failure the reader position is restored to the start of the registry.
func DecodeCastRegistry(r *binio.Reader, _ uint32, _ Context) (*CastRegistry, error) {
	return binio.RestoreOnError(r, func(r *binio.Reader, _ int64) (*CastRegistry, error) {
		var reg CastRegistry
		for {
			left, err := r.BytesLeft()
			if err != nil {
				return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("cast_registry").Cause(err).Build()
			}
			if left == 0 {
				return &reg, nil
			}

			recordSize, err := r.ReadU8()
			if err != nil {
				return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("cast_registry", "record_size").Cause(err).Build()
			}
			if recordSize == 0 {
				reg.Members = append(reg.Members, CastMember{Kind: MemberNone})
				continue
			}

			member, err := readCastMember(r, recordSize)
			if err != nil {
				return nil, err
			}
			reg.Members = append(reg.Members, member)
		}
	})
}

func readCastMember(r *binio.Reader, recordSize uint8) (CastMember, error) {
	var m CastMember

	kind, err := r.ReadU8()
	if err != nil {
		return m, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("cast_registry", "kind").Cause(err).Build()
	}
	if kind > uint8(MemberXtra) {
		return m, errors.MalformedDiscriminant([]string{"cast_registry", "kind"}, uint32(kind))
	}
	m.Kind = MemberKind(kind)

	// recordSize counts the kind byte and, where present, the flags byte.
	payload := uint32(recordSize) - 1
	if m.Kind.hasExtraFlags() {
		if recordSize < 2 {
			return m, errors.SizeMismatch([]string{"cast_registry", "record_size"}, uint32(recordSize), "at least 2 for kinds carrying a flags byte")
		}
		if m.Flags, err = r.ReadU8(); err != nil {
			return m, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("cast_registry", "flags").Cause(err).Build()
		}
		payload--
	}

	left, err := r.BytesLeft()
	if err != nil {
		return m, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("cast_registry", "properties").Cause(err).Build()
	}
	if int64(payload) > left {
		return m, errors.SizeMismatch([]string{"cast_registry", "properties"}, payload, fmt.Sprintf("at most the %d bytes left in the window", left))
	}

	raw, err := r.ReadBytes(int(payload))
	if err != nil {
		return m, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("cast_registry", "properties").Cause(err).Build()
	}

	switch m.Kind {
	case MemberShape:
		shape, err := DecodeShape(binio.NewBytesReader(raw), payload, Context{})
		if err != nil {
			return m, err
		}
		m.Shape = shape
	case MemberScript:
		script, err := DecodeScript(binio.NewBytesReader(raw), payload, Context{})
		if err != nil {
			return m, err
		}
		m.Script = script
	default:
		m.Raw = raw
	}
	return m, nil
}
