package kinds

import (
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
)

// ShapeKind discriminates the geometry of a shape member.
type ShapeKind uint16

const (
	ShapeRect      ShapeKind = 1
	ShapeRoundRect ShapeKind = 2
	ShapeOval      ShapeKind = 3
	ShapeLine      ShapeKind = 4
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeRoundRect:
		return "round_rect"
	case ShapeOval:
		return "oval"
	case ShapeLine:
		return "line"
	default:
		return "unknown"
	}
}

// LineDirection orients a line shape within its bounds.
type LineDirection uint8

const (
	LineTopToBottom LineDirection = 5
	LineBottomToTop LineDirection = 6
)

// Shape is a decoded shape descriptor.
type Shape struct {
	Kind          ShapeKind
	Bounds        Rect
	Pattern       int16
	ForeColor     uint8
	BackColor     uint8
	Filled        bool
	LineSize      uint8
	LineDirection LineDirection
}

// DecodeShape decodes a shape descriptor. The kind tag is validated; line
// size is stored as read, without clamping.
func DecodeShape(r *binio.Reader, _ uint32, _ Context) (*Shape, error) {
	tag, err := r.ReadU16()
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "kind").Cause(err).Build()
	}
	switch ShapeKind(tag) {
	case ShapeRect, ShapeRoundRect, ShapeOval, ShapeLine:
	default:
		return nil, errors.MalformedDiscriminant([]string{"shape", "kind"}, uint32(tag))
	}

	var s Shape
	s.Kind = ShapeKind(tag)
	if s.Bounds, err = readRect(r); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "bounds").Cause(err).Build()
	}
	if s.Pattern, err = r.ReadI16(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "pattern").Cause(err).Build()
	}
	if s.ForeColor, err = r.ReadU8(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "fore_color").Cause(err).Build()
	}
	if s.BackColor, err = r.ReadU8(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "back_color").Cause(err).Build()
	}
	filled, err := r.ReadU8()
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "filled").Cause(err).Build()
	}
	s.Filled = filled != 0
	if s.LineSize, err = r.ReadU8(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "line_size").Cause(err).Build()
	}
	dir, err := r.ReadU8()
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("shape", "line_direction").Cause(err).Build()
	}
	switch LineDirection(dir) {
	case LineTopToBottom, LineBottomToTop:
		s.LineDirection = LineDirection(dir)
	default:
		return nil, errors.MalformedDiscriminant([]string{"shape", "line_direction"}, uint32(dir))
	}
	return &s, nil
}
