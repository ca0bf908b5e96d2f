package kinds

import (
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/mactext"
)

// Context carries decode-time arguments into a decoder: the active text
// encoding selection plus any layout-specific arguments.
type Context struct {
	Sel  mactext.Selection
	Args any
}

// DecodeFunc is the shape of every resource decoder: a pure mapping from a
// byte window and the container's declared size to a typed value.
type DecodeFunc[T any] func(r *binio.Reader, size uint32, ctx Context) (*T, error)

// Rect is a rectangle in the legacy top/left/bottom/right layout.
type Rect struct {
	Top    int16
	Left   int16
	Bottom int16
	Right  int16
}

func readRect(r *binio.Reader) (Rect, error) {
	var rect Rect
	var err error
	if rect.Top, err = r.ReadI16(); err != nil {
		return rect, err
	}
	if rect.Left, err = r.ReadI16(); err != nil {
		return rect, err
	}
	if rect.Bottom, err = r.ReadI16(); err != nil {
		return rect, err
	}
	rect.Right, err = r.ReadI16()
	return rect, err
}
