package kinds

import (
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
)

// ScriptKind discriminates the role a script plays in a movie.
type ScriptKind uint16

const (
	ScriptScore  ScriptKind = 1
	ScriptMovie  ScriptKind = 3
	ScriptParent ScriptKind = 7
)

func (k ScriptKind) String() string {
	switch k {
	case ScriptScore:
		return "score"
	case ScriptMovie:
		return "movie"
	case ScriptParent:
		return "parent"
	default:
		return "unknown"
	}
}

// Script is a decoded script type descriptor.
type Script struct {
	Kind ScriptKind
}

// DecodeScript decodes a script type descriptor. A declared size of zero is
// valid and yields the default movie kind; a size of two carries an explicit
// kind tag. Any other size is rejected before any field is read.
func DecodeScript(r *binio.Reader, size uint32, _ Context) (*Script, error) {
	switch size {
	case 0:
		return &Script{Kind: ScriptMovie}, nil
	case 2:
		tag, err := r.ReadU16()
		if err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("script", "kind").Cause(err).Build()
		}
		switch ScriptKind(tag) {
		case ScriptScore, ScriptMovie, ScriptParent:
			return &Script{Kind: ScriptKind(tag)}, nil
		default:
			return nil, errors.MalformedDiscriminant([]string{"script", "kind"}, uint32(tag))
		}
	default:
		return nil, errors.SizeMismatch([]string{"script"}, size, "0 or 2")
	}
}
