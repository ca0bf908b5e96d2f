package manager

import (
	"go.uber.org/zap"

	rsrcengine "github.com/cinegraph/rsrc-engine"
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/kinds"
	"github.com/cinegraph/rsrc-engine/mactext"
)

// Manager looks up resources across an ordered source chain and caches
// decoded values.
type Manager struct {
	sel     mactext.Selection
	sources []rsrcengine.Source
	cache   map[rsrcengine.ResourceId]any
}

// New creates a Manager over the given sources. The order fixes fallback
// priority: the first source reporting containment serves a load.
func New(sel mactext.Selection, sources ...rsrcengine.Source) *Manager {
	return &Manager{
		sel:     sel,
		sources: sources,
		cache:   make(map[rsrcengine.ResourceId]any),
	}
}

// Selection returns the text encoding selection loads decode strings with.
func (m *Manager) Selection() mactext.Selection { return m.sel }

// Contains reports whether any source in the chain holds the resource.
func (m *Manager) Contains(id rsrcengine.ResourceId) bool {
	for _, src := range m.sources {
		if src.Contains(id) {
			return true
		}
	}
	return false
}

// Count sums, across sources that support counting, the number of resources
// of the given type.
func (m *Manager) Count(kind rsrcengine.OsType) int {
	var n int
	for _, src := range m.sources {
		if c, ok := src.(rsrcengine.Counter); ok {
			n += c.Count(kind)
		}
	}
	return n
}

// Clear empties the decoded-value cache. This is the only removal path;
// entries otherwise live as long as the Manager.
func (m *Manager) Clear() {
	m.cache = make(map[rsrcengine.ResourceId]any)
}

// Load returns the decoded value for id, decoding it on first use. A cached
// value is returned as-is: the decoder is not invoked again.
func Load[T any](m *Manager, id rsrcengine.ResourceId, dec kinds.DecodeFunc[T]) (*T, error) {
	return LoadArgs(m, id, dec, nil)
}

// LoadArgs is Load with explicit decode-time arguments. Arguments only
// matter on the first load of an id; a cache hit returns the originally
// decoded value and ignores them.
func LoadArgs[T any](m *Manager, id rsrcengine.ResourceId, dec kinds.DecodeFunc[T], args any) (*T, error) {
	if cached, ok := m.cache[id]; ok {
		v, ok := cached.(*T)
		if !ok {
			return nil, errors.New(errors.PhaseManager, errors.KindBadDataType).
				Resource(id).
				Detail("cached value has type %T", cached).
				Build()
		}
		logger().Debug("cache hit", zap.Stringer("id", id))
		return v, nil
	}

	for _, src := range m.sources {
		if !src.Contains(id) {
			continue
		}

		// Containment and decode are coupled: once a source claims the id,
		// a failure here propagates without trying later sources.
		raw, size, err := src.LoadBytes(id)
		if err != nil {
			return nil, tag(err, id, src.Name())
		}
		v, err := dec(binio.NewBytesReader(raw), size, kinds.Context{Sel: m.sel, Args: args})
		if err != nil {
			return nil, tag(err, id, src.Name())
		}

		m.cache[id] = v
		logger().Debug("decoded",
			zap.Stringer("id", id),
			zap.String("source", src.Name()),
			zap.Uint32("size", size))
		return v, nil
	}

	return nil, errors.NotFound(errors.PhaseManager, id)
}

// tag attributes an error to the resource and source it came from, so
// failures surfacing at the caller remain traceable.
func tag(err error, id rsrcengine.ResourceId, source string) error {
	if e, ok := err.(*errors.Error); ok {
		if e.Resource == "" {
			e.Resource = id.String()
		}
		if e.Container == "" {
			e.Container = source
		}
		return e
	}
	return errors.New(errors.PhaseManager, errors.KindSourceIO).
		Resource(id).
		Container(source).
		Cause(err).
		Build()
}

// GetString loads and decodes the single-string resource ('STR ') with the
// given number.
func GetString(m *Manager, num int16) (string, error) {
	s, err := Load(m, rsrcengine.NewResourceId("STR ", num), kinds.DecodePString)
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

// GetIndexedString loads the string-list resource ('STR#') with the given
// number and returns its index-th string (zero-based).
func GetIndexedString(m *Manager, num int16, index int) (string, error) {
	id := rsrcengine.NewResourceId("STR#", num)
	list, err := Load(m, id, kinds.DecodeStringList)
	if err != nil {
		return "", err
	}
	s, ok := list.At(index)
	if !ok {
		return "", errors.New(errors.PhaseManager, errors.KindOutOfBounds).
			Resource(id).
			Detail("index %d out of range (%d strings)", index, list.Len()).
			Build()
	}
	return s, nil
}
