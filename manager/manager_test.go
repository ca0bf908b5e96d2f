package manager

import (
	"bytes"
	"errors"
	"testing"

	rsrcengine "github.com/cinegraph/rsrc-engine"
	rerr "github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/fork"
	"github.com/cinegraph/rsrc-engine/internal/forktest"
	"github.com/cinegraph/rsrc-engine/kinds"
	"github.com/cinegraph/rsrc-engine/mactext"
)

// countingSource records how many byte reads it has served, so tests can
// assert cache hits never touch the backing container.
type countingSource struct {
	name  string
	data  map[rsrcengine.ResourceId][]byte
	reads int
}

func (s *countingSource) Name() string { return s.name }

func (s *countingSource) Contains(id rsrcengine.ResourceId) bool {
	_, ok := s.data[id]
	return ok
}

func (s *countingSource) LoadBytes(id rsrcengine.ResourceId) ([]byte, uint32, error) {
	raw, ok := s.data[id]
	if !ok {
		return nil, 0, rerr.NotFound(rerr.PhaseOpen, id)
	}
	s.reads++
	return raw, uint32(len(raw)), nil
}

func stringListSource(name string) *countingSource {
	return &countingSource{
		name: name,
		data: map[rsrcengine.ResourceId][]byte{
			rsrcengine.NewResourceId("STR#", 128): {0x00, 0x02, 5, 'H', 'e', 'l', 'l', 'o', 5, 'W', 'o', 'r', 'l', 'd'},
		},
	}
}

func TestLoad_Idempotent(t *testing.T) {
	src := stringListSource("a")
	m := New(mactext.RomanSelection(), src)
	id := rsrcengine.NewResourceId("STR#", 128)

	first, err := Load(m, id, kinds.DecodeStringList)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if src.reads != 1 {
		t.Fatalf("reads after first load = %d, want 1", src.reads)
	}

	second, err := Load(m, id, kinds.DecodeStringList)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second != first {
		t.Error("second load returned a different value")
	}
	if src.reads != 1 {
		t.Errorf("reads after second load = %d, want 1 (cache must not re-read)", src.reads)
	}
}

func TestLoad_FromResourceFork(t *testing.T) {
	img := forktest.Build([]forktest.Res{
		{Kind: "STR#", ID: 128, Data: []byte{0x00, 0x02, 5, 'H', 'e', 'l', 'l', 'o', 5, 'W', 'o', 'r', 'l', 'd'}},
	})
	f, err := fork.New(bytes.NewReader(img), "movie.rsrc")
	if err != nil {
		t.Fatalf("open fork: %v", err)
	}

	m := New(mactext.RomanSelection(), f)
	list, err := Load(m, rsrcengine.NewResourceId("STR#", 128), kinds.DecodeStringList)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("len = %d, want 2", list.Len())
	}
	for i, want := range []string{"Hello", "World"} {
		if got, _ := list.At(i); got != want {
			t.Errorf("string %d = %q, want %q", i, got, want)
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	m := New(mactext.RomanSelection(), stringListSource("a"))
	_, err := Load(m, rsrcengine.NewResourceId("vers", 1), kinds.DecodeVersion)
	if !rerr.IsNotFound(err) {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestLoad_MixedTypeRequestFails(t *testing.T) {
	m := New(mactext.RomanSelection(), stringListSource("a"))
	id := rsrcengine.NewResourceId("STR#", 128)

	if _, err := Load(m, id, kinds.DecodeStringList); err != nil {
		t.Fatalf("first load: %v", err)
	}
	_, err := Load(m, id, kinds.DecodePString)
	var e *rerr.Error
	if !errors.As(err, &e) || e.Kind != rerr.KindBadDataType {
		t.Fatalf("err = %v, want bad_data_type", err)
	}
}

func TestLoad_NoFallbackAfterContainment(t *testing.T) {
	id := rsrcengine.NewResourceId("FLMP", 7)
	bad := &countingSource{name: "bad", data: map[rsrcengine.ResourceId][]byte{
		id: bytes.Repeat([]byte{0}, 13), // wrong size for a film loop
	}}
	good := &countingSource{name: "good", data: map[rsrcengine.ResourceId][]byte{
		id: bytes.Repeat([]byte{0}, 14),
	}}

	m := New(mactext.RomanSelection(), bad, good)
	_, err := Load(m, id, kinds.DecodeFilmLoop)
	var e *rerr.Error
	if !errors.As(err, &e) || e.Kind != rerr.KindSizeMismatch {
		t.Fatalf("err = %v, want size_mismatch", err)
	}
	if e.Resource != id.String() || e.Container != "bad" {
		t.Errorf("error attribution = %q/%q, want %q/bad", e.Resource, e.Container, id)
	}
	if good.reads != 0 {
		t.Error("later source was read after an earlier source claimed containment")
	}
}

func TestContains(t *testing.T) {
	a := stringListSource("a")
	b := &countingSource{name: "b", data: map[rsrcengine.ResourceId][]byte{
		rsrcengine.NewResourceId("vers", 1): {1, 0, 0x80, 0, 0, 0, 0, 0},
	}}
	m := New(mactext.RomanSelection(), a, b)

	for _, tt := range []struct {
		id   rsrcengine.ResourceId
		want bool
	}{
		{rsrcengine.NewResourceId("STR#", 128), true},
		{rsrcengine.NewResourceId("vers", 1), true},
		{rsrcengine.NewResourceId("snd ", 9), false},
	} {
		if got := m.Contains(tt.id); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestClear(t *testing.T) {
	src := stringListSource("a")
	m := New(mactext.RomanSelection(), src)
	id := rsrcengine.NewResourceId("STR#", 128)

	if _, err := Load(m, id, kinds.DecodeStringList); err != nil {
		t.Fatal(err)
	}
	m.Clear()
	if _, err := Load(m, id, kinds.DecodeStringList); err != nil {
		t.Fatal(err)
	}
	if src.reads != 2 {
		t.Errorf("reads = %d, want 2 after Clear", src.reads)
	}
}

func TestGetString(t *testing.T) {
	src := &countingSource{name: "a", data: map[rsrcengine.ResourceId][]byte{
		rsrcengine.NewResourceId("STR ", 5): {3, 'a', 'b', 'c'},
	}}
	m := New(mactext.RomanSelection(), src)

	s, err := GetString(m, 5)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s != "abc" {
		t.Errorf("s = %q", s)
	}
}

func TestGetIndexedString(t *testing.T) {
	m := New(mactext.RomanSelection(), stringListSource("a"))

	s, err := GetIndexedString(m, 128, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s != "World" {
		t.Errorf("s = %q, want World", s)
	}

	_, err = GetIndexedString(m, 128, 2)
	var e *rerr.Error
	if !errors.As(err, &e) || e.Kind != rerr.KindOutOfBounds {
		t.Fatalf("err = %v, want out_of_bounds", err)
	}
}

func TestCount(t *testing.T) {
	img := forktest.Build([]forktest.Res{
		{Kind: "STR#", ID: 128, Data: []byte{0x00, 0x00}},
		{Kind: "STR#", ID: 129, Data: []byte{0x00, 0x00}},
		{Kind: "vers", ID: 1, Data: []byte{1, 0, 0x80, 0, 0, 0, 0, 0}},
	})
	f, err := fork.New(bytes.NewReader(img), "movie.rsrc")
	if err != nil {
		t.Fatal(err)
	}

	// countingSource does not implement Counter; only the fork contributes.
	m := New(mactext.RomanSelection(), stringListSource("a"), f)
	if n := m.Count(rsrcengine.NewOsType("STR#")); n != 2 {
		t.Errorf("Count(STR#) = %d, want 2", n)
	}
	if n := m.Count(rsrcengine.NewOsType("snd ")); n != 0 {
		t.Errorf("Count(snd ) = %d, want 0", n)
	}
}
