package vfs

import (
	stderrors "errors"
	"io/fs"
	gopath "path"
	"strconv"
	"strings"

	rsrcengine "github.com/cinegraph/rsrc-engine"
	"github.com/cinegraph/rsrc-engine/errors"
)

// DirSource serves resources from a flat file namespace: id (TYPE, n) maps
// to the file <TYPE>/<n>, with trailing spaces trimmed from the tag. Any
// fs.FS works, so the same Source covers a host directory (os.DirFS) and an
// unpacked archive.
type DirSource struct {
	name string
	fsys fs.FS
}

// NewDirSource creates a directory-backed Source. The name identifies the
// source in errors and logs.
func NewDirSource(name string, fsys fs.FS) *DirSource {
	return &DirSource{name: name, fsys: fsys}
}

// Name implements rsrcengine.Source.
func (s *DirSource) Name() string { return s.name }

// Contains implements rsrcengine.Source.
func (s *DirSource) Contains(id rsrcengine.ResourceId) bool {
	info, err := fs.Stat(s.fsys, s.entryPath(id))
	return err == nil && info.Mode().IsRegular()
}

// LoadBytes implements rsrcengine.Source. The declared size is the file
// length.
func (s *DirSource) LoadBytes(id rsrcengine.ResourceId) ([]byte, uint32, error) {
	data, err := fs.ReadFile(s.fsys, s.entryPath(id))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, 0, errors.New(errors.PhaseOpen, errors.KindNotFound).Resource(id).Container(s.name).Build()
		}
		return nil, 0, errors.New(errors.PhaseOpen, errors.KindSourceIO).Resource(id).Container(s.name).Cause(err).Build()
	}
	return data, uint32(len(data)), nil
}

func (s *DirSource) entryPath(id rsrcengine.ResourceId) string {
	b := id.Type.Bytes()
	tag := strings.TrimRight(string(b[:]), " ")
	return gopath.Join(tag, strconv.Itoa(int(id.Num)))
}
