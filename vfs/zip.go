package vfs

import (
	"bytes"
	"io"
	"os"
	gopath "path"

	"github.com/klauspost/compress/zip"

	"github.com/cinegraph/rsrc-engine/errors"
)

// Resource forks inside zip archives live under one of these prefixes,
// depending on which tool packed the archive.
var zipForkPrefixes = [...]string{"XtraStuf.mac", "__MACOSX"}

// Zip is an archive-backed FileSystem. Entries are decompressed into memory
// on open so callers get a seekable stream.
type Zip struct {
	path    string
	entries map[string]*zip.File
	closer  io.Closer
}

// OpenZip opens the archive at path on the host filesystem.
func OpenZip(path string) (*Zip, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundPath(errors.PhaseOpen, path)
		}
		return nil, errors.New(errors.PhaseOpen, errors.KindBadContainer).Container(path).Detail("not a zip archive").Cause(err).Build()
	}
	z := newZip(&rc.Reader, path)
	z.closer = rc
	return z, nil
}

// NewZip reads an archive from an in-memory or already-open stream.
func NewZip(r io.ReaderAt, size int64, path string) (*Zip, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.New(errors.PhaseOpen, errors.KindBadContainer).Container(path).Detail("not a zip archive").Cause(err).Build()
	}
	return newZip(zr, path), nil
}

func newZip(zr *zip.Reader, path string) *Zip {
	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		entries[f.Name] = f
	}
	return &Zip{path: path, entries: entries}
}

// Close releases the underlying archive file, when the Zip owns one.
func (z *Zip) Close() error {
	if z.closer != nil {
		return z.closer.Close()
	}
	return nil
}

// Open opens the data fork: the archive entry at path.
func (z *Zip) Open(path string) (*File, error) {
	return z.materialize(path, path)
}

// OpenResourceFork opens the resource fork: the entry under the fork prefix
// directories.
func (z *Zip) OpenResourceFork(path string) (*File, error) {
	for _, prefix := range zipForkPrefixes {
		f, err := z.materialize(gopath.Join(prefix, path), path)
		if err == nil {
			return f, nil
		}
		// Only absence falls through to the next prefix; a corrupt entry is
		// a real failure.
		if !errors.IsNotFound(err) {
			return nil, err
		}
	}
	return nil, errors.NotFoundPath(errors.PhaseOpen, path)
}

func (z *Zip) materialize(entryName, path string) (*File, error) {
	entry, ok := z.entries[entryName]
	if !ok || entry.FileInfo().IsDir() {
		return nil, errors.NotFoundPath(errors.PhaseOpen, entryName)
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, z.path, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.SourceIO(errors.PhaseOpen, z.path, err)
	}
	return &File{ReadSeeker: bytes.NewReader(data), path: path}, nil
}
