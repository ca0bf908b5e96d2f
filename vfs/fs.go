package vfs

import "io"

// ForkKind selects which fork of a file to open.
type ForkKind int

const (
	ForkData ForkKind = iota
	ForkResource
)

func (k ForkKind) String() string {
	if k == ForkResource {
		return "resource"
	}
	return "data"
}

// ReaderAtSeeker is the stream capability container parsing needs: seekable
// sequential reads plus random access for carving fork windows.
type ReaderAtSeeker interface {
	io.ReadSeeker
	io.ReaderAt
}

// File is an opened fork: a seekable byte stream plus the path it was
// resolved from and, when the wrapper carries one, the embedded original
// file name.
type File struct {
	io.ReadSeeker

	path string
	name string
}

// Path returns the path the fork was requested under.
func (f *File) Path() string { return f.path }

// Name returns the original file name embedded in the wrapper, or an empty
// string when the container carries none.
func (f *File) Name() string { return f.name }

// FileSystem resolves paths to fork streams.
type FileSystem interface {
	// Open opens the data fork of the file at path.
	Open(path string) (*File, error)

	// OpenResourceFork opens the resource fork of the file at path,
	// unwrapping encapsulation formats as needed.
	OpenResourceFork(path string) (*File, error)
}
