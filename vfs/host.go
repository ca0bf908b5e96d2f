package vfs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cinegraph/rsrc-engine/errors"
)

// Host resolves forks on the host filesystem.
//
// For the resource fork the probe order is: the platform's named fork
// (path/..namedfork/rsrc) when present and non-empty, then a <path>.rsrc
// sibling, then an AppleDouble ._ companion, then MacBinary (the file itself
// or a .bin sibling). For the data fork: AppleDouble, then MacBinary, then
// the plain file. Every miss falls through; when nothing matches the open
// reports not_found.
type Host struct{}

// NewHost creates a host filesystem.
func NewHost() Host { return Host{} }

// Open opens the data fork of the file at path.
func (Host) Open(path string) (*File, error) {
	if f, ok := tryAppleDouble(path, ForkData); ok {
		return f, nil
	}
	if f, ok := tryMacBinary(path, ForkData); ok {
		return f, nil
	}
	raw, err := os.Open(path)
	if err != nil {
		return nil, errors.NotFoundPath(errors.PhaseOpen, path)
	}
	return &File{ReadSeeker: raw, path: path}, nil
}

// OpenResourceFork opens the resource fork of the file at path.
func (Host) OpenResourceFork(path string) (*File, error) {
	if f, ok := tryNamedFork(path); ok {
		return f, nil
	}
	if f, ok := tryRsrcSibling(path); ok {
		return f, nil
	}
	if f, ok := tryAppleDouble(path, ForkResource); ok {
		return f, nil
	}
	if f, ok := tryMacBinary(path, ForkResource); ok {
		return f, nil
	}
	return nil, errors.NotFoundPath(errors.PhaseOpen, path)
}

// tryNamedFork opens the platform's native named fork. An empty named fork
// counts as absent; some filesystems report one for every file.
func tryNamedFork(path string) (*File, bool) {
	forkPath := filepath.Join(path, "..namedfork", "rsrc")
	info, err := os.Stat(forkPath)
	if err != nil || info.Size() == 0 {
		return nil, false
	}
	f, err := os.Open(forkPath)
	if err != nil {
		return nil, false
	}
	return &File{ReadSeeker: f, path: path}, true
}

func tryRsrcSibling(path string) (*File, bool) {
	f, err := os.Open(path + ".rsrc")
	if err != nil {
		return nil, false
	}
	return &File{ReadSeeker: f, path: path}, true
}

// appleDoubleCompanion is the hidden header file carrying the resource fork:
// "._" prepended to the file name in the same directory.
func appleDoubleCompanion(path string) string {
	dir, name := filepath.Split(path)
	return dir + "._" + name
}

func tryAppleDouble(path string, kind ForkKind) (*File, bool) {
	companion, err := os.Open(appleDoubleCompanion(path))
	if err != nil {
		// No companion; the file itself may be AppleSingle.
		companion, err = os.Open(path)
		if err != nil {
			return nil, false
		}
		return appleDoubleFork(companion, nil, path, kind)
	}

	// The outer file only ever supplies the data fork.
	var outer *os.File
	if kind == ForkData {
		outer, _ = os.Open(path)
	}
	return appleDoubleFork(companion, outer, path, kind)
}

// appleDoubleFork parses the header file and hands back the requested fork,
// closing whichever of the two files the returned stream does not reference.
func appleDoubleFork(companion, outer *os.File, path string, kind ForkKind) (*File, bool) {
	closeAll := func() {
		companion.Close()
		if outer != nil {
			outer.Close()
		}
	}

	var outerRS ReaderAtSeeker
	if outer != nil {
		outerRS = outer
	}
	ad, err := NewAppleDouble(companion, outerRS, path)
	if err != nil {
		closeAll()
		return nil, false
	}

	rs := ad.Fork(kind)
	if rs == nil {
		closeAll()
		return nil, false
	}
	if outer != nil {
		if rs == io.ReadSeeker(outer) {
			companion.Close()
		} else {
			outer.Close()
		}
	}
	return wrapFork(rs, path, ad.Name())
}

func tryMacBinary(path string, kind ForkKind) (*File, bool) {
	f, err := os.Open(path)
	if err != nil {
		f, err = os.Open(path + ".bin")
		if err != nil {
			return nil, false
		}
	}
	mb, err := NewMacBinary(f, path)
	if err != nil {
		f.Close()
		return nil, false
	}
	return wrapFork(mb.Fork(kind), path, mb.Name())
}

func wrapFork(rs io.ReadSeeker, path, name string) (*File, bool) {
	if rs == nil {
		return nil, false
	}
	return &File{ReadSeeker: rs, path: path, name: name}, true
}
