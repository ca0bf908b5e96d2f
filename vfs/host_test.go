package vfs

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	rerr "github.com/cinegraph/rsrc-engine/errors"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func readAll(t *testing.T, f *File) []byte {
	t.Helper()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHost_ResourceForkFromSibling(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.dir")
	writeFile(t, path, []byte("not a wrapper"))
	writeFile(t, path+".rsrc", []byte("sibling fork"))

	f, err := NewHost().OpenResourceFork(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := readAll(t, f); string(got) != "sibling fork" {
		t.Errorf("fork = %q", got)
	}
}

func TestHost_ResourceForkFromAppleDouble(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.dir")
	writeFile(t, path, []byte("plain data"))
	writeFile(t, filepath.Join(dir, "._movie.dir"), buildAppleDouble(appleDoubleMagic, []adEntry{
		{adEntryResourceFork, []byte("companion fork")},
		{adEntryRealName, []byte("Movie")},
	}))

	host := NewHost()
	f, err := host.OpenResourceFork(path)
	if err != nil {
		t.Fatalf("open resource fork: %v", err)
	}
	if got := readAll(t, f); string(got) != "companion fork" {
		t.Errorf("fork = %q", got)
	}
	if f.Name() != "Movie" {
		t.Errorf("name = %q, want Movie", f.Name())
	}

	// The companion has no data fork entry; data comes from the plain file.
	f, err = host.Open(path)
	if err != nil {
		t.Fatalf("open data fork: %v", err)
	}
	if got := readAll(t, f); string(got) != "plain data" {
		t.Errorf("data = %q", got)
	}
}

func TestHost_ResourceForkFromMacBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.dir")
	writeFile(t, path, buildMacBinary("Movie", []byte("data part"), []byte("rsrc part"), stampV3))

	host := NewHost()
	f, err := host.OpenResourceFork(path)
	if err != nil {
		t.Fatalf("open resource fork: %v", err)
	}
	if got := readAll(t, f); string(got) != "rsrc part" {
		t.Errorf("fork = %q", got)
	}

	f, err = host.Open(path)
	if err != nil {
		t.Fatalf("open data fork: %v", err)
	}
	if got := readAll(t, f); string(got) != "data part" {
		t.Errorf("data = %q", got)
	}
}

func TestHost_ResourceForkExhaustedIsNotFound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	writeFile(t, path, []byte("just text, no forks anywhere"))

	_, err := NewHost().OpenResourceFork(path)
	if !rerr.IsNotFound(err) {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestHost_OpenPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	writeFile(t, path, []byte("just text"))

	f, err := NewHost().Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := readAll(t, f); string(got) != "just text" {
		t.Errorf("data = %q", got)
	}
	if f.Path() != path {
		t.Errorf("path = %q, want %q", f.Path(), path)
	}
}

func countOpenFDs(t *testing.T) int {
	t.Helper()
	ents, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("no fd table to inspect on this platform")
	}
	return len(ents)
}

func TestHost_FailedProbesCloseFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.dir")
	writeFile(t, path, []byte("plain data, no wrapper here"))
	// The companion exists but is not an AppleDouble header, so every probe
	// that opens it must close it again.
	writeFile(t, filepath.Join(dir, "._movie.dir"), []byte("garbage garbage garbage"))

	before := countOpenFDs(t)
	if f, ok := tryAppleDouble(path, ForkResource); ok {
		t.Fatalf("tryAppleDouble = %v, want miss", f)
	}
	if f, ok := tryAppleDouble(path, ForkData); ok {
		t.Fatalf("tryAppleDouble = %v, want miss", f)
	}
	if after := countOpenFDs(t); after != before {
		t.Errorf("open fds went from %d to %d across failed probes", before, after)
	}
}

func TestHost_ResourceForkProbeLeavesDataFileClosed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie.dir")
	writeFile(t, path, []byte("plain data"))
	writeFile(t, filepath.Join(dir, "._movie.dir"), buildAppleDouble(appleDoubleMagic, []adEntry{
		{adEntryResourceFork, []byte("companion fork")},
	}))

	before := countOpenFDs(t)
	f, ok := tryAppleDouble(path, ForkResource)
	if !ok {
		t.Fatal("expected resource fork from companion")
	}
	// Only the companion backing the returned fork may stay open; the plain
	// data file must not be touched for a resource fork probe.
	if after := countOpenFDs(t); after != before+1 {
		t.Errorf("open fds went from %d to %d, want exactly one more", before, after)
	}
	if got := readAll(t, f); string(got) != "companion fork" {
		t.Errorf("fork = %q", got)
	}
}

func TestHost_OpenMissingIsNotFound(t *testing.T) {
	_, err := NewHost().Open(filepath.Join(t.TempDir(), "nope"))
	if !rerr.IsNotFound(err) {
		t.Fatalf("err = %v, want not_found", err)
	}
}
