package main

import (
	"fmt"
	"os"
	"strings"

	rsrcengine "github.com/cinegraph/rsrc-engine"
	"github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/fork"
	"github.com/cinegraph/rsrc-engine/mactext"
	"github.com/cinegraph/rsrc-engine/manager"
	"github.com/cinegraph/rsrc-engine/vfs"
)

// openFork resolves the resource fork of path and parses it as a classic
// resource fork. Zip archives need --member to name the file inside the
// archive. A file that has no resource fork anywhere is tried as a bare
// fork image (a raw dump of the fork itself).
func openFork(ctx *commandContext, path string) (*fork.File, error) {
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		member := *ctx.memberFlag
		if member == "" {
			return nil, fmt.Errorf("%s: zip archives need --member <path inside archive>", path)
		}
		z, err := vfs.OpenZip(path)
		if err != nil {
			return nil, err
		}
		defer z.Close()
		f, err := z.OpenResourceFork(member)
		if err != nil {
			return nil, err
		}
		return fork.New(f, path+":"+member)
	}

	host := vfs.NewHost()
	f, err := host.OpenResourceFork(path)
	if err == nil {
		return fork.New(f, path)
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	raw, err := host.Open(path)
	if err != nil {
		return nil, err
	}
	return fork.New(raw, path)
}

// newManager builds the source chain: the file's fork first, then any
// configured directory sources.
func newManager(ctx *commandContext, f *fork.File) *manager.Manager {
	sources := []rsrcengine.Source{f}
	for _, dir := range ctx.cfg.Sources {
		sources = append(sources, vfs.NewDirSource(dir, os.DirFS(dir)))
	}
	return manager.New(mactext.Active(), sources...)
}
