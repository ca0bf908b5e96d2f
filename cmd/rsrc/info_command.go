package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	rsrcengine "github.com/cinegraph/rsrc-engine"
	"github.com/cinegraph/rsrc-engine/vfs"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show container kind and per-type resource counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "container: %s\n", detectContainer(path))

			f, err := openFork(ctx, path)
			if err != nil {
				return err
			}

			counts := map[rsrcengine.OsType]int{}
			var order []rsrcengine.OsType
			for _, id := range f.IDs() {
				if _, seen := counts[id.Type]; !seen {
					order = append(order, id.Type)
				}
				counts[id.Type]++
			}

			rows := make([][]string, 0, len(order))
			for _, kind := range order {
				rows = append(rows, []string{kind.String(), strconv.Itoa(counts[kind])})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"TYPE", "COUNT"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}

// detectContainer names the encapsulation the resource fork would be read
// through, probing in the same order the host filesystem resolves forks.
func detectContainer(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return "zip archive"
	}

	fork := filepath.Join(path, "..namedfork", "rsrc")
	if info, err := os.Stat(fork); err == nil && info.Size() > 0 {
		return "native named fork"
	}
	if _, err := os.Stat(path + ".rsrc"); err == nil {
		return "rsrc sibling file"
	}

	dir, name := filepath.Split(path)
	if companion, err := os.Open(dir + "._" + name); err == nil {
		defer companion.Close()
		if _, err := vfs.NewAppleDouble(companion, nil, path); err == nil {
			return "AppleDouble companion"
		}
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if ad, err := vfs.NewAppleDouble(f, nil, path); err == nil && ad != nil {
			return "AppleSingle"
		}
		if _, err := f.Seek(0, 0); err == nil {
			if _, err := vfs.NewMacBinary(f, path); err == nil {
				return "MacBinary"
			}
		}
	}
	return "bare resource fork"
}
