package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cinegraph/rsrc-engine/mactext"
)

func newLsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <file>",
		Short: "List the resources in a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openFork(ctx, args[0])
			if err != nil {
				return err
			}

			sel := mactext.Active()
			rows := make([][]string, 0)
			for _, id := range f.IDs() {
				name := ""
				if n, ok := f.NameOf(id, sel); ok {
					name = n
				}
				size := ""
				if _, n, err := f.LoadBytes(id); err == nil {
					size = strconv.FormatUint(uint64(n), 10)
				}
				rows = append(rows, []string{
					id.Type.String(),
					strconv.Itoa(int(id.Num)),
					name,
					size,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"TYPE", "ID", "NAME", "SIZE"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight},
			))
			return nil
		},
	}
}
