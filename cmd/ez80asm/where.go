package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/ez80asm/asm"
)

func newWhereCmd(parent *options) (cmd *cobra.Command) {
	opts := &buildOptions{options: parent}

	cmd = &cobra.Command{
		Use:   "where address [source]",
		Short: "Find the source line that assembled to an address",
		Long: `Where assembles the source slot without saving, and prints the line
whose code holds the byte at the load address, such as a program
counter reported by the emulator.
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			address, err := asm.ParseNumber(args[0])
			if err != nil {
				return
			}

			res, err := opts.assemble(cmd, args[1:], nil)
			if err != nil && !errors.Is(err, errDiagnostics) {
				return
			}

			dbg, ok := res.Listing.Debug(address)
			if !ok {
				err = errors.Join(err, fmt.Errorf("0x%06x: %w", address, errAddress))
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%06X  %v  +%d  %s\n", address, dbg.Line, dbg.Index, dbg.Line.Text)

			return
		},
	}

	opts.addFlags(cmd)

	return
}
