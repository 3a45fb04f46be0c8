package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/ez80asm/opcode"
)

func newTableCmd() (cmd *cobra.Command) {
	var filter string

	cmd = &cobra.Command{
		Use:   "table",
		Short: "Print the instruction table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()
			filter = strings.ToLower(filter)
			for inst := range opcode.All() {
				if !strings.HasPrefix(inst.Mnemonic, filter) {
					continue
				}
				_, err = fmt.Fprintf(out, "%-20s %-16s %v\n", inst.Mnemonic, fmt.Sprintf("% X", inst.Code), inst.Kind)
				if err != nil {
					return
				}
			}
			return
		},
	}

	cmd.Flags().StringVar(&filter, "prefix", "", "only print mnemonics starting with `text`")

	return
}
