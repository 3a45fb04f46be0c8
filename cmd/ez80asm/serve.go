package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/ez80asm/lsp"
)

func newServeCmd(parent *options) (cmd *cobra.Command) {
	var tcp, ws string

	cmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve diagnostics to an editor over JSON-RPC",
		Long: `Serve speaks the language server protocol's document messages,
publishing assembler diagnostics for each open document. It uses
standard input and output unless --tcp or --ws is given.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := parent.load()
			if err != nil {
				return
			}

			srv := lsp.NewServer(cfg)
			ctx := cmd.Context()
			switch {
			case len(tcp) > 0:
				err = srv.ServeTCP(ctx, tcp)
			case len(ws) > 0:
				err = srv.ServeWebSocket(ctx, ws)
			default:
				err = srv.ServeStdio(ctx)
			}

			return
		},
	}

	cmd.Flags().StringVar(&tcp, "tcp", "", "listen for TCP clients on `addr`")
	cmd.Flags().StringVar(&ws, "ws", "", "listen for WebSocket clients on `addr`")
	cmd.MarkFlagsMutuallyExclusive("tcp", "ws")

	return
}
