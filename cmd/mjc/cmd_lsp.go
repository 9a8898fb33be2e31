package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/mjc/minijava/codebase"
)

func newLSPCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := codebase.NewLSPServer(version, g.cfg)
			return server.RunStdio()
		},
	}
}
