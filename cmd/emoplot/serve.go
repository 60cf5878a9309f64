package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mikills/tinkerings/emoplot/internal/mcpserver"
)

func newServeCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart builders as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.WithFields(logrus.Fields{
				"server":  mcpserver.Name,
				"version": mcpserver.Version,
			}).Info("serving MCP tools on stdio")
			return mcpserver.Serve(cmd.Context(), mcpserver.New(ro.cfg), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
