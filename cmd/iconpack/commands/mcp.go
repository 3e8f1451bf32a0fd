package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/iconpack/pkg/mcp"
	"github.com/Sumatoshi-tech/iconpack/pkg/observability"
)

func newMCPCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

Tools:
  - icon_render: render an SVG document as a framework component
  - iconset_render: render one icon of a JSON bundle as a framework component
  - svg_inspect: report the root viewBox, width and height of an SVG document`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := g.openSession(cmd, observability.ModeMCP)
			if err != nil {
				return err
			}
			defer sess.close()

			srv := mcp.NewServer(mcp.ServerDeps{
				Logger:  sess.logger,
				Metrics: sess.red,
				Tracer:  sess.providers.Tracer,
			})

			return srv.Run(cmd.Context())
		},
	}
}
