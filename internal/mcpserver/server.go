// Package mcpserver exposes the emotion chart builders as MCP tools.
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/mikills/tinkerings/emoplot/config"
)

const (
	Name    = "emoplot"
	Version = "1.0.0"
)

// New returns an MCP server with every chart tool registered.
func New(cfg *config.Config) *server.MCPServer {
	srv := server.NewMCPServer(Name, Version)

	registerRadarChartTool(srv, cfg)
	registerLineChartTool(srv, cfg)
	registerAddDatasetTool(srv)

	return srv
}

// Serve runs srv as a stdio server over in and out until in is closed or
// ctx is cancelled. Pending tool calls are answered before it returns.
func Serve(ctx context.Context, srv *server.MCPServer, in io.Reader, out io.Writer) error {
	errLog := logrus.WithField("server", Name).WriterLevel(logrus.ErrorLevel)
	defer errLog.Close()

	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(log.New(errLog, "", 0))
	return stdio.Listen(ctx, in, out)
}

type chartToolConfig struct {
	name        string
	description string
}

func registerChartTool[T any](
	srv *server.MCPServer,
	cfg chartToolConfig,
	generator func(T) (any, error),
	validator func(T) error,
) {
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logrus.WithField("tool", cfg.name)

		var args T
		if err := req.BindArguments(&args); err != nil {
			log.WithField(logrus.ErrorKey, err).Warn("bind arguments")
			return mcp.NewToolResultError(fmt.Sprintf("bind arguments: %v", err)), nil
		}

		if validator != nil {
			if err := validator(args); err != nil {
				log.WithField(logrus.ErrorKey, err).Info("rejected arguments")
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		chart, err := generator(args)
		if err != nil {
			log.WithField(logrus.ErrorKey, err).Warn("chart generation failed")
			return mcp.NewToolResultError(err.Error()), nil
		}
		log.Debug("chart generated")
		return mcp.NewToolResultJSON(chart)
	}

	tool := mcp.NewTool(
		cfg.name,
		mcp.WithDescription(cfg.description),
		mcp.WithInputSchema[T](),
	)

	srv.AddTool(tool, handler)
}
