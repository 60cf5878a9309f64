package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mikills/tinkerings/emoplot/plots"
)

type AddDatasetArgs struct {
	Chart   *plots.Chart   `json:"chart" jsonschema:"description=Chart configuration returned by a chart tool"`
	Dataset *plots.Dataset `json:"dataset" jsonschema:"description=Series to append"`
}

func generateAddDataset(args AddDatasetArgs) (any, error) {
	if err := args.Chart.AddDataset(args.Dataset); err != nil {
		return nil, err
	}
	return args.Chart, nil
}

func validateAddDatasetArgs(args AddDatasetArgs) error {
	if args.Chart == nil {
		return fmt.Errorf("chart is required")
	}
	if args.Dataset == nil {
		return fmt.Errorf("dataset is required")
	}
	switch args.Chart.Type {
	case plots.TypeRadar, plots.TypeLine:
	default:
		return fmt.Errorf("unsupported chart type %q", args.Chart.Type)
	}
	return nil
}

func registerAddDatasetTool(srv *server.MCPServer) {
	registerChartTool(srv, chartToolConfig{
		name: "emotion-chart-add-dataset",
		description: `Appends a series to a chart produced by emotion-radar-chart or emotion-line-chart.
		              Use this to compare several emotions, or several texts, on one chart.`,
	},
		generateAddDataset,
		validateAddDatasetArgs,
	)
}
