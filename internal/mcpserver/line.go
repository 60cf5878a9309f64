package mcpserver

import (
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mikills/tinkerings/emoplot/config"
	"github.com/mikills/tinkerings/emoplot/plots"
	"github.com/mikills/tinkerings/emoplot/postprocess"
)

type LineChartArgs struct {
	Values    []float64    `json:"values" jsonschema:"description=Emotion values along the text,minItems=1"`
	Name      string       `json:"name,omitempty" jsonschema:"description=Series name (e.g. 'Gioia')"`
	Labels    []string     `json:"labels,omitempty" jsonschema:"description=X-axis labels; defaults to 1..n"`
	Color     *plots.Color `json:"color,omitempty" jsonschema:"description=Series color; defaults to the palette"`
	Series    []SeriesArgs `json:"series,omitempty" jsonschema:"description=Further emotions plotted on the same chart"`
	Normalize bool         `json:"normalize,omitempty" jsonschema:"description=Divide every series by its maximum"`
	Smooth    int          `json:"smooth,omitempty" jsonschema:"description=Keep only this many Fourier harmonics; 0 disables smoothing and -1 uses the configured harmonics,minimum=-1"`
	Clamp     bool         `json:"clamp,omitempty" jsonschema:"description=Zero smoothed points whose raw value is not positive"`
}

// SeriesArgs is an additional series of a line chart.
type SeriesArgs struct {
	Name   string       `json:"name" jsonschema:"description=Series name"`
	Values []float64    `json:"values" jsonschema:"description=Series values; same length as the first series"`
	Color  *plots.Color `json:"color,omitempty" jsonschema:"description=Series color; defaults to the palette"`
}

func lineChartGenerator(cfg *config.Config) func(LineChartArgs) (any, error) {
	return func(args LineChartArgs) (any, error) {
		name := args.Name
		if name == "" {
			name = "Series 1"
		}
		series := []plots.LineSeries{{Name: name, Values: args.Values, Color: cfg.LineColor(0)}}
		if args.Color != nil {
			series[0].Color = *args.Color
		}
		for i, s := range args.Series {
			ls := plots.LineSeries{Name: s.Name, Values: s.Values, Color: cfg.LineColor(i + 1)}
			if s.Color != nil {
				ls.Color = *s.Color
			}
			series = append(series, ls)
		}

		if err := prepareSeries(series, pipelineFor(cfg, args)); err != nil {
			return nil, err
		}

		labels := args.Labels
		if len(labels) == 0 {
			labels = sequenceLabels(len(series[0].Values))
		}
		return plots.NewLineChartSeries(nil, labels, series...)
	}
}

func pipelineFor(cfg *config.Config, args LineChartArgs) postprocess.Pipeline {
	harmonics := args.Smooth
	if harmonics < 0 {
		harmonics = cfg.Harmonics
	}
	return postprocess.Pipeline{Normalize: args.Normalize, Harmonics: harmonics, Clamp: args.Clamp}
}

// prepareSeries runs p over the values of series in place.
func prepareSeries(series []plots.LineSeries, p postprocess.Pipeline) error {
	values := make([][]float64, len(series))
	for i, s := range series {
		values[i] = s.Values
	}
	prepared, err := p.Prepare(values)
	if err != nil {
		return err
	}
	for i := range series {
		series[i].Values = prepared[i]
	}
	return nil
}

func sequenceLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}

func validateLineChartArgs(args LineChartArgs) error {
	if len(args.Values) == 0 {
		return fmt.Errorf("values must contain at least one item")
	}
	if len(args.Labels) > 0 && len(args.Labels) != len(args.Values) {
		return fmt.Errorf("labels and values must have the same length, got %d and %d", len(args.Labels), len(args.Values))
	}
	if args.Smooth < -1 {
		return fmt.Errorf("smooth must be -1 or more, got %d", args.Smooth)
	}
	for i, s := range args.Series {
		if s.Name == "" {
			return fmt.Errorf("series %d needs a name", i+1)
		}
		if len(s.Values) != len(args.Values) {
			return fmt.Errorf("series %s has %d values, want %d", s.Name, len(s.Values), len(args.Values))
		}
	}
	return nil
}

func registerLineChartTool(srv *server.MCPServer, cfg *config.Config) {
	registerChartTool(srv, chartToolConfig{
		name: "emotion-line-chart",
		description: `Generates a Chart.js line chart of one or more emotions along a text.
		              Values can be normalised and smoothed with a Fourier low-pass filter before plotting.
		              Long series hide their point markers to stay readable.`,
	},
		lineChartGenerator(cfg),
		validateLineChartArgs,
	)
}
