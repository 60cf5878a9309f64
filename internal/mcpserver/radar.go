package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mikills/tinkerings/emoplot/config"
	"github.com/mikills/tinkerings/emoplot/plots"
)

type RadarChartArgs struct {
	Names    []string  `json:"names" jsonschema:"description=Emotion names in the order of values (e.g. 'Gioia', 'Fiducia'),minItems=1"`
	Values   []float64 `json:"values" jsonschema:"description=Emotion intensities parallel to names,minItems=1"`
	Language string    `json:"language,omitempty" jsonschema:"description=Label language,enum=italian,enum=english"`
	Strict   bool      `json:"strict,omitempty" jsonschema:"description=Fail when a canonical emotion is missing instead of leaving a gap"`
}

func radarChartGenerator(cfg *config.Config) func(RadarChartArgs) (any, error) {
	return func(args RadarChartArgs) (any, error) {
		lang := cfg.Lang()
		if args.Language != "" {
			var err error
			if lang, err = plots.ParseLanguage(args.Language); err != nil {
				return nil, err
			}
		}

		opts := []plots.RadarOption{
			plots.WithLanguage(lang),
			plots.WithColors(cfg.Radar.Border, cfg.Radar.Fill),
		}
		if args.Strict {
			opts = append(opts, plots.WithStrictLabels())
		}
		return plots.NewRadarChart(nil, args.Names, args.Values, opts...)
	}
}

func validateRadarChartArgs(args RadarChartArgs) error {
	if len(args.Names) == 0 {
		return fmt.Errorf("names must contain at least one item")
	}
	if len(args.Names) != len(args.Values) {
		return fmt.Errorf("names and values must have the same length, got %d and %d", len(args.Names), len(args.Values))
	}
	return nil
}

func registerRadarChartTool(srv *server.MCPServer, cfg *config.Config) {
	registerChartTool(srv, chartToolConfig{
		name: "emotion-radar-chart",
		description: `Generates a Chart.js radar chart of emotion intensities.
		              Values are realigned to the canonical order of the eight basic emotions (joy, trust, fear, surprise, sadness, disgust, anger, anticipation).
		              Use this to show the emotional profile of a whole text.`,
	},
		radarChartGenerator(cfg),
		validateRadarChartArgs,
	)
}
