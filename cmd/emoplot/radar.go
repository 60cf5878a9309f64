package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikills/tinkerings/emoplot/plots"
)

type radarOptions struct {
	outputOptions
	names    []string
	values   string
	language string
	strict   bool
}

func newRadarCmd(ro *rootOptions) *cobra.Command {
	o := &radarOptions{}
	cmd := &cobra.Command{
		Use:   "radar",
		Short: "Plot emotion intensities on a radar chart",
		Example: `  emoplot radar --names Fiducia,Gioia --values 5,9
  emoplot radar --names Joy,Fear --values 1,2 --language en --format png -o profile.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, ro)
		},
	}

	cmd.Flags().StringSliceVar(&o.names, "names", nil, "Emotion names, comma separated")
	cmd.Flags().StringVar(&o.values, "values", "", "Emotion intensities parallel to --names, comma separated")
	cmd.Flags().StringVar(&o.language, "language", "", "Label language: italian or english (default from config)")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "Fail when a canonical emotion is missing")
	o.bind(cmd)
	return cmd
}

func (o *radarOptions) run(cmd *cobra.Command, ro *rootOptions) error {
	values, err := parseFloats(o.values)
	if err != nil {
		return fmt.Errorf("parse --values: %w", err)
	}
	if len(o.names) == 0 {
		return errors.New("--names is required")
	}
	if len(o.names) != len(values) {
		return fmt.Errorf("--names has %d items but --values has %d", len(o.names), len(values))
	}

	cfg := ro.cfg
	lang := cfg.Lang()
	if o.language != "" {
		if lang, err = plots.ParseLanguage(o.language); err != nil {
			return err
		}
	}

	opts := []plots.RadarOption{
		plots.WithLanguage(lang),
		plots.WithColors(cfg.Radar.Border, cfg.Radar.Fill),
	}
	if o.strict {
		opts = append(opts, plots.WithStrictLabels())
	}

	return o.withCanvas(cmd, cfg, func(cv plots.Canvas) error {
		_, err := plots.NewRadarChart(cv, o.names, values, opts...)
		return err
	})
}
