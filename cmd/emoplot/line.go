package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mikills/tinkerings/emoplot/plots"
	"github.com/mikills/tinkerings/emoplot/postprocess"
)

type lineOptions struct {
	outputOptions
	values    string
	name      string
	series    []string
	labels    []string
	color     string
	normalize bool
	smooth    int
	clamp     bool
}

// smoothFromConfig is the --smooth value given without a count.
const smoothFromConfig = -1

func newLineCmd(ro *rootOptions) *cobra.Command {
	o := &lineOptions{}
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Plot emotions along a text as a line chart",
		Example: `  emoplot line --values 0.1,0.4,0.3 --name Gioia
  emoplot line --series Gioia=1,2,3,2 --series Paura=0,1,0,2 --normalize --smooth
  emoplot line --values 1,2,3,2,1 --color 255,99,132,1 --smooth=2 --format html -o gioia.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, ro)
		},
	}

	cmd.Flags().StringVar(&o.values, "values", "", "Series values, comma separated")
	cmd.Flags().StringVar(&o.name, "name", "Series 1", "Name of the --values series")
	cmd.Flags().StringArrayVar(&o.series, "series", nil, "Additional series as name=v1,v2,... (repeatable)")
	cmd.Flags().StringSliceVar(&o.labels, "labels", nil, "X-axis labels, comma separated (default 1..n)")
	cmd.Flags().StringVar(&o.color, "color", "", "First series color as r,g,b,a (default from config palette)")
	cmd.Flags().BoolVar(&o.normalize, "normalize", false, "Divide every series by its maximum")
	cmd.Flags().IntVar(&o.smooth, "smooth", 0, "Keep only this many Fourier harmonics; bare --smooth uses the configured harmonics")
	cmd.Flags().Lookup("smooth").NoOptDefVal = strconv.Itoa(smoothFromConfig)
	cmd.Flags().BoolVar(&o.clamp, "clamp", false, "Zero smoothed points whose raw value is not positive")
	o.bind(cmd)
	return cmd
}

func (o *lineOptions) run(cmd *cobra.Command, ro *rootOptions) error {
	names, values, err := o.collect()
	if err != nil {
		return err
	}

	harmonics := o.smooth
	if harmonics == smoothFromConfig {
		harmonics = ro.cfg.Harmonics
	}
	if harmonics < 0 {
		return fmt.Errorf("--smooth must not be negative, got %d", o.smooth)
	}

	pipeline := postprocess.Pipeline{Normalize: o.normalize, Harmonics: harmonics, Clamp: o.clamp}
	if values, err = pipeline.Prepare(values); err != nil {
		return err
	}
	if harmonics > 0 {
		logrus.WithFields(logrus.Fields{"harmonics": harmonics, "series": len(values)}).Debug("series smoothed")
	}

	series := make([]plots.LineSeries, len(values))
	for i := range values {
		series[i] = plots.LineSeries{Name: names[i], Values: values[i], Color: ro.cfg.LineColor(i)}
	}
	if o.color != "" {
		if series[0].Color, err = parseColor(o.color); err != nil {
			return err
		}
	}

	labels := o.labels
	if len(labels) == 0 {
		labels = make([]string, len(values[0]))
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}

	return o.withCanvas(cmd, ro.cfg, func(cv plots.Canvas) error {
		_, err := plots.NewLineChartSeries(cv, labels, series...)
		return err
	})
}

// collect gathers the --values series followed by every --series flag.
func (o *lineOptions) collect() ([]string, [][]float64, error) {
	var (
		names  []string
		values [][]float64
	)
	if o.values != "" {
		v, err := parseFloats(o.values)
		if err != nil {
			return nil, nil, fmt.Errorf("parse --values: %w", err)
		}
		names, values = append(names, o.name), append(values, v)
	}
	for _, spec := range o.series {
		name, raw, ok := strings.Cut(spec, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, nil, fmt.Errorf("parse --series %q: want name=v1,v2,...", spec)
		}
		v, err := parseFloats(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parse --series %s: %w", name, err)
		}
		names, values = append(names, strings.TrimSpace(name)), append(values, v)
	}

	if len(values) == 0 {
		return nil, nil, errors.New("--values or --series is required")
	}
	for i, v := range values {
		if len(v) == 0 {
			return nil, nil, fmt.Errorf("series %s has no values", names[i])
		}
		if len(v) != len(values[0]) {
			return nil, nil, fmt.Errorf("series %s has %d values, want %d", names[i], len(v), len(values[0]))
		}
	}
	return names, values, nil
}

func parseColor(s string) (plots.Color, error) {
	channels, err := parseFloats(s)
	if err != nil {
		return plots.Color{}, fmt.Errorf("parse --color: %w", err)
	}
	switch len(channels) {
	case 3:
		return plots.Color{R: channels[0], G: channels[1], B: channels[2], A: 1}, nil
	case 4:
		return plots.Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
	}
	return plots.Color{}, fmt.Errorf("parse --color: want r,g,b[,a], got %q", s)
}
