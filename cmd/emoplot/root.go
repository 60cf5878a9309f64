package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mikills/tinkerings/emoplot/config"
	"github.com/mikills/tinkerings/emoplot/plots"
	"github.com/mikills/tinkerings/emoplot/render"
)

type rootOptions struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "emoplot",
		Short: "Plot emotion analysis results",
		Long: `emoplot builds radar and line charts from emotion analysis data
and writes them as Chart.js JSON, ECharts HTML or PNG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ro.load()
		},
	}

	cmd.PersistentFlags().StringVar(&ro.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	cmd.AddCommand(newRadarCmd(ro), newLineCmd(ro), newServeCmd(ro))
	return cmd
}

func (ro *rootOptions) load() error {
	cfg, err := config.Load(ro.configPath)
	if err != nil {
		return err
	}
	ro.cfg = cfg

	level := cfg.LogLevel
	if ro.logLevel != "" {
		level = ro.logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	// stdout carries charts and MCP frames
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.WithFields(logrus.Fields{
		"config":   ro.configPath,
		"language": cfg.Language,
		"format":   cfg.Format,
	}).Debug("configuration loaded")
	return nil
}

// outputOptions are shared by the chart commands.
type outputOptions struct {
	format string
	output string
	title  string
	pretty bool
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "", "Output format: json, html, png (default from config)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&o.title, "title", "", "Chart title (html and png)")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
}

// withCanvas binds a canvas for the chosen format and hands it to build. The
// last frame is written out only once build succeeds, so a failed chart never
// leaves a partial -o file behind.
func (o *outputOptions) withCanvas(cmd *cobra.Command, cfg *config.Config, build func(plots.Canvas) error) error {
	format := cfg.OutputFormat()
	if o.format != "" {
		var err error
		if format, err = render.ParseFormat(o.format); err != nil {
			return err
		}
	}

	ropts := cfg.RenderOptions(o.title)
	ropts.Pretty = o.pretty

	var frame render.Buffer
	cv, err := render.New(format, &frame, ropts)
	if err != nil {
		return err
	}
	if err := build(cv); err != nil {
		return err
	}

	if o.output == "" {
		if _, err := cmd.OutOrStdout().Write(frame.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else if err := render.FileSink(o.output).WriteFrame(frame.Bytes()); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"format": format, "output": o.output}).Info("chart written")
	return nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
