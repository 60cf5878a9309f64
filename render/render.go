// Package render provides plots.Canvas backends: Chart.js JSON, ECharts HTML
// pages and PNG images.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mikills/tinkerings/emoplot/plots"
)

var (
	// ErrUnknownFormat is returned by New for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnsupportedChart is returned when a backend cannot draw a chart type.
	ErrUnsupportedChart = errors.New("unsupported chart type")
	// ErrEmptySeries is returned when a chart has nothing to draw.
	ErrEmptySeries = errors.New("chart has no drawable values")
)

// Format names an output backend.
type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 500
)

// Options tune the rendered output. Zero values fall back to defaults.
type Options struct {
	Width  int
	Height int
	Title  string
	Pretty bool
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatHTML, FormatPNG:
		return f, nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// New returns the canvas for format handing every frame to sink.
func New(format Format, sink Sink, o Options) (plots.Canvas, error) {
	switch format {
	case FormatJSON:
		return NewJSON(sink, o.Pretty), nil
	case FormatHTML:
		return NewECharts(sink, o), nil
	case FormatPNG:
		return NewPNG(sink, o), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
