// Package plots builds Chart.js style configurations for emotion analysis
// results and binds them to a Canvas that draws them.
package plots

import "fmt"

// Chart types understood by every Canvas.
const (
	TypeRadar = "radar"
	TypeLine  = "line"
)

// Canvas is the rendering context a chart is bound to. Draw is called once
// when the chart is built and again on every Update; each draw replaces the
// previous frame.
type Canvas interface {
	Draw(c *Chart) error
}

// Chart is a chart configuration bound to a canvas. Data.Datasets may be
// mutated freely; call Update to redraw.
type Chart struct {
	Type    string         `json:"type" jsonschema:"description=Chart type (radar or line)"`
	Data    Data           `json:"data" jsonschema:"description=Labels and datasets"`
	Options map[string]any `json:"options,omitempty" jsonschema:"description=Chart.js options"`

	canvas Canvas
}

// Data holds the axis labels and the data series of a chart.
type Data struct {
	Labels   []string   `json:"labels"`
	Datasets []*Dataset `json:"datasets"`
}

// Dataset is one named series. A nil entry in Data is a missing value and
// is encoded as null.
type Dataset struct {
	Label                string     `json:"label" jsonschema:"description=Series name"`
	Data                 []*float64 `json:"data" jsonschema:"description=Series values; null marks a missing value"`
	BorderColor          string     `json:"borderColor,omitempty"`
	BackgroundColor      string     `json:"backgroundColor,omitempty"`
	PointBackgroundColor string     `json:"pointBackgroundColor,omitempty"`
	PointRadius          *float64   `json:"pointRadius,omitempty"`
	PointHitRadius       *float64   `json:"pointHitRadius,omitempty"`
}

// Values converts vs into dataset values with no missing entries.
func Values(vs []float64) []*float64 {
	out := make([]*float64, len(vs))
	for i := range vs {
		v := vs[i]
		out[i] = &v
	}
	return out
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// newChart binds cfg to cv and draws it once. A nil canvas builds the
// configuration without drawing.
func newChart(cv Canvas, chartType string, data Data, options map[string]any) (*Chart, error) {
	c := &Chart{
		Type:    chartType,
		Data:    data,
		Options: options,
		canvas:  cv,
	}
	if err := c.Update(); err != nil {
		return nil, err
	}
	return c, nil
}

// Bind attaches the chart to cv, e.g. after it was decoded from JSON.
// It does not draw.
func (c *Chart) Bind(cv Canvas) {
	c.canvas = cv
}

// Update redraws the chart on its canvas.
func (c *Chart) Update() error {
	if c.canvas == nil {
		return nil
	}
	if err := c.canvas.Draw(c); err != nil {
		return fmt.Errorf("draw %s chart: %w", c.Type, err)
	}
	return nil
}
