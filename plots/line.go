package plots

// NewLineChart draws a single series line chart of data on cv. The stroke
// uses color as given and the fill a lighter variant of it. Both axes are
// hidden. With more than LineLabelThreshold x labels the point markers are
// suppressed.
func NewLineChart(cv Canvas, data []float64, name string, xLabels []string, color Color) (*Chart, error) {
	ds := &Dataset{
		Label:           name,
		Data:            Values(data),
		BorderColor:     FormatColor(color, false),
		BackgroundColor: FormatColor(color, true),
	}
	applyPointDensity(ds, len(xLabels), LineLabelThreshold)

	return newChart(cv, TypeLine, Data{
		Labels:   xLabels,
		Datasets: []*Dataset{ds},
	}, map[string]any{
		"maintainAspectRatio": true,
		"scales": map[string]any{
			"xAxes": []map[string]any{{"display": false}},
			"yAxes": []map[string]any{{"display": false}},
		},
	})
}

// LineSeries is one named series of a multi-series line chart.
type LineSeries struct {
	Name   string
	Values []float64
	Color  Color
}

// NewLineChartSeries builds a line chart from the first series and appends
// the others with AddDataset, so each follows the appended-dataset marker
// policy.
func NewLineChartSeries(cv Canvas, xLabels []string, series ...LineSeries) (*Chart, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	first := series[0]
	c, err := NewLineChart(cv, first.Values, first.Name, xLabels, first.Color)
	if err != nil {
		return nil, err
	}
	for _, s := range series[1:] {
		err := c.AddDataset(&Dataset{
			Label:           s.Name,
			Data:            Values(s.Values),
			BorderColor:     FormatColor(s.Color, false),
			BackgroundColor: FormatColor(s.Color, true),
		})
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}
