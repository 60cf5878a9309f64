package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mikills/tinkerings/emoplot/plots"
)

// echartsMissing is how ECharts marks a gap in a series.
const echartsMissing = "-"

// ECharts renders every frame as a standalone ECharts HTML page.
type ECharts struct {
	sink Sink
	opts Options
}

func NewECharts(sink Sink, o Options) *ECharts {
	return &ECharts{sink: sink, opts: o}
}

type pageRenderer interface {
	Render(w io.Writer) error
}

func (e *ECharts) Draw(c *plots.Chart) error {
	var page pageRenderer
	switch c.Type {
	case plots.TypeRadar:
		page = e.radar(c)
	case plots.TypeLine:
		page = e.line(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedChart, c.Type)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return err
	}
	return e.sink.WriteFrame(buf.Bytes())
}

func (e *ECharts) globalOpts() []charts.GlobalOpts {
	w, h := e.opts.size()
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: e.opts.Title,
			Width:     strconv.Itoa(w) + "px",
			Height:    strconv.Itoa(h) + "px",
		}),
		charts.WithTitleOpts(opts.Title{Title: e.opts.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	}
}

func (e *ECharts) radar(c *plots.Chart) *charts.Radar {
	indicators := make([]*opts.Indicator, len(c.Data.Labels))
	for i, label := range c.Data.Labels {
		indicators[i] = &opts.Indicator{Name: label}
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(append(e.globalOpts(),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
	)...)

	for _, ds := range c.Data.Datasets {
		radar.AddSeries(ds.Label,
			[]opts.RadarData{{Name: ds.Label, Value: echartsValues(ds.Data)}},
			seriesStyle(ds)...,
		)
	}
	return radar
}

func (e *ECharts) line(c *plots.Chart) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(e.globalOpts(),
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(false)}),
	)...)
	line.SetXAxis(c.Data.Labels)

	for _, ds := range c.Data.Datasets {
		values := echartsValues(ds.Data)
		items := make([]opts.LineData, len(values))
		for i, v := range values {
			items[i] = opts.LineData{Value: v}
		}

		seriesOpts := seriesStyle(ds)
		if hidesMarkers(ds) {
			seriesOpts = append(seriesOpts,
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
		}
		line.AddSeries(ds.Label, items, seriesOpts...)
	}
	return line
}

func seriesStyle(ds *plots.Dataset) []charts.SeriesOpts {
	var out []charts.SeriesOpts
	if ds.BorderColor != "" {
		out = append(out,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ds.BorderColor}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ds.BorderColor}),
		)
	}
	if ds.BackgroundColor != "" {
		out = append(out, charts.WithAreaStyleOpts(opts.AreaStyle{Color: ds.BackgroundColor}))
	}
	return out
}

func echartsValues(data []*float64) []any {
	out := make([]any, len(data))
	for i, v := range data {
		if v == nil {
			out[i] = echartsMissing
			continue
		}
		out[i] = *v
	}
	return out
}

func hidesMarkers(ds *plots.Dataset) bool {
	return ds.PointRadius != nil && *ds.PointRadius == 0
}
